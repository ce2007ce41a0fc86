package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config holds defaults loaded from the optional config file. Flags set on
// the command line always win over config values.
type Config struct {
	Format      string `yaml:"format"`
	PreviewRows int    `yaml:"preview_rows"`
	Style       string `yaml:"style"`
	Verbose     bool   `yaml:"verbose"`
}

// configPath returns the config file location: $TABLY_CONFIG if set,
// otherwise <user config dir>/tably/config.yaml.
func configPath() string {
	if p := os.Getenv("TABLY_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tably", "config.yaml")
}

// loadConfig reads the config file at path. A missing file is not an
// error; a malformed one is.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func applyConfig(cmd *cobra.Command, cfg Config) {
	fl := cmd.Flags()
	if cfg.Format != "" && !fl.Changed("format") {
		formatFlag = cfg.Format
	}
	if cfg.PreviewRows > 0 && !fl.Changed("preview-rows") {
		previewRows = cfg.PreviewRows
	}
	if cfg.Style != "" && !fl.Changed("style") {
		styleFlag = cfg.Style
	}
	if cfg.Verbose && !fl.Changed("verbose") {
		verboseFlag = true
	}
}
