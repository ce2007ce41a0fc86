// Package cli wires the tably command line: input from a file, stdin, or
// the clipboard; output as CSV, preview, template, or inspect text to
// stdout, a file, or the clipboard.
package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bjaus/tably"
	"github.com/bjaus/tably/internal/logger"
)

var (
	outputPath    string
	formatFlag    string
	styleFlag     string
	templateFlag  string
	extractColumn string
	fromClipboard bool
	toClipboard   bool
	previewFlag   bool
	noHeader      bool
	inspectFlag   bool
	verboseFlag   bool
	previewRows   int
)

var rootCmd = &cobra.Command{
	Use:   "tably [input-file]",
	Short: "Convert messy text into organized CSV tables",
	Long: `Tably infers the shape of semi-structured text (JSON, JSONL, key-value
pairs, bullet lists, delimited text, plain lines) and renders it as CSV or
a formatted preview.

Input comes from a file argument, stdin, or the clipboard; output goes to
stdout, a file, or the clipboard.`,
	Example: `  tably data.json
  tably --format jsonl logs.txt
  cat list.txt | tably
  tably --from-clipboard --to-clipboard
  tably --preview --preview-rows 5 data.json
  tably --extract-column tags data.csv`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	fl := rootCmd.Flags()
	fl.StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	fl.BoolVar(&fromClipboard, "from-clipboard", false, "read input from the clipboard")
	fl.BoolVar(&toClipboard, "to-clipboard", false, "write output to the clipboard")
	fl.StringVarP(&formatFlag, "format", "f", "auto", "force input format (see 'tably formats')")
	fl.BoolVar(&previewFlag, "preview", false, "show a preview table instead of CSV")
	fl.IntVar(&previewRows, "preview-rows", 10, "number of rows in the preview")
	fl.StringVar(&styleFlag, "style", "plain", "preview style: plain, rounded, ascii, markdown")
	fl.StringVar(&templateFlag, "template", "", "render each row through a Go template")
	fl.BoolVar(&noHeader, "no-header", false, "treat the first delimited row as data, not a header")
	fl.StringVar(&extractColumn, "extract-column", "", "expand array values in the named column into rows")
	fl.BoolVar(&inspectFlag, "inspect", false, "show the detected format and schema instead of output")
	fl.BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output on stderr")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath())
	if err != nil {
		return err
	}
	applyConfig(cmd, cfg)
	logger.SetVerbose(verboseFlag)
	logger.SetOutput(cmd.ErrOrStderr())

	// An interactive terminal with no input source means the user probably
	// wants usage, not a hang on stdin.
	if len(args) == 0 && !fromClipboard {
		if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return cmd.Help()
		}
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	f, err := tably.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	resolved := tably.Resolve(text, f)

	var tbl *tably.Table
	if extractColumn != "" {
		tbl, err = tably.ExtractColumn(text, extractColumn, ',')
	} else {
		logger.Debug("detected format: %s", resolved)
		var opts []tably.Option
		if noHeader {
			opts = append(opts, tably.NoHeader())
		}
		tbl, err = tably.Parse(text, resolved, opts...)
	}
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}
	if n := tbl.Skipped(); n > 0 {
		logger.Warn("skipped %d malformed record(s)", n)
	}

	if inspectFlag {
		return writeInspect(cmd.OutOrStdout(), resolved, tbl)
	}

	var buf bytes.Buffer
	switch {
	case templateFlag != "":
		err = tably.WriteTemplate(&buf, templateFlag, tbl)
	case previewFlag:
		style, serr := tably.ParseStyle(styleFlag)
		if serr != nil {
			return serr
		}
		err = tably.WritePreview(&buf, tbl, previewRows, style)
	default:
		err = tably.WriteCSV(&buf, tbl)
	}
	if err != nil {
		return err
	}
	return writeOutput(cmd, buf.String(), tbl.Len())
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if fromClipboard {
		text, err := clipboard.ReadAll()
		if err != nil {
			return "", fmt.Errorf("reading clipboard: %w", err)
		}
		logger.Debug("read %d chars from clipboard", len(text))
		return text, nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		logger.Debug("read %d chars from %s", len(data), args[0])
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	logger.Debug("read %d chars from stdin", len(data))
	return string(data), nil
}

func writeOutput(cmd *cobra.Command, out string, rows int) error {
	switch {
	case toClipboard:
		if err := clipboard.WriteAll(out); err != nil {
			return fmt.Errorf("writing clipboard: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d rows to clipboard\n", rows)
	case outputPath != "":
		if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d rows to %s\n", rows, outputPath)
	default:
		if _, err := fmt.Fprint(cmd.OutOrStdout(), out); err != nil {
			return err
		}
	}
	return nil
}
