package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugSilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(false)

	Debug("should not appear")
	Warn("should not appear")
	assert.Empty(t, buf.String())
}

func TestDebugVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(true)
	defer SetVerbose(false)

	Debug("read %d chars", 42)
	assert.Equal(t, "debug: read 42 chars\n", buf.String())
}

func TestWarnVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(true)
	defer SetVerbose(false)

	Warn("skipped %d records", 3)
	assert.Equal(t, "warning: skipped 3 records\n", buf.String())
}

func TestVerboseToggle(t *testing.T) {
	SetVerbose(true)
	assert.True(t, Verbose())
	SetVerbose(false)
	assert.False(t, Verbose())
}
