package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormatWritesParsableLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Format: FormatJSON, Output: &buf})

	l.Info("hello")

	require.Contains(t, buf.String(), `"message":"hello"`)
}

func TestNew_DefaultsToInfoLevelOnInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "not-a-level", Format: FormatJSON, Output: &buf})

	l.Info("visible")
	l.Warn("also visible")

	lines := strings.Count(buf.String(), "\n")
	require.Equal(t, 2, lines)
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "error", Format: FormatJSON, Output: &buf})

	l.Info("suppressed")
	l.Warn("suppressed too")

	require.Empty(t, buf.String())
}

func TestLogger_WithAddsStructuredField(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Format: FormatJSON, Output: &buf})

	l.With("pairs", 42).Info("done")

	require.Contains(t, buf.String(), `"pairs":42`)
}

func TestLogger_ErrorAttachesErr(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Format: FormatJSON, Output: &buf})

	l.Error("join failed", errBoom)

	require.Contains(t, buf.String(), "boom")
}

var errBoom = boomError{}

type boomError struct{}

func (boomError) Error() string { return "boom" }
