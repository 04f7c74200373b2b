package utils

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightCode(t *testing.T) {
	code, err := HighlightCode("label:\n  format: hms\n", "yaml", DefaultSyntaxTheme)
	require.NoError(t, err)

	assert.Contains(t, code, "\x1b[")
	assert.Contains(t, ansi.Strip(code), "format: hms")
}

func TestPrintDecoratedText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintDecoratedText(&buf, "TS"))
	assert.NotEmpty(t, buf.String())
}
