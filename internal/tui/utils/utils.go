package utils

import (
	"bytes"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/arsham/figurine/figurine"
)

// DefaultSyntaxTheme is the chroma style used for highlighted output.
const DefaultSyntaxTheme = "dracula"

// HighlightCode returns a syntax highlighted code for the specified language
func HighlightCode(code string, language string, syntaxTheme string) (string, error) {
	buf := new(bytes.Buffer)
	if err := quick.Highlight(buf, code, language, "terminal256", syntaxTheme); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// PrintDecoratedText prints a decorated text to w
func PrintDecoratedText(w io.Writer, text string) error {
	return figurine.Write(w, text, "ANSI Regular.flf")
}
