package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cockroachdb/errors"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"

	"github.com/cloudposse/timestamp/pkg/ui/theme"
)

const (
	// DefaultMaxLineLength is the default maximum line length before wrapping.
	DefaultMaxLineLength = 80

	hintPrefix = "    💡 "
	newline    = "\n"
)

// FormatterConfig controls error formatting behavior.
type FormatterConfig struct {
	// Verbose adds the context table and the full error chain.
	Verbose bool

	// Color is "auto", "always" or "never".
	Color string

	// MaxLineLength is the wrap width for the main message.
	MaxLineLength int
}

// DefaultFormatterConfig returns default formatting configuration.
func DefaultFormatterConfig() FormatterConfig {
	return FormatterConfig{
		Color:         "auto",
		MaxLineLength: DefaultMaxLineLength,
	}
}

// Format renders err for the terminal: the message, one line per hint and,
// in verbose mode, the safe context and the error chain.
func Format(err error, config FormatterConfig) string {
	if err == nil {
		return ""
	}

	useColor := shouldUseColor(config.Color)
	errorStyle := lipgloss.NewStyle()
	hintStyle := lipgloss.NewStyle()
	if useColor {
		errorStyle = errorStyle.Foreground(lipgloss.Color(theme.ColorRed))
		hintStyle = hintStyle.Foreground(lipgloss.Color(theme.ColorCyan))
	}

	var out strings.Builder

	msg := err.Error()
	if !config.Verbose {
		msg = wrapText(msg, config.MaxLineLength)
	}
	out.WriteString(errorStyle.Render(msg))

	if hints := errors.GetAllHints(err); len(hints) > 0 {
		out.WriteString(newline)
		for _, hint := range hints {
			out.WriteString(hintStyle.Render(hintPrefix + hint))
			out.WriteString(newline)
		}
	}

	if config.Verbose {
		if ctx := formatContextTable(err, useColor); ctx != "" {
			out.WriteString(ctx)
			out.WriteString(newline)
		}
		out.WriteString(newline)
		chain := lipgloss.NewStyle()
		if useColor {
			chain = chain.Foreground(lipgloss.Color(theme.ColorGray))
		}
		out.WriteString(chain.Render(fmt.Sprintf("%+v", err)))
	}

	return out.String()
}

// formatContextTable renders the "key=value" safe details as a two column table.
func formatContextTable(err error, useColor bool) string {
	var rows [][]string
	for _, payload := range errors.GetAllSafeDetails(err) {
		for _, detail := range payload.SafeDetails {
			for _, pair := range strings.Fields(detail) {
				if k, v, ok := strings.Cut(pair, "="); ok {
					rows = append(rows, []string{k, v})
				}
			}
		}
	}
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Context", "Value").
		Rows(rows...)

	if useColor {
		t = t.
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorBorder))).
			StyleFunc(func(row, col int) lipgloss.Style {
				style := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
				if row == table.HeaderRow {
					return style.Foreground(lipgloss.Color(theme.ColorGreen)).Bold(true)
				}
				if col == 0 {
					return style.Foreground(lipgloss.Color(theme.ColorGray))
				}
				return style
			})
	}

	return newline + t.String()
}

func shouldUseColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

// wrapText wraps text on word boundaries at width.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = DefaultMaxLineLength
	}
	return wordwrap.WrapString(text, uint(width))
}
