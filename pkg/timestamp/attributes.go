package timestamp

import (
	"maps"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	errUtils "github.com/cloudposse/timestamp/errors"
	"github.com/cloudposse/timestamp/pkg/ui/theme"
)

// AttributeKey names one styling attribute.
type AttributeKey string

// Supported attribute keys.
const (
	Foreground AttributeKey = "foreground"
	Background AttributeKey = "background"
	Bold       AttributeKey = "bold"
	Italic     AttributeKey = "italic"
	Underline  AttributeKey = "underline"
	Faint      AttributeKey = "faint"
	Reverse    AttributeKey = "reverse"
	Padding    AttributeKey = "padding"
)

var knownKeys = []AttributeKey{Foreground, Background, Bold, Italic, Underline, Faint, Reverse, Padding}

// Attributes maps styling keys to values.
// Colors are palette names, hex strings, ANSI codes or lipgloss.TerminalColor;
// flags are bools; padding is an int.
type Attributes map[AttributeKey]any

// Clone returns a shallow copy. A nil receiver yields an empty map.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	maps.Copy(out, a)
	return out
}

// Style builds the lipgloss style for the attributes. Values of the wrong type are ignored.
func (a Attributes) Style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if c, ok := colorValue(a[Foreground]); ok {
		s = s.Foreground(c)
	}
	if c, ok := colorValue(a[Background]); ok {
		s = s.Background(c)
	}
	if v, ok := a[Bold].(bool); ok {
		s = s.Bold(v)
	}
	if v, ok := a[Italic].(bool); ok {
		s = s.Italic(v)
	}
	if v, ok := a[Underline].(bool); ok {
		s = s.Underline(v)
	}
	if v, ok := a[Faint].(bool); ok {
		s = s.Faint(v)
	}
	if v, ok := a[Reverse].(bool); ok {
		s = s.Reverse(v)
	}
	if v, ok := a[Padding].(int); ok && v > 0 {
		s = s.Padding(0, v)
	}
	return s
}

func colorValue(v any) (lipgloss.TerminalColor, bool) {
	switch c := v.(type) {
	case lipgloss.TerminalColor:
		return c, true
	case string:
		if c == "" {
			return nil, false
		}
		if hex, ok := theme.LookupColor(c); ok {
			return lipgloss.Color(hex), true
		}
		return lipgloss.Color(c), true
	}
	return nil, false
}

// ParseAttributes converts string settings (from flags or configuration) into Attributes.
func ParseAttributes(in map[string]string) (Attributes, error) {
	out := make(Attributes, len(in))
	for k, v := range in {
		key := AttributeKey(strings.ToLower(strings.TrimSpace(k)))
		if !lo.Contains(knownKeys, key) {
			return nil, invalidAttribute(k, v, "Supported keys: "+strings.Join(lo.Map(knownKeys, func(k AttributeKey, _ int) string {
				return string(k)
			}), ", "))
		}

		switch key {
		case Foreground, Background:
			if strings.TrimSpace(v) == "" {
				return nil, invalidAttribute(k, v, "Colors must be a palette name, a hex value like '#FF0000' or an ANSI code")
			}
			out[key] = strings.TrimSpace(v)
		case Padding:
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil || n < 0 {
				return nil, invalidAttribute(k, v, "Padding must be a non-negative integer")
			}
			out[key] = n
		default:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil, invalidAttribute(k, v, "Use 'true' or 'false'")
			}
			out[key] = b
		}
	}
	return out, nil
}

func invalidAttribute(key, value, hint string) error {
	return errUtils.Build(errUtils.ErrInvalidAttribute).
		WithContext("key", key).
		WithContext("value", value).
		WithHint(hint).
		Err()
}

// StyledText is a string together with the attributes it is displayed with.
type StyledText struct {
	Text       string
	Attributes Attributes
}

// Render applies the attributes to the text.
func (s StyledText) Render() string {
	if s.Text == "" {
		return ""
	}
	return s.Attributes.Style().Render(s.Text)
}
