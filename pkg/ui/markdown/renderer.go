// Package markdown renders help and reference text for the terminal.
package markdown

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// DefaultWidth is the word wrap width used when none is configured.
const DefaultWidth = 80

// Renderer is a markdown renderer using Glamour
type Renderer struct {
	renderer *glamour.TermRenderer
	width    uint
	profile  termenv.Profile
}

// NewRenderer creates a new markdown renderer with the given options
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		width:   DefaultWidth,
		profile: termenv.ColorProfile(),
	}

	for _, opt := range opts {
		opt(r)
	}

	style := DefaultStyle
	if r.profile == termenv.Ascii {
		style = AsciiStyle
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithWordWrap(int(r.width)),
		glamour.WithStylesFromJSONBytes(style),
		glamour.WithColorProfile(r.profile),
	)
	if err != nil {
		return nil, err
	}

	r.renderer = renderer
	return r, nil
}

// Render renders markdown content to ANSI styled text
func (r *Renderer) Render(content string) (string, error) {
	return r.renderer.Render(content)
}

// Option is a function that configures the renderer
type Option func(*Renderer)

// WithWidth sets the word wrap width for the renderer
func WithWidth(width uint) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithColorProfile sets the color profile for the renderer
func WithColorProfile(profile termenv.Profile) Option {
	return func(r *Renderer) {
		r.profile = profile
	}
}
