package markdown

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r, err := NewRenderer(WithWidth(60), WithColorProfile(termenv.Ascii))
	require.NoError(t, err)

	out, err := r.Render("## Tokens\n\n| Token | Meaning |\n|---|---|\n| `HH` | hour |\n")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	assert.Contains(t, plain, "Tokens")
	assert.Contains(t, plain, "HH")
	assert.Contains(t, plain, "hour")
}

func TestRenderer_Colors(t *testing.T) {
	r, err := NewRenderer(WithColorProfile(termenv.TrueColor))
	require.NoError(t, err)

	out, err := r.Render("# Title\n")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
}

func TestWithWidth_IgnoresZero(t *testing.T) {
	r := &Renderer{width: DefaultWidth}
	WithWidth(0)(r)
	assert.Equal(t, uint(DefaultWidth), r.width)
}
