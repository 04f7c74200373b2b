// Package theme holds the named colors shared by the label styles, the terminal
// host and the error formatter.
package theme

import (
	"strings"

	"github.com/samber/lo"
)

// Named palette colors.
const (
	ColorBlack   = "#000000"
	ColorRed     = "#FF5555"
	ColorGreen   = "#50FA7B"
	ColorYellow  = "#F1FA8C"
	ColorBlue    = "#6272A4"
	ColorMagenta = "#FF79C6"
	ColorCyan    = "#8BE9FD"
	ColorWhite   = "#F8F8F2"
	ColorGray    = "#808080"
	ColorOrange  = "#FFB86C"

	// ColorBorder is used for table borders.
	ColorBorder = "#5F5FD7"
)

var palette = map[string]string{
	"black":   ColorBlack,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"gray":    ColorGray,
	"grey":    ColorGray,
	"orange":  ColorOrange,
}

// LookupColor resolves a palette name (case-insensitive) to its hex value.
func LookupColor(name string) (string, bool) {
	c, ok := palette[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Cycle is the order the terminal host steps through when recoloring the label.
var Cycle = []string{"white", "cyan", "green", "yellow", "orange", "magenta", "red"}

// Next returns the palette name that follows name in Cycle.
// Unknown names restart the cycle.
func Next(name string) string {
	_, idx, ok := lo.FindIndexOf(Cycle, func(c string) bool {
		return strings.EqualFold(c, name)
	})
	if !ok {
		return Cycle[0]
	}
	return Cycle[(idx+1)%len(Cycle)]
}
