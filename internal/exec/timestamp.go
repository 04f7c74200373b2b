package exec

import (
	"context"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/colorprofile"

	errUtils "github.com/cloudposse/timestamp/errors"
	"github.com/cloudposse/timestamp/internal/plain"
	"github.com/cloudposse/timestamp/internal/tui/stamp"
	log "github.com/cloudposse/timestamp/pkg/logger"
	"github.com/cloudposse/timestamp/pkg/schema"
	"github.com/cloudposse/timestamp/pkg/timestamp"
)

// Start keywords accepted besides seconds and RFC3339 times.
const (
	StartZero = "zero"
	StartNow  = "now"
)

// now is replaced in tests.
var now = time.Now

// IsZeroStart reports whether s asks for a label that starts at zero, as
// opposed to an explicit start at the epoch such as "0".
func IsZeroStart(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", StartZero:
		return true
	}
	return false
}

// ParseStart resolves a start value to an offset from the Unix epoch.
// It accepts "zero" (or an empty string), "now", a number of seconds, or an RFC3339 time.
// Starts outside the cursor range, roughly the years 1678 to 2261, are rejected.
func ParseStart(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", StartZero:
		return 0, nil
	case StartNow:
		return now().Sub(time.Unix(0, 0)), nil
	}

	if sec, err := strconv.ParseFloat(s, 64); err == nil {
		ns := sec * float64(time.Second)
		if math.IsNaN(ns) || ns <= float64(timestamp.MinCursor) || ns >= float64(timestamp.MaxCursor) {
			return 0, startOutOfRange(s)
		}
		return time.Duration(ns), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		epoch := time.Unix(0, 0)
		if !t.After(epoch.Add(timestamp.MinCursor)) || !t.Before(epoch.Add(timestamp.MaxCursor)) {
			return 0, startOutOfRange(s)
		}
		return t.Sub(epoch), nil
	}

	return 0, errUtils.Build(errUtils.ErrInvalidStartTime).
		WithHint("Use 'zero', 'now', a number of seconds since the Unix epoch, or an RFC3339 time like 2024-01-02T15:04:05Z").
		WithContext("start", s).
		Err()
}

func startOutOfRange(s string) error {
	return errUtils.Build(errUtils.ErrInvalidStartTime).
		WithExplanation("Start is outside the supported range").
		WithHint("Use a time between the years 1678 and 2261").
		WithContext("start", s).
		Err()
}

// NewLabelFactory validates the label settings and returns a factory that builds
// the label they describe.
func NewLabelFactory(cfg schema.Label) (timestamp.Factory, error) {
	format, err := timestamp.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	if err := format.Validate(); err != nil {
		return nil, err
	}
	direction, err := timestamp.ParseDirection(cfg.Direction)
	if err != nil {
		return nil, err
	}
	scale, err := timestamp.ParseScale(cfg.Scale)
	if err != nil {
		return nil, err
	}
	start, err := ParseStart(cfg.Start)
	if err != nil {
		return nil, err
	}
	attrs, err := timestamp.ParseAttributes(cfg.Attributes)
	if err != nil {
		return nil, err
	}

	loc := time.Local
	if cfg.UTC {
		loc = time.UTC
	}

	opts := []timestamp.Option{
		timestamp.WithAttributes(attrs),
		timestamp.WithTickDelta(scale),
		timestamp.WithLocation(loc),
		timestamp.WithZeroOffset(cfg.ZeroOffset),
	}

	log.Debug("Configured timestamp label",
		"format", format, "direction", direction, "scale", scale, "start", start, "location", loc)

	if IsZeroStart(cfg.Start) {
		return func(node timestamp.TextNode, source timestamp.TickSource) *timestamp.Label {
			return timestamp.NewZero(node, source, format, direction, opts...)
		}, nil
	}
	return func(node timestamp.TextNode, source timestamp.TickSource) *timestamp.Label {
		return timestamp.New(node, source, start, format, direction, opts...)
	}, nil
}

// ExecuteRun runs the label until ctx is done or the user quits.
// Interactive output gets the terminal UI unless plain output is configured.
// Plain output keeps its styling only on a color terminal.
func ExecuteRun(ctx context.Context, cfg schema.Configuration, in io.Reader, out io.Writer, interactive bool) error {
	factory, err := NewLabelFactory(cfg.Label)
	if err != nil {
		return err
	}

	if cfg.Label.Plain || !interactive {
		// The writer downsamples styling to what the terminal supports.
		pw := colorprofile.NewWriter(out, os.Environ())
		color := interactive && pw.Profile != colorprofile.NoTTY && pw.Profile != colorprofile.Ascii
		log.Debug("Using plain output", "interactive", interactive, "profile", pw.Profile)
		return plain.Run(ctx, pw, factory,
			plain.WithColor(color),
			plain.WithTicks(cfg.Label.Ticks),
		)
	}

	if cfg.Label.Ticks > 0 {
		log.Warn("--ticks only applies to plain output, ignoring", "ticks", cfg.Label.Ticks)
	}

	model := stamp.NewModel(factory, stamp.WithAutostart(true))
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return errUtils.Build(errUtils.ErrRunProgram).
			WithCause(err).
			WithHint("Run with --plain when no interactive terminal is available").
			Err()
	}
	return nil
}
