// Package timestamp implements a text label that counts elapsed time up or
// down once per second and renders it through a host text node.
package timestamp

import (
	"math"
	"time"

	log "github.com/cloudposse/timestamp/pkg/logger"
)

// TickPeriod is the interval between ticks.
const TickPeriod = time.Second

// The cursor range. Starts outside it are clamped and ticks saturate at its ends.
const (
	MinCursor = time.Duration(math.MinInt64)
	MaxCursor = time.Duration(math.MaxInt64)
)

// Label renders a moving time cursor into a TextNode.
//
// A Label is not safe for concurrent use. Every method, and every tick, must
// run on the host's thread.
type Label struct {
	node   TextNode
	source TickSource
	handle TickHandle

	cursor       time.Duration
	direction    Direction
	format       Format
	tickDelta    Scale
	attributes   Attributes
	startsAtZero bool
	zeroOffset   time.Duration
	location     *time.Location
	ticks        uint64
}

// Option configures a Label.
type Option func(*Label)

// WithAttributes sets the initial style attributes.
func WithAttributes(attrs Attributes) Option {
	return func(l *Label) {
		l.attributes = attrs.Clone()
	}
}

// WithTickDelta sets the initial tick delta. An invalid scale keeps the default.
func WithTickDelta(s Scale) Option {
	return func(l *Label) {
		l.UpdateUnitTickDelta(s)
	}
}

// WithLocation sets the time zone the cursor is rendered in.
func WithLocation(loc *time.Location) Option {
	return func(l *Label) {
		if loc != nil {
			l.location = loc
		}
	}
}

// WithZeroOffset sets the offset subtracted from the cursor before formatting
// when the label was constructed with NewZero.
func WithZeroOffset(d time.Duration) Option {
	return func(l *Label) {
		l.zeroOffset = d
	}
}

// Factory builds a label against a host's node and tick source.
type Factory func(node TextNode, source TickSource) *Label

// New creates a stopped label whose cursor starts at start, measured from the Unix epoch.
// An explicit zero start is an ordinary start: the zero offset only applies to NewZero.
func New(node TextNode, source TickSource, start time.Duration, format Format, direction Direction, opts ...Option) *Label {
	return newLabel(node, source, start, false, format, direction, opts...)
}

// NewAt creates a label starting at the wall-clock time t.
// Times outside the cursor range are clamped to MinCursor or MaxCursor.
func NewAt(node TextNode, source TickSource, t time.Time, format Format, direction Direction, opts ...Option) *Label {
	return New(node, source, t.Sub(time.Unix(0, 0)), format, direction, opts...)
}

// NewFromSeconds creates a label starting at sec seconds since the Unix epoch.
// Values outside the cursor range are clamped like NewAt; NaN starts at zero.
func NewFromSeconds(node TextNode, source TickSource, sec float64, format Format, direction Direction, opts ...Option) *Label {
	return New(node, source, CursorFromSeconds(sec), format, direction, opts...)
}

// NewZero creates a label starting at zero. Its text is shifted back by the zero offset.
func NewZero(node TextNode, source TickSource, format Format, direction Direction, opts ...Option) *Label {
	return newLabel(node, source, 0, true, format, direction, opts...)
}

func newLabel(node TextNode, source TickSource, start time.Duration, zero bool, format Format, direction Direction, opts ...Option) *Label {
	l := &Label{
		node:         node,
		source:       source,
		cursor:       start,
		direction:    direction,
		format:       format,
		tickDelta:    DefaultScale,
		attributes:   Attributes{},
		startsAtZero: zero,
		location:     time.Local,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CursorFromSeconds converts seconds since the Unix epoch to a cursor, clamping
// to the cursor range. NaN converts to zero.
func CursorFromSeconds(sec float64) time.Duration {
	ns := sec * float64(time.Second)
	switch {
	case math.IsNaN(ns):
		return 0
	case ns >= float64(MaxCursor):
		return MaxCursor
	case ns <= float64(MinCursor):
		return MinCursor
	}
	return time.Duration(ns)
}

// addCursor adds d to c, saturating at the ends of the cursor range.
func addCursor(c, d time.Duration) time.Duration {
	switch {
	case d > 0 && c > MaxCursor-d:
		return MaxCursor
	case d < 0 && c < MinCursor-d:
		return MinCursor
	}
	return c + d
}

// Start begins ticking. It does nothing if the label is already running.
func (l *Label) Start() {
	if l.handle != nil {
		return
	}
	l.handle = l.source.Schedule(TickPeriod, l.Tick)
	log.Debug("Started timestamp label", "cursor", l.cursor, "direction", l.direction, "format", l.format)
}

// Stop cancels ticking. It does nothing if the label is stopped.
func (l *Label) Stop() {
	if l.handle == nil {
		return
	}
	l.handle.Cancel()
	l.handle = nil
	log.Debug("Stopped timestamp label", "cursor", l.cursor, "ticks", l.ticks)
}

// Toggle stops a running label and starts a stopped one.
func (l *Label) Toggle() {
	if l.Running() {
		l.Stop()
		return
	}
	l.Start()
}

// Running reports whether a tick schedule is active.
func (l *Label) Running() bool {
	return l.handle != nil
}

// Close tears the label down, releasing its tick schedule.
func (l *Label) Close() {
	l.Stop()
}

// UpdateUnitTickDelta changes how far the cursor moves per tick, starting with the next tick.
// A scale that is not a finite positive amount is ignored.
func (l *Label) UpdateUnitTickDelta(s Scale) {
	if !s.Valid() {
		log.Debug("Ignored invalid tick delta", "scale", s, "current", l.tickDelta)
		return
	}
	l.tickDelta = s
}

// UpdateFormat changes the display format, starting with the next tick.
func (l *Label) UpdateFormat(f Format) {
	l.format = f
}

// UpdateAttributes replaces the style attributes and restyles the text on display.
// With animated set the host animates the change; otherwise a mounted node is
// asked to redraw and an unmounted one is laid out immediately.
func (l *Label) UpdateAttributes(attrs Attributes, animated bool) {
	l.attributes = attrs.Clone()

	if current := l.node.Text(); current.Text != "" {
		l.node.SetText(StyledText{Text: current.Text, Attributes: l.attributes.Clone()})
	}

	switch {
	case animated:
		l.node.AnimateTransition()
	case l.node.IsMounted():
		l.node.RequestRender()
	default:
		l.node.ForceLayout()
	}
}

// Tick advances the cursor by the tick delta and renders it.
// When the format yields nothing the text on display is left as is.
func (l *Label) Tick() {
	l.ticks++

	delta := l.tickDelta.Duration()
	if l.direction == Decrease {
		delta = -delta
	}
	l.cursor = addCursor(l.cursor, delta)

	text, ok := l.formatCursor()
	if !ok {
		log.Debug("Skipped timestamp render", "format", l.format, "cursor", l.cursor)
		return
	}

	l.node.SetText(StyledText{Text: text, Attributes: l.attributes.Clone()})
	log.Trace("Rendered timestamp", "text", text, "cursor", l.cursor)
}

func (l *Label) formatCursor() (string, bool) {
	t := l.cursor
	if l.startsAtZero {
		t -= l.zeroOffset
	}
	return l.format.Render(time.Unix(0, 0).Add(t).In(l.location))
}

// Cursor returns the current offset from the Unix epoch.
func (l *Label) Cursor() time.Duration { return l.cursor }

// Direction returns the direction fixed at construction.
func (l *Label) Direction() Direction { return l.direction }

// Format returns the current display format.
func (l *Label) Format() Format { return l.format }

// TickDelta returns the current tick delta.
func (l *Label) TickDelta() Scale { return l.tickDelta }

// Attributes returns a copy of the current style attributes.
func (l *Label) Attributes() Attributes { return l.attributes.Clone() }

// StartsAtZero reports whether the label was constructed with NewZero.
func (l *Label) StartsAtZero() bool { return l.startsAtZero }

// Ticks returns the number of ticks processed.
func (l *Label) Ticks() uint64 { return l.ticks }

// Text returns the text currently displayed by the node.
func (l *Label) Text() string { return l.node.Text().Text }
