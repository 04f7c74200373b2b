// Package timestamptest provides a virtual-time tick source and a recording
// text node for exercising timestamp labels without a terminal.
package timestamptest

import (
	"slices"
	"time"

	"github.com/cloudposse/timestamp/pkg/timestamp"
)

// ManualSource is a TickSource driven by Advance instead of a wall clock.
type ManualSource struct {
	now       time.Duration
	schedules []*manualHandle
	scheduled int
}

type manualHandle struct {
	src       *ManualSource
	period    time.Duration
	next      time.Duration
	fn        func()
	cancelled bool
}

// NewManualSource creates a ManualSource at virtual time zero.
func NewManualSource() *ManualSource {
	return &ManualSource{}
}

// Schedule implements timestamp.TickSource. The first call is due one period from now.
func (s *ManualSource) Schedule(period time.Duration, fn func()) timestamp.TickHandle {
	h := &manualHandle{src: s, period: period, next: s.now + period, fn: fn}
	s.schedules = append(s.schedules, h)
	s.scheduled++
	return h
}

// Cancel implements timestamp.TickHandle.
func (h *manualHandle) Cancel() {
	h.cancelled = true
}

// Advance moves virtual time forward by d, running every callback that falls due
// in time order. It returns the number of callbacks run.
func (s *ManualSource) Advance(d time.Duration) int {
	target := s.now + d
	fired := 0
	for {
		s.schedules = slices.DeleteFunc(s.schedules, func(h *manualHandle) bool { return h.cancelled })
		var next *manualHandle
		for _, h := range s.schedules {
			if h.next <= target && (next == nil || h.next < next.next) {
				next = h
			}
		}
		if next == nil {
			break
		}
		s.now = next.next
		next.next += next.period
		next.fn()
		fired++
	}
	s.now = target
	return fired
}

// Active returns the number of schedules not yet cancelled.
func (s *ManualSource) Active() int {
	n := 0
	for _, h := range s.schedules {
		if !h.cancelled {
			n++
		}
	}
	return n
}

// Scheduled returns how many times Schedule has been called.
func (s *ManualSource) Scheduled() int {
	return s.scheduled
}

// Now returns the virtual time elapsed since the source was created.
func (s *ManualSource) Now() time.Duration {
	return s.now
}

// Node is a TextNode that records every call made to it.
type Node struct {
	Mounted     bool
	Current     timestamp.StyledText
	History     []timestamp.StyledText
	Renders     int
	Layouts     int
	Transitions int
}

// Text implements timestamp.TextNode.
func (n *Node) Text() timestamp.StyledText { return n.Current }

// SetText implements timestamp.TextNode.
func (n *Node) SetText(t timestamp.StyledText) {
	n.Current = t
	n.History = append(n.History, t)
}

// RequestRender implements timestamp.TextNode.
func (n *Node) RequestRender() { n.Renders++ }

// IsMounted implements timestamp.TextNode.
func (n *Node) IsMounted() bool { return n.Mounted }

// ForceLayout implements timestamp.TextNode.
func (n *Node) ForceLayout() { n.Layouts++ }

// AnimateTransition implements timestamp.TextNode.
func (n *Node) AnimateTransition() { n.Transitions++ }
