package timestamp

import "time"

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=$GOFILE -destination=mock_host_test.go -package=timestamp_test

// TextNode is the host text primitive the label renders into.
type TextNode interface {
	// Text returns the styled text currently displayed.
	Text() StyledText
	// SetText replaces the displayed text.
	SetText(StyledText)
	// RequestRender asks the host to redraw on its next pass.
	RequestRender()
	// IsMounted reports whether the node is attached to a running host.
	IsMounted() bool
	// ForceLayout runs a layout pass synchronously.
	ForceLayout()
	// AnimateTransition asks the host to animate to the current text.
	AnimateTransition()
}

// TickSource calls fn every period until the returned handle is cancelled.
// Calls must be serialized with every other use of the label.
type TickSource interface {
	Schedule(period time.Duration, fn func()) TickHandle
}

// TickHandle is an active schedule.
type TickHandle interface {
	// Cancel stops the schedule. No call to fn starts after Cancel returns.
	Cancel()
}
