// Package plain hosts a timestamp label on a line-oriented writer, one line per
// tick. It is used when stdout is not a terminal or when --plain is set.
package plain

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/cockroachdb/errors"

	log "github.com/cloudposse/timestamp/pkg/logger"
	"github.com/cloudposse/timestamp/pkg/timestamp"
)

// Node is a write-only timestamp.TextNode. Every SetText prints a line.
// Restyles print nothing; they show on the next line.
type Node struct {
	w     io.Writer
	color bool
	text  timestamp.StyledText
	lines int
	err   error
}

// NewNode creates a Node writing to w. Without color the styled text is stripped
// of escape sequences before it is written.
func NewNode(w io.Writer, color bool) *Node {
	return &Node{w: w, color: color}
}

// Text implements timestamp.TextNode.
func (n *Node) Text() timestamp.StyledText {
	return n.text
}

// SetText implements timestamp.TextNode.
func (n *Node) SetText(text timestamp.StyledText) {
	n.text = text
	if n.err != nil {
		return
	}

	line := text.Render()
	if !n.color {
		line = ansi.Strip(line)
	}
	if _, err := fmt.Fprintln(n.w, line); err != nil {
		n.err = errors.Wrap(err, "write timestamp")
		return
	}
	n.lines++
}

// RequestRender implements timestamp.TextNode.
func (n *Node) RequestRender() {}

// IsMounted implements timestamp.TextNode. A writer is always attached.
func (n *Node) IsMounted() bool {
	return true
}

// ForceLayout implements timestamp.TextNode.
func (n *Node) ForceLayout() {}

// AnimateTransition implements timestamp.TextNode.
func (n *Node) AnimateTransition() {}

// Lines returns the number of lines written.
func (n *Node) Lines() int {
	return n.lines
}

// Err returns the first write error, if any.
func (n *Node) Err() error {
	return n.err
}

type options struct {
	color bool
	ticks uint64
}

// Option configures Run.
type Option func(*options)

// WithColor keeps the label's styling in the output.
func WithColor(color bool) Option {
	return func(o *options) {
		o.color = color
	}
}

// WithTicks stops after n ticks. Zero runs until ctx is done.
func WithTicks(n uint64) Option {
	return func(o *options) {
		o.ticks = n
	}
}

// runSource ends the run once the label has ticked limit times or the node
// has failed to write.
type runSource struct {
	timestamp.TickSource
	node  *Node
	limit uint64
	count uint64
	done  context.CancelFunc
}

func (s *runSource) Schedule(period time.Duration, fn func()) timestamp.TickHandle {
	return s.TickSource.Schedule(period, func() {
		if s.limit > 0 && s.count >= s.limit {
			return
		}
		fn()
		s.count++
		if s.node.Err() != nil || (s.limit > 0 && s.count >= s.limit) {
			s.done()
		}
	})
}

// Run starts the label built by factory and prints it to w until ctx is done,
// the tick limit is reached or a write fails. The context ending, by
// cancellation or deadline, is not an error.
func Run(ctx context.Context, w io.Writer, factory timestamp.Factory, opts ...Option) error {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	dispatcher := timestamp.NewDispatcher()
	node := NewNode(w, o.color)
	source := &runSource{TickSource: dispatcher, node: node, limit: o.ticks, done: cancel}
	label := factory(node, source)

	errCh := make(chan error, 1)
	go func() { errCh <- dispatcher.Run(ctx) }()

	if err := dispatcher.Post(ctx, func() {
		label.Start()
		log.Debug("Started plain output", "ticks", o.ticks, "color", o.color)
	}); err != nil {
		<-errCh
		return nil
	}

	err := <-errCh
	// The run loop has exited, so the label is ours again.
	label.Close()
	log.Debug("Stopped plain output", "lines", node.Lines())

	if node.Err() != nil {
		return node.Err()
	}
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
