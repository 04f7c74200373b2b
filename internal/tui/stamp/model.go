// Package stamp hosts a timestamp label in a bubbletea program.
//
// The model is the label's text node and its tick source at once, so every
// tick, key press and restyle runs on the bubbletea update loop.
package stamp

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	log "github.com/cloudposse/timestamp/pkg/logger"
	"github.com/cloudposse/timestamp/pkg/timestamp"
	"github.com/cloudposse/timestamp/pkg/ui/theme"
)

// FlashDuration is how long an animated restyle stays highlighted.
const FlashDuration = 300 * time.Millisecond

// tickMsg fires a schedule. Messages for cancelled schedules are dropped.
type tickMsg struct {
	id int
}

// flashDoneMsg ends the highlight started by AnimateTransition.
type flashDoneMsg struct {
	seq int
}

type schedule struct {
	model  *Model
	id     int
	period time.Duration
	fn     func()
}

// Cancel drops the schedule. Its pending tick message is ignored on arrival.
func (s *schedule) Cancel() {
	delete(s.model.schedules, s.id)
}

// Model is a bubbletea model driving a single timestamp label.
type Model struct {
	label *timestamp.Label
	help  help.Model

	text    timestamp.StyledText
	view    string
	mounted bool
	renders int

	schedules map[int]*schedule
	nextID    int
	pending   []tea.Cmd

	flashing bool
	flashSeq int

	autostart bool
	quitting  bool
}

// Option configures a Model.
type Option func(*Model)

// WithAutostart starts the label when the program starts.
func WithAutostart(autostart bool) Option {
	return func(m *Model) {
		m.autostart = autostart
	}
}

// WithFullHelp shows every key binding instead of the short list.
func WithFullHelp(full bool) Option {
	return func(m *Model) {
		m.help.ShowAll = full
	}
}

// NewModel creates the model and lets factory build the label it hosts.
func NewModel(factory timestamp.Factory, opts ...Option) *Model {
	m := &Model{
		help:      help.New(),
		schedules: make(map[int]*schedule),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.label = factory(m, m)
	return m
}

// Label returns the hosted label.
func (m *Model) Label() *timestamp.Label {
	return m.label
}

// Text implements timestamp.TextNode.
func (m *Model) Text() timestamp.StyledText {
	return m.text
}

// SetText implements timestamp.TextNode.
func (m *Model) SetText(text timestamp.StyledText) {
	m.text = text
}

// RequestRender implements timestamp.TextNode. Bubbletea redraws after every
// update, so the request is only counted.
func (m *Model) RequestRender() {
	m.renders++
}

// IsMounted implements timestamp.TextNode. The model is mounted once the
// program has called Init.
func (m *Model) IsMounted() bool {
	return m.mounted
}

// ForceLayout implements timestamp.TextNode.
func (m *Model) ForceLayout() {
	m.layout()
}

// AnimateTransition implements timestamp.TextNode by highlighting the label
// for FlashDuration.
func (m *Model) AnimateTransition() {
	m.flashing = true
	m.flashSeq++
	seq := m.flashSeq
	m.pending = append(m.pending, tea.Tick(FlashDuration, func(time.Time) tea.Msg {
		return flashDoneMsg{seq: seq}
	}))
}

// Schedule implements timestamp.TickSource on top of tea.Tick.
func (m *Model) Schedule(period time.Duration, fn func()) timestamp.TickHandle {
	s := &schedule{model: m, id: m.nextID, period: period, fn: fn}
	m.nextID++
	m.schedules[s.id] = s
	m.pending = append(m.pending, s.tick())
	return s
}

func (s *schedule) tick() tea.Cmd {
	id := s.id
	return tea.Tick(s.period, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

func (m *Model) Init() tea.Cmd {
	m.mounted = true
	if m.autostart {
		m.label.Start()
	}
	return m.drain()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.label.Close()
			m.quitting = true
			return m, tea.Quit
		}
		m.handleKey(msg)

	case tickMsg:
		s, ok := m.schedules[msg.id]
		if !ok {
			log.Trace("Dropped stale tick", "schedule", msg.id)
			break
		}
		s.fn()
		// fn may have cancelled its own schedule.
		if _, ok := m.schedules[msg.id]; ok {
			m.pending = append(m.pending, s.tick())
		}

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flashing = false
		}
	}

	return m, m.drain()
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.Toggle):
		m.label.Toggle()
	case key.Matches(msg, keys.Seconds):
		m.label.UpdateUnitTickDelta(timestamp.Sec(1))
	case key.Matches(msg, keys.Minutes):
		m.label.UpdateUnitTickDelta(timestamp.Min(1))
	case key.Matches(msg, keys.Hours):
		m.label.UpdateUnitTickDelta(timestamp.Hour(1))
	case key.Matches(msg, keys.Format):
		m.label.UpdateFormat(nextFormat(m.label.Format()))
	case key.Matches(msg, keys.Color):
		attrs := m.label.Attributes()
		current, _ := attrs[timestamp.Foreground].(string)
		attrs[timestamp.Foreground] = theme.Next(current)
		m.label.UpdateAttributes(attrs, true)
	}
}

// nextFormat flips between the two built-in formats. Custom formats move to HourMinSec.
func nextFormat(f timestamp.Format) timestamp.Format {
	if f == timestamp.HourMinSec {
		return timestamp.MinSec
	}
	return timestamp.HourMinSec
}

func (m *Model) drain() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Model) layout() string {
	s := m.text.Render()
	if m.flashing {
		s = lipgloss.NewStyle().Reverse(true).Render(s)
	}
	m.view = s
	return s
}

func (m *Model) status() string {
	state := "stopped"
	if m.label.Running() {
		state = "running"
	}
	sign := "+"
	if m.label.Direction() == timestamp.Decrease {
		sign = "-"
	}
	line := fmt.Sprintf("%s · %s%s per tick · %s", state, sign, m.label.TickDelta(), m.label.Format())
	if m.help.Width > 0 {
		line = truncate.StringWithTail(line, uint(m.help.Width), "…")
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorGray)).
		Render(line)
}

func (m *Model) View() string {
	label := m.layout()
	if m.quitting {
		return label + "\n"
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, label, m.status()))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}
