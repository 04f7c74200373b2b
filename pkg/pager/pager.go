// Package pager shows long output in a scrollable view when it does not fit the terminal.
package pager

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	log "github.com/cloudposse/timestamp/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// PageCreator writes content, paging it when needed.
type PageCreator interface {
	Run(title, content string) error
}

type pageCreator struct {
	enablePager         bool
	out                 io.Writer
	newTeaProgram       func(model tea.Model, opts ...tea.ProgramOption) *tea.Program
	contentFitsTerminal func(content string) bool
	isTTY               func() bool
}

// New creates a page creator writing to out. With enablePager unset, or when
// out is not a terminal, content is written as is.
func New(out io.Writer, enablePager bool) PageCreator {
	return &pageCreator{
		enablePager:         enablePager,
		out:                 out,
		newTeaProgram:       tea.NewProgram,
		contentFitsTerminal: ContentFitsTerminal,
		isTTY: func() bool {
			f, ok := out.(*os.File)
			return ok && term.IsTerminal(f.Fd())
		},
	}
}

func (p *pageCreator) Run(title, content string) error {
	if !p.enablePager {
		_, err := io.WriteString(p.out, content)
		return err
	}

	if !p.isTTY() {
		log.Debug("Pager disabled: no TTY detected. Output will not be paginated.")
		_, err := io.WriteString(p.out, content)
		return err
	}

	if p.contentFitsTerminal(content) {
		_, err := io.WriteString(p.out, content)
		return err
	}

	_, err := p.newTeaProgram(
		&model{title: title, content: content},
		tea.WithAltScreen(), // use the full size of the terminal in its "alternate screen buffer".
		tea.WithOutput(p.out),
	).Run()
	return err
}

// ContentFitsTerminal reports whether content fits the height of stdout.
func ContentFitsTerminal(content string) bool {
	_, height, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		return true
	}
	return lipgloss.Height(content) <= height
}
