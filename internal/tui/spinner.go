package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"gitcommitai/internal/debug"
)

// Spinner animates a status line while a network call is outstanding. It
// reads no input, so it never competes with the prompts for stdin. When
// disabled (no terminal) Start and Stop do nothing.
type Spinner struct {
	out       io.Writer
	enabled   bool
	program   *tea.Program
	doneChan  chan struct{}
	startTime time.Time
}

type spinnerModel struct {
	spinner spinner.Model
	text    string
	done    bool
}

type doneMsg struct{}

func NewSpinner(out io.Writer, enabled bool) *Spinner {
	return &Spinner{out: out, enabled: enabled}
}

func (s *Spinner) Start(message string) {
	s.startTime = time.Now()
	if !s.enabled || s.program != nil {
		return
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = newStyles().spinner

	s.program = tea.NewProgram(
		spinnerModel{spinner: sp, text: message},
		tea.WithInput(nil),
		tea.WithOutput(s.out),
	)
	s.doneChan = make(chan struct{})
	go func() {
		if _, err := s.program.Run(); err != nil {
			debug.Printf("spinner: %v", err)
		}
		close(s.doneChan)
	}()
}

func (s *Spinner) Stop() {
	debug.Printf("spinner: %.2fs elapsed", time.Since(s.startTime).Seconds())
	if s.program == nil {
		return
	}
	s.program.Send(doneMsg{})
	<-s.doneChan
	s.program = nil
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case doneMsg:
		m.done = true
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.text)
}
