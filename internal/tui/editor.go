package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// editorModel is a full-screen textarea for rewriting a commit message.
// ctrl+s saves; esc and ctrl+c leave the message as it was.
type editorModel struct {
	textarea textarea.Model
	help     help.Model
	keys     keyMap
	style    *styles
	saved    bool
	done     bool
}

func newEditorModel(current string) editorModel {
	ta := textarea.New()
	ta.SetWidth(80)
	ta.SetHeight(12)
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.KeyMap.InsertNewline.SetEnabled(true)
	ta.SetValue(current)
	ta.Focus()

	return editorModel{
		textarea: ta,
		help:     help.New(),
		keys:     defaultKeyMap(),
		style:    newStyles(),
	}
}

func (m editorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Save):
			m.saved = true
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		if msg.Width > 8 {
			m.textarea.SetWidth(msg.Width - 4)
		}
		if msg.Height > 12 {
			m.textarea.SetHeight(msg.Height - 10)
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m editorModel) View() string {
	if m.done {
		return ""
	}
	s := m.style

	title := s.title.Render("Edit Commit Message")
	subtitle := s.subtitle.Render("Save an empty message to keep the current one")

	return title + "\n" + subtitle + "\n\n" + m.textarea.View() + "\n" + s.instruction.Render(m.help.View(m.keys))
}

// result returns the edited text, or "" when the user left without saving.
func (m editorModel) result() string {
	if !m.saved {
		return ""
	}
	return m.textarea.Value()
}

// RunEditor opens the editor on current and returns the replacement text.
// An empty result means keep the current message.
func RunEditor(current string) (string, error) {
	p := tea.NewProgram(newEditorModel(current), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("editor failed: %w", err)
	}
	m, ok := final.(editorModel)
	if !ok {
		return "", nil
	}
	return m.result(), nil
}
