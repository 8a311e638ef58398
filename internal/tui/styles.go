package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Save key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Save, k.Back, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "keep current"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort edit"),
		),
	}
}

type styles struct {
	title       lipgloss.Style
	subtitle    lipgloss.Style
	instruction lipgloss.Style
	spinner     lipgloss.Style
}

func newStyles() *styles {
	return &styles{
		title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginBottom(1),
		subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")).MarginBottom(1),
		instruction: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).MarginTop(1),
		spinner:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	}
}
