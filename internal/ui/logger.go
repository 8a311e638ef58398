// Package ui prints the CLI's user-facing status lines.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 50

type styles struct {
	info    lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	error   lipgloss.Style
	step    lipgloss.Style
	title   lipgloss.Style
	rule    lipgloss.Style
	accent  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) *styles {
	return &styles{
		info:    r.NewStyle().Foreground(lipgloss.Color("#5FAFFF")),
		success: r.NewStyle().Foreground(lipgloss.Color("#55FF55")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("#FFD75F")),
		error:   r.NewStyle().Foreground(lipgloss.Color("#FF5555")),
		step:    r.NewStyle().Foreground(lipgloss.Color("#5FD7D7")),
		title:   r.NewStyle().Bold(true),
		rule:    r.NewStyle().Faint(true),
		accent:  r.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true),
	}
}

// Logger writes status lines to Out and errors to Err.
type Logger struct {
	Out   io.Writer
	Err   io.Writer
	style *styles
}

func New(out, errOut io.Writer) *Logger {
	return &Logger{
		Out:   out,
		Err:   errOut,
		style: newStyles(lipgloss.NewRenderer(out)),
	}
}

func (l *Logger) Info(message string) {
	fmt.Fprintln(l.Out, l.style.info.Render("ℹ"), message)
}

func (l *Logger) Success(message string) {
	fmt.Fprintln(l.Out, l.style.success.Render("✔"), message)
}

func (l *Logger) Warn(message string) {
	fmt.Fprintln(l.Out, l.style.warn.Render("⚠"), message)
}

func (l *Logger) Error(message string) {
	fmt.Fprintln(l.Err, l.style.error.Render("✖"), message)
}

func (l *Logger) Step(message string) {
	fmt.Fprintln(l.Out, l.style.step.Render("→"), message)
}

// Accent highlights a value inside a status line.
func (l *Logger) Accent(s string) string {
	return l.style.accent.Render(s)
}

// CommitMessage prints message verbatim between two rules under a heading.
func (l *Logger) CommitMessage(message string) {
	rule := l.style.rule.Render(strings.Repeat("─", ruleWidth))
	fmt.Fprintln(l.Out)
	fmt.Fprintln(l.Out, l.style.title.Render("Generated commit message:"))
	fmt.Fprintln(l.Out, rule)
	fmt.Fprintln(l.Out, message)
	fmt.Fprintln(l.Out, rule)
	fmt.Fprintln(l.Out)
}
