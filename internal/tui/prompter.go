package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"gitcommitai/internal/confirm"
)

const menu = `Options:
  1) Commit with this message
  2) Regenerate message
  3) Edit message manually
  4) Cancel`

// Prompter reads menu choices and edited messages from a line-oriented
// input. With useEditor set, edits open the textarea editor instead.
type Prompter struct {
	in        *bufio.Reader
	out       io.Writer
	useEditor bool
	editor    func(string) (string, error)
}

func NewPrompter(in io.Reader, out io.Writer, useEditor bool) *Prompter {
	return &Prompter{
		in:        bufio.NewReader(in),
		out:       out,
		useEditor: useEditor,
		editor:    RunEditor,
	}
}

// ChooseAction prints the menu and reads until a valid choice. End of input
// is treated as cancel.
func (p *Prompter) ChooseAction() (confirm.Action, error) {
	fmt.Fprintln(p.out, menu)
	for {
		fmt.Fprint(p.out, "Enter choice (1-4): ")
		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return confirm.Cancel, fmt.Errorf("failed to read choice: %w", err)
		}
		if action, ok := confirm.ParseAction(line); ok {
			return action, nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return confirm.Cancel, nil
		}
		fmt.Fprintln(p.out, "Invalid choice, please try again.")
	}
}

// EditMessage returns the replacement text, or "" to keep current. Without
// the editor it reads a single line, so a piped menu choice after it stays
// a menu choice.
func (p *Prompter) EditMessage(current string) (string, error) {
	if p.useEditor {
		return p.editor(current)
	}

	fmt.Fprint(p.out, "Enter new commit message (leave empty to keep current): ")
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read message: %w", err)
	}
	return strings.TrimSpace(line), nil
}
