package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

// IsTTY reports whether both stdin and stdout are interactive terminals.
// The spinner and the full-screen editor are only used when this holds.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var errClipboardUnsupported = errors.New("clipboard is not available on this system")

func CopyToClipboard(content string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
