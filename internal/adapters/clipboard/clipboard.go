package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"rapport/internal/ports"
)

// System writes to the OS clipboard
type System struct{}

// Ensure System implements Clipboard
var _ ports.Clipboard = System{}

// Available reports whether a clipboard backend exists on this machine
func (System) Available() bool {
	return !clipboard.Unsupported
}

// WriteAll replaces the clipboard contents with text
func (s System) WriteAll(text string) error {
	if !s.Available() {
		return fmt.Errorf("clipboard unavailable: install xclip, xsel or wl-clipboard")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
