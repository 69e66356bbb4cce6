// Package clipboard copies shared results to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard backend is installed.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer is the clipboard backend. Tests swap it out.
type Writer func(text string) error

// System writes to the OS clipboard (pbcopy, xclip/xsel/wl-copy, or the
// Windows API).
func System(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
