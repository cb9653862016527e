// Package terminal owns the interactive terminal: raw input, the alternate
// screen, cursor placement and truecolor glyph output.
//
// Frame output is buffered and only reaches the terminal on Flush, so a
// whole frame is written in one go in the order the caller issued it.
package terminal

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Key is a decoded key press, named the way bubbles/key bindings expect
// ("q", "ctrl+c", "esc", "up", ...).
type Key string

// String implements fmt.Stringer so a Key can be passed to key.Matches.
func (k Key) String() string {
	return string(k)
}

// Screen is the drawing surface the visualizer renders to.
//
// Drawing calls are buffered and never fail on their own; the first write
// error is reported by Flush.
type Screen interface {
	// Size reports the terminal dimensions in cells.
	Size() (width, height int, err error)

	// Enter switches to raw mode and the alternate screen and hides the cursor.
	Enter() error
	// Restore undoes Enter. It is safe to call more than once.
	Restore() error

	Clear()
	MoveTo(col, row int)
	SetForeground(c colorful.Color)
	ResetColor()
	Write(s string)
	Flush() error

	// PollKey returns the next pending key press, waiting at most timeout.
	// A zero timeout never blocks.
	PollKey(timeout time.Duration) (Key, bool, error)
}
