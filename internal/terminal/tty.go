package terminal

import (
	"bufio"
	stderrors "errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/cancelreader"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/rileyhilliard/livescope/internal/errors"
)

// TTY is a Screen backed by a real terminal.
type TTY struct {
	in  *os.File
	out *os.File

	buf    *bufio.Writer
	output *termenv.Output

	reader cancelreader.CancelReader
	keys   chan Key
	errs   chan error
	wg     sync.WaitGroup

	restore []func() error
}

// NewTTY creates a screen on the given input and output files, normally
// os.Stdin and os.Stdout. The color profile is detected from the
// environment, so NO_COLOR produces uncolored glyphs.
func NewTTY(in, out *os.File) *TTY {
	profile := termenv.NewOutput(out).EnvColorProfile()
	return newTTY(in, out, out, profile)
}

func newTTY(in, out *os.File, w io.Writer, profile termenv.Profile) *TTY {
	buf := bufio.NewWriterSize(w, 64*1024)
	return &TTY{
		in:     in,
		out:    out,
		buf:    buf,
		output: termenv.NewOutput(buf, termenv.WithProfile(profile)),
	}
}

// Size queries the current terminal size.
func (t *TTY) Size() (int, int, error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, errors.WrapWithCode(err, errors.ErrTerminal,
			"Couldn't read the terminal size",
			"livescope needs an interactive terminal; is stdout redirected?")
	}
	return w, h, nil
}

// Enter puts the input into raw mode, switches to the alternate screen,
// hides the cursor and starts reading keys. On failure everything done so
// far is undone.
func (t *TTY) Enter() error {
	fd := int(t.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Couldn't switch the terminal to raw mode",
			"Run livescope from an interactive terminal")
	}
	t.restore = append(t.restore, func() error { return term.Restore(fd, state) })

	t.output.AltScreen()
	t.output.HideCursor()
	t.restore = append(t.restore, t.leaveScreen)
	if err := t.buf.Flush(); err != nil {
		_ = t.Restore()
		return errors.WrapWithCode(err, errors.ErrTerminal, "Couldn't write to the terminal", "")
	}

	if err := t.startInput(t.in); err != nil {
		_ = t.Restore()
		return err
	}
	return nil
}

// startInput reads key presses from r on a background goroutine.
func (t *TTY) startInput(r io.Reader) error {
	reader, err := cancelreader.NewReader(r)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal, "Couldn't open terminal input", "")
	}
	t.reader = reader
	t.keys = make(chan Key, 64)
	t.errs = make(chan error, 1)

	t.wg.Add(1)
	go t.readLoop()

	t.restore = append(t.restore, func() error {
		t.reader.Cancel()
		t.wg.Wait()
		return t.reader.Close()
	})
	return nil
}

func (t *TTY) readLoop() {
	defer t.wg.Done()
	buf := make([]byte, 256)
	for {
		n, err := t.reader.Read(buf)
		for _, k := range decodeKeys(buf[:n]) {
			select {
			case t.keys <- k:
			default:
				// drop presses the loop is too slow to consume
			}
		}
		if err != nil {
			if !stderrors.Is(err, cancelreader.ErrCanceled) {
				t.errs <- errors.WrapWithCode(err, errors.ErrTerminal, "Couldn't read terminal input", "")
			}
			return
		}
	}
}

// leaveScreen resets colors, shows the cursor and leaves the alternate
// screen. bufio keeps the first write error, so a frame that failed to
// flush also fails this.
func (t *TTY) leaveScreen() error {
	t.output.Reset()
	t.output.ShowCursor()
	t.output.ExitAltScreen()
	return t.buf.Flush()
}

// Restore undoes Enter in reverse order and returns the first failure.
// Every step runs even when an earlier one fails. Later calls are no-ops.
func (t *TTY) Restore() error {
	var first error
	for i := len(t.restore) - 1; i >= 0; i-- {
		if err := t.restore[i](); err != nil && first == nil {
			first = err
		}
	}
	t.restore = nil
	return first
}

func (t *TTY) Clear() {
	t.output.ClearScreen()
}

// MoveTo places the cursor at a zero-based column and row.
func (t *TTY) MoveTo(col, row int) {
	t.output.MoveCursor(row+1, col+1)
}

// SetForeground sets the glyph color, degraded to the terminal's profile.
func (t *TTY) SetForeground(c colorful.Color) {
	if t.output.Profile == termenv.Ascii {
		return
	}
	seq := t.output.Color(c.Clamped().Hex())
	if seq == nil {
		return
	}
	_, _ = t.buf.WriteString(termenv.CSI + seq.Sequence(false) + "m")
}

func (t *TTY) ResetColor() {
	t.output.Reset()
}

func (t *TTY) Write(s string) {
	_, _ = t.buf.WriteString(s)
}

// Flush writes the buffered frame, returning the underlying write error.
func (t *TTY) Flush() error {
	return t.buf.Flush()
}

// PollKey returns the next key press, if any arrives within timeout.
func (t *TTY) PollKey(timeout time.Duration) (Key, bool, error) {
	if t.keys == nil {
		return "", false, nil
	}
	if timeout <= 0 {
		select {
		case k := <-t.keys:
			return k, true, nil
		case err := <-t.errs:
			return "", false, err
		default:
			return "", false, nil
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case k := <-t.keys:
		return k, true, nil
	case err := <-t.errs:
		return "", false, err
	case <-timer.C:
		return "", false, nil
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
