// Package testing provides an in-memory terminal.Screen for tests.
package testing

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/rileyhilliard/livescope/internal/terminal"
)

// FakeScreen records drawing into a cell grid instead of a real terminal.
// Only the most recently flushed frame is visible through Text and RuneAt.
type FakeScreen struct {
	mu sync.Mutex

	width, height int
	keys          []terminal.Key

	pending [][]cell
	visible [][]cell
	col     int
	row     int
	fg      colorful.Color

	// Injected failures
	SizeErr    error
	EnterErr   error
	FlushErr   error
	PollErr    error
	RestoreErr error

	// Tracking for assertions
	Ops          []string
	Entered      bool
	RestoreCalls int
	FlushCalls   int
	PollTimeouts []time.Duration
}

type cell struct {
	r     rune
	color colorful.Color
}

// NewFakeScreen creates a screen of the given size.
func NewFakeScreen(width, height int) *FakeScreen {
	f := &FakeScreen{width: width, height: height}
	f.pending = f.blank()
	f.visible = f.blank()
	return f
}

func (f *FakeScreen) blank() [][]cell {
	grid := make([][]cell, f.height)
	for i := range grid {
		grid[i] = make([]cell, f.width)
		for j := range grid[i] {
			grid[i][j].r = ' '
		}
	}
	return grid
}

// QueueKeys schedules key presses returned by successive PollKey calls.
func (f *FakeScreen) QueueKeys(keys ...terminal.Key) *FakeScreen {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, keys...)
	return f
}

func (f *FakeScreen) Size() (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SizeErr != nil {
		return 0, 0, f.SizeErr
	}
	return f.width, f.height, nil
}

func (f *FakeScreen) Enter() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Ops = append(f.Ops, "enter")
	if f.EnterErr != nil {
		return f.EnterErr
	}
	f.Entered = true
	return nil
}

func (f *FakeScreen) Restore() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Ops = append(f.Ops, "restore")
	f.Entered = false
	f.RestoreCalls++
	return f.RestoreErr
}

func (f *FakeScreen) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Ops = append(f.Ops, "clear")
	f.pending = f.blank()
	f.col, f.row = 0, 0
}

func (f *FakeScreen) MoveTo(col, row int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.col, f.row = col, row
}

func (f *FakeScreen) SetForeground(c colorful.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fg = c
}

func (f *FakeScreen) ResetColor() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fg = colorful.Color{}
}

// Write places text at the cursor, dropping anything off screen.
// Styling escape sequences are stripped.
func (f *FakeScreen) Write(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range ansi.Strip(s) {
		if f.row >= 0 && f.row < f.height && f.col >= 0 && f.col < f.width {
			f.pending[f.row][f.col] = cell{r: r, color: f.fg}
		}
		f.col++
	}
}

func (f *FakeScreen) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Ops = append(f.Ops, "flush")
	f.FlushCalls++
	if f.FlushErr != nil {
		return f.FlushErr
	}
	for i := range f.pending {
		copy(f.visible[i], f.pending[i])
	}
	return nil
}

func (f *FakeScreen) PollKey(timeout time.Duration) (terminal.Key, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.PollTimeouts = append(f.PollTimeouts, timeout)
	if f.PollErr != nil {
		return "", false, f.PollErr
	}
	if len(f.keys) == 0 {
		return "", false, nil
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k, true, nil
}

// Text returns a flushed row with trailing spaces trimmed.
func (f *FakeScreen) Text(row int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row < 0 || row >= f.height {
		return ""
	}
	var b strings.Builder
	for _, c := range f.visible[row] {
		b.WriteRune(c.r)
	}
	return strings.TrimRight(b.String(), " ")
}

// RuneAt returns the flushed glyph at a cell.
func (f *FakeScreen) RuneAt(col, row int) rune {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row < 0 || row >= f.height || col < 0 || col >= f.width {
		return 0
	}
	return f.visible[row][col].r
}

// ColorAt returns the flushed foreground color at a cell.
func (f *FakeScreen) ColorAt(col, row int) colorful.Color {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row < 0 || row >= f.height || col < 0 || col >= f.width {
		return colorful.Color{}
	}
	return f.visible[row][col].color
}
