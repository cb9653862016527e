package doctor

import (
	"fmt"

	"github.com/muesli/termenv"
)

// Smallest terminal that still shows a CPU row, the memory wave and the
// info panel.
const (
	MinWidth  = 40
	MinHeight = 8
)

// TTYCheck verifies that output goes to an interactive terminal.
type TTYCheck struct {
	IsTerminal func() bool
}

func (c *TTYCheck) Name() string     { return "terminal_tty" }
func (c *TTYCheck) Category() string { return CategoryTerminal }

func (c *TTYCheck) Run() CheckResult {
	if c.IsTerminal == nil || !c.IsTerminal() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "stdout is not a terminal",
			Suggestion: "Run livescope directly in a terminal, not through a pipe or redirect",
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "stdout is a terminal",
	}
}

// SizeCheck verifies that the terminal is large enough to be useful.
type SizeCheck struct {
	Size func() (width, height int, err error)
}

func (c *SizeCheck) Name() string     { return "terminal_size" }
func (c *SizeCheck) Category() string { return CategoryTerminal }

func (c *SizeCheck) Run() CheckResult {
	if c.Size == nil {
		return CheckResult{Name: c.Name(), Status: StatusFail, Message: "Terminal size unavailable"}
	}

	w, h, err := c.Size()
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Couldn't read the terminal size",
			Suggestion: err.Error(),
		}
	}

	msg := fmt.Sprintf("Terminal size: %dx%d", w, h)
	if w < MinWidth || h < MinHeight {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    msg,
			Suggestion: fmt.Sprintf("Resize to at least %dx%d to see the full display", MinWidth, MinHeight),
		}
	}
	return CheckResult{Name: c.Name(), Status: StatusPass, Message: msg}
}

// ColorCheck reports how faithfully theme colors can be shown.
type ColorCheck struct {
	Profile termenv.Profile
}

func (c *ColorCheck) Name() string     { return "terminal_color" }
func (c *ColorCheck) Category() string { return CategoryTerminal }

func (c *ColorCheck) Run() CheckResult {
	switch c.Profile {
	case termenv.TrueColor:
		return CheckResult{Name: c.Name(), Status: StatusPass, Message: "Color: truecolor"}
	case termenv.ANSI256:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Color: 256 colors (gradients are approximated)",
			Suggestion: "Set COLORTERM=truecolor if your terminal supports 24-bit color",
		}
	case termenv.ANSI:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Color: 16 colors (gradients are approximated)",
			Suggestion: "Use a terminal with 24-bit color for smooth gradients",
		}
	default:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Color: none (glyphs only)",
			Suggestion: "Unset NO_COLOR or check TERM if you expected color",
		}
	}
}
