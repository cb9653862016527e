package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Semantic colors for status indication. ANSI codes keep CLI output
// readable on 16-color terminals; the visualizer itself draws in truecolor.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
	ColorAccent    lipgloss.Color = "#FF6A00"
)

func SuccessStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(ColorSuccess) }
func ErrorStyle() lipgloss.Style   { return lipgloss.NewStyle().Foreground(ColorError) }
func WarningStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(ColorWarning) }
func InfoStyle() lipgloss.Style    { return lipgloss.NewStyle().Foreground(ColorInfo) }
func MutedStyle() lipgloss.Style   { return lipgloss.NewStyle().Foreground(ColorMuted) }

// ShouldDisableColor reports whether CLI output should be plain text:
// NO_COLOR is set (any value, per https://no-color.org/) or f is not a terminal.
func ShouldDisableColor(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	if f == nil {
		return true
	}
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// ApplyColorProfile switches lipgloss to the Ascii profile when color is
// disabled for f. Returns true if color stays enabled.
func ApplyColorProfile(f *os.File) bool {
	if ShouldDisableColor(f) {
		DisableColors()
		return false
	}
	return true
}

// ApplyColorProfileFor is ApplyColorProfile for writers that may not be
// files. Anything other than a terminal gets plain text.
func ApplyColorProfileFor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		DisableColors()
		return false
	}
	return ApplyColorProfile(f)
}

// DisableColors makes every lipgloss render produce plain text.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
