package ui

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lserrors "github.com/rileyhilliard/livescope/internal/errors"
	"github.com/rileyhilliard/livescope/internal/theme"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if had {
			os.Setenv(key, old)
		}
	})
}

func TestShouldDisableColor(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	t.Run("NO_COLOR set", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.True(t, ShouldDisableColor(w))
	})

	t.Run("pipe", func(t *testing.T) {
		unsetEnv(t, "NO_COLOR")
		assert.True(t, ShouldDisableColor(w))
	})

	t.Run("nil file", func(t *testing.T) {
		unsetEnv(t, "NO_COLOR")
		assert.True(t, ShouldDisableColor(nil))
	})
}

func TestApplyColorProfileOnPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	assert.False(t, ApplyColorProfile(w))
	assert.Equal(t, "plain", SuccessStyle().Render("plain"))
}

func TestApplyColorProfileForBuffer(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, ApplyColorProfileFor(&buf))
}

func TestStylesRenderText(t *testing.T) {
	styles := map[string]lipgloss.Style{
		"success": SuccessStyle(),
		"error":   ErrorStyle(),
		"warning": WarningStyle(),
		"info":    InfoStyle(),
		"muted":   MutedStyle(),
	}
	for name, style := range styles {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "text", style.Render("text"))
		})
	}
}

func TestRenderSwatch(t *testing.T) {
	g := theme.Fire.Gradient()

	assert.Equal(t, "█████", RenderSwatch(g, 5))
	assert.Equal(t, "█", RenderSwatch(g, 1))
	assert.Empty(t, RenderSwatch(g, 0))
	assert.Empty(t, RenderSwatch(nil, 10))
}

func TestRenderSwatchTrueColor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	g := theme.GradientFunc(func(t float64) colorful.Color {
		return colorful.Color{R: t, G: 0, B: 0}
	})

	out := RenderSwatch(g, 2)
	assert.Contains(t, out, "38;2;0;0;0")
	assert.Contains(t, out, "38;2;255;0;0")
}

func TestRenderDensityRamp(t *testing.T) {
	glyphs := []rune(" ·░▒▓▆▇█")
	out := RenderDensityRamp(theme.Ocean.Gradient(), glyphs)
	assert.Equal(t, string(glyphs), out)
	assert.Empty(t, RenderDensityRamp(theme.Ocean.Gradient(), nil))
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(HeaderInfo{Title: "Diagnostic Report", Version: "v1.2.3"})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "livescope v1.2.3", lines[0])
	assert.Equal(t, "Diagnostic Report", lines[1])
	assert.Equal(t, HeaderWidth, utf8.RuneCountInString(lines[2]))

	out = RenderHeader(HeaderInfo{})
	assert.True(t, strings.HasPrefix(out, "livescope\n"))
}

func TestDivider(t *testing.T) {
	assert.Equal(t, "━━━", Divider(3))
	assert.Empty(t, Divider(0))
	assert.Empty(t, Divider(-1))
}

func TestPrintFarewell(t *testing.T) {
	var buf bytes.Buffer
	PrintFarewell(&buf)
	assert.Equal(t, FarewellMessage+"\n", buf.String())
}

func TestPrintWarning(t *testing.T) {
	var buf bytes.Buffer
	PrintWarning(&buf, "unknown theme \"lava\", using fire")
	assert.Equal(t, SymbolWarning+" unknown theme \"lava\", using fire\n", buf.String())
}

func TestRenderError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, RenderError(nil))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.Equal(t, "✗ boom\n", RenderError(errors.New("boom")))
	})

	t.Run("structured error", func(t *testing.T) {
		err := lserrors.WrapWithCode(errors.New("not a tty"), lserrors.ErrTerminal,
			"Can't enter raw mode", "Run livescope from an interactive terminal")
		out := RenderError(err)
		assert.Equal(t, "✗ Can't enter raw mode\n\n  not a tty\n\n  Run livescope from an interactive terminal\n", out)
	})

	t.Run("wrapped structured error", func(t *testing.T) {
		inner := lserrors.New(lserrors.ErrConfig, "Bad config", "")
		out := RenderError(errors.Join(inner))
		assert.Equal(t, "✗ Bad config\n", out)
	})
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New("x"))
	assert.Equal(t, "✗ x\n", buf.String())
}
