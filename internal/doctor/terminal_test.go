package doctor

import (
	"errors"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestTTYCheck(t *testing.T) {
	pass := (&TTYCheck{IsTerminal: func() bool { return true }}).Run()
	assert.Equal(t, StatusPass, pass.Status)
	assert.Equal(t, "terminal_tty", pass.Name)

	fail := (&TTYCheck{IsTerminal: func() bool { return false }}).Run()
	assert.Equal(t, StatusFail, fail.Status)
	assert.NotEmpty(t, fail.Suggestion)

	assert.Equal(t, StatusFail, (&TTYCheck{}).Run().Status)
}

func TestSizeCheck(t *testing.T) {
	size := func(w, h int, err error) func() (int, int, error) {
		return func() (int, int, error) { return w, h, err }
	}

	tests := []struct {
		name    string
		check   *SizeCheck
		status  CheckStatus
		message string
	}{
		{"large enough", &SizeCheck{Size: size(120, 40, nil)}, StatusPass, "Terminal size: 120x40"},
		{"exact minimum", &SizeCheck{Size: size(MinWidth, MinHeight, nil)}, StatusPass, "Terminal size: 40x8"},
		{"too narrow", &SizeCheck{Size: size(30, 40, nil)}, StatusWarn, "Terminal size: 30x40"},
		{"too short", &SizeCheck{Size: size(120, 5, nil)}, StatusWarn, "Terminal size: 120x5"},
		{"error", &SizeCheck{Size: size(0, 0, errors.New("not a tty"))}, StatusFail, "Couldn't read the terminal size"},
		{"no size func", &SizeCheck{}, StatusFail, "Terminal size unavailable"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := tc.check.Run()
			assert.Equal(t, tc.status, res.Status)
			assert.Equal(t, tc.message, res.Message)
		})
	}
}

func TestColorCheck(t *testing.T) {
	tests := []struct {
		profile termenv.Profile
		status  CheckStatus
		message string
	}{
		{termenv.TrueColor, StatusPass, "Color: truecolor"},
		{termenv.ANSI256, StatusWarn, "Color: 256 colors (gradients are approximated)"},
		{termenv.ANSI, StatusWarn, "Color: 16 colors (gradients are approximated)"},
		{termenv.Ascii, StatusWarn, "Color: none (glyphs only)"},
	}

	for _, tc := range tests {
		t.Run(tc.message, func(t *testing.T) {
			res := (&ColorCheck{Profile: tc.profile}).Run()
			assert.Equal(t, tc.status, res.Status)
			assert.Equal(t, tc.message, res.Message)
			assert.Equal(t, CategoryTerminal, (&ColorCheck{}).Category())
		})
	}
}
