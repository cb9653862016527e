package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	lserrors "github.com/rileyhilliard/livescope/internal/errors"
)

// FarewellMessage is printed after the terminal has been restored on a clean exit.
const FarewellMessage = "LiveScope terminated. Thanks for watching the show!"

// PrintFarewell writes the farewell line to w.
func PrintFarewell(w io.Writer) {
	fmt.Fprintln(w, InfoStyle().Render(FarewellMessage))
}

// PrintWarning writes a single warning line to w.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", WarningStyle().Render(SymbolWarning), msg)
}

// RenderError formats err for the terminal. Structured errors keep their
// three-part layout with the headline in red and the detail lines muted;
// anything else is rendered as a single failed line.
func RenderError(err error) string {
	if err == nil {
		return ""
	}

	var lsErr *lserrors.Error
	if !errors.As(err, &lsErr) {
		return ErrorStyle().Render(SymbolFail+" "+err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString(ErrorStyle().Bold(true).Render(SymbolFail + " " + lsErr.Message))
	b.WriteString("\n")
	if lsErr.Cause != nil {
		b.WriteString("\n  ")
		b.WriteString(lsErr.Cause.Error())
		b.WriteString("\n")
	}
	if lsErr.Suggestion != "" {
		b.WriteString("\n  ")
		b.WriteString(MutedStyle().Render(lsErr.Suggestion))
		b.WriteString("\n")
	}
	return b.String()
}

// PrintError writes RenderError(err) to w.
func PrintError(w io.Writer, err error) {
	fmt.Fprint(w, RenderError(err))
}
