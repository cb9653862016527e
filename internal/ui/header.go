package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in the header.
type HeaderInfo struct {
	Title   string // Section title (e.g., "Diagnostic Report")
	Version string // Version string (e.g., "v0.4.0")
}

// HeaderWidth is the default width of the header divider
const HeaderWidth = 50

// RenderHeader renders the branded header used by the non-interactive
// subcommands: "livescope <version>", an optional title, and a divider.
func RenderHeader(info HeaderInfo) string {
	nameStyle := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	versionStyle := lipgloss.NewStyle().Foreground(ColorInfo)
	titleStyle := lipgloss.NewStyle().Bold(true)

	var out strings.Builder
	out.WriteString(nameStyle.Render("livescope"))
	if info.Version != "" {
		out.WriteString(" ")
		out.WriteString(versionStyle.Render(info.Version))
	}
	out.WriteString("\n")

	if info.Title != "" {
		out.WriteString(titleStyle.Render(info.Title))
		out.WriteString("\n")
	}

	out.WriteString(MutedStyle().Render(Divider(HeaderWidth)))
	out.WriteString("\n")
	return out.String()
}

// Divider returns a heavy horizontal rule of the given width.
func Divider(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("━", width)
}
