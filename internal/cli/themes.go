package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/livescope/internal/scope"
	"github.com/rileyhilliard/livescope/internal/theme"
	"github.com/rileyhilliard/livescope/internal/ui"
)

// themeSwatchWidth is how many gradient samples each swatch shows.
const themeSwatchWidth = 24

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the color themes",
	Long: `List the built-in color themes with a preview of each gradient and
the density glyphs shaded the way the CPU display shades them.

Pick one with --theme, LIVESCOPE_THEME or "theme:" in the config file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ui.ApplyColorProfileFor(cmd.OutOrStdout())
		renderThemes(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

// renderThemes prints one line per theme: name, swatch, density ramp and
// description. The default theme is marked.
func renderThemes(w io.Writer) {
	nameStyle := lipgloss.NewStyle().Bold(true).Width(8)
	glyphs := scope.DensityGlyphs[:]

	fmt.Fprintln(w)
	for _, t := range theme.All() {
		marker := " "
		if t == theme.Default {
			marker = ui.SymbolBullet
		}
		g := t.Gradient()
		fmt.Fprintf(w, " %s %s  %s  %s  %s\n",
			ui.InfoStyle().Render(marker),
			nameStyle.Render(t.String()),
			ui.RenderSwatch(g, themeSwatchWidth),
			ui.RenderDensityRamp(g, glyphs),
			ui.MutedStyle().Render(t.Description()),
		)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "   %s default\n", ui.SymbolBullet)
}
