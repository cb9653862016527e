package scope

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	panelCol        = 2
	panelFromBottom = 5
)

var (
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))
)

// panelRow is where the info panel starts: five rows from the bottom, or
// the top row on very short screens.
func panelRow(height int) int {
	return max(height-panelFromBottom, 0)
}

// statusLine summarizes the last sample and the particle state.
func (m *Model) statusLine() string {
	state := "OFF"
	if m.particles.Enabled() {
		state = "ON"
	}
	memPercent := int(m.last.MemoryFraction() * 100)

	return panelTitleStyle.Render("LiveScope "+m.version) +
		panelTextStyle.Render(fmt.Sprintf(" | CPU: %.1f%% | RAM: %d%% | Particles: %d [%s]",
			m.last.AverageCPU(), memPercent, m.particles.Len(), state))
}

// panel returns the two info panel lines.
func (m *Model) panel() []PanelLine {
	row := panelRow(m.height)
	return []PanelLine{
		{Col: panelCol, Row: row, Text: m.statusLine()},
		{Col: panelCol, Row: row + 1, Text: panelTextStyle.Render(m.keys.HelpLine())},
	}
}
