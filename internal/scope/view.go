package scope

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/rileyhilliard/livescope/internal/errors"
	"github.com/rileyhilliard/livescope/internal/terminal"
	"github.com/rileyhilliard/livescope/internal/theme"
)

// Cell is one colored glyph on screen.
type Cell struct {
	Col, Row int
	Glyph    rune
	Color    colorful.Color
}

// PanelLine is a line of pre-styled text.
type PanelLine struct {
	Col, Row int
	Text     string
}

// Frame is everything drawn in one tick, in drawing order: CPU cells,
// memory wave, particles, then the panel over the top.
type Frame struct {
	Cells []Cell
	Panel []PanelLine
}

// Compose builds the frame for the current state without touching the
// screen.
func (m *Model) Compose() Frame {
	region := m.height / 3
	cells := make([]Cell, 0, region*m.width+m.width+m.particles.Len())

	for row := 0; row < region; row++ {
		for col := 0; col < m.width; col++ {
			intensity := m.cpuIntensity(col, row, region)
			cells = append(cells, Cell{
				Col:   col,
				Row:   row,
				Glyph: Glyph(intensity),
				Color: m.gradient.At(intensity),
			})
		}
	}

	if region > 0 {
		memColor := m.gradient.At(MemoryIntensity)
		for col := 0; col < m.width; col++ {
			cells = append(cells, Cell{
				Col:   col,
				Row:   region + m.memoryRow(col, region),
				Glyph: MemoryGlyph,
				Color: memColor,
			})
		}
	}

	for _, p := range m.particles.Particles() {
		cells = append(cells, Cell{
			Col:   int(p.X),
			Row:   int(p.Y),
			Glyph: p.Glyph,
			Color: m.gradient.At(theme.Clamp(p.Life)),
		})
	}

	return Frame{Cells: cells, Panel: m.panel()}
}

// cpuIntensity maps a CPU-region cell to its core's utilization in [0, 1].
// Rows are split evenly between cores.
func (m *Model) cpuIntensity(col, row, regionHeight int) float64 {
	cores := m.history.Cores()
	if cores == 0 || regionHeight <= 0 || col >= m.history.Width() {
		return 0
	}
	core := min(row*cores/regionHeight, cores-1)
	return theme.Clamp(m.history.ValueAt(core, col) / 100)
}

// memoryRow returns the wave marker row within the memory region: the
// memory fraction scaled to the region, plus a fixed sine ripple across
// columns.
func (m *Model) memoryRow(col, regionHeight int) int {
	if col >= m.wave.Width() {
		return regionHeight / 2
	}
	base := int(m.wave.ValueAt(col) * float64(regionHeight))
	offset := int(math.Sin(float64(col)*rippleFrequency) * rippleAmplitude)
	return max(min(base+offset, regionHeight-1), 0)
}

// Draw clears the screen, writes the frame and flushes it.
func (f Frame) Draw(s terminal.Screen) error {
	s.Clear()

	var current colorful.Color
	colored := false
	for _, c := range f.Cells {
		s.MoveTo(c.Col, c.Row)
		if !colored || c.Color != current {
			s.SetForeground(c.Color)
			current, colored = c.Color, true
		}
		s.Write(string(c.Glyph))
	}

	s.ResetColor()
	for _, line := range f.Panel {
		s.MoveTo(line.Col, line.Row)
		s.Write(line.Text)
	}
	s.ResetColor()

	if err := s.Flush(); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Couldn't draw the frame",
			"The terminal may have been closed")
	}
	return nil
}
