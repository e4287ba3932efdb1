// Package layout computes absolute glyph placements for a centered text run.
// It is pure math over measured widths so it stays independent of any
// rendering backend and fully unit-testable.
package layout

// Metrics describes the container and styling inputs of one layout pass.
type Metrics struct {
	ContainerWidth  float64
	ContainerHeight float64
	Spacing         float64 // pixels between adjacent glyph boxes
	GlyphHeight     float64 // assumed box height when vertically centering
	VerticalCenter  bool
	TopOffset       float64 // fixed top position when VerticalCenter is false
}

// Position is an absolute glyph placement within the container.
type Position struct {
	Left float64
	Top  float64
}

// TotalRunWidth returns the width the run occupies: the sum of glyph widths
// plus one spacing gap between each adjacent pair. A zero-width glyph still
// consumes its gap unless it is the last glyph.
func TotalRunWidth(widths []float64, spacing float64) float64 {
	if len(widths) == 0 {
		return 0
	}
	total := spacing * float64(len(widths)-1)
	for _, w := range widths {
		total += w
	}
	return total
}

// ComputePositions lays glyphs left-to-right in input order and centers the
// run horizontally. The first left offset may be negative when the run is
// wider than the container; overflow is allowed and clips visually.
func ComputePositions(m Metrics, widths []float64) []Position {
	positions := make([]Position, len(widths))
	if len(widths) == 0 {
		return positions
	}

	top := m.TopOffset
	if m.VerticalCenter {
		top = (m.ContainerHeight - m.GlyphHeight) / 2
	}

	left := (m.ContainerWidth - TotalRunWidth(widths, m.Spacing)) / 2
	for i, w := range widths {
		positions[i] = Position{Left: left, Top: top}
		left += w + m.Spacing
	}
	return positions
}
