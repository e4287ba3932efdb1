package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePositionsCountMatchesInput(t *testing.T) {
	m := Metrics{ContainerWidth: 640, ContainerHeight: 360, Spacing: 12, GlyphHeight: 56, VerticalCenter: true}

	for _, widths := range [][]float64{
		{10},
		{10, 20},
		{5, 0, 5, 31.25},
	} {
		positions := ComputePositions(m, widths)
		assert.Len(t, positions, len(widths))
	}
}

func TestComputePositionsScenario(t *testing.T) {
	// text "AB", widths [10, 20], spacing 5, container 100 wide
	m := Metrics{ContainerWidth: 100, ContainerHeight: 50, Spacing: 5, GlyphHeight: 20, VerticalCenter: true}
	widths := []float64{10, 20}

	assert.Equal(t, 35.0, TotalRunWidth(widths, m.Spacing))

	positions := ComputePositions(m, widths)
	require.Len(t, positions, 2)
	assert.Equal(t, 32.5, positions[0].Left)
	assert.Equal(t, 47.5, positions[1].Left)
}

func TestComputePositionsAdjacentGaps(t *testing.T) {
	m := Metrics{ContainerWidth: 800, ContainerHeight: 400, Spacing: 7.5, GlyphHeight: 40, VerticalCenter: true}
	widths := []float64{12, 0, 33.5, 8, 21}

	positions := ComputePositions(m, widths)
	require.Len(t, positions, len(widths))

	// Every adjacent pair is separated by exactly width[i] + spacing, including
	// the zero-width glyph, which still consumes its gap.
	for i := 0; i+1 < len(positions); i++ {
		assert.InDelta(t, widths[i]+m.Spacing, positions[i+1].Left-positions[i].Left, 1e-9, "gap after glyph %d", i)
	}
}

func TestComputePositionsHorizontalCentering(t *testing.T) {
	widths := []float64{14, 3, 27}

	for _, containerWidth := range []float64{40, 100, 333.5, 1920} {
		m := Metrics{ContainerWidth: containerWidth, ContainerHeight: 100, Spacing: 4, GlyphHeight: 30, VerticalCenter: true}
		positions := ComputePositions(m, widths)
		want := (containerWidth - TotalRunWidth(widths, m.Spacing)) / 2
		assert.Equal(t, want, positions[0].Left, "container width %v", containerWidth)
	}
}

func TestComputePositionsOverflowNotClamped(t *testing.T) {
	// The run is wider than the container; the start offset goes negative and
	// is preserved as-is.
	m := Metrics{ContainerWidth: 50, ContainerHeight: 100, Spacing: 10, GlyphHeight: 30, VerticalCenter: true}
	positions := ComputePositions(m, []float64{40, 40})

	assert.Equal(t, (50.0-90.0)/2, positions[0].Left)
	assert.Less(t, positions[0].Left, 0.0)
}

func TestComputePositionsVertical(t *testing.T) {
	widths := []float64{10, 10}

	centered := ComputePositions(Metrics{
		ContainerWidth: 200, ContainerHeight: 120, Spacing: 2,
		GlyphHeight: 40, VerticalCenter: true, TopOffset: 999,
	}, widths)
	for _, p := range centered {
		assert.Equal(t, 40.0, p.Top)
	}

	fixed := ComputePositions(Metrics{
		ContainerWidth: 200, ContainerHeight: 120, Spacing: 2,
		GlyphHeight: 40, VerticalCenter: false, TopOffset: 17,
	}, widths)
	for _, p := range fixed {
		assert.Equal(t, 17.0, p.Top)
	}
}

func TestComputePositionsEmptyRun(t *testing.T) {
	m := Metrics{ContainerWidth: 640, ContainerHeight: 360, Spacing: 12, GlyphHeight: 56, VerticalCenter: true}

	assert.Empty(t, ComputePositions(m, nil))
	assert.Equal(t, 0.0, TotalRunWidth(nil, 12))
}

func TestComputePositionsIdempotent(t *testing.T) {
	m := Metrics{ContainerWidth: 777, ContainerHeight: 431, Spacing: 9, GlyphHeight: 48, VerticalCenter: true}
	widths := []float64{11, 0, 23.75, 8}

	first := ComputePositions(m, widths)
	second := ComputePositions(m, widths)
	assert.Equal(t, first, second)
}

func TestSpacingChangeKeepsOrder(t *testing.T) {
	widths := []float64{10, 20, 30}
	narrow := ComputePositions(Metrics{ContainerWidth: 400, ContainerHeight: 200, Spacing: 4, GlyphHeight: 40, VerticalCenter: true}, widths)
	wide := ComputePositions(Metrics{ContainerWidth: 400, ContainerHeight: 200, Spacing: 24, GlyphHeight: 40, VerticalCenter: true}, widths)

	// Order is preserved under any spacing; only the gaps change.
	for i := 0; i+1 < len(widths); i++ {
		assert.Less(t, narrow[i].Left, narrow[i+1].Left)
		assert.Less(t, wide[i].Left, wide[i+1].Left)
		assert.Equal(t, widths[i]+4, narrow[i+1].Left-narrow[i].Left)
		assert.Equal(t, widths[i]+24, wide[i+1].Left-wide[i].Left)
	}
}
