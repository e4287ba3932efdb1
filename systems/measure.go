package systems

import (
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hollowlog/dragtext/components"
	"github.com/hollowlog/dragtext/fonts"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateMeasure is the measurement pass: whenever the run text changes, it
// measures each rune's width against the glyph face. Nothing is drawn; widths
// come straight from the face metrics.
func UpdateMeasure(ecs *ecs.ECS) {
	runEntry, ok := components.Run.First(ecs.World)
	if !ok {
		return
	}
	run := components.Run.Get(runEntry)
	if !run.NeedsMeasure() {
		return
	}

	run.Widths = MeasureRunWidths(fonts.Glyph.Get(), run.Text)
	run.MeasuredText = run.Text
}

// MeasureRunWidths returns one width per rune of text. Runes with no
// horizontal extent (spaces, unmapped glyphs) measure 0.
func MeasureRunWidths(face font.Face, s string) []float64 {
	runes := []rune(s)
	widths := make([]float64, len(runes))
	for i, r := range runes {
		bounds := text.BoundString(face, string(r)) //nolint:staticcheck // TODO: migrate to text/v2
		widths[i] = float64(bounds.Dx())
	}
	return widths
}
