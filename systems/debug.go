package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hollowlog/dragtext/components"
	cfg "github.com/hollowlog/dragtext/config"
	"github.com/hollowlog/dragtext/fonts"
	"github.com/hollowlog/dragtext/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the debug overlay.
func UpdateDebug(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}
}

// DrawDebug outlines glyph boxes and bounds walls when the overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	glyphOutline := color.RGBA{0, 255, 0, 255}
	wallOutline := color.RGBA{255, 0, 0, 255}

	tags.Glyph.Each(ecs.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		vector.StrokeRect(screen,
			float32(obj.X), float32(obj.Y),
			float32(obj.W), float32(obj.H),
			1, glyphOutline, false)
	})

	tags.Wall.Each(ecs.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		vector.StrokeRect(screen,
			float32(obj.X), float32(obj.Y),
			float32(obj.W), float32(obj.H),
			1, wallOutline, false)
	})

	status := fmt.Sprintf("glyphs %d  grabbed %d", glyphCount(ecs), grabbedCount(ecs))
	text.Draw(screen, status, fonts.Small.Get(), 8, 16, glyphOutline) //nolint:staticcheck // TODO: migrate to text/v2
}

func glyphCount(ecs *ecs.ECS) int {
	n := 0
	tags.Glyph.Each(ecs.World, func(entry *donburi.Entry) {
		n++
	})
	return n
}

// grabbedCount returns how many glyphs are held by an active drag session.
func grabbedCount(ecs *ecs.ECS) int {
	n := 0
	tags.Glyph.Each(ecs.World, func(entry *donburi.Entry) {
		if components.Glyph.Get(entry).Grabbed {
			n++
		}
	})
	return n
}
