package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hollowlog/dragtext/components"
	cfg "github.com/hollowlog/dragtext/config"
	"github.com/hollowlog/dragtext/fonts"
	"github.com/hollowlog/dragtext/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for glyph rendering (lazy initialized)
var glyphFontFace font.Face

// DrawContainer renders the bounded drag area.
func DrawContainer(ecs *ecs.ECS, screen *ebiten.Image) {
	container := ContainerRect()

	vector.FillRect(
		screen,
		float32(container.X), float32(container.Y),
		float32(container.W), float32(container.H),
		cfg.Text.FillColor,
		false,
	)
	vector.StrokeRect(
		screen,
		float32(container.X), float32(container.Y),
		float32(container.W), float32(container.H),
		1,
		cfg.Text.BorderColor,
		false,
	)
}

// DrawGlyphs renders every glyph at its current position. Glyphs share one
// baseline offset from the box top; the ink's left bearing is subtracted so
// the measured box hugs the drawn character.
func DrawGlyphs(ecs *ecs.ECS, screen *ebiten.Image) {
	if glyphFontFace == nil {
		glyphFontFace = fonts.Glyph.Get()
	}
	ascent := glyphFontFace.Metrics().Ascent.Ceil()

	tags.Glyph.Each(ecs.World, func(entry *donburi.Entry) {
		g := components.Glyph.Get(entry)
		obj := components.Object.Get(entry)

		bounds := text.BoundString(glyphFontFace, string(g.Rune)) //nolint:staticcheck // TODO: migrate to text/v2

		textColor := cfg.Text.GlyphColor
		if g.Grabbed || components.Flash.Get(entry).Duration > 0 {
			textColor = cfg.Text.GrabbedColor
		}

		x := int(obj.X) - bounds.Min.X
		y := int(obj.Y) + ascent
		text.Draw(screen, string(g.Rune), glyphFontFace, x, y, textColor)
	})
}
