package factory

import (
	"github.com/hollowlog/dragtext/archetypes"
	"github.com/hollowlog/dragtext/components"
	cfg "github.com/hollowlog/dragtext/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGlyph creates one positioned glyph entity. The collision object is
// the glyph's bounding box; a zero-width glyph (e.g. a space) gets a zero-width
// box and is effectively not hittable.
func CreateGlyph(ecs *ecs.ECS, r rune, index int, width, x, y float64) *donburi.Entry {
	glyph := archetypes.Glyph.Spawn(ecs)

	obj := resolv.NewObject(x, y, width, cfg.Text.GlyphHeight)
	obj.SetShape(resolv.NewRectangle(0, 0, width, cfg.Text.GlyphHeight))
	obj.Data = glyph

	components.Object.SetValue(glyph, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Glyph.SetValue(glyph, components.GlyphData{
		Rune:  r,
		Index: index,
		Width: width,
		HomeX: x,
		HomeY: y,
	})

	return glyph
}
