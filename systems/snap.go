package systems

import (
	"github.com/hollowlog/dragtext/components"
	cfg "github.com/hollowlog/dragtext/config"
	"github.com/hollowlog/dragtext/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tickSeconds = 1.0 / 60

// StartSnap starts tweening a glyph toward a fixed position.
func StartSnap(entry *donburi.Entry, toX, toY float64, seconds float32) {
	obj := components.Object.Get(entry)
	components.Snap.SetValue(entry, components.SnapData{
		X:      gween.New(float32(obj.X), float32(toX), seconds, ease.OutQuad),
		Y:      gween.New(float32(obj.Y), float32(toY), seconds, ease.OutQuad),
		Active: true,
	})
}

// ResetGlyphs sends every non-grabbed glyph back to its laid-out home.
func ResetGlyphs(e *ecs.ECS) {
	tags.Glyph.Each(e.World, func(entry *donburi.Entry) {
		g := components.Glyph.Get(entry)
		if g.Grabbed {
			return
		}
		StartSnap(entry, g.HomeX, g.HomeY, cfg.Drag.ResetSeconds)
	})
}

// UpdateSnaps advances active snap tweens. A grab mid-flight cancels the
// tween (the bind pass clears Active on drag start as well).
func UpdateSnaps(e *ecs.ECS) {
	components.Snap.Each(e.World, func(entry *donburi.Entry) {
		snap := components.Snap.Get(entry)
		if !snap.Active || snap.X == nil || snap.Y == nil {
			return
		}
		if components.Glyph.Get(entry).Grabbed {
			snap.Active = false
			return
		}

		x, doneX := snap.X.Update(tickSeconds)
		y, doneY := snap.Y.Update(tickSeconds)

		obj := components.Object.Get(entry)
		obj.X = float64(x)
		obj.Y = float64(y)
		obj.Update()

		if doneX && doneY {
			snap.Active = false
		}
	})
}

// UpdateFlashes decrements grab feedback flashes.
func UpdateFlashes(e *ecs.ECS) {
	components.Flash.Each(e.World, func(entry *donburi.Entry) {
		flash := components.Flash.Get(entry)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}
