package systems

import (
	"github.com/hollowlog/dragtext/components"
	cfg "github.com/hollowlog/dragtext/config"
	"github.com/hollowlog/dragtext/layout"
	"github.com/hollowlog/dragtext/systems/factory"
	"github.com/hollowlog/dragtext/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLayout is the layout pass: once measurement is current, any change to
// text, spacing or the vertical-centering flag rebuilds the glyph entities
// wholesale at their computed positions. Runs after UpdateMeasure and before
// the bind pass, which is what keeps bindings off stale positions.
func UpdateLayout(ecs *ecs.ECS) {
	runEntry, ok := components.Run.First(ecs.World)
	if !ok {
		return
	}
	run := components.Run.Get(runEntry)
	if run.NeedsMeasure() {
		// Wait for the measurement pass to catch up.
		return
	}
	if !run.NeedsLayout() {
		return
	}

	container := ContainerRect()
	positions := layout.ComputePositions(layout.Metrics{
		ContainerWidth:  container.W,
		ContainerHeight: container.H,
		Spacing:         run.Spacing,
		GlyphHeight:     cfg.Text.GlyphHeight,
		VerticalCenter:  run.VerticalCenter,
		TopOffset:       cfg.Text.TopOffset,
	}, run.Widths)

	destroyGlyphs(ecs)

	runes := []rune(run.Text)
	for i, r := range runes {
		factory.CreateGlyph(ecs, r, i, run.Widths[i],
			container.X+positions[i].Left,
			container.Y+positions[i].Top,
		)
	}

	run.LayoutGen++
	run.LaidText = run.Text
	run.LaidSpacing = run.Spacing
	run.LaidVCenter = run.VerticalCenter
}

// destroyGlyphs removes every glyph entity and its collision object.
func destroyGlyphs(ecs *ecs.ECS) {
	spaceEntry, hasSpace := components.Space.First(ecs.World)

	var doomed []*donburi.Entry
	tags.Glyph.Each(ecs.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	for _, entry := range doomed {
		obj := components.Object.Get(entry)
		if hasSpace && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
		ecs.World.Remove(entry.Entity())
	}
}
