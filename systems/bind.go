package systems

import (
	"log"
	"sort"

	"github.com/hollowlog/dragtext/components"
	cfg "github.com/hollowlog/dragtext/config"
	"github.com/hollowlog/dragtext/drag"
	"github.com/hollowlog/dragtext/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// glyphTarget adapts a glyph's collision object to the drag capability.
type glyphTarget struct {
	obj *resolv.Object
}

func (t *glyphTarget) Rect() drag.Rect {
	return drag.Rect{X: t.obj.X, Y: t.obj.Y, W: t.obj.W, H: t.obj.H}
}

func (t *glyphTarget) SetPosition(x, y float64) {
	t.obj.X = x
	t.obj.Y = y
	t.obj.Update()
}

// ResolveMove trims a glide step against the container walls, one axis at a
// time, so a flung glyph comes to rest flush with the bounds.
func (t *glyphTarget) ResolveMove(dx, dy float64) (float64, float64) {
	if dx != 0 {
		if check := t.obj.Check(dx, 0, tags.ResolvBounds); check != nil {
			if walls := check.ObjectsByTags(tags.ResolvBounds); len(walls) > 0 {
				dx = check.ContactWithObject(walls[0]).X()
			}
		}
	}
	if dy != 0 {
		if check := t.obj.Check(0, dy, tags.ResolvBounds); check != nil {
			if walls := check.ObjectsByTags(tags.ResolvBounds); len(walls) > 0 {
				dy = check.ContactWithObject(walls[0]).Y()
			}
		}
	}
	return dx, dy
}

// NewUpdateBindings creates the bind pass: once layout has committed, every
// glyph is registered with the binder. Reruns whenever the layout generation,
// the direction, or the callback identity changes, disposing the previous
// handles first so a single gesture never reaches two bindings.
func NewUpdateBindings(binder *drag.PointerBinder) ecs.System {
	var handles []drag.Handle

	return func(e *ecs.ECS) {
		runEntry, ok := components.Run.First(e.World)
		if !ok {
			return
		}
		run := components.Run.Get(runEntry)
		if run.NeedsMeasure() || run.NeedsLayout() {
			// Binding must never observe pre-layout positions.
			return
		}
		if !run.NeedsBind() {
			return
		}

		for _, h := range handles {
			h.Dispose()
		}
		handles = handles[:0]

		container := ContainerRect()
		for _, entry := range glyphEntriesOrdered(e) {
			entry := entry
			g := components.Glyph.Get(entry)
			r, index := g.Rune, g.Index

			target := &glyphTarget{obj: components.Object.Get(entry).Object}
			h, err := binder.MakeDraggable(target, container, drag.Options{
				Axis:           run.Direction,
				EdgeResistance: cfg.Drag.EdgeResistance,
				Inertia:        cfg.Drag.Inertia,
				Friction:       cfg.Drag.Friction,
				StopSpeed:      cfg.Drag.StopSpeed,
				MaxFlingSpeed:  cfg.Drag.MaxFlingSpeed,
				SmoothingAlpha: cfg.Drag.SmoothingAlpha,
				OnDragStart: func() {
					beginGlyphDrag(e, entry, r, index)
				},
				OnDragEnd: func() {
					endGlyphDrag(e, entry, r, index, container)
				},
			})
			if err != nil {
				log.Printf("Warning: could not bind glyph %q at %d: %v", r, index, err)
				continue
			}
			handles = append(handles, h)
		}

		run.BoundGen = run.LayoutGen
		run.BoundDirection = run.Direction
		run.BoundCallbackID = run.CallbackID
	}
}

func beginGlyphDrag(e *ecs.ECS, entry *donburi.Entry, r rune, index int) {
	if entry.Valid() {
		g := components.Glyph.Get(entry)
		g.Grabbed = true
		components.Flash.SetValue(entry, components.FlashData{Duration: cfg.Drag.FlashFrames})
		// A grab cancels any snap-back in flight.
		components.Snap.Get(entry).Active = false
	}
	if run := currentRun(e); run != nil && run.OnDragStart != nil {
		run.OnDragStart(r, index)
	}
}

func endGlyphDrag(e *ecs.ECS, entry *donburi.Entry, r rune, index int, container drag.Rect) {
	if entry.Valid() {
		g := components.Glyph.Get(entry)
		g.Grabbed = false

		// Released past the edge: animate back to the nearest in-bounds spot.
		obj := components.Object.Get(entry).Object
		rect := drag.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
		if !container.Inside(rect) {
			x, y := container.ClampPoint(obj.X, obj.Y, obj.W, obj.H)
			StartSnap(entry, x, y, cfg.Drag.SnapBackSeconds)
		}
	}
	if run := currentRun(e); run != nil && run.OnDragEnd != nil {
		run.OnDragEnd(r, index)
	}
}

func currentRun(e *ecs.ECS) *components.RunData {
	runEntry, ok := components.Run.First(e.World)
	if !ok {
		return nil
	}
	return components.Run.Get(runEntry)
}

// glyphEntriesOrdered returns glyph entries sorted by run index, so binding
// order (and therefore hit-test priority) is deterministic.
func glyphEntriesOrdered(e *ecs.ECS) []*donburi.Entry {
	var entries []*donburi.Entry
	tags.Glyph.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	sort.Slice(entries, func(i, j int) bool {
		return components.Glyph.Get(entries[i]).Index < components.Glyph.Get(entries[j]).Index
	})
	return entries
}
