package systems

import (
	"testing"

	"github.com/hollowlog/dragtext/components"
	cfg "github.com/hollowlog/dragtext/config"
	"github.com/hollowlog/dragtext/drag"
	"github.com/hollowlog/dragtext/layout"
	"github.com/hollowlog/dragtext/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testWorld wires the measure -> layout -> bind -> drag pipeline the way the
// playground scene does, with the pointer injected instead of polled.
type testWorld struct {
	ecs    *ecs.ECS
	binder *drag.PointerBinder
	bind   ecs.System
	run    *components.RunData
}

func newTestWorld(t *testing.T, text string) *testWorld {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateContainerWalls(e, ContainerRect(), 8)

	runEntry := factory.CreateRun(e, text, cfg.Text.Spacing, drag.AxisBoth, true)

	binder := drag.NewPointerBinder()
	return &testWorld{
		ecs:    e,
		binder: binder,
		bind:   NewUpdateBindings(binder),
		run:    components.Run.Get(runEntry),
	}
}

// step advances one tick with the given pointer state.
func (w *testWorld) step(x, y float64, pressed bool) {
	mouse := getOrCreateMouse(w.ecs)
	mouse.X, mouse.Y = x, y
	mouse.Pressed = pressed

	UpdateMeasure(w.ecs)
	UpdateLayout(w.ecs)
	w.bind(w.ecs)
	w.binder.Update(drag.Pointer{X: mouse.X, Y: mouse.Y, Pressed: mouse.Pressed})
	UpdateSnaps(w.ecs)
	UpdateFlashes(w.ecs)
	UpdateObjects(w.ecs)
}

func (w *testWorld) glyphs() []*donburi.Entry {
	return glyphEntriesOrdered(w.ecs)
}

func TestPipelineSpawnsOneGlyphPerRune(t *testing.T) {
	w := newTestWorld(t, "drag me")
	w.step(0, 0, false)

	glyphs := w.glyphs()
	require.Len(t, glyphs, len([]rune("drag me")))
	for i, entry := range glyphs {
		g := components.Glyph.Get(entry)
		assert.Equal(t, i, g.Index)
		assert.Equal(t, []rune("drag me")[i], g.Rune)
	}
	assert.Equal(t, len(glyphs), w.binder.BoundCount())
}

func TestPipelinePositionsMatchLayout(t *testing.T) {
	w := newTestWorld(t, "AB")
	w.step(0, 0, false)

	container := ContainerRect()
	want := layout.ComputePositions(layout.Metrics{
		ContainerWidth:  container.W,
		ContainerHeight: container.H,
		Spacing:         w.run.Spacing,
		GlyphHeight:     cfg.Text.GlyphHeight,
		VerticalCenter:  true,
		TopOffset:       cfg.Text.TopOffset,
	}, w.run.Widths)

	for i, entry := range w.glyphs() {
		obj := components.Object.Get(entry)
		assert.Equal(t, container.X+want[i].Left, obj.X, "glyph %d", i)
		assert.Equal(t, container.Y+want[i].Top, obj.Y, "glyph %d", i)
	}
}

func TestPipelineEmptyText(t *testing.T) {
	w := newTestWorld(t, "")
	w.step(0, 0, false)

	assert.Empty(t, w.glyphs())
	assert.Equal(t, 0, w.binder.BoundCount())
}

func TestPipelineDragInvokesCallbacks(t *testing.T) {
	w := newTestWorld(t, "AB")

	type event struct {
		r     rune
		index int
	}
	var starts, ends []event
	w.run.SetCallbacks(
		func(r rune, index int) { starts = append(starts, event{r, index}) },
		func(r rune, index int) { ends = append(ends, event{r, index}) },
	)

	w.step(0, 0, false)

	glyphs := w.glyphs()
	require.Len(t, glyphs, 2)
	obj := components.Object.Get(glyphs[0])
	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H/2

	w.step(cx, cy, true)
	require.Len(t, starts, 1)
	assert.Equal(t, 'A', starts[0].r)
	assert.Equal(t, 0, starts[0].index)
	assert.True(t, components.Glyph.Get(glyphs[0]).Grabbed)

	// Glyph follows the pointer.
	w.step(cx+30, cy+10, true)
	assert.InDelta(t, 30, obj.X-(cx-obj.W/2), 1e-9)

	w.step(cx+30, cy+10, false)
	require.Len(t, ends, 1)
	assert.Equal(t, 'A', ends[0].r)
	assert.Equal(t, 0, ends[0].index)
	assert.False(t, components.Glyph.Get(glyphs[0]).Grabbed)
}

func TestPipelineSpacingChangeRebuildsInPlace(t *testing.T) {
	w := newTestWorld(t, "ABC")
	w.step(0, 0, false)

	before := make([]rune, 0, 3)
	for _, entry := range w.glyphs() {
		before = append(before, components.Glyph.Get(entry).Rune)
	}

	w.run.Spacing += 10
	w.step(0, 0, false)

	after := w.glyphs()
	require.Len(t, after, 3)
	for i, entry := range after {
		g := components.Glyph.Get(entry)
		assert.Equal(t, before[i], g.Rune, "identity preserved at %d", i)
		assert.Equal(t, i, g.Index)
	}

	// Gaps track the new spacing.
	for i := 0; i+1 < len(after); i++ {
		a := components.Object.Get(after[i])
		b := components.Object.Get(after[i+1])
		assert.InDelta(t, a.W+w.run.Spacing, b.X-a.X, 1e-9)
	}
}

func TestPipelineDirectionChangeRebinds(t *testing.T) {
	w := newTestWorld(t, "AB")
	w.step(0, 0, false)
	require.Equal(t, 2, w.binder.BoundCount())

	w.run.Direction = drag.AxisHorizontal
	w.step(0, 0, false)

	// Old handles are disposed before the new ones attach: still exactly one
	// binding per glyph.
	assert.Equal(t, 2, w.binder.BoundCount())

	// Horizontal axis: a drag moves X but never Y.
	glyphs := w.glyphs()
	obj := components.Object.Get(glyphs[1])
	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H/2
	homeY := obj.Y

	w.step(cx, cy, true)
	w.step(cx+25, cy+40, true)
	assert.Equal(t, homeY, obj.Y)
	w.step(cx+25, cy+40, false)
}

func TestPipelineTextChangeRebuildsGlyphs(t *testing.T) {
	w := newTestWorld(t, "AB")
	w.step(0, 0, false)
	require.Len(t, w.glyphs(), 2)

	w.run.Text = "XYZ"
	w.step(0, 0, false)

	glyphs := w.glyphs()
	require.Len(t, glyphs, 3)
	for i, want := range []rune("XYZ") {
		assert.Equal(t, want, components.Glyph.Get(glyphs[i]).Rune)
	}
	assert.Equal(t, 3, w.binder.BoundCount())
}

func TestPipelineResetSnapsHome(t *testing.T) {
	w := newTestWorld(t, "AB")
	w.step(0, 0, false)

	glyphs := w.glyphs()
	g := components.Glyph.Get(glyphs[0])
	obj := components.Object.Get(glyphs[0])

	// Drag the glyph away and release.
	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H/2
	w.step(cx, cy, true)
	w.step(cx+60, cy+30, true)
	// Hold still so the release does not start an inertial glide.
	for i := 0; i < 15; i++ {
		w.step(cx+60, cy+30, true)
	}
	w.step(cx+60, cy+30, false)
	require.NotEqual(t, g.HomeX, obj.X)

	ResetGlyphs(w.ecs)
	for i := 0; i < 120; i++ {
		w.step(0, 0, false)
	}
	assert.InDelta(t, g.HomeX, obj.X, 0.5)
	assert.InDelta(t, g.HomeY, obj.Y, 0.5)
}

func TestPipelineGlideStopsAtWalls(t *testing.T) {
	w := newTestWorld(t, "AB")
	w.step(0, 0, false)

	container := ContainerRect()
	glyphs := w.glyphs()
	require.Len(t, glyphs, 2)
	obj := components.Object.Get(glyphs[0])

	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H/2
	w.step(cx, cy, true)

	// Park near the right wall and bleed off the travel velocity.
	parkX := container.X + container.W - obj.W - 60
	px := parkX + obj.W/2
	w.step(px, cy, true)
	for i := 0; i < 15; i++ {
		w.step(px, cy, true)
	}

	// Fling toward the wall and release.
	w.step(px+20, cy, true)
	w.step(px+20, cy, false)

	edge := container.X + container.W
	for i := 0; i < 200; i++ {
		w.step(0, 0, false)
		assert.LessOrEqual(t, obj.X+obj.W, edge+1e-6, "glide frame %d", i)
	}

	// The collision walls stop the glyph flush with the container edge.
	assert.InDelta(t, edge, obj.X+obj.W, 1.0)
}

func TestGetOrCreateMenuOptions(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	menu := GetOrCreateMenu(e)

	require.Len(t, menu.VisibleOptions, len(cfg.Text.Presets)+1)
	assert.Equal(t, components.MainMenuExit, menu.VisibleOptions[len(menu.VisibleOptions)-1])
}
