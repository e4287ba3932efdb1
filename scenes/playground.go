package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hollowlog/dragtext/components"
	cfg "github.com/hollowlog/dragtext/config"
	"github.com/hollowlog/dragtext/drag"
	"github.com/hollowlog/dragtext/systems"
	"github.com/hollowlog/dragtext/systems/factory"
	"github.com/hollowlog/dragtext/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlaygroundScene hosts the draggable text component
type PlaygroundScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	presetIndex  int // -1 uses the configured/restored default text
	binder       *drag.PointerBinder
	settingsUI   *ui.SettingsUI
	once         sync.Once
}

// NewPlaygroundScene creates a playground with the default text
func NewPlaygroundScene(sc SceneChanger) *PlaygroundScene {
	return &PlaygroundScene{sceneChanger: sc, presetIndex: -1}
}

// NewPlaygroundSceneWithPreset creates a playground seeded from a preset
func NewPlaygroundSceneWithPreset(sc SceneChanger, presetIndex int) *PlaygroundScene {
	return &PlaygroundScene{sceneChanger: sc, presetIndex: presetIndex}
}

func (ps *PlaygroundScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.GetOrCreatePanel(ps.ecs).Open {
		ps.settingsUI.Update()
	}
}

func (ps *PlaygroundScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if systems.GetOrCreatePanel(ps.ecs).Open {
		ps.settingsUI.UI.Draw(screen)
	}
}

func (ps *PlaygroundScene) configure() {
	ps.binder = drag.NewPointerBinder()

	e := ecs.NewECS(donburi.NewWorld())

	// Input first, then the strict measure -> layout -> bind -> drag order;
	// binding must never observe pre-layout positions.
	e.AddSystem(systems.UpdateMouse)
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.NewUpdatePlayground(ps.sceneChanger, func() interface{} {
		return NewMenuScene(ps.sceneChanger)
	}))
	e.AddSystem(systems.UpdateMeasure)
	e.AddSystem(systems.UpdateLayout)
	e.AddSystem(systems.NewUpdateBindings(ps.binder))
	e.AddSystem(systems.NewUpdateDrag(ps.binder))
	e.AddSystem(systems.UpdateSnaps)
	e.AddSystem(systems.UpdateFlashes)
	e.AddSystem(systems.UpdateObjects)

	e.AddRenderer(cfg.Default, systems.DrawContainer)
	e.AddRenderer(cfg.Default, systems.DrawGlyphs)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = e

	container := systems.ContainerRect()
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateContainerWalls(e, container, 8)

	runText := cfg.Text.DefaultText
	if ps.presetIndex >= 0 && ps.presetIndex < len(cfg.Text.Presets) {
		runText = cfg.Text.Presets[ps.presetIndex]
	}

	runEntry := factory.CreateRun(e, runText, cfg.Text.Spacing, systems.SavedDirection, cfg.Text.VerticalCenter)
	run := components.Run.Get(runEntry)
	run.SetCallbacks(
		func(r rune, index int) { log.Printf("drag start: %q at %d", r, index) },
		func(r rune, index int) { log.Printf("drag end: %q at %d", r, index) },
	)

	ps.settingsUI = ui.NewSettingsUI(run,
		func() { systems.GetOrCreatePanel(e).Dirty = true },
		func() { systems.ResetGlyphs(e) },
	)
}
