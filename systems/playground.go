package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hollowlog/dragtext/components"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdatePlayground creates the playground key handler: Tab toggles the
// settings panel (saving on close if anything changed), R resets glyphs to
// their homes, Escape returns to the menu.
func NewUpdatePlayground(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		panel := GetOrCreatePanel(e)

		if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
			panel.Open = !panel.Open
			if !panel.Open && panel.Dirty {
				if run := currentRun(e); run != nil {
					if err := SaveSettingsFromRun(run); err == nil {
						panel.Dirty = false
					}
				}
			}
		}

		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			ResetGlyphs(e)
		}

		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			if panel.Open {
				panel.Open = false
				return
			}
			if panel.Dirty {
				if run := currentRun(e); run != nil {
					if err := SaveSettingsFromRun(run); err != nil {
						log.Printf("Warning: could not save settings: %v", err)
					}
				}
			}
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// GetOrCreatePanel returns the singleton settings panel state
func GetOrCreatePanel(e *ecs.ECS) *components.PanelData {
	entry, ok := components.Panel.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Panel))
		components.Panel.SetValue(entry, components.PanelData{})
	}
	return components.Panel.Get(entry)
}
