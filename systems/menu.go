package systems

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hollowlog/dragtext/components"
	cfg "github.com/hollowlog/dragtext/config"
	"github.com/hollowlog/dragtext/fonts"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates an UpdateMenu system with scene transition capability.
// Selecting a preset opens the playground with that text.
func NewUpdateMenu(sceneChanger SceneChanger, createPlaygroundScene func(presetIndex int) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)

		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		// Navigate menu with wrap-around
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			selected := menu.VisibleOptions[menu.SelectedIndex]
			switch {
			case selected == components.MainMenuExit:
				os.Exit(0)
			default:
				sceneChanger.ChangeScene(createPlaygroundScene(int(selected)))
			}
		}

		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	titleBounds := text.BoundString(titleFont, cfg.Menu.Title) //nolint:staticcheck // TODO: migrate to text/v2
	titleX := int((width - float64(titleBounds.Dx())) / 2)
	text.Draw(screen, cfg.Menu.Title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Regular.Get()
	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		label := getOptionLabel(option)
		bounds := text.BoundString(menuFont, label) //nolint:staticcheck // TODO: migrate to text/v2
		x := int((width - float64(bounds.Dx())) / 2)
		text.Draw(screen, label, menuFont, x, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Quit"
	hintFont := fonts.Small.Get()
	hintBounds := text.BoundString(hintFont, hint) //nolint:staticcheck // TODO: migrate to text/v2
	hintX := int((width - float64(hintBounds.Dx())) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Menu.TextColorNormal)
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	if option == components.MainMenuExit {
		return "Exit"
	}
	if i := int(option); i >= 0 && i < len(cfg.Text.Presets) {
		return "\"" + cfg.Text.Presets[i] + "\""
	}
	return ""
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		visibleOptions := make([]components.MainMenuOption, 0, len(cfg.Text.Presets)+1)
		for i := range cfg.Text.Presets {
			visibleOptions = append(visibleOptions, components.MainMenuOption(i))
		}
		visibleOptions = append(visibleOptions, components.MainMenuExit)

		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex:  0,
			VisibleOptions: visibleOptions,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
