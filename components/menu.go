package components

import "github.com/yohamta/donburi"

// MainMenuOption represents one main menu selection. Non-negative values
// select the text preset with that index; the named constants are special.
type MainMenuOption int

const (
	MainMenuExit MainMenuOption = -1
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex  int
	VisibleOptions []MainMenuOption
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
