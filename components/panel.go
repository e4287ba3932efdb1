package components

import "github.com/yohamta/donburi"

// PanelData is the singleton settings panel state
type PanelData struct {
	Open  bool
	Dirty bool // settings changed since the last save
}

var Panel = donburi.NewComponentType[PanelData]()
