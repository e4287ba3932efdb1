package components

import "github.com/yohamta/donburi"

// MouseData is the singleton pointer state, polled once per tick. The drag
// binder derives press and release edges from successive samples.
type MouseData struct {
	X, Y    float64
	Pressed bool
}

var Mouse = donburi.NewComponentType[MouseData]()
