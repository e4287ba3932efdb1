package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hollowlog/dragtext/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMouse polls the pointer and updates the Mouse singleton.
// Must run before any system that consumes pointer state.
func UpdateMouse(ecs *ecs.ECS) {
	mouse := getOrCreateMouse(ecs)

	x, y := ebiten.CursorPosition()
	mouse.X = float64(x)
	mouse.Y = float64(y)
	mouse.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// getOrCreateMouse returns the singleton Mouse component
func getOrCreateMouse(ecs *ecs.ECS) *components.MouseData {
	entry, ok := components.Mouse.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Mouse))
		components.Mouse.SetValue(entry, components.MouseData{})
	}
	return components.Mouse.Get(entry)
}
