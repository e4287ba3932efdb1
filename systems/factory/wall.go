package factory

import (
	"github.com/hollowlog/dragtext/archetypes"
	"github.com/hollowlog/dragtext/components"
	"github.com/hollowlog/dragtext/drag"
	"github.com/hollowlog/dragtext/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvBounds)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// CreateContainerWalls rings the container rectangle with four wall entities
// so the bounds show up in the collision space and the debug overlay.
func CreateContainerWalls(ecs *ecs.ECS, container drag.Rect, thickness float64) {
	// top, bottom, left, right
	CreateWall(ecs, container.X-thickness, container.Y-thickness, container.W+2*thickness, thickness)
	CreateWall(ecs, container.X-thickness, container.Y+container.H, container.W+2*thickness, thickness)
	CreateWall(ecs, container.X-thickness, container.Y, thickness, container.H)
	CreateWall(ecs, container.X+container.W, container.Y, thickness, container.H)
}
