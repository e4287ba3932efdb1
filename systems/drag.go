package systems

import (
	"github.com/hollowlog/dragtext/drag"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateDrag advances the binder one tick with the current pointer sample.
// Runs after the bind pass so new bindings see this tick's pointer edge.
func NewUpdateDrag(binder *drag.PointerBinder) ecs.System {
	return func(e *ecs.ECS) {
		mouse := getOrCreateMouse(e)
		binder.Update(drag.Pointer{
			X:       mouse.X,
			Y:       mouse.Y,
			Pressed: mouse.Pressed,
		})
	}
}
