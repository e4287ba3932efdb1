package factory

import (
	"github.com/hollowlog/dragtext/archetypes"
	"github.com/hollowlog/dragtext/components"
	"github.com/hollowlog/dragtext/drag"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRun creates the singleton text run entity. The measure, layout and
// bind systems fill in the rest once the run is observed dirty.
func CreateRun(ecs *ecs.ECS, text string, spacing float64, direction drag.Axis, verticalCenter bool) *donburi.Entry {
	run := archetypes.Run.Spawn(ecs)

	components.Run.SetValue(run, components.RunData{
		Text:           text,
		Spacing:        spacing,
		Direction:      direction,
		VerticalCenter: verticalCenter,
	})

	return run
}
