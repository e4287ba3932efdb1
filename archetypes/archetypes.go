package archetypes

import (
	"github.com/hollowlog/dragtext/components"
	cfg "github.com/hollowlog/dragtext/config"
	"github.com/hollowlog/dragtext/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Glyph = newArchetype(
		tags.Glyph,
		components.Glyph,
		components.Object,
		components.Snap,
		components.Flash,
	)
	Run = newArchetype(
		components.Run,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
