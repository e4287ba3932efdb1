package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer all entities and renderers live on.
const Default = ecs.LayerDefault
