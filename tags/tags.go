package tags

import "github.com/yohamta/donburi"

var (
	Glyph = donburi.NewTag().SetName("Glyph")
	Wall  = donburi.NewTag().SetName("Wall")
)

// Resolv tags for bounds collision
const (
	ResolvBounds = "bounds"
)
