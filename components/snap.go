package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SnapData animates a glyph toward a fixed position: the snap-back after an
// out-of-bounds release, or the return home on reset.
type SnapData struct {
	X, Y   *gween.Tween
	Active bool
}

var Snap = donburi.NewComponentType[SnapData]()

// FlashData tracks the grab feedback flash on a glyph
type FlashData struct {
	Duration int // frames remaining
}

var Flash = donburi.NewComponentType[FlashData]()
