package components

import "github.com/yohamta/donburi"

// GlyphData is one character of the run, treated as an independent layout and
// drag unit.
type GlyphData struct {
	Rune  rune
	Index int
	Width float64 // measured width in pixels

	// Laid-out position; the glyph returns here on reset.
	HomeX, HomeY float64

	Grabbed bool // an active drag session holds this glyph
}

var Glyph = donburi.NewComponentType[GlyphData]()
