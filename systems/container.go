package systems

import (
	cfg "github.com/hollowlog/dragtext/config"
	"github.com/hollowlog/dragtext/drag"
)

// ContainerRect returns the drag container: the window rectangle inset on all
// sides. Glyph motion is bounded to it.
func ContainerRect() drag.Rect {
	inset := cfg.Text.ContainerInset
	return drag.Rect{
		X: inset,
		Y: inset,
		W: float64(cfg.C.Width) - 2*inset,
		H: float64(cfg.C.Height) - 2*inset,
	}
}
