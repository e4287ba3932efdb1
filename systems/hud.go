package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	cfg "github.com/hollowlog/dragtext/config"
	"github.com/hollowlog/dragtext/fonts"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the bottom hint line with the current run parameters.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	run := currentRun(ecs)
	if run == nil {
		return
	}

	vc := "off"
	if run.VerticalCenter {
		vc = "on"
	}
	hint := fmt.Sprintf("spacing %.0f   axis %s   vcenter %s   Tab: settings   R: reset   F1: debug   Esc: menu",
		run.Spacing, run.Direction, vc)

	hintFont := fonts.Small.Get()
	bounds := text.BoundString(hintFont, hint) //nolint:staticcheck // TODO: migrate to text/v2

	width := float64(screen.Bounds().Dx())
	x := int((width - float64(bounds.Dx())) / 2)
	y := screen.Bounds().Dy() - 12
	text.Draw(screen, hint, hintFont, x, y, cfg.Menu.TextColorNormal)
}
