package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/hollowlog/dragtext/config"
	"github.com/hollowlog/dragtext/fonts"
	"github.com/hollowlog/dragtext/scenes"
	"github.com/hollowlog/dragtext/systems"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.Regular, goregular.TTF, 16)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 11)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 32)
	fonts.LoadFontWithSize(fonts.Glyph, goregular.TTF, 48)

	g := &Game{
		bounds: image.Rectangle{},
	}

	if cfg.Debug.SkipMenu {
		g.scene = scenes.NewPlaygroundScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

func main() {
	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("dragtext")

	// Initialize persistence and load saved settings. Failures are logged
	// inside the persistence layer and the playground runs on defaults.
	_ = systems.InitPersistence()
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
