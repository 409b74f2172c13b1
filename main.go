package main

import (
	"image"
	"log"

	"github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/fonts"
	"github.com/automoto/hillshot/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		return nil, err
	}

	g := &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaScene(config.Arena.Seed),
	}
	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("hillshot")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	game, err := NewGame()
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
