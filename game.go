package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bouncebox/bouncebox/common"
)

// Game owns the active scene and the bits shared across scenes: input,
// flags, and the pause menu.
type Game struct {
	scene Scene
	input *Input

	sceneName string
	debug     bool
	watch     bool

	paused  bool
	pauseUI *ebitenui.UI
}

func NewGame(sceneName string, debug, watch bool) *Game {
	g := &Game{
		input:     &Input{},
		sceneName: sceneName,
		debug:     debug,
		watch:     watch,
	}
	g.pauseUI = NewPauseUI(g)
	g.scene = NewTitleScene(g)
	return g
}

func (g *Game) Update() error {
	g.input.Update()

	if g.input.Pause {
		if _, ok := g.scene.(*PlayScene); ok {
			g.paused = !g.paused
		}
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// setScene swaps the active scene, tearing down the old one.
func (g *Game) setScene(s Scene) {
	if g.scene != nil {
		g.scene.Dispose()
	}
	g.paused = false
	g.scene = s
}

// restartPlay rebuilds the play session; called from the pause menu.
func (g *Game) restartPlay() {
	g.paused = false
	if play, ok := g.scene.(*PlayScene); ok {
		play.restart()
	}
}
