package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame snapshot of the few actions the template cares
// about. Sampled once at the top of Game.Update.
type Input struct {
	Start   bool // space or left click
	Restart bool // R
	Pause   bool // tab
	Quit    bool // escape
}

func (i *Input) Update() {
	i.Start = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.Pause = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	i.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
