package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/bouncebox/bouncebox/object"
	"github.com/bouncebox/bouncebox/sim"
)

const markerSize = 6

// drawBodyMarkers crosses every body position: green when the body drives
// a node, red for bare colliders. Enabled with -debug.
func drawBodyMarkers(screen *ebiten.Image, session *sim.Session) {
	session.EachBody(func(body *cp.Body, node *object.Node) {
		clr := colornames.Orangered
		if node != nil {
			clr = colornames.Lawngreen
		}

		pos := body.Position()
		x := float32(pos.X)
		y := float32(pos.Y)
		vector.StrokeLine(screen, x-markerSize, y, x+markerSize, y, 1, clr, false)
		vector.StrokeLine(screen, x, y-markerSize, x, y+markerSize, 1, clr, false)
	})
}
