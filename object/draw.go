package object

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whitePixel *ebiten.Image

// white returns a 1x1 sub-image used to draw rotated filled boxes. Created
// lazily so packages importing object for its transform types don't touch
// the graphics backend.
func white() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// Draw renders the node onto screen.
func (n *Node) Draw(screen *ebiten.Image) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindCircle:
		n.drawCircle(screen)
	default:
		n.drawBox(screen)
	}
}

func (n *Node) drawBox(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(n.Width, n.Height)
	op.GeoM.Rotate(n.Rotation)
	op.GeoM.Translate(n.X, n.Y)
	op.ColorScale.ScaleWithColor(n.color())
	screen.DrawImage(white(), op)
}

func (n *Node) drawCircle(screen *ebiten.Image) {
	clr := n.color()
	vector.DrawFilledCircle(screen, float32(n.X), float32(n.Y), float32(n.Radius), clr, true)

	// Spin marker so rotation is visible on a circle.
	ex := n.X + math.Cos(n.Rotation)*n.Radius
	ey := n.Y + math.Sin(n.Rotation)*n.Radius
	vector.StrokeLine(screen, float32(n.X), float32(n.Y), float32(ex), float32(ey), 1, color.Black, true)
}

func (n *Node) color() color.Color {
	if n.Color == nil {
		return color.White
	}
	return n.Color
}
