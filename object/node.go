package object

import "image/color"

// Kind selects how a node is drawn.
type Kind int

const (
	KindBox Kind = iota
	KindCircle
)

// Node is a drawable object on the scene graph. The simulation session
// mutates X, Y, and Rotation in place each tick; everything else is fixed
// at creation.
type Node struct {
	X        float64
	Y        float64
	Rotation float64 // radians

	Kind   Kind
	Width  float64
	Height float64
	Radius float64
	Color  color.Color
}

// NewBox creates a box node centered at (x, y).
func NewBox(x, y, width, height float64, clr color.Color) *Node {
	return &Node{
		X:      x,
		Y:      y,
		Kind:   KindBox,
		Width:  width,
		Height: height,
		Color:  clr,
	}
}

// NewCircle creates a circle node centered at (x, y).
func NewCircle(x, y, radius float64, clr color.Color) *Node {
	return &Node{
		X:      x,
		Y:      y,
		Kind:   KindCircle,
		Radius: radius,
		Color:  clr,
	}
}

// SetPosition moves the node.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// SetRotation sets the node's rotation in radians.
func (n *Node) SetRotation(angle float64) {
	n.Rotation = angle
}
