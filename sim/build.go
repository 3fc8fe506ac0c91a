package sim

import (
	"errors"
	"image/color"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/bouncebox/bouncebox/common"
	"github.com/bouncebox/bouncebox/object"
	"github.com/bouncebox/bouncebox/scenes"
)

const wallFriction = 0.8

func buildWorld(scene *scenes.Scene, opts Options) (*world, error) {
	if scene == nil {
		return nil, errors.New("sim: nil scene")
	}

	space := cp.NewSpace()
	space.Iterations = opts.Iterations
	space.SetGravity(cp.Vector{X: scene.Gravity.X, Y: scene.Gravity.Y})

	w := &world{
		space: space,
		links: make(map[*cp.Body]*object.Node, len(scene.Bodies)),
	}

	if scene.Walls {
		addBounds(space)
	}

	for i := range scene.Bodies {
		w.addBody(&scene.Bodies[i])
	}

	return w, nil
}

// addBody creates the body and shape for one spec and, for visible specs,
// a node linked to the body. The link is set once here and never
// reassigned.
func (w *world) addBody(spec *scenes.BodySpec) {
	var body *cp.Body
	if spec.Static {
		body = cp.NewStaticBody()
	} else {
		body = cp.NewBody(spec.Mass, momentFor(spec))
	}
	body.SetPosition(cp.Vector{X: spec.X, Y: spec.Y})
	if !spec.Static && (spec.VelX != 0 || spec.VelY != 0) {
		body.SetVelocity(spec.VelX, spec.VelY)
	}
	w.space.AddBody(body)

	var shape *cp.Shape
	if spec.Shape == scenes.ShapeCircle {
		shape = cp.NewCircle(body, spec.Radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, spec.Width, spec.Height, 0)
	}
	shape.SetFriction(spec.Friction)
	shape.SetElasticity(spec.Elasticity)
	w.space.AddShape(shape)

	if !spec.IsVisible() {
		return
	}

	var node *object.Node
	if spec.Shape == scenes.ShapeCircle {
		node = object.NewCircle(spec.X, spec.Y, spec.Radius, nodeColor(spec))
	} else {
		node = object.NewBox(spec.X, spec.Y, spec.Width, spec.Height, nodeColor(spec))
	}
	w.links[body] = node
	w.nodes = append(w.nodes, node)
}

func momentFor(spec *scenes.BodySpec) float64 {
	if spec.Shape == scenes.ShapeCircle {
		return cp.MomentForCircle(spec.Mass, 0, spec.Radius, cp.Vector{})
	}
	return cp.MomentForBox(spec.Mass, spec.Width, spec.Height)
}

func nodeColor(spec *scenes.BodySpec) color.Color {
	if spec.Color != nil {
		return spec.Color.Color
	}
	if spec.Static {
		return colornames.Slategray
	}
	return colornames.Steelblue
}

// addBounds walls the base resolution in with static segments so nothing
// falls out of the scene. The segments hang off the space's shared static
// body and have no nodes, so the sync loop never visits them.
func addBounds(space *cp.Space) {
	const thickness = 1.0
	w := float64(common.BaseWidth)
	h := float64(common.BaseHeight)

	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: w, Y: 0}},
		{a: cp.Vector{X: 0, Y: h}, b: cp.Vector{X: w, Y: h}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: h}},
		{a: cp.Vector{X: w, Y: 0}, b: cp.Vector{X: w, Y: h}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(space.StaticBody, seg.a, seg.b, thickness)
		shape.SetFriction(wallFriction)
		space.AddShape(shape)
	}
}
