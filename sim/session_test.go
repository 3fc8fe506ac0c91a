package sim

import (
	"math"
	"testing"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/bouncebox/bouncebox/object"
	"github.com/bouncebox/bouncebox/scenes"
)

// fallScene mirrors the template's sandbox: one dynamic bouncy box linked
// to a node, one static slab below it, gravity pointing down-screen.
func fallScene() *scenes.Scene {
	return &scenes.Scene{
		Name:    "fall",
		Gravity: scenes.GravitySpec{X: 0, Y: 9.81},
		Bodies: []scenes.BodySpec{
			{
				Shape:      scenes.ShapeBox,
				X:          512,
				Y:          100,
				Width:      64,
				Height:     64,
				Mass:       1,
				Friction:   0.8,
				Elasticity: 0.7,
			},
			{
				Shape:    scenes.ShapeBox,
				X:        512,
				Y:        584,
				Width:    200,
				Height:   40,
				Friction: 0.8,
				Static:   true,
			},
		},
	}
}

func boolPtr(b bool) *bool { return &b }

// gatedSession returns a session whose world is built but not yet
// delivered, plus the delivery function. Lets tests exercise the
// before-initialization window deterministically.
func gatedSession(t *testing.T, scene *scenes.Scene) (*Session, func()) {
	t.Helper()
	s := &Session{
		opts:    Options{}.withDefaults(),
		pending: make(chan buildResult, 1),
	}
	w, err := buildWorld(scene, s.opts)
	if err != nil {
		t.Fatalf("buildWorld: %v", err)
	}
	return s, func() { s.pending <- buildResult{world: w} }
}

func readySession(t *testing.T, scene *scenes.Scene) *Session {
	t.Helper()
	s, deliver := gatedSession(t, scene)
	deliver()
	return s
}

func TestTickBeforeInitIsNoOp(t *testing.T) {
	s, deliver := gatedSession(t, fallScene())

	for i := 0; i < 5; i++ {
		s.Tick()
	}
	if s.Ready() {
		t.Fatalf("session should not be ready before the build is delivered")
	}
	if s.Steps() != 0 {
		t.Fatalf("ticks before init must not step, got %d steps", s.Steps())
	}
	if len(s.Nodes()) != 0 {
		t.Fatalf("no nodes should exist before init")
	}

	deliver()
	s.Tick()
	if !s.Ready() || s.Steps() != 1 {
		t.Fatalf("first tick after delivery should adopt and step once, ready=%v steps=%d", s.Ready(), s.Steps())
	}
}

func TestPostStepConsistency(t *testing.T) {
	s := readySession(t, fallScene())

	for i := 0; i < 10; i++ {
		s.Tick()

		visited := 0
		s.EachBody(func(body *cp.Body, node *object.Node) {
			if node == nil {
				return
			}
			visited++
			pos := body.Position()
			if node.X != pos.X || node.Y != pos.Y {
				t.Fatalf("tick %d: node at (%v, %v), body at (%v, %v)", i, node.X, node.Y, pos.X, pos.Y)
			}
			if node.Rotation != body.Angle() {
				t.Fatalf("tick %d: node rotation %v, body angle %v", i, node.Rotation, body.Angle())
			}
		})
		if visited == 0 {
			t.Fatalf("tick %d: no associated bodies visited", i)
		}
	}
}

func TestUnassociatedBodiesAreSkipped(t *testing.T) {
	scene := fallScene()
	// Structural collider: enumerable, never drawn, never synced.
	scene.Bodies = append(scene.Bodies, scenes.BodySpec{
		Shape:    scenes.ShapeBox,
		X:        100,
		Y:        700,
		Width:    50,
		Height:   50,
		Friction: 0.8,
		Static:   true,
		Visible:  boolPtr(false),
	})
	scene.Walls = true // boundary segments are unassociated too

	s := readySession(t, scene)

	if got := len(s.Nodes()); got != 2 {
		t.Fatalf("expected 2 nodes for 2 visible bodies, got %d", got)
	}

	staticNode := s.Nodes()[1]
	beforeX, beforeY := staticNode.X, staticNode.Y

	for i := 0; i < 30; i++ {
		s.Tick()

		seen := make(map[*cp.Body]int)
		s.EachBody(func(body *cp.Body, node *object.Node) {
			seen[body]++
		})
		for body, n := range seen {
			if n != 1 {
				t.Fatalf("tick %d: body %p enumerated %d times", i, body, n)
			}
		}
	}

	if staticNode.X != beforeX || staticNode.Y != beforeY {
		t.Fatalf("unrelated static node moved: (%v, %v) -> (%v, %v)", beforeX, beforeY, staticNode.X, staticNode.Y)
	}
}

func TestTicksAccumulate(t *testing.T) {
	one := readySession(t, fallScene())
	two := readySession(t, fallScene())

	one.Tick()
	two.Tick()
	two.Tick()

	if one.Steps() != 1 || two.Steps() != 2 {
		t.Fatalf("steps = %d and %d, want 1 and 2", one.Steps(), two.Steps())
	}

	yAfterOne := one.Nodes()[0].Y
	yAfterTwo := two.Nodes()[0].Y
	if yAfterTwo <= yAfterOne {
		t.Fatalf("second tick should accumulate: y after 2 ticks %v, after 1 tick %v", yAfterTwo, yAfterOne)
	}
}

func TestDeterministicReplay(t *testing.T) {
	a := readySession(t, fallScene())
	b := readySession(t, fallScene())

	for i := 0; i < 60; i++ {
		a.Tick()
		b.Tick()
	}

	na, nb := a.Nodes(), b.Nodes()
	if len(na) != len(nb) {
		t.Fatalf("node counts differ: %d vs %d", len(na), len(nb))
	}
	for i := range na {
		if na[i].X != nb[i].X || na[i].Y != nb[i].Y || na[i].Rotation != nb[i].Rotation {
			t.Fatalf("node %d diverged: (%v, %v, %v) vs (%v, %v, %v)",
				i, na[i].X, na[i].Y, na[i].Rotation, nb[i].X, nb[i].Y, nb[i].Rotation)
		}
	}
}

func TestFallingBoxScenario(t *testing.T) {
	scene := fallScene()
	s := readySession(t, scene)

	dynamic := s.Nodes()[0]
	ground := s.Nodes()[1]
	groundX, groundY := ground.X, ground.Y

	const ticks = 120
	prevY := dynamic.Y
	for i := 0; i < ticks; i++ {
		s.Tick()
		// The first step only picks up velocity; position starts moving on
		// the second. Gravity of 9.81 over 2 seconds falls ~20px, nowhere
		// near the slab at y=584, so from there y increases every tick.
		if dynamic.Y < prevY {
			t.Fatalf("tick %d: y decreased (%v -> %v)", i, prevY, dynamic.Y)
		}
		if i > 0 && dynamic.Y == prevY {
			t.Fatalf("tick %d: y stalled at %v", i, dynamic.Y)
		}
		prevY = dynamic.Y

		if ground.X != groundX || ground.Y != groundY {
			t.Fatalf("tick %d: fixed body's node moved to (%v, %v)", i, ground.X, ground.Y)
		}
	}

	wantFall := 0.5 * 9.81 * math.Pow(float64(ticks)/60.0, 2)
	fell := dynamic.Y - 100
	if fell < wantFall*0.8 || fell > wantFall*1.2 {
		t.Fatalf("fell %v px, expected about %v", fell, wantFall)
	}
}

func TestAsyncBuildAdoption(t *testing.T) {
	s := NewSessionFromScene(fallScene(), Options{})

	deadline := time.Now().Add(2 * time.Second)
	for !s.Ready() {
		if err := s.Err(); err != nil {
			t.Fatalf("build failed: %v", err)
		}
		if time.Now().After(deadline) {
			t.Fatalf("session never became ready")
		}
		s.Tick()
		time.Sleep(time.Millisecond)
	}

	if s.Steps() == 0 {
		t.Fatalf("adopting tick should also step")
	}
}

func TestSceneLoadErrorSurfaces(t *testing.T) {
	s := NewSession("no-such-scene", Options{})

	deadline := time.Now().Add(2 * time.Second)
	for s.Err() == nil {
		if time.Now().After(deadline) {
			t.Fatalf("expected a load error")
		}
		s.Tick()
		time.Sleep(time.Millisecond)
	}

	if s.Ready() {
		t.Fatalf("errored session must not become ready")
	}
	// Later ticks stay harmless no-ops.
	s.Tick()
	if s.Steps() != 0 {
		t.Fatalf("errored session must not step, got %d", s.Steps())
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	if opts.TimeStep != defaultTimeStep || opts.Iterations != defaultIterations {
		t.Fatalf("defaults not applied: %+v", opts)
	}

	custom := Options{TimeStep: 1.0 / 120.0, Iterations: 5}.withDefaults()
	if custom.TimeStep != 1.0/120.0 || custom.Iterations != 5 {
		t.Fatalf("explicit options overridden: %+v", custom)
	}
}
