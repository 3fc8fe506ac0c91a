// Package sim owns the physics side of the template: it builds a Chipmunk
// space from a scene spec and, once per frame, advances the simulation by a
// fixed step and copies body transforms back onto the visual nodes.
package sim

import (
	"github.com/jakecoffman/cp"

	"github.com/bouncebox/bouncebox/object"
	"github.com/bouncebox/bouncebox/scenes"
)

// Options tune the simulation step. Zero values pick the defaults.
type Options struct {
	TimeStep   float64 // seconds per step, default 1/60
	Iterations uint    // solver iterations, default 20
}

const (
	defaultTimeStep   = 1.0 / 60.0
	defaultIterations = 20
)

func (o Options) withDefaults() Options {
	if o.TimeStep <= 0 {
		o.TimeStep = defaultTimeStep
	}
	if o.Iterations == 0 {
		o.Iterations = defaultIterations
	}
	return o
}

// world is everything the session owns once construction finishes: the
// space, the draw list, and the body-to-node association table. Bodies
// absent from links (structural colliders, walls) are skipped by the sync
// loop.
type world struct {
	space *cp.Space
	links map[*cp.Body]*object.Node
	nodes []*object.Node
}

type buildResult struct {
	world *world
	err   error
}

// Session runs one simulation: build once, then Tick once per frame from
// the game loop. Construction is asynchronous; Tick is a no-op until the
// built world has been handed over, and never blocks waiting for it.
//
// A session is single-goroutine after handoff: the frame loop is the only
// caller of Tick, and nodes are only ever mutated there.
type Session struct {
	opts    Options
	pending chan buildResult
	world   *world
	err     error
	steps   uint64
}

// NewSession loads the named scene and builds its world off the frame
// goroutine. The returned session is usable immediately; it just does
// nothing until the build lands.
func NewSession(sceneName string, opts Options) *Session {
	return start(opts, func() (*scenes.Scene, error) {
		return scenes.Load(sceneName)
	})
}

// NewSessionFromScene builds a session from an already-decoded scene.
func NewSessionFromScene(scene *scenes.Scene, opts Options) *Session {
	return start(opts, func() (*scenes.Scene, error) {
		return scene, nil
	})
}

func start(opts Options, load func() (*scenes.Scene, error)) *Session {
	s := &Session{
		opts:    opts.withDefaults(),
		pending: make(chan buildResult, 1),
	}
	go func() {
		scene, err := load()
		if err != nil {
			s.pending <- buildResult{err: err}
			return
		}
		w, err := buildWorld(scene, s.opts)
		s.pending <- buildResult{world: w, err: err}
	}()
	return s
}

// Tick advances the simulation by exactly one fixed step and copies the
// post-step translation and rotation of every associated body onto its
// node. Called before the world build has finished, it is a no-op.
func (s *Session) Tick() {
	if s.world == nil {
		select {
		case res := <-s.pending:
			if res.err != nil {
				s.err = res.err
				return
			}
			s.world = res.world
		default:
			return
		}
		if s.world == nil {
			return
		}
	}

	s.world.space.Step(s.opts.TimeStep)
	s.steps++

	s.world.space.EachBody(func(body *cp.Body) {
		node, ok := s.world.links[body]
		if !ok {
			return
		}
		pos := body.Position()
		node.X = pos.X
		node.Y = pos.Y
		node.SetRotation(body.Angle())
	})
}

// Ready reports whether the world build has been adopted.
func (s *Session) Ready() bool {
	return s != nil && s.world != nil
}

// Err returns the scene load or build error, if any.
func (s *Session) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

// Nodes returns the draw list in creation order. Empty until Ready.
func (s *Session) Nodes() []*object.Node {
	if s == nil || s.world == nil {
		return nil
	}
	return s.world.nodes
}

// Steps returns how many fixed steps have run.
func (s *Session) Steps() uint64 {
	if s == nil {
		return 0
	}
	return s.steps
}

// EachBody visits every body in the space, for debug overlays.
func (s *Session) EachBody(f func(body *cp.Body, node *object.Node)) {
	if s == nil || s.world == nil {
		return
	}
	s.world.space.EachBody(func(body *cp.Body) {
		f(body, s.world.links[body])
	})
}
