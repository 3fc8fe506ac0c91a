package scenes

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scene is a declarative description of a physics playground: gravity, an
// optional spawn script, and a list of bodies. It carries no runtime state;
// the sim package turns it into a Chipmunk space and visual nodes.
type Scene struct {
	Name    string      `yaml:"name"`
	Gravity GravitySpec `yaml:"gravity"`
	Walls   bool        `yaml:"walls"`
	Spawn   string      `yaml:"spawn"`
	Bodies  []BodySpec  `yaml:"bodies"`
}

type GravitySpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// BodySpec describes one body. A spec with Visible set to false produces a
// collider with no visual node attached; the sync loop skips it.
type BodySpec struct {
	Shape      string     `yaml:"shape"` // "box" or "circle"
	X          float64    `yaml:"x"`
	Y          float64    `yaml:"y"`
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	Radius     float64    `yaml:"radius"`
	Mass       float64    `yaml:"mass"`
	Friction   float64    `yaml:"friction"`
	Elasticity float64    `yaml:"elasticity"`
	Static     bool       `yaml:"static"`
	VelX       float64    `yaml:"vel_x"`
	VelY       float64    `yaml:"vel_y"`
	Visible    *bool      `yaml:"visible"`
	Color      *YAMLColor `yaml:"color"`
}

const (
	ShapeBox    = "box"
	ShapeCircle = "circle"
)

const (
	defaultMass     = 1.0
	defaultFriction = 0.8
	defaultBoxSize  = 32.0
)

// Decode parses a scene document and applies defaults.
func Decode(data []byte) (*Scene, error) {
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("scenes: unmarshal scene: %w", err)
	}
	if err := scene.normalize(); err != nil {
		return nil, err
	}
	return &scene, nil
}

func (s *Scene) normalize() error {
	for i := range s.Bodies {
		if err := s.Bodies[i].normalize(); err != nil {
			return fmt.Errorf("scenes: body %d: %w", i, err)
		}
	}
	return nil
}

func (b *BodySpec) normalize() error {
	if b.Shape == "" {
		b.Shape = ShapeBox
	}
	switch b.Shape {
	case ShapeBox:
		if b.Width <= 0 || b.Height <= 0 {
			b.Width = defaultBoxSize
			b.Height = defaultBoxSize
		}
	case ShapeCircle:
		if b.Radius <= 0 {
			return fmt.Errorf("circle needs a positive radius")
		}
	default:
		return fmt.Errorf("unknown shape %q", b.Shape)
	}
	if !b.Static && b.Mass <= 0 {
		b.Mass = defaultMass
	}
	if b.Friction == 0 {
		b.Friction = defaultFriction
	}
	return nil
}

// IsVisible reports whether the body should get a visual node.
func (b *BodySpec) IsVisible() bool {
	return b.Visible == nil || *b.Visible
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa" scalars into a color.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	clr, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = clr
	return nil
}

// ParseColor parses "#rrggbb" / "#rrggbbaa" (leading # optional).
func ParseColor(raw string) (color.Color, error) {
	s := strings.TrimPrefix(raw, "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %s", raw)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return nil, err
	}
	g, err := parse(2)
	if err != nil {
		return nil, err
	}
	b, err := parse(4)
	if err != nil {
		return nil, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return nil, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
