package scenes

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// RunSpawn executes a tengo spawn script against a scene. The script sees
// two builtins, box(x, y, w, h [, opts]) and circle(x, y, r [, opts]),
// each appending one body spec; opts is a map with the same keys as the
// YAML body fields (mass, friction, elasticity, static, color, vel_x,
// vel_y, visible). Scripts run once, at scene load.
func RunSpawn(src []byte, scene *Scene) error {
	if scene == nil {
		return fmt.Errorf("nil scene")
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	if err := script.Add("box", &tengo.UserFunction{Name: "box", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 4 {
			return nil, tengo.ErrWrongNumArguments
		}
		spec := BodySpec{
			Shape:  ShapeBox,
			X:      floatArg(args[0]),
			Y:      floatArg(args[1]),
			Width:  floatArg(args[2]),
			Height: floatArg(args[3]),
		}
		if len(args) > 4 {
			if err := applyOpts(&spec, args[4]); err != nil {
				return nil, err
			}
		}
		if err := spec.normalize(); err != nil {
			return nil, err
		}
		scene.Bodies = append(scene.Bodies, spec)
		return tengo.UndefinedValue, nil
	}}); err != nil {
		return err
	}

	if err := script.Add("circle", &tengo.UserFunction{Name: "circle", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		spec := BodySpec{
			Shape:  ShapeCircle,
			X:      floatArg(args[0]),
			Y:      floatArg(args[1]),
			Radius: floatArg(args[2]),
		}
		if len(args) > 3 {
			if err := applyOpts(&spec, args[3]); err != nil {
				return nil, err
			}
		}
		if err := spec.normalize(); err != nil {
			return nil, err
		}
		scene.Bodies = append(scene.Bodies, spec)
		return tengo.UndefinedValue, nil
	}}); err != nil {
		return err
	}

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("compile spawn script: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return fmt.Errorf("run spawn script: %w", err)
	}
	return nil
}

func applyOpts(spec *BodySpec, obj tengo.Object) error {
	opts, ok := obj.(*tengo.Map)
	if !ok {
		if _, undef := obj.(*tengo.Undefined); undef {
			return nil
		}
		return fmt.Errorf("opts must be a map, got %s", obj.TypeName())
	}

	for key, val := range opts.Value {
		switch key {
		case "mass":
			spec.Mass = floatArg(val)
		case "friction":
			spec.Friction = floatArg(val)
		case "elasticity":
			spec.Elasticity = floatArg(val)
		case "static":
			spec.Static = boolArg(val)
		case "vel_x":
			spec.VelX = floatArg(val)
		case "vel_y":
			spec.VelY = floatArg(val)
		case "visible":
			visible := boolArg(val)
			spec.Visible = &visible
		case "color":
			s, _ := tengo.ToString(val)
			clr, err := ParseColor(s)
			if err != nil {
				return err
			}
			spec.Color = &YAMLColor{Color: clr}
		default:
			return fmt.Errorf("unknown body option %q", key)
		}
	}
	return nil
}

func floatArg(obj tengo.Object) float64 {
	switch v := obj.(type) {
	case *tengo.Float:
		return v.Value
	case *tengo.Int:
		return float64(v.Value)
	default:
		return 0
	}
}

func boolArg(obj tengo.Object) bool {
	return !obj.IsFalsy()
}
