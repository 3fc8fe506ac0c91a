package scenes

import (
	"image/color"
	"testing"
)

func TestRunSpawn(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr bool
		check   func(t *testing.T, s *Scene)
	}{
		{
			name: "box_and_circle",
			src: `
box(100, 200, 30, 40, {mass: 2, elasticity: 0.5, color: "#102030"})
circle(50, 60, 12)
`,
			check: func(t *testing.T, s *Scene) {
				if len(s.Bodies) != 2 {
					t.Fatalf("expected 2 bodies, got %d", len(s.Bodies))
				}
				b := s.Bodies[0]
				if b.Shape != ShapeBox || b.X != 100 || b.Y != 200 || b.Width != 30 || b.Height != 40 {
					t.Fatalf("box spec wrong: %+v", b)
				}
				if b.Mass != 2 || b.Elasticity != 0.5 {
					t.Fatalf("box opts not applied: %+v", b)
				}
				want := color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}
				if b.Color == nil || b.Color.Color != want {
					t.Fatalf("color = %v, want %v", b.Color, want)
				}
				c := s.Bodies[1]
				if c.Shape != ShapeCircle || c.Radius != 12 {
					t.Fatalf("circle spec wrong: %+v", c)
				}
				if c.Mass != defaultMass {
					t.Fatalf("circle should default mass, got %v", c.Mass)
				}
			},
		},
		{
			name: "loop_generated",
			src: `
for i := 0; i < 5; i++ {
    box(float(i) * 10.0, 0, 8, 8)
}
`,
			check: func(t *testing.T, s *Scene) {
				if len(s.Bodies) != 5 {
					t.Fatalf("expected 5 bodies, got %d", len(s.Bodies))
				}
				if s.Bodies[3].X != 30 {
					t.Fatalf("generated x = %v, want 30", s.Bodies[3].X)
				}
			},
		},
		{
			name: "invisible_static",
			src:  `box(0, 0, 10, 10, {static: true, visible: false})`,
			check: func(t *testing.T, s *Scene) {
				b := s.Bodies[0]
				if !b.Static || b.IsVisible() {
					t.Fatalf("opts not applied: %+v", b)
				}
			},
		},
		{
			name:    "unknown_option",
			src:     `box(0, 0, 10, 10, {density: 3})`,
			wantErr: true,
		},
		{
			name:    "compile_error",
			src:     `box(0, 0`,
			wantErr: true,
		},
		{
			name:    "bad_arity",
			src:     `circle(1, 2)`,
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scene := &Scene{}
			err := RunSpawn([]byte(c.src), scene)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("RunSpawn: %v", err)
			}
			c.check(t, scene)
		})
	}
}
