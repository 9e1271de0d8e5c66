package vertex

import (
	"testing"

	"github.com/gogpu/burning/internal/geom"
)

func TestProject_Viewport(t *testing.T) {
	vp := Viewport{Width: 4, Height: 4}
	tests := []struct {
		name   string
		in     geom.Vec4
		sx, sy float32
	}{
		{"top-left", geom.V4(-2, 2, 0, 2), 0, 0},
		{"bottom-right", geom.V4(1, -1, 0, 1), 4, 4},
		{"center", geom.V4(0, 0, 0, 5), 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var src, dst Vertex
			src.Pos = tt.in
			Project(&dst, &src, vp, Format{}, true)
			if dst.Pos.X != tt.sx || dst.Pos.Y != tt.sy {
				t.Errorf("screen = (%v,%v), want (%v,%v)", dst.Pos.X, dst.Pos.Y, tt.sx, tt.sy)
			}
			if dst.Pos.W != 1/tt.in.W {
				t.Errorf("w = %v, want 1/w", dst.Pos.W)
			}
		})
	}
}

func TestProject_PerspectiveDividesColor(t *testing.T) {
	var src, dst Vertex
	src.Pos = geom.V4(0, 0, 0, 2)
	src.Color[0] = geom.V4(1, 0.5, 0, 1)
	src.Tex[0] = geom.V2(3, 4)
	f := Format{TexCoords: 1, Colors: 1}

	Project(&dst, &src, Viewport{Width: 8, Height: 8}, f, true)
	if dst.Color[0] != geom.V4(0.5, 0.25, 0, 0.5) {
		t.Errorf("color = %+v, want pre-divided by w", dst.Color[0])
	}
	if dst.Tex[0] != src.Tex[0] {
		t.Errorf("tex = %+v, want unchanged", dst.Tex[0])
	}

	Project(&dst, &src, Viewport{Width: 8, Height: 8}, f, false)
	if dst.Color[0] != src.Color[0] {
		t.Errorf("affine color = %+v, want unchanged", dst.Color[0])
	}
}

func TestFacing(t *testing.T) {
	a, b, c := vert(0, 0, 0, 1), vert(10, 0, 0, 1), vert(0, 10, 0, 1)
	if Facing(&a, &b, &c) <= 0 {
		t.Error("clockwise screen triangle not positive")
	}
	if Facing(&a, &c, &b) >= 0 {
		t.Error("counter-clockwise screen triangle not negative")
	}
}
