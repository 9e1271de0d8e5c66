package vertex

import (
	"math"
	"testing"

	"github.com/gogpu/burning/internal/geom"
)

const eps = 1e-5

var fmtFull = Format{TexCoords: 2, Colors: 1, Tangents: 1}

func vert(x, y, z, w float32) Vertex {
	return Vertex{Pos: geom.V4(x, y, z, w)}
}

func TestClipToFrustumTest_Bits(t *testing.T) {
	tests := []struct {
		name string
		v    Vertex
		want ClipCode
	}{
		{"origin", vert(0, 0, 0, 1), ClipInside},
		{"on every boundary", vert(1, -1, 1, 1), ClipInside},
		{"near", vert(0, 0, -1.5, 1), ClipNear},
		{"far", vert(0, 0, 2, 1), ClipFar},
		{"left", vert(-2, 0, 0, 1), ClipLeft},
		{"right", vert(2, 0, 0, 1), ClipRight},
		{"bottom", vert(0, -2, 0, 1), ClipBottom},
		{"top", vert(0, 2, 0, 1), ClipTop},
		{"corner", vert(3, 3, 3, 1), ClipRight | ClipTop | ClipFar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClipToFrustumTest(&tt.v); got != tt.want {
				t.Errorf("ClipToFrustumTest = %06b, want %06b", got, tt.want)
			}
		})
	}
}

func TestClipToFrustumTest_MatchesHalfSpaces(t *testing.T) {
	coords := []float32{-3, -1, -0.5, 0, 0.5, 1, 3}
	for _, x := range coords {
		for _, y := range coords {
			for _, z := range coords {
				v := vert(x, y, z, 1)
				code := ClipToFrustumTest(&v)
				inside := [6]bool{-z <= 1, z <= 1, -x <= 1, x <= 1, -y <= 1, y <= 1}
				for i, in := range inside {
					if got := code&(1<<uint(i)) != 0; got == in {
						t.Fatalf("(%v,%v,%v) bit %d = %v, half-space inside = %v", x, y, z, i, got, in)
					}
				}
			}
		}
	}
}

func TestClipToHyperPlane_InsideUnchanged(t *testing.T) {
	tri := []Vertex{vert(0, 0, 0, 1), vert(0.5, 0, 0, 1), vert(0, 0.5, 0, 1)}
	tri[1].Tex[0] = geom.V2(1, 0)
	for i, p := range Planes {
		out := ClipToHyperPlane(make([]Vertex, 0, MaxClip), tri, p, fmtFull)
		if len(out) != 3 {
			t.Fatalf("plane %d: %d vertices, want 3", i, len(out))
		}
		for j := range out {
			if out[j] != tri[j] {
				t.Fatalf("plane %d: vertex %d changed: %+v", i, j, out[j])
			}
		}
	}
}

func TestClipToHyperPlane_AllOutsideInside(t *testing.T) {
	right := Planes[3]
	tri := []Vertex{vert(0, 0, 0, 1), vert(3, 0, 0, 1), vert(0, 1, 0, 1)}
	out := ClipToHyperPlane(nil, tri, right, fmtFull)
	if len(out) != 4 {
		t.Fatalf("one vertex outside: got %d vertices, want 4", len(out))
	}
	for _, v := range out {
		if right.Dot(v.Pos) > eps {
			t.Errorf("vertex %+v outside the right plane", v.Pos)
		}
	}

	allOut := []Vertex{vert(2, 0, 0, 1), vert(3, 0, 0, 1), vert(2, 1, 0, 1)}
	if out := ClipToHyperPlane(nil, allOut, right, fmtFull); len(out) != 0 {
		t.Errorf("all outside: got %d vertices", len(out))
	}
}

func TestClipToHyperPlane_InterpolatesAttributes(t *testing.T) {
	a := vert(0, 0, 0, 1)
	b := vert(2, 0, 0, 1)
	a.Tex[0] = geom.V2(0, 0)
	b.Tex[0] = geom.V2(1, 0)
	a.Color[0] = geom.V4(0, 0, 0, 1)
	b.Color[0] = geom.V4(1, 1, 1, 1)
	c := vert(0, 0.5, 0, 1)

	out := ClipToHyperPlane(nil, []Vertex{a, b, c}, Planes[3], fmtFull)
	var found bool
	for _, v := range out {
		if math.Abs(float64(v.Pos.X-1)) < eps && math.Abs(float64(v.Pos.Y)) < eps {
			found = true
			if math.Abs(float64(v.Tex[0].X-0.5)) > eps || math.Abs(float64(v.Color[0].X-0.5)) > eps {
				t.Errorf("intersection attributes = tex %+v color %+v, want midpoint", v.Tex[0], v.Color[0])
			}
		}
	}
	if !found {
		t.Fatalf("no intersection at x=1 in %+v", out)
	}
}

// polyArea returns the area of a convex polygon in the xy plane.
func polyArea(p []Vertex) float64 {
	var s float64
	for i := range p {
		a, b := p[i].Pos, p[(i+1)%len(p)].Pos
		s += float64(a.X*b.Y - b.X*a.Y)
	}
	return math.Abs(s) / 2
}

func TestClipToHyperPlane_CoversHalfSpace(t *testing.T) {
	// Right triangle (0,0) (4,0) (0,4) clipped by x <= 1. Full area 8; the
	// cut-off corner x in [1,4] has legs 3 and 3, area 4.5.
	tri := []Vertex{vert(0, 0, 0, 1), vert(4, 0, 0, 1), vert(0, 4, 0, 1)}

	out := ClipToHyperPlane(nil, tri, Planes[3], fmtFull)
	if got := polyArea(out); math.Abs(got-3.5) > 1e-4 {
		t.Errorf("clipped area = %v, want 3.5", got)
	}
}

func TestClipper_ClipToFrustum(t *testing.T) {
	var c Clipper

	inside := []Vertex{vert(0, 0, 0, 1), vert(0.5, 0, 0, 1), vert(0, 0.5, 0, 1)}
	out := c.ClipToFrustum(inside, ClipAll, fmtFull)
	if len(out) != 3 {
		t.Fatalf("inside triangle: %d vertices", len(out))
	}

	big := []Vertex{vert(-10, -10, 0, 1), vert(10, -10, 0, 1), vert(0, 10, 0, 1)}
	out = c.ClipToFrustum(big, ClipAll, fmtFull)
	if len(out) < 3 || len(out) > 9 {
		t.Fatalf("big triangle: %d vertices", len(out))
	}
	for _, v := range out {
		if code := ClipToFrustumTest(&v); code != ClipInside {
			// Allow tiny float error on the boundary.
			for _, p := range Planes {
				if p.Dot(v.Pos) > eps {
					t.Fatalf("vertex %+v outside after clipping", v.Pos)
				}
			}
		}
	}
	if got := polyArea(out); math.Abs(got-4) > 1e-3 {
		t.Errorf("clipped area = %v, want the full 2x2 viewport", got)
	}

	gone := []Vertex{vert(2, 0, 0, 1), vert(3, 0, 0, 1), vert(2, 1, 0, 1)}
	if out := c.ClipToFrustum(gone, ClipAll, fmtFull); len(out) >= 3 {
		t.Errorf("outside triangle kept %d vertices", len(out))
	}
}

func TestClipper_MaskSkipsPlanes(t *testing.T) {
	var c Clipper
	tri := []Vertex{vert(0, 0, 0, 1), vert(3, 0, 0, 1), vert(0, 1, 0, 1)}
	out := c.ClipToFrustum(tri, ClipLeft|ClipTop, fmtFull)
	if len(out) != 3 {
		t.Errorf("right plane clipped although unselected: %d vertices", len(out))
	}
}

func TestClipLineToFrustum(t *testing.T) {
	a := vert(-3, 0, 0, 1)
	b := vert(0.5, 0, 0, 1)
	a.Tex[0] = geom.V2(0, 0)
	b.Tex[0] = geom.V2(1, 0)
	ca, cb, ok := ClipLineToFrustum(&a, &b, fmtFull)
	if !ok {
		t.Fatal("crossing line rejected")
	}
	if math.Abs(float64(ca.Pos.X+1)) > eps {
		t.Errorf("clipped start x = %v, want -1", ca.Pos.X)
	}
	if cb != b {
		t.Errorf("inside endpoint changed")
	}
	// t = 2/3.5 along the segment.
	if want := float32(2 / 3.5); math.Abs(float64(ca.Tex[0].X-want)) > eps {
		t.Errorf("clipped start u = %v, want %v", ca.Tex[0].X, want)
	}

	c := vert(2, 0, 0, 1)
	d := vert(3, 1, 0, 1)
	if _, _, ok := ClipLineToFrustum(&c, &d, fmtFull); ok {
		t.Error("outside line accepted")
	}
}
