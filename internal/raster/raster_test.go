package raster

import (
	"image"
	"math"
	"testing"
)

func v(x, y float32) *Vertex { return &Vertex{X: x, Y: y} }

// cover rasterizes triangles into a per-pixel hit count.
func cover(t *testing.T, r *Rasterizer, w, h int, tris ...[3]*Vertex) [][]int {
	t.Helper()
	grid := make([][]int, h)
	for y := range grid {
		grid[y] = make([]int, w)
	}
	for _, tri := range tris {
		r.ScanConvert(tri[0], tri[1], tri[2], AttrW, func(s *Span) {
			for x := s.X0; x < s.X1; x++ {
				grid[s.Y][x]++
			}
		})
	}
	return grid
}

func TestScanConvert_TopLeftCoverage(t *testing.T) {
	r := NewRasterizer(16, 16)
	grid := cover(t, r, 16, 16, [3]*Vertex{v(0, 0), v(10, 0), v(0, 10)})

	for y := range 16 {
		for x := range 16 {
			// Pixel (x,y) is sampled at its integer corner: inside iff
			// x >= 0, y >= 0 and x + y < 10.
			want := 0
			if x+y < 10 {
				want = 1
			}
			if grid[y][x] != want {
				t.Fatalf("pixel (%d,%d) hit %d times, want %d", x, y, grid[y][x], want)
			}
		}
	}
}

func TestScanConvert_SharedEdgeTiles(t *testing.T) {
	r := NewRasterizer(16, 16)
	grid := cover(t, r, 16, 16,
		[3]*Vertex{v(0, 0), v(10, 0), v(0, 10)},
		[3]*Vertex{v(10, 0), v(10, 10), v(0, 10)},
	)
	for y := range 16 {
		for x := range 16 {
			want := 0
			if x < 10 && y < 10 {
				want = 1
			}
			if grid[y][x] != want {
				t.Fatalf("pixel (%d,%d) hit %d times, want %d", x, y, grid[y][x], want)
			}
		}
	}
}

func TestScanConvert_WindingIndependent(t *testing.T) {
	r := NewRasterizer(16, 16)
	a, b, c := v(1.5, 2.25), v(12.75, 5.5), v(4.25, 13.5)
	g1 := cover(t, r, 16, 16, [3]*Vertex{a, b, c})
	g2 := cover(t, r, 16, 16, [3]*Vertex{c, b, a})
	for y := range 16 {
		for x := range 16 {
			if g1[y][x] != g2[y][x] {
				t.Fatalf("pixel (%d,%d) differs between windings", x, y)
			}
		}
	}
}

func TestScanConvert_Degenerate(t *testing.T) {
	r := NewRasterizer(8, 8)
	calls := 0
	count := func(*Span) { calls++ }
	r.ScanConvert(v(0, 3), v(5, 3), v(7, 3), AttrW, count)
	r.ScanConvert(v(0, 0), v(2, 2), v(4, 4), AttrW, count)
	r.ScanConvert(v(1, 1), v(1, 1), v(1, 1), AttrW, count)
	if calls != 0 {
		t.Errorf("degenerate triangles emitted %d spans", calls)
	}
}

func TestScanConvert_Clip(t *testing.T) {
	r := NewRasterizer(8, 8)
	r.SetClip(image.Rect(2, 2, 6, 6))
	grid := cover(t, r, 8, 8,
		[3]*Vertex{v(-10, -10), v(20, -10), v(-10, 20)},
		[3]*Vertex{v(20, -10), v(20, 20), v(-10, 20)},
	)
	for y := range 8 {
		for x := range 8 {
			want := 0
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = 1
			}
			if grid[y][x] != want {
				t.Fatalf("pixel (%d,%d) hit %d times, want %d", x, y, grid[y][x], want)
			}
		}
	}
}

func TestScanConvert_Interpolation(t *testing.T) {
	r := NewRasterizer(32, 32)
	a, b, c := v(0, 0), v(20, 0), v(0, 20)
	// Attribute equal to x + 2y is exactly linear over the triangle.
	a.A[ColR] = 0
	b.A[ColR] = 20
	c.A[ColR] = 40

	r.ScanConvert(a, b, c, AttrColor, func(s *Span) {
		val := s.A[ColR]
		for x := s.X0; x < s.X1; x++ {
			want := float32(x + 2*s.Y)
			if math.Abs(float64(val-want)) > 1e-3 {
				t.Fatalf("attribute at (%d,%d) = %v, want %v", x, s.Y, val, want)
			}
			val += s.D[ColR]
		}
	})
}

func TestScanConvert_SubPixelStart(t *testing.T) {
	r := NewRasterizer(16, 16)
	// Top vertex between rows: first row must be ceil(0.4) = 1.
	first := -1
	r.ScanConvert(v(0.5, 0.4), v(10.5, 0.4), v(0.5, 9.6), AttrW, func(s *Span) {
		if first < 0 {
			first = s.Y
			if s.X0 != 1 {
				t.Errorf("first span starts at x=%d, want 1", s.X0)
			}
		}
	})
	if first != 1 {
		t.Errorf("first row = %d, want 1", first)
	}
}

func TestAttribs_Has(t *testing.T) {
	m := AttrW | AttrTex0
	if !m.Has(AttrTex0) || m.Has(AttrTex1) || m.Has(AttrW|AttrColor) {
		t.Error("Has mismatch")
	}
}
