package shader

import (
	stdimage "image"
	"math"

	"github.com/gogpu/burning/internal/raster"
)

// shadeLine colors one wire pixel: the vertex color, modulated by stage 0
// when a texture is bound.
func (s *Shader) shadeLine(a *[raster.Count]float32, f *fragment) uint32 {
	s.setup(a, f)
	if s.bound[0] {
		return modulate(s.sample0(f), f)
	}
	return vertexColor(f)
}

// plot depth-tests and writes one pixel inside the clip rectangle.
func (s *Shader) plot(x, y int, a *[raster.Count]float32, f *fragment) {
	if !stdimage.Pt(x, y).In(s.rast.Clip()) {
		return
	}
	iw := a[raster.IW]
	var zp *float32
	if s.zbuf != nil && !s.info.noZ {
		zp = &s.zbuf.Lock()[y*s.zbuf.Pitch()+x]
		defer s.zbuf.Unlock()
		if s.zCompare != CompareAlways && !depthPass(s.zCompare, iw, *zp) {
			return
		}
	}

	format := s.target.Format()
	p := s.target.Lock()[y*s.target.Pitch()+x*format.BytesPerPixel():]
	defer s.target.Unlock()
	f.dst = loadPixel(format, p)
	storePixel(format, p, s.shadeLine(a, f))
	if zp != nil && s.zWrite {
		*zp = iw
	}
}

// lineReady checks the target and, if bound, that the depth buffer matches.
func (s *Shader) lineReady() bool {
	if s.target == nil || s.target.IsEmpty() {
		return false
	}
	if s.zbuf == nil {
		return true
	}
	w, h := s.zbuf.Size()
	return w == s.target.Width() && h == s.target.Height()
}

// DrawLine rasterizes the segment a-b with Bresenham's algorithm,
// interpolating attributes along the major axis. Both endpoints are drawn.
func (s *Shader) DrawLine(a, b *raster.Vertex) {
	if !s.lineReady() {
		return
	}
	x0, y0 := int(math.Floor(float64(a.X))), int(math.Floor(float64(a.Y)))
	x1, y1 := int(math.Floor(float64(b.X))), int(math.Floor(float64(b.Y)))

	dx, dy := x1-x0, y1-y0
	sx, sy := 1, 1
	if dx < 0 {
		dx, sx = -dx, -1
	}
	if dy < 0 {
		dy, sy = -dy, -1
	}
	n := max(dx, dy)

	mask := s.info.attribs
	attr := a.A
	var d [raster.Count]float32
	if n > 0 {
		inv := 1 / float32(n)
		for i := range raster.Count {
			if mask&(1<<i) != 0 {
				d[i] = (b.A[i] - a.A[i]) * inv
			}
		}
	}

	var f fragment
	x, y := x0, y0
	err := dx - dy
	for range n + 1 {
		s.plot(x, y, &attr, &f)
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
		step(&attr, &d, mask)
	}
}

// DrawPoint draws the pixel containing v.
func (s *Shader) DrawPoint(v *raster.Vertex) {
	if !s.lineReady() {
		return
	}
	x := int(math.Floor(float64(v.X)))
	y := int(math.Floor(float64(v.Y)))
	attr := v.A
	var f fragment
	s.plot(x, y, &attr, &f)
}
