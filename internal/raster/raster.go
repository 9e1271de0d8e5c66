// Package raster converts screen-space triangles into horizontal spans of
// interpolated attributes.
//
// The converter walks the two edges of each half of the triangle, emitting
// one span per pixel row. Coverage follows the top-left rule: rows
// ceil(yTop) .. ceil(yBottom)-1 and columns ceil(xLeft) .. ceil(xRight)-1,
// so triangles sharing an edge never write a pixel twice.
package raster

import (
	"image"
	"math"
)

// Interpolant slots. A Vertex carries all of them; an Attribs mask selects
// the ones a shader reads.
const (
	IW    = iota // 1/w, doubles as the w-buffer depth
	ColR         // vertex color, pre-divided by w under perspective
	ColG
	ColB
	ColA
	Tex0U // texture 0 coordinates, scaled to texels and divided by w
	Tex0V
	Tex1U // texture 1 coordinates
	Tex1V
	TanX // tangent-space light vector
	TanY
	TanZ

	// Count is the number of interpolant slots.
	Count
)

// Attribs is a bit mask of interpolant slots.
type Attribs uint16

// Attribute groups.
const (
	AttrW       Attribs = 1 << IW
	AttrColor   Attribs = 0xF << ColR
	AttrTex0    Attribs = 0x3 << Tex0U
	AttrTex1    Attribs = 0x3 << Tex1U
	AttrTangent Attribs = 0x7 << TanX
)

// Has reports whether every slot of a is active in m.
func (m Attribs) Has(a Attribs) bool { return m&a == a }

// Vertex is a device-space vertex ready for scan conversion.
type Vertex struct {
	X, Y float32
	A    [Count]float32
}

// ScanLine is one row of a triangle: the exact left and right edge
// positions and the attribute values on both edges.
type ScanLine struct {
	Y      int
	XL, XR float32
	AL, AR [Count]float32
}

// Span is the pixel run of a ScanLine after the top-left rule and clipping:
// pixels X0 <= x < X1 on row Y. A holds the attribute values at pixel X0
// and D their per-pixel step.
type Span struct {
	Y      int
	X0, X1 int
	A      [Count]float32
	D      [Count]float32
}

// Rasterizer scan-converts triangles against a clip rectangle. It holds
// only per-call scratch state and is not safe for concurrent use.
type Rasterizer struct {
	clip image.Rectangle
	mask Attribs
	line ScanLine
	span Span
}

// NewRasterizer creates a rasterizer for a width x height target.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{clip: image.Rect(0, 0, width, height)}
}

// SetClip sets the pixel rectangle spans are clipped to.
func (r *Rasterizer) SetClip(clip image.Rectangle) { r.clip = clip }

// Clip returns the pixel rectangle spans are clipped to.
func (r *Rasterizer) Clip() image.Rectangle { return r.clip }

func ceil(f float32) int { return int(math.Ceil(float64(f))) }

// edge is the state of one triangle edge stepped row by row.
type edge struct {
	x, dx float32
	a, da [Count]float32
}

// start evaluates the edge from p to q at row y.
func (e *edge) start(p, q *Vertex, y float32, mask Attribs) {
	inv := 1 / (q.Y - p.Y)
	sub := y - p.Y
	e.dx = (q.X - p.X) * inv
	e.x = p.X + e.dx*sub
	for i := range Count {
		if mask&(1<<i) == 0 {
			continue
		}
		e.da[i] = (q.A[i] - p.A[i]) * inv
		e.a[i] = p.A[i] + e.da[i]*sub
	}
}

func (e *edge) step(mask Attribs) {
	e.x += e.dx
	for i := range Count {
		if mask&(1<<i) != 0 {
			e.a[i] += e.da[i]
		}
	}
}

// ScanConvert rasterizes triangle a, b, c, calling fill for every
// non-empty span. Only slots in mask are interpolated. Triangles with zero
// height or zero area produce no spans. The spans passed to fill are reused
// between calls.
func (r *Rasterizer) ScanConvert(a, b, c *Vertex, mask Attribs, fill func(*Span)) {
	// Sort by y.
	if a.Y > b.Y {
		a, b = b, a
	}
	if b.Y > c.Y {
		b, c = c, b
	}
	if a.Y > b.Y {
		a, b = b, a
	}

	if c.Y-a.Y <= 0 {
		return
	}

	// Sign of the cross product of the major edge a->c and the edge a->b
	// decides which side the major edge is on.
	side := (c.X-a.X)*(b.Y-a.Y) - (c.Y-a.Y)*(b.X-a.X)
	if side == 0 {
		return
	}
	majorLeft := side < 0

	r.mask = mask
	r.half(a, c, a, b, majorLeft, fill)
	r.half(a, c, b, c, majorLeft, fill)
}

// half walks rows of the sub-triangle bounded by the major edge ma-mc and
// the minor edge top-bot.
func (r *Rasterizer) half(ma, mc, top, bot *Vertex, majorLeft bool, fill func(*Span)) {
	if bot.Y-top.Y <= 0 {
		return
	}

	y0 := max(ceil(top.Y), r.clip.Min.Y)
	y1 := min(ceil(bot.Y), r.clip.Max.Y)
	if y0 >= y1 {
		return
	}

	var major, minor edge
	major.start(ma, mc, float32(y0), r.mask)
	minor.start(top, bot, float32(y0), r.mask)

	left, right := &minor, &major
	if majorLeft {
		left, right = &major, &minor
	}

	line := &r.line
	for y := y0; y < y1; y++ {
		line.Y = y
		line.XL, line.XR = left.x, right.x
		line.AL, line.AR = left.a, right.a
		if r.Span(line, &r.span) {
			fill(&r.span)
		}
		major.step(r.mask)
		minor.step(r.mask)
	}
}

// Span computes the clipped pixel run of line into sp with the current
// attribute mask. It reports false if no pixel is covered.
func (r *Rasterizer) Span(line *ScanLine, sp *Span) bool {
	dx := line.XR - line.XL
	if dx <= 0 {
		return false
	}

	x0 := max(ceil(line.XL), r.clip.Min.X)
	x1 := min(ceil(line.XR), r.clip.Max.X)
	if x0 >= x1 {
		return false
	}

	sp.Y = line.Y
	sp.X0, sp.X1 = x0, x1

	inv := 1 / dx
	sub := float32(x0) - line.XL
	for i := range Count {
		if r.mask&(1<<i) == 0 {
			continue
		}
		d := (line.AR[i] - line.AL[i]) * inv
		sp.D[i] = d
		sp.A[i] = line.AL[i] + d*sub
	}
	return true
}
