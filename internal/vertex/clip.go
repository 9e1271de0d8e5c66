package vertex

import "github.com/gogpu/burning/internal/geom"

// ClipCode is a 6-bit frustum outcode. A set bit means the vertex is
// strictly outside that plane.
type ClipCode uint32

// Outcode bits, in clipping order.
const (
	ClipNear ClipCode = 1 << iota
	ClipFar
	ClipLeft
	ClipRight
	ClipBottom
	ClipTop

	// ClipInside is the code of a vertex inside all six planes.
	ClipInside ClipCode = 0

	// ClipAll selects every plane.
	ClipAll = ClipNear | ClipFar | ClipLeft | ClipRight | ClipBottom | ClipTop
)

// Planes holds the six clip-space half-spaces as plane vectors p with
// "outside" meaning dot(p, pos) > 0, in the order of the ClipCode bits.
// Inside is -w <= x, y, z <= w.
var Planes = [6]geom.Vec4{
	{X: 0, Y: 0, Z: -1, W: -1}, // near:   -z <= w
	{X: 0, Y: 0, Z: 1, W: -1},  // far:     z <= w
	{X: -1, Y: 0, Z: 0, W: -1}, // left:   -x <= w
	{X: 1, Y: 0, Z: 0, W: -1},  // right:   x <= w
	{X: 0, Y: -1, Z: 0, W: -1}, // bottom: -y <= w
	{X: 0, Y: 1, Z: 0, W: -1},  // top:     y <= w
}

// ClipToFrustumTest returns the outcode of v's clip-space position. A
// vertex exactly on a plane is inside.
func ClipToFrustumTest(v *Vertex) ClipCode {
	var code ClipCode
	for i, p := range Planes {
		if p.Dot(v.Pos) > 0 {
			code |= 1 << uint(i)
		}
	}
	return code
}

// ClipToHyperPlane runs one Sutherland-Hodgman pass of src against plane,
// writing the clipped polygon into dst[:0] and returning it.
//
// Each edge runs from the previous vertex b to the current vertex a. An edge
// that crosses the plane emits the intersection b + (a-b)*t with
// t = dot(b)/dot(b-a). Inside vertices are copied verbatim, so a polygon
// entirely inside comes back unchanged and in order.
func ClipToHyperPlane(dst, src []Vertex, plane geom.Vec4, f Format) []Vertex {
	dst = dst[:0]
	n := len(src)
	if n == 0 {
		return dst
	}

	b := &src[n-1]
	bDot := plane.Dot(b.Pos)
	for i := range src {
		a := &src[i]
		aDot := plane.Dot(a.Pos)

		if (aDot <= 0) != (bDot <= 0) {
			var v Vertex
			v.Interpolate(b, a, bDot/(bDot-aDot), f)
			dst = append(dst, v)
		}
		if aDot <= 0 {
			dst = append(dst, *a)
		}

		b, bDot = a, aDot
	}
	return dst
}

// Clipper owns the two scratch buffers the six clip passes alternate
// between. A zero Clipper is ready to use; it is not safe for concurrent
// use.
type Clipper struct {
	buf [2][MaxClip]Vertex
}

// ClipToFrustum clips the polygon in against the planes selected by mask,
// in near, far, left, right, bottom, top order. It stops as soon as fewer
// than 3 vertices remain; callers must treat any result with fewer than 3
// vertices as fully clipped.
//
// The result aliases the clipper's scratch memory and is valid until the
// next call.
func (c *Clipper) ClipToFrustum(in []Vertex, mask ClipCode, f Format) []Vertex {
	src := in
	pass := 0
	for i, p := range Planes {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		dst := c.buf[pass&1][:0:MaxClip]
		src = ClipToHyperPlane(dst, src, p, f)
		if len(src) < 3 {
			return src
		}
		pass++
	}
	return src
}

// ClipLineToFrustum clips segment a-b against all six planes. ok is false
// if the segment lies entirely outside.
func ClipLineToFrustum(a, b *Vertex, f Format) (ca, cb Vertex, ok bool) {
	tIn, tOut := float32(0), float32(1)
	for _, p := range Planes {
		da := p.Dot(a.Pos)
		db := p.Dot(b.Pos)
		switch {
		case da > 0 && db > 0:
			return ca, cb, false
		case da > 0:
			tIn = max(tIn, da/(da-db))
		case db > 0:
			tOut = min(tOut, da/(da-db))
		}
		if tIn > tOut {
			return ca, cb, false
		}
	}

	ca, cb = *a, *b
	if tIn > 0 {
		ca.Interpolate(a, b, tIn, f)
	}
	if tOut < 1 {
		cb.Interpolate(a, b, tOut, f)
	}
	return ca, cb, true
}
