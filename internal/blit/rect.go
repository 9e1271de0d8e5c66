// Package blit is the 2D compositor of the software renderer: rectangle
// copies with format conversion, nearest-neighbor stretching, color fills
// and clipped Bresenham lines. It works directly on image.ImageBuf pixels
// and never filters.
package blit

import stdimage "image"

// AbsRect is an integer rectangle given by its corners, X0 <= x < X1 and
// Y0 <= y < Y1.
type AbsRect struct {
	X0, Y0, X1, Y1 int
}

// FromRect converts a standard rectangle.
func FromRect(r stdimage.Rectangle) AbsRect {
	return AbsRect{X0: r.Min.X, Y0: r.Min.Y, X1: r.Max.X, Y1: r.Max.Y}
}

// Rect converts back to a standard rectangle.
func (r AbsRect) Rect() stdimage.Rectangle {
	return stdimage.Rect(r.X0, r.Y0, r.X1, r.Y1)
}

// Width returns X1 - X0.
func (r AbsRect) Width() int { return r.X1 - r.X0 }

// Height returns Y1 - Y0.
func (r AbsRect) Height() int { return r.Y1 - r.Y0 }

// Empty reports whether r covers no pixel.
func (r AbsRect) Empty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

// Intersect returns the overlap of r and o. The result may be empty.
func (r AbsRect) Intersect(o AbsRect) AbsRect {
	return AbsRect{
		X0: max(r.X0, o.X0),
		Y0: max(r.Y0, o.Y0),
		X1: min(r.X1, o.X1),
		Y1: min(r.Y1, o.Y1),
	}
}

// Outcode bits for Cohen-Sutherland.
const (
	outInside = 0
	outLeft   = 1
	outRight  = 2
	outBottom = 4
	outTop    = 8
)

// outcode classifies p against the inclusive pixel range of r.
func (r AbsRect) outcode(p stdimage.Point) int {
	code := outInside
	if p.X < r.X0 {
		code |= outLeft
	} else if p.X > r.X1-1 {
		code |= outRight
	}
	if p.Y < r.Y0 {
		code |= outTop
	} else if p.Y > r.Y1-1 {
		code |= outBottom
	}
	return code
}

// ClipLine clips the segment p0-p1 to the pixels of clip with the
// Cohen-Sutherland algorithm. It reports false if nothing remains.
func ClipLine(clip AbsRect, p0, p1 stdimage.Point) (stdimage.Point, stdimage.Point, bool) {
	if clip.Empty() {
		return p0, p1, false
	}
	code0 := clip.outcode(p0)
	code1 := clip.outcode(p1)
	right, bottom := clip.X1-1, clip.Y1-1

	for {
		if code0|code1 == 0 {
			return p0, p1, true
		}
		if code0&code1 != 0 {
			return p0, p1, false
		}

		out := code0
		if out == 0 {
			out = code1
		}

		dx, dy := p1.X-p0.X, p1.Y-p0.Y
		var p stdimage.Point
		switch {
		case out&outTop != 0:
			p.X = p0.X + dx*(clip.Y0-p0.Y)/dy
			p.Y = clip.Y0
		case out&outBottom != 0:
			p.X = p0.X + dx*(bottom-p0.Y)/dy
			p.Y = bottom
		case out&outRight != 0:
			p.Y = p0.Y + dy*(right-p0.X)/dx
			p.X = right
		case out&outLeft != 0:
			p.Y = p0.Y + dy*(clip.X0-p0.X)/dx
			p.X = clip.X0
		}

		if out == code0 {
			p0, code0 = p, clip.outcode(p)
		} else {
			p1, code1 = p, clip.outcode(p)
		}
	}
}
