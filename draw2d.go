package burning

import (
	stdimage "image"

	"github.com/gogpu/burning/internal/blit"
)

// clipRect returns the 2D clip: r intersected with the current clip, or
// the current clip for a nil r.
func (d *Driver) clipRect(r *stdimage.Rectangle) blit.AbsRect {
	c := d.shader.Clip()
	if r != nil {
		c = c.Intersect(*r)
	}
	return blit.FromRect(c)
}

// Draw2DImage copies the src part of tex to pos. With useAlpha the texels
// blend by their alpha; a color other than White also modulates them. It
// reports whether anything was drawn.
func (d *Driver) Draw2DImage(tex *Texture, pos stdimage.Point, src stdimage.Rectangle, clip *stdimage.Rectangle, c Color, useAlpha bool) bool {
	if tex == nil {
		return false
	}
	op := blit.OpCopy
	switch {
	case c != White:
		op = blit.OpCopyColor
	case useAlpha:
		op = blit.OpCopyAlpha
	}
	cr := d.clipRect(clip)
	sr := blit.FromRect(src)
	return blit.Blit(op, d.target, &cr, pos, tex.base(), &sr, uint32(c)) > 0
}

// Draw2DImageStretch scales the src part of tex to fill dst.
func (d *Driver) Draw2DImageStretch(tex *Texture, dst, src stdimage.Rectangle, clip *stdimage.Rectangle, useAlpha bool) bool {
	if tex == nil {
		return false
	}
	op := blit.OpCopy
	if useAlpha {
		op = blit.OpCopyAlpha
	}
	cr := d.clipRect(clip)
	return blit.StretchBlit(op, d.target, blit.FromRect(dst), &cr, tex.base(), blit.FromRect(src), uint32(White)) > 0
}

// Draw2DRectangle fills r with c. Translucent colors blend.
func (d *Driver) Draw2DRectangle(r stdimage.Rectangle, c Color, clip *stdimage.Rectangle) bool {
	cr := d.clipRect(clip)
	return blit.FillRect(d.target, blit.FromRect(r).Intersect(cr), uint32(c)) > 0
}

// Draw2DLine draws p0-p1 inclusive. Translucent colors blend.
func (d *Driver) Draw2DLine(p0, p1 stdimage.Point, c Color) bool {
	return blit.DrawLine(d.target, d.clipRect(nil), p0, p1, uint32(c))
}

// Draw3DLine draws a world-space line with the current transforms,
// untextured and unlit.
func (d *Driver) Draw3DLine(a, b Vec3, c Color) {
	verts := []Vertex{{Pos: a, Color: c}, {Pos: b, Color: c}}
	d.drawFlat(verts, Lines)
}

// Draw3DTriangle draws a world-space triangle with the current transforms,
// untextured, unlit and without culling.
func (d *Driver) Draw3DTriangle(a, b, e Vec3, c Color) {
	verts := []Vertex{{Pos: a, Color: c}, {Pos: b, Color: c}, {Pos: e, Color: c}}
	d.drawFlat(verts, Triangles)
}

func (d *Driver) drawFlat(verts []Vertex, p PrimitiveType) {
	saved := d.material
	m := NewMaterial()
	m.BackfaceCulling = false
	m.ColorMaterial = false
	m.ZBuffer = saved.ZBuffer
	m.ZWriteEnable = saved.ZWriteEnable
	if c := verts[0].Color; c.A() < 0xFF {
		m.Type = TransparentAlphaChannel
	}
	d.material = m
	d.DrawVertexPrimitiveList(verts, nil, VertexStandard, p)
	d.material = saved
}
