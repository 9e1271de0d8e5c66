package vertex

// Viewport maps normalized device coordinates to pixels. Device y grows
// downward.
type Viewport struct {
	X, Y          float32
	Width, Height float32
}

// Project writes the device-space copy of src to dst: x, y in pixels, z as
// normalized depth and w replaced by 1/w. With perspective set, colors and
// tangents are divided by w so the span fillers can interpolate them
// linearly in screen space and multiply back per pixel. Texture coordinates
// are copied unchanged; they are scaled and divided per triangle once the
// mip level is known.
//
// src.Pos.W must be positive, which frustum clipping guarantees.
func Project(dst, src *Vertex, vp Viewport, f Format, perspective bool) {
	iw := 1 / src.Pos.W
	dst.Pos.X = vp.X + (src.Pos.X*iw+1)*0.5*vp.Width
	dst.Pos.Y = vp.Y + (1-src.Pos.Y*iw)*0.5*vp.Height
	dst.Pos.Z = src.Pos.Z * iw
	dst.Pos.W = iw

	for i := range min(f.TexCoords, MaxTextures) {
		dst.Tex[i] = src.Tex[i]
	}
	if perspective {
		for i := range min(f.Colors, MaxColors) {
			dst.Color[i] = src.Color[i].Mul(iw)
		}
		for i := range min(f.Tangents, MaxTangents) {
			dst.Tangent[i] = src.Tangent[i].Mul(iw)
		}
		return
	}
	for i := range min(f.Colors, MaxColors) {
		dst.Color[i] = src.Color[i]
	}
	for i := range min(f.Tangents, MaxTangents) {
		dst.Tangent[i] = src.Tangent[i]
	}
}

// Facing returns twice the signed screen-space area of triangle a, b, c.
// With device y pointing down, a clockwise-on-screen triangle is positive.
func Facing(a, b, c *Vertex) float32 {
	return (b.Pos.X-a.Pos.X)*(c.Pos.Y-a.Pos.Y) - (b.Pos.Y-a.Pos.Y)*(c.Pos.X-a.Pos.X)
}
