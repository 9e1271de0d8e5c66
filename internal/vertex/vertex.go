// Package vertex defines the rasterizer's internal vertex, its homogeneous
// frustum clipper and the projection to device coordinates.
package vertex

import "github.com/gogpu/burning/internal/geom"

const (
	// MaxTextures is the number of texture coordinate sets a vertex carries.
	MaxTextures = 2

	// MaxColors is the number of vertex color sets.
	MaxColors = 1

	// MaxTangents is the number of tangent-space light vectors.
	MaxTangents = 1

	// MaxClip is the capacity of one clip scratch buffer. A triangle
	// clipped by six planes has at most nine vertices.
	MaxClip = 16
)

// Format names how many of each attribute set a vertex uses. Interpolation
// and projection only touch the active sets.
type Format struct {
	TexCoords int
	Colors    int
	Tangents  int
}

// Vertex is one rasterizer vertex. Before projection Pos is in clip space;
// after projection it is (screenX, screenY, ndcZ, 1/w).
//
// Colors are r, g, b, a in [0, 1]. After perspective projection colors and
// tangents are pre-divided by w.
type Vertex struct {
	Pos     geom.Vec4
	Color   [MaxColors]geom.Vec4
	Tex     [MaxTextures]geom.Vec2
	Tangent [MaxTangents]geom.Vec3
}

// Interpolate sets v = b + (a - b) * t for position and every active
// attribute set of f.
func (v *Vertex) Interpolate(b, a *Vertex, t float32, f Format) {
	v.Pos = b.Pos.Lerp(a.Pos, t)
	for i := range min(f.Colors, MaxColors) {
		v.Color[i] = b.Color[i].Lerp(a.Color[i], t)
	}
	for i := range min(f.TexCoords, MaxTextures) {
		v.Tex[i] = b.Tex[i].Lerp(a.Tex[i], t)
	}
	for i := range min(f.Tangents, MaxTangents) {
		v.Tangent[i] = b.Tangent[i].Lerp(a.Tangent[i], t)
	}
}

// Pair holds a transformed vertex in clip space and, once projected, its
// device-space copy.
type Pair struct {
	Clip      Vertex
	Screen    Vertex
	Code      ClipCode
	Projected bool
}
