package burning

import (
	"math"

	"github.com/gogpu/burning/internal/geom"
	"github.com/gogpu/burning/internal/raster"
	"github.com/gogpu/burning/internal/vertex"
)

// TransformState names one of the driver's matrices.
type TransformState uint8

const (
	TransformWorld TransformState = iota
	TransformView
	TransformProjection
	TransformTexture0
	TransformTexture1

	transformCount
)

// eyeLight is a light moved into eye space for one draw call.
type eyeLight struct {
	*Light
	pos, dir      Vec3
	cosIn, cosOut float32
}

// transformer holds the per-draw matrices and lights.
type transformer struct {
	m     [transformCount]Mat4
	dirty bool

	worldView Mat4
	wvp       Mat4
	normal    Mat4 // transpose of the inverse of worldView

	lights  []Light
	eye     []eyeLight
	ambient ColorF
}

func (t *transformer) init() {
	for i := range t.m {
		t.m[i] = geom.Identity()
	}
	t.dirty = true
}

// update recomputes the combined matrices and eye-space lights.
func (t *transformer) update() {
	if !t.dirty {
		return
	}
	t.worldView = t.m[TransformView].Mul(t.m[TransformWorld])
	t.wvp = t.m[TransformProjection].Mul(t.worldView)
	if inv, ok := t.worldView.Inverse(); ok {
		t.normal = inv.Transpose()
	} else {
		t.normal = t.worldView
	}

	view := t.m[TransformView]
	t.eye = t.eye[:0]
	for i := range t.lights {
		l := &t.lights[i]
		t.eye = append(t.eye, eyeLight{
			Light:  l,
			pos:    view.MulPoint3(l.Position),
			dir:    view.MulDir(l.Direction).Normalize(),
			cosIn:  float32(math.Cos(float64(l.InnerCone))),
			cosOut: float32(math.Cos(float64(l.OuterCone))),
		})
	}
	t.dirty = false
}

// project writes the clip-space position and outcode of v.
func (t *transformer) project(s *cacheSlot, v *Vertex) {
	s.pair.Clip.Pos = t.wvp.MulPoint(v.Pos)
	s.pair.Code = vertex.ClipToFrustumTest(&s.pair.Clip)
}

// shadeState is what shading one vertex depends on besides the vertex.
type shadeState struct {
	mat   *Material
	ps    *pipelineState
	vtype VertexType
}

// shade computes color, texture coordinates and the tangent-space light
// vector of a transformed vertex.
func (t *transformer) shade(s *cacheSlot, v *Vertex, st *shadeState) {
	out := &s.pair.Clip
	m := st.mat

	var eyePos, n Vec3
	needEye := m.Lighting || st.ps.gen[0] != texgenNone || st.ps.gen[1] != texgenNone || st.ps.kind.Attribs().Has(raster.AttrTangent)
	if needEye {
		eyePos = t.worldView.MulPoint3(v.Pos)
		n = t.normal.MulDir(v.Normal).Normalize()
	}

	base := v.Color.ColorF()
	c := base
	if m.Lighting {
		c = t.light(eyePos, n, base, m)
	}
	out.Color[0] = geom.V4(c.R, c.G, c.B, c.A)

	uv := [MaxTextureStages]Vec2{v.TCoords, v.TCoords}
	if st.vtype != VertexStandard {
		uv[1] = v.TCoords2
	}
	for i := range uv {
		switch st.ps.gen[i] {
		case texgenSphere:
			uv[i] = sphereMap(eyePos, n)
		case texgenReflection:
			uv[i] = reflectionMap(eyePos, n)
		}
		tm := &t.m[TransformTexture0+TransformState(i)]
		if !tm.IsIdentity() {
			uv[i] = geom.V2(
				tm[0]*uv[i].X+tm[1]*uv[i].Y+tm[3],
				tm[4]*uv[i].X+tm[5]*uv[i].Y+tm[7])
		}
		out.Tex[i] = uv[i]
	}

	if st.ps.kind.Attribs().Has(raster.AttrTangent) {
		out.Tangent[0] = t.tangentLight(eyePos, n, v, st.vtype)
	}
	s.lit = true
}

// light evaluates the fixed-function lighting model at eye-space point p
// with normal n.
func (t *transformer) light(p, n Vec3, vc ColorF, m *Material) ColorF {
	ambient, diffuse := m.AmbientColor, m.DiffuseColor
	if m.ColorMaterial {
		ambient, diffuse = vc, vc
	}

	amb := t.ambient
	var dif, spec ColorF
	view := p.Normalize().Neg()

	for i := range t.eye {
		l := &t.eye[i]
		var dir Vec3
		att := float32(1)

		switch l.Type {
		case LightDirectional:
			dir = l.dir.Neg()
		default:
			d := l.pos.Sub(p)
			dist := d.Length()
			if l.Radius > 0 && dist > l.Radius {
				continue
			}
			if dist > 0 {
				dir = d.Mul(1 / dist)
			}
			k := l.Attenuation.X + l.Attenuation.Y*dist + l.Attenuation.Z*dist*dist
			if k > 0 {
				att = 1 / k
			}
			if l.Type == LightSpot {
				cos := dir.Neg().Dot(l.dir)
				if cos < l.cosOut {
					continue
				}
				if cos < l.cosIn && l.cosIn > l.cosOut {
					f := (cos - l.cosOut) / (l.cosIn - l.cosOut)
					if l.Falloff > 0 {
						f = float32(math.Pow(float64(f), float64(l.Falloff)))
					}
					att *= f
				}
			}
		}

		amb = amb.Add(l.Ambient.Scale(att))
		ndl := n.Dot(dir)
		if ndl <= 0 {
			continue
		}
		dif = dif.Add(l.Diffuse.Scale(ndl * att))
		if m.Shininess > 0 {
			h := dir.Add(view).Normalize()
			if ndh := n.Dot(h); ndh > 0 {
				k := float32(math.Pow(float64(ndh), float64(m.Shininess)))
				spec = spec.Add(l.Specular.Scale(k * att))
			}
		}
	}

	c := m.EmissiveColor.
		Add(amb.Mul(ambient)).
		Add(dif.Mul(diffuse)).
		Add(spec.Mul(m.SpecularColor))
	c.A = diffuse.A
	return c.Clamp()
}

// tangentLight returns the unit direction to the first light expressed in
// the vertex tangent frame. Tangents follow the surface, so they take the
// world-view matrix rather than the normal matrix. Without lights or
// tangents it points along the surface normal.
func (t *transformer) tangentLight(p, n Vec3, v *Vertex, vtype VertexType) Vec3 {
	if len(t.eye) == 0 || vtype != VertexTangents {
		return V3(0, 0, 1)
	}
	var l Vec3
	if t.eye[0].Type == LightDirectional {
		l = t.eye[0].dir.Neg()
	} else {
		l = t.eye[0].pos.Sub(p).Normalize()
	}
	tan := t.worldView.MulDir(v.Tangent).Normalize()
	bin := t.worldView.MulDir(v.Binormal).Normalize()
	return V3(l.Dot(tan), l.Dot(bin), l.Dot(n))
}

// sphereMap maps the eye-space reflection vector onto a sphere texture.
func sphereMap(p, n Vec3) Vec2 {
	r := reflect(p.Normalize(), n)
	m := 2 * float32(math.Sqrt(float64(r.X*r.X+r.Y*r.Y+(r.Z+1)*(r.Z+1))))
	if m == 0 {
		return geom.V2(0.5, 0.5)
	}
	return geom.V2(r.X/m+0.5, 0.5-r.Y/m)
}

// reflectionMap projects the eye-space reflection vector onto the texture
// plane.
func reflectionMap(p, n Vec3) Vec2 {
	r := reflect(p.Normalize(), n)
	return geom.V2(0.5+r.X*0.5, 0.5-r.Y*0.5)
}

func reflect(u, n Vec3) Vec3 {
	return u.Sub(n.Mul(2 * n.Dot(u)))
}
