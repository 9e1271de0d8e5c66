package main

import (
	"fmt"
	stdimage "image"
	"image/color"
	"math"

	"github.com/gogpu/burning"
)

// mesh is an indexed triangle list.
type mesh struct {
	verts   []burning.Vertex
	indices burning.Indices16
}

// quad appends a face centered at c spanning ±u and ±v. Its front side
// faces u×v.
func (m *mesh) quad(c, u, v burning.Vec3, col burning.Color) {
	n := u.Cross(v).Normalize()
	base := uint16(len(m.verts))
	corners := [4]struct {
		su, sv float32
		uv     burning.Vec2
	}{
		{-1, -1, burning.V2(0, 1)},
		{1, -1, burning.V2(1, 1)},
		{1, 1, burning.V2(1, 0)},
		{-1, 1, burning.V2(0, 0)},
	}
	for _, k := range corners {
		m.verts = append(m.verts, burning.Vertex{
			Pos:      c.Add(u.Mul(k.su)).Add(v.Mul(k.sv)),
			Normal:   n,
			Color:    col,
			TCoords:  k.uv,
			TCoords2: k.uv,
			Tangent:  u.Normalize(),
			Binormal: v.Normalize(),
		})
	}
	m.indices = append(m.indices, base, base+1, base+2, base, base+2, base+3)
}

func cube(half float32, col burning.Color) *mesh {
	m := &mesh{}
	x, y, z := burning.V3(half, 0, 0), burning.V3(0, half, 0), burning.V3(0, 0, half)
	m.quad(x, z.Neg(), y, col)
	m.quad(x.Neg(), z, y, col)
	m.quad(y, x, z.Neg(), col)
	m.quad(y.Neg(), x, z, col)
	m.quad(z, x, y, col)
	m.quad(z.Neg(), x.Neg(), y, col)
	return m
}

func plane(y, half float32, col burning.Color) *mesh {
	m := &mesh{}
	m.quad(burning.V3(0, y, 0), burning.V3(half, 0, 0), burning.V3(0, 0, -half), col)
	return m
}

// checker returns a size x size checkerboard of cells pixels per square.
func checker(size, cells int, a, b color.RGBA) *stdimage.RGBA {
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			c := a
			if (x/cells+y/cells)&1 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// spot returns a radial falloff, bright in the middle, for light maps and
// detail layers. The alpha channel carries the same falloff.
func spot(size int) *stdimage.RGBA {
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := range size {
		for x := range size {
			dx, dy := (float64(x)+0.5-r)/r, (float64(y)+0.5-r)/r
			v := 1 - math.Sqrt(dx*dx+dy*dy)
			v = math.Max(v, 0.15)
			g := uint8(v * 255)
			img.SetRGBA(x, y, color.RGBA{g, g, g, g})
		}
	}
	return img
}

// bumps returns a tangent-space normal map of a grid of rounded bumps.
func bumps(size, cells int) *stdimage.RGBA {
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, size, size))
	cell := float64(size) / float64(cells)
	for y := range size {
		for x := range size {
			fx := math.Mod(float64(x)+0.5, cell)/cell*2 - 1
			fy := math.Mod(float64(y)+0.5, cell)/cell*2 - 1
			nx, ny := fx*0.6, -fy*0.6
			nz := math.Sqrt(math.Max(1-nx*nx-ny*ny, 0))
			img.SetRGBA(x, y, color.RGBA{
				R: uint8((nx*0.5 + 0.5) * 255),
				G: uint8((ny*0.5 + 0.5) * 255),
				B: uint8((nz*0.5 + 0.5) * 255),
				A: 255,
			})
		}
	}
	return img
}

// scene is what the demo renders each frame.
type scene struct {
	cfg *Config

	cube, ground *mesh
	cubeMat      burning.Material
	groundMat    burning.Material
	vtype        burning.VertexType
	lights       []burning.Light
	background   burning.Color
	projection   burning.Mat4
}

func newScene(d *burning.Driver, cfg *Config) (*scene, error) {
	mt, ok := burning.ParseMaterialType(cfg.Material)
	if !ok {
		return nil, fmt.Errorf("unknown material %q", cfg.Material)
	}
	lights, err := cfg.lights()
	if err != nil {
		return nil, err
	}

	var base *burning.Texture
	if cfg.Texture != "" {
		base, err = d.GetTexture(cfg.Texture)
	} else {
		base, err = d.NewTexture("checker", checker(64, 8,
			color.RGBA{220, 200, 60, 255}, color.RGBA{60, 90, 200, 160}))
	}
	if err != nil {
		return nil, err
	}
	floor, err := d.NewTexture("floor", checker(128, 16,
		color.RGBA{200, 200, 200, 255}, color.RGBA{90, 90, 90, 255}))
	if err != nil {
		return nil, err
	}

	vertColor := burning.ColorFromARGB(255, 255, 255, 255)
	if mt == burning.TransparentVertexAlpha {
		vertColor = burning.ColorFromARGB(128, 255, 255, 255)
	}

	s := &scene{
		cfg:        cfg,
		cube:       cube(1, vertColor),
		ground:     plane(-1.5, 4, burning.ColorFromARGB(255, 255, 255, 255)),
		vtype:      burning.VertexStandard,
		lights:     lights,
		background: burning.Hex(cfg.Background),
	}

	s.cubeMat = burning.NewMaterial()
	s.cubeMat.Type = mt
	s.cubeMat.Lighting = len(lights) > 0
	s.cubeMat.Wireframe = cfg.Wireframe
	s.cubeMat.Shininess = 20
	s.cubeMat.Textures[0] = base

	switch mt {
	case burning.NormalMap:
		nm, err := d.NewTexture("bumps", bumps(64, 4))
		if err != nil {
			return nil, err
		}
		s.cubeMat.Textures[1] = nm
		s.vtype = burning.VertexTangents
	case burning.Solid2Layer, burning.LightMap, burning.LightMapAdd, burning.LightMapM2,
		burning.LightMapM4, burning.LightMapLighting, burning.LightMapLightingM2,
		burning.LightMapLightingM4, burning.DetailMap, burning.Reflection2Layer,
		burning.TransparentReflection2Layer:
		lm, err := d.NewTexture("spot", spot(64))
		if err != nil {
			return nil, err
		}
		s.cubeMat.Textures[1] = lm
		s.vtype = burning.Vertex2TCoords
	case burning.TransparentAlphaChannelRef:
		s.cubeMat.MaterialTypeParam = 0.5
	case burning.OneTextureBlend:
		s.cubeMat.MaterialTypeParam = burning.PackBlendFunc(burning.BlendSrcAlpha, burning.BlendOneMinusSrcAlpha)
	}

	s.groundMat = burning.NewMaterial()
	s.groundMat.Lighting = len(lights) > 0
	s.groundMat.Textures[0] = floor

	w, h := d.ScreenSize()
	aspect := float32(w) / float32(h)
	if *cfg.Perspective {
		s.projection = burning.Perspective(math.Pi/3, aspect, 0.5, 100)
	} else {
		s.projection = burning.Ortho(-3*aspect, 3*aspect, -3, 3, 0.5, 100)
	}
	return s, nil
}

// render draws frame i of n.
func (s *scene) render(d *burning.Driver, i, n int) error {
	angle := 2 * math.Pi * float32(i) / float32(max(n, 1))

	if err := d.BeginScene(true, true, s.background); err != nil {
		return err
	}
	defer d.EndScene()

	d.SetTransform(burning.TransformProjection, s.projection)
	d.SetTransform(burning.TransformView, burning.LookAt(
		burning.V3(0, 2, 5), burning.V3(0, 0, 0), burning.V3(0, 1, 0)))

	d.ClearLights()
	for _, l := range s.lights {
		d.AddLight(l)
	}
	d.SetAmbientLight(burning.RGB(0.2, 0.2, 0.2))

	d.SetTransform(burning.TransformWorld, burning.Identity())
	d.SetMaterial(s.groundMat)
	d.DrawIndexedTriangleList(s.ground.verts, s.ground.indices)

	world := burning.RotateY(angle).Mul(burning.RotateX(angle / 2))
	d.SetTransform(burning.TransformWorld, world)
	d.SetMaterial(s.cubeMat)
	d.DrawVertexPrimitiveList(s.cube.verts, s.cube.indices, s.vtype, burning.Triangles)

	if s.cfg.Shadow && len(s.lights) > 0 && s.lights[0].Type != burning.LightDirectional {
		d.SetTransform(burning.TransformWorld, burning.Identity())
		d.DrawStencilShadowVolume(shadowVolume(s.cube, world, s.lights[0].Position, 20), true)
		d.DrawStencilShadow(burning.ColorFromARGB(128, 0, 0, 0), true)
	}

	st := d.Stats()
	d.DrawText(fmt.Sprintf("%s\nframe %d/%d\ntris %d drawn %d", s.cubeMat.Type, i+1, n, st.Submitted, st.Drawn),
		stdimage.Pt(4, 4), burning.ColorFromARGB(255, 255, 255, 255))
	return nil
}

// shadowVolume builds a closed world-space volume, as a triangle list, for
// the faces of m lit by a point light at lightPos. Every lit triangle
// contributes its front cap, its extruded back cap and three sides.
func shadowVolume(m *mesh, world burning.Mat4, lightPos burning.Vec3, extrude float32) []burning.Vec3 {
	var out []burning.Vec3
	far := func(p burning.Vec3) burning.Vec3 {
		return p.Add(p.Sub(lightPos).Normalize().Mul(extrude))
	}
	for i := 0; i+2 < len(m.indices); i += 3 {
		a := world.MulPoint3(m.verts[m.indices[i]].Pos)
		b := world.MulPoint3(m.verts[m.indices[i+1]].Pos)
		c := world.MulPoint3(m.verts[m.indices[i+2]].Pos)
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Dot(lightPos.Sub(a)) <= 0 {
			continue
		}
		fa, fb, fc := far(a), far(b), far(c)
		out = append(out, a, b, c, fa, fc, fb)
		for _, e := range [3][4]burning.Vec3{{a, b, fa, fb}, {b, c, fb, fc}, {c, a, fc, fa}} {
			out = append(out, e[0], e[2], e[1], e[1], e[2], e[3])
		}
	}
	return out
}
