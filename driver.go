package burning

import (
	"fmt"
	stdimage "image"
	"log/slog"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/burning/internal/cache"
	"github.com/gogpu/burning/internal/depth"
	"github.com/gogpu/burning/internal/image"
	"github.com/gogpu/burning/internal/raster"
	"github.com/gogpu/burning/internal/shader"
	"github.com/gogpu/burning/internal/vertex"
)

// Stats counts primitives since the last BeginScene.
type Stats struct {
	// Submitted is every primitive passed to a draw call.
	Submitted int
	// Rejected primitives lay entirely outside one frustum plane.
	Rejected int
	// Clipped primitives crossed the frustum and went through the clipper.
	Clipped int
	// Culled primitives faced away or were degenerate.
	Culled int
	// Drawn counts triangles, lines and points handed to the shader.
	Drawn int
}

// cullMode overrides material culling for internal passes.
type cullMode uint8

const (
	cullMaterial cullMode = iota
	cullBack
	cullFront
)

// Driver renders into a software back buffer. It is not safe for
// concurrent use.
type Driver struct {
	opts options

	back    *image.ImageBuf
	target  *image.ImageBuf
	rt      *Texture
	zbuf    *depth.Buffer
	stencil *depth.StencilBuffer

	shader   *shader.Shader
	clipper  vertex.Clipper
	viewport vertex.Viewport
	inScene  bool

	textures *cache.Cache[string, *Texture]

	xf       transformer
	material Material
	state    pipelineState
	cache    vertexCache
	shade    shadeState
	format   vertex.Format
	cull     cullMode

	stats Stats
}

// NewDriver returns a driver with a width x height back buffer, a w-buffer
// and, unless disabled, a stencil buffer.
func NewDriver(width, height int, opts ...Option) (*Driver, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger != nil {
		SetLogger(o.logger)
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	switch o.format {
	case FormatA8R8G8B8, FormatA1R5G5B5, FormatR5G6B5:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, o.format)
	}

	back, err := image.NewImageBuf(width, height, o.format)
	if err != nil {
		return nil, fmt.Errorf("back buffer: %w", err)
	}

	d := &Driver{
		opts:     o,
		back:     back,
		zbuf:     depth.NewBuffer(width, height),
		shader:   shader.New(),
		material: NewMaterial(),
	}
	d.textures = cache.New[string](o.texBudget, (*Texture).Bytes)
	d.textures.OnEvict = func(name string, t *Texture) {
		Logger().Debug("texture evicted", slog.String("name", name), slog.Int("bytes", t.Bytes()))
	}
	if o.stencil {
		d.stencil = depth.NewStencilBuffer(width, height)
	}
	d.xf.init()
	d.cache.fill = d.xf.project
	d.shader.SetPerspective(o.perspective)
	d.shader.SetDepthBuffer(d.zbuf)
	d.shader.SetStencilBuffer(d.stencil)
	d.bindTarget(back)

	Logger().Debug("driver created",
		slog.Int("width", width), slog.Int("height", height),
		slog.String("format", o.format.String()))
	return d, nil
}

// bindTarget makes img the render target and sizes the depth buffers to
// it.
func (d *Driver) bindTarget(img *image.ImageBuf) {
	d.target = img
	w, h := img.Dimension()
	d.zbuf.SetSize(w, h)
	if d.stencil != nil {
		d.stencil.SetSize(w, h)
	}
	d.shader.SetRenderTarget(img)
	d.viewport = vertex.Viewport{Width: float32(w), Height: float32(h)}
}

// ScreenSize returns the back buffer size.
func (d *Driver) ScreenSize() (int, int) { return d.back.Dimension() }

// ColorFormat returns the back buffer pixel format.
func (d *Driver) ColorFormat() ColorFormat { return d.back.Format() }

// GPUFormats returns texture formats matching the back buffer and
// w-buffer, for presenters that upload them.
func (d *Driver) GPUFormats() (color, zbuf gputypes.TextureFormat) {
	return d.back.Format().GPUFormat(), d.zbuf.GPUFormat()
}

// BeginScene starts a frame: it clears the selected buffers of the current
// target and resets the statistics.
func (d *Driver) BeginScene(clearBack, clearZ bool, c Color) error {
	if d.inScene {
		return ErrSceneActive
	}
	d.inScene = true
	d.stats = Stats{}
	d.clear(clearBack, clearZ, c)
	return nil
}

// EndScene finishes the frame. A bound render-target texture gets its mip
// chain rebuilt.
func (d *Driver) EndScene() {
	d.inScene = false
	if d.rt != nil {
		d.rt.RegenerateMipMaps()
	}
}

func (d *Driver) clear(clearBack, clearZ bool, c Color) {
	if clearBack {
		d.target.Fill(uint32(c))
	}
	if clearZ {
		d.zbuf.Clear()
		if d.stencil != nil {
			d.stencil.Clear()
		}
	}
}

// AddRenderTargetTexture creates a texture the driver can render into.
// Sides are rounded up to powers of two.
func (d *Driver) AddRenderTargetTexture(name string, width, height int) (*Texture, error) {
	t, err := newRenderTargetTexture(name, width, height, d.opts.mipmaps)
	if err != nil {
		return nil, err
	}
	d.textures.Set(name, t)
	return t, nil
}

// NewTexture creates a texture from img with the driver's mip map setting
// and registers it under name, replacing any texture of that name.
func (d *Driver) NewTexture(name string, img stdimage.Image) (*Texture, error) {
	t, err := NewTextureFromImage(name, img, d.opts.mipmaps)
	if err != nil {
		return nil, err
	}
	d.textures.Set(name, t)
	return t, nil
}

// GetTexture returns the texture registered under path, loading the file
// on first use.
func (d *Driver) GetTexture(path string) (*Texture, error) {
	return d.textures.GetOrCreate(path, func() (*Texture, error) {
		return LoadTexture(path, d.opts.mipmaps)
	})
}

// FindTexture returns a registered texture without loading anything. It
// does not count as a use for eviction.
func (d *Driver) FindTexture(name string) (*Texture, bool) {
	return d.textures.Peek(name)
}

// TextureNames returns the registered names, most recently used first.
func (d *Driver) TextureNames() []string { return d.textures.Keys() }

// RemoveTexture forgets the texture registered under name. Materials
// holding it keep working.
func (d *Driver) RemoveTexture(name string) bool {
	return d.textures.Delete(name)
}

// TextureCount returns the number of registered textures.
func (d *Driver) TextureCount() int { return d.textures.Len() }

// SetRenderTarget redirects drawing into tex, or back to the back buffer
// when tex is nil, and clears the selected buffers. The depth buffers are
// resized to the new target.
func (d *Driver) SetRenderTarget(tex *Texture, clearBack, clearZ bool, c Color) error {
	if tex != nil && !tex.renderTarget {
		return ErrNotRenderTarget
	}
	if d.rt != nil && d.rt != tex {
		d.rt.RegenerateMipMaps()
	}
	d.rt = tex
	if tex == nil {
		d.bindTarget(d.back)
	} else {
		d.bindTarget(tex.base())
	}
	w, h := d.target.Dimension()
	Logger().Debug("render target bound", slog.Int("width", w), slog.Int("height", h))
	d.clear(clearBack, clearZ, c)
	return nil
}

// OnResize reallocates the back buffer. Its contents are lost.
func (d *Driver) OnResize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidSize
	}
	back, err := image.NewImageBuf(width, height, d.back.Format())
	if err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	d.back = back
	if d.rt == nil {
		d.bindTarget(back)
	}
	Logger().Debug("buffers resized", slog.Int("width", width), slog.Int("height", height))
	return nil
}

// SetViewport restricts 3D drawing to r, mapping normalized device
// coordinates onto it.
func (d *Driver) SetViewport(r stdimage.Rectangle) {
	r = r.Intersect(d.target.Bounds())
	d.viewport = vertex.Viewport{
		X: float32(r.Min.X), Y: float32(r.Min.Y),
		Width: float32(r.Dx()), Height: float32(r.Dy()),
	}
	d.shader.SetClip(r)
}

// Image returns a copy of the back buffer.
func (d *Driver) Image() *stdimage.RGBA { return d.back.ToRGBA() }

// SavePNG writes the back buffer to a PNG file.
func (d *Driver) SavePNG(path string) error { return d.back.SavePNG(path) }

// Stats returns the counters of the current scene.
func (d *Driver) Stats() Stats { return d.stats }

// SetTransform sets one of the matrices.
func (d *Driver) SetTransform(s TransformState, m Mat4) {
	if s >= transformCount {
		return
	}
	d.xf.m[s] = m
	d.xf.dirty = true
}

// Transform returns one of the matrices.
func (d *Driver) Transform(s TransformState) Mat4 {
	if s >= transformCount {
		return Identity()
	}
	return d.xf.m[s]
}

// SetMaterial sets the render state for subsequent draws.
func (d *Driver) SetMaterial(m Material) { d.material = m }

// Material returns the current material.
func (d *Driver) Material() Material { return d.material }

// AddLight adds a dynamic light and returns its index.
func (d *Driver) AddLight(l Light) int {
	d.xf.lights = append(d.xf.lights, l)
	d.xf.dirty = true
	return len(d.xf.lights) - 1
}

// ClearLights removes every dynamic light.
func (d *Driver) ClearLights() {
	d.xf.lights = d.xf.lights[:0]
	d.xf.dirty = true
}

// LightCount returns the number of dynamic lights.
func (d *Driver) LightCount() int { return len(d.xf.lights) }

// SetAmbientLight sets the global ambient term.
func (d *Driver) SetAmbientLight(c ColorF) { d.xf.ambient = c }

// DrawIndexedTriangleList draws indexed triangles of standard vertices.
func (d *Driver) DrawIndexedTriangleList(verts []Vertex, indices Indices) {
	d.DrawVertexPrimitiveList(verts, indices, VertexStandard, Triangles)
}

// DrawIndexedTriangleFan draws an indexed fan of standard vertices.
func (d *Driver) DrawIndexedTriangleFan(verts []Vertex, indices Indices) {
	d.DrawVertexPrimitiveList(verts, indices, VertexStandard, TriangleFan)
}

// DrawVertexPrimitiveList draws verts assembled by ptype from indices. A
// nil index stream uses the vertices in order. Primitives referencing an
// out-of-range index are skipped.
func (d *Driver) DrawVertexPrimitiveList(verts []Vertex, indices Indices, vtype VertexType, ptype PrimitiveType) {
	if len(verts) == 0 {
		return
	}
	if ptype > Polygon {
		Logger().Warn("unsupported primitive type", slog.String("type", ptype.String()))
		return
	}
	d.prepare(vtype)
	d.cache.reset(verts, indices, ptype)
	d.stats.Submitted += d.cache.prims

	switch ptype {
	case Points:
		d.drawPoints()
	case Lines, LineStrip, LineLoop:
		d.drawLines()
	default:
		d.drawTriangles()
	}
}

// prepare resolves the material for one draw call and configures the
// shader.
func (d *Driver) prepare(vtype VertexType) {
	d.xf.update()
	d.state = d.material.resolve()
	d.shade = shadeState{mat: &d.material, ps: &d.state, vtype: vtype}

	d.format = vertex.Format{Colors: 1, TexCoords: MaxTextureStages}
	if d.state.kind.Attribs().Has(raster.AttrTangent) {
		d.format.Tangents = 1
	}

	s := d.shader
	s.SetKind(d.state.kind)
	s.SetZCompareFunc(d.material.ZBuffer)
	s.SetZWrite(d.material.ZWriteEnable)
	switch d.material.Type {
	case TransparentAlphaChannelRef:
		ref := d.material.MaterialTypeParam
		if ref <= 0 {
			ref = 0.5
		}
		s.SetAlphaRef(ref)
	case OneTextureBlend:
		s.SetParam(d.material.MaterialTypeParam)
	}
	for i := range MaxTextureStages {
		s.SetTexture(i, nil)
	}
}

// slots resolves primitive i through the cache. It reports false if an
// index is invalid.
func (d *Driver) slots(i int, out *[3]*cacheSlot) (int, bool) {
	return d.cache.get(i, out)
}

func (d *Driver) light(s *cacheSlot) {
	if !s.lit {
		d.xf.shade(s, &d.cache.verts[s.index], &d.shade)
	}
}

// screen returns the projected copy of a slot.
func (d *Driver) screen(s *cacheSlot) *vertex.Vertex {
	if !s.pair.Projected {
		vertex.Project(&s.pair.Screen, &s.pair.Clip, d.viewport, d.format, d.opts.perspective)
		s.pair.Projected = true
	}
	return &s.pair.Screen
}

func (d *Driver) drawTriangles() {
	var f [3]*cacheSlot
	var poly [vertex.MaxClip]vertex.Vertex
	var in [3]vertex.Vertex

	for i := range d.cache.prims {
		if _, ok := d.slots(i, &f); !ok {
			continue
		}
		a, b, c := f[0], f[1], f[2]
		if a.pair.Code&b.pair.Code&c.pair.Code != 0 {
			d.stats.Rejected++
			continue
		}
		d.light(a)
		d.light(b)
		d.light(c)

		if a.pair.Code|b.pair.Code|c.pair.Code == vertex.ClipInside {
			d.triangle(d.screen(a), d.screen(b), d.screen(c), d.screen(a))
			continue
		}

		d.stats.Clipped++
		in[0], in[1], in[2] = a.pair.Clip, b.pair.Clip, c.pair.Clip
		out := d.clipper.ClipToFrustum(in[:], a.pair.Code|b.pair.Code|c.pair.Code, d.format)
		if len(out) < 3 {
			continue
		}
		n := len(out)
		for k := range n {
			vertex.Project(&poly[k], &out[k], d.viewport, d.format, d.opts.perspective)
		}
		if !d.facingOK(&poly[0], &poly[1], &poly[2]) {
			d.stats.Culled++
			continue
		}
		if k := d.shader.Kind(); k == shader.Wire || k == shader.Point {
			d.outline(poly[:n])
			continue
		}
		for k := 1; k+1 < n; k++ {
			d.rasterize(&poly[0], &poly[k], &poly[k+1], &poly[0])
		}
	}
}

// outline draws the boundary edges, or the corners, of a clipped polygon
// so that wireframes show no fan diagonals.
func (d *Driver) outline(poly []vertex.Vertex) {
	size := d.bindLevel0()
	var rv [vertex.MaxClip]raster.Vertex
	for k := range poly {
		d.deviceVertex(&rv[k], &poly[k], &poly[0], &size)
	}
	for k := range poly {
		if d.shader.Kind() == shader.Point {
			d.shader.DrawPoint(&rv[k])
			continue
		}
		d.shader.DrawLine(&rv[k], &rv[(k+1)%len(poly)])
	}
	d.stats.Drawn++
}

// triangle culls and draws an unclipped triangle. flat supplies the color
// when Gouraud shading is off.
func (d *Driver) triangle(a, b, c, flat *vertex.Vertex) {
	if !d.facingOK(a, b, c) {
		d.stats.Culled++
		return
	}
	d.rasterize(a, b, c, flat)
}

// facingOK applies face culling. Counter-clockwise on screen, a negative
// Facing, is front facing.
func (d *Driver) facingOK(a, b, c *vertex.Vertex) bool {
	f := vertex.Facing(a, b, c)
	back, front := d.material.BackfaceCulling, d.material.FrontfaceCulling
	switch d.cull {
	case cullBack:
		back, front = true, false
	case cullFront:
		back, front = false, true
	}
	switch {
	case f == 0:
		return false
	case f < 0:
		return !front
	default:
		return !back
	}
}

// rasterize selects mip levels, builds device vertices and hands the
// triangle to the shader.
func (d *Driver) rasterize(a, b, c, flat *vertex.Vertex) {
	var size [MaxTextureStages][2]float32
	for i := range d.state.stages {
		t := d.material.Textures[i]
		if t == nil {
			d.shader.SetTexture(i, nil)
			continue
		}
		level, bilinear := d.selectLevel(t, i, a, b, c)
		view, ok := t.view(level, bilinear)
		if !ok {
			d.shader.SetTexture(i, nil)
			continue
		}
		d.shader.SetTexture(i, &view)
		w, h := view.Size()
		size[i] = [2]float32{float32(w), float32(h)}
	}

	var ra, rb, rc raster.Vertex
	d.deviceVertex(&ra, a, flat, &size)
	d.deviceVertex(&rb, b, flat, &size)
	d.deviceVertex(&rc, c, flat, &size)
	d.shader.DrawTriangle(&ra, &rb, &rc)
	d.stats.Drawn++
}

// selectLevel picks the mip level of stage from the ratio of texel area
// to screen area. Magnified triangles sample bilinearly when the material
// allows it; minified ones sample the nearest texel of the chosen level.
func (d *Driver) selectLevel(t *Texture, stage int, a, b, c *vertex.Vertex) (int, bool) {
	w, h := t.Size()
	screen := float32(math.Abs(float64(vertex.Facing(a, b, c))))
	e1 := b.Tex[stage].Sub(a.Tex[stage])
	e2 := c.Tex[stage].Sub(a.Tex[stage])
	texel := float32(math.Abs(float64(e1.Cross(e2)))) * float32(w*h)
	if screen <= 0 || texel <= screen {
		return 0, d.material.BilinearFilter
	}
	lod := int(math.Floor(0.5 * math.Log2(float64(texel/screen))))
	return min(max(lod, 0), t.MipLevels()-1), false
}

// deviceVertex converts a projected vertex into rasterizer interpolants.
// Texture coordinates are scaled to texels and divided by w under
// perspective correction.
func (d *Driver) deviceVertex(dst *raster.Vertex, v, flat *vertex.Vertex, size *[MaxTextureStages][2]float32) {
	dst.X, dst.Y = v.Pos.X, v.Pos.Y
	iw := v.Pos.W
	dst.A[raster.IW] = iw

	col := v.Color[0]
	if !d.material.GouraudShading {
		col = flat.Color[0]
		if d.opts.perspective {
			col = col.Mul(iw / flat.Pos.W)
		}
	}
	dst.A[raster.ColR] = col.X
	dst.A[raster.ColG] = col.Y
	dst.A[raster.ColB] = col.Z
	dst.A[raster.ColA] = col.W

	tw := float32(1)
	if d.opts.perspective {
		tw = iw
	}
	dst.A[raster.Tex0U] = v.Tex[0].X * size[0][0] * tw
	dst.A[raster.Tex0V] = v.Tex[0].Y * size[0][1] * tw
	dst.A[raster.Tex1U] = v.Tex[1].X * size[1][0] * tw
	dst.A[raster.Tex1V] = v.Tex[1].Y * size[1][1] * tw

	tan := v.Tangent[0]
	dst.A[raster.TanX] = tan.X
	dst.A[raster.TanY] = tan.Y
	dst.A[raster.TanZ] = tan.Z
}

// drawLines draws line primitives with the wire shader.
func (d *Driver) drawLines() {
	restore := d.withKind(shader.Wire)
	defer restore()

	var f [3]*cacheSlot
	for i := range d.cache.prims {
		if _, ok := d.slots(i, &f); !ok {
			continue
		}
		a, b := f[0], f[1]
		if a.pair.Code&b.pair.Code != 0 {
			d.stats.Rejected++
			continue
		}
		d.light(a)
		d.light(b)

		var pa, pb *vertex.Vertex
		var sa, sb vertex.Vertex
		if a.pair.Code|b.pair.Code == vertex.ClipInside {
			pa, pb = d.screen(a), d.screen(b)
		} else {
			d.stats.Clipped++
			ca, cb, ok := vertex.ClipLineToFrustum(&a.pair.Clip, &b.pair.Clip, d.format)
			if !ok {
				continue
			}
			vertex.Project(&sa, &ca, d.viewport, d.format, d.opts.perspective)
			vertex.Project(&sb, &cb, d.viewport, d.format, d.opts.perspective)
			pa, pb = &sa, &sb
		}

		size := d.bindLevel0()
		var ra, rb raster.Vertex
		d.deviceVertex(&ra, pa, pa, &size)
		d.deviceVertex(&rb, pb, pa, &size)
		d.shader.DrawLine(&ra, &rb)
		d.stats.Drawn++
	}
}

func (d *Driver) drawPoints() {
	restore := d.withKind(shader.Point)
	defer restore()

	var f [3]*cacheSlot
	for i := range d.cache.prims {
		if _, ok := d.slots(i, &f); !ok {
			continue
		}
		a := f[0]
		if a.pair.Code != vertex.ClipInside {
			d.stats.Rejected++
			continue
		}
		d.light(a)
		size := d.bindLevel0()
		p := d.screen(a)
		var ra raster.Vertex
		d.deviceVertex(&ra, p, p, &size)
		d.shader.DrawPoint(&ra)
		d.stats.Drawn++
	}
}

// bindLevel0 binds the full-size level of texture 0 for line and point
// drawing and returns the stage sizes.
func (d *Driver) bindLevel0() [MaxTextureStages][2]float32 {
	var size [MaxTextureStages][2]float32
	t := d.material.Textures[0]
	if t == nil {
		return size
	}
	view, ok := t.view(0, false)
	if !ok {
		return size
	}
	d.shader.SetTexture(0, &view)
	w, h := view.Size()
	size[0] = [2]float32{float32(w), float32(h)}
	return size
}

// withKind switches the shader kind for the duration of a draw.
func (d *Driver) withKind(k shader.Kind) func() {
	prev := d.shader.Kind()
	d.shader.SetKind(k)
	return func() { d.shader.SetKind(prev) }
}
