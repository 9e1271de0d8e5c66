// Package shader implements the span fillers of the software rasterizer.
//
// A Shader is bound to a render target, a depth buffer, an optional stencil
// buffer and up to two texture stages. DrawTriangle scan-converts a
// device-space triangle and runs the selected Kind's per-pixel combine on
// every covered pixel, in a fixed order: depth test, texel fetch, color
// combine, depth write, color write.
package shader

import (
	"encoding/binary"
	stdimage "image"

	"github.com/gogpu/burning/internal/blend"
	"github.com/gogpu/burning/internal/depth"
	"github.com/gogpu/burning/internal/fixed"
	"github.com/gogpu/burning/internal/geom"
	"github.com/gogpu/burning/internal/image"
	"github.com/gogpu/burning/internal/raster"
)

// StencilOp is the stencil update of the shadow-volume kind.
type StencilOp uint8

const (
	StencilIncrement StencilOp = iota
	StencilDecrement
)

// fragment is the per-pixel input of a combine function.
type fragment struct {
	dst        uint32      // current target pixel, A8R8G8B8
	a, r, g, b fixed.Point // vertex color in [0, ColorMaxFix]
	t0u, t0v   fixed.Point // stage 0 texel coordinates
	t1u, t1v   fixed.Point // stage 1 texel coordinates
	tan        geom.Vec3
}

// fragFunc combines one pixel. ok=false discards the pixel: neither depth
// nor color is written.
type fragFunc func(s *Shader, f *fragment) (c uint32, ok bool)

// Shader is the configurable span-filler state. It is not safe for
// concurrent use.
type Shader struct {
	kind Kind
	info *kindInfo

	target  *image.ImageBuf
	zbuf    *depth.Buffer
	stencil *depth.StencilBuffer
	rast    *raster.Rasterizer

	tex   [2]TextureView
	bound [2]bool

	zCompare    CompareFunc
	zWrite      bool
	perspective bool
	alphaRef    fixed.Point

	blendPair blend.Pair
	blendFn   blendFunc

	stencilOp     StencilOp
	stencilOnFail bool
}

// New returns a shader with LessEqual depth testing, depth writes and
// perspective correction enabled, set to Gouraud.
func New() *Shader {
	s := &Shader{
		rast:        raster.NewRasterizer(0, 0),
		zCompare:    CompareLessEqual,
		zWrite:      true,
		perspective: true,
		alphaRef:    fixed.ColorMaxFix / 2,
	}
	s.SetKind(Gouraud)
	s.SetBlend(blend.Pair{Src: blend.DstColor, Dst: blend.Zero})
	return s
}

// SetKind selects the combine operation for subsequent triangles.
func (s *Shader) SetKind(k Kind) {
	if k >= kindCount {
		k = Gouraud
	}
	s.kind = k
	s.info = &kinds[k]
}

// Kind returns the selected combine operation.
func (s *Shader) Kind() Kind { return s.kind }

// SetRenderTarget binds the color buffer and resets the clip rectangle to
// cover it.
func (s *Shader) SetRenderTarget(img *image.ImageBuf) {
	s.target = img
	if img != nil {
		s.rast.SetClip(img.Bounds())
	} else {
		s.rast.SetClip(stdimage.Rectangle{})
	}
}

// SetClip restricts drawing to r intersected with the render target.
func (s *Shader) SetClip(r stdimage.Rectangle) {
	if s.target != nil {
		r = r.Intersect(s.target.Bounds())
	}
	s.rast.SetClip(r)
}

// Clip returns the current clip rectangle.
func (s *Shader) Clip() stdimage.Rectangle { return s.rast.Clip() }

// SetDepthBuffer binds the w-buffer. It must match the render target size.
func (s *Shader) SetDepthBuffer(b *depth.Buffer) { s.zbuf = b }

// SetStencilBuffer binds the stencil buffer used by the shadow kind.
func (s *Shader) SetStencilBuffer(b *depth.StencilBuffer) { s.stencil = b }

// SetZCompareFunc sets the depth comparison.
func (s *Shader) SetZCompareFunc(c CompareFunc) { s.zCompare = c }

// SetZWrite enables or disables depth writes.
func (s *Shader) SetZWrite(on bool) { s.zWrite = on }

// SetPerspective tells the shader whether colors, tangents and texture
// coordinates arrive divided by w.
func (s *Shader) SetPerspective(on bool) { s.perspective = on }

// SetAlphaRef sets the alpha-test threshold in [0, 1] for
// TextureGouraudAlphaRef.
func (s *Shader) SetAlphaRef(ref float32) {
	s.alphaRef = fixed.Saturate(fixed.ToFix(ref, fixed.ColorMul))
}

// SetStencilOp sets how StencilShadow updates the stencil. With onZFail
// the counter changes where the depth test fails, otherwise where it
// passes.
func (s *Shader) SetStencilOp(op StencilOp, onZFail bool) {
	s.stencilOp = op
	s.stencilOnFail = onZFail
}

// SetTexture binds a texture stage for the next triangle. A nil view
// unbinds the stage; unbound stages sample as opaque white.
func (s *Shader) SetTexture(stage int, view *TextureView) {
	if stage < 0 || stage >= len(s.tex) {
		return
	}
	if view == nil {
		s.bound[stage] = false
		return
	}
	s.tex[stage] = *view
	s.bound[stage] = true
}

// Texture returns the view bound to stage, or nil.
func (s *Shader) Texture(stage int) *TextureView {
	if stage < 0 || stage >= len(s.tex) || !s.bound[stage] {
		return nil
	}
	return &s.tex[stage]
}

// sample0 and sample1 fetch from a stage, or white if unbound.
func (s *Shader) sample0(f *fragment) uint32 {
	if !s.bound[0] {
		return 0xFFFFFFFF
	}
	return s.tex[0].Sample(f.t0u, f.t0v)
}

func (s *Shader) sample1(f *fragment) uint32 {
	if !s.bound[1] {
		return 0xFFFFFFFF
	}
	return s.tex[1].Sample(f.t1u, f.t1v)
}

// ready reports whether a draw can touch the buffers it needs.
func (s *Shader) ready() bool {
	if s.target == nil || s.target.IsEmpty() {
		return false
	}
	if s.info.noZ {
		return true
	}
	if s.zbuf == nil {
		return false
	}
	w, h := s.zbuf.Size()
	return w == s.target.Width() && h == s.target.Height()
}

// DrawTriangle rasterizes a device-space triangle with the selected kind.
// Wire draws the three edges and Point the three vertices.
func (s *Shader) DrawTriangle(a, b, c *raster.Vertex) {
	switch s.kind {
	case Wire:
		s.DrawLine(a, b)
		s.DrawLine(b, c)
		s.DrawLine(c, a)
		return
	case Point:
		s.DrawPoint(a)
		s.DrawPoint(b)
		s.DrawPoint(c)
		return
	case StencilShadow:
		if s.stencil == nil || s.zbuf == nil || !s.ready() {
			return
		}
		s.rast.ScanConvert(a, b, c, s.info.attribs, s.stencilSpan)
		return
	}
	if !s.ready() {
		return
	}
	s.rast.ScanConvert(a, b, c, s.info.attribs, s.fillSpan)
}

// loadPixel and storePixel read and write the target in A8R8G8B8.
func loadPixel(f image.Format, p []byte) uint32 {
	if f == image.FormatA8R8G8B8 {
		return binary.LittleEndian.Uint32(p)
	}
	return image.DecodeARGB(f, p)
}

func storePixel(f image.Format, p []byte, c uint32) {
	if f == image.FormatA8R8G8B8 {
		binary.LittleEndian.PutUint32(p, c)
		return
	}
	image.EncodeARGB(f, p, c)
}

// setup converts the interpolants at one pixel into a fragment.
func (s *Shader) setup(a *[raster.Count]float32, f *fragment) {
	mask := s.info.attribs
	w := float32(1)
	if s.perspective && a[raster.IW] != 0 {
		w = 1 / a[raster.IW]
	}
	if mask.Has(raster.AttrColor) {
		cw := w * fixed.ColorMul
		f.r = fixed.Saturate(fixed.ToFix(a[raster.ColR], cw))
		f.g = fixed.Saturate(fixed.ToFix(a[raster.ColG], cw))
		f.b = fixed.Saturate(fixed.ToFix(a[raster.ColB], cw))
		f.a = fixed.Saturate(fixed.ToFix(a[raster.ColA], cw))
	}
	if mask.Has(raster.AttrTex0) {
		tw := w * fixed.OneF
		f.t0u = fixed.ToFix(a[raster.Tex0U], tw)
		f.t0v = fixed.ToFix(a[raster.Tex0V], tw)
	}
	if mask.Has(raster.AttrTex1) {
		tw := w * fixed.OneF
		f.t1u = fixed.ToFix(a[raster.Tex1U], tw)
		f.t1v = fixed.ToFix(a[raster.Tex1V], tw)
	}
	if mask.Has(raster.AttrTangent) {
		f.tan = geom.V3(a[raster.TanX]*w, a[raster.TanY]*w, a[raster.TanZ]*w)
	}
}

// step advances the interpolants by one pixel.
func step(a, d *[raster.Count]float32, mask raster.Attribs) {
	for i := range raster.Count {
		if mask&(1<<i) != 0 {
			a[i] += d[i]
		}
	}
}

// fillSpan is the common per-pixel loop of the triangle kinds.
func (s *Shader) fillSpan(sp *raster.Span) {
	format := s.target.Format()
	bpp := format.BytesPerPixel()
	pixels := s.target.Lock()
	defer s.target.Unlock()

	row := pixels[sp.Y*s.target.Pitch():]
	testZ := !s.info.noZ && s.zCompare != CompareAlways
	writeZ := !s.info.noZ && s.zWrite

	var z []float32
	if !s.info.noZ {
		z = s.zbuf.Lock()[sp.Y*s.zbuf.Pitch():]
		defer s.zbuf.Unlock()
	}

	mask := s.info.attribs
	frag := s.info.frag
	a := sp.A
	var f fragment
	for x := sp.X0; x < sp.X1; x++ {
		iw := a[raster.IW]
		if testZ && !depthPass(s.zCompare, iw, z[x]) {
			step(&a, &sp.D, mask)
			continue
		}

		s.setup(&a, &f)
		p := row[x*bpp:]
		f.dst = loadPixel(format, p)
		c, ok := frag(s, &f)
		if ok {
			if writeZ {
				z[x] = iw
			}
			storePixel(format, p, c)
		}
		step(&a, &sp.D, mask)
	}
}
