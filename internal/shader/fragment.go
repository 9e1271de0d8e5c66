package shader

import (
	"github.com/gogpu/burning/internal/blend"
	"github.com/gogpu/burning/internal/fixed"
	"github.com/gogpu/burning/internal/geom"
)

// vertexColor packs the interpolated vertex color.
func vertexColor(f *fragment) uint32 {
	return fixed.FixToColor(f.a, f.r, f.g, f.b)
}

// modulate multiplies the color channels of texel c by the vertex color.
// Alpha comes from the texel.
func modulate(c uint32, f *fragment) uint32 {
	a, r, g, b := fixed.ColorToFix(c)
	return fixed.FixToColor(a,
		fixed.MulVertex(r, f.r),
		fixed.MulVertex(g, f.g),
		fixed.MulVertex(b, f.b))
}

// combine2 applies mul channel-wise to two texels, saturating. Alpha comes
// from c0.
func combine2(c0, c1 uint32, mul func(x, y fixed.Point) fixed.Point) uint32 {
	a, r0, g0, b0 := fixed.ColorToFix(c0)
	r1, g1, b1 := fixed.ColorToFixRGB(c1)
	return fixed.FixToColor(a,
		fixed.ClampMaxColor(mul(r0, r1)),
		fixed.ClampMaxColor(mul(g0, g1)),
		fixed.ClampMaxColor(mul(b0, b1)))
}

// alpha256 maps an alpha channel in [0, ColorMaxFix] to 0..256.
func alpha256(a fixed.Point) uint32 {
	v := uint32(a >> fixed.Pre)
	return v + v>>7
}

func fragGouraud(_ *Shader, f *fragment) (uint32, bool) {
	return vertexColor(f), true
}

func fragGouraudAlpha(_ *Shader, f *fragment) (uint32, bool) {
	return blend.PixelBlend32(f.dst, vertexColor(f)), true
}

func fragTextureFlat(s *Shader, f *fragment) (uint32, bool) {
	return s.sample0(f), true
}

func fragTextureGouraud(s *Shader, f *fragment) (uint32, bool) {
	return modulate(s.sample0(f), f), true
}

func fragTextureGouraudAdd(s *Shader, f *fragment) (uint32, bool) {
	return blend.PixelAdd32(f.dst, modulate(s.sample0(f), f)), true
}

func fragTextureGouraudAlpha(s *Shader, f *fragment) (uint32, bool) {
	return blend.PixelBlend32(f.dst, modulate(s.sample0(f), f)), true
}

// fragTextureGouraudAlphaRef discards texels below the alpha reference.
// Survivors are written opaque.
func fragTextureGouraudAlphaRef(s *Shader, f *fragment) (uint32, bool) {
	c := s.sample0(f)
	if fixed.Point(c>>24)<<fixed.Pre < s.alphaRef {
		return 0, false
	}
	return modulate(c, f) | 0xFF000000, true
}

// fragTextureVertexAlpha blends the texel over the target by the vertex
// alpha. The target keeps its alpha.
func fragTextureVertexAlpha(s *Shader, f *fragment) (uint32, bool) {
	c := modulate(s.sample0(f), f)
	return blend.PixelBlend32Alpha(f.dst, c, alpha256(f.a)) | f.dst&0xFF000000, true
}

func fragLightMapM1(s *Shader, f *fragment) (uint32, bool) {
	return combine2(s.sample0(f), s.sample1(f), fixed.MulTex1), true
}

func fragLightMapM2(s *Shader, f *fragment) (uint32, bool) {
	return combine2(s.sample0(f), s.sample1(f), fixed.MulTex2), true
}

func fragLightMapM4(s *Shader, f *fragment) (uint32, bool) {
	return combine2(s.sample0(f), s.sample1(f), fixed.MulTex4), true
}

func fragLightMapAdd(s *Shader, f *fragment) (uint32, bool) {
	return blend.PixelAdd32(s.sample0(f), s.sample1(f)), true
}

// litLightMap adds the vertex lighting to the light-map texel.
func litLightMap(s *Shader, f *fragment) uint32 {
	r, g, b := fixed.ColorToFixRGB(s.sample1(f))
	return fixed.FixRGBToColor(
		fixed.ClampMaxColor(r+f.r),
		fixed.ClampMaxColor(g+f.g),
		fixed.ClampMaxColor(b+f.b))
}

func fragLightMapGouraudM2(s *Shader, f *fragment) (uint32, bool) {
	return combine2(s.sample0(f), litLightMap(s, f), fixed.MulTex2), true
}

func fragLightMapGouraudM4(s *Shader, f *fragment) (uint32, bool) {
	return combine2(s.sample0(f), litLightMap(s, f), fixed.MulTex4), true
}

// fragDetailMap adds the signed detail texel (128 is neutral) to the base.
func fragDetailMap(s *Shader, f *fragment) (uint32, bool) {
	const bias = 128 << fixed.Pre
	return combine2(s.sample0(f), s.sample1(f), func(x, y fixed.Point) fixed.Point {
		return fixed.ClampMinColor(x + y - bias)
	}), true
}

// fragNormalMap lights the base texel with N.L, where N is decoded from
// the stage 1 texel and L is the interpolated tangent-space light vector.
func fragNormalMap(s *Shader, f *fragment) (uint32, bool) {
	c := s.sample0(f)
	n := s.sample1(f)
	nx := float32((n>>16)&0xFF)*(2.0/255) - 1
	ny := float32((n>>8)&0xFF)*(2.0/255) - 1
	nz := float32(n&0xFF)*(2.0/255) - 1

	ndotl := geom.V3(nx, ny, nz).Dot(f.tan.Normalize())
	ndotl = min(max(ndotl, 0), 1)
	k := fixed.ToFix(ndotl, fixed.OneF)

	a, r, g, b := fixed.ColorToFix(c)
	return fixed.FixToColor(a,
		fixed.MulTex1(r, fixed.MulColor(f.r, k)),
		fixed.MulTex1(g, fixed.MulColor(f.g, k)),
		fixed.MulTex1(b, fixed.MulColor(f.b, k))), true
}

// fragTextureBlend combines the modulated texel with the target through
// the blend-factor routine selected by SetBlend.
func fragTextureBlend(s *Shader, f *fragment) (uint32, bool) {
	return s.blendFn(modulate(s.sample0(f), f), f.dst), true
}
