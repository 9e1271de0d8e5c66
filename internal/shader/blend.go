package shader

import (
	"sync"

	"github.com/gogpu/burning/internal/blend"
)

// blendFunc combines a source color with the target pixel.
type blendFunc func(src, dst uint32) uint32

// scale32 multiplies all channels of c by k/256.
func scale32(c, k uint32) uint32 {
	return blend.PixelMul32(c, k*0x01010101)
}

var blendTable = map[blend.Pair]blendFunc{
	{Src: blend.One, Dst: blend.Zero}: func(src, _ uint32) uint32 {
		return src
	},
	{Src: blend.DstColor, Dst: blend.Zero}: blend.PixelMul32,
	{Src: blend.Zero, Dst: blend.SrcColor}: blend.PixelMul32,
	{Src: blend.DstColor, Dst: blend.SrcColor}: func(src, dst uint32) uint32 {
		return blend.PixelMul32x2(dst, src)
	},
	{Src: blend.One, Dst: blend.One}: func(src, dst uint32) uint32 {
		return blend.PixelAdd32(dst, src)
	},
	{Src: blend.SrcAlpha, Dst: blend.OneMinusSrcAlpha}: func(src, dst uint32) uint32 {
		return blend.PixelBlend32(dst, src)
	},
	{Src: blend.One, Dst: blend.OneMinusSrcAlpha}: func(src, dst uint32) uint32 {
		return blend.PixelAdd32(scale32(dst, 255-src>>24), src)
	},
	{Src: blend.SrcAlpha, Dst: blend.One}: func(src, dst uint32) uint32 {
		return blend.PixelAdd32(dst, scale32(src, src>>24))
	},
	{Src: blend.DstColor, Dst: blend.One}: func(src, dst uint32) uint32 {
		return blend.PixelAdd32(dst, blend.PixelMul32(src, dst))
	},
	{Src: blend.DstColor, Dst: blend.SrcAlpha}: func(src, dst uint32) uint32 {
		return blend.PixelAdd32(blend.PixelMul32(src, dst), scale32(dst, src>>24))
	},
	{Src: blend.Zero, Dst: blend.OneMinusSrcColor}: func(src, dst uint32) uint32 {
		return blend.PixelMul32(dst, ^src)
	},
	{Src: blend.OneMinusDstAlpha, Dst: blend.One}: func(src, dst uint32) uint32 {
		return blend.PixelAdd32(dst, scale32(src, 255-dst>>24))
	},
}

// fallbackPair is substituted for unsupported factor combinations.
var fallbackPair = blend.Pair{Src: blend.DstColor, Dst: blend.Zero}

var (
	reportedMu sync.Mutex
	reported   = map[blend.Pair]bool{}
)

// reportUnsupported logs p once per process.
func reportUnsupported(p blend.Pair) {
	reportedMu.Lock()
	seen := reported[p]
	reported[p] = true
	reportedMu.Unlock()
	if !seen {
		slogger().Warn("shader: unsupported blend factors, using modulate",
			"pair", p.String(), "fallback", fallbackPair.String(),
			"known_factors", p.Src.Valid() && p.Dst.Valid())
	}
}

// SetBlend selects the TextureBlend routine for a factor pair. Unsupported
// pairs draw with DstColor/Zero and are reported once.
func (s *Shader) SetBlend(p blend.Pair) {
	fn, ok := blendTable[p]
	if !ok {
		reportUnsupported(p)
		p, fn = fallbackPair, blendTable[fallbackPair]
	}
	s.blendPair = p
	s.blendFn = fn
}

// SetParam is SetBlend for a pair packed with blend.Pair.Pack.
func (s *Shader) SetParam(param float32) {
	s.SetBlend(blend.UnpackPair(param))
}

// Blend returns the active factor pair after any fallback.
func (s *Shader) Blend() blend.Pair { return s.blendPair }
