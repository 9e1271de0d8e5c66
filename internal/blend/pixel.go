package blend

// 32-bit words are A8R8G8B8 (alpha in the top byte). 16-bit words are
// A1R5G5B5 unless a function name says R5G6B5.
//
// Most operators work SIMD-in-a-register: the red and blue channels are
// processed together as one word with an empty byte between them, green
// (and alpha) separately, so a blend costs two multiplies instead of four.

const (
	maskRB32 = 0x00FF00FF
	maskXG32 = 0x0000FF00
	maskRB16 = 0x7C1F
	maskXG16 = 0x03E0
)

// PixelBlend32Alpha blends src over dst with an explicit alpha in [0, 256]:
// dst + (src - dst) * alpha / 256, per color channel. The returned alpha
// channel is zero.
func PixelBlend32Alpha(dst, src, alpha uint32) uint32 {
	srcRB := src & maskRB32
	srcXG := src & maskXG32
	dstRB := dst & maskRB32
	dstXG := dst & maskXG32

	rb := srcRB - dstRB
	xg := srcXG - dstXG

	rb *= alpha
	xg *= alpha
	rb >>= 8
	xg >>= 8

	rb += dstRB
	xg += dstXG

	return (rb & maskRB32) | (xg & maskXG32)
}

// PixelBlend32 blends src over dst using src's alpha channel.
//
// Alpha 0 returns dst and alpha 255 returns src without multiplying.
// Otherwise the 0..255 alpha is biased to 0..256 (+1 above 127) and the
// result carries src's alpha byte.
func PixelBlend32(dst, src uint32) uint32 {
	alpha := src & 0xFF000000
	if alpha == 0 {
		return dst
	}
	if alpha == 0xFF000000 {
		return src
	}
	alpha >>= 24
	alpha += alpha >> 7
	return (src & 0xFF000000) | PixelBlend32Alpha(dst, src, alpha)
}

// PixelLerp32 blends src over dst with an explicit alpha in [0, 256] and
// keeps dst's alpha byte.
func PixelLerp32(dst, src, alpha uint32) uint32 {
	return (dst & 0xFF000000) | PixelBlend32Alpha(dst, src, alpha)
}

// PixelBlend16Alpha blends two A1R5G5B5 words with an explicit alpha in
// [0, 32]. The alpha bit of the result is zero.
func PixelBlend16Alpha(dst, src uint16, alpha uint32) uint16 {
	srcRB := uint32(src) & maskRB16
	srcXG := uint32(src) & maskXG16
	dstRB := uint32(dst) & maskRB16
	dstXG := uint32(dst) & maskXG16

	rb := srcRB - dstRB
	xg := srcXG - dstXG

	rb *= alpha
	xg *= alpha
	rb >>= 5
	xg >>= 5

	rb += dstRB
	xg += dstXG

	return uint16((rb & maskRB16) | (xg & maskXG16))
}

// PixelBlend16 selects src over dst by src's 1-bit alpha, without branching.
func PixelBlend16(dst, src uint16) uint16 {
	mask := uint16(0) - (src >> 15)
	return (src & mask) | (dst &^ mask)
}

// PixelBlend16From32 blends an A8R8G8B8 color over an A1R5G5B5 destination
// using the color's alpha reduced to 5 bits.
func PixelBlend16From32(dst uint16, src uint32) uint16 {
	alpha := src >> 27
	if alpha == 0 {
		return dst
	}
	alpha += alpha >> 4
	return 0x8000 | PixelBlend16Alpha(dst, A8R8G8B8ToA1R5G5B5(src), alpha)
}

// PixelMul32 multiplies the four channels of two colors, treating 255 as
// (almost) 1.0: each channel is x*y >> 8.
func PixelMul32(c0, c1 uint32) uint32 {
	a := ((c0 >> 24) * (c1 >> 24)) >> 8
	r := (((c0 >> 16) & 0xFF) * ((c1 >> 16) & 0xFF)) >> 8
	g := (((c0 >> 8) & 0xFF) * ((c1 >> 8) & 0xFF)) >> 8
	b := ((c0 & 0xFF) * (c1 & 0xFF)) >> 8
	return a<<24 | r<<16 | g<<8 | b
}

// PixelMul32x2 multiplies the color channels of two colors, doubles the
// result and saturates. The alpha channel is taken from c0.
func PixelMul32x2(c0, c1 uint32) uint32 {
	r := min((((c0>>16)&0xFF)*((c1>>16)&0xFF))>>7, 0xFF)
	g := min((((c0>>8)&0xFF)*((c1>>8)&0xFF))>>7, 0xFF)
	b := min(((c0&0xFF)*(c1&0xFF))>>7, 0xFF)
	return (c0 & 0xFF000000) | r<<16 | g<<8 | b
}

// PixelAdd32 adds the color channels of two colors with per-channel
// saturation and keeps dst's alpha byte.
//
// The carry out of each channel is isolated by removing the per-channel low
// bit parity from the packed sum; each carry is then smeared into a 0xFF
// clamp for its own channel.
func PixelAdd32(dst, src uint32) uint32 {
	sum := (dst & 0x00FFFFFF) + (src & 0x00FFFFFF)
	lowBits := (dst ^ src) & 0x00010101
	carries := (sum - lowBits) & 0x01010100
	modulo := sum - carries
	clamp := carries - (carries >> 8)
	return (dst & 0xFF000000) | modulo | clamp
}

// A8R8G8B8ToA1R5G5B5 reduces a 32-bit color to 16 bits. Alpha >= 128 sets
// the 1-bit alpha.
func A8R8G8B8ToA1R5G5B5(c uint32) uint16 {
	return uint16((c&0x80000000)>>16 |
		(c&0x00F80000)>>9 |
		(c&0x0000F800)>>6 |
		(c&0x000000F8)>>3)
}

// A8R8G8B8ToR5G6B5 reduces a 32-bit color to R5G6B5.
func A8R8G8B8ToR5G6B5(c uint32) uint16 {
	return uint16((c&0x00F80000)>>8 |
		(c&0x0000FC00)>>5 |
		(c&0x000000F8)>>3)
}

// A1R5G5B5ToA8R8G8B8 expands a 16-bit color to 32 bits, replicating the top
// bits of each channel into the low bits so white stays white.
func A1R5G5B5ToA8R8G8B8(c uint16) uint32 {
	v := uint32(c)
	r := (v >> 10) & 0x1F
	g := (v >> 5) & 0x1F
	b := v & 0x1F
	a := uint32(0)
	if v&0x8000 != 0 {
		a = 0xFF
	}
	return a<<24 | (r<<3|r>>2)<<16 | (g<<3|g>>2)<<8 | (b<<3 | b>>2)
}

// R5G6B5ToA8R8G8B8 expands an R5G6B5 color to an opaque 32-bit color.
func R5G6B5ToA8R8G8B8(c uint16) uint32 {
	v := uint32(c)
	r := (v >> 11) & 0x1F
	g := (v >> 5) & 0x3F
	b := v & 0x1F
	return 0xFF000000 | (r<<3|r>>2)<<16 | (g<<2|g>>4)<<8 | (b<<3 | b>>2)
}
