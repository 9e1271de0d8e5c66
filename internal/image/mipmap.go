package image

import "math/bits"

// MipmapChain holds pre-computed downscaled versions of a texture.
//
// Each level is half the size of the previous level in both dimensions,
// clamped to 1. Level 0 is the original full-resolution image. The chain
// continues until both dimensions reach 1 pixel.
type MipmapChain struct {
	levels []*ImageBuf // Level 0 = original size
}

// GenerateMipmaps creates a mipmap chain from the source image.
//
// Uses a box filter (2x2 average) to downsample each level. The source
// image becomes level 0 and is not copied.
//
// Returns nil if src is nil or empty.
func GenerateMipmaps(src *ImageBuf) *MipmapChain {
	if src == nil || src.IsEmpty() {
		return nil
	}

	maxDim := max(src.Width(), src.Height())
	numLevels := bits.Len(uint(maxDim))

	chain := &MipmapChain{levels: make([]*ImageBuf, numLevels)}
	chain.levels[0] = src
	for i := 1; i < numLevels; i++ {
		chain.levels[i] = downsample(chain.levels[i-1])
	}
	return chain
}

// Single wraps one image as a chain without mip levels.
func Single(src *ImageBuf) *MipmapChain {
	if src == nil {
		return nil
	}
	return &MipmapChain{levels: []*ImageBuf{src}}
}

// downsample creates a half-size version of src using a box filter.
func downsample(src *ImageBuf) *ImageBuf {
	srcW, srcH := src.Dimension()
	dstW := max(1, srcW/2)
	dstH := max(1, srcH/2)

	dst, err := NewImageBuf(dstW, dstH, src.Format())
	if err != nil {
		return nil
	}

	for dy := range dstH {
		sy0 := dy * 2
		sy1 := min(sy0+1, srcH-1)
		for dx := range dstW {
			sx0 := dx * 2
			sx1 := min(sx0+1, srcW-1)
			c := average4(
				src.Pixel32(sx0, sy0), src.Pixel32(sx1, sy0),
				src.Pixel32(sx0, sy1), src.Pixel32(sx1, sy1),
			)
			_ = dst.SetPixel32(dx, dy, c)
		}
	}
	return dst
}

// average4 averages four A8R8G8B8 words per channel.
func average4(c0, c1, c2, c3 uint32) uint32 {
	const rb = 0x00FF00FF
	lo := (c0 & rb) + (c1 & rb) + (c2 & rb) + (c3 & rb)
	hi := (c0>>8)&rb + (c1>>8)&rb + (c2>>8)&rb + (c3>>8)&rb
	return ((hi>>2)&rb)<<8 | (lo>>2)&rb
}

// Level returns the mipmap at the specified level.
// Level 0 is the original image. Returns nil if level is out of range.
func (m *MipmapChain) Level(n int) *ImageBuf {
	if m == nil || n < 0 || n >= len(m.levels) {
		return nil
	}
	return m.levels[n]
}

// NumLevels returns the total number of mipmap levels in the chain.
// Returns 0 if the chain is nil.
func (m *MipmapChain) NumLevels() int {
	if m == nil {
		return 0
	}
	return len(m.levels)
}

// Regenerate rebuilds levels 1..n from the current level 0.
func (m *MipmapChain) Regenerate() {
	if m == nil || len(m.levels) == 0 {
		return
	}
	for i := 1; i < len(m.levels); i++ {
		m.levels[i] = downsample(m.levels[i-1])
	}
}
