package shader

import (
	"encoding/binary"
	"math/bits"

	"github.com/gogpu/burning/internal/fixed"
	"github.com/gogpu/burning/internal/image"
)

// TextureView is the read-only window a shader samples one texture stage
// through: one mip level of an A8R8G8B8 power-of-two image. Coordinates
// wrap with bit masks.
type TextureView struct {
	data      []byte
	pitchLog2 uint
	width     int32
	height    int32
	maskU     fixed.Point // (width << Pre) - 1
	maskV     fixed.Point // (height << Pre) - 1

	// Level is the selected mip level.
	Level int

	// Bilinear selects filtered sampling. Set on magnification.
	Bilinear bool
}

// NewTextureView binds level of img. It reports false unless img is
// A8R8G8B8 with power-of-two sides and a power-of-two pitch.
func NewTextureView(img *image.ImageBuf, level int, bilinear bool) (TextureView, bool) {
	if img == nil || img.Format() != image.FormatA8R8G8B8 {
		return TextureView{}, false
	}
	w, h := img.Dimension()
	p := img.Pitch()
	if !image.IsPowerOfTwo(w) || !image.IsPowerOfTwo(h) || !image.IsPowerOfTwo(p) {
		return TextureView{}, false
	}
	return TextureView{
		data:      img.Data(),
		pitchLog2: uint(bits.TrailingZeros(uint(p))),
		width:     int32(w),
		height:    int32(h),
		maskU:     fixed.FromInt(int32(w)) - 1,
		maskV:     fixed.FromInt(int32(h)) - 1,
		Level:     level,
		Bilinear:  bilinear,
	}, true
}

// Size returns the level dimensions in texels.
func (t *TextureView) Size() (int, int) { return int(t.width), int(t.height) }

// texel fetches the texel at integer coordinates already wrapped.
func (t *TextureView) texel(x, y int32) uint32 {
	off := uint32(y)<<t.pitchLog2 | uint32(x)<<2
	return binary.LittleEndian.Uint32(t.data[off:])
}

// SamplePoint returns the texel containing fixed-point texel coordinates
// tx, ty, wrapping in both directions.
func (t *TextureView) SamplePoint(tx, ty fixed.Point) uint32 {
	x := (tx & t.maskU) >> fixed.Pre
	y := (ty & t.maskV) >> fixed.Pre
	return t.texel(x, y)
}

// SampleBilinear filters the four texels around tx, ty. Texel centers sit
// at half-integer coordinates.
func (t *TextureView) SampleBilinear(tx, ty fixed.Point) uint32 {
	tx -= fixed.Half
	ty -= fixed.Half

	fx := uint32(tx&fixed.FractMask) >> (fixed.Pre - 8)
	fy := uint32(ty&fixed.FractMask) >> (fixed.Pre - 8)

	wm := t.width - 1
	hm := t.height - 1
	x0 := (tx >> fixed.Pre) & wm
	y0 := (ty >> fixed.Pre) & hm
	x1 := (x0 + 1) & wm
	y1 := (y0 + 1) & hm

	top := lerpARGB(t.texel(x0, y0), t.texel(x1, y0), fx)
	bot := lerpARGB(t.texel(x0, y1), t.texel(x1, y1), fx)
	return lerpARGB(top, bot, fy)
}

// Sample uses the filter selected for this view.
func (t *TextureView) Sample(tx, ty fixed.Point) uint32 {
	if t.Bilinear {
		return t.SampleBilinear(tx, ty)
	}
	return t.SamplePoint(tx, ty)
}

// lerpARGB mixes c0 and c1 by f/256 in all four channels.
func lerpARGB(c0, c1, f uint32) uint32 {
	if f == 0 || c0 == c1 {
		return c0
	}
	const mask = 0x00FF00FF
	rb0, rb1 := c0&mask, c1&mask
	ag0, ag1 := (c0>>8)&mask, (c1>>8)&mask

	rb := (rb0 + ((rb1-rb0)*f)>>8) & mask
	ag := (ag0 + ((ag1-ag0)*f)>>8) & mask
	return ag<<8 | rb
}
