// Package fixed provides the Q22.10 fixed-point arithmetic used by the pixel
// shaders for color combine and texel addressing.
//
// The fractional precision is a build-time constant: every span filler
// hard-codes the same Pre so that conversions and multiplies compile down to
// shifts.
//
// Type Reference:
//   - Point: 22.10 fixed-point (10 fractional bits)
//   - color channels: [0, ColorMaxFix], i.e. 0..255 in the integer part
package fixed

// Point is a Q22.10 fixed-point number.
type Point = int32

const (
	// Pre is the number of fractional bits.
	Pre = 10

	// One is 1.0 in fixed-point representation.
	One Point = 1 << Pre

	// Half is 0.5 in fixed-point representation.
	Half Point = 1 << (Pre - 1)

	// FractMask extracts the fractional part.
	FractMask Point = One - 1

	// ColorMax is the largest 8-bit channel value.
	ColorMax = 0xFF

	// ColorMaxFix is ColorMax in fixed-point representation.
	ColorMaxFix Point = ColorMax << Pre

	// ColorMul scales a normalized float channel [0,1] to [0, ColorMaxFix].
	ColorMul = float32(ColorMaxFix)

	// OneF is One as a float scale factor for ToFix.
	OneF = float32(One)
)

// ToFix converts a float to fixed point using the given scale.
//
// The conversion truncates toward zero; it is not round-to-nearest. Texel
// addressing compensates with a half-texel bias where it matters.
func ToFix(f, scale float32) Point {
	return Point(f * scale)
}

// FromInt converts an integer to fixed point.
func FromInt(n int32) Point {
	return n << Pre
}

// Floor returns the integer part of p.
func Floor(p Point) int32 {
	return p >> Pre
}

// Ceil returns the ceiling of p.
func Ceil(p Point) int32 {
	return (p + FractMask) >> Pre
}

// Mul multiplies two fixed-point values.
// Operands must stay below 2^15 in magnitude to avoid overflow; use the
// MulTex family for color channels.
func Mul(x, y Point) Point {
	return (x * y) >> Pre
}

// MulTex1 modulates two color channels in [0, ColorMaxFix], treating
// ColorMaxFix as (almost) 1.0: the result is x*y / 2^(Pre+8).
//
// Each operand loses its two lowest fractional bits so the product fits an
// unsigned 32-bit word without a 64-bit intermediate.
func MulTex1(x, y Point) Point {
	return Point((uint32(x>>2) * uint32(y>>2)) >> (Pre + 4))
}

// MulVertex modulates a texel channel x by an interpolated vertex color
// channel y, both in [0, ColorMaxFix]. A y of ColorMaxFix is exactly 1.0,
// so white vertices leave the texel unchanged. The fractional bits of x
// are dropped.
func MulVertex(x, y Point) Point {
	k := uint32(Saturate(y)) >> 2
	k += k >> 7
	return ClampMaxColor(Point((uint32(x>>Pre)*k)>>16) << Pre)
}

// MulTex2 is MulTex1 scaled by 2, used for the x2 light-map modulate.
// The result may exceed ColorMaxFix and must be clamped.
func MulTex2(x, y Point) Point {
	return Point((uint32(x>>2) * uint32(y>>2)) >> (Pre + 3))
}

// MulTex4 is MulTex1 scaled by 4, used for the x4 light-map modulate.
// The result may exceed ColorMaxFix and must be clamped.
func MulTex4(x, y Point) Point {
	return Point((uint32(x>>2) * uint32(y>>2)) >> (Pre + 2))
}

// MulColor multiplies a color channel by a factor in [0, One].
func MulColor(c, f Point) Point {
	return Point((uint32(c) * uint32(f)) >> Pre)
}

// ClampMinColor clamps a channel to >= 0 without branching.
func ClampMinColor(a Point) Point {
	return a &^ (a >> 31)
}

// ClampMaxColor clamps a channel to <= ColorMaxFix without branching.
func ClampMaxColor(a Point) Point {
	d := ColorMaxFix - a
	return a + (d & (d >> 31))
}

// Saturate clamps a channel to [0, ColorMaxFix] without branching.
func Saturate(a Point) Point {
	return ClampMaxColor(ClampMinColor(a))
}

// FixToColor packs four channels in [0, ColorMaxFix] into an A8R8G8B8 word.
func FixToColor(a, r, g, b Point) uint32 {
	return uint32(a&ColorMaxFix)<<(24-Pre) |
		uint32(r&ColorMaxFix)<<(16-Pre) |
		uint32(g&ColorMaxFix)>>(Pre-8) |
		uint32(b&ColorMaxFix)>>Pre
}

// FixRGBToColor packs three channels with an opaque alpha.
func FixRGBToColor(r, g, b Point) uint32 {
	return 0xFF000000 | FixToColor(0, r, g, b)
}

// ColorToFix unpacks an A8R8G8B8 word into four fixed-point channels.
func ColorToFix(c uint32) (a, r, g, b Point) {
	a = Point((c & 0xFF000000) >> (24 - Pre))
	r = Point((c & 0x00FF0000) >> (16 - Pre))
	g = Point((c & 0x0000FF00) << (Pre - 8))
	b = Point((c & 0x000000FF) << Pre)
	return a, r, g, b
}

// ColorToFixRGB unpacks the color channels of an A8R8G8B8 word.
func ColorToFixRGB(c uint32) (r, g, b Point) {
	_, r, g, b = ColorToFix(c)
	return r, g, b
}

// ColorToFixA unpacks the alpha channel of an A8R8G8B8 word as a fraction in
// [0, One]. 255 maps to One so a fully opaque texel keeps its color exactly.
func ColorToFixA(c uint32) Point {
	a := Point(c >> 24)
	return (a + (a >> 7)) << (Pre - 8)
}
