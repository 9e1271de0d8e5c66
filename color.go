package burning

import (
	"image/color"

	"github.com/gogpu/burning/internal/image"
)

// ColorFormat is a pixel storage format.
type ColorFormat = image.Format

// Pixel formats.
const (
	FormatA1R5G5B5 = image.FormatA1R5G5B5
	FormatR5G6B5   = image.FormatR5G6B5
	FormatR8G8B8   = image.FormatR8G8B8
	FormatA8R8G8B8 = image.FormatA8R8G8B8
	FormatR8G8B8A8 = image.FormatR8G8B8A8
)

// ParseColorFormat returns the format named like its String form, for
// example "R5G6B5".
func ParseColorFormat(name string) (ColorFormat, bool) { return image.ParseFormat(name) }

// Color is a packed 32-bit A8R8G8B8 color.
type Color uint32

// ColorFromARGB packs four 8-bit channels.
func ColorFromARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// ColorF converts to floating-point channels in [0, 1].
func (c Color) ColorF() ColorF {
	return ColorF{
		R: float32(c.R()) / 255,
		G: float32(c.G()) / 255,
		B: float32(c.B()) / 255,
		A: float32(c.A()) / 255,
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return image.ARGBToNRGBA(uint32(c)).RGBA()
}

// FromColor converts any standard color.
func FromColor(c color.Color) Color {
	return Color(image.ColorToARGB(c))
}

// Hex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with an optional
// leading '#'. Malformed input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	r, g, b, a := uint32(0), uint32(0), uint32(0), uint32(255)
	switch len(hex) {
	case 3, 4:
		r, g, b = parseHex(hex[0:1])*17, parseHex(hex[1:2])*17, parseHex(hex[2:3])*17
		if len(hex) == 4 {
			a = parseHex(hex[3:4]) * 17
		}
	case 6, 8:
		r, g, b = parseHex(hex[0:2]), parseHex(hex[2:4]), parseHex(hex[4:6])
		if len(hex) == 8 {
			a = parseHex(hex[6:8])
		}
	default:
		return 0xFF000000
	}
	return Color(a<<24 | r<<16 | g<<8 | b)
}

func parseHex(s string) uint32 {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			v += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			v += uint32(c - 'A' + 10)
		default:
			return 0
		}
	}
	return v
}

// ColorF is a color with float channels, nominally in [0, 1]. Lighting
// accumulates in ColorF and may exceed 1 before clamping.
type ColorF struct {
	R, G, B, A float32
}

// RGB returns an opaque ColorF.
func RGB(r, g, b float32) ColorF {
	return ColorF{R: r, G: g, B: b, A: 1}
}

// Add returns the channel-wise sum. Alpha is kept from c.
func (c ColorF) Add(o ColorF) ColorF {
	return ColorF{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A}
}

// Mul returns the channel-wise product, alpha included.
func (c ColorF) Mul(o ColorF) ColorF {
	return ColorF{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Scale multiplies the color channels by s. Alpha is unchanged.
func (c ColorF) Scale(s float32) ColorF {
	return ColorF{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

// Clamp limits every channel to [0, 1].
func (c ColorF) Clamp() ColorF {
	return ColorF{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

// Color packs the clamped channels, rounding to nearest.
func (c ColorF) Color() Color {
	c = c.Clamp()
	return ColorFromARGB(
		uint8(c.A*255+0.5),
		uint8(c.R*255+0.5),
		uint8(c.G*255+0.5),
		uint8(c.B*255+0.5))
}

func clamp01(x float32) float32 {
	return min(max(x, 0), 1)
}

// Common colors.
const (
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFFFF0000
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFF0000FF
	Transparent Color = 0
)
