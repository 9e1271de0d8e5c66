// Package image provides the pixel buffers the software rasterizer draws
// into and samples from: render targets, textures and their mip levels.
//
// Multi-byte pixels are stored little-endian, so an A8R8G8B8 word sits in
// memory as B, G, R, A.
package image

import "github.com/gogpu/gputypes"

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatA1R5G5B5 is 16-bit color with a 1-bit alpha in the top bit.
	FormatA1R5G5B5 Format = iota

	// FormatR5G6B5 is 16-bit opaque color.
	FormatR5G6B5

	// FormatR8G8B8 is 24-bit opaque color stored as R, G, B bytes.
	FormatR8G8B8

	// FormatA8R8G8B8 is 32-bit color with alpha in the top byte.
	// This is the native format of textures and the default render target.
	FormatA8R8G8B8

	// FormatR8G8B8A8 is 32-bit color stored as R, G, B, A bytes, the layout
	// of image.NRGBA.
	FormatR8G8B8A8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// RedBits, GreenBits, BlueBits and AlphaBits are the channel widths.
	RedBits, GreenBits, BlueBits, AlphaBits int
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatA1R5G5B5: {BytesPerPixel: 2, HasAlpha: true, RedBits: 5, GreenBits: 5, BlueBits: 5, AlphaBits: 1},
	FormatR5G6B5:   {BytesPerPixel: 2, RedBits: 5, GreenBits: 6, BlueBits: 5},
	FormatR8G8B8:   {BytesPerPixel: 3, RedBits: 8, GreenBits: 8, BlueBits: 8},
	FormatA8R8G8B8: {BytesPerPixel: 4, HasAlpha: true, RedBits: 8, GreenBits: 8, BlueBits: 8, AlphaBits: 8},
	FormatR8G8B8A8: {BytesPerPixel: 4, HasAlpha: true, RedBits: 8, GreenBits: 8, BlueBits: 8, AlphaBits: 8},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// Is16Bit reports whether pixels are one 16-bit word.
func (f Format) Is16Bit() bool {
	return f == FormatA1R5G5B5 || f == FormatR5G6B5
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatA1R5G5B5:
		return "A1R5G5B5"
	case FormatR5G6B5:
		return "R5G6B5"
	case FormatR8G8B8:
		return "R8G8B8"
	case FormatA8R8G8B8:
		return "A8R8G8B8"
	case FormatR8G8B8A8:
		return "R8G8B8A8"
	default:
		return "Unknown"
	}
}

// ParseFormat returns the format with the given String name.
func ParseFormat(name string) (Format, bool) {
	for f := range formatCount {
		if f.String() == name {
			return f, true
		}
	}
	return 0, false
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// GPUFormat returns the texture format a presenter uploads this buffer as.
// The 16 and 24-bit formats have no direct GPU equivalent and are expanded
// to RGBA8 before upload.
func (f Format) GPUFormat() gputypes.TextureFormat {
	switch f {
	case FormatA8R8G8B8:
		return gputypes.TextureFormatBGRA8Unorm
	case FormatR8G8B8A8, FormatR8G8B8, FormatA1R5G5B5, FormatR5G6B5:
		return gputypes.TextureFormatRGBA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// NeedsExpansion reports whether the buffer must be converted before it can
// be uploaded as GPUFormat.
func (f Format) NeedsExpansion() bool {
	return f != FormatA8R8G8B8 && f != FormatR8G8B8A8
}
