package image

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"

	"github.com/gogpu/burning/internal/blend"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidPitch is returned when pitch is less than minimum required.
	ErrInvalidPitch = errors.New("image: pitch too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// ImageBuf is a contiguous pixel buffer addressed as
// row*Pitch + col*BytesPerPixel.
//
// The rasterizer writes through the slice returned by Lock. Lock and Unlock
// are a symmetric acquire/release pair; the buffer is single-writer and
// Unlock does no work.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	pitch  int
	format Format
	locks  int
}

var _ interface {
	image.Image
	Set(x, y int, c color.Color)
} = (*ImageBuf)(nil)

// NewImageBuf creates a new image buffer with the given dimensions and format.
// Returns an error if dimensions are invalid or format is unknown.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	pitch := format.RowBytes(width)
	return &ImageBuf{
		data:   make([]byte, pitch*height),
		width:  width,
		height: height,
		pitch:  pitch,
		format: format,
	}, nil
}

// FromRaw creates an ImageBuf from existing data without copying.
// The caller must ensure data remains valid for the lifetime of the ImageBuf.
// Pitch must be at least format.RowBytes(width).
func FromRaw(data []byte, width, height int, format Format, pitch int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if pitch < format.RowBytes(width) {
		return nil, ErrInvalidPitch
	}

	requiredSize := pitch * height
	if len(data) < requiredSize {
		return nil, ErrDataTooSmall
	}

	return &ImageBuf{
		data:   data[:requiredSize],
		width:  width,
		height: height,
		pitch:  pitch,
		format: format,
	}, nil
}

// Clone creates a deep copy of the image buffer.
func (b *ImageBuf) Clone() *ImageBuf {
	newData := make([]byte, len(b.data))
	copy(newData, b.data)

	return &ImageBuf{
		data:   newData,
		width:  b.width,
		height: b.height,
		pitch:  b.pitch,
		format: b.format,
	}
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Pitch returns the number of bytes per row (including padding).
func (b *ImageBuf) Pitch() int {
	return b.pitch
}

// Format returns the pixel format.
func (b *ImageBuf) Format() Format {
	return b.format
}

// Dimension returns the image size as (width, height).
func (b *ImageBuf) Dimension() (int, int) {
	return b.width, b.height
}

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// Lock returns the raw pixel data for direct writes.
func (b *ImageBuf) Lock() []byte {
	b.locks++
	return b.data
}

// Unlock releases a Lock.
func (b *ImageBuf) Unlock() {
	if b.locks > 0 {
		b.locks--
	}
}

// Locked reports whether a Lock is outstanding.
func (b *ImageBuf) Locked() bool {
	return b.locks > 0
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.pitch
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.pitch + x*b.format.BytesPerPixel()
}

// Pixel32 returns the pixel at (x, y) as an A8R8G8B8 word, converting from
// the buffer format. Returns 0 if coordinates are out of bounds.
func (b *ImageBuf) Pixel32(x, y int) uint32 {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return 0
	}
	return DecodeARGB(b.format, b.data[off:])
}

// SetPixel32 stores an A8R8G8B8 word at (x, y), converting to the buffer
// format. Returns ErrOutOfBounds if coordinates are outside image bounds.
func (b *ImageBuf) SetPixel32(x, y int, c uint32) error {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	EncodeARGB(b.format, b.data[off:], c)
	return nil
}

// Pixel16 returns the raw 16-bit word at (x, y) of a 16-bit buffer.
func (b *ImageBuf) Pixel16(x, y int) uint16 {
	off := b.PixelOffset(x, y)
	if off < 0 || !b.format.Is16Bit() {
		return 0
	}
	return binary.LittleEndian.Uint16(b.data[off:])
}

// SetPixel16 stores a raw 16-bit word at (x, y) of a 16-bit buffer.
func (b *ImageBuf) SetPixel16(x, y int, c uint16) error {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	if !b.format.Is16Bit() {
		return ErrInvalidFormat
	}
	binary.LittleEndian.PutUint16(b.data[off:], c)
	return nil
}

// Clear sets all pixels to zero (transparent black).
func (b *ImageBuf) Clear() {
	clear(b.data)
}

// Fill sets all pixels to the given A8R8G8B8 color.
func (b *ImageBuf) Fill(c uint32) {
	bpp := b.format.BytesPerPixel()
	var px [4]byte
	EncodeARGB(b.format, px[:], c)

	row := b.RowBytes(0)
	for x := 0; x < len(row); x += bpp {
		copy(row[x:x+bpp], px[:bpp])
	}
	for y := 1; y < b.height; y++ {
		copy(b.RowBytes(y), row)
	}
}

// ByteSize returns the total size of the image data in bytes.
func (b *ImageBuf) ByteSize() int {
	return len(b.data)
}

// IsEmpty returns true if the image has zero dimensions.
func (b *ImageBuf) IsEmpty() bool {
	return b.width == 0 || b.height == 0
}

// ColorModel implements image.Image.
func (b *ImageBuf) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (b *ImageBuf) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements image.Image.
func (b *ImageBuf) At(x, y int) color.Color {
	return ARGBToNRGBA(b.Pixel32(x, y))
}

// Set implements draw.Image.
func (b *ImageBuf) Set(x, y int, c color.Color) {
	_ = b.SetPixel32(x, y, ColorToARGB(c))
}

// DecodeARGB reads one pixel of format f from p as A8R8G8B8.
func DecodeARGB(f Format, p []byte) uint32 {
	switch f {
	case FormatA1R5G5B5:
		return blend.A1R5G5B5ToA8R8G8B8(binary.LittleEndian.Uint16(p))
	case FormatR5G6B5:
		return blend.R5G6B5ToA8R8G8B8(binary.LittleEndian.Uint16(p))
	case FormatR8G8B8:
		return 0xFF000000 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
	case FormatA8R8G8B8:
		return binary.LittleEndian.Uint32(p)
	case FormatR8G8B8A8:
		return uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
	default:
		return 0
	}
}

// EncodeARGB writes the A8R8G8B8 color c into p as one pixel of format f.
func EncodeARGB(f Format, p []byte, c uint32) {
	switch f {
	case FormatA1R5G5B5:
		binary.LittleEndian.PutUint16(p, blend.A8R8G8B8ToA1R5G5B5(c))
	case FormatR5G6B5:
		binary.LittleEndian.PutUint16(p, blend.A8R8G8B8ToR5G6B5(c))
	case FormatR8G8B8:
		p[0], p[1], p[2] = byte(c>>16), byte(c>>8), byte(c)
	case FormatA8R8G8B8:
		binary.LittleEndian.PutUint32(p, c)
	case FormatR8G8B8A8:
		p[0], p[1], p[2], p[3] = byte(c>>16), byte(c>>8), byte(c), byte(c>>24)
	}
}

// ARGBToNRGBA converts an A8R8G8B8 word to a non-premultiplied color.
func ARGBToNRGBA(c uint32) color.NRGBA {
	return color.NRGBA{R: byte(c >> 16), G: byte(c >> 8), B: byte(c), A: byte(c >> 24)}
}

// ColorToARGB converts any color to a non-premultiplied A8R8G8B8 word.
func ColorToARGB(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}
