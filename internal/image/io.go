package image

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// LoadImage loads a PNG or JPEG file into an A8R8G8B8 buffer.
func LoadImage(path string) (*ImageBuf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*ImageBuf, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img, FormatA8R8G8B8)
}

// SavePNG saves the image as a PNG file.
func (b *ImageBuf) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodePNG encodes the image as PNG to the given writer.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToNRGBA()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// FromStdImage copies a standard library image into a new buffer of the
// given format.
func FromStdImage(img image.Image, format Format) (*ImageBuf, error) {
	bounds := img.Bounds()
	buf, err := NewImageBuf(bounds.Dx(), bounds.Dy(), format)
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok && format == FormatR8G8B8A8 {
		for y := range buf.height {
			srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), nrgba.Pix[srcStart:srcStart+buf.width*4])
		}
		return buf, nil
	}

	xdraw.Draw(buf, buf.Bounds(), img, bounds.Min, xdraw.Src)
	return buf, nil
}

// ToNRGBA converts the buffer to a non-premultiplied standard image.
func (b *ImageBuf) ToNRGBA() *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))

	if b.format == FormatR8G8B8A8 {
		for y := range b.height {
			copy(nrgba.Pix[y*nrgba.Stride:], b.RowBytes(y))
		}
		return nrgba
	}

	bpp := b.format.BytesPerPixel()
	for y := range b.height {
		row := b.RowBytes(y)
		dst := nrgba.Pix[y*nrgba.Stride:]
		for x := range b.width {
			c := DecodeARGB(b.format, row[x*bpp:])
			dst[x*4] = byte(c >> 16)
			dst[x*4+1] = byte(c >> 8)
			dst[x*4+2] = byte(c)
			dst[x*4+3] = byte(c >> 24)
		}
	}
	return nrgba
}

// ToRGBA converts the buffer to a premultiplied standard image.
func (b *ImageBuf) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	xdraw.Draw(rgba, rgba.Bounds(), b.ToNRGBA(), image.Point{}, xdraw.Src)
	return rgba
}
