package image

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Convert returns a copy of b in the given format.
func (b *ImageBuf) Convert(format Format) (*ImageBuf, error) {
	if format == b.format {
		return b.Clone(), nil
	}
	dst, err := NewImageBuf(b.width, b.height, format)
	if err != nil {
		return nil, err
	}
	CopyConvert(dst, b)
	return dst, nil
}

// CopyConvert copies the overlapping top-left region of src into dst,
// converting pixel formats as needed.
func CopyConvert(dst, src *ImageBuf) {
	w := min(dst.width, src.width)
	h := min(dst.height, src.height)
	sbpp := src.format.BytesPerPixel()
	dbpp := dst.format.BytesPerPixel()

	for y := range h {
		srow := src.RowBytes(y)
		drow := dst.RowBytes(y)
		if src.format == dst.format {
			copy(drow[:w*dbpp], srow[:w*sbpp])
			continue
		}
		for x := range w {
			EncodeARGB(dst.format, drow[x*dbpp:], DecodeARGB(src.format, srow[x*sbpp:]))
		}
	}
}

// Resize returns a bilinear-filtered copy of b scaled to width x height, in
// the same format.
func (b *ImageBuf) Resize(width, height int) (*ImageBuf, error) {
	dst, err := NewImageBuf(width, height, b.format)
	if err != nil {
		return nil, err
	}
	if width == b.width && height == b.height {
		copy(dst.data, b.data)
		return dst, nil
	}

	// Scale through NRGBA so the filter sees separate channels.
	scaled := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), b.ToNRGBA(), b.Bounds(), xdraw.Src, nil)

	tmp, err := FromStdImage(scaled, FormatR8G8B8A8)
	if err != nil {
		return nil, err
	}
	CopyConvert(dst, tmp)
	return dst, nil
}

// NextPowerOfTwo returns the smallest power of two >= n (n >= 1).
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
