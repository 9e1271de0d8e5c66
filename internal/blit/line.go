package blit

import (
	"encoding/binary"
	stdimage "image"

	"github.com/gogpu/burning/internal/blend"
	"github.com/gogpu/burning/internal/image"
)

// DrawLine draws p0-p1 inclusive onto a 16- or 32-bit target after
// clipping to clip. Colors with alpha below 255 blend over the target,
// opaque colors are written as decals. It reports whether any pixel was
// drawn.
func DrawLine(dst *image.ImageBuf, clip AbsRect, p0, p1 stdimage.Point, color uint32) bool {
	if dst == nil || dst.IsEmpty() {
		return false
	}
	clip = clip.Intersect(FromRect(dst.Bounds()))
	p0, p1, ok := ClipLine(clip, p0, p1)
	if !ok {
		return false
	}

	pixels := dst.Lock()
	defer dst.Unlock()
	pitch := dst.Pitch()
	alpha := color>>24 != 0xFF

	switch dst.Format() {
	case image.FormatA8R8G8B8:
		if alpha {
			bresenham(p0, p1, func(x, y int) {
				p := pixels[y*pitch+x*4:]
				binary.LittleEndian.PutUint32(p, blend.PixelBlend32(binary.LittleEndian.Uint32(p), color))
			})
		} else {
			bresenham(p0, p1, func(x, y int) {
				binary.LittleEndian.PutUint32(pixels[y*pitch+x*4:], color)
			})
		}
	case image.FormatA1R5G5B5, image.FormatR5G6B5:
		f := dst.Format()
		if alpha {
			bresenham(p0, p1, func(x, y int) {
				p := pixels[y*pitch+x*2:]
				c := image.DecodeARGB(f, p)
				image.EncodeARGB(f, p, blend.PixelBlend32(c, color))
			})
		} else {
			var px [2]byte
			image.EncodeARGB(f, px[:], color)
			bresenham(p0, p1, func(x, y int) {
				o := y*pitch + x*2
				pixels[o], pixels[o+1] = px[0], px[1]
			})
		}
	default:
		return false
	}
	return true
}

// bresenham visits every pixel of the segment, endpoints included.
func bresenham(p0, p1 stdimage.Point, plot func(x, y int)) {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	sx, sy := 1, 1
	if dx < 0 {
		dx, sx = -dx, -1
	}
	if dy < 0 {
		dy, sy = -dy, -1
	}

	x, y := p0.X, p0.Y
	if dx >= dy {
		err := dx / 2
		for range dx + 1 {
			plot(x, y)
			x += sx
			err -= dy
			if err < 0 {
				y += sy
				err += dx
			}
		}
		return
	}
	err := dy / 2
	for range dy + 1 {
		plot(x, y)
		y += sy
		err -= dx
		if err < 0 {
			x += sx
			err += dy
		}
	}
}
