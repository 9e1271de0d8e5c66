package blit

import (
	"encoding/binary"
	stdimage "image"

	"github.com/gogpu/burning/internal/blend"
	"github.com/gogpu/burning/internal/image"
)

// Op selects what a blit does with the source pixels.
type Op uint8

const (
	// OpCopy copies source pixels, converting formats.
	OpCopy Op = iota
	// OpCopyAlpha blends the source over the target by source alpha.
	OpCopyAlpha
	// OpCopyColor modulates the source by a color, then blends by the
	// resulting alpha.
	OpCopyColor
	// OpFill writes a solid color. No source is read.
	OpFill
	// OpFillAlpha blends a color over the target by its alpha.
	OpFillAlpha
)

// Format sentinels in the table.
const (
	formatSame image.Format = 0xFE // any format, source equal to target
	formatNone image.Format = 0xFF // no source
)

// job is one clipped blit. Coordinates are already intersected and
// relative to the slices.
type job struct {
	dst      []byte
	dstPitch int
	dstFmt   image.Format

	src      []byte
	srcPitch int
	srcFmt   image.Format

	width, height int

	// Source texels per target pixel and source origin of the first
	// pixel, in 16.16, for stretching.
	stepX, stepY int
	offX, offY   int
	stretch      bool

	color uint32
}

func (j *job) srcX(x int) int {
	if j.stretch {
		return (j.offX + x*j.stepX) >> 16
	}
	return x
}

func (j *job) srcY(y int) int {
	if j.stretch {
		return (j.offY + y*j.stepY) >> 16
	}
	return y
}

type executor func(*job)

type entry struct {
	op       Op
	dst, src image.Format
	fn       executor
}

var table = []entry{
	{OpCopy, formatSame, formatSame, copySame},
	{OpCopy, image.FormatA1R5G5B5, image.FormatA8R8G8B8, convert},
	{OpCopy, image.FormatR5G6B5, image.FormatA8R8G8B8, convert},
	{OpCopy, image.FormatA8R8G8B8, image.FormatA1R5G5B5, convert},
	{OpCopy, image.FormatA8R8G8B8, image.FormatR5G6B5, convert},
	{OpCopy, image.FormatA8R8G8B8, image.FormatR8G8B8, convert},
	{OpCopy, image.FormatA8R8G8B8, image.FormatR8G8B8A8, convert},
	{OpCopyAlpha, image.FormatA8R8G8B8, image.FormatA8R8G8B8, alpha32},
	{OpCopyAlpha, image.FormatA1R5G5B5, image.FormatA8R8G8B8, alpha16From32},
	{OpCopyAlpha, image.FormatA1R5G5B5, image.FormatA1R5G5B5, alpha16},
	{OpCopyColor, image.FormatA8R8G8B8, image.FormatA8R8G8B8, color32},
	{OpFill, image.FormatA8R8G8B8, formatNone, fill32},
	{OpFill, image.FormatA1R5G5B5, formatNone, fill16},
	{OpFill, image.FormatR5G6B5, formatNone, fill16},
	{OpFillAlpha, image.FormatA8R8G8B8, formatNone, fillAlpha32},
	{OpFillAlpha, image.FormatA1R5G5B5, formatNone, fillAlpha16},
}

// lookup finds the executor for op. src is formatNone for fills.
func lookup(op Op, dst, src image.Format) executor {
	for i := range table {
		e := &table[i]
		if e.op != op {
			continue
		}
		if e.dst == formatSame && src == dst {
			return e.fn
		}
		if e.dst == dst && e.src == src {
			return e.fn
		}
	}
	return nil
}

// Supported reports whether a blit of op from src to dst has an executor.
func Supported(op Op, dst, src image.Format) bool {
	return lookup(op, dst, src) != nil
}

// Blit composes the srcRect part of src onto dst at pos, restricted to
// clip and the target bounds. For fills src is nil and srcRect gives the
// filled size. It returns the number of rows written, 0 when no executor
// handles the formats or nothing intersects.
func Blit(op Op, dst *image.ImageBuf, clip *AbsRect, pos stdimage.Point, src *image.ImageBuf, srcRect *AbsRect, color uint32) int {
	if dst == nil || dst.IsEmpty() {
		return 0
	}
	srcFmt := formatNone
	if src != nil {
		srcFmt = src.Format()
	}
	fn := lookup(op, dst.Format(), srcFmt)
	if fn == nil {
		return 0
	}

	var sr AbsRect
	switch {
	case srcRect != nil:
		sr = *srcRect
	case src != nil:
		sr = FromRect(src.Bounds())
	default:
		sr = FromRect(dst.Bounds())
	}
	if src != nil {
		sr = sr.Intersect(FromRect(src.Bounds()))
	}

	// Place the source rectangle at pos and clip it.
	dr := AbsRect{X0: pos.X, Y0: pos.Y, X1: pos.X + sr.Width(), Y1: pos.Y + sr.Height()}
	limit := FromRect(dst.Bounds())
	if clip != nil {
		limit = limit.Intersect(*clip)
	}
	cr := dr.Intersect(limit)
	if cr.Empty() || sr.Empty() {
		return 0
	}
	sr.X0 += cr.X0 - dr.X0
	sr.Y0 += cr.Y0 - dr.Y0

	j := newJob(dst, cr, src, sr, color)
	fn(j)
	return j.height
}

// StretchBlit scales the srcRect part of src to fill dstRect with
// nearest-neighbor sampling, restricted to clip and the target bounds.
func StretchBlit(op Op, dst *image.ImageBuf, dstRect AbsRect, clip *AbsRect, src *image.ImageBuf, srcRect AbsRect, color uint32) int {
	if dst == nil || dst.IsEmpty() || src == nil {
		return 0
	}
	fn := lookup(op, dst.Format(), src.Format())
	if fn == nil {
		return 0
	}
	sr := srcRect.Intersect(FromRect(src.Bounds()))
	if sr.Empty() || dstRect.Empty() {
		return 0
	}

	limit := FromRect(dst.Bounds())
	if clip != nil {
		limit = limit.Intersect(*clip)
	}
	cr := dstRect.Intersect(limit)
	if cr.Empty() {
		return 0
	}

	stepX := (sr.Width() << 16) / dstRect.Width()
	stepY := (sr.Height() << 16) / dstRect.Height()

	j := newJob(dst, cr, src, sr, color)
	j.stretch = true
	j.stepX, j.stepY = stepX, stepY
	j.offX = (cr.X0 - dstRect.X0) * stepX
	j.offY = (cr.Y0 - dstRect.Y0) * stepY
	fn(j)
	return j.height
}

func newJob(dst *image.ImageBuf, dr AbsRect, src *image.ImageBuf, sr AbsRect, color uint32) *job {
	j := &job{
		dstPitch: dst.Pitch(),
		dstFmt:   dst.Format(),
		width:    dr.Width(),
		height:   dr.Height(),
		color:    color,
		srcFmt:   formatNone,
	}
	j.dst = dst.Lock()[dst.PixelOffset(dr.X0, dr.Y0):]
	dst.Unlock()
	if src != nil {
		j.srcPitch = src.Pitch()
		j.srcFmt = src.Format()
		j.src = src.Lock()[src.PixelOffset(sr.X0, sr.Y0):]
		src.Unlock()
	}
	return j
}

func copySame(j *job) {
	bpp := j.dstFmt.BytesPerPixel()
	if !j.stretch {
		n := j.width * bpp
		for y := range j.height {
			copy(j.dst[y*j.dstPitch:y*j.dstPitch+n], j.src[y*j.srcPitch:])
		}
		return
	}
	for y := range j.height {
		d := j.dst[y*j.dstPitch:]
		s := j.src[j.srcY(y)*j.srcPitch:]
		for x := range j.width {
			sx := j.srcX(x) * bpp
			copy(d[x*bpp:x*bpp+bpp], s[sx:sx+bpp])
		}
	}
}

func convert(j *job) {
	db, sb := j.dstFmt.BytesPerPixel(), j.srcFmt.BytesPerPixel()
	for y := range j.height {
		d := j.dst[y*j.dstPitch:]
		s := j.src[j.srcY(y)*j.srcPitch:]
		for x := range j.width {
			c := image.DecodeARGB(j.srcFmt, s[j.srcX(x)*sb:])
			image.EncodeARGB(j.dstFmt, d[x*db:], c)
		}
	}
}

func alpha32(j *job) {
	for y := range j.height {
		d := j.dst[y*j.dstPitch:]
		s := j.src[j.srcY(y)*j.srcPitch:]
		for x := range j.width {
			c := binary.LittleEndian.Uint32(s[j.srcX(x)*4:])
			p := d[x*4:]
			binary.LittleEndian.PutUint32(p, blend.PixelBlend32(binary.LittleEndian.Uint32(p), c))
		}
	}
}

func alpha16From32(j *job) {
	for y := range j.height {
		d := j.dst[y*j.dstPitch:]
		s := j.src[j.srcY(y)*j.srcPitch:]
		for x := range j.width {
			c := binary.LittleEndian.Uint32(s[j.srcX(x)*4:])
			p := d[x*2:]
			binary.LittleEndian.PutUint16(p, blend.PixelBlend16From32(binary.LittleEndian.Uint16(p), c))
		}
	}
}

func alpha16(j *job) {
	for y := range j.height {
		d := j.dst[y*j.dstPitch:]
		s := j.src[j.srcY(y)*j.srcPitch:]
		for x := range j.width {
			c := binary.LittleEndian.Uint16(s[j.srcX(x)*2:])
			p := d[x*2:]
			binary.LittleEndian.PutUint16(p, blend.PixelBlend16(binary.LittleEndian.Uint16(p), c))
		}
	}
}

func color32(j *job) {
	for y := range j.height {
		d := j.dst[y*j.dstPitch:]
		s := j.src[j.srcY(y)*j.srcPitch:]
		for x := range j.width {
			c := blend.PixelMul32(binary.LittleEndian.Uint32(s[j.srcX(x)*4:]), j.color)
			p := d[x*4:]
			binary.LittleEndian.PutUint32(p, blend.PixelBlend32(binary.LittleEndian.Uint32(p), c))
		}
	}
}

func fill32(j *job) {
	for y := range j.height {
		d := j.dst[y*j.dstPitch:]
		for x := range j.width {
			binary.LittleEndian.PutUint32(d[x*4:], j.color)
		}
	}
}

func fill16(j *job) {
	var px [2]byte
	image.EncodeARGB(j.dstFmt, px[:], j.color)
	for y := range j.height {
		d := j.dst[y*j.dstPitch:]
		for x := range j.width {
			d[x*2], d[x*2+1] = px[0], px[1]
		}
	}
}

func fillAlpha32(j *job) {
	for y := range j.height {
		d := j.dst[y*j.dstPitch:]
		for x := range j.width {
			p := d[x*4:]
			binary.LittleEndian.PutUint32(p, blend.PixelBlend32(binary.LittleEndian.Uint32(p), j.color))
		}
	}
}

func fillAlpha16(j *job) {
	c := blend.A8R8G8B8ToA1R5G5B5(j.color)
	a := j.color >> 27
	for y := range j.height {
		d := j.dst[y*j.dstPitch:]
		for x := range j.width {
			p := d[x*2:]
			binary.LittleEndian.PutUint16(p, 0x8000|blend.PixelBlend16Alpha(binary.LittleEndian.Uint16(p), c, a))
		}
	}
}

// FillRect fills r, clipped to the target, with c. Colors with alpha below
// 255 blend over the target.
func FillRect(dst *image.ImageBuf, r AbsRect, c uint32) int {
	op := OpFill
	if c>>24 != 0xFF {
		op = OpFillAlpha
	}
	return Blit(op, dst, &r, stdimage.Pt(r.X0, r.Y0), nil, &r, c)
}
