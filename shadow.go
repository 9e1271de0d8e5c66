package burning

import (
	"encoding/binary"

	"github.com/gogpu/burning/internal/blend"
	"github.com/gogpu/burning/internal/image"
	"github.com/gogpu/burning/internal/shader"
)

// DrawStencilShadowVolume renders a closed shadow volume, given as world
// space triangles, into the stencil buffer. Front faces and back faces
// are drawn in two passes that increment and decrement the counter. With
// zfail the counters change where the depth test fails (Carmack's
// reverse), otherwise where it passes. Color and depth are not written.
func (d *Driver) DrawStencilShadowVolume(triangles []Vec3, zfail bool) {
	if d.stencil == nil || len(triangles) < 3 {
		return
	}
	verts := make([]Vertex, len(triangles))
	for i, p := range triangles {
		verts[i].Pos = p
	}

	saved := d.material
	m := NewMaterial()
	m.ZWriteEnable = false
	m.ZBuffer = CompareLessEqual
	d.material = m
	defer func() {
		d.material = saved
		d.cull = cullMaterial
	}()

	first, second := shader.StencilIncrement, shader.StencilDecrement
	d.cull = cullFront
	if !zfail {
		first, second = second, first
	}
	d.stencilPass(verts, first, zfail)
	d.cull = cullBack
	d.stencilPass(verts, second, zfail)
}

func (d *Driver) stencilPass(verts []Vertex, op shader.StencilOp, zfail bool) {
	d.prepare(VertexStandard)
	d.shader.SetKind(shader.StencilShadow)
	d.shader.SetStencilOp(op, zfail)
	d.cache.reset(verts, nil, Triangles)
	d.stats.Submitted += d.cache.prims
	d.drawTriangles()
}

// DrawStencilShadow blends c by its alpha over every pixel whose stencil
// counter is not zero, keeping the target alpha. With clear set the
// stencil is reset afterwards.
func (d *Driver) DrawStencilShadow(c Color, clear bool) {
	if d.stencil == nil {
		return
	}
	w, h := d.target.Dimension()
	sw, sh := d.stencil.Size()
	if w != sw || h != sh {
		return
	}

	format := d.target.Format()
	bpp := format.BytesPerPixel()
	st := d.stencil.Lock()
	defer d.stencil.Unlock()
	pixels := d.target.Lock()
	defer d.target.Unlock()
	clip := d.shader.Clip()
	src := uint32(c)
	alpha := src >> 24
	alpha += alpha >> 7

	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		row := pixels[y*d.target.Pitch():]
		srow := st[y*d.stencil.Pitch():]
		for x := clip.Min.X; x < clip.Max.X; x++ {
			if srow[x] == 0 {
				continue
			}
			p := row[x*bpp:]
			if format == image.FormatA8R8G8B8 {
				binary.LittleEndian.PutUint32(p, blend.PixelLerp32(binary.LittleEndian.Uint32(p), src, alpha))
				continue
			}
			image.EncodeARGB(format, p, blend.PixelLerp32(image.DecodeARGB(format, p), src, alpha))
		}
	}
	if clear {
		d.stencil.Clear()
	}
}
