// Package depth provides the depth and stencil buffers shared by the pixel
// shaders.
//
// The depth buffer is a w-buffer: each texel holds the interpolated 1/w of
// the nearest fragment drawn so far. Larger values are nearer; the cleared
// value 0 is infinitely far.
package depth

import (
	"github.com/gogpu/gputypes"
)

// Far is the cleared depth value.
const Far float32 = 0

// Buffer is a float32 w-buffer sized to the render target.
type Buffer struct {
	data          []float32
	width, height int
}

// NewBuffer returns a cleared buffer of the given size.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.SetSize(width, height)
	return b
}

// Clear resets every texel to Far.
func (b *Buffer) Clear() {
	clear(b.data)
}

// SetSize resizes and clears the buffer. It is a no-op if the size is
// unchanged; stale contents are never kept across a resize.
func (b *Buffer) SetSize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == b.width && height == b.height && b.data != nil {
		return
	}
	b.width, b.height = width, height
	if n := width * height; cap(b.data) >= n {
		b.data = b.data[:n]
	} else {
		b.data = make([]float32, n)
	}
	b.Clear()
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (int, int) { return b.width, b.height }

// Pitch returns the number of texels per row.
func (b *Buffer) Pitch() int { return b.width }

// Lock exposes the texels, row-major with Pitch texels per row.
func (b *Buffer) Lock() []float32 { return b.data }

// Unlock releases a Lock.
func (b *Buffer) Unlock() {}

// At returns the stored 1/w at (x, y), or Far outside the buffer.
func (b *Buffer) At(x, y int) float32 {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Far
	}
	return b.data[y*b.width+x]
}

// GPUFormat is the texture format a presenter would mirror this buffer in.
func (b *Buffer) GPUFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatDepth32Float
}

// StencilBuffer is a per-pixel uint32 counter buffer.
type StencilBuffer struct {
	data          []uint32
	width, height int
}

// NewStencilBuffer returns a cleared stencil buffer of the given size.
func NewStencilBuffer(width, height int) *StencilBuffer {
	s := &StencilBuffer{}
	s.SetSize(width, height)
	return s
}

// Clear resets every counter to 0.
func (s *StencilBuffer) Clear() {
	clear(s.data)
}

// SetSize resizes and clears the buffer. It is a no-op if the size is
// unchanged.
func (s *StencilBuffer) SetSize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height && s.data != nil {
		return
	}
	s.width, s.height = width, height
	if n := width * height; cap(s.data) >= n {
		s.data = s.data[:n]
	} else {
		s.data = make([]uint32, n)
	}
	s.Clear()
}

// Size returns the buffer dimensions.
func (s *StencilBuffer) Size() (int, int) { return s.width, s.height }

// Pitch returns the number of counters per row.
func (s *StencilBuffer) Pitch() int { return s.width }

// Lock exposes the counters, row-major with Pitch counters per row.
func (s *StencilBuffer) Lock() []uint32 { return s.data }

// Unlock releases a Lock.
func (s *StencilBuffer) Unlock() {}

// At returns the counter at (x, y), or 0 outside the buffer.
func (s *StencilBuffer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return s.data[y*s.width+x]
}

// GPUFormat is the texture format a presenter would mirror this buffer in.
func (s *StencilBuffer) GPUFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatDepth24PlusStencil8
}
