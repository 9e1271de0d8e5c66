package shader

import "github.com/gogpu/burning/internal/raster"

// stencilSpan updates the stencil counters of a shadow-volume span. Color
// and depth are left untouched.
func (s *Shader) stencilSpan(sp *raster.Span) {
	z := s.zbuf.Lock()[sp.Y*s.zbuf.Pitch():]
	defer s.zbuf.Unlock()
	st := s.stencil.Lock()[sp.Y*s.stencil.Pitch():]
	defer s.stencil.Unlock()

	iw := sp.A[raster.IW]
	d := sp.D[raster.IW]
	for x := sp.X0; x < sp.X1; x++ {
		pass := depthPass(s.zCompare, iw, z[x])
		if pass != s.stencilOnFail {
			switch s.stencilOp {
			case StencilIncrement:
				st[x]++
			case StencilDecrement:
				st[x]--
			}
		}
		iw += d
	}
}
