package blit

import (
	stdimage "image"
	"testing"

	"github.com/gogpu/burning/internal/image"
)

func newBuf(t *testing.T, w, h int, f image.Format) *image.ImageBuf {
	t.Helper()
	b, err := image.NewImageBuf(w, h, f)
	if err != nil {
		t.Fatalf("NewImageBuf: %v", err)
	}
	return b
}

func TestAbsRectIntersect(t *testing.T) {
	a := AbsRect{0, 0, 10, 10}
	b := AbsRect{5, -3, 20, 4}
	got := a.Intersect(b)
	if got != (AbsRect{5, 0, 10, 4}) {
		t.Errorf("Intersect = %+v", got)
	}
	if !a.Intersect(AbsRect{10, 0, 12, 5}).Empty() {
		t.Error("touching rectangles should not intersect")
	}
	if FromRect(a.Rect()) != a {
		t.Error("Rect round trip changed the rectangle")
	}
}

func TestClipLine(t *testing.T) {
	clip := AbsRect{0, 0, 100, 100}
	tests := []struct {
		name   string
		p0, p1 stdimage.Point
		want0  stdimage.Point
		want1  stdimage.Point
		ok     bool
	}{
		{"inside", stdimage.Pt(10, 10), stdimage.Pt(90, 90), stdimage.Pt(10, 10), stdimage.Pt(90, 90), true},
		{"from left", stdimage.Pt(-50, 50), stdimage.Pt(50, 50), stdimage.Pt(0, 50), stdimage.Pt(50, 50), true},
		{"to right", stdimage.Pt(50, 50), stdimage.Pt(150, 50), stdimage.Pt(50, 50), stdimage.Pt(99, 50), true},
		{"from top", stdimage.Pt(50, -50), stdimage.Pt(50, 50), stdimage.Pt(50, 0), stdimage.Pt(50, 50), true},
		{"through", stdimage.Pt(-10, -10), stdimage.Pt(200, 200), stdimage.Pt(0, 0), stdimage.Pt(99, 99), true},
		{"left only", stdimage.Pt(-50, 10), stdimage.Pt(-1, 90), stdimage.Point{}, stdimage.Point{}, false},
		{"below", stdimage.Pt(10, 100), stdimage.Pt(90, 140), stdimage.Point{}, stdimage.Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p0, p1, ok := ClipLine(clip, tt.p0, tt.p1)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (p0 != tt.want0 || p1 != tt.want1) {
				t.Errorf("got %v-%v, want %v-%v", p0, p1, tt.want0, tt.want1)
			}
		})
	}
}

func TestBlitCopySameFormat(t *testing.T) {
	for _, f := range []image.Format{image.FormatA1R5G5B5, image.FormatR8G8B8, image.FormatA8R8G8B8} {
		t.Run(f.String(), func(t *testing.T) {
			src := newBuf(t, 4, 4, f)
			dst := newBuf(t, 8, 8, f)
			src.Fill(0xFFFF0000)

			rows := Blit(OpCopy, dst, nil, stdimage.Pt(6, 2), src, nil, 0)
			if rows != 4 {
				t.Fatalf("rows = %d, want 4", rows)
			}
			for y := range 8 {
				for x := range 8 {
					inside := x >= 6 && y >= 2 && y < 6
					got := dst.Pixel32(x, y)
					if inside != (got == 0xFFFF0000) {
						t.Fatalf("pixel (%d,%d) = %#08x, inside=%v", x, y, got, inside)
					}
				}
			}
		})
	}
}

func TestBlitConvert(t *testing.T) {
	src := newBuf(t, 2, 2, image.FormatA8R8G8B8)
	src.Fill(0xFF00FF00)
	dst := newBuf(t, 2, 2, image.FormatR5G6B5)
	if Blit(OpCopy, dst, nil, stdimage.Pt(0, 0), src, nil, 0) != 2 {
		t.Fatal("convert blit wrote nothing")
	}
	if got := dst.Pixel16(1, 1); got != 0x07E0 {
		t.Errorf("pixel = %#04x, want 0x07e0", got)
	}
}

func TestBlitUnsupportedReturnsZero(t *testing.T) {
	src := newBuf(t, 2, 2, image.FormatR5G6B5)
	dst := newBuf(t, 2, 2, image.FormatR8G8B8)
	if n := Blit(OpCopy, dst, nil, stdimage.Pt(0, 0), src, nil, 0); n != 0 {
		t.Errorf("unsupported blit returned %d", n)
	}
	if Supported(OpCopyAlpha, image.FormatR8G8B8, image.FormatA8R8G8B8) {
		t.Error("Supported reported an absent executor")
	}
}

func TestBlitNoIntersection(t *testing.T) {
	src := newBuf(t, 2, 2, image.FormatA8R8G8B8)
	dst := newBuf(t, 4, 4, image.FormatA8R8G8B8)
	if n := Blit(OpCopy, dst, nil, stdimage.Pt(10, 10), src, nil, 0); n != 0 {
		t.Errorf("disjoint blit returned %d", n)
	}
	clip := AbsRect{0, 0, 1, 1}
	if n := Blit(OpCopy, dst, &clip, stdimage.Pt(2, 2), src, nil, 0); n != 0 {
		t.Errorf("clipped-out blit returned %d", n)
	}
}

func TestBlitSourceRectAndClip(t *testing.T) {
	src := newBuf(t, 4, 4, image.FormatA8R8G8B8)
	for y := range 4 {
		for x := range 4 {
			_ = src.SetPixel32(x, y, 0xFF000000|uint32(y*4+x))
		}
	}
	dst := newBuf(t, 4, 4, image.FormatA8R8G8B8)
	sr := AbsRect{1, 1, 3, 3}
	clip := AbsRect{1, 0, 4, 4}

	rows := Blit(OpCopy, dst, &clip, stdimage.Pt(0, 0), src, &sr, 0)
	if rows != 2 {
		t.Fatalf("rows = %d, want 2", rows)
	}
	if got := dst.Pixel32(0, 0); got != 0 {
		t.Errorf("clipped pixel written: %#08x", got)
	}
	// Target (1,0) shows source (2,1).
	if got := dst.Pixel32(1, 0); got != 0xFF000006 {
		t.Errorf("pixel (1,0) = %#08x, want 0xff000006", got)
	}
	if got := dst.Pixel32(1, 1); got != 0xFF00000A {
		t.Errorf("pixel (1,1) = %#08x, want 0xff00000a", got)
	}
}

func TestBlitAlpha(t *testing.T) {
	src := newBuf(t, 1, 1, image.FormatA8R8G8B8)
	dst := newBuf(t, 1, 1, image.FormatA8R8G8B8)
	src.Fill(0x00FFFFFF)
	dst.Fill(0xFF102030)
	Blit(OpCopyAlpha, dst, nil, stdimage.Pt(0, 0), src, nil, 0)
	if got := dst.Pixel32(0, 0); got != 0xFF102030 {
		t.Errorf("transparent source changed target: %#08x", got)
	}
	src.Fill(0xFF405060)
	Blit(OpCopyAlpha, dst, nil, stdimage.Pt(0, 0), src, nil, 0)
	if got := dst.Pixel32(0, 0); got != 0xFF405060 {
		t.Errorf("opaque source = %#08x", got)
	}
}

func TestStretchBlitNearest(t *testing.T) {
	src := newBuf(t, 2, 2, image.FormatA8R8G8B8)
	colors := []uint32{0xFF000001, 0xFF000002, 0xFF000003, 0xFF000004}
	for i, c := range colors {
		_ = src.SetPixel32(i%2, i/2, c)
	}
	dst := newBuf(t, 4, 4, image.FormatA8R8G8B8)
	rows := StretchBlit(OpCopy, dst, AbsRect{0, 0, 4, 4}, nil, src, AbsRect{0, 0, 2, 2}, 0)
	if rows != 4 {
		t.Fatalf("rows = %d", rows)
	}
	for y := range 4 {
		for x := range 4 {
			want := colors[(y/2)*2+x/2]
			if got := dst.Pixel32(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}

func TestStretchBlitClipped(t *testing.T) {
	src := newBuf(t, 2, 1, image.FormatA8R8G8B8)
	_ = src.SetPixel32(0, 0, 0xFF0000AA)
	_ = src.SetPixel32(1, 0, 0xFF0000BB)
	dst := newBuf(t, 4, 1, image.FormatA8R8G8B8)

	// The left half of the stretched image falls off the target.
	StretchBlit(OpCopy, dst, AbsRect{-4, 0, 4, 1}, nil, src, AbsRect{0, 0, 2, 1}, 0)
	for x := range 4 {
		if got := dst.Pixel32(x, 0); got != 0xFF0000BB {
			t.Fatalf("pixel %d = %#08x", x, got)
		}
	}
}

func TestFillRect(t *testing.T) {
	dst := newBuf(t, 4, 4, image.FormatA8R8G8B8)
	if n := FillRect(dst, AbsRect{1, 1, 10, 3}, 0xFF00FF00); n != 2 {
		t.Fatalf("rows = %d, want 2", n)
	}
	for y := range 4 {
		for x := range 4 {
			inside := x >= 1 && y >= 1 && y < 3
			if inside != (dst.Pixel32(x, y) == 0xFF00FF00) {
				t.Fatalf("pixel (%d,%d) inside=%v", x, y, inside)
			}
		}
	}

	// A transparent fill leaves the target alone.
	FillRect(dst, AbsRect{0, 0, 4, 4}, 0x00FFFFFF)
	if got := dst.Pixel32(2, 2); got != 0xFF00FF00 {
		t.Errorf("transparent fill changed pixel: %#08x", got)
	}
}

func TestFillRect16(t *testing.T) {
	dst := newBuf(t, 2, 2, image.FormatR5G6B5)
	FillRect(dst, AbsRect{0, 0, 2, 2}, 0xFFFF0000)
	if got := dst.Pixel16(1, 0); got != 0xF800 {
		t.Errorf("pixel = %#04x, want 0xf800", got)
	}
}

func TestDrawLine(t *testing.T) {
	for _, f := range []image.Format{image.FormatA8R8G8B8, image.FormatA1R5G5B5} {
		t.Run(f.String(), func(t *testing.T) {
			dst := newBuf(t, 8, 8, f)
			ok := DrawLine(dst, AbsRect{0, 0, 8, 8}, stdimage.Pt(-4, -4), stdimage.Pt(20, 20), 0xFFFFFFFF)
			if !ok {
				t.Fatal("DrawLine drew nothing")
			}
			for y := range 8 {
				for x := range 8 {
					lit := dst.Pixel32(x, y) == 0xFFFFFFFF
					if lit != (x == y) {
						t.Fatalf("pixel (%d,%d) lit=%v", x, y, lit)
					}
				}
			}
		})
	}
}

func TestDrawLineSteep(t *testing.T) {
	dst := newBuf(t, 4, 8, image.FormatA8R8G8B8)
	DrawLine(dst, AbsRect{0, 0, 4, 8}, stdimage.Pt(0, 0), stdimage.Pt(3, 7), 0xFF0000FF)
	count := 0
	for y := range 8 {
		lit := 0
		for x := range 4 {
			if dst.Pixel32(x, y) == 0xFF0000FF {
				lit++
			}
		}
		if lit != 1 {
			t.Errorf("row %d has %d pixels", y, lit)
		}
		count += lit
	}
	if dst.Pixel32(0, 0) != 0xFF0000FF || dst.Pixel32(3, 7) != 0xFF0000FF {
		t.Error("endpoints not drawn")
	}
	if count != 8 {
		t.Errorf("drew %d pixels, want 8", count)
	}
}

func TestDrawLineBlend(t *testing.T) {
	dst := newBuf(t, 4, 1, image.FormatA8R8G8B8)
	dst.Fill(0xFF000000)
	DrawLine(dst, AbsRect{0, 0, 4, 1}, stdimage.Pt(0, 0), stdimage.Pt(3, 0), 0x80FFFFFF)
	got := dst.Pixel32(2, 0) & 0xFF
	if got < 0x7E || got > 0x81 {
		t.Errorf("blended channel = %#02x, want about 0x80", got)
	}
}
