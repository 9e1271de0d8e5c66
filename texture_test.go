package burning

import (
	"errors"
	stdimage "image"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/gogpu/burning/internal/vertex"
)

func screenVertex(x, y, u, v float32) vertex.Vertex {
	var sv vertex.Vertex
	sv.Pos = Vec4{X: x, Y: y, W: 1}
	sv.Tex[0] = V2(u, v)
	return sv
}

func TestTextureResizedToPowerOfTwo(t *testing.T) {
	tex := solidTexture(t, 3, 5, Green)
	if w, h := tex.Size(); w != 4 || h != 8 {
		t.Errorf("Size = %dx%d, want 4x8", w, h)
	}
	if w, h := tex.OriginalSize(); w != 3 || h != 5 {
		t.Errorf("OriginalSize = %dx%d, want 3x5", w, h)
	}
	if got := tex.MipLevels(); got != 4 {
		t.Errorf("MipLevels = %d, want 4", got)
	}
	if tex.IsRenderTarget() {
		t.Error("image texture reports render target")
	}
}

func TestTextureViewClampsLevel(t *testing.T) {
	tex := solidTexture(t, 8, 8, Red)
	v, ok := tex.view(10, false)
	if !ok {
		t.Fatal("view rejected")
	}
	if w, h := v.Size(); w != 1 || h != 1 || v.Level != 3 {
		t.Errorf("clamped view = %dx%d level %d, want 1x1 level 3", w, h, v.Level)
	}
}

func TestNewTextureFromNilImage(t *testing.T) {
	if _, err := NewTextureFromImage("nil", nil, false); !errors.Is(err, ErrNilImage) {
		t.Errorf("err = %v, want ErrNilImage", err)
	}
}

func TestSelectLevel(t *testing.T) {
	d := newTestDriver(t, 4, 4)
	tex := solidTexture(t, 64, 64, Red)
	a, b, c := screenVertex(0, 0, 0, 0), screenVertex(4, 0, 1, 0), screenVertex(0, 4, 0, 1)
	// 64x64 texels onto 4x4 pixels: area ratio 256, level 4.
	if lvl, bilinear := d.selectLevel(tex, 0, &a, &b, &c); lvl != 4 || bilinear {
		t.Errorf("minified: level %d bilinear %v, want 4 false", lvl, bilinear)
	}

	small := solidTexture(t, 2, 2, Red)
	if lvl, bilinear := d.selectLevel(small, 0, &a, &b, &c); lvl != 0 || !bilinear {
		t.Errorf("magnified: level %d bilinear %v, want 0 true", lvl, bilinear)
	}
}

func TestDriverTextureRegistry(t *testing.T) {
	solid := stdimage.NewRGBA(stdimage.Rect(0, 0, 8, 8))
	// Each 8x8 texture with mip maps holds 64+16+4+1 pixels.
	const texBytes = (64 + 16 + 4 + 1) * 4
	d := newTestDriver(t, 4, 4, WithTextureBudget(2*texBytes))

	a, err := d.NewTexture("a", solid)
	if err != nil {
		t.Fatal(err)
	}
	if a.Bytes() != texBytes {
		t.Fatalf("Bytes = %d, want %d", a.Bytes(), texBytes)
	}
	if got, ok := d.FindTexture("a"); !ok || got != a {
		t.Error("FindTexture(a) missed")
	}
	if _, err := d.NewTexture("b", solid); err != nil {
		t.Fatal(err)
	}
	if _, err := d.NewTexture("c", solid); err != nil {
		t.Fatal(err)
	}
	if d.TextureCount() != 2 {
		t.Errorf("TextureCount = %d, want 2", d.TextureCount())
	}
	if _, ok := d.FindTexture("a"); ok {
		t.Error("least recently used texture kept past the budget")
	}
	if got := d.TextureNames(); !slices.Equal(got, []string{"c", "b"}) {
		t.Errorf("TextureNames = %v, want [c b]", got)
	}
	if !d.RemoveTexture("b") || d.RemoveTexture("b") {
		t.Error("RemoveTexture reported wrong presence")
	}
	if _, err := d.GetTexture(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("GetTexture of a missing file: want error")
	}
}

func TestDriverGetTextureLoadsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, stdimage.NewRGBA(stdimage.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	d := newTestDriver(t, 4, 4)
	first, err := d.GetTexture(path)
	if err != nil {
		t.Fatal(err)
	}
	second, err := d.GetTexture(path)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("GetTexture loaded the file twice")
	}
}
