package blend

import "testing"

// channelSamples covers both ends of the range and a spread in between.
var channelSamples = []uint32{0, 1, 2, 15, 64, 127, 128, 129, 200, 254, 255}

func pack(a, r, g, b uint32) uint32 { return a<<24 | r<<16 | g<<8 | b }

func channelDiff(x, y uint32, shift uint) int {
	return int((x>>shift)&0xFF) - int((y>>shift)&0xFF)
}

func TestPixelBlend32_Extremes(t *testing.T) {
	dst := uint32(0xFF102030)
	src := uint32(0x00A0B0C0)
	if got := PixelBlend32(dst, src); got != dst {
		t.Errorf("alpha 0: got %08x, want dst %08x", got, dst)
	}
	src |= 0xFF000000
	if got := PixelBlend32(dst, src); got != src {
		t.Errorf("alpha 255: got %08x, want src %08x", got, src)
	}
}

func TestPixelBlend32_MatchesPerChannel(t *testing.T) {
	for _, a := range channelSamples {
		for _, s := range channelSamples {
			for _, d := range channelSamples {
				src := pack(a, s, 255-s, s/2)
				dst := pack(0xFF, d, d/3, 255-d)
				got := PixelBlend32(dst, src)
				want := pixelBlend32Ref(dst, src)
				if a != 0 && got>>24 != a {
					t.Fatalf("PixelBlend32(%08x, %08x) alpha = %02x, want %02x", dst, src, got>>24, a)
				}
				for _, sh := range []uint{16, 8, 0} {
					if d := channelDiff(got, want, sh); d < -2 || d > 2 {
						t.Fatalf("PixelBlend32(%08x, %08x) = %08x, reference %08x", dst, src, got, want)
					}
				}
			}
		}
	}
}

func TestPixelBlend32Alpha_Exact(t *testing.T) {
	// With alpha 256 the blend is a copy; with 0 it keeps dst.
	for _, s := range channelSamples {
		for _, d := range channelSamples {
			src := pack(0, s, d, s)
			dst := pack(0, d, s, 255-s)
			if got := PixelBlend32Alpha(dst, src, 256); got != src {
				t.Fatalf("alpha 256: got %08x, want %08x", got, src)
			}
			if got := PixelBlend32Alpha(dst, src, 0); got != dst {
				t.Fatalf("alpha 0: got %08x, want %08x", got, dst)
			}
		}
	}
}

func TestPixelLerp32_KeepsDstAlpha(t *testing.T) {
	got := PixelLerp32(0x40000000, 0xFFFFFFFF, 128)
	if got>>24 != 0x40 {
		t.Errorf("alpha = %02x, want 40", got>>24)
	}
	if r := (got >> 16) & 0xFF; r != 127 {
		t.Errorf("red = %d, want 127", r)
	}
}

func TestPixelAdd32_MatchesPerChannel(t *testing.T) {
	for _, r := range channelSamples {
		for _, g := range channelSamples {
			for _, b := range channelSamples {
				dst := pack(0x7F, r, g, b)
				src := pack(0xFF, 255-g, b, r)
				got := PixelAdd32(dst, src)
				want := pixelAdd32Ref(dst, src)
				if got != want {
					t.Fatalf("PixelAdd32(%08x, %08x) = %08x, want %08x", dst, src, got, want)
				}
			}
		}
	}
}

func TestPixelMul32(t *testing.T) {
	if got := PixelMul32(0xFFFFFFFF, 0); got != 0 {
		t.Errorf("mul by zero = %08x", got)
	}
	got := PixelMul32(0xFFFFFFFF, 0x80808080)
	for _, sh := range []uint{24, 16, 8, 0} {
		if c := (got >> sh) & 0xFF; c != 127 {
			t.Errorf("channel at %d = %d, want 127", sh, c)
		}
	}
}

func TestPixelMul32x2_Saturates(t *testing.T) {
	got := PixelMul32x2(0x12C0C0C0, 0xFFFFFFFF)
	if got != 0x12FFFFFF {
		t.Errorf("PixelMul32x2 = %08x, want 12ffffff", got)
	}
	got = PixelMul32x2(0xFF404040, 0xFFFFFFFF)
	if c := got & 0xFF; c != 127 {
		t.Errorf("blue = %d, want 127", c)
	}
}

func TestPixelBlend16(t *testing.T) {
	if got := PixelBlend16(0x1234, 0x8F0F); got != 0x8F0F {
		t.Errorf("opaque src: got %04x", got)
	}
	if got := PixelBlend16(0x1234, 0x7F0F); got != 0x1234 {
		t.Errorf("transparent src: got %04x", got)
	}
}

func TestPixelBlend16Alpha_Ends(t *testing.T) {
	for _, c := range []uint16{0x0000, 0x7FFF, 0x1234, 0x7C00, 0x03E0, 0x001F} {
		d := ^c & 0x7FFF
		if got := PixelBlend16Alpha(d, c, 32); got != c {
			t.Errorf("alpha 32: got %04x, want %04x", got, c)
		}
		if got := PixelBlend16Alpha(d, c, 0); got != d {
			t.Errorf("alpha 0: got %04x, want %04x", got, d)
		}
	}
}

func TestColorConversion16_RoundTrip(t *testing.T) {
	for c := range 1 << 16 {
		v := uint16(c)
		if got := A8R8G8B8ToA1R5G5B5(A1R5G5B5ToA8R8G8B8(v)); got != v {
			t.Fatalf("A1R5G5B5 %04x round trip = %04x", v, got)
		}
		if got := A8R8G8B8ToR5G6B5(R5G6B5ToA8R8G8B8(v)); got != v {
			t.Fatalf("R5G6B5 %04x round trip = %04x", v, got)
		}
	}
}

func TestColorConversion16_White(t *testing.T) {
	if got := A1R5G5B5ToA8R8G8B8(0xFFFF); got != 0xFFFFFFFF {
		t.Errorf("white = %08x", got)
	}
	if got := A1R5G5B5ToA8R8G8B8(0x7FFF); got != 0x00FFFFFF {
		t.Errorf("transparent white = %08x", got)
	}
}
