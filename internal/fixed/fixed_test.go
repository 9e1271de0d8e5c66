package fixed

import "testing"

func TestMulVertex(t *testing.T) {
	for x := range Point(256) {
		tex := x << Pre
		if got := MulVertex(tex, ColorMaxFix); got != tex {
			t.Fatalf("MulVertex(%d, white) = %d, want %d", x, Floor(got), x)
		}
		if got := MulVertex(tex, 0); got != 0 {
			t.Fatalf("MulVertex(%d, 0) = %d, want 0", x, Floor(got))
		}
		// Interpolation can overshoot white slightly.
		if got := MulVertex(tex, ColorMaxFix+One); got != tex {
			t.Fatalf("MulVertex(%d, above white) = %d, want %d", x, Floor(got), x)
		}
		for _, v := range []Point{1, 64, 127, 128, 200, 254} {
			want := int32((x*v + 127) / 255)
			got := Floor(MulVertex(tex, v<<Pre))
			if d := got - want; d < -1 || d > 1 {
				t.Fatalf("MulVertex(%d, %d) = %d, want %d", x, v, got, want)
			}
		}
	}
}

func TestToFix_Truncates(t *testing.T) {
	// 0.9999 of a unit truncates to zero integer part, not one.
	if got := Floor(ToFix(0.9999, OneF)); got != 0 {
		t.Errorf("Floor(ToFix(0.9999)) = %d, want 0", got)
	}
	if got := ToFix(-1.5, OneF); got != -3*Half {
		t.Errorf("ToFix(-1.5) = %d, want %d", got, -3*Half)
	}
}

func TestFloorCeil(t *testing.T) {
	tests := []struct {
		in          Point
		floor, ceil int32
	}{
		{FromInt(3), 3, 3},
		{FromInt(3) + 1, 3, 4},
		{FromInt(3) + FractMask, 3, 4},
		{-Half, -1, 0},
	}
	for _, tt := range tests {
		if got := Floor(tt.in); got != tt.floor {
			t.Errorf("Floor(%d) = %d, want %d", tt.in, got, tt.floor)
		}
		if got := Ceil(tt.in); got != tt.ceil {
			t.Errorf("Ceil(%d) = %d, want %d", tt.in, got, tt.ceil)
		}
	}
}

func TestClamp_Branchless(t *testing.T) {
	for a := Point(-2 * ColorMaxFix); a <= 2*ColorMaxFix; a += 97 {
		want := a
		if want < 0 {
			want = 0
		}
		if want > ColorMaxFix {
			want = ColorMaxFix
		}
		if got := Saturate(a); got != want {
			t.Fatalf("Saturate(%d) = %d, want %d", a, got, want)
		}
		if a >= 0 {
			if got := ClampMinColor(a); got != a {
				t.Fatalf("ClampMinColor(%d) = %d", a, got)
			}
		}
		if a <= ColorMaxFix {
			if got := ClampMaxColor(a); got != a {
				t.Fatalf("ClampMaxColor(%d) = %d", a, got)
			}
		}
	}
}

func TestColorPacking_RoundTrip(t *testing.T) {
	for _, c := range []uint32{0x00000000, 0xFFFFFFFF, 0x80402010, 0x12345678, 0xFF00FF00} {
		a, r, g, b := ColorToFix(c)
		if got := FixToColor(a, r, g, b); got != c {
			t.Errorf("FixToColor(ColorToFix(%08x)) = %08x", c, got)
		}
	}
}

func TestColorToFixA(t *testing.T) {
	if got := ColorToFixA(0xFF000000); got != One {
		t.Errorf("alpha 255 = %d, want One", got)
	}
	if got := ColorToFixA(0x00FFFFFF); got != 0 {
		t.Errorf("alpha 0 = %d, want 0", got)
	}
}

func TestMulTex_Scales(t *testing.T) {
	half := Point(128 << Pre)
	full := ColorMaxFix

	// full * half ~= half
	if got := Floor(MulTex1(full, half)); got < 126 || got > 128 {
		t.Errorf("MulTex1(full, half) = %d, want ~127", got)
	}
	if got := Floor(MulTex2(half, half)); got < 126 || got > 128 {
		t.Errorf("MulTex2(half, half) = %d, want ~128", got)
	}
	if got := Floor(MulTex4(half, half)); got < 254 || got > 256 {
		t.Errorf("MulTex4(half, half) = %d, want ~256", got)
	}
	if got := MulTex1(0, full); got != 0 {
		t.Errorf("MulTex1(0, full) = %d, want 0", got)
	}
}

func TestMulTex1_NoOverflow(t *testing.T) {
	// The largest operands must not wrap the 32-bit intermediate.
	got := Floor(MulTex1(ColorMaxFix, ColorMaxFix))
	if got < 253 || got > 255 {
		t.Errorf("MulTex1(max, max) = %d, want ~254", got)
	}
}
