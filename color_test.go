package burning

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FF0000", Red},
		{"00ff00", Green},
		{"#00F", Blue},
		{"FFF8", ColorFromARGB(0x88, 255, 255, 255)},
		{"11223344", ColorFromARGB(0x44, 0x11, 0x22, 0x33)},
		{"", Black},
		{"#12345", Black},
		{"zz0000", ColorFromARGB(255, 0, 0, 0)},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %#08x, want %#08x", tt.in, uint32(got), uint32(tt.want))
		}
	}
}

func TestColorChannels(t *testing.T) {
	c := ColorFromARGB(1, 2, 3, 4)
	if c.A() != 1 || c.R() != 2 || c.G() != 3 || c.B() != 4 {
		t.Errorf("channels of %#08x", uint32(c))
	}
	if got := FromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 255}); got != ColorFromARGB(255, 10, 20, 30) {
		t.Errorf("FromColor = %#08x", uint32(got))
	}
	r, g, b, a := Red.RGBA()
	if r != 0xFFFF || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("Red.RGBA() = %d %d %d %d", r, g, b, a)
	}
}

func TestColorF(t *testing.T) {
	c := RGB(0.5, 1.5, -1).Color()
	if c != ColorFromARGB(255, 128, 255, 0) {
		t.Errorf("clamped color = %#08x", uint32(c))
	}
	sum := RGB(0.25, 0, 0).Add(ColorF{R: 0.25, A: 0})
	if sum.R != 0.5 || sum.A != 1 {
		t.Errorf("Add = %+v, want R 0.5 and alpha kept", sum)
	}
	if got := RGB(1, 1, 1).Scale(0.5); got.G != 0.5 || got.A != 1 {
		t.Errorf("Scale = %+v", got)
	}
	if got := White.ColorF(); got != (ColorF{1, 1, 1, 1}) {
		t.Errorf("White.ColorF() = %+v", got)
	}
}
