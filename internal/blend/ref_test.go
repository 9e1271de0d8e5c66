package blend

import "testing"

// div255Exact divides x by 255 exactly without using division.
func div255Exact(x uint32) uint32 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

func addClamp(a, b uint32) uint32 {
	return min(a+b, 255)
}

// pixelAdd32Ref adds per channel with saturation, keeping dst's alpha.
func pixelAdd32Ref(dst, src uint32) uint32 {
	r := addClamp((dst>>16)&0xFF, (src>>16)&0xFF)
	g := addClamp((dst>>8)&0xFF, (src>>8)&0xFF)
	b := addClamp(dst&0xFF, src&0xFF)
	return (dst & 0xFF000000) | r<<16 | g<<8 | b
}

// pixelBlend32Ref computes dst*(1-a) + src*a with a = alpha/255, exactly
// rounded.
func pixelBlend32Ref(dst, src uint32) uint32 {
	a := src >> 24
	ch := func(shift uint) uint32 {
		s := (src >> shift) & 0xFF
		d := (dst >> shift) & 0xFF
		return div255Exact(s*a + d*(255-a))
	}
	return a<<24 | ch(16)<<16 | ch(8)<<8 | ch(0)
}

func TestDiv255Exact(t *testing.T) {
	for x := uint32(0); x <= 255*255; x++ {
		if got := div255Exact(x); got != x/255 {
			t.Fatalf("div255Exact(%d) = %d, want %d", x, got, x/255)
		}
	}
}
