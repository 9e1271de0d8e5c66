package blend

import "fmt"

// Factor is a source or destination blend factor, as in a fixed-function
// blend equation: result = src*srcFactor + dst*dstFactor.
type Factor uint8

const (
	Zero             Factor = iota // (0, 0, 0, 0)
	One                            // (1, 1, 1, 1)
	DstColor                       // (Rd, Gd, Bd, Ad)
	OneMinusDstColor               // (1-Rd, 1-Gd, 1-Bd, 1-Ad)
	SrcColor                       // (Rs, Gs, Bs, As)
	OneMinusSrcColor               // (1-Rs, 1-Gs, 1-Bs, 1-As)
	SrcAlpha                       // (As, As, As, As)
	OneMinusSrcAlpha               // (1-As, 1-As, 1-As, 1-As)
	DstAlpha                       // (Ad, Ad, Ad, Ad)
	OneMinusDstAlpha               // (1-Ad, 1-Ad, 1-Ad, 1-Ad)
	SrcAlphaSaturate               // (f, f, f, 1) with f = min(As, 1-Ad)

	factorCount
)

var factorNames = [factorCount]string{
	"Zero", "One", "DstColor", "OneMinusDstColor", "SrcColor",
	"OneMinusSrcColor", "SrcAlpha", "OneMinusSrcAlpha", "DstAlpha",
	"OneMinusDstAlpha", "SrcAlphaSaturate",
}

// String returns the factor name.
func (f Factor) String() string {
	if f < factorCount {
		return factorNames[f]
	}
	return fmt.Sprintf("Factor(%d)", uint8(f))
}

// Valid reports whether f is a known factor.
func (f Factor) Valid() bool { return f < factorCount }

// Pair is a (source, destination) factor combination.
type Pair struct {
	Src, Dst Factor
}

func (p Pair) String() string { return p.Src.String() + "/" + p.Dst.String() }

// Pack encodes the pair into a single float parameter the way material
// parameters carry it: src in the low nibble, dst in the next.
func (p Pair) Pack() float32 {
	return float32(uint32(p.Dst)<<4 | uint32(p.Src))
}

// UnpackPair decodes a value produced by Pair.Pack.
func UnpackPair(param float32) Pair {
	v := uint32(param)
	return Pair{Src: Factor(v & 0x0F), Dst: Factor((v >> 4) & 0x0F)}
}
