package shader

// CompareFunc is a depth comparison. The names follow the usual z-buffer
// meaning ("Less" passes a nearer fragment); on the w-buffer nearer means a
// larger 1/w.
type CompareFunc uint8

const (
	CompareNever CompareFunc = iota
	CompareLessEqual
	CompareEqual
	CompareLess
	CompareNotEqual
	CompareGreaterEqual
	CompareGreater
	CompareAlways
)

var compareNames = [...]string{
	"Never", "LessEqual", "Equal", "Less", "NotEqual", "GreaterEqual", "Greater", "Always",
}

func (c CompareFunc) String() string {
	if int(c) < len(compareNames) {
		return compareNames[c]
	}
	return "Unknown"
}

// depthPass reports whether a fragment with 1/w iw passes against the
// stored value.
func depthPass(c CompareFunc, iw, stored float32) bool {
	switch c {
	case CompareLessEqual:
		return iw >= stored
	case CompareEqual:
		return iw == stored
	case CompareLess:
		return iw > stored
	case CompareNotEqual:
		return iw != stored
	case CompareGreaterEqual:
		return iw <= stored
	case CompareGreater:
		return iw < stored
	case CompareAlways:
		return true
	default:
		return false
	}
}
