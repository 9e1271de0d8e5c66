package burning

import "fmt"

// VertexType names which Vertex fields a stream carries.
type VertexType uint8

const (
	// VertexStandard uses Pos, Normal, Color and TCoords.
	VertexStandard VertexType = iota
	// Vertex2TCoords adds TCoords2.
	Vertex2TCoords
	// VertexTangents adds Tangent and Binormal for normal mapping.
	VertexTangents
)

func (t VertexType) String() string {
	switch t {
	case VertexStandard:
		return "Standard"
	case Vertex2TCoords:
		return "2TCoords"
	case VertexTangents:
		return "Tangents"
	default:
		return fmt.Sprintf("VertexType(%d)", uint8(t))
	}
}

// Vertex is one application vertex.
type Vertex struct {
	Pos     Vec3
	Normal  Vec3
	Color   Color
	TCoords Vec2

	// TCoords2 is read for Vertex2TCoords.
	TCoords2 Vec2

	// Tangent and Binormal are read for VertexTangents.
	Tangent  Vec3
	Binormal Vec3
}

// PrimitiveType selects how an index stream is assembled.
type PrimitiveType uint8

const (
	Points PrimitiveType = iota
	LineStrip
	LineLoop
	Lines
	TriangleStrip
	TriangleFan
	Triangles
	Polygon
)

var primitiveNames = [...]string{
	"Points", "LineStrip", "LineLoop", "Lines",
	"TriangleStrip", "TriangleFan", "Triangles", "Polygon",
}

func (p PrimitiveType) String() string {
	if int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}
	return fmt.Sprintf("PrimitiveType(%d)", uint8(p))
}

// PrimitiveCount returns how many primitives n indices form.
func (p PrimitiveType) PrimitiveCount(n int) int {
	var c int
	switch p {
	case Points, LineLoop:
		c = n
	case LineStrip:
		c = n - 1
	case Lines:
		c = n / 2
	case TriangleStrip, TriangleFan, Polygon:
		c = n - 2
	case Triangles:
		c = n / 3
	}
	if p == LineLoop && n < 2 {
		c = 0
	}
	return max(c, 0)
}

// Indices is an index stream of 16- or 32-bit entries.
type Indices interface {
	Len() int
	At(i int) int
}

// Indices16 is a 16-bit index stream.
type Indices16 []uint16

func (s Indices16) Len() int     { return len(s) }
func (s Indices16) At(i int) int { return int(s[i]) }

// Indices32 is a 32-bit index stream.
type Indices32 []uint32

func (s Indices32) Len() int     { return len(s) }
func (s Indices32) At(i int) int { return int(s[i]) }

// sequential addresses vertices in order.
type sequential int

func (s sequential) Len() int     { return int(s) }
func (s sequential) At(i int) int { return i }
