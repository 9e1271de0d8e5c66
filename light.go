package burning

// LightType selects the light model.
type LightType uint8

const (
	LightDirectional LightType = iota
	LightPoint
	LightSpot
)

func (t LightType) String() string {
	switch t {
	case LightDirectional:
		return "Directional"
	case LightPoint:
		return "Point"
	case LightSpot:
		return "Spot"
	}
	return "Unknown"
}

// Light is a dynamic per-vertex light, given in world space.
type Light struct {
	Type LightType

	// Position is used by point and spot lights.
	Position Vec3
	// Direction points from the light into the scene. Used by directional
	// and spot lights.
	Direction Vec3

	Ambient  ColorF
	Diffuse  ColorF
	Specular ColorF

	// Radius limits the reach of point and spot lights. Zero is unlimited.
	Radius float32

	// Attenuation holds the constant, linear and quadratic factors.
	Attenuation Vec3

	// InnerCone and OuterCone are spot half-angles in radians.
	InnerCone float32
	OuterCone float32
	Falloff   float32
}

// NewPointLight returns a white point light with constant attenuation.
func NewPointLight(pos Vec3, diffuse ColorF, radius float32) Light {
	return Light{
		Type:        LightPoint,
		Position:    pos,
		Diffuse:     diffuse,
		Specular:    RGB(1, 1, 1),
		Radius:      radius,
		Attenuation: V3(1, 0, 0),
	}
}

// NewDirectionalLight returns a directional light shining along dir.
func NewDirectionalLight(dir Vec3, diffuse ColorF) Light {
	return Light{
		Type:        LightDirectional,
		Direction:   dir.Normalize(),
		Diffuse:     diffuse,
		Specular:    RGB(1, 1, 1),
		Attenuation: V3(1, 0, 0),
	}
}
