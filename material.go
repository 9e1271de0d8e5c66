package burning

import (
	"fmt"

	"github.com/gogpu/burning/internal/blend"
	"github.com/gogpu/burning/internal/shader"
)

// MaterialType selects how the texture stages and vertex color combine.
type MaterialType uint8

const (
	// Solid modulates texture 0 with the vertex color, or draws the vertex
	// color alone when no texture is bound. Unlit without ColorMaterial it
	// draws texture 0 alone.
	Solid MaterialType = iota
	// Solid2Layer blends texture 0 over the destination by vertex alpha.
	Solid2Layer
	// LightMap multiplies texture 0 by texture 1.
	LightMap
	// LightMapAdd adds texture 1 to texture 0.
	LightMapAdd
	// LightMapM2 multiplies and doubles.
	LightMapM2
	// LightMapM4 multiplies and quadruples.
	LightMapM4
	// LightMapLighting adds the vertex color to the light map before a
	// doubled multiply.
	LightMapLighting
	LightMapLightingM2
	LightMapLightingM4
	// DetailMap adds texture 1 around mid grey.
	DetailMap
	// SphereMap generates texture 0 coordinates from the eye-space normal.
	SphereMap
	// Reflection2Layer multiplies texture 0 by a reflection-mapped texture 1.
	Reflection2Layer
	TransparentAddColor
	TransparentAlphaChannel
	// TransparentAlphaChannelRef discards texels below MaterialTypeParam.
	TransparentAlphaChannelRef
	TransparentVertexAlpha
	TransparentReflection2Layer
	// NormalMap lights texture 0 with the tangent-space normal in texture 1.
	NormalMap
	// OneTextureBlend blends texture 0 with the factors packed in
	// MaterialTypeParam by PackBlendFunc.
	OneTextureBlend

	materialTypeCount
)

var materialNames = [materialTypeCount]string{
	"Solid", "Solid2Layer", "LightMap", "LightMapAdd", "LightMapM2",
	"LightMapM4", "LightMapLighting", "LightMapLightingM2",
	"LightMapLightingM4", "DetailMap", "SphereMap", "Reflection2Layer",
	"TransparentAddColor", "TransparentAlphaChannel",
	"TransparentAlphaChannelRef", "TransparentVertexAlpha",
	"TransparentReflection2Layer", "NormalMap", "OneTextureBlend",
}

func (t MaterialType) String() string {
	if t < materialTypeCount {
		return materialNames[t]
	}
	return fmt.Sprintf("MaterialType(%d)", uint8(t))
}

// ParseMaterialType looks a type up by its String name.
func ParseMaterialType(name string) (MaterialType, bool) {
	for i, n := range materialNames {
		if n == name {
			return MaterialType(i), true
		}
	}
	return Solid, false
}

// Transparent reports whether the type blends with the destination.
func (t MaterialType) Transparent() bool {
	switch t {
	case TransparentAddColor, TransparentAlphaChannel, TransparentVertexAlpha,
		TransparentReflection2Layer, OneTextureBlend:
		return true
	}
	return false
}

// CompareFunc is a depth comparison.
type CompareFunc = shader.CompareFunc

// Depth comparisons.
const (
	CompareNever        = shader.CompareNever
	CompareLessEqual    = shader.CompareLessEqual
	CompareEqual        = shader.CompareEqual
	CompareLess         = shader.CompareLess
	CompareNotEqual     = shader.CompareNotEqual
	CompareGreaterEqual = shader.CompareGreaterEqual
	CompareGreater      = shader.CompareGreater
	CompareAlways       = shader.CompareAlways
)

// BlendFactor is a fixed-function blend factor for OneTextureBlend.
type BlendFactor = blend.Factor

// Blend factors.
const (
	BlendZero             = blend.Zero
	BlendOne              = blend.One
	BlendDstColor         = blend.DstColor
	BlendOneMinusDstColor = blend.OneMinusDstColor
	BlendSrcColor         = blend.SrcColor
	BlendOneMinusSrcColor = blend.OneMinusSrcColor
	BlendSrcAlpha         = blend.SrcAlpha
	BlendOneMinusSrcAlpha = blend.OneMinusSrcAlpha
	BlendDstAlpha         = blend.DstAlpha
	BlendOneMinusDstAlpha = blend.OneMinusDstAlpha
	BlendSrcAlphaSaturate = blend.SrcAlphaSaturate
)

// PackBlendFunc encodes a factor pair as a MaterialTypeParam.
func PackBlendFunc(src, dst BlendFactor) float32 {
	return blend.Pair{Src: src, Dst: dst}.Pack()
}

// MaxTextureStages is the number of texture stages a material binds.
const MaxTextureStages = 2

// Material is the render state applied to subsequent draws.
type Material struct {
	Type MaterialType

	AmbientColor  ColorF
	DiffuseColor  ColorF
	EmissiveColor ColorF
	SpecularColor ColorF
	Shininess     float32

	Textures [MaxTextureStages]*Texture

	Wireframe      bool
	PointCloud     bool
	GouraudShading bool
	Lighting       bool
	ZWriteEnable   bool
	ZBuffer        CompareFunc

	BackfaceCulling  bool
	FrontfaceCulling bool
	BilinearFilter   bool

	// ColorMaterial takes the ambient and diffuse colors from the vertex
	// color when lighting. An unlit textured Solid material without it
	// ignores vertex colors and draws the texture unmodulated.
	ColorMaterial bool

	// MaterialTypeParam is the alpha reference of
	// TransparentAlphaChannelRef or the packed factors of OneTextureBlend.
	MaterialTypeParam float32
}

// NewMaterial returns an opaque, unlit Solid material with depth testing,
// depth writes and back-face culling enabled.
func NewMaterial() Material {
	return Material{
		Type:            Solid,
		AmbientColor:    RGB(1, 1, 1),
		DiffuseColor:    RGB(1, 1, 1),
		EmissiveColor:   ColorF{A: 1},
		SpecularColor:   RGB(1, 1, 1),
		GouraudShading:  true,
		ZWriteEnable:    true,
		ZBuffer:         CompareLessEqual,
		BackfaceCulling: true,
		BilinearFilter:  true,
		ColorMaterial:   true,
	}
}

// texgen is a texture coordinate generator bound to one stage.
type texgen uint8

const (
	texgenNone texgen = iota
	texgenSphere
	texgenReflection
)

// pipelineState is what a material resolves to for one draw.
type pipelineState struct {
	kind   shader.Kind
	stages int
	gen    [MaxTextureStages]texgen
}

// resolve maps the material to a shader kind, the texture stages the kind
// samples and the coordinate generators. noZ selects the depthless variant
// where one exists.
func (m *Material) resolve() pipelineState {
	noZ := m.ZBuffer == CompareAlways && !m.ZWriteEnable
	pick := func(k, kNoZ shader.Kind) shader.Kind {
		if noZ {
			return kNoZ
		}
		return k
	}

	var st pipelineState
	switch m.Type {
	case Solid, SphereMap:
		if m.Textures[0] == nil {
			st.kind = pick(shader.Gouraud, shader.GouraudNoZ)
		} else if m.Type == Solid && !noZ && !m.Lighting && !m.ColorMaterial {
			st.kind = shader.TextureFlat
		} else {
			st.kind = pick(shader.TextureGouraud, shader.TextureGouraudNoZ)
		}
		if m.Type == SphereMap {
			st.gen[0] = texgenSphere
		}
	case Solid2Layer, TransparentVertexAlpha:
		st.kind = shader.TextureVertexAlpha
	case TransparentReflection2Layer:
		st.kind = shader.TextureVertexAlpha
		st.gen[0] = texgenReflection
	case LightMap:
		st.kind = shader.LightMapM1
	case Reflection2Layer:
		st.kind = shader.LightMapM1
		st.gen[1] = texgenReflection
	case LightMapAdd:
		st.kind = shader.LightMapAdd
	case LightMapM2:
		st.kind = shader.LightMapM2
	case LightMapM4:
		st.kind = shader.LightMapM4
	case LightMapLighting, LightMapLightingM2:
		st.kind = shader.LightMapGouraudM2
	case LightMapLightingM4:
		st.kind = shader.LightMapGouraudM4
	case DetailMap:
		st.kind = shader.DetailMap
	case TransparentAddColor:
		st.kind = pick(shader.TextureGouraudAdd, shader.TextureGouraudAddNoZ)
	case TransparentAlphaChannel:
		st.kind = pick(shader.TextureGouraudAlpha, shader.TextureGouraudAlphaNoZ)
	case TransparentAlphaChannelRef:
		st.kind = shader.TextureGouraudAlphaRef
	case NormalMap:
		st.kind = shader.NormalMap
	case OneTextureBlend:
		st.kind = shader.TextureBlend
	default:
		st.kind = pick(shader.Gouraud, shader.GouraudNoZ)
	}

	if m.Type == TransparentAlphaChannel && m.Textures[0] == nil {
		st.kind = pick(shader.GouraudAlpha, shader.GouraudAlphaNoZ)
	}

	switch {
	case m.PointCloud:
		st.kind = shader.Point
	case m.Wireframe:
		st.kind = shader.Wire
	}
	st.stages = st.kind.Textures()
	return st
}
