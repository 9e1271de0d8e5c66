package shader

import (
	"fmt"

	"github.com/gogpu/burning/internal/raster"
)

// Kind selects the per-pixel combine operation.
type Kind uint8

// Shader kinds. The NoZ variants neither test nor write depth and serve 2D
// overlay drawing.
const (
	Gouraud Kind = iota
	GouraudNoZ
	GouraudAlpha
	GouraudAlphaNoZ
	TextureFlat
	TextureGouraud
	TextureGouraudNoZ
	TextureGouraudAdd
	TextureGouraudAddNoZ
	TextureGouraudAlpha
	TextureGouraudAlphaNoZ
	TextureGouraudAlphaRef
	TextureVertexAlpha
	LightMapM1
	LightMapM2
	LightMapM4
	LightMapAdd
	LightMapGouraudM2
	LightMapGouraudM4
	DetailMap
	NormalMap
	TextureBlend
	StencilShadow
	Wire
	Point

	kindCount
)

const (
	attrsGouraud  = raster.AttrW | raster.AttrColor
	attrsTex      = raster.AttrW | raster.AttrTex0
	attrsTexColor = raster.AttrW | raster.AttrColor | raster.AttrTex0
	attrsTwoTex   = raster.AttrW | raster.AttrTex0 | raster.AttrTex1
	attrsTwoColor = attrsTwoTex | raster.AttrColor
)

type kindInfo struct {
	name     string
	attribs  raster.Attribs
	frag     fragFunc
	textures int
	noZ      bool
}

var kinds = [kindCount]kindInfo{
	Gouraud:                {"Gouraud", attrsGouraud, fragGouraud, 0, false},
	GouraudNoZ:             {"GouraudNoZ", attrsGouraud, fragGouraud, 0, true},
	GouraudAlpha:           {"GouraudAlpha", attrsGouraud, fragGouraudAlpha, 0, false},
	GouraudAlphaNoZ:        {"GouraudAlphaNoZ", attrsGouraud, fragGouraudAlpha, 0, true},
	TextureFlat:            {"TextureFlat", attrsTex, fragTextureFlat, 1, false},
	TextureGouraud:         {"TextureGouraud", attrsTexColor, fragTextureGouraud, 1, false},
	TextureGouraudNoZ:      {"TextureGouraudNoZ", attrsTexColor, fragTextureGouraud, 1, true},
	TextureGouraudAdd:      {"TextureGouraudAdd", attrsTexColor, fragTextureGouraudAdd, 1, false},
	TextureGouraudAddNoZ:   {"TextureGouraudAddNoZ", attrsTexColor, fragTextureGouraudAdd, 1, true},
	TextureGouraudAlpha:    {"TextureGouraudAlpha", attrsTexColor, fragTextureGouraudAlpha, 1, false},
	TextureGouraudAlphaNoZ: {"TextureGouraudAlphaNoZ", attrsTexColor, fragTextureGouraudAlpha, 1, true},
	TextureGouraudAlphaRef: {"TextureGouraudAlphaRef", attrsTexColor, fragTextureGouraudAlphaRef, 1, false},
	TextureVertexAlpha:     {"TextureVertexAlpha", attrsTexColor, fragTextureVertexAlpha, 1, false},
	LightMapM1:             {"LightMapM1", attrsTwoTex, fragLightMapM1, 2, false},
	LightMapM2:             {"LightMapM2", attrsTwoTex, fragLightMapM2, 2, false},
	LightMapM4:             {"LightMapM4", attrsTwoTex, fragLightMapM4, 2, false},
	LightMapAdd:            {"LightMapAdd", attrsTwoTex, fragLightMapAdd, 2, false},
	LightMapGouraudM2:      {"LightMapGouraudM2", attrsTwoColor, fragLightMapGouraudM2, 2, false},
	LightMapGouraudM4:      {"LightMapGouraudM4", attrsTwoColor, fragLightMapGouraudM4, 2, false},
	DetailMap:              {"DetailMap", attrsTwoTex, fragDetailMap, 2, false},
	NormalMap:              {"NormalMap", attrsTwoColor | raster.AttrTangent, fragNormalMap, 2, false},
	TextureBlend:           {"TextureBlend", attrsTexColor, fragTextureBlend, 1, false},
	StencilShadow:          {"StencilShadow", raster.AttrW, nil, 0, false},
	Wire:                   {"Wire", attrsTexColor, nil, 1, false},
	Point:                  {"Point", attrsTexColor, nil, 1, false},
}

func (k Kind) String() string {
	if k < kindCount {
		return kinds[k].name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Attribs returns the interpolants the kind reads.
func (k Kind) Attribs() raster.Attribs {
	if k < kindCount {
		return kinds[k].attribs
	}
	return raster.AttrW
}

// Textures returns how many texture stages the kind samples.
func (k Kind) Textures() int {
	if k < kindCount {
		return kinds[k].textures
	}
	return 0
}

// NoZ reports whether the kind skips depth testing and writing.
func (k Kind) NoZ() bool {
	return k < kindCount && kinds[k].noZ
}
