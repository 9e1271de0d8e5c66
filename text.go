package burning

import (
	stdimage "image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/burning/internal/image"
)

// overlayFace is the fixed-size bitmap face used for text overlays.
var overlayFace font.Face = basicfont.Face7x13

// clippedTarget narrows the bounds of a render target so glyph drawing
// stays inside the clip rectangle.
type clippedTarget struct {
	*image.ImageBuf
	clip stdimage.Rectangle
}

func (c clippedTarget) Bounds() stdimage.Rectangle { return c.clip }

// DrawText draws s with its top-left corner at pos in a 7x13 bitmap font.
// Newlines start a new line.
func (d *Driver) DrawText(s string, pos stdimage.Point, c Color) {
	clip := d.shader.Clip()
	if clip.Empty() || s == "" {
		return
	}
	m := overlayFace.Metrics()
	dr := &font.Drawer{
		Dst:  clippedTarget{ImageBuf: d.target, clip: clip},
		Src:  stdimage.NewUniform(c),
		Face: overlayFace,
	}
	y := pos.Y + m.Ascent.Ceil()
	start := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != '\n' {
			continue
		}
		dr.Dot = fixed.P(pos.X, y)
		dr.DrawString(s[start:i])
		y += m.Height.Ceil()
		start = i + 1
	}
}

// TextSize returns the size DrawText covers for a single line of s.
func TextSize(s string) (width, height int) {
	return font.MeasureString(overlayFace, s).Ceil(), overlayFace.Metrics().Height.Ceil()
}
