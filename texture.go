package burning

import (
	"fmt"
	stdimage "image"
	"log/slog"

	"github.com/gogpu/burning/internal/image"
	"github.com/gogpu/burning/internal/shader"
)

// Texture is a power-of-two A8R8G8B8 image with an optional mip chain.
// Images of other sizes are rescaled on creation.
type Texture struct {
	name         string
	chain        *image.MipmapChain
	origW, origH int
	renderTarget bool
}

// NewTextureFromImage creates a texture from any standard image. Sides
// that are not powers of two are rescaled bilinearly to the next power of
// two. With mipmaps set the box-filtered chain down to 1x1 is built.
func NewTextureFromImage(name string, img stdimage.Image, mipmaps bool) (*Texture, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	buf, err := image.FromStdImage(img, image.FormatA8R8G8B8)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", name, err)
	}
	return newTexture(name, buf, mipmaps)
}

// LoadTexture decodes a PNG or JPEG file into a texture.
func LoadTexture(path string, mipmaps bool) (*Texture, error) {
	buf, err := image.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("load texture: %w", err)
	}
	if buf.Format() != image.FormatA8R8G8B8 {
		if buf, err = buf.Convert(image.FormatA8R8G8B8); err != nil {
			return nil, fmt.Errorf("load texture %s: %w", path, err)
		}
	}
	return newTexture(path, buf, mipmaps)
}

func newTexture(name string, buf *image.ImageBuf, mipmaps bool) (*Texture, error) {
	w, h := buf.Dimension()
	t := &Texture{name: name, origW: w, origH: h}

	pw, ph := image.NextPowerOfTwo(w), image.NextPowerOfTwo(h)
	if pw != w || ph != h {
		Logger().Warn("texture resized to power of two",
			slog.String("name", name),
			slog.Int("width", w), slog.Int("height", h),
			slog.Int("pot_width", pw), slog.Int("pot_height", ph))
		var err error
		if buf, err = buf.Resize(pw, ph); err != nil {
			return nil, fmt.Errorf("texture %q: %w", name, err)
		}
	}

	if mipmaps {
		t.chain = image.GenerateMipmaps(buf)
	} else {
		t.chain = image.Single(buf)
	}
	return t, nil
}

// newRenderTargetTexture allocates a cleared texture the driver can draw
// into.
func newRenderTargetTexture(name string, width, height int, mipmaps bool) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	buf, err := image.NewImageBuf(image.NextPowerOfTwo(width), image.NextPowerOfTwo(height), image.FormatA8R8G8B8)
	if err != nil {
		return nil, fmt.Errorf("render target %q: %w", name, err)
	}
	t, err := newTexture(name, buf, mipmaps)
	if err != nil {
		return nil, err
	}
	t.origW, t.origH = width, height
	t.renderTarget = true
	return t, nil
}

// Name returns the name the texture was created with.
func (t *Texture) Name() string { return t.name }

// Size returns the stored power-of-two size.
func (t *Texture) Size() (int, int) { return t.chain.Level(0).Dimension() }

// OriginalSize returns the size of the source image.
func (t *Texture) OriginalSize() (int, int) { return t.origW, t.origH }

// MipLevels returns the number of levels, 1 without mip maps.
func (t *Texture) MipLevels() int { return t.chain.NumLevels() }

// Bytes returns the memory held by all mip levels.
func (t *Texture) Bytes() int {
	n := 0
	for i := range t.chain.NumLevels() {
		n += t.chain.Level(i).ByteSize()
	}
	return n
}

// IsRenderTarget reports whether the driver can render into t.
func (t *Texture) IsRenderTarget() bool { return t.renderTarget }

// RegenerateMipMaps rebuilds the chain from level 0 after the base image
// changed.
func (t *Texture) RegenerateMipMaps() { t.chain.Regenerate() }

// Image returns a copy of level 0.
func (t *Texture) Image() *stdimage.RGBA { return t.base().ToRGBA() }

func (t *Texture) base() *image.ImageBuf { return t.chain.Level(0) }

// view returns the sampler for level, clamped to the chain.
func (t *Texture) view(level int, bilinear bool) (shader.TextureView, bool) {
	level = min(max(level, 0), t.chain.NumLevels()-1)
	return shader.NewTextureView(t.chain.Level(level), level, bilinear)
}
