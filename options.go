package burning

import "log/slog"

// Option configures a Driver during creation.
//
// Example:
//
//	d, err := burning.NewDriver(320, 240,
//		burning.WithColorFormat(burning.FormatR5G6B5),
//		burning.WithMipMaps(false))
type Option func(*options)

type options struct {
	format      ColorFormat
	logger      *slog.Logger
	perspective bool
	mipmaps     bool
	stencil     bool
	texBudget   int
}

func defaultOptions() options {
	return options{
		format:      FormatA8R8G8B8,
		perspective: true,
		mipmaps:     true,
		stencil:     true,
		texBudget:   64 << 20,
	}
}

// WithColorFormat selects the back-buffer pixel format. The span fillers
// write A8R8G8B8, A1R5G5B5 and R5G6B5.
func WithColorFormat(f ColorFormat) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithLogger installs l as the package logger, as SetLogger does.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithPerspectiveCorrection enables or disables perspective-correct
// interpolation of colors and texture coordinates. Enabled by default.
func WithPerspectiveCorrection(on bool) Option {
	return func(o *options) {
		o.perspective = on
	}
}

// WithMipMaps controls whether textures created by the driver get a mip
// chain. Enabled by default.
func WithMipMaps(on bool) Option {
	return func(o *options) {
		o.mipmaps = on
	}
}

// WithStencil controls whether the driver allocates a stencil buffer for
// shadow volumes. Enabled by default.
func WithStencil(on bool) Option {
	return func(o *options) {
		o.stencil = on
	}
}

// WithTextureBudget sets how many bytes of textures the driver keeps by
// name. Least recently used textures are forgotten beyond it. 0 keeps
// every texture.
func WithTextureBudget(bytes int) Option {
	return func(o *options) {
		o.texBudget = max(bytes, 0)
	}
}
