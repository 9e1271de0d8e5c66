package burning

import "errors"

var (
	// ErrInvalidSize is returned for a zero or negative render size.
	ErrInvalidSize = errors.New("burning: invalid size")

	// ErrNilImage is returned when a texture is created from a nil image.
	ErrNilImage = errors.New("burning: nil image")

	// ErrNotRenderTarget is returned when SetRenderTarget is given a
	// texture that was not created with AddRenderTargetTexture.
	ErrNotRenderTarget = errors.New("burning: texture is not a render target")

	// ErrUnsupportedFormat is returned for a back-buffer format the span
	// fillers cannot write.
	ErrUnsupportedFormat = errors.New("burning: unsupported color format")

	// ErrSceneActive is returned by BeginScene when the previous scene was
	// not ended.
	ErrSceneActive = errors.New("burning: scene in progress")
)
