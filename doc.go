// Package burning is a CPU-only 3D renderer: it transforms, lights, clips
// and rasterizes indexed triangle, line and point streams into an
// off-screen color buffer without any GPU.
//
// # Quick Start
//
//	d, err := burning.NewDriver(640, 480)
//	if err != nil {
//		log.Fatal(err)
//	}
//	d.SetTransform(burning.TransformProjection, burning.Perspective(1, 4.0/3, 0.1, 100))
//	d.SetTransform(burning.TransformView, burning.LookAt(eye, target, up))
//
//	d.BeginScene(true, true, burning.ColorFromARGB(255, 32, 32, 48))
//	m := burning.NewMaterial()
//	m.Textures[0] = tex
//	d.SetMaterial(m)
//	d.DrawIndexedTriangleList(vertices, burning.Indices16(indices))
//	d.EndScene()
//
//	png.Encode(f, d.Image())
//
// # Pipeline
//
// Every DrawVertexPrimitiveList call runs the same fixed stages:
//   - a 16-entry vertex cache transforms each referenced vertex once,
//   - each primitive is tested against the view frustum and rejected,
//     drawn directly or clipped in homogeneous space,
//   - surviving vertices are lit, texture-generated and projected,
//   - per triangle a mip level is chosen from the texel to screen area
//     ratio,
//   - the scan converter walks the triangle and the material's span filler
//     tests depth, samples, combines and writes every covered pixel.
//
// Depth is a w-buffer holding 1/w: 0 is far, larger is nearer.
//
// # Coordinate System
//
// Clip space follows the OpenGL convention, -w <= x, y, z <= w. Device
// coordinates have the origin at the top-left pixel corner with y growing
// down. Counter-clockwise triangles in normalized device coordinates face
// the viewer.
//
// # Concurrency
//
// A Driver is single-threaded: all drawing happens synchronously on the
// calling goroutine and a Driver must not be used from two goroutines at
// once. SetLogger and Logger are safe for concurrent use.
package burning

// Version is the current version of the library.
const Version = "0.3.0"
