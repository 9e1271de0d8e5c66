package burning

import "github.com/gogpu/burning/internal/geom"

// Vector and matrix types shared with the pipeline.
type (
	Vec2 = geom.Vec2
	Vec3 = geom.Vec3
	Vec4 = geom.Vec4

	// Mat4 is a row-major 4x4 matrix transforming column vectors.
	Mat4 = geom.Mat4
)

// V2 returns a Vec2.
func V2(x, y float32) Vec2 { return geom.V2(x, y) }

// V3 returns a Vec3.
func V3(x, y, z float32) Vec3 { return geom.V3(x, y, z) }

// Identity returns the identity matrix.
func Identity() Mat4 { return geom.Identity() }

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 { return geom.Translate(x, y, z) }

// Scale returns a scaling matrix.
func Scale(x, y, z float32) Mat4 { return geom.Scale(x, y, z) }

// RotateX returns a rotation about X by angle radians.
func RotateX(angle float32) Mat4 { return geom.RotateX(angle) }

// RotateY returns a rotation about Y by angle radians.
func RotateY(angle float32) Mat4 { return geom.RotateY(angle) }

// RotateZ returns a rotation about Z by angle radians.
func RotateZ(angle float32) Mat4 { return geom.RotateZ(angle) }

// Perspective returns a right-handed projection into -w <= z <= w.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	return geom.Perspective(fovY, aspect, near, far)
}

// Ortho returns an orthographic projection.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	return geom.Ortho(left, right, bottom, top, near, far)
}

// LookAt returns a right-handed view matrix.
func LookAt(eye, target, up Vec3) Mat4 { return geom.LookAt(eye, target, up) }
