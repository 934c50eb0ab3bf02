package mathutil

import "math"

// Translation returns the identity with (tx, ty, tz, 1) as the last column.
func Translation(tx, ty, tz float64) Mat4 {
	return Mat4{
		1, 0, 0, tx,
		0, 1, 0, ty,
		0, 0, 1, tz,
		0, 0, 0, 1,
	}
}

// Scaling returns diag(sx, sy, sz, 1). Zero and negative factors are allowed.
func Scaling(sx, sy, sz float64) Mat4 {
	return Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

// RotationX returns a rotation around the X axis. Angle in degrees.
func RotationX(pitch float64) Mat4 {
	c, s := math.Cos(Deg2Rad(pitch)), math.Sin(Deg2Rad(pitch))
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns a rotation around the Y axis. Angle in degrees.
func RotationY(yaw float64) Mat4 {
	c, s := math.Cos(Deg2Rad(yaw)), math.Sin(Deg2Rad(yaw))
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Perspective builds a projection for a camera looking down +Z, so clip w
// equals the camera-space z. fov is the vertical field of view in degrees,
// aspect is width/height.
//
// near == far or a fov that is a multiple of 360° yields Inf/NaN entries.
func Perspective(fov, near, far, aspect float64) Mat4 {
	f := 1 / math.Tan(Deg2Rad(fov)/2)
	nf := 1 / (far - near)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -2 * far * near * nf,
		0, 0, 1, 0,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
