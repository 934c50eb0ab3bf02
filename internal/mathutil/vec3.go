package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float64

// Vec4 is a homogeneous vector (x, y, z, w).
type Vec4 [4]float64

// Vec2 is a screen-space point in pixels.
type Vec2 [2]float64

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Homogeneous lifts v to (x, y, z, 1).
func (v Vec3) Homogeneous() Vec4 {
	return Vec4{v[0], v[1], v[2], 1}
}

// XYZ drops the w component without dividing.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// ApproxEqual reports whether every component of a and b differs by at most eps.
func (a Vec3) ApproxEqual(b Vec3, eps float64) bool {
	for k := 0; k < 3; k++ {
		if math.Abs(a[k]-b[k]) > eps {
			return false
		}
	}
	return true
}

// IsFinite is false if any component is NaN or ±Inf.
func (p Vec2) IsFinite() bool {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
