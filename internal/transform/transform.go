// Package transform applies homogeneous matrices to meshes.
//
// Every operation returns a new mesh of the same length and order; the input
// is never modified.
package transform

import (
	"math"

	"wireframe/internal/mathutil"
)

// Mesh is an ordered list of points. Order defines the vertex indices used by
// edge lists.
type Mesh []mathutil.Vec3

// Pivot selects the point a linear transform is applied about.
type Pivot int

const (
	// PivotCentroid moves the mesh centroid to the origin, transforms, and
	// moves it back. Rotating or scaling in place.
	PivotCentroid Pivot = iota
	// PivotOrigin transforms about the coordinate origin. Used to turn the
	// world around the camera.
	PivotOrigin
)

// Centroid returns the componentwise mean of the mesh. An empty mesh yields NaN
// in every component.
func Centroid(m Mesh) mathutil.Vec3 {
	if len(m) == 0 {
		return mathutil.Vec3{math.NaN(), math.NaN(), math.NaN()}
	}
	var sum mathutil.Vec3
	for _, p := range m {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(m)))
}

// Apply multiplies every point by mat about the given pivot.
func Apply(m Mesh, mat mathutil.Mat4, pivot Pivot) Mesh {
	out := make(Mesh, len(m))
	if pivot == PivotOrigin {
		for i, p := range m {
			out[i] = mat.MulPoint(p)
		}
		return out
	}

	c := Centroid(m)
	for i, p := range m {
		out[i] = mat.MulPoint(p.Sub(c)).Add(c)
	}
	return out
}

// Translate moves every point by (tx, ty, tz).
func Translate(m Mesh, tx, ty, tz float64) Mesh {
	return Apply(m, mathutil.Translation(tx, ty, tz), PivotOrigin)
}

// Scale scales about the centroid, so the visual center never moves.
func Scale(m Mesh, sx, sy, sz float64) Mesh {
	return Apply(m, mathutil.Scaling(sx, sy, sz), PivotCentroid)
}

// RotateX pitches the mesh about its centroid. Angle in degrees.
func RotateX(m Mesh, pitch float64) Mesh {
	return Apply(m, mathutil.RotationX(pitch), PivotCentroid)
}

// RotateY yaws the mesh about its centroid. Angle in degrees.
func RotateY(m Mesh, yaw float64) Mesh {
	return Apply(m, mathutil.RotationY(yaw), PivotCentroid)
}

// RotateXY rotates about the centroid by RotationY(yaw) · RotationX(pitch):
// pitch is applied first, then yaw.
func RotateXY(m Mesh, pitch, yaw float64) Mesh {
	rot := mathutil.Mat4Mul(mathutil.RotationY(yaw), mathutil.RotationX(pitch))
	return Apply(m, rot, PivotCentroid)
}

// RotateRelativeToCameraX pitches the mesh about the origin (the camera).
func RotateRelativeToCameraX(m Mesh, pitch float64) Mesh {
	return Apply(m, mathutil.RotationX(pitch), PivotOrigin)
}

// RotateRelativeToCameraY yaws the mesh about the origin (the camera).
func RotateRelativeToCameraY(m Mesh, yaw float64) Mesh {
	return Apply(m, mathutil.RotationY(yaw), PivotOrigin)
}
