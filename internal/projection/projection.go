package projection

import (
	"math"

	"wireframe/internal/mathutil"
	"wireframe/internal/transform"
)

// MinW is the smallest |w| accepted for the perspective divide. Points below
// it are dropped from the output.
const MinW = 1e-6

// Params holds the camera lens and target surface.
type Params struct {
	FOV          float64 // vertical, degrees
	Aspect       float64 // width / height
	Near, Far    float64
	ScreenWidth  float64
	ScreenHeight float64
}

// Matrix returns the perspective matrix for p.
func (p Params) Matrix() mathutil.Mat4 {
	return mathutil.Perspective(p.FOV, p.Near, p.Far, p.Aspect)
}

// Project maps camera-space points to screen pixels.
//
// Points with z < Near are clamped onto the near plane first. Points whose
// clip w is within MinW of zero are omitted, so the result can be shorter than
// the input and indices after a dropped point shift down by one.
func Project(mesh transform.Mesh, p Params) []mathutil.Vec2 {
	persp := p.Matrix()
	out := make([]mathutil.Vec2, 0, len(mesh))

	for _, v := range mesh {
		if v[2] < p.Near {
			v[2] = p.Near
		}

		clip := persp.MulVec4(v.Homogeneous())
		w := clip[3]
		if math.Abs(w) < MinW {
			continue
		}
		ndcX := clip[0] / w
		ndcY := clip[1] / w

		out = append(out, mathutil.Vec2{
			(ndcX + 1) / 2 * p.ScreenWidth,
			(1 - ndcY) / 2 * p.ScreenHeight,
		})
	}

	return out
}
