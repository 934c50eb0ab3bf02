package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"wireframe/internal/mathutil"
)

// DrawLine strokes an anti-aliased line of the given width in pixels.
// It returns false when nothing was drawn: non-finite endpoints, a
// zero-length line, or a line entirely off the canvas.
func (c *Canvas) DrawLine(a, b mathutil.Vec2, width float64, col color.NRGBA) bool {
	if !a.IsFinite() || !b.IsFinite() || width <= 0 {
		return false
	}

	pad := width + 1
	a, b, ok := clipSegment(a, b, -pad, -pad, float64(c.Width)+pad, float64(c.Height)+pad)
	if !ok {
		return false
	}

	dx, dy := b[0]-a[0], b[1]-a[1]
	l := math.Hypot(dx, dy)
	if l < 1e-9 {
		return false
	}
	// Half-width normal.
	nx, ny := -dy/l*width/2, dx/l*width/2

	z := vector.NewRasterizer(c.Width, c.Height)
	z.MoveTo(float32(a[0]+nx), float32(a[1]+ny))
	z.LineTo(float32(b[0]+nx), float32(b[1]+ny))
	z.LineTo(float32(b[0]-nx), float32(b[1]-ny))
	z.LineTo(float32(a[0]-nx), float32(a[1]-ny))
	z.ClosePath()
	z.Draw(c.Img, c.Img.Bounds(), image.NewUniform(col), image.Point{})
	return true
}

// clipSegment clips a–b to the rectangle [x0,x1]×[y0,y1] (Liang–Barsky).
func clipSegment(a, b mathutil.Vec2, x0, y0, x1, y1 float64) (mathutil.Vec2, mathutil.Vec2, bool) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	t0, t1 := 0.0, 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{a[0] - x0, x1 - a[0], a[1] - y0, y1 - a[1]}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return a, b, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return a, b, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return a, b, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	return mathutil.Vec2{a[0] + t0*dx, a[1] + t0*dy},
		mathutil.Vec2{a[0] + t1*dx, a[1] + t1*dy}, true
}
