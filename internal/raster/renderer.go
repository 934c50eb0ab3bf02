package raster

import (
	"image"
	"image/color"

	"wireframe/internal/scene"
)

// Style controls how a frame is painted.
type Style struct {
	Background color.NRGBA
	Foreground color.NRGBA
	LineWidth  float64
}

// DefaultStyle is white lines on black.
func DefaultStyle() Style {
	return Style{
		Background: color.NRGBA{0, 0, 0, 255},
		Foreground: color.NRGBA{255, 255, 255, 255},
		LineWidth:  1,
	}
}

// RenderFrame paints the frame's segments onto a new w×h image. Segment
// coordinates are in the frame's own pixel space and are multiplied by
// supersample. It also returns how many segments produced pixels.
func RenderFrame(f scene.Frame, w, h, supersample int, st Style) (*image.NRGBA, int) {
	if supersample < 1 {
		supersample = 1
	}
	ss := float64(supersample)

	c := NewCanvas(w*supersample, h*supersample, st.Background)
	drawn := 0
	for _, seg := range f.Segments {
		a := seg[0]
		b := seg[1]
		a[0], a[1] = a[0]*ss, a[1]*ss
		b[0], b[1] = b[0]*ss, b[1]*ss
		if c.DrawLine(a, b, st.LineWidth*ss, st.Foreground) {
			drawn++
		}
	}

	return c.Img, drawn
}
