package raster

import (
	"image/color"
	"math"
	"testing"

	"wireframe/internal/mathutil"
	"wireframe/internal/scene"
)

var (
	black = color.NRGBA{0, 0, 0, 255}
	white = color.NRGBA{255, 255, 255, 255}
)

func TestNewCanvasIsCleared(t *testing.T) {
	c := NewCanvas(4, 3, black)
	for i := 0; i < len(c.Img.Pix); i += 4 {
		if c.Img.Pix[i] != 0 || c.Img.Pix[i+3] != 255 {
			t.Fatalf("pixel %d = %v, want opaque black", i/4, c.Img.Pix[i:i+4])
		}
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	c := NewCanvas(10, 10, black)
	if !c.DrawLine(mathutil.Vec2{0, 5}, mathutil.Vec2{10, 5}, 2, white) {
		t.Fatalf("DrawLine() = false, want true")
	}
	if r := c.Img.NRGBAAt(5, 5).R; r < 200 {
		t.Fatalf("pixel on line R = %d, want lit", r)
	}
	if r := c.Img.NRGBAAt(5, 0).R; r != 0 {
		t.Fatalf("pixel off line R = %d, want 0", r)
	}
}

func TestDrawLineRejects(t *testing.T) {
	c := NewCanvas(10, 10, black)
	tests := []struct {
		name string
		a, b mathutil.Vec2
	}{
		{"nan", mathutil.Vec2{math.NaN(), 0}, mathutil.Vec2{5, 5}},
		{"inf", mathutil.Vec2{0, 0}, mathutil.Vec2{math.Inf(1), 5}},
		{"zero length", mathutil.Vec2{3, 3}, mathutil.Vec2{3, 3}},
		{"off canvas", mathutil.Vec2{-100, -100}, mathutil.Vec2{-50, -100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c.DrawLine(tt.a, tt.b, 1, white) {
				t.Fatalf("DrawLine(%v, %v) = true, want false", tt.a, tt.b)
			}
		})
	}
}

func TestDrawLineFarEndpointsAreClipped(t *testing.T) {
	c := NewCanvas(10, 10, black)
	if !c.DrawLine(mathutil.Vec2{-1e9, 5}, mathutil.Vec2{1e9, 5}, 2, white) {
		t.Fatalf("DrawLine() = false, want true")
	}
	if r := c.Img.NRGBAAt(9, 5).R; r < 200 {
		t.Fatalf("pixel R = %d, want lit", r)
	}
}

func TestClipSegment(t *testing.T) {
	a, b, ok := clipSegment(mathutil.Vec2{-5, 5}, mathutil.Vec2{15, 5}, 0, 0, 10, 10)
	if !ok {
		t.Fatalf("clipSegment() ok = false, want true")
	}
	if a != (mathutil.Vec2{0, 5}) || b != (mathutil.Vec2{10, 5}) {
		t.Fatalf("clipSegment() = %v, %v, want (0,5), (10,5)", a, b)
	}

	if _, _, ok := clipSegment(mathutil.Vec2{-10, -1}, mathutil.Vec2{20, -1}, 0, 0, 10, 10); ok {
		t.Fatalf("clipSegment() ok = true for line above rect, want false")
	}
}

func TestRenderFrameSupersample(t *testing.T) {
	f := scene.Frame{Segments: []scene.Segment{
		{{0, 2}, {8, 2}},
		{{math.NaN(), 0}, {1, 1}},
	}}
	img, drawn := RenderFrame(f, 8, 4, 2, DefaultStyle())
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Fatalf("bounds = %v, want 16x8", b)
	}
	if drawn != 1 {
		t.Fatalf("drawn = %d, want 1", drawn)
	}
	if r := img.NRGBAAt(8, 4).R; r == 0 {
		t.Fatalf("pixel on scaled line R = 0, want lit")
	}
}
