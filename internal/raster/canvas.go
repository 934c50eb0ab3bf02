package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Canvas is an NRGBA target cleared to an opaque background.
type Canvas struct {
	Width  int
	Height int
	Img    *image.NRGBA
}

// NewCanvas allocates a w×h image filled with bg.
func NewCanvas(w, h int, bg color.NRGBA) *Canvas {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{Width: w, Height: h, Img: img}
}
