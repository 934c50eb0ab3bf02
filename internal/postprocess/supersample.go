package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales a supersampled frame down to w×h with CatmullRom
// filtering. Frames are opaque, so no alpha premultiplication is needed.
// Images already at or below the target size are returned as-is.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	// Keep the frame opaque.
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 255
	}
	return dst
}
