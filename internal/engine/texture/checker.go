// Package texture generates the procedural images objects are textured with.
package texture

import (
	"image"
	"image/color"
)

var (
	yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	blue   = color.RGBA{B: 255, A: 255}
)

// Checker returns a width by height checkerboard, yellow where the cell
// parities differ and blue where they agree. The cells are texels; the
// renderer samples them unfiltered.
func Checker(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x&1)^(y&1) != 0 {
				img.SetRGBA(x, y, yellow)
			} else {
				img.SetRGBA(x, y, blue)
			}
		}
	}
	return img
}
