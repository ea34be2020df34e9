package testutil

import (
	"image"
	"image/color"
)

// Pixel returns the pixel at (x, y), or transparent black outside img.
func Pixel(img *image.RGBA, x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return color.RGBA{}
	}
	return img.RGBAAt(x, y)
}

// CountNot returns the number of pixels in img that differ from bg.
func CountNot(img *image.RGBA, bg color.RGBA) int {
	n := 0
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				n++
			}
		}
	}
	return n
}
