// Package raster provides the in-memory frame buffer the clock is drawn into.
//
// A Surface wraps a gg drawing context over a fixed-size RGBA image. Drawing
// is limited to what the clock needs: clearing the whole buffer and stroking
// straight line segments with square caps.
package raster

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/mrz1836/clockface/internal/errors"
	"github.com/mrz1836/clockface/internal/geom"
)

// Common colors.
//
//nolint:gochecknoglobals // immutable color values
var (
	Black = color.RGBA{A: 0xff}
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Surface is a drawable RGBA frame buffer.
type Surface struct {
	img *image.RGBA
	dc  *gg.Context
}

// New allocates a width x height surface cleared to black.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(errors.ErrValueOutOfRange,
			"surface size must be positive, got %dx%d", width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	s := &Surface{img: img, dc: gg.NewContextForRGBA(img)}
	s.Fill(Black)
	return s, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.dc.Width()
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.dc.Height()
}

// Center returns the midpoint of the surface.
func (s *Surface) Center() geom.Vec2 {
	return geom.V(float64(s.Width())/2, float64(s.Height())/2)
}

// Image exposes the underlying buffer. Callers must not retain it across frames.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Fill sets every pixel to c.
func (s *Surface) Fill(c color.RGBA) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

// Line strokes the segment from..to with square caps width pixels wide.
// Widths below 1 are drawn as 1. Pixels outside the surface are clipped.
func (s *Surface) Line(from, to geom.Vec2, c color.RGBA, width int) {
	if width < 1 {
		width = 1
	}
	w := float64(width)

	// Odd widths are centered on pixel centers so the stroke stays crisp.
	off := 0.0
	if width%2 == 1 {
		off = 0.5
	}

	s.dc.SetColor(c)
	if from == to {
		s.dc.DrawRectangle(from.X+off-w/2, from.Y+off-w/2, w, w)
		s.dc.Fill()
		return
	}
	s.dc.SetLineWidth(w)
	s.dc.SetLineCapSquare()
	s.dc.DrawLine(from.X+off, from.Y+off, to.X+off, to.Y+off)
	s.dc.Stroke()
}

// WritePNG encodes the current frame as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return errors.Wrap(err, "failed to encode png")
	}
	return nil
}
