// Package geom provides the 2D vector math used to place clock hands.
//
// Coordinates follow the screen convention: x grows to the right and y grows
// downward, so a positive rotation angle turns a vector clockwise.
package geom

import "math"

// Vec2 is a 2D vector or point.
type Vec2 struct {
	X float64
	Y float64
}

// Up is the unit vector pointing to 12 o'clock on screen.
//
//nolint:gochecknoglobals // immutable value
var Up = Vec2{X: 0, Y: -1}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotate returns v rotated by deg degrees using the standard rotation matrix.
// With y pointing down this turns clockwise on screen.
func (v Vec2) Rotate(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}
