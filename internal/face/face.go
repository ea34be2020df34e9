// Package face draws the three hands of an analog clock.
//
// Hands rotate clockwise from 12 o'clock. The hour hand completes one turn
// per day (a 24-hour dial), not per twelve hours.
package face

import (
	"image/color"
	"math"
	"time"

	"github.com/mrz1836/clockface/internal/constants"
	"github.com/mrz1836/clockface/internal/geom"
)

// Canvas is the drawing surface a Clock renders into.
type Canvas interface {
	Line(from, to geom.Vec2, c color.RGBA, width int)
}

// HandKind identifies one of the three hands.
type HandKind string

// Hand kinds, in draw order.
const (
	HandSecond HandKind = "second"
	HandMinute HandKind = "minute"
	HandHour   HandKind = "hour"
)

// Hand is one computed line segment, ready to draw.
type Hand struct {
	Kind  HandKind
	From  geom.Vec2
	To    geom.Vec2
	Width int
	Color color.RGBA
}

// Vector returns the hand's offset from the clock center.
func (h Hand) Vector() geom.Vec2 {
	return h.To.Sub(h.From)
}

// Length returns the hand length in pixels.
func (h Hand) Length() float64 {
	return h.Vector().Len()
}

// Clock is an immutable clock face description.
type Clock struct {
	HandColor color.RGBA
	Center    geom.Vec2
	Size      float64
}

// New returns a Clock centered at center with radius size.
func New(center geom.Vec2, size float64, handColor color.RGBA) Clock {
	return Clock{HandColor: handColor, Center: center, Size: size}
}

// Fit returns a Clock centered on a width x height surface, sized to a third
// of the smaller dimension.
func Fit(width, height int, handColor color.RGBA) Clock {
	w, h := float64(width), float64(height)
	return New(geom.V(w/2, h/2), math.Min(w, h)/constants.FaceSizeDivisor, handColor)
}

// SecondHand computes the second hand for s in [0, 60).
func (c Clock) SecondHand(s int) Hand {
	return c.hand(HandSecond, turn(s, constants.SecondsPerTurn),
		c.Size*constants.SecondHandScale, constants.SecondHandWidth)
}

// MinuteHand computes the minute hand for m in [0, 60).
func (c Clock) MinuteHand(m int) Hand {
	return c.hand(HandMinute, turn(m, constants.MinutesPerTurn),
		c.Size*constants.MinuteHandScale, constants.MinuteHandWidth)
}

// HourHand computes the hour hand for h in [0, 24).
func (c Clock) HourHand(h int) Hand {
	return c.hand(HandHour, turn(h, constants.HoursPerTurn),
		c.Size*constants.HourHandScale, constants.HourHandWidth)
}

// hands returns the second, minute and hour hands for t, in draw order.
func (c Clock) hands(t time.Time) []Hand {
	return []Hand{
		c.SecondHand(t.Second()),
		c.MinuteHand(t.Minute()),
		c.HourHand(t.Hour()),
	}
}

// DrawSecondHand draws the second hand onto canvas.
func (c Clock) DrawSecondHand(canvas Canvas, s int) {
	drawHand(canvas, c.SecondHand(s))
}

// DrawMinuteHand draws the minute hand onto canvas.
func (c Clock) DrawMinuteHand(canvas Canvas, m int) {
	drawHand(canvas, c.MinuteHand(m))
}

// DrawHourHand draws the hour hand onto canvas.
func (c Clock) DrawHourHand(canvas Canvas, h int) {
	drawHand(canvas, c.HourHand(h))
}

// Draw draws all three hands for t.
func (c Clock) Draw(canvas Canvas, t time.Time) {
	for _, h := range c.hands(t) {
		drawHand(canvas, h)
	}
}

func (c Clock) hand(kind HandKind, deg, length float64, width int) Hand {
	offset := geom.Up.Scale(length).Rotate(deg)
	return Hand{
		Kind:  kind,
		From:  c.Center,
		To:    c.Center.Add(offset),
		Width: width,
		Color: c.HandColor,
	}
}

// turn converts value out of perTurn into degrees.
func turn(value, perTurn int) float64 {
	return float64(value) / float64(perTurn) * 360
}

func drawHand(canvas Canvas, h Hand) {
	canvas.Line(h.From, h.To, h.Color, h.Width)
}
