package vmath

import "math"

// Vec2 is a point or offset in canvas space
type Vec2 struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the Euclidean length
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Polar projects length along angleDeg from origin
// Angle 0 points straight down (+Y), positive angles swing toward +X
func Polar(origin Vec2, length, angleDeg float64) Vec2 {
	rad := DegToRad(angleDeg)
	return Vec2{
		X: origin.X + length*math.Sin(rad),
		Y: origin.Y + length*math.Cos(rad),
	}
}

// ClampFloat bounds v to [lo, hi]; NaN maps to lo
func ClampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
