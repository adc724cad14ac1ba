package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestPolarStraightDown(t *testing.T) {
	origin := Vec2{X: 400, Y: 50}
	tip := Polar(origin, 100, 0)
	if math.Abs(tip.X-400) > eps || math.Abs(tip.Y-150) > eps {
		t.Errorf("Expected tip (400,150), got (%f,%f)", tip.X, tip.Y)
	}
}

func TestPolarSwingDirection(t *testing.T) {
	origin := Vec2{X: 0, Y: 0}

	right := Polar(origin, 10, 90)
	if math.Abs(right.X-10) > eps || math.Abs(right.Y) > eps {
		t.Errorf("Expected +90° to point to +X, got (%f,%f)", right.X, right.Y)
	}

	left := Polar(origin, 10, -90)
	if math.Abs(left.X+10) > eps {
		t.Errorf("Expected -90° to point to -X, got (%f,%f)", left.X, left.Y)
	}
}

func TestDistance(t *testing.T) {
	d := Distance(Vec2{X: 1, Y: 1}, Vec2{X: 4, Y: 5})
	if math.Abs(d-5) > eps {
		t.Errorf("Expected distance 5, got %f", d)
	}
}

func TestClampFloat(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{2, 1},
		{math.NaN(), 0},
	}
	for _, tc := range tests {
		if got := ClampFloat(tc.in, 0, 1); got != tc.want {
			t.Errorf("ClampFloat(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}
