package core

import (
	"math"
	"testing"
)

func TestVecNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       Vec2
		expected Vec2
	}{
		{"axis aligned", V(5, 0), V(1, 0)},
		{"negative", V(0, -3), V(0, -1)},
		{"3-4-5", V(3, 4), V(0.6, 0.8)},
		{"zero stays zero", V(0, 0), V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if math.Abs(got.X-tc.expected.X) > 1e-9 || math.Abs(got.Y-tc.expected.Y) > 1e-9 {
				t.Errorf("Normalize(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
			if math.IsNaN(got.X) || math.IsNaN(got.Y) {
				t.Errorf("Normalize(%v) produced NaN", tc.in)
			}
		})
	}
}

func TestVecArithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, 5)

	if got := a.Add(b); got != V(4, 7) {
		t.Errorf("Add() = %v, expected (4, 7)", got)
	}
	if got := b.Sub(a); got != V(2, 3) {
		t.Errorf("Sub() = %v, expected (2, 3)", got)
	}
	if got := a.Scale(2); got != V(2, 4) {
		t.Errorf("Scale() = %v, expected (2, 4)", got)
	}
	if got := V(3, 4).Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}
	if !V(0, 0).IsZero() || V(0, 1).IsZero() {
		t.Error("IsZero() mismatch")
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{
			name:     "concentric",
			a:        Circle{Center: V(10, 10), Radius: 5},
			b:        Circle{Center: V(10, 10), Radius: 1},
			expected: true,
		},
		{
			name:     "overlapping",
			a:        Circle{Center: V(0, 0), Radius: 5},
			b:        Circle{Center: V(8, 0), Radius: 5},
			expected: true,
		},
		{
			name:     "touching",
			a:        Circle{Center: V(0, 0), Radius: 5},
			b:        Circle{Center: V(10, 0), Radius: 5},
			expected: true,
		},
		{
			name:     "apart",
			a:        Circle{Center: V(0, 0), Radius: 5},
			b:        Circle{Center: V(7, 8), Radius: 5},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CirclesOverlap(tc.a, tc.b); got != tc.expected {
				t.Errorf("CirclesOverlap() = %v, expected %v", got, tc.expected)
			}
			if got := CirclesOverlap(tc.b, tc.a); got != tc.expected {
				t.Errorf("CirclesOverlap() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
