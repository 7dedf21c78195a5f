// Package core provides fundamental types and utilities for the cupcake runtime.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// Vector2 is a 2D vector used for positions, velocities and translations.
// Vectors are values; every operation returns a new vector.
type Vector2 struct {
	X, Y float64
}

// Vec creates a new vector.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Inverse returns the vector with the same length pointing the opposite way.
func (v Vector2) Inverse() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// IsNormalized reports whether both components have a magnitude of at most 1,
// i.e. the vector cannot be meaningfully shrunk any further.
func (v Vector2) IsNormalized() bool {
	return math.Abs(v.X) <= 1 && math.Abs(v.Y) <= 1
}

// IsZero reports whether both components are zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ScaleRounded scales the vector and rounds each component to the nearest
// integer. Halves round up (towards positive infinity), so -0.5 becomes 0 and
// repeated halving of any integer vector reaches magnitude 1 or less.
func (v Vector2) ScaleRounded(factor float64) Vector2 {
	return Vector2{X: roundHalfUp(v.X * factor), Y: roundHalfUp(v.Y * factor)}
}

// String returns a compact representation, e.g. "v(3|-5)".
func (v Vector2) String() string {
	return fmt.Sprintf("v(%g|%g)", v.X, v.Y)
}

// Distance returns the euclidean distance between two points.
func Distance(a, b Vector2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func roundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}
