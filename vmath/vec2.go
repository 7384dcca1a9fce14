package vmath

import "math"

// Vec2 is a float64 2D vector for continuous world coordinates
// Float math is used over fixed point: the simulation carries at most a
// couple dozen kinetic entities, so conversion overhead never matters
type Vec2 struct {
	X, Y float64
}

func Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func Mag(v Vec2) float64 {
	return math.Sqrt(MagSq(v))
}

// Normalize returns the unit vector, zero-safe
func Normalize(v Vec2) Vec2 {
	mag := Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// ClampMag limits the vector to maxMag while preserving direction
func ClampMag(v Vec2, maxMag float64) Vec2 {
	mag := Mag(v)
	if mag <= maxMag || mag == 0 {
		return v
	}
	return Scale(v, maxMag/mag)
}

// FromAngle returns the unit vector at the given angle in radians,
// measured counterclockwise from +X
func FromAngle(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// Reflect mirrors v against the plane with unit normal n
func Reflect(v, n Vec2) Vec2 {
	d := Dot(v, n)
	return Vec2{v.X - 2*d*n.X, v.Y - 2*d*n.Y}
}
