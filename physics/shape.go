package physics

import (
	"math"

	"github.com/lixenwraith/deflect/vmath"
)

// Shape enumerates supported collision shapes
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeBox
	// ShapeHalfspace is an infinite plane; everything on the far side of
	// the inward normal is penetrating
	ShapeHalfspace
)

// Contact describes an overlap between two shapes
// Normal points from the second shape toward the first; Depth is the
// penetration distance along it
type Contact struct {
	Normal vmath.Vec2
	Depth  float64
}

// CircleCircle tests two circles; returns the contact seen from circle a
func CircleCircle(aPos vmath.Vec2, aRadius float64, bPos vmath.Vec2, bRadius float64) (Contact, bool) {
	delta := vmath.Sub(aPos, bPos)
	distSq := vmath.MagSq(delta)
	sum := aRadius + bRadius
	if distSq >= sum*sum {
		return Contact{}, false
	}
	dist := math.Sqrt(distSq)
	if dist == 0 {
		// Coincident centers; push along +X
		return Contact{Normal: vmath.Vec2{X: 1}, Depth: sum}, true
	}
	return Contact{
		Normal: vmath.Scale(delta, 1/dist),
		Depth:  sum - dist,
	}, true
}

// CircleBox tests a circle against an axis-aligned box
// Returns the contact seen from the circle
func CircleBox(cPos vmath.Vec2, radius float64, bPos vmath.Vec2, halfW, halfH float64) (Contact, bool) {
	// Closest point on the box to the circle center
	closest := vmath.Vec2{
		X: clamp(cPos.X, bPos.X-halfW, bPos.X+halfW),
		Y: clamp(cPos.Y, bPos.Y-halfH, bPos.Y+halfH),
	}
	delta := vmath.Sub(cPos, closest)
	distSq := vmath.MagSq(delta)
	if distSq >= radius*radius {
		return Contact{}, false
	}
	if distSq == 0 {
		// Center inside the box; push out along the axis of least penetration
		dx := halfW - math.Abs(cPos.X-bPos.X)
		dy := halfH - math.Abs(cPos.Y-bPos.Y)
		if dx < dy {
			n := vmath.Vec2{X: 1}
			if cPos.X < bPos.X {
				n.X = -1
			}
			return Contact{Normal: n, Depth: dx + radius}, true
		}
		n := vmath.Vec2{Y: 1}
		if cPos.Y < bPos.Y {
			n.Y = -1
		}
		return Contact{Normal: n, Depth: dy + radius}, true
	}
	dist := math.Sqrt(distSq)
	return Contact{
		Normal: vmath.Scale(delta, 1/dist),
		Depth:  radius - dist,
	}, true
}

// CircleHalfspace tests a circle against a plane through pPos with inward
// unit normal n. Returns the contact seen from the circle
func CircleHalfspace(cPos vmath.Vec2, radius float64, pPos, n vmath.Vec2) (Contact, bool) {
	d := vmath.Dot(vmath.Sub(cPos, pPos), n)
	if d >= radius {
		return Contact{}, false
	}
	return Contact{Normal: n, Depth: radius - d}, true
}

// BoxHalfspace tests an axis-aligned box against a plane through pPos with
// inward unit normal n
func BoxHalfspace(bPos vmath.Vec2, halfW, halfH float64, pPos, n vmath.Vec2) (Contact, bool) {
	// Projection radius of the box onto the plane normal
	r := math.Abs(n.X)*halfW + math.Abs(n.Y)*halfH
	d := vmath.Dot(vmath.Sub(bPos, pPos), n)
	if d >= r {
		return Contact{}, false
	}
	return Contact{Normal: n, Depth: r - d}, true
}

// BoxBox tests two axis-aligned boxes; returns the contact seen from box a
func BoxBox(aPos vmath.Vec2, aHalfW, aHalfH float64, bPos vmath.Vec2, bHalfW, bHalfH float64) (Contact, bool) {
	dx := (aHalfW + bHalfW) - math.Abs(aPos.X-bPos.X)
	if dx <= 0 {
		return Contact{}, false
	}
	dy := (aHalfH + bHalfH) - math.Abs(aPos.Y-bPos.Y)
	if dy <= 0 {
		return Contact{}, false
	}
	if dx < dy {
		n := vmath.Vec2{X: 1}
		if aPos.X < bPos.X {
			n.X = -1
		}
		return Contact{Normal: n, Depth: dx}, true
	}
	n := vmath.Vec2{Y: 1}
	if aPos.Y < bPos.Y {
		n.Y = -1
	}
	return Contact{Normal: n, Depth: dy}, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
