package component

import (
	"github.com/lixenwraith/deflect/vmath"
)

// DelayedForceComponent defers a launch impulse by exactly one tick so the
// physics step has registered the collider before any net force applies
// Removed in the same update that consumes it
type DelayedForceComponent struct {
	Impulse vmath.Vec2
}
