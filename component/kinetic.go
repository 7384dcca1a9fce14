package component

import (
	"github.com/lixenwraith/deflect/vmath"
)

// KineticComponent holds continuous position and velocity in world units
type KineticComponent struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
}
