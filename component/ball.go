package component

import (
	"github.com/lixenwraith/deflect/core"
	"github.com/lixenwraith/deflect/parameter"
)

// BallComponent tags an entity as a ball in flight
type BallComponent struct {
	Kind core.BallKind
}

// Radius returns the collision radius for the ball's kind;
// bonus kinds are slightly smaller
func (b BallComponent) Radius() float64 {
	return BallRadius(b.Kind)
}

// BallRadius returns the collision radius for a kind without a component value
// Used by the spawn scheduler before the entity exists
func BallRadius(kind core.BallKind) float64 {
	if kind.IsBonus() {
		return parameter.BallRadius * parameter.BonusRadiusFactor
	}
	return parameter.BallRadius
}
