package system

import (
	"github.com/lixenwraith/deflect/core"
	"github.com/lixenwraith/deflect/engine"
	"github.com/lixenwraith/deflect/parameter"
	"github.com/lixenwraith/deflect/vmath"
)

// PointBallSystem guarantees a scoring ball is always in flight or
// queued: whenever the point-ball count drops to zero it pushes one
// replenishment request to the FRONT of the spawn queue, pre-empting
// any pending bonus requests
type PointBallSystem struct {
	SystemBase
}

func NewPointBallSystem(world *engine.World) engine.System {
	return &PointBallSystem{SystemBase: NewSystemBase(world)}
}

func (s *PointBallSystem) Name() string {
	return "pointball"
}

func (s *PointBallSystem) Priority() int {
	return parameter.PriorityPoint
}

func (s *PointBallSystem) Update() {
	if s.Res.PointBalls.Count != 0 {
		return
	}
	s.Res.SpawnQueue.PushFront(engine.SpawnRequest{
		Kind: rollPointKind(s.Res.Rand),
		Side: core.SideRandom,
	})
	// Count the queued request immediately so consecutive ticks never
	// enqueue a second one
	s.Res.PointBalls.Count = 1
}

// rollPointKind picks the kind for a replenished point ball; the rare
// gold variant is worth triple
func rollPointKind(rng *vmath.FastRand) core.BallKind {
	if rng.Float64() < parameter.GoldChance {
		return core.BallGold
	}
	return core.BallPoint
}
