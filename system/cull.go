package system

import (
	"math"

	"github.com/lixenwraith/deflect/engine"
	"github.com/lixenwraith/deflect/parameter"
)

// CullSystem despawns balls that escape the playfield entirely
// (tunneling past the goal sensors at extreme speed). A lost scoring
// ball decrements the point-ball count so the replenishment policy
// brings a fresh one in. Runs last in the frame
type CullSystem struct {
	SystemBase
}

func NewCullSystem(world *engine.World) engine.System {
	return &CullSystem{SystemBase: NewSystemBase(world)}
}

func (s *CullSystem) Name() string {
	return "cull"
}

func (s *CullSystem) Priority() int {
	return parameter.PriorityCull
}

func (s *CullSystem) Update() {
	limitX := parameter.FieldWidth/2 + parameter.GoalOffset + parameter.CullMargin
	limitY := parameter.FieldHeight/2 + parameter.CullMargin

	for _, e := range s.Com.Ball.Entities() {
		kin, ok := s.Com.Kinetic.Get(e)
		if !ok {
			continue
		}
		if math.Abs(kin.Pos.X) <= limitX && math.Abs(kin.Pos.Y) <= limitY {
			continue
		}

		if ball, ok := s.Com.Ball.Get(e); ok && ball.Kind.IsScoring() {
			s.Res.PointBalls.Decrement()
		}
		s.World.DestroyEntity(e)
	}
}
