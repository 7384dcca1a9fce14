package system

import (
	"time"

	"github.com/lixenwraith/deflect/core"
	"github.com/lixenwraith/deflect/engine"
	"github.com/lixenwraith/deflect/parameter"
)

// BonusSystem enqueues a bonus ball at a fixed cadence
// Bonus requests go to the BACK of the spawn queue; they never displace
// point-ball replenishment
type BonusSystem struct {
	SystemBase

	elapsed time.Duration
}

func NewBonusSystem(world *engine.World) engine.System {
	return &BonusSystem{SystemBase: NewSystemBase(world)}
}

func (s *BonusSystem) Name() string {
	return "bonus"
}

func (s *BonusSystem) Priority() int {
	return parameter.PriorityBonus
}

func (s *BonusSystem) Update() {
	s.elapsed += s.Res.Time.DeltaTime
	if s.elapsed <= parameter.BonusInterval {
		return
	}
	s.elapsed = 0

	kind := core.BallSwitchSide
	if s.Res.Rand.Float64() < parameter.BonusMultiChance {
		kind = core.BallMulti
	}
	s.Res.SpawnQueue.PushBack(engine.SpawnRequest{
		Kind: kind,
		Side: core.SideRandom,
	})
}
