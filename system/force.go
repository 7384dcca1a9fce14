package system

import (
	"github.com/lixenwraith/deflect/engine"
	"github.com/lixenwraith/deflect/parameter"
	"github.com/lixenwraith/deflect/vmath"
)

// ForceSystem applies deferred launch impulses
// A freshly spawned ball carries its impulse for exactly one tick: the
// spawn phase attaches it, the physics step registers the collider, and
// this phase (first in the next frame) applies and removes it. The
// marker is consumed unconditionally, so latency is never more than one
// tick and the impulse never applies twice
type ForceSystem struct {
	SystemBase
}

func NewForceSystem(world *engine.World) engine.System {
	return &ForceSystem{SystemBase: NewSystemBase(world)}
}

func (s *ForceSystem) Name() string {
	return "force"
}

func (s *ForceSystem) Priority() int {
	return parameter.PriorityForce
}

func (s *ForceSystem) Update() {
	for _, e := range s.Com.DelayedForce.Entities() {
		force, ok := s.Com.DelayedForce.Get(e)
		if !ok {
			continue
		}
		s.Com.DelayedForce.Remove(e)

		kin, ok := s.Com.Kinetic.Get(e)
		if !ok {
			continue // Entity despawned before launch
		}
		kin.Vel = vmath.Add(kin.Vel, force.Impulse)
		s.Com.Kinetic.Set(e, kin)
	}
}
