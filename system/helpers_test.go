package system

import (
	"time"

	"github.com/lixenwraith/deflect/component"
	"github.com/lixenwraith/deflect/core"
	"github.com/lixenwraith/deflect/engine"
	"github.com/lixenwraith/deflect/event"
	"github.com/lixenwraith/deflect/parameter"
	"github.com/lixenwraith/deflect/physics"
	"github.com/lixenwraith/deflect/vmath"
)

const testDelta = 16 * time.Millisecond

// newTestWorld builds a world with a fixed RNG seed and one frame of
// timing set, so system behavior is reproducible
func newTestWorld(seed uint64) *engine.World {
	w := engine.NewWorld()
	w.Resources.Rand = vmath.NewFastRand(seed)
	w.Resources.Time.DeltaTime = testDelta
	return w
}

func makeBall(w *engine.World, kind core.BallKind, pos, vel vmath.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Components.Kinetic.Set(e, component.KineticComponent{Pos: pos, Vel: vel})
	w.Components.Ball.Set(e, component.BallComponent{Kind: kind})
	w.Components.Collider.Set(e, component.ColliderComponent{
		Shape:       physics.ShapeCircle,
		Body:        component.BodyDynamic,
		Layer:       physics.LayerBall,
		Mask:        physics.LayerBall | physics.LayerPaddle | physics.LayerWall,
		Restitution: parameter.RestitutionBall,
		Radius:      component.BallRadius(kind),
	})
	return e
}

func makeGoal(w *engine.World, firstPlayer bool, side core.Side) core.Entity {
	e := w.CreateEntity()
	w.Components.Kinetic.Set(e, component.KineticComponent{})
	w.Components.Goal.Set(e, component.GoalComponent{
		FirstPlayer: firstPlayer,
		Side:        side,
	})
	return e
}

// drainSounds consumes the event queue and returns the sound requests
func drainSounds(w *engine.World) []core.SoundType {
	var sounds []core.SoundType
	for _, ev := range w.Resources.Events.Consume() {
		if ev.Type != event.EventSoundRequest {
			continue
		}
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			sounds = append(sounds, p.Sound)
		}
	}
	return sounds
}

// containsSound reports whether the slice holds the given sound
func containsSound(sounds []core.SoundType, want core.SoundType) bool {
	for _, s := range sounds {
		if s == want {
			return true
		}
	}
	return false
}
