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

// OverlapQuerier is the read-only spatial query the scheduler uses to
// test the spawn-exclusion zone. Implemented by PhysicsSystem
type OverlapQuerier interface {
	OverlapCircle(center vmath.Vec2, radius float64, mask physics.Layer) []core.Entity
}

// SpawnSystem materializes queued ball requests at the field center
// One request per eligible tick; a blocked spawn zone leaves the request
// queued and retries next tick. The cooldown is armed only after a
// successful spawn
type SpawnSystem struct {
	SystemBase

	overlap  OverlapQuerier
	cooldown time.Duration
}

func NewSpawnSystem(world *engine.World, overlap OverlapQuerier) engine.System {
	return &SpawnSystem{
		SystemBase: NewSystemBase(world),
		overlap:    overlap,
	}
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Update() {
	if s.cooldown > 0 {
		s.cooldown -= s.Res.Time.DeltaTime
		if s.cooldown > 0 {
			return
		}
		s.cooldown = 0
	}

	req, ok := s.Res.SpawnQueue.Front()
	if !ok {
		return
	}

	// A ball-sized probe at the center must not touch any ball or
	// paddle collider; otherwise the request stays queued
	radius := component.BallRadius(req.Kind)
	if len(s.overlap.OverlapCircle(vmath.Vec2{}, radius, physics.LayerBall|physics.LayerPaddle)) > 0 {
		return
	}

	s.Res.SpawnQueue.PopFront()
	s.cooldown = parameter.SpawnCooldown

	s.spawnBall(req, radius)
}

func (s *SpawnSystem) spawnBall(req engine.SpawnRequest, radius float64) {
	// Random angle within the forward cone, mirrored toward the
	// preferred side; Random resolves to a coin flip
	angle := s.Res.Rand.Float64() * parameter.SpawnConeRadians
	dir := vmath.FromAngle(angle)
	if req.Side == core.SideLeft || (req.Side == core.SideRandom && s.Res.Rand.Bool()) {
		dir.X = -dir.X
	}

	e := s.World.CreateEntity()
	s.Com.Kinetic.Set(e, component.KineticComponent{})
	s.Com.Ball.Set(e, component.BallComponent{Kind: req.Kind})
	s.Com.Collider.Set(e, component.ColliderComponent{
		Shape:       physics.ShapeCircle,
		Body:        component.BodyDynamic,
		Layer:       physics.LayerBall,
		Mask:        physics.LayerBall | physics.LayerPaddle | physics.LayerWall,
		Restitution: parameter.RestitutionBall,
		Radius:      radius,
	})
	// Launch impulse is deferred one tick so the physics step sees the
	// collider before any net force applies
	s.Com.DelayedForce.Set(e, component.DelayedForceComponent{
		Impulse: vmath.Scale(dir, parameter.BallLaunchSpeed),
	})

	s.Res.Events.Push(event.GameEvent{
		Type:    event.EventBallSpawned,
		Payload: &event.BallSpawnedPayload{Entity: e, Kind: req.Kind},
		Frame:   s.Res.Time.FrameNumber,
	})
	s.Res.Events.Push(event.GameEvent{
		Type:    event.EventSoundRequest,
		Payload: &event.SoundRequestPayload{Sound: core.SoundSpawn},
		Frame:   s.Res.Time.FrameNumber,
	})
}
