package system

import (
	"github.com/lixenwraith/deflect/component"
	"github.com/lixenwraith/deflect/core"
	"github.com/lixenwraith/deflect/engine"
	"github.com/lixenwraith/deflect/event"
	"github.com/lixenwraith/deflect/parameter"
	"github.com/lixenwraith/deflect/physics"
	"github.com/lixenwraith/deflect/vmath"
)

// PhysicsSystem is the collision engine the gameplay layer consumes:
// it integrates kinetic entities, resolves contacts, and appends every
// contact to the frame's collision buffer (drained by the goal resolver
// on the following frame). Sensors report contacts without response.
// Runs after the control systems so paddle velocities are current
type PhysicsSystem struct {
	SystemBase
}

func NewPhysicsSystem(world *engine.World) *PhysicsSystem {
	return &PhysicsSystem{SystemBase: NewSystemBase(world)}
}

func (s *PhysicsSystem) Name() string {
	return "physics"
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

func (s *PhysicsSystem) Update() {
	dt := s.Res.Time.DeltaTime.Seconds()
	if dt <= 0 {
		return
	}

	s.integrate(dt)

	// Bucket colliders once per step
	var balls, paddles, statics []core.Entity
	for _, e := range s.Com.Collider.Entities() {
		col, ok := s.Com.Collider.Get(e)
		if !ok {
			continue
		}
		switch col.Body {
		case component.BodyDynamic:
			balls = append(balls, e)
		case component.BodyKinematic:
			paddles = append(paddles, e)
		case component.BodyStatic:
			statics = append(statics, e)
		}
	}

	for _, ball := range balls {
		s.collideBallStatics(ball, statics)
		s.collideBallPaddles(ball, paddles)
	}
	for i := 0; i < len(balls); i++ {
		for j := i + 1; j < len(balls); j++ {
			s.collideBallBall(balls[i], balls[j])
		}
	}
	for _, paddle := range paddles {
		s.slidePaddleStatics(paddle, statics)
	}
}

func (s *PhysicsSystem) integrate(dt float64) {
	for _, e := range s.Com.Kinetic.Entities() {
		if col, ok := s.Com.Collider.Get(e); ok && col.Body == component.BodyStatic {
			continue
		}
		kin, ok := s.Com.Kinetic.Get(e)
		if !ok {
			continue
		}
		kin.Pos = vmath.Add(kin.Pos, vmath.Scale(kin.Vel, dt))
		s.Com.Kinetic.Set(e, kin)
	}
}

func (s *PhysicsSystem) collideBallStatics(ball core.Entity, statics []core.Entity) {
	ballCol, ok := s.Com.Collider.Get(ball)
	if !ok {
		return
	}
	kin, ok := s.Com.Kinetic.Get(ball)
	if !ok {
		return
	}

	for _, st := range statics {
		stCol, ok := s.Com.Collider.Get(st)
		if !ok || !physics.Matches(ballCol.Layer, ballCol.Mask, stCol.Layer, stCol.Mask) {
			continue
		}
		stKin, ok := s.Com.Kinetic.Get(st)
		if !ok {
			continue
		}

		contact, hit := staticContact(kin.Pos, ballCol.Radius, stKin.Pos, stCol)
		if !hit {
			continue
		}

		s.Res.Collisions.Append(ball, st)
		if stCol.Sensor {
			continue
		}
		physics.ResolveStatic(&kin.Pos, &kin.Vel, contact, stCol.Restitution)
		s.requestSound(core.SoundWallHit)
	}
	s.Com.Kinetic.Set(ball, kin)
}

func (s *PhysicsSystem) collideBallPaddles(ball core.Entity, paddles []core.Entity) {
	ballCol, ok := s.Com.Collider.Get(ball)
	if !ok {
		return
	}
	kin, ok := s.Com.Kinetic.Get(ball)
	if !ok {
		return
	}

	for _, paddle := range paddles {
		pCol, ok := s.Com.Collider.Get(paddle)
		if !ok || !physics.Matches(ballCol.Layer, ballCol.Mask, pCol.Layer, pCol.Mask) {
			continue
		}
		pKin, ok := s.Com.Kinetic.Get(paddle)
		if !ok {
			continue
		}

		contact, hit := physics.CircleBox(kin.Pos, ballCol.Radius, pKin.Pos, pCol.HalfW, pCol.HalfH)
		if !hit {
			continue
		}

		s.Res.Collisions.Append(ball, paddle)
		physics.ResolveKinematic(&kin.Pos, &kin.Vel, pKin.Vel, contact, pCol.Restitution)
		s.requestSound(core.SoundPaddleHit)
	}
	s.Com.Kinetic.Set(ball, kin)
}

func (s *PhysicsSystem) collideBallBall(a, b core.Entity) {
	aCol, okA := s.Com.Collider.Get(a)
	bCol, okB := s.Com.Collider.Get(b)
	if !okA || !okB || !physics.Matches(aCol.Layer, aCol.Mask, bCol.Layer, bCol.Mask) {
		return
	}
	aKin, okA := s.Com.Kinetic.Get(a)
	bKin, okB := s.Com.Kinetic.Get(b)
	if !okA || !okB {
		return
	}

	contact, hit := physics.CircleCircle(aKin.Pos, aCol.Radius, bKin.Pos, bCol.Radius)
	if !hit {
		return
	}

	s.Res.Collisions.Append(a, b)
	physics.ResolveDynamic(&aKin.Pos, &aKin.Vel, &bKin.Pos, &bKin.Vel, contact, parameter.RestitutionBall)
	s.Com.Kinetic.Set(a, aKin)
	s.Com.Kinetic.Set(b, bKin)
}

func (s *PhysicsSystem) slidePaddleStatics(paddle core.Entity, statics []core.Entity) {
	pCol, ok := s.Com.Collider.Get(paddle)
	if !ok {
		return
	}
	kin, ok := s.Com.Kinetic.Get(paddle)
	if !ok {
		return
	}

	for _, st := range statics {
		stCol, ok := s.Com.Collider.Get(st)
		if !ok || stCol.Sensor || !physics.Matches(pCol.Layer, pCol.Mask, stCol.Layer, stCol.Mask) {
			continue
		}
		stKin, ok := s.Com.Kinetic.Get(st)
		if !ok {
			continue
		}

		var contact physics.Contact
		var hit bool
		switch stCol.Shape {
		case physics.ShapeHalfspace:
			contact, hit = physics.BoxHalfspace(kin.Pos, pCol.HalfW, pCol.HalfH, stKin.Pos, stCol.Normal)
		case physics.ShapeBox:
			contact, hit = physics.BoxBox(kin.Pos, pCol.HalfW, pCol.HalfH, stKin.Pos, stCol.HalfW, stCol.HalfH)
		}
		if hit {
			physics.SlideStatic(&kin.Pos, contact)
		}
	}
	s.Com.Kinetic.Set(paddle, kin)
}

// OverlapCircle is the read-only spatial query used by the spawn
// scheduler: all entities whose collider layer matches the mask and
// whose shape overlaps the probe circle. Never mutates state
func (s *PhysicsSystem) OverlapCircle(center vmath.Vec2, radius float64, mask physics.Layer) []core.Entity {
	var result []core.Entity
	for _, e := range s.Com.Collider.Entities() {
		col, ok := s.Com.Collider.Get(e)
		if !ok || col.Layer&mask == 0 {
			continue
		}
		kin, ok := s.Com.Kinetic.Get(e)
		if !ok {
			continue
		}

		var hit bool
		switch col.Shape {
		case physics.ShapeCircle:
			_, hit = physics.CircleCircle(center, radius, kin.Pos, col.Radius)
		case physics.ShapeBox:
			_, hit = physics.CircleBox(center, radius, kin.Pos, col.HalfW, col.HalfH)
		case physics.ShapeHalfspace:
			_, hit = physics.CircleHalfspace(center, radius, kin.Pos, col.Normal)
		}
		if hit {
			result = append(result, e)
		}
	}
	return result
}

// staticContact dispatches a circle test against a static collider shape
func staticContact(cPos vmath.Vec2, radius float64, stPos vmath.Vec2, stCol component.ColliderComponent) (physics.Contact, bool) {
	switch stCol.Shape {
	case physics.ShapeHalfspace:
		return physics.CircleHalfspace(cPos, radius, stPos, stCol.Normal)
	case physics.ShapeBox:
		return physics.CircleBox(cPos, radius, stPos, stCol.HalfW, stCol.HalfH)
	case physics.ShapeCircle:
		return physics.CircleCircle(cPos, radius, stPos, stCol.Radius)
	}
	return physics.Contact{}, false
}

func (s *PhysicsSystem) requestSound(sound core.SoundType) {
	s.Res.Events.Push(event.GameEvent{
		Type:    event.EventSoundRequest,
		Payload: &event.SoundRequestPayload{Sound: sound},
		Frame:   s.Res.Time.FrameNumber,
	})
}
