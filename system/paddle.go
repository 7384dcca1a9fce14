package system

import (
	"math"

	"github.com/lixenwraith/deflect/component"
	"github.com/lixenwraith/deflect/core"
	"github.com/lixenwraith/deflect/engine"
	"github.com/lixenwraith/deflect/parameter"
	"github.com/lixenwraith/deflect/vmath"
)

// Unprojector maps terminal cell coordinates to world coordinates
// Implemented by render.Viewport; reports false when the pointer falls
// outside the playfield or the viewport is not resolvable
type Unprojector interface {
	ScreenToWorld(x, y int) (vmath.Vec2, bool)
}

// PaddleSystem drives both paddles, each with its own control policy:
// the human paddle chases the pointer while the button is held, the
// autonomous paddle tracks the first ball it finds.
// Only the human paddle gets the rectangular boundary clamp; the
// autonomous paddle is contained by the wall colliders
type PaddleSystem struct {
	SystemBase

	viewport Unprojector
}

func NewPaddleSystem(world *engine.World, viewport Unprojector) engine.System {
	return &PaddleSystem{
		SystemBase: NewSystemBase(world),
		viewport:   viewport,
	}
}

func (s *PaddleSystem) Name() string {
	return "paddle"
}

func (s *PaddleSystem) Priority() int {
	return parameter.PriorityPaddle
}

func (s *PaddleSystem) Update() {
	dt := s.Res.Time.DeltaTime.Seconds()
	if dt <= 0 {
		return
	}

	for _, e := range s.Com.Paddle.Entities() {
		paddle, ok := s.Com.Paddle.Get(e)
		if !ok {
			continue
		}
		if paddle.FirstPlayer {
			s.updateHuman(e, paddle, dt)
		} else {
			s.updateAuto(e, dt)
		}
	}
}

func (s *PaddleSystem) updateHuman(e core.Entity, paddle component.PaddleComponent, dt float64) {
	kin, ok := s.Com.Kinetic.Get(e)
	if !ok {
		return
	}

	if !s.Res.Pointer.Held {
		// Released button stops the paddle instantly; doubles as pause
		kin.Vel = vmath.Vec2{}
		s.Com.Kinetic.Set(e, kin)
		return
	}

	if target, ok := s.viewport.ScreenToWorld(s.Res.Pointer.X, s.Res.Pointer.Y); ok {
		kin.Vel = chaseVelocity(kin.Pos, target, parameter.PaddleSpeed, dt)
	}
	// Unresolvable pointer leaves the previous velocity; the clamp
	// below still applies

	s.clampToRegion(&kin, paddle.Side)
	s.Com.Kinetic.Set(e, kin)
}

func (s *PaddleSystem) updateAuto(e core.Entity, dt float64) {
	balls := s.Com.Ball.Entities()
	if len(balls) == 0 {
		return // No target this tick; keep prior velocity
	}
	ballKin, ok := s.Com.Kinetic.Get(balls[0])
	if !ok {
		return
	}

	kin, ok := s.Com.Kinetic.Get(e)
	if !ok {
		return
	}
	target := vmath.Vec2{X: kin.Pos.X, Y: ballKin.Pos.Y}
	kin.Vel = chaseVelocity(kin.Pos, target, parameter.PaddleSpeedAuto, dt)
	s.Com.Kinetic.Set(e, kin)
}

// chaseVelocity points at the target, capped at maxSpeed but never
// faster than what reaches the target within one tick (no overshoot)
func chaseVelocity(pos, target vmath.Vec2, maxSpeed, dt float64) vmath.Vec2 {
	to := vmath.Sub(target, pos)
	speed := math.Min(maxSpeed, vmath.Mag(to)/dt)
	return vmath.Scale(vmath.Normalize(to), speed)
}

// clampToRegion clips the paddle to its side's allowed rectangle: when
// outside a bound and still moving outward, the offending velocity axis
// is zeroed and the position snapped to the wall. Prevents boundary
// tunneling and permanent escape
func (s *PaddleSystem) clampToRegion(kin *component.KineticComponent, side core.Side) {
	minX, maxX := humanBoundsX(side)
	minY := -parameter.FieldHeight/2 + parameter.PaddleHeight/2
	maxY := parameter.FieldHeight/2 - parameter.PaddleHeight/2

	if kin.Pos.X < minX && kin.Vel.X < 0 {
		kin.Pos.X = minX
		kin.Vel.X = 0
	}
	if kin.Pos.X > maxX && kin.Vel.X > 0 {
		kin.Pos.X = maxX
		kin.Vel.X = 0
	}
	if kin.Pos.Y < minY && kin.Vel.Y < 0 {
		kin.Pos.Y = minY
		kin.Vel.Y = 0
	}
	if kin.Pos.Y > maxY && kin.Vel.Y > 0 {
		kin.Pos.Y = maxY
		kin.Vel.Y = 0
	}
}

// humanBoundsX returns the allowed x range for the paddle's current
// half of the field, between the side wall and the net
func humanBoundsX(side core.Side) (float64, float64) {
	outer := parameter.FieldWidth/2 - parameter.PaddleWidth/2
	inner := parameter.NetWidth/2 + parameter.PaddleWidth/2
	if side == core.SideRight {
		return inner, outer
	}
	return -outer, -inner
}
