package system

import (
	"github.com/lixenwraith/deflect/component"
	"github.com/lixenwraith/deflect/core"
	"github.com/lixenwraith/deflect/engine"
	"github.com/lixenwraith/deflect/parameter"
	"github.com/lixenwraith/deflect/physics"
	"github.com/lixenwraith/deflect/vmath"
)

// BuildField creates the static playfield and the two paddles:
// four boundary walls, the center net, two goal sensors, two paddles.
// Layer masks mirror the interaction table: side walls stop paddles
// only (balls fly past into the goal sensors), the net stops paddles
// only, top/bottom walls stop everything
func BuildField(w *engine.World) {
	halfW := parameter.FieldWidth / 2
	halfH := parameter.FieldHeight / 2

	// Top and bottom walls bounce paddles and balls
	spawnWall(w, vmath.Vec2{Y: halfH}, vmath.Vec2{Y: -1}, physics.LayerPaddle|physics.LayerBall)
	spawnWall(w, vmath.Vec2{Y: -halfH}, vmath.Vec2{Y: 1}, physics.LayerPaddle|physics.LayerBall)

	// Side walls contain paddles; balls pass through toward the goals
	spawnWall(w, vmath.Vec2{X: -halfW}, vmath.Vec2{X: 1}, physics.LayerPaddle)
	spawnWall(w, vmath.Vec2{X: halfW}, vmath.Vec2{X: -1}, physics.LayerPaddle)

	// Goal sensors just outside the side walls
	spawnGoal(w, vmath.Vec2{X: -(halfW + parameter.GoalOffset)}, vmath.Vec2{X: 1}, true, core.SideLeft)
	spawnGoal(w, vmath.Vec2{X: halfW + parameter.GoalOffset}, vmath.Vec2{X: -1}, false, core.SideRight)

	// Center net blocks paddles from crossing
	net := w.CreateEntity()
	w.Components.Kinetic.Set(net, component.KineticComponent{})
	w.Components.Collider.Set(net, component.ColliderComponent{
		Shape: physics.ShapeBox,
		Body:  component.BodyStatic,
		Layer: physics.LayerNet,
		Mask:  physics.LayerPaddle,
		HalfW: parameter.NetWidth / 2,
		HalfH: halfH,
	})

	spawnPaddle(w, true)
	spawnPaddle(w, false)
}

func spawnWall(w *engine.World, pos, normal vmath.Vec2, mask physics.Layer) core.Entity {
	e := w.CreateEntity()
	w.Components.Kinetic.Set(e, component.KineticComponent{Pos: pos})
	w.Components.Collider.Set(e, component.ColliderComponent{
		Shape:       physics.ShapeHalfspace,
		Body:        component.BodyStatic,
		Layer:       physics.LayerWall,
		Mask:        mask,
		Restitution: parameter.RestitutionWall,
		Normal:      normal,
	})
	return e
}

func spawnGoal(w *engine.World, pos, normal vmath.Vec2, firstPlayer bool, side core.Side) core.Entity {
	e := spawnWall(w, pos, normal, physics.LayerBall)
	col, _ := w.Components.Collider.Get(e)
	col.Sensor = true
	w.Components.Collider.Set(e, col)
	w.Components.Goal.Set(e, component.GoalComponent{
		FirstPlayer: firstPlayer,
		Side:        side,
	})
	return e
}

func spawnPaddle(w *engine.World, firstPlayer bool) core.Entity {
	x := -parameter.FieldWidth/2 + parameter.PaddleInsetX
	side := core.SideLeft
	if !firstPlayer {
		x = -x
		side = core.SideRight
	}

	e := w.CreateEntity()
	w.Components.Kinetic.Set(e, component.KineticComponent{Pos: vmath.Vec2{X: x}})
	w.Components.Paddle.Set(e, component.PaddleComponent{
		FirstPlayer: firstPlayer,
		Side:        side,
	})
	w.Components.Collider.Set(e, component.ColliderComponent{
		Shape:       physics.ShapeBox,
		Body:        component.BodyKinematic,
		Layer:       physics.LayerPaddle,
		Mask:        physics.LayerBall | physics.LayerWall | physics.LayerNet,
		Restitution: parameter.RestitutionPaddle,
		HalfW:       parameter.PaddleWidth / 2,
		HalfH:       parameter.PaddleHeight / 2,
	})
	return e
}
