package system

import (
	"testing"

	"github.com/lixenwraith/deflect/core"
	"github.com/lixenwraith/deflect/parameter"
	"github.com/lixenwraith/deflect/vmath"
)

// Test a ball far past the goal planes is despawned
func TestCullDespawnsEscapedBall(t *testing.T) {
	w := newTestWorld(1)
	w.Resources.PointBalls.Count = 1
	limitX := parameter.FieldWidth/2 + parameter.GoalOffset + parameter.CullMargin
	e := makeBall(w, core.BallPoint, vmath.Vec2{X: limitX + 1}, vmath.Vec2{})

	NewCullSystem(w).Update()

	if w.Components.Ball.Has(e) {
		t.Error("Escaped ball should be despawned")
	}
	if w.Resources.PointBalls.Count != 0 {
		t.Errorf("Lost scoring ball should decrement the count, got %d", w.Resources.PointBalls.Count)
	}
}

// Test a lost bonus ball does not touch the point-ball count
func TestCullBonusBallKeepsCount(t *testing.T) {
	w := newTestWorld(1)
	w.Resources.PointBalls.Count = 1
	limitY := parameter.FieldHeight/2 + parameter.CullMargin
	e := makeBall(w, core.BallSwitchSide, vmath.Vec2{Y: -limitY - 1}, vmath.Vec2{})

	NewCullSystem(w).Update()

	if w.Components.Ball.Has(e) {
		t.Error("Escaped bonus ball should be despawned")
	}
	if w.Resources.PointBalls.Count != 1 {
		t.Errorf("Bonus ball must not change the count, got %d", w.Resources.PointBalls.Count)
	}
}

// Test balls inside the margin survive, including past the goal planes
func TestCullKeepsBallsInMargin(t *testing.T) {
	w := newTestWorld(1)
	center := makeBall(w, core.BallPoint, vmath.Vec2{}, vmath.Vec2{})
	pastGoal := makeBall(w, core.BallPoint, vmath.Vec2{X: parameter.FieldWidth/2 + parameter.GoalOffset + 1}, vmath.Vec2{})

	NewCullSystem(w).Update()

	if !w.Components.Ball.Has(center) {
		t.Error("Center ball must survive")
	}
	if !w.Components.Ball.Has(pastGoal) {
		t.Error("Ball just past the goal plane must survive the cull margin")
	}
}
