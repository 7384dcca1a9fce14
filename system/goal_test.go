package system

import (
	"testing"

	"github.com/lixenwraith/deflect/core"
	"github.com/lixenwraith/deflect/engine"
	"github.com/lixenwraith/deflect/event"
	"github.com/lixenwraith/deflect/parameter"
	"github.com/lixenwraith/deflect/vmath"
)

// Test a point ball credits one point to the goal owner and despawns
func TestGoalPointBallScoresOne(t *testing.T) {
	w := newTestWorld(1)
	w.Resources.PointBalls.Count = 1

	ball := makeBall(w, core.BallPoint, vmath.Vec2{}, vmath.Vec2{})
	goal := makeGoal(w, true, core.SideLeft)
	w.Resources.Collisions.Append(ball, goal)

	NewGoalSystem(w).Update()

	if w.Resources.Score.FirstPlayer != parameter.ScorePoint {
		t.Errorf("Expected first player score %d, got %d", parameter.ScorePoint, w.Resources.Score.FirstPlayer)
	}
	if w.Resources.Score.SecondPlayer != 0 {
		t.Errorf("Second player score should be 0, got %d", w.Resources.Score.SecondPlayer)
	}
	if w.Resources.PointBalls.Count != 0 {
		t.Errorf("Point ball count should drop to 0, got %d", w.Resources.PointBalls.Count)
	}
	if w.Components.Ball.Has(ball) {
		t.Error("Scored ball should be despawned")
	}
	if !w.Components.Goal.Has(goal) {
		t.Error("Goal should survive the contact")
	}
}

// Test a gold ball is worth triple
func TestGoalGoldBallScoresTriple(t *testing.T) {
	w := newTestWorld(1)
	w.Resources.PointBalls.Count = 1

	ball := makeBall(w, core.BallGold, vmath.Vec2{}, vmath.Vec2{})
	goal := makeGoal(w, false, core.SideRight)
	w.Resources.Collisions.Append(goal, ball) // reversed order must also pair

	NewGoalSystem(w).Update()

	if w.Resources.Score.SecondPlayer != parameter.ScoreGold {
		t.Errorf("Expected second player score %d, got %d", parameter.ScoreGold, w.Resources.Score.SecondPlayer)
	}
	sounds := drainSounds(w)
	if !containsSound(sounds, core.SoundGold) {
		t.Errorf("Expected gold sound, got %v", sounds)
	}
}

// Test scoring emits a score-changed event with the updated ledger
func TestGoalScoreChangedEvent(t *testing.T) {
	w := newTestWorld(1)
	ball := makeBall(w, core.BallPoint, vmath.Vec2{}, vmath.Vec2{})
	goal := makeGoal(w, true, core.SideLeft)
	w.Resources.Collisions.Append(ball, goal)

	NewGoalSystem(w).Update()

	var found bool
	for _, ev := range w.Resources.Events.Consume() {
		if ev.Type != event.EventScoreChanged {
			continue
		}
		found = true
		p, ok := ev.Payload.(*event.ScoreChangedPayload)
		if !ok {
			t.Fatal("Score event payload has wrong type")
		}
		if p.FirstPlayer != 1 || p.SecondPlayer != 0 {
			t.Errorf("Payload ledger (%d,%d), expected (1,0)", p.FirstPlayer, p.SecondPlayer)
		}
	}
	if !found {
		t.Error("No score-changed event emitted")
	}
}

// Test a multi ball queues two urgent replacements toward the scoring side
func TestGoalMultiBallQueuesTwoReplacements(t *testing.T) {
	w := newTestWorld(1)
	ball := makeBall(w, core.BallMulti, vmath.Vec2{}, vmath.Vec2{})
	goal := makeGoal(w, true, core.SideLeft)
	w.Resources.Collisions.Append(ball, goal)

	NewGoalSystem(w).Update()

	if got := w.Resources.SpawnQueue.Len(); got != 2 {
		t.Fatalf("Expected 2 queued replacements, got %d", got)
	}
	for i := 0; i < 2; i++ {
		req, _ := w.Resources.SpawnQueue.PopFront()
		if req.Side != core.SideLeft {
			t.Errorf("Replacement %d side %v, expected left", i, req.Side)
		}
		if !req.Kind.IsScoring() {
			t.Errorf("Replacement %d kind %v should be a scoring kind", i, req.Kind)
		}
	}
	if w.Resources.Score.FirstPlayer != 0 || w.Resources.Score.SecondPlayer != 0 {
		t.Error("Multi ball must not score")
	}
	if w.Components.Ball.Has(ball) {
		t.Error("Multi ball should be despawned")
	}
}

// Test multi replacements pre-empt an already queued bonus request
func TestGoalMultiReplacementsPreemptQueue(t *testing.T) {
	w := newTestWorld(1)
	w.Resources.SpawnQueue.PushBack(engine.SpawnRequest{Kind: core.BallSwitchSide, Side: core.SideRandom})

	ball := makeBall(w, core.BallMulti, vmath.Vec2{}, vmath.Vec2{})
	goal := makeGoal(w, false, core.SideRight)
	w.Resources.Collisions.Append(ball, goal)

	NewGoalSystem(w).Update()

	if got := w.Resources.SpawnQueue.Len(); got != 3 {
		t.Fatalf("Expected 3 queued requests, got %d", got)
	}
	front, _ := w.Resources.SpawnQueue.Front()
	if !front.Kind.IsScoring() {
		t.Errorf("Front request kind %v, expected a scoring replacement", front.Kind)
	}
}

// Test the switch-side ball swaps paddle sides, positions, and goal ownership
func TestGoalSwitchSideSwapsField(t *testing.T) {
	w := newTestWorld(1)
	BuildField(w)

	paddles := w.Components.Paddle.Entities()
	if len(paddles) != 2 {
		t.Fatalf("Expected 2 paddles, got %d", len(paddles))
	}
	posBefore := map[bool]vmath.Vec2{}
	for _, e := range paddles {
		p, _ := w.Components.Paddle.Get(e)
		kin, _ := w.Components.Kinetic.Get(e)
		posBefore[p.FirstPlayer] = kin.Pos
	}

	var goal core.Entity
	for _, e := range w.Components.Goal.Entities() {
		g, _ := w.Components.Goal.Get(e)
		if g.FirstPlayer {
			goal = e
		}
	}
	ball := makeBall(w, core.BallSwitchSide, vmath.Vec2{}, vmath.Vec2{})
	w.Resources.Collisions.Append(ball, goal)

	NewGoalSystem(w).Update()

	for _, e := range paddles {
		p, _ := w.Components.Paddle.Get(e)
		kin, _ := w.Components.Kinetic.Get(e)
		if p.FirstPlayer && p.Side != core.SideRight {
			t.Errorf("First paddle side %v after switch, expected right", p.Side)
		}
		if !p.FirstPlayer && p.Side != core.SideLeft {
			t.Errorf("Second paddle side %v after switch, expected left", p.Side)
		}
		if kin.Pos != posBefore[!p.FirstPlayer] {
			t.Errorf("Paddle position %v, expected the other paddle's old position %v",
				kin.Pos, posBefore[!p.FirstPlayer])
		}
	}

	// Goal ownership follows the controller to the new side
	g, _ := w.Components.Goal.Get(goal)
	if g.FirstPlayer {
		t.Error("Goal ownership should flip on side switch")
	}
	if w.Resources.Score.FirstPlayer != 0 || w.Resources.Score.SecondPlayer != 0 {
		t.Error("Switch-side ball must not score")
	}

	var switched bool
	for _, ev := range w.Resources.Events.Consume() {
		if ev.Type == event.EventSideSwitched {
			switched = true
		}
	}
	if !switched {
		t.Error("No side-switched event emitted")
	}
}

// Test a duplicated contact pair scores only once
func TestGoalDuplicateContactScoresOnce(t *testing.T) {
	w := newTestWorld(1)
	ball := makeBall(w, core.BallPoint, vmath.Vec2{}, vmath.Vec2{})
	goal := makeGoal(w, true, core.SideLeft)
	w.Resources.Collisions.Append(ball, goal)
	w.Resources.Collisions.Append(goal, ball)

	NewGoalSystem(w).Update()

	if w.Resources.Score.FirstPlayer != 1 {
		t.Errorf("Duplicate contact scored %d, expected 1", w.Resources.Score.FirstPlayer)
	}
}

// Test non-goal contact pairs are ignored
func TestGoalIgnoresNonGoalPairs(t *testing.T) {
	w := newTestWorld(1)
	a := makeBall(w, core.BallPoint, vmath.Vec2{}, vmath.Vec2{})
	b := makeBall(w, core.BallPoint, vmath.Vec2{}, vmath.Vec2{})
	w.Resources.Collisions.Append(a, b)

	NewGoalSystem(w).Update()

	if w.Resources.Score.FirstPlayer != 0 || w.Resources.Score.SecondPlayer != 0 {
		t.Error("Ball-ball contact must not score")
	}
	if !w.Components.Ball.Has(a) || !w.Components.Ball.Has(b) {
		t.Error("Balls in a non-goal contact must survive")
	}
}

// Test the collision buffer is drained even when nothing matches
func TestGoalDrainsBuffer(t *testing.T) {
	w := newTestWorld(1)
	a := makeBall(w, core.BallPoint, vmath.Vec2{}, vmath.Vec2{})
	b := makeBall(w, core.BallPoint, vmath.Vec2{}, vmath.Vec2{})
	w.Resources.Collisions.Append(a, b)

	NewGoalSystem(w).Update()

	if w.Resources.Collisions.Len() != 0 {
		t.Errorf("Buffer should be empty after update, got %d pairs", w.Resources.Collisions.Len())
	}
}
