package system

import (
	"github.com/lixenwraith/deflect/core"
	"github.com/lixenwraith/deflect/engine"
	"github.com/lixenwraith/deflect/event"
	"github.com/lixenwraith/deflect/parameter"
)

// GoalSystem resolves ball/goal contacts from the frame's collision
// buffer: scoring, bonus effects, and despawning
// Pairing is symmetric; either entity of a contact may be the goal
type GoalSystem struct {
	SystemBase
}

func NewGoalSystem(world *engine.World) engine.System {
	return &GoalSystem{SystemBase: NewSystemBase(world)}
}

func (s *GoalSystem) Name() string {
	return "goal"
}

func (s *GoalSystem) Priority() int {
	return parameter.PriorityGoal
}

func (s *GoalSystem) Update() {
	for _, pair := range s.Res.Collisions.Drain() {
		goalEnt, ballEnt, ok := s.pairGoalBall(pair)
		if !ok {
			continue
		}

		// A ball despawned earlier in this batch no longer has its
		// component; the lookup failing is the defensive no-op
		ball, ok := s.Com.Ball.Get(ballEnt)
		if !ok {
			continue
		}
		goal, ok := s.Com.Goal.Get(goalEnt)
		if !ok {
			continue
		}

		switch ball.Kind {
		case core.BallPoint:
			s.scorePoints(goal.FirstPlayer, parameter.ScorePoint, core.SoundScore)
		case core.BallGold:
			s.scorePoints(goal.FirstPlayer, parameter.ScoreGold, core.SoundGold)
		case core.BallMulti:
			// Two replacements launch back toward the scoring side
			s.Res.SpawnQueue.PushFront(engine.SpawnRequest{
				Kind: rollPointKind(s.Res.Rand),
				Side: goal.Side,
			})
			s.Res.SpawnQueue.PushFront(engine.SpawnRequest{
				Kind: rollPointKind(s.Res.Rand),
				Side: goal.Side,
			})
			s.requestSound(core.SoundBonus)
		case core.BallSwitchSide:
			s.switchSides()
			s.requestSound(core.SoundBonus)
			s.Res.Events.Push(event.GameEvent{
				Type:  event.EventSideSwitched,
				Frame: s.Res.Time.FrameNumber,
			})
		}

		s.World.DestroyEntity(ballEnt)
	}
}

// pairGoalBall identifies which entity of a contact is the goal and
// which is the ball; reports false when the contact is not a goal pair
func (s *GoalSystem) pairGoalBall(pair engine.CollisionPair) (core.Entity, core.Entity, bool) {
	if s.Com.Goal.Has(pair.A) && s.Com.Ball.Has(pair.B) {
		return pair.A, pair.B, true
	}
	if s.Com.Goal.Has(pair.B) && s.Com.Ball.Has(pair.A) {
		return pair.B, pair.A, true
	}
	return 0, 0, false
}

func (s *GoalSystem) scorePoints(firstPlayer bool, points int, sound core.SoundType) {
	s.Res.Score.Add(firstPlayer, points)
	s.Res.PointBalls.Decrement()
	s.requestSound(sound)
	s.Res.Events.Push(event.GameEvent{
		Type: event.EventScoreChanged,
		Payload: &event.ScoreChangedPayload{
			FirstPlayer:  s.Res.Score.FirstPlayer,
			SecondPlayer: s.Res.Score.SecondPlayer,
		},
		Frame: s.Res.Time.FrameNumber,
	})
}

// switchSides flips both paddles' side assignment, swaps their physical
// positions, and flips every goal's ownership so scoring stays bound to
// the controlling player
func (s *GoalSystem) switchSides() {
	paddles := s.Com.Paddle.Entities()
	if len(paddles) != 2 {
		return // Field not fully built; nothing sane to swap
	}
	first, second := paddles[0], paddles[1]

	s.flipPaddleSide(first)
	s.flipPaddleSide(second)

	firstKin, okA := s.Com.Kinetic.Get(first)
	secondKin, okB := s.Com.Kinetic.Get(second)
	if okA && okB {
		// Swap positions only; velocities stay with their controllers
		firstKin.Pos, secondKin.Pos = secondKin.Pos, firstKin.Pos
		s.Com.Kinetic.Set(first, firstKin)
		s.Com.Kinetic.Set(second, secondKin)
	}

	for _, e := range s.Com.Goal.Entities() {
		goal, ok := s.Com.Goal.Get(e)
		if !ok {
			continue
		}
		goal.FirstPlayer = !goal.FirstPlayer
		s.Com.Goal.Set(e, goal)
	}
}

func (s *GoalSystem) flipPaddleSide(e core.Entity) {
	paddle, ok := s.Com.Paddle.Get(e)
	if !ok {
		return
	}
	paddle.Side = paddle.Side.Opposite()
	s.Com.Paddle.Set(e, paddle)
}

func (s *GoalSystem) requestSound(sound core.SoundType) {
	s.Res.Events.Push(event.GameEvent{
		Type:    event.EventSoundRequest,
		Payload: &event.SoundRequestPayload{Sound: sound},
		Frame:   s.Res.Time.FrameNumber,
	})
}
