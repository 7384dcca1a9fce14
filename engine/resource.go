package engine

import (
	"time"

	"github.com/lixenwraith/deflect/core"
	"github.com/lixenwraith/deflect/event"
	"github.com/lixenwraith/deflect/vmath"
)

// Resources holds the singleton simulation state shared between systems
// Initialized once at startup; each system reads the fields it needs.
// All mutation happens inside the sequential frame phases, one writer
// per resource per phase
type Resources struct {
	Time       *TimeResource
	Score      *ScoreResource
	PointBalls *PointBallResource
	SpawnQueue *SpawnQueueResource
	Collisions *CollisionBuffer
	Pointer    *PointerResource
	Events     *event.Queue
	Rand       *vmath.FastRand
}

func newResources() Resources {
	return Resources{
		Time:       &TimeResource{},
		Score:      &ScoreResource{},
		PointBalls: &PointBallResource{},
		SpawnQueue: &SpawnQueueResource{},
		Collisions: &CollisionBuffer{},
		Pointer:    &PointerResource{},
		Events:     event.NewQueue(),
		Rand:       vmath.NewFastRand(uint64(time.Now().UnixNano())),
	}
}

// TimeResource carries frame timing; updated by the main loop before
// each World.Update
type TimeResource struct {
	GameTime    time.Time
	DeltaTime   time.Duration
	FrameNumber int64
}

// ScoreResource is the score ledger: two non-negative counters, read by
// the presentation layer
type ScoreResource struct {
	FirstPlayer  int
	SecondPlayer int
}

// Add credits points to the player identified by the goal ownership flag
func (s *ScoreResource) Add(firstPlayer bool, points int) {
	if firstPlayer {
		s.FirstPlayer += points
	} else {
		s.SecondPlayer += points
	}
}

// PointBallResource tracks how many must-score balls are in flight or
// queued, so the field is never flooded with point balls
type PointBallResource struct {
	Count uint8
}

// Decrement lowers the count, saturating at zero
func (p *PointBallResource) Decrement() {
	if p.Count > 0 {
		p.Count--
	}
}

// SpawnRequest is a queued ball materialization order
type SpawnRequest struct {
	Kind core.BallKind
	Side core.Side
}

// SpawnQueueResource is the FIFO of pending spawn requests
// Urgent requests (point-ball replenishment, multi-ball replacements)
// pre-empt via PushFront
type SpawnQueueResource struct {
	requests []SpawnRequest
}

func (q *SpawnQueueResource) PushBack(r SpawnRequest) {
	q.requests = append(q.requests, r)
}

func (q *SpawnQueueResource) PushFront(r SpawnRequest) {
	q.requests = append([]SpawnRequest{r}, q.requests...)
}

// Front peeks the oldest eligible request without consuming it
func (q *SpawnQueueResource) Front() (SpawnRequest, bool) {
	if len(q.requests) == 0 {
		return SpawnRequest{}, false
	}
	return q.requests[0], true
}

// PopFront consumes the front request
func (q *SpawnQueueResource) PopFront() (SpawnRequest, bool) {
	if len(q.requests) == 0 {
		return SpawnRequest{}, false
	}
	r := q.requests[0]
	q.requests = q.requests[1:]
	return r, true
}

func (q *SpawnQueueResource) Len() int {
	return len(q.requests)
}

// CollisionPair names the two entities of a collision-begin contact
// Order carries no meaning; consumers must pair symmetrically
type CollisionPair struct {
	A, B core.Entity
}

// CollisionBuffer is the frame-scoped contact list filled by the physics
// step and drained exactly once by the goal resolver on the next frame
// Contacts not consumed in a frame are lost, never backlogged
type CollisionBuffer struct {
	pairs []CollisionPair
}

func (b *CollisionBuffer) Append(a, bb core.Entity) {
	b.pairs = append(b.pairs, CollisionPair{A: a, B: bb})
}

// Drain returns all buffered contacts and empties the buffer
func (b *CollisionBuffer) Drain() []CollisionPair {
	pairs := b.pairs
	b.pairs = nil
	return pairs
}

func (b *CollisionBuffer) Len() int {
	return len(b.pairs)
}

// PointerResource mirrors the terminal pointer: cell coordinates and
// primary button state. Written by the input layer, read by the paddle
// controller
type PointerResource struct {
	X, Y int
	Held bool
}
