package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/deflect/core"
	"github.com/lixenwraith/deflect/engine"
	"github.com/lixenwraith/deflect/event"
	"github.com/lixenwraith/deflect/parameter"
	"github.com/lixenwraith/deflect/physics"
	"github.com/lixenwraith/deflect/vmath"
)

// stubOverlap is a canned spatial query result
type stubOverlap struct {
	hits []core.Entity
}

func (s *stubOverlap) OverlapCircle(vmath.Vec2, float64, physics.Layer) []core.Entity {
	return s.hits
}

// Test a queued request materializes a fully assembled ball
func TestSpawnMaterializesBall(t *testing.T) {
	w := newTestWorld(1)
	w.Resources.SpawnQueue.PushBack(engine.SpawnRequest{Kind: core.BallPoint, Side: core.SideLeft})

	NewSpawnSystem(w, &stubOverlap{}).Update()

	if w.Resources.SpawnQueue.Len() != 0 {
		t.Error("Request should be consumed")
	}
	balls := w.Components.Ball.Entities()
	if len(balls) != 1 {
		t.Fatalf("Expected 1 ball, got %d", len(balls))
	}
	e := balls[0]
	if !w.Components.Kinetic.Has(e) || !w.Components.Collider.Has(e) || !w.Components.DelayedForce.Has(e) {
		t.Error("Spawned ball missing components")
	}
	kin, _ := w.Components.Kinetic.Get(e)
	if kin.Pos != (vmath.Vec2{}) {
		t.Errorf("Ball should spawn at field center, got %v", kin.Pos)
	}
	col, _ := w.Components.Collider.Get(e)
	if col.Radius != parameter.BallRadius {
		t.Errorf("Point ball radius %v, expected %v", col.Radius, parameter.BallRadius)
	}
}

// Test the launch impulse direction honors the requested side
func TestSpawnDirectionMatchesSide(t *testing.T) {
	cases := []struct {
		side  core.Side
		wantX float64
	}{
		{core.SideLeft, -1},
		{core.SideRight, 1},
	}
	for _, tc := range cases {
		w := newTestWorld(7)
		w.Resources.SpawnQueue.PushBack(engine.SpawnRequest{Kind: core.BallPoint, Side: tc.side})
		NewSpawnSystem(w, &stubOverlap{}).Update()

		balls := w.Components.Ball.Entities()
		if len(balls) != 1 {
			t.Fatalf("side %v: expected 1 ball, got %d", tc.side, len(balls))
		}
		force, _ := w.Components.DelayedForce.Get(balls[0])
		if force.Impulse.X*tc.wantX <= 0 {
			t.Errorf("side %v: impulse X %v has wrong sign", tc.side, force.Impulse.X)
		}
		mag := vmath.Mag(force.Impulse)
		if math.Abs(mag-parameter.BallLaunchSpeed) > 1e-9 {
			t.Errorf("side %v: impulse magnitude %v, expected %v", tc.side, mag, parameter.BallLaunchSpeed)
		}
		// Forward cone: |Y| never exceeds |X|
		if math.Abs(force.Impulse.Y) > math.Abs(force.Impulse.X) {
			t.Errorf("side %v: impulse %v outside the launch cone", tc.side, force.Impulse)
		}
	}
}

// Test a bonus ball spawns with the reduced radius
func TestSpawnBonusBallSmaller(t *testing.T) {
	w := newTestWorld(1)
	w.Resources.SpawnQueue.PushBack(engine.SpawnRequest{Kind: core.BallMulti, Side: core.SideRight})

	NewSpawnSystem(w, &stubOverlap{}).Update()

	balls := w.Components.Ball.Entities()
	if len(balls) != 1 {
		t.Fatalf("Expected 1 ball, got %d", len(balls))
	}
	col, _ := w.Components.Collider.Get(balls[0])
	want := parameter.BallRadius * parameter.BonusRadiusFactor
	if col.Radius != want {
		t.Errorf("Bonus ball radius %v, expected %v", col.Radius, want)
	}
}

// Test a blocked spawn zone leaves the request queued
func TestSpawnBlockedZoneKeepsRequest(t *testing.T) {
	w := newTestWorld(1)
	w.Resources.SpawnQueue.PushBack(engine.SpawnRequest{Kind: core.BallPoint, Side: core.SideRandom})
	blocker := w.CreateEntity()

	sys := NewSpawnSystem(w, &stubOverlap{hits: []core.Entity{blocker}})
	sys.Update()
	sys.Update()

	if w.Resources.SpawnQueue.Len() != 1 {
		t.Errorf("Blocked request should stay queued, queue len %d", w.Resources.SpawnQueue.Len())
	}
	if w.Components.Ball.Count() != 0 {
		t.Error("No ball should spawn while the zone is blocked")
	}
}

// Test the cooldown throttles to one spawn per second
func TestSpawnCooldownThrottles(t *testing.T) {
	w := newTestWorld(1)
	sys := NewSpawnSystem(w, &stubOverlap{})

	w.Resources.SpawnQueue.PushBack(engine.SpawnRequest{Kind: core.BallPoint, Side: core.SideLeft})
	sys.Update()
	if w.Components.Ball.Count() != 1 {
		t.Fatalf("Expected first spawn immediately, got %d balls", w.Components.Ball.Count())
	}

	w.Resources.SpawnQueue.PushBack(engine.SpawnRequest{Kind: core.BallPoint, Side: core.SideRight})
	ticks := int(parameter.SpawnCooldown / testDelta) // still cooling through these
	for i := 0; i < ticks; i++ {
		sys.Update()
	}
	if w.Components.Ball.Count() != 1 {
		t.Errorf("Second spawn fired during cooldown, %d balls", w.Components.Ball.Count())
	}

	sys.Update()
	if w.Components.Ball.Count() != 2 {
		t.Errorf("Second spawn should fire after cooldown, %d balls", w.Components.Ball.Count())
	}
}

// Test a blocked attempt does not arm the cooldown
func TestSpawnBlockedAttemptSkipsCooldown(t *testing.T) {
	w := newTestWorld(1)
	blocker := w.CreateEntity()
	overlap := &stubOverlap{hits: []core.Entity{blocker}}
	sys := NewSpawnSystem(w, overlap)

	w.Resources.SpawnQueue.PushBack(engine.SpawnRequest{Kind: core.BallPoint, Side: core.SideLeft})
	sys.Update()
	if w.Components.Ball.Count() != 0 {
		t.Fatal("Spawn should be blocked")
	}

	// Zone clears; the very next tick must spawn, no cooldown wait
	overlap.hits = nil
	sys.Update()
	if w.Components.Ball.Count() != 1 {
		t.Errorf("Spawn should fire immediately once unblocked, %d balls", w.Components.Ball.Count())
	}
}

// Test spawn announces the ball and requests the spawn sound
func TestSpawnEmitsEvents(t *testing.T) {
	w := newTestWorld(1)
	w.Resources.SpawnQueue.PushBack(engine.SpawnRequest{Kind: core.BallGold, Side: core.SideLeft})

	NewSpawnSystem(w, &stubOverlap{}).Update()

	var spawned *event.BallSpawnedPayload
	var sound bool
	for _, ev := range w.Resources.Events.Consume() {
		switch ev.Type {
		case event.EventBallSpawned:
			spawned, _ = ev.Payload.(*event.BallSpawnedPayload)
		case event.EventSoundRequest:
			if p, ok := ev.Payload.(*event.SoundRequestPayload); ok && p.Sound == core.SoundSpawn {
				sound = true
			}
		}
	}
	if spawned == nil {
		t.Fatal("No ball-spawned event emitted")
	}
	if spawned.Kind != core.BallGold {
		t.Errorf("Spawned event kind %v, expected gold", spawned.Kind)
	}
	if !w.Components.Ball.Has(spawned.Entity) {
		t.Error("Spawned event references a missing entity")
	}
	if !sound {
		t.Error("No spawn sound requested")
	}
}

// Test the deferred impulse applies exactly once on the following tick
func TestSpawnLaunchAppliesNextTick(t *testing.T) {
	w := newTestWorld(1)
	w.Resources.SpawnQueue.PushBack(engine.SpawnRequest{Kind: core.BallPoint, Side: core.SideRight})

	NewSpawnSystem(w, &stubOverlap{}).Update()
	ball := w.Components.Ball.Entities()[0]
	kin, _ := w.Components.Kinetic.Get(ball)
	if kin.Vel != (vmath.Vec2{}) {
		t.Errorf("Ball should rest until the force phase, vel %v", kin.Vel)
	}

	force := NewForceSystem(w)
	force.Update()
	kin, _ = w.Components.Kinetic.Get(ball)
	if vmath.Mag(kin.Vel) == 0 {
		t.Fatal("Force phase should launch the ball")
	}
	if w.Components.DelayedForce.Has(ball) {
		t.Error("Impulse marker should be consumed")
	}

	before := kin.Vel
	force.Update()
	kin, _ = w.Components.Kinetic.Get(ball)
	if kin.Vel != before {
		t.Error("Impulse must not apply twice")
	}
}

// Test an empty queue is a no-op
func TestSpawnEmptyQueueNoop(t *testing.T) {
	w := newTestWorld(1)
	NewSpawnSystem(w, &stubOverlap{}).Update()
	if w.Components.Ball.Count() != 0 {
		t.Error("Nothing should spawn from an empty queue")
	}
}
