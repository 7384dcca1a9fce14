package engine

import (
	"github.com/lixenwraith/deflect/component"
)

// ComponentStore holds the typed store for every component in the game
// Systems reach components through direct field access; no reflection
type ComponentStore struct {
	Kinetic      *Store[component.KineticComponent]
	Collider     *Store[component.ColliderComponent]
	Ball         *Store[component.BallComponent]
	Paddle       *Store[component.PaddleComponent]
	Goal         *Store[component.GoalComponent]
	DelayedForce *Store[component.DelayedForceComponent]
}

func newComponentStore() (ComponentStore, []AnyStore) {
	cs := ComponentStore{
		Kinetic:      NewStore[component.KineticComponent](),
		Collider:     NewStore[component.ColliderComponent](),
		Ball:         NewStore[component.BallComponent](),
		Paddle:       NewStore[component.PaddleComponent](),
		Goal:         NewStore[component.GoalComponent](),
		DelayedForce: NewStore[component.DelayedForceComponent](),
	}
	all := []AnyStore{
		cs.Kinetic,
		cs.Collider,
		cs.Ball,
		cs.Paddle,
		cs.Goal,
		cs.DelayedForce,
	}
	return cs, all
}
