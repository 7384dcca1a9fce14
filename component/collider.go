package component

import (
	"github.com/lixenwraith/deflect/physics"
	"github.com/lixenwraith/deflect/vmath"
)

// ColliderBody selects the collision response class
type ColliderBody uint8

const (
	// BodyStatic never moves (walls, net, goals)
	BodyStatic ColliderBody = iota
	// BodyKinematic moves under controller velocity, unaffected by contacts (paddles)
	BodyKinematic
	// BodyDynamic moves and responds to contacts (balls)
	BodyDynamic
)

// ColliderComponent attaches a collision shape to an entity
// Static shapes use the entity's kinetic position as the shape anchor;
// halfspaces additionally carry an inward normal
type ColliderComponent struct {
	Shape       physics.Shape
	Body        ColliderBody
	Layer       physics.Layer // What this collider is
	Mask        physics.Layer // What it collides with
	Restitution float64
	// Sensor colliders report contacts without applying a response
	Sensor bool

	// Circle
	Radius float64
	// Box
	HalfW, HalfH float64
	// Halfspace inward normal
	Normal vmath.Vec2
}
