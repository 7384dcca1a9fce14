package physics

import (
	"github.com/lixenwraith/deflect/vmath"
)

// ResolveStatic pushes a dynamic body out of a static contact and reflects
// the velocity component moving into the surface
// pos/vel are mutated in place; contact normal points toward the body
func ResolveStatic(pos, vel *vmath.Vec2, contact Contact, restitution float64) {
	*pos = vmath.Add(*pos, vmath.Scale(contact.Normal, contact.Depth))

	vn := vmath.Dot(*vel, contact.Normal)
	if vn < 0 {
		*vel = vmath.Sub(*vel, vmath.Scale(contact.Normal, (1+restitution)*vn))
	}
}

// ResolveKinematic reflects a dynamic body off a moving kinematic body
// (a ball off a paddle). The paddle is unaffected; the reflection uses the
// velocity relative to the paddle so an advancing paddle adds pace
func ResolveKinematic(pos, vel *vmath.Vec2, bodyVel vmath.Vec2, contact Contact, restitution float64) {
	*pos = vmath.Add(*pos, vmath.Scale(contact.Normal, contact.Depth))

	rel := vmath.Sub(*vel, bodyVel)
	vn := vmath.Dot(rel, contact.Normal)
	if vn < 0 {
		*vel = vmath.Sub(*vel, vmath.Scale(contact.Normal, (1+restitution)*vn))
	}
}

// ResolveDynamic separates two equal-mass dynamic bodies and exchanges
// momentum along the contact normal
// The contact normal points from b toward a
func ResolveDynamic(aPos, aVel, bPos, bVel *vmath.Vec2, contact Contact, restitution float64) {
	half := vmath.Scale(contact.Normal, contact.Depth/2)
	*aPos = vmath.Add(*aPos, half)
	*bPos = vmath.Sub(*bPos, half)

	rel := vmath.Sub(*aVel, *bVel)
	vn := vmath.Dot(rel, contact.Normal)
	if vn >= 0 {
		return // Already separating
	}
	// Equal masses: each body receives half the impulse
	j := -(1 + restitution) * vn / 2
	impulse := vmath.Scale(contact.Normal, j)
	*aVel = vmath.Add(*aVel, impulse)
	*bVel = vmath.Sub(*bVel, impulse)
}

// SlideStatic pushes a kinematic body out of a static contact without
// changing its velocity (paddle against wall or net)
func SlideStatic(pos *vmath.Vec2, contact Contact) {
	*pos = vmath.Add(*pos, vmath.Scale(contact.Normal, contact.Depth))
}
