package physics

// Layer is a collision filter bitmask
// Two colliders interact when each one's mask contains the other's layer
type Layer uint8

const (
	LayerWall Layer = 1 << iota
	LayerNet
	LayerPaddle
	LayerBall
)

// Matches reports whether a collider on layer a with mask aMask interacts
// with a collider on layer b with mask bMask
func Matches(a, aMask, b, bMask Layer) bool {
	return aMask&b != 0 && bMask&a != 0
}
