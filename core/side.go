package core

// Side identifies a horizontal half of the field
// SideRandom is only meaningful in spawn requests, where it resolves
// to a coin flip at materialization time
type Side int8

const (
	SideRandom Side = iota
	SideLeft
	SideRight
)

// Opposite returns the mirrored side. SideRandom has no mirror
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideRandom
	}
}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "random"
	}
}
