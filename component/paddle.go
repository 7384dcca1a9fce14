package component

import (
	"github.com/lixenwraith/deflect/core"
)

// PaddleComponent tags one of the two paddle entities
// Side is mutated in place by the switch-side effect
type PaddleComponent struct {
	FirstPlayer bool
	Side        core.Side
}
