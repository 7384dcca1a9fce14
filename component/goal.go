package component

import (
	"github.com/lixenwraith/deflect/core"
)

// GoalComponent tags a goal sensor plane
// FirstPlayer flips under the switch-side effect so scoring stays
// attributed to the controlling player, not the physical side
type GoalComponent struct {
	FirstPlayer bool
	Side        core.Side
}
