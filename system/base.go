package system

import (
	"github.com/lixenwraith/deflect/engine"
)

// SystemBase provides the common dependencies for all systems
// Embed in a system struct to eliminate boilerplate
type SystemBase struct {
	World *engine.World
	Res   engine.Resources
	Com   engine.ComponentStore
}

// NewSystemBase initializes base dependencies from the world
// Call once in the system constructor
func NewSystemBase(w *engine.World) SystemBase {
	return SystemBase{
		World: w,
		Res:   w.Resources,
		Com:   w.Components,
	}
}
