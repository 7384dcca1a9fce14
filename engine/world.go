package engine

import (
	"sync"

	"github.com/lixenwraith/deflect/core"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Components ComponentStore
	Resources  Resources

	allStores []AnyStore
	systems   []System
}

// NewWorld creates a new ECS world with all stores and resources initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources:    newResources(),
		systems:      make([]System, 0),
	}
	w.Components, w.allStores = newComponentStore()
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
// Destroying an already-destroyed entity is a no-op; a single frame's
// collision batch may reference an entity removed earlier in the batch
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.allStores {
		s.Remove(e)
	}
}

// Alive reports whether the entity still carries any component
func (w *World) Alive(e core.Entity) bool {
	for _, s := range w.allStores {
		if s.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, s := range w.allStores {
		s.Clear()
	}
}

// AddSystem registers a system, keeping the list sorted by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Bubble sort, small N
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in priority order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially in priority order
// The entire simulation is frame-stepped on one goroutine; the phase
// sequence is the only ordering mechanism
func (w *World) Update() {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update()
	}
}
