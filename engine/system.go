package engine

// System is one phase of the per-frame simulation sequence
type System interface {
	// Update runs the system's frame phase
	Update()

	// Priority orders systems; lower values run first
	Priority() int

	// Name identifies the system in diagnostics
	Name() string
}
