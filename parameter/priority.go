package parameter

// System priorities; lower runs first. The fixed phase sequence is the
// only ordering guarantee in the simulation: deferred launch impulses
// apply before anything else moves, the goal resolver drains the
// previous physics step's collision buffer, and the physics step runs
// after all control systems so its contacts are consumed next frame
const (
	PriorityForce   = 10
	PriorityGoal    = 20
	PriorityPoint   = 30
	PriorityBonus   = 40
	PrioritySpawn   = 50
	PriorityPaddle  = 60
	PriorityPhysics = 70
	PriorityCull    = 80
)
