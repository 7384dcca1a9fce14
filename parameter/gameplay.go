package parameter

import "time"

// Ball Spawning
const (
	// SpawnCooldown is armed after each successful spawn; while the
	// spawn zone is blocked or the queue is empty the timer stays
	// elapsed so the next attempt happens on the following tick
	SpawnCooldown = time.Second

	// SpawnConeRadians is the width of the forward launch cone,
	// measured up from the horizontal
	SpawnConeRadians = 0.7853981633974483 // pi/4

	// BallLaunchSpeed is the impulse magnitude applied one tick after spawn
	BallLaunchSpeed = 640.0
)

// Bonus Policy
const (
	// BonusInterval is the cadence of bonus ball enqueueing
	BonusInterval = 8 * time.Second

	// BonusMultiChance selects Multi over SwitchSide
	BonusMultiChance = 0.2
)

// Point-Ball Policy
const (
	// GoldChance upgrades a replenished point ball to gold
	GoldChance = 0.02

	ScorePoint = 1
	ScoreGold  = 3
)

// Paddle Control
const (
	// PaddleSpeed caps the human paddle; tracking is effectively
	// instant, the per-tick overshoot clamp does the real limiting
	PaddleSpeed = 5000.0

	// PaddleSpeedAuto caps the autonomous paddle
	PaddleSpeedAuto = 500.0
)
