package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundPaddleHit SoundType = iota // Ball deflected by a paddle
	SoundWallHit                    // Ball bounced off a wall
	SoundScore                      // Point ball scored
	SoundGold                       // Gold ball scored
	SoundBonus                      // Bonus ball effect triggered
	SoundSpawn                      // Ball materialized at center
	SoundTypeCount
)
