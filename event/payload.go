package event

import (
	"github.com/lixenwraith/deflect/core"
)

// SoundRequestPayload asks the audio handler for a sound effect
type SoundRequestPayload struct {
	Sound core.SoundType
}

// ScoreChangedPayload carries the updated ledger values
type ScoreChangedPayload struct {
	FirstPlayer  int
	SecondPlayer int
}

// BallSpawnedPayload identifies a freshly materialized ball
type BallSpawnedPayload struct {
	Entity core.Entity
	Kind   core.BallKind
}
