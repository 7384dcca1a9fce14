package event

// Type classifies a game event
type Type int

const (
	// EventSoundRequest requests audio playback
	// Trigger: gameplay systems | Consumer: audio handler | Payload: *SoundRequestPayload
	EventSoundRequest Type = iota

	// EventScoreChanged announces a score ledger update
	// Trigger: goal resolver | Consumer: presentation | Payload: *ScoreChangedPayload
	EventScoreChanged

	// EventBallSpawned announces a materialized ball
	// Trigger: spawn scheduler | Consumer: presentation | Payload: *BallSpawnedPayload
	EventBallSpawned

	// EventSideSwitched announces a completed side swap
	// Trigger: goal resolver | Consumer: presentation | Payload: nil
	EventSideSwitched
)

// GameEvent is a queued notification with its originating frame
type GameEvent struct {
	Type    Type
	Payload any
	Frame   int64
}
