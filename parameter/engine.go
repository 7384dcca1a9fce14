package parameter

import "time"

// FrameInterval is the fixed simulation and render tick
const FrameInterval = 16 * time.Millisecond

// Event queue sizing; must be a power of two for mask indexing
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
