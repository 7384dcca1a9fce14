package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/deflect/core"
)

const sampleRate = beep.SampleRate(48000)

// Engine synthesizes and plays game sound effects
// A failed speaker init leaves the engine in silent mode; playback
// requests become no-ops rather than errors
type Engine struct {
	initialized atomic.Bool
	muted       atomic.Bool
}

func NewEngine() *Engine {
	return &Engine{}
}

// Init sets up the speaker; returns the error for diagnostics but the
// engine is usable (silently) regardless
func (e *Engine) Init() error {
	if e.initialized.Load() {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	e.initialized.Store(true)
	return nil
}

// ToggleMute flips the mute flag and returns the new state
func (e *Engine) ToggleMute() bool {
	return !e.muted.Swap(!e.muted.Load())
}

func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// Play queues the effect for the given sound type
func (e *Engine) Play(sound core.SoundType) {
	if !e.initialized.Load() || e.muted.Load() {
		return
	}
	if streamer := effectFor(sound); streamer != nil {
		speaker.Play(streamer)
	}
}

// effectFor builds the streamer for each game sound
func effectFor(sound core.SoundType) beep.Streamer {
	switch sound {
	case core.SoundPaddleHit:
		return NewTone(440, 40*time.Millisecond, WaveSquare, 0.2, sampleRate)
	case core.SoundWallHit:
		return NewTone(220, 30*time.Millisecond, WaveSquare, 0.15, sampleRate)
	case core.SoundScore:
		return beep.Seq(
			NewTone(523.25, 80*time.Millisecond, WaveSine, 0.25, sampleRate),
			NewTone(659.25, 120*time.Millisecond, WaveSine, 0.25, sampleRate),
		)
	case core.SoundGold:
		return beep.Seq(
			NewTone(523.25, 70*time.Millisecond, WaveSine, 0.3, sampleRate),
			NewTone(659.25, 70*time.Millisecond, WaveSine, 0.3, sampleRate),
			NewTone(783.99, 70*time.Millisecond, WaveSine, 0.3, sampleRate),
			NewTone(1046.5, 140*time.Millisecond, WaveSine, 0.3, sampleRate),
		)
	case core.SoundBonus:
		return beep.Seq(
			NewTone(392, 60*time.Millisecond, WaveTriangle, 0.25, sampleRate),
			NewTone(311.13, 100*time.Millisecond, WaveTriangle, 0.25, sampleRate),
		)
	case core.SoundSpawn:
		return NewTone(880, 50*time.Millisecond, WaveSine, 0.15, sampleRate)
	}
	return nil
}
