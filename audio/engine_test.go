package audio

import (
	"testing"

	"github.com/lixenwraith/deflect/core"
)

// Test the mute toggle round trips
func TestEngineToggleMute(t *testing.T) {
	e := NewEngine()
	if e.IsMuted() {
		t.Error("Engine should start unmuted")
	}
	if !e.ToggleMute() {
		t.Error("First toggle should report muted")
	}
	if !e.IsMuted() {
		t.Error("Engine should be muted after toggle")
	}
	if e.ToggleMute() {
		t.Error("Second toggle should report unmuted")
	}
}

// Test playback on an uninitialized engine is a silent no-op
func TestEnginePlayUninitialized(t *testing.T) {
	e := NewEngine()
	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		e.Play(s) // must not panic without a speaker
	}
}

// Test every game sound has a synthesized effect
func TestEffectForAllSounds(t *testing.T) {
	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		if effectFor(s) == nil {
			t.Errorf("Sound %d has no effect", s)
		}
	}
}
