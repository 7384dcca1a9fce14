package system

import (
	"github.com/lixenwraith/deflect/audio"
	"github.com/lixenwraith/deflect/event"
)

// AudioHandler routes sound request events to the audio engine
// Registered on the event router; runs in the dispatch phase after the
// simulation systems
type AudioHandler struct {
	engine *audio.Engine
}

func NewAudioHandler(engine *audio.Engine) *AudioHandler {
	return &AudioHandler{engine: engine}
}

func (h *AudioHandler) EventTypes() []event.Type {
	return []event.Type{event.EventSoundRequest}
}

func (h *AudioHandler) HandleEvent(ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.SoundRequestPayload)
	if !ok {
		return
	}
	h.engine.Play(payload.Sound)
}
