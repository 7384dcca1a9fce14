package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-duration tone with a linear decay
// envelope to avoid clicks at the tail
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	volume   float64
	rate     beep.SampleRate
}

// NewTone creates a streamer playing a single decaying tone
func NewTone(freq float64, duration time.Duration, wave WaveType, volume float64, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		volume:   volume,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		// Linear decay envelope
		env := 1 - float64(o.position)/float64(o.duration)
		val *= o.volume * env

		samples[i][0] = val
		samples[i][1] = val

		o.position++
		o.phase += o.freq / float64(o.rate)
		if o.phase >= 1 {
			o.phase -= 1
		}
	}
	return len(samples), true
}

func (o *oscillator) Err() error {
	return nil
}
