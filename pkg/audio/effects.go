package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// tone is a single oscillator note
type tone struct {
	freq     float64
	duration time.Duration
	square   bool
}

// Effect sequences per engine event
var (
	eatTones    = []tone{{freq: 660, duration: 60 * time.Millisecond}}
	goldenTones = []tone{{freq: 880, duration: 70 * time.Millisecond}, {freq: 1320, duration: 110 * time.Millisecond}}
	crashTones  = []tone{{freq: 120, duration: 250 * time.Millisecond, square: true}}
)

// newEffect builds a finite streamer that plays the tones back to back
func newEffect(rate beep.SampleRate, tones []tone) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		var (
			osc beep.Streamer
			err error
		)
		if t.square {
			osc, err = generators.SquareTone(rate, t.freq)
		} else {
			osc, err = generators.SineTone(rate, t.freq)
		}
		if err != nil {
			return nil, err
		}
		parts = append(parts, newFade(beep.Take(rate.N(t.duration), osc), rate.N(t.duration)))
	}
	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: -0.6}, nil
}

// fade applies a linear decay envelope so notes do not click when they end
type fade struct {
	streamer beep.Streamer
	total    int
	position int
}

func newFade(s beep.Streamer, total int) beep.Streamer {
	return &fade{streamer: s, total: total}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		env := 1 - float64(f.position)/float64(f.total)
		env = math.Max(env, 0)
		samples[i][0] *= env
		samples[i][1] *= env
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }
