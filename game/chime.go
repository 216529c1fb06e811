package game

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeDuration   = 180 * time.Millisecond
	chimeBaseFreq   = 880.0
	chimeVolume     = 0.25
)

// Chime plays a short rising tone through the speaker
type Chime struct {
	sampleRate beep.SampleRate
	duration   time.Duration
	freq       float64
	volume     float64
}

// NewChime initializes the speaker and returns a ready chime
func NewChime() (*Chime, error) {
	if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return newChime(), nil
}

func newChime() *Chime {
	return &Chime{
		sampleRate: chimeSampleRate,
		duration:   chimeDuration,
		freq:       chimeBaseFreq,
		volume:     chimeVolume,
	}
}

// Play queues one tone; it does not block
func (c *Chime) Play() {
	speaker.Play(c.tone())
}

// tone returns a sine sweep from freq to 2*freq with a linear fade out
func (c *Chime) tone() beep.Streamer {
	total := c.sampleRate.N(c.duration)
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			progress := float64(pos) / float64(total)
			freq := c.freq * (1 + progress)
			phase += 2 * math.Pi * freq / float64(c.sampleRate)
			v := math.Sin(phase) * c.volume * (1 - progress)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}
