// Package audio plays the optional jump sound through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(48000)
	jumpDuration = 120 * time.Millisecond
)

// SoundManager owns the speaker and a mixer the effects are added to.
// The speaker pulls from the mixer on its own goroutine.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a manager. Nothing plays until Initialize.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: -1,
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything. beep has no way to close the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayJump plays a short rising chirp.
func (sm *SoundManager) PlayJump() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := &effects.Volume{
		Streamer: NewChirpGenerator(sampleRate, 300, 900, jumpDuration),
		Base:     2,
		Volume:   sm.volume,
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ChirpGenerator is a sine sweep from one frequency to another with a
// linear fade out. It ends after its duration.
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	samples  int
}

// NewChirpGenerator creates a chirp from freq from to freq to over d.
func NewChirpGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(d),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}

		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress
		sample := 0.3 * (1 - progress) * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}
