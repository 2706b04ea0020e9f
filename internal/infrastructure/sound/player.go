// Package sound plays short synthesized feedback tones.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/boxclicker/internal/infrastructure/config"
)

const (
	hitDuration   = 60 * time.Millisecond
	chimeDuration = 90 * time.Millisecond

	baseFreq = 440.0
	// Pitch rises with box progress, up to one octave at 100
	freqPerProgress = baseFreq / 100
)

// Player mixes feedback tones into the speaker
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player; call Init before playing anything
func NewPlayer(cfg config.AudioConfig) *Player {
	return &Player{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
	}
}

// Init sets up the speaker
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: cannot init speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlayHit plays a short tone pitched by the box's progress
func (p *Player) PlayHit(progress int) {
	s, err := HitTone(p.rate, progress)
	if err != nil {
		log.Debug("hit tone skipped", "progress", progress, "err", err)
		return
	}
	p.play(s)
}

// PlayClear plays a rising two-note chime
func (p *Player) PlayClear() {
	s, err := ClearChime(p.rate)
	if err != nil {
		log.Debug("clear chime skipped", "err", err)
		return
	}
	p.play(s)
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Add(withVolume(s, p.volume))
	speaker.Unlock()
}

// Close stops playback and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// HitTone returns the tone for a hit at the given progress
func HitTone(rate beep.SampleRate, progress int) (beep.Streamer, error) {
	return tone(rate, baseFreq+freqPerProgress*float64(progress), hitDuration)
}

// ClearChime returns two rising notes
func ClearChime(rate beep.SampleRate) (beep.Streamer, error) {
	low, err := tone(rate, 660, chimeDuration)
	if err != nil {
		return nil, err
	}
	high, err := tone(rate, 990, chimeDuration)
	if err != nil {
		return nil, err
	}
	return beep.Seq(low, high), nil
}

func tone(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sound: %g Hz at %d Hz sample rate: %w", freq, rate, err)
	}
	return beep.Take(rate.N(d), sine), nil
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
