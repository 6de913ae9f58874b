// Package audio synthesizes and plays the game's sound effects through the
// system speaker. Sounds are generated on the fly; there are no sound files.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-bricker/internal/scene"
)

const sampleRate = beep.SampleRate(44100)

// Sound names.
const (
	Blop = "blop"
)

// Player owns the speaker and a mixer that every sound is added to.
// The zero value is not usable; call NewPlayer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Nothing is audible until Initialize succeeds.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences every playing sound and releases the speaker.
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

// ReadSound returns the named sound. Unknown names play nothing.
func (p *Player) ReadSound(name string) scene.Sound {
	switch name {
	case Blop:
		return &effect{p: p, stream: func() beep.Streamer {
			return beep.Take(sampleRate.N(90*time.Millisecond), NewBlopGenerator(sampleRate, 520))
		}}
	default:
		return Silent{}
	}
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

type effect struct {
	p      *Player
	stream func() beep.Streamer
}

func (e *effect) Play() {
	e.p.play(e.stream())
}

// Silent is a sound that plays nothing.
type Silent struct{}

func (Silent) Play() {}

// Muted is a SoundReader whose sounds are all Silent.
type Muted struct{}

// ReadSound implements scene.SoundReader.
func (Muted) ReadSound(string) scene.Sound { return Silent{} }

// BlopGenerator is a short sine tone with a falling pitch and an
// exponential decay, the sound of a ball hitting something.
type BlopGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBlopGenerator creates a blop starting at freq Hz.
func NewBlopGenerator(sr beep.SampleRate, freq float64) *BlopGenerator {
	return &BlopGenerator{sr: sr, freq: freq}
}

func (g *BlopGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 40)
		freq := g.freq * (1 - 0.4*math.Min(t/0.09, 1))
		sample := 0.3 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlopGenerator) Err() error {
	return nil
}
