package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const sampleRate = beep.SampleRate(44100)

// Tone frequencies in Hz.
const (
	eatFreq      = 880
	gameOverLow  = 220
	gameOverHigh = 330
)

// SoundManager plays the short effects for eating and dying. When the audio
// device cannot be opened it stays silent.
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
	log         zerolog.Logger
}

func NewSoundManager(log zerolog.Logger) *SoundManager {
	return &SoundManager{log: log}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	sm.initialized = true
	return nil
}

func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Tone returns a sine tone of the given length.
func Tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(d), sine), nil
}

func (sm *SoundManager) play(streamers ...beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Play(beep.Seq(streamers...))
}

func (sm *SoundManager) PlayEat() {
	s, err := Tone(eatFreq, 50*time.Millisecond)
	if err != nil {
		sm.log.Warn().Err(err).Msg("eat tone")
		return
	}
	sm.play(s)
}

func (sm *SoundManager) PlayGameOver() {
	high, err := Tone(gameOverHigh, 120*time.Millisecond)
	if err != nil {
		sm.log.Warn().Err(err).Msg("game over tone")
		return
	}
	low, err := Tone(gameOverLow, 250*time.Millisecond)
	if err != nil {
		sm.log.Warn().Err(err).Msg("game over tone")
		return
	}
	sm.play(high, low)
}

// Close stops anything still playing.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}
