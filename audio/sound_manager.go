package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
	bufferTime = 100 * time.Millisecond
)

// SoundManager owns the speaker and the mixer every future cue plays through.
// It is initialized once at startup; nothing in gameplay triggers playback yet.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool

	// Device hooks, replaced in tests to run without an audio backend
	openDevice  func(sr beep.SampleRate, bufferSize int) error
	closeDevice func()
	play        func(s ...beep.Streamer)
}

// NewSoundManager creates a sound manager bound to the system speaker
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:       &beep.Mixer{},
		openDevice:  speaker.Init,
		closeDevice: speaker.Close,
		play:        speaker.Play,
	}
}

// Initialize opens the speaker and starts the mixer. Calling it again is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := sm.openDevice(sampleRate, sampleRate.N(bufferTime)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	sm.play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops the mixer and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Clear()
	sm.closeDevice()
	sm.initialized = false
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
