// Package audio plays synthesized effects for gameplay events
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/hook-miner/engine"
	"github.com/lixenwraith/hook-miner/event"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager owns the speaker and mixes one-shot effects
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; safe to call twice
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; an empty mixer plays silence
	sm.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Play mixes in s; returns false when nothing was queued
func (sm *SoundManager) Play(s Sound) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	st := streamer(sampleRate, s)
	if st == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(st)
	speaker.Unlock()
	return true
}

// Observe implements engine.Observer
func (sm *SoundManager) Observe(_ *engine.Snapshot, evs []event.GameEvent) {
	for _, ev := range evs {
		if s := SoundFor(ev.Type); s != SoundNone {
			sm.Play(s)
		}
	}
}
