package audio

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hook-miner/engine"
	"github.com/lixenwraith/hook-miner/event"
)

// Service wraps SoundManager as a managed service
// Handles graceful degradation when no audio backend is available
type Service struct {
	manager  *SoundManager
	log      zerolog.Logger
	disabled atomic.Bool
	muted    atomic.Bool
}

// NewService creates an audio service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		manager: NewSoundManager(),
		log:     log.With().Str("component", "audio").Logger(),
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: bool - enabled (default false)
func (s *Service) Init(args ...any) error {
	enabled := false
	if len(args) > 0 {
		if v, ok := args[0].(bool); ok {
			enabled = v
		}
	}
	s.disabled.Store(!enabled)
	return nil
}

// Start implements service.Service
// Speaker failure disables audio instead of failing startup
func (s *Service) Start() error {
	if s.disabled.Load() {
		return nil
	}
	if err := s.manager.Initialize(); err != nil {
		s.log.Warn().Err(err).Msg("audio unavailable, continuing silent")
		s.disabled.Store(true)
	}
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	s.manager.Cleanup()
	return nil
}

// ToggleMute flips the mute state and returns the new value
func (s *Service) ToggleMute() bool {
	muted := !s.muted.Load()
	s.muted.Store(muted)
	s.manager.SetMuted(muted)
	return muted
}

// IsDisabled returns true if audio is unavailable or turned off
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

// Observe implements engine.Observer
func (s *Service) Observe(snap *engine.Snapshot, evs []event.GameEvent) {
	if s.disabled.Load() {
		return
	}
	s.manager.Observe(snap, evs)
}
