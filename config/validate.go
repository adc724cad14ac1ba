package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSettings reports settings that cannot be clamped into shape
var ErrInvalidSettings = errors.New("invalid settings")

// Validate rejects settings that have no safe default
func (s *Settings) Validate() error {
	switch s.Narrative.Backend {
	case BackendOff, BackendDeck, BackendGemini:
	default:
		return fmt.Errorf("%w: unknown narrative backend %q", ErrInvalidSettings, s.Narrative.Backend)
	}
	if s.Narrative.Backend == BackendDeck && s.Narrative.DeckPath == "" {
		return fmt.Errorf("%w: deck backend needs deck_path", ErrInvalidSettings)
	}
	if s.Network.Enabled && s.Network.Address == "" {
		return fmt.Errorf("%w: network enabled without address", ErrInvalidSettings)
	}
	return nil
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func clampFloat(v, minV, maxV float64) float64 {
	if math.IsNaN(v) {
		return minV
	}
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// ClampSettings enforces hard safety bounds in place
func ClampSettings(s *Settings) {
	if s == nil {
		return
	}

	// --- sim ---
	s.Sim.TickRate = clampInt(s.Sim.TickRate, 10, 240)
	s.Sim.EventHoldSec = clampFloat(s.Sim.EventHoldSec, 0, 30)
	s.Sim.CanvasWidth = clampFloat(s.Sim.CanvasWidth, 200, 4000)
	s.Sim.CanvasHeight = clampFloat(s.Sim.CanvasHeight, 200, 4000)

	// --- run ---
	ClampGame(&s.Run)

	// --- narrative ---
	s.Narrative.TimeoutSec = clampFloat(s.Narrative.TimeoutSec, 1, 120)

	// --- network ---
	s.Network.SnapshotEvery = clampInt(s.Network.SnapshotEvery, 1, 600)

	// --- log ---
	s.Log.MaxSizeMB = clampInt(s.Log.MaxSizeMB, 1, 1024)
}

// ClampGame bounds run tunables so the hook always moves and time is positive
func ClampGame(g *Game) {
	g.HookSpeed = clampFloat(g.HookSpeed, 0.5, 100)
	g.StrengthMultiplier = clampFloat(g.StrengthMultiplier, 0.1, 100)
	g.GoldMultiplier = clampFloat(g.GoldMultiplier, 0, 100)
	g.TimeLimit = clampFloat(g.TimeLimit, 1, 3600)
	g.Luck = clampFloat(g.Luck, 0, 50)
}
