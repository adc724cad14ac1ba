package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidPhase is returned when an action is not allowed in the current phase
var ErrInvalidPhase = errors.New("action not allowed in current phase")

// Phase is the run state machine position
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhaseSkillSelect
	PhasePlaying
	PhaseEventProcessing
	PhaseLevelComplete
	PhaseGameOver
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "MENU"
	case PhaseSkillSelect:
		return "SKILL_SELECT"
	case PhasePlaying:
		return "PLAYING"
	case PhaseEventProcessing:
		return "EVENT_PROCESSING"
	case PhaseLevelComplete:
		return "LEVEL_COMPLETE"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the phase by name for snapshots
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

var validTransitions = map[Phase][]Phase{
	PhaseMenu:            {PhaseSkillSelect},
	PhaseSkillSelect:     {PhasePlaying},
	PhasePlaying:         {PhaseEventProcessing, PhaseLevelComplete, PhaseGameOver},
	PhaseEventProcessing: {PhasePlaying},
	PhaseLevelComplete:   {PhaseSkillSelect},
	PhaseGameOver:        {PhaseMenu},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

func phaseError(action string, p Phase) error {
	return fmt.Errorf("%s in %s: %w", action, p, ErrInvalidPhase)
}
