// Package input turns terminal key events into game intents
package input

import "github.com/lixenwraith/hook-miner/engine"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, Ctrl+C, Ctrl+Q
	IntentToggleMute // Ctrl+S

	// Gameplay intents
	IntentShoot   // Space, Down arrow
	IntentConfirm // Enter: start, next level, restart
	IntentSkill   // 1..3 while choosing a skill
)

// Intent is a parsed key press
type Intent struct {
	Type  IntentType
	Index int // Zero-based offer index for IntentSkill
}

// Command converts a gameplay intent into a loop command
// System intents are handled by the caller and report false
func (i Intent) Command() (engine.Command, bool) {
	switch i.Type {
	case IntentShoot:
		return engine.Command{Kind: engine.CommandShoot}, true
	case IntentConfirm:
		return engine.Command{Kind: engine.CommandConfirm}, true
	case IntentSkill:
		return engine.Command{Kind: engine.CommandSelectSkill, Index: i.Index}, true
	}
	return engine.Command{}, false
}
