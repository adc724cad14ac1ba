package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hook-miner/parameter"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyCtrlQ:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlS:  {Type: IntentToggleMute},
			tcell.KeyDown:   {Type: IntentShoot},
			tcell.KeyEnter:  {Type: IntentConfirm},
		},
		Runes: map[rune]Intent{
			' ': {Type: IntentShoot},
			'j': {Type: IntentShoot},
		},
	}
	for i := 0; i < parameter.SkillOfferCount; i++ {
		kt.Runes[rune('1'+i)] = Intent{Type: IntentSkill, Index: i}
	}
	return kt
}

// Translate parses a tcell event; non-key events yield IntentNone
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return Intent{}
	}
	if key.Key() == tcell.KeyRune {
		return kt.Runes[key.Rune()]
	}
	return kt.SpecialKeys[key.Key()]
}
