package spawn

import "github.com/lixenwraith/hook-miner/component"

// Band widths in roll units out of 100
const (
	diamondBase   = 3.0
	diamondLuck   = 2.0
	goldLargeBase = 10.0
	goldMedium    = 15.0
	goldSmall     = 20.0
	mysteryBase   = 5.0
	bombWidth     = 5.0
	bombCeiling   = 90.0
	rainbowBase   = 1.0
	rainbowCeil   = 98.0

	// smallGoldOffset is the literal offset the mystery band starts from
	// It equals goldMedium+goldSmall but is not derived from them
	smallGoldOffset = 35.0
)

// KindForRoll maps a roll r in [0,100) to an item kind under luck
//
// Bands are tested in order and the first match wins. The mystery band is bounded by
// a literal offset rather than the running total, and the bomb and rainbow bands are
// anchored to fixed ceilings; gaps and overlaps this produces are part of the balance
func KindForRoll(r, luck float64) component.Kind {
	diamond := diamondBase + luck*diamondLuck
	goldLarge := goldLargeBase + luck
	mystery := mysteryBase + luck
	rainbow := rainbowBase + luck

	switch {
	case r < diamond:
		return component.KindDiamond
	case r < diamond+goldLarge:
		return component.KindGoldLarge
	case r < diamond+goldLarge+goldMedium:
		return component.KindGoldMedium
	case r < diamond+goldLarge+goldMedium+goldSmall:
		return component.KindGoldSmall
	case r < diamond+goldLarge+smallGoldOffset+mystery:
		return component.KindMystery
	case r < bombCeiling && r > bombCeiling-bombWidth:
		return component.KindBomb
	case r > rainbowCeil-rainbow:
		return component.KindRainbow
	}
	return component.KindRock
}
