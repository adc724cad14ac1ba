// Package effect resolves what happens when the hook brings an item home
package effect

import (
	"github.com/lixenwraith/hook-miner/component"
	"github.com/lixenwraith/hook-miner/narrative"
	"github.com/lixenwraith/hook-miner/parameter"
	"github.com/lixenwraith/hook-miner/vmath"
)

// GemSource produces the bonus items of a rainbow delivery
type GemSource interface {
	GemRain(n int) []component.Item
}

// Outcome describes a resolved delivery
type Outcome struct {
	Item             component.Item   // The delivered item
	ScoreGain        float64          // Value times gold multiplier
	Exploded         []string         // IDs removed by a bomb blast
	Spawned          []component.Item // Diamonds added by a rainbow
	MysteryRequested bool             // Caller must start a narrative request
}

// Resolver applies per-kind delivery effects to the item collection
type Resolver struct {
	gems        GemSource
	blastRadius float64
	gemCount    int
}

// NewResolver creates a resolver drawing rainbow gems from gems
func NewResolver(gems GemSource) *Resolver {
	return &Resolver{
		gems:        gems,
		blastRadius: parameter.BombRadius,
		gemCount:    parameter.GemRainCount,
	}
}

// Deliver removes the item with id, scores it and applies its kind effect
// Returns the updated collection; ok is false when id is not present
func (r *Resolver) Deliver(items []component.Item, id string, goldMultiplier float64) ([]component.Item, Outcome, bool) {
	idx := component.IndexOf(items, id)
	if idx < 0 {
		return items, Outcome{}, false
	}

	item := items[idx]
	items = append(items[:idx:idx], items[idx+1:]...)

	out := Outcome{
		Item:      item,
		ScoreGain: item.Value * goldMultiplier,
	}

	switch item.Kind {
	case component.KindBomb:
		items, out.Exploded = Explode(items, item.Pos, r.blastRadius)
	case component.KindRainbow:
		if r.gems != nil {
			out.Spawned = r.gems.GemRain(r.gemCount)
			items = append(items, out.Spawned...)
		}
	case component.KindMystery:
		out.MysteryRequested = true
	}

	return items, out, true
}

// Explode removes every item strictly within radius of center
// Returns a new collection and the removed IDs in collection order
func Explode(items []component.Item, center vmath.Vec2, radius float64) ([]component.Item, []string) {
	kept := make([]component.Item, 0, len(items))
	var removed []string
	for _, it := range items {
		if vmath.Distance(center, it.Pos) < radius {
			removed = append(removed, it.ID)
			continue
		}
		kept = append(kept, it)
	}
	return kept, removed
}

// Gain is the numeric consequence of a mystery event
type Gain struct {
	Score    float64 // Added without the gold multiplier
	Time     float64 // Seconds added to the level clock
	Strength float64 // Added to the strength multiplier for the rest of the run
}

// ApplyNarrative maps a narrative result to its gain
// NOTHING and unknown types yield zero
func ApplyNarrative(res narrative.Result) Gain {
	switch res.EffectType {
	case narrative.EffectGold:
		return Gain{Score: float64(res.Value)}
	case narrative.EffectTime:
		return Gain{Time: float64(res.Value)}
	case narrative.EffectStrength:
		return Gain{Strength: parameter.StrengthBuffBonus}
	}
	return Gain{}
}
