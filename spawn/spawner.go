// Package spawn places items on the board at level start and for in-flight effects
package spawn

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/lixenwraith/hook-miner/component"
	"github.com/lixenwraith/hook-miner/parameter"
	"github.com/lixenwraith/hook-miner/vmath"
)

// Spawner creates items with weighted-random kinds and random positions
// Not safe for concurrent use; owned by the tick goroutine
type Spawner struct {
	rng   *rand.Rand
	newID func() string

	width, height float64
}

// Option configures a Spawner
type Option func(*Spawner)

// WithIDSource replaces uuid-based identifiers (tests use counters)
func WithIDSource(fn func() string) Option {
	return func(s *Spawner) { s.newID = fn }
}

// WithBounds overrides the canvas size
func WithBounds(width, height float64) Option {
	return func(s *Spawner) {
		s.width = width
		s.height = height
	}
}

// NewSpawner creates a spawner drawing from rng
func NewSpawner(rng *rand.Rand, opts ...Option) *Spawner {
	s := &Spawner{
		rng:    rng,
		newID:  uuid.NewString,
		width:  parameter.CanvasWidth,
		height: parameter.CanvasHeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ItemCount returns the number of items placed for a level
func ItemCount(level int) int {
	return parameter.BaseItemCount + min(level*parameter.ExtraItemsPerLevel, parameter.MaxExtraItems)
}

// Spawn populates a fresh board for level
func (s *Spawner) Spawn(level int, luck float64) []component.Item {
	n := ItemCount(level)
	items := make([]component.Item, 0, n)
	for i := 0; i < n; i++ {
		kind := KindForRoll(s.rng.Float64()*parameter.SpawnRollRange, luck)

		// Below the hook's resting zone, above the floor
		pos := vmath.Vec2{
			X: parameter.SpawnMarginX + s.rng.Float64()*(s.width-2*parameter.SpawnMarginX),
			Y: parameter.SpawnMinY + s.rng.Float64()*(s.height-parameter.SpawnMinY-parameter.SpawnFloorMargin),
		}
		items = append(items, component.NewItem(s.newID(), kind, pos))
	}
	return items
}

// GemRain creates n diamonds across the full width, below the surface band
func (s *Spawner) GemRain(n int) []component.Item {
	gems := make([]component.Item, 0, n)
	for i := 0; i < n; i++ {
		pos := vmath.Vec2{
			X: s.rng.Float64() * s.width,
			Y: parameter.GemRainMinY + s.rng.Float64()*(s.height-parameter.GemRainMinY),
		}
		gems = append(gems, component.NewItem(s.newID(), component.KindDiamond, pos))
	}
	return gems
}
