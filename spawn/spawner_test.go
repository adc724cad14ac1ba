package spawn

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/hook-miner/component"
	"github.com/lixenwraith/hook-miner/parameter"
)

func newTestSpawner() *Spawner {
	n := 0
	return NewSpawner(rand.New(rand.NewPCG(1, 2)), WithIDSource(func() string {
		n++
		return fmt.Sprintf("item-%d", n)
	}))
}

func TestItemCount(t *testing.T) {
	tests := []struct{ level, want int }{
		{1, 12},
		{2, 14},
		{5, 20},
		{9, 28},
		{10, 30},
		{11, 30},
		{50, 30},
	}
	for _, tc := range tests {
		if got := ItemCount(tc.level); got != tc.want {
			t.Errorf("ItemCount(%d): expected %d, got %d", tc.level, tc.want, got)
		}
	}
}

// TestSpawnMatchesCatalog verifies count, stats, placement and ids for several levels
func TestSpawnMatchesCatalog(t *testing.T) {
	s := newTestSpawner()

	for level := 1; level <= 12; level++ {
		items := s.Spawn(level, 1)
		if len(items) != ItemCount(level) {
			t.Fatalf("Level %d: expected %d items, got %d", level, ItemCount(level), len(items))
		}

		ids := make(map[string]bool)
		for _, it := range items {
			p := component.Lookup(it.Kind)
			if it.Radius != p.Radius || it.Value != p.Value || it.Weight != p.Weight {
				t.Errorf("Level %d: %s stats %+v do not match catalog %+v", level, it.Kind, it, p)
			}
			if it.Caught {
				t.Errorf("Level %d: spawned item %s already caught", level, it.ID)
			}
			if it.Pos.X < parameter.SpawnMarginX || it.Pos.X > parameter.CanvasWidth-parameter.SpawnMarginX {
				t.Errorf("Level %d: x %f out of spawn range", level, it.Pos.X)
			}
			if it.Pos.Y < parameter.SpawnMinY || it.Pos.Y > parameter.CanvasHeight-parameter.SpawnFloorMargin {
				t.Errorf("Level %d: y %f out of spawn range", level, it.Pos.Y)
			}
			if ids[it.ID] {
				t.Errorf("Level %d: duplicate id %s", level, it.ID)
			}
			ids[it.ID] = true
		}
	}
}

func TestSpawnDefaultIDsAreUnique(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewPCG(3, 4)))
	items := s.Spawn(10, 1)
	seen := make(map[string]bool)
	for _, it := range items {
		if it.ID == "" || seen[it.ID] {
			t.Fatalf("Expected unique non-empty ids, got %q", it.ID)
		}
		seen[it.ID] = true
	}
}

// TestKindForRollLuckOne walks every band boundary at the base luck
func TestKindForRollLuckOne(t *testing.T) {
	tests := []struct {
		r    float64
		want component.Kind
	}{
		{0, component.KindDiamond},
		{4.99, component.KindDiamond},
		{5, component.KindGoldLarge},
		{15.99, component.KindGoldLarge},
		{16, component.KindGoldMedium},
		{30.99, component.KindGoldMedium},
		{31, component.KindGoldSmall},
		{50.99, component.KindGoldSmall},
		{51, component.KindMystery},
		{56.99, component.KindMystery},
		{57, component.KindRock},
		{85, component.KindRock}, // Bomb band is open at both ends
		{85.01, component.KindBomb},
		{89.99, component.KindBomb},
		{90, component.KindRock},
		{96, component.KindRock}, // Rainbow band is open at its lower end
		{96.01, component.KindRainbow},
		{99.99, component.KindRainbow},
	}
	for _, tc := range tests {
		if got := KindForRoll(tc.r, 1); got != tc.want {
			t.Errorf("KindForRoll(%v, 1): expected %s, got %s", tc.r, tc.want, got)
		}
	}
}

// TestKindForRollMysteryOffsetQuirk pins the literal 35 offset: at high luck the mystery
// band outgrows its slot and swallows the fixed bomb band
func TestKindForRollMysteryOffsetQuirk(t *testing.T) {
	// luck 10: diamond 23, gold-large 20 -> mystery covers [78, 93)
	if got := KindForRoll(87, 10); got != component.KindMystery {
		t.Errorf("Expected mystery to shadow bomb at luck 10, got %s", got)
	}
	if got := KindForRoll(87, 1); got != component.KindBomb {
		t.Errorf("Expected bomb at luck 1, got %s", got)
	}
	// Bomb band ignores luck entirely
	if got := KindForRoll(88, 0); got != component.KindBomb {
		t.Errorf("Expected bomb at luck 0, got %s", got)
	}
}

// TestLuckMonotonicity verifies more luck never shrinks the diamond/gold-large/mystery/rainbow mass
func TestLuckMonotonicity(t *testing.T) {
	good := map[component.Kind]bool{
		component.KindDiamond:   true,
		component.KindGoldLarge: true,
		component.KindMystery:   true,
		component.KindRainbow:   true,
	}

	const steps = 10000
	mass := func(luck float64) int {
		n := 0
		for i := 0; i < steps; i++ {
			r := float64(i) * parameter.SpawnRollRange / steps
			if good[KindForRoll(r, luck)] {
				n++
			}
		}
		return n
	}

	prev := mass(0)
	for luck := 0.5; luck <= 5; luck += 0.5 {
		cur := mass(luck)
		if cur < prev {
			t.Errorf("Luck %.1f: good mass %d dropped below %d", luck, cur, prev)
		}
		prev = cur
	}
}

func TestGemRain(t *testing.T) {
	s := newTestSpawner()
	gems := s.GemRain(parameter.GemRainCount)

	if len(gems) != 5 {
		t.Fatalf("Expected 5 gems, got %d", len(gems))
	}
	diamond := component.Lookup(component.KindDiamond)
	for _, g := range gems {
		if g.Kind != component.KindDiamond {
			t.Errorf("Expected diamond, got %s", g.Kind)
		}
		if g.Radius != diamond.Radius || g.Value != diamond.Value || g.Weight != diamond.Weight {
			t.Errorf("Gem stats %+v do not match catalog", g)
		}
		if g.Pos.X < 0 || g.Pos.X >= parameter.CanvasWidth {
			t.Errorf("Gem x %f out of range", g.Pos.X)
		}
		if g.Pos.Y < parameter.GemRainMinY || g.Pos.Y >= parameter.CanvasHeight {
			t.Errorf("Gem y %f out of range", g.Pos.Y)
		}
	}
}
