package physics

import (
	"github.com/lixenwraith/hook-miner/component"
	"github.com/lixenwraith/hook-miner/parameter"
	"github.com/lixenwraith/hook-miner/vmath"
)

// Overlaps reports whether the hook head at tip touches item
func Overlaps(tip vmath.Vec2, item *component.Item) bool {
	return vmath.Distance(tip, item.Pos) < item.Radius+parameter.HookHeadRadius
}

// FindCatch returns the index of the first uncaught item the tip overlaps, or -1
// Iteration order decides ties; there is no nearest-first preference
func FindCatch(tip vmath.Vec2, items []component.Item) int {
	for i := range items {
		if items[i].Caught {
			continue
		}
		if Overlaps(tip, &items[i]) {
			return i
		}
	}
	return -1
}
