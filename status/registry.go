// Package status holds lock-free runtime metrics shared by the game loop and its observers
package status

import "sync/atomic"

// Metric keys written by the simulation
const (
	MetricTicks            = "sim.ticks"
	MetricShots            = "hook.shots"
	MetricMisses           = "hook.misses"
	MetricCatches          = "hook.catches"
	MetricDeliveries       = "hook.deliveries"
	MetricExplosions       = "effect.explosions"
	MetricExploded         = "effect.items_exploded"
	MetricGemRains         = "effect.gem_rains"
	MetricMysteryRequests  = "mystery.requests"
	MetricMysteryFallbacks = "mystery.fallbacks"
	MetricLevelsCleared    = "run.levels_cleared"
	MetricGameOvers        = "run.game_overs"
	MetricDroppedCommands  = "input.dropped_commands"

	GaugeScore    = "run.score"
	GaugeTimeLeft = "run.time_left"
	GaugeLevel    = "run.level"
	GaugeClients  = "net.subscribers"
	LabelPhase    = "run.phase"
)

// Registry is the central metrics facade
// Writers cache pointers once; hot paths touch atomics only
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Gauges *MetricMap[Gauge]
	Labels *MetricMap[Label]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Gauges: NewMetricMap[Gauge](),
		Labels: NewMetricMap[Label](),
	}
}

// Inc bumps an integer counter; nil registry is a no-op
func (r *Registry) Inc(key string) {
	if r == nil {
		return
	}
	r.Ints.Get(key).Add(1)
}

// Add adds n to an integer counter
func (r *Registry) Add(key string, n int64) {
	if r == nil {
		return
	}
	r.Ints.Get(key).Add(n)
}

// SetFloat stores a float gauge
func (r *Registry) SetFloat(key string, v float64) {
	if r == nil {
		return
	}
	r.Gauges.Get(key).Set(v)
}

// SetLabel stores a string state; returns true when it changed
func (r *Registry) SetLabel(key, v string) bool {
	if r == nil {
		return false
	}
	return r.Labels.Get(key).Set(v)
}

// Export flattens every metric into one map for JSON reporting
// Gauges add a "<key>.peak" entry and labels a "<key>.changes" entry
func (r *Registry) Export() map[string]any {
	out := make(map[string]any, r.Ints.Count()+2*(r.Gauges.Count()+r.Labels.Count()))
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	r.Gauges.Range(func(key string, g *Gauge) {
		out[key] = g.Get()
		out[key+".peak"] = g.Peak()
	})
	r.Labels.Range(func(key string, l *Label) {
		out[key] = l.Get()
		out[key+".changes"] = l.Changes()
	})
	return out
}

// TotalCount returns the number of registered metrics
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Gauges.Count() + r.Labels.Count()
}
