package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float reading that also remembers its high-water mark
// Score and subscriber count are reported with their peak over the run
type Gauge struct {
	bits atomic.Uint64
	peak atomic.Uint64
}

// Set stores v and raises the peak when v exceeds it
func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
	g.raise(v)
}

// Add applies delta and returns the new value
func (g *Gauge) Add(delta float64) float64 {
	for {
		old := g.bits.Load()
		next := math.Float64frombits(old) + delta
		if g.bits.CompareAndSwap(old, math.Float64bits(next)) {
			g.raise(next)
			return next
		}
	}
}

// Get returns the current value
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Peak returns the largest value stored; never below zero
func (g *Gauge) Peak() float64 {
	return math.Float64frombits(g.peak.Load())
}

func (g *Gauge) raise(v float64) {
	for {
		old := g.peak.Load()
		if math.Float64frombits(old) >= v {
			return
		}
		if g.peak.CompareAndSwap(old, math.Float64bits(v)) {
			return
		}
	}
}

// MaxLabelLen caps label length; phase names fit comfortably
const MaxLabelLen = 32

// Label is a short string state such as the current phase
// Changes counts writes that altered the value
type Label struct {
	ptr     atomic.Pointer[string]
	changes atomic.Int64
}

// Set stores v truncated to MaxLabelLen and reports whether it changed
func (l *Label) Set(v string) bool {
	if len(v) > MaxLabelLen {
		v = v[:MaxLabelLen]
	}
	prev := l.ptr.Swap(&v)
	if prev != nil && *prev == v {
		return false
	}
	l.changes.Add(1)
	return true
}

// Get returns the current label, empty before the first write
func (l *Label) Get() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// Changes returns how many writes altered the label
func (l *Label) Changes() int64 {
	return l.changes.Load()
}
