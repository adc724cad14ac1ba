package engine

import (
	"github.com/lixenwraith/hook-miner/component"
	"github.com/lixenwraith/hook-miner/config"
	"github.com/lixenwraith/hook-miner/vmath"
)

// HookView is the read-only hook geometry
type HookView struct {
	Angle    float64    `json:"angle" msgpack:"angle"`
	Length   float64    `json:"length" msgpack:"length"`
	Origin   vmath.Vec2 `json:"origin" msgpack:"origin"`
	Tip      vmath.Vec2 `json:"tip" msgpack:"tip"`
	State    string     `json:"state" msgpack:"state"`
	Attached string     `json:"attached,omitempty" msgpack:"attached,omitempty"`
}

// Snapshot is an immutable copy of the simulation for presentation
// Safe to share across goroutines once published
type Snapshot struct {
	Tick           uint64           `json:"tick" msgpack:"tick"`
	Phase          Phase            `json:"phase" msgpack:"phase"`
	Level          int              `json:"level" msgpack:"level"`
	Score          float64          `json:"score" msgpack:"score"`
	Target         int              `json:"target" msgpack:"target"`
	TimeLeft       float64          `json:"time_left" msgpack:"time_left"`
	Message        string           `json:"message,omitempty" msgpack:"message,omitempty"`
	MysteryPending bool             `json:"mystery_pending" msgpack:"mystery_pending"`
	Hook           HookView         `json:"hook" msgpack:"hook"`
	Items          []component.Item `json:"items" msgpack:"items"`
	Offers         []config.Skill   `json:"offers,omitempty" msgpack:"offers,omitempty"`
	Game           config.Game      `json:"game" msgpack:"game"`
	Width          float64          `json:"width" msgpack:"width"`
	Height         float64          `json:"height" msgpack:"height"`
}

// Snapshot copies the current state
func (c *Controller) Snapshot() *Snapshot {
	items := make([]component.Item, len(c.items))
	copy(items, c.items)

	return &Snapshot{
		Tick:           c.tick,
		Phase:          c.phase,
		Level:          c.level,
		Score:          c.score,
		Target:         c.target,
		TimeLeft:       c.timeLeft,
		Message:        c.message,
		MysteryPending: c.pending,
		Hook: HookView{
			Angle:    c.hook.Angle,
			Length:   c.hook.Length,
			Origin:   c.hook.Pivot,
			Tip:      c.hook.Tip(),
			State:    c.hook.State.String(),
			Attached: c.hook.Attached,
		},
		Items:  items,
		Offers: c.Offers(),
		Game:   c.game,
		Width:  c.width,
		Height: c.height,
	}
}

// Carried returns the item hanging from the hook, if any
func (s *Snapshot) Carried() (component.Item, bool) {
	if s.Hook.Attached == "" {
		return component.Item{}, false
	}
	if idx := component.IndexOf(s.Items, s.Hook.Attached); idx >= 0 {
		return s.Items[idx], true
	}
	return component.Item{}, false
}
