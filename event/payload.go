package event

import (
	"github.com/lixenwraith/hook-miner/component"
	"github.com/lixenwraith/hook-miner/narrative"
	"github.com/lixenwraith/hook-miner/vmath"
)

// GameEvent is one notification with its typed payload
type GameEvent struct {
	Type    EventType `json:"type" msgpack:"type"`
	Tick    uint64    `json:"tick" msgpack:"tick"`
	Payload any       `json:"payload,omitempty" msgpack:"payload,omitempty"`
}

// CatchPayload identifies the caught item
type CatchPayload struct {
	ItemID string         `json:"item_id" msgpack:"item_id"`
	Kind   component.Kind `json:"kind" msgpack:"kind"`
}

// DeliverPayload carries the delivered item and the score it earned
type DeliverPayload struct {
	Item      component.Item `json:"item" msgpack:"item"`
	ScoreGain float64        `json:"score_gain" msgpack:"score_gain"`
}

// ExplosionPayload lists items destroyed by a blast
type ExplosionPayload struct {
	Center  vmath.Vec2 `json:"center" msgpack:"center"`
	Radius  float64    `json:"radius" msgpack:"radius"`
	Removed []string   `json:"removed" msgpack:"removed"`
}

// GemRainPayload counts bonus diamonds
type GemRainPayload struct {
	Count int `json:"count" msgpack:"count"`
}

// MysteryPayload carries the narrative result once resolved
type MysteryPayload struct {
	ItemID string            `json:"item_id,omitempty" msgpack:"item_id,omitempty"`
	Result *narrative.Result `json:"result,omitempty" msgpack:"result,omitempty"`
}

// LevelPayload summarizes run progress at a level boundary
type LevelPayload struct {
	Level  int     `json:"level" msgpack:"level"`
	Score  float64 `json:"score" msgpack:"score"`
	Target int     `json:"target" msgpack:"target"`
}

// PhaseChangePayload names both ends of a transition
type PhaseChangePayload struct {
	From string `json:"from" msgpack:"from"`
	To   string `json:"to" msgpack:"to"`
}

// Has reports whether any event in evs has type t
func Has(evs []GameEvent, t EventType) bool {
	for i := range evs {
		if evs[i].Type == t {
			return true
		}
	}
	return false
}
