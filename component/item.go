package component

import (
	"fmt"

	"github.com/lixenwraith/hook-miner/vmath"
)

// Kind identifies an item type on the board
type Kind uint8

const (
	KindRock Kind = iota
	KindGoldSmall
	KindGoldMedium
	KindGoldLarge
	KindDiamond
	KindBomb
	KindRainbow
	KindMystery
	KindCount // Sentinel for array sizing
)

var kindNames = [KindCount]string{
	KindRock:       "ROCK",
	KindGoldSmall:  "GOLD_SMALL",
	KindGoldMedium: "GOLD_MEDIUM",
	KindGoldLarge:  "GOLD_LARGE",
	KindDiamond:    "DIAMOND",
	KindBomb:       "BOMB",
	KindRainbow:    "RAINBOW",
	KindMystery:    "MYSTERY",
}

func (k Kind) String() string {
	if k >= KindCount {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseKind resolves the wire name of a kind
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return KindRock, false
}

// MarshalText encodes the kind by name for snapshots
func (k Kind) MarshalText() ([]byte, error) {
	if k >= KindCount {
		return nil, fmt.Errorf("unknown item kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind name
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, ok := ParseKind(string(b))
	if !ok {
		return fmt.Errorf("unknown item kind %q", b)
	}
	*k = parsed
	return nil
}

// Item is a placed collectible
// Kind and stats are fixed at creation; Caught flips once when the hook attaches
type Item struct {
	ID     string     `json:"id" msgpack:"id"`
	Kind   Kind       `json:"kind" msgpack:"kind"`
	Pos    vmath.Vec2 `json:"pos" msgpack:"pos"`
	Radius float64    `json:"radius" msgpack:"radius"`
	Value  float64    `json:"value" msgpack:"value"`
	Weight float64    `json:"weight" msgpack:"weight"`
	Caught bool       `json:"caught" msgpack:"caught"`
}

// NewItem creates an uncaught item carrying the catalog stats for kind
func NewItem(id string, kind Kind, pos vmath.Vec2) Item {
	p := Lookup(kind)
	return Item{
		ID:     id,
		Kind:   kind,
		Pos:    pos,
		Radius: p.Radius,
		Value:  p.Value,
		Weight: p.Weight,
	}
}

// IndexOf returns the index of the item with id, or -1
func IndexOf(items []Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
