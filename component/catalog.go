package component

// Profile holds the static stats of an item kind
type Profile struct {
	Radius float64
	Value  float64
	Weight float64 // Higher is slower to reel in

	// Tag names the visual class for presentation layers
	Tag   string
	Glyph rune
}

var profiles = [KindCount]Profile{
	KindGoldSmall:  {Radius: 15, Value: 50, Weight: 2, Tag: "gold", Glyph: 'o'},
	KindGoldMedium: {Radius: 25, Value: 100, Weight: 5, Tag: "gold", Glyph: 'O'},
	KindGoldLarge:  {Radius: 40, Value: 500, Weight: 15, Tag: "gold", Glyph: '@'},
	KindRock:       {Radius: 30, Value: 11, Weight: 20, Tag: "rock", Glyph: '#'},
	KindDiamond:    {Radius: 12, Value: 600, Weight: 1, Tag: "diamond", Glyph: '*'},
	KindBomb:       {Radius: 20, Value: 1, Weight: 1, Tag: "bomb", Glyph: 'X'},
	KindRainbow:    {Radius: 22, Value: 50, Weight: 3, Tag: "rainbow", Glyph: '%'},
	KindMystery:    {Radius: 25, Value: 0, Weight: 5, Tag: "mystery", Glyph: '?'},
}

// Lookup returns the catalog profile for kind
// Unknown kinds resolve to rock
func Lookup(kind Kind) Profile {
	if kind >= KindCount {
		return profiles[KindRock]
	}
	return profiles[kind]
}
