package config

// Game holds the per-run tunables shared by the spawner, hook and scoring
// Reset to the base configuration at run start; mutated by skills and STRENGTH_BUFF events
type Game struct {
	HookSpeed          float64 `yaml:"hook_speed" json:"hook_speed" msgpack:"hook_speed"`
	StrengthMultiplier float64 `yaml:"strength_multiplier" json:"strength_multiplier" msgpack:"strength_multiplier"`
	GoldMultiplier     float64 `yaml:"gold_multiplier" json:"gold_multiplier" msgpack:"gold_multiplier"`
	TimeLimit          float64 `yaml:"time_limit" json:"time_limit" msgpack:"time_limit"` // Seconds per level
	Luck               float64 `yaml:"luck" json:"luck" msgpack:"luck"`
}

// DefaultGame returns the base run configuration
func DefaultGame() Game {
	return Game{
		HookSpeed:          8,
		StrengthMultiplier: 1,
		GoldMultiplier:     1,
		TimeLimit:          60,
		Luck:               1,
	}
}
