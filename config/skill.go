package config

import "fmt"

// SkillID tags one of the fixed between-level buffs
type SkillID uint8

const (
	SkillTitanGlove SkillID = iota
	SkillMidasTouch
	SkillChronosDial
	SkillLuckyClover
	SkillLaserSight
	SkillCount // Sentinel for array sizing
)

// Stat selects the Game field a skill modifies
type Stat uint8

const (
	StatHookSpeed Stat = iota
	StatStrength
	StatGold
	StatTimeLimit
	StatLuck
)

// Op selects how a skill amount is merged into a stat
type Op uint8

const (
	OpAdd Op = iota
	OpMul
)

// Skill describes a selectable buff
// Effect is data only; Apply interprets it
type Skill struct {
	ID          SkillID `json:"id" msgpack:"id"`
	Key         string  `json:"key" msgpack:"key"`
	Name        string  `json:"name" msgpack:"name"`
	Description string  `json:"description" msgpack:"description"`

	Stat   Stat    `json:"-" msgpack:"-"`
	Op     Op      `json:"-" msgpack:"-"`
	Amount float64 `json:"-" msgpack:"-"`
}

var skills = [SkillCount]Skill{
	SkillTitanGlove: {
		ID: SkillTitanGlove, Key: "titan_glove", Name: "Titan Glove",
		Description: "Pull items 50% faster.",
		Stat:        StatStrength, Op: OpAdd, Amount: 0.5,
	},
	SkillMidasTouch: {
		ID: SkillMidasTouch, Key: "midas_touch", Name: "Midas Touch",
		Description: "All gold is worth 25% more.",
		Stat:        StatGold, Op: OpAdd, Amount: 0.25,
	},
	SkillChronosDial: {
		ID: SkillChronosDial, Key: "chronos_dial", Name: "Chronos Dial",
		Description: "+15 seconds to every level.",
		Stat:        StatTimeLimit, Op: OpAdd, Amount: 15,
	},
	SkillLuckyClover: {
		ID: SkillLuckyClover, Key: "lucky_clover", Name: "Lucky Clover",
		Description: "Better chance for diamonds and special stones.",
		Stat:        StatLuck, Op: OpAdd, Amount: 0.5,
	},
	SkillLaserSight: {
		ID: SkillLaserSight, Key: "laser_sight", Name: "Laser Sight",
		Description: "Hook moves 20% faster when shooting.",
		Stat:        StatHookSpeed, Op: OpMul, Amount: 1.2,
	},
}

// Skills returns the full catalog in ID order
func Skills() []Skill {
	out := make([]Skill, SkillCount)
	copy(out, skills[:])
	return out
}

// SkillByID returns the catalog entry for id
func SkillByID(id SkillID) (Skill, error) {
	if id >= SkillCount {
		return Skill{}, fmt.Errorf("unknown skill %d", id)
	}
	return skills[id], nil
}

// Apply returns g with the skill's transform merged in
func (s Skill) Apply(g Game) Game {
	field := s.field(&g)
	if field == nil {
		return g
	}
	switch s.Op {
	case OpAdd:
		*field += s.Amount
	case OpMul:
		*field *= s.Amount
	}
	return g
}

func (s Skill) field(g *Game) *float64 {
	switch s.Stat {
	case StatHookSpeed:
		return &g.HookSpeed
	case StatStrength:
		return &g.StrengthMultiplier
	case StatGold:
		return &g.GoldMultiplier
	case StatTimeLimit:
		return &g.TimeLimit
	case StatLuck:
		return &g.Luck
	}
	return nil
}
