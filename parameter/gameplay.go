package parameter

import "time"

// Tick cadence
const (
	// TickRate is the logical simulation frequency in Hz
	TickRate = 60

	// TickInterval is the wall-clock pacing of the loop
	TickInterval = time.Second / TickRate
)

// Spawning
const (
	BaseItemCount      = 10
	ExtraItemsPerLevel = 2
	MaxExtraItems      = 20

	// SpawnMarginX keeps items off the side walls
	SpawnMarginX = 30.0
	// SpawnMinY keeps items below the hook's resting zone
	SpawnMinY = 150.0
	// SpawnFloorMargin keeps items above the floor
	SpawnFloorMargin = 50.0

	// SpawnRollRange is the exclusive upper bound of the kind roll
	SpawnRollRange = 100.0
)

// Delivery effects
const (
	// BombRadius is the blast radius; items strictly inside are destroyed
	BombRadius = 150.0

	// GemRainCount is the number of diamonds a rainbow stone summons
	GemRainCount = 5

	// GemRainMinY is the top of the band gem rain lands in
	GemRainMinY = 100.0

	// StrengthBuffBonus is the permanent strength gain from a STRENGTH_BUFF event
	StrengthBuffBonus = 0.5

	// EventHoldSeconds is how long a mystery message stays up before play resumes
	EventHoldSeconds = 2.5
)

// Run progression
const (
	InitialLevel       = 1
	InitialTargetScore = 100
	TargetScoreGrowth  = 1.5

	// SkillOfferCount is how many distinct skills are offered between levels
	SkillOfferCount = 3
)
