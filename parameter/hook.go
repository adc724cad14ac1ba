package parameter

// Hook kinematics, all per logical tick
const (
	// HookBaseLength is the resting rope length; retraction clamps here
	HookBaseLength = 50.0

	// HookMaxAngle bounds the idle sweep in degrees (symmetric)
	HookMaxAngle = 70.0

	// HookAngleSpeed is the idle sweep step in degrees per tick
	HookAngleSpeed = 0.8

	// HookHeadRadius is added to an item radius for the catch test
	HookHeadRadius = 5.0

	// RetractEmptyFactor scales hookSpeed when nothing is attached
	RetractEmptyFactor = 1.5

	// RetractCarryFactor scales hookSpeed before dividing by item weight
	RetractCarryFactor = 2.0

	// MinItemWeight guards the weight divisor
	MinItemWeight = 1.0
)
