package physics

import (
	"github.com/lixenwraith/hook-miner/parameter"
	"github.com/lixenwraith/hook-miner/vmath"
)

// HookState is the hook's motion mode
type HookState uint8

const (
	HookIdle HookState = iota
	HookShooting
	HookRetracting
)

func (s HookState) String() string {
	switch s {
	case HookIdle:
		return "IDLE"
	case HookShooting:
		return "SHOOTING"
	case HookRetracting:
		return "RETRACTING"
	}
	return "UNKNOWN"
}

// Hook is the swinging grabber; a plain value advanced by StepHook
type Hook struct {
	Angle     float64    // Degrees, 0 = straight down
	Direction float64    // +1 or -1 during the idle sweep
	Length    float64    // Rope length from origin, >= HookBaseLength
	State     HookState  //
	Attached  string     // ID of the carried item, empty when none
	Pivot     vmath.Vec2 // Fixed swing origin
}

// NewHook returns a hook at rest on the default canvas pivot
func NewHook() Hook {
	return NewHookAt(Origin())
}

// NewHookAt returns a hook at rest, centered, sweeping toward +X from pivot
func NewHookAt(pivot vmath.Vec2) Hook {
	return Hook{
		Direction: 1,
		Length:    parameter.HookBaseLength,
		State:     HookIdle,
		Pivot:     pivot,
	}
}

// Origin is the pivot on the default canvas
func Origin() vmath.Vec2 {
	return OriginFor(parameter.CanvasWidth)
}

// OriginFor centers the pivot horizontally on a canvas of the given width
func OriginFor(width float64) vmath.Vec2 {
	return vmath.Vec2{X: width / 2, Y: parameter.HookOriginY}
}

// Tip returns the hook head position
func (h Hook) Tip() vmath.Vec2 {
	return vmath.Polar(h.Pivot, h.Length, h.Angle)
}

// Shoot starts an extension; only an idle hook can fire
func (h *Hook) Shoot() bool {
	if h.State != HookIdle {
		return false
	}
	h.State = HookShooting
	return true
}

// Attach latches an item and starts reeling it in
func (h *Hook) Attach(id string) {
	h.Attached = id
	h.State = HookRetracting
}

// Params carries the run tunables the hook depends on
type Params struct {
	HookSpeed float64
	Strength  float64

	// Width, Height bound the shooting area; zero values use the canvas
	Width, Height float64
}

func (p Params) bounds() (float64, float64) {
	w, h := p.Width, p.Height
	if w == 0 {
		w = parameter.CanvasWidth
	}
	if h == 0 {
		h = parameter.CanvasHeight
	}
	return w, h
}

// Outcome reports what a step did beyond plain motion
type Outcome uint8

const (
	OutcomeNone      Outcome = iota
	OutcomeMiss              // Tip left the field; reeling in empty
	OutcomeReturned          // Empty hook back at rest
	OutcomeDelivered         // Carried item reached rest; Step.ItemID is set
)

// Step is the result of StepHook
type Step struct {
	Outcome Outcome
	ItemID  string
}

// StepHook advances the hook by one tick
// carriedWeight is the weight of the attached item and is ignored when nothing is attached
func StepHook(h Hook, p Params, carriedWeight float64) (Hook, Step) {
	switch h.State {
	case HookIdle:
		h.Length = parameter.HookBaseLength
		h.Angle += parameter.HookAngleSpeed * h.Direction
		if h.Angle >= parameter.HookMaxAngle {
			h.Angle = parameter.HookMaxAngle
			h.Direction = -1
		} else if h.Angle <= -parameter.HookMaxAngle {
			h.Angle = -parameter.HookMaxAngle
			h.Direction = 1
		}
		return h, Step{}

	case HookShooting:
		h.Length += p.HookSpeed
		w, ht := p.bounds()
		tip := h.Tip()
		if tip.X < 0 || tip.X > w || tip.Y > ht {
			h.State = HookRetracting
			return h, Step{Outcome: OutcomeMiss}
		}
		return h, Step{}

	case HookRetracting:
		h.Length -= RetractSpeed(p.HookSpeed, p.Strength, carriedWeight, h.Attached != "")
		if h.Length > parameter.HookBaseLength {
			return h, Step{}
		}
		h.Length = parameter.HookBaseLength
		h.State = HookIdle
		if h.Attached == "" {
			return h, Step{Outcome: OutcomeReturned}
		}
		id := h.Attached
		h.Attached = ""
		return h, Step{Outcome: OutcomeDelivered, ItemID: id}
	}
	return h, Step{}
}

// RetractSpeed is the per-tick length decrease while reeling in
// Empty hooks retract at a fixed fast rate; loads retract inversely to weight
func RetractSpeed(hookSpeed, strength, weight float64, carrying bool) float64 {
	if !carrying {
		return hookSpeed * parameter.RetractEmptyFactor
	}
	w := max(weight, parameter.MinItemWeight)
	return (hookSpeed * parameter.RetractCarryFactor) / w * strength
}
