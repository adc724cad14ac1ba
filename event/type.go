// Package event defines the gameplay notifications emitted by the simulation each tick
package event

// EventType represents the type of game event
type EventType int

const (
	// === Hook Event ===

	// EventShoot marks the hook leaving the idle sweep
	// Trigger: Shoot input while PLAYING and idle
	// Consumer: AudioSystem | Payload: nil
	EventShoot EventType = iota

	// EventCatch marks an item latching onto the hook head
	// Trigger: Collision scan while shooting
	// Consumer: AudioSystem, Renderer | Payload: *CatchPayload
	EventCatch

	// EventMiss marks the hook leaving the field empty
	// Trigger: Tip past a side wall or the floor
	// Consumer: AudioSystem | Payload: nil
	EventMiss

	// === Effect Event ===

	// EventDeliver reports an item reaching the pivot
	// Trigger: Retraction completing with a load
	// Consumer: AudioSystem, Network | Payload: *DeliverPayload
	EventDeliver

	// EventExplosion reports a bomb blast
	// Trigger: Bomb delivery
	// Consumer: AudioSystem | Payload: *ExplosionPayload
	EventExplosion

	// EventGemRain reports bonus diamonds added to the field
	// Trigger: Rainbow delivery
	// Consumer: AudioSystem | Payload: *GemRainPayload
	EventGemRain

	// EventMysteryRequested asks for a narrative event
	// Trigger: Mystery delivery
	// Consumer: Loop (starts the request), AudioSystem | Payload: *MysteryPayload
	EventMysteryRequested

	// EventMysteryResolved applies a narrative result
	// Trigger: Narrative result arriving on the tick goroutine
	// Consumer: AudioSystem, Renderer | Payload: *MysteryPayload
	EventMysteryResolved

	// === Run Event ===

	// EventLevelStart marks a freshly spawned level
	// Trigger: Skill selection
	// Consumer: AudioSystem | Payload: *LevelPayload
	EventLevelStart

	// EventLevelComplete marks a level cleared at the target
	// Trigger: Timer expiry with score at or above target
	// Consumer: AudioSystem | Payload: *LevelPayload
	EventLevelComplete

	// EventGameOver ends the run
	// Trigger: Timer expiry with score below target
	// Consumer: AudioSystem | Payload: *LevelPayload
	EventGameOver

	// EventPhaseChange reports any phase transition
	// Trigger: Controller transitions
	// Consumer: Network, metrics | Payload: *PhaseChangePayload
	EventPhaseChange
)

var typeNames = map[EventType]string{
	EventShoot:            "shoot",
	EventCatch:            "catch",
	EventMiss:             "miss",
	EventDeliver:          "deliver",
	EventExplosion:        "explosion",
	EventGemRain:          "gem_rain",
	EventMysteryRequested: "mystery_requested",
	EventMysteryResolved:  "mystery_resolved",
	EventLevelStart:       "level_start",
	EventLevelComplete:    "level_complete",
	EventGameOver:         "game_over",
	EventPhaseChange:      "phase_change",
}

// String returns the wire name of the event type
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the type by name
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
