package event

import (
	"encoding/json"
	"testing"
)

func TestEventTypeNames(t *testing.T) {
	for typ := EventShoot; typ <= EventPhaseChange; typ++ {
		if typ.String() == "unknown" {
			t.Errorf("EventType(%d) has no name", typ)
		}
	}
	if EventType(999).String() != "unknown" {
		t.Errorf("Expected unknown for out of range type")
	}
}

func TestGameEventJSON(t *testing.T) {
	ev := GameEvent{Type: EventGemRain, Tick: 7, Payload: &GemRainPayload{Count: 5}}
	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"type":"gem_rain","tick":7,"payload":{"count":5}}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}
}

func TestHas(t *testing.T) {
	evs := []GameEvent{{Type: EventShoot}, {Type: EventMiss}}
	if !Has(evs, EventMiss) {
		t.Error("Expected EventMiss to be found")
	}
	if Has(evs, EventCatch) {
		t.Error("Did not expect EventCatch")
	}
}
