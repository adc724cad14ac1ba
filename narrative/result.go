// Package narrative produces mystery-stone events from an external storyteller
package narrative

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// EffectType is the gameplay consequence of a mystery event
type EffectType string

const (
	EffectGold     EffectType = "GOLD"
	EffectTime     EffectType = "TIME"
	EffectStrength EffectType = "STRENGTH_BUFF"
	EffectNothing  EffectType = "NOTHING"
)

// Valid reports whether t is one of the known effect types
func (t EffectType) Valid() bool {
	switch t {
	case EffectGold, EffectTime, EffectStrength, EffectNothing:
		return true
	}
	return false
}

// FallbackMessage is shown when the storyteller fails
const FallbackMessage = "The stone crumbles... nothing happens."

// ErrMalformedResult reports a response that does not satisfy the result contract
var ErrMalformedResult = errors.New("malformed narrative result")

// Result is the storyteller's answer
type Result struct {
	Message    string     `json:"message" msgpack:"message" jsonschema:"required,description=A witty short description of what happened (max 10 words)."`
	EffectType EffectType `json:"effectType" msgpack:"effectType" jsonschema:"required,enum=GOLD,enum=TIME,enum=STRENGTH_BUFF,enum=NOTHING"`
	Value      int        `json:"value" msgpack:"value" jsonschema:"required,description=Magnitude of the effect. Gold: 100-800. Time: 10-30. Strength and nothing: 0."`
}

// Fallback is the result substituted on any failure
func Fallback() Result {
	return Result{Message: FallbackMessage, EffectType: EffectNothing, Value: 0}
}

// Validate checks r against the result contract
func Validate(r Result) error {
	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("%w: empty message", ErrMalformedResult)
	}
	if !r.EffectType.Valid() {
		return fmt.Errorf("%w: unknown effect type %q", ErrMalformedResult, r.EffectType)
	}
	if r.Value < 0 {
		return fmt.Errorf("%w: negative value %d", ErrMalformedResult, r.Value)
	}
	return nil
}

// Decode parses and validates a JSON result document
func Decode(data []byte) (Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMalformedResult, err)
	}
	if err := Validate(r); err != nil {
		return Result{}, err
	}
	return r, nil
}
