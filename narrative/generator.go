package narrative

import (
	"context"

	"github.com/rs/zerolog"
)

// Generator produces one mystery event per call
// Implementations may block on I/O and must honor ctx
type Generator interface {
	Generate(ctx context.Context) (Result, error)
}

// GeneratorFunc adapts a function to Generator
type GeneratorFunc func(ctx context.Context) (Result, error)

// Generate implements Generator
func (f GeneratorFunc) Generate(ctx context.Context) (Result, error) {
	return f(ctx)
}

// Static always answers with the same result; backs the "off" backend
type Static struct {
	Result Result
}

// Generate implements Generator
func (s Static) Generate(context.Context) (Result, error) {
	return s.Result, nil
}

// Request runs g and substitutes the fallback on any failure
// Never returns an invalid result; nil g yields the fallback
func Request(ctx context.Context, g Generator, log zerolog.Logger) Result {
	if g == nil {
		return Fallback()
	}

	r, err := g.Generate(ctx)
	if err == nil {
		err = Validate(r)
	}
	if err != nil {
		log.Warn().Err(err).Msg("mystery event failed, using fallback")
		return Fallback()
	}

	log.Debug().
		Str("effect", string(r.EffectType)).
		Int("value", r.Value).
		Str("message", r.Message).
		Msg("mystery event generated")
	return r
}
