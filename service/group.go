package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Group starts services in dependency order and stops them in reverse
type Group struct {
	log      zerolog.Logger
	services []Service
	args     map[string][]any
	started  []Service
}

// NewGroup creates an empty group
func NewGroup(log zerolog.Logger) *Group {
	return &Group{
		log:  log.With().Str("component", "services").Logger(),
		args: make(map[string][]any),
	}
}

// Add registers s with the args passed to its Init
func (g *Group) Add(s Service, args ...any) {
	g.services = append(g.services, s)
	g.args[s.Name()] = args
}

// order sorts services so dependencies come first
func (g *Group) order() ([]Service, error) {
	byName := make(map[string]Service, len(g.services))
	for _, s := range g.services {
		if _, dup := byName[s.Name()]; dup {
			return nil, fmt.Errorf("duplicate service %q", s.Name())
		}
		byName[s.Name()] = s
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(g.services))
	out := make([]Service, 0, len(g.services))

	var visit func(s Service) error
	visit = func(s Service) error {
		switch state[s.Name()] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("dependency cycle at %q", s.Name())
		}
		state[s.Name()] = visiting
		for _, dep := range s.Dependencies() {
			d, ok := byName[dep]
			if !ok {
				return fmt.Errorf("service %q depends on unknown %q", s.Name(), dep)
			}
			if err := visit(d); err != nil {
				return err
			}
		}
		state[s.Name()] = done
		out = append(out, s)
		return nil
	}

	for _, s := range g.services {
		if err := visit(s); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Start initializes then starts every service
// On failure the services already started are stopped
func (g *Group) Start() error {
	ordered, err := g.order()
	if err != nil {
		return err
	}

	for _, s := range ordered {
		if err := s.Init(g.args[s.Name()]...); err != nil {
			return fmt.Errorf("init %s: %w", s.Name(), err)
		}
	}
	for _, s := range ordered {
		if err := s.Start(); err != nil {
			g.Stop()
			return fmt.Errorf("start %s: %w", s.Name(), err)
		}
		g.started = append(g.started, s)
		g.log.Debug().Str("service", s.Name()).Msg("started")
	}
	return nil
}

// Stop stops started services in reverse order
func (g *Group) Stop() error {
	var errs []error
	for i := len(g.started) - 1; i >= 0; i-- {
		s := g.started[i]
		if err := s.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", s.Name(), err))
		}
	}
	g.started = nil
	return errors.Join(errs...)
}
