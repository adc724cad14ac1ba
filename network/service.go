package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hook-miner/engine"
	"github.com/lixenwraith/hook-miner/event"
	"github.com/lixenwraith/hook-miner/status"
)

// Service wraps the hub and HTTP server as a managed service
type Service struct {
	config  *Config
	source  SnapshotSource
	sink    CommandSink
	log     zerolog.Logger
	metrics *status.Registry

	hub      *Hub
	server   *http.Server
	listener net.Listener
	done     chan struct{}

	disabled atomic.Bool
	stopOnce sync.Once
}

// NewService creates a network service bound to a loop
func NewService(source SnapshotSource, sink CommandSink, log zerolog.Logger, metrics *status.Registry) *Service {
	return &Service{
		config:  DefaultConfig(),
		source:  source,
		sink:    sink,
		log:     log.With().Str("component", "network").Logger(),
		metrics: metrics,
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "network"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: *Config (nil or empty address disables the service)
func (s *Service) Init(args ...any) error {
	if len(args) > 0 {
		cfg, ok := args[0].(*Config)
		if !ok || cfg == nil {
			s.disabled.Store(true)
			return nil
		}
		s.config = cfg
	}
	if s.config.Address == "" {
		s.disabled.Store(true)
		return nil
	}

	s.hub = NewHub(s.config, s.sink, s.log, s.metrics)
	s.server = &http.Server{Handler: NewServer(s.hub, s.source, s.metrics, s.log)}
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	if s.disabled.Load() || s.server == nil {
		return nil
	}

	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.config.Address, err)
	}
	s.listener = ln
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("http server stopped")
		}
	}()
	s.log.Info().Str("addr", ln.Addr().String()).Msg("spectator server listening")
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	var err error
	s.stopOnce.Do(func() {
		if s.server == nil || s.listener == nil {
			return
		}
		s.hub.Close()

		ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		err = s.server.Shutdown(ctx)
		<-s.done
	})
	return err
}

// Addr returns the bound address, empty before Start
func (s *Service) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// IsDisabled reports whether the service was configured off
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

// Observe implements engine.Observer
func (s *Service) Observe(snap *engine.Snapshot, evs []event.GameEvent) {
	if s.hub == nil {
		return
	}
	s.hub.Observe(snap, evs)
}
