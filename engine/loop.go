package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hook-miner/event"
	"github.com/lixenwraith/hook-miner/narrative"
	"github.com/lixenwraith/hook-miner/parameter"
	"github.com/lixenwraith/hook-miner/status"
)

// CommandKind identifies a player action
type CommandKind uint8

const (
	CommandShoot CommandKind = iota
	CommandConfirm
	CommandSelectSkill
)

// String returns the wire name of the command
func (k CommandKind) String() string {
	switch k {
	case CommandShoot:
		return "shoot"
	case CommandConfirm:
		return "confirm"
	case CommandSelectSkill:
		return "select_skill"
	}
	return "unknown"
}

// Command is a player action queued for the next tick
type Command struct {
	Kind  CommandKind `json:"kind" msgpack:"kind"`
	Index int         `json:"index,omitempty" msgpack:"index,omitempty"` // Offer index for CommandSelectSkill
}

// Observer receives every published snapshot with the events of that tick
// Called on the tick goroutine; implementations must not block
type Observer interface {
	Observe(snap *Snapshot, evs []event.GameEvent)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(snap *Snapshot, evs []event.GameEvent)

// Observe implements Observer
func (f ObserverFunc) Observe(snap *Snapshot, evs []event.GameEvent) { f(snap, evs) }

// LoopConfig tunes the loop
type LoopConfig struct {
	TickInterval     time.Duration
	NarrativeTimeout time.Duration
}

// Loop runs the controller at a fixed rate on a single goroutine
// Commands and narrative results arrive over channels and are applied between ticks
type Loop struct {
	ctrl    *Controller
	gen     narrative.Generator
	log     zerolog.Logger
	metrics *status.Registry
	config  LoopConfig

	commands chan Command
	results  chan narrative.Result

	mu        sync.RWMutex
	observers []Observer

	latest   atomic.Pointer[Snapshot]
	inflight sync.WaitGroup
}

// NewLoop wires a controller to a narrative generator
func NewLoop(ctrl *Controller, gen narrative.Generator, cfg LoopConfig, log zerolog.Logger, metrics *status.Registry) *Loop {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = parameter.TickInterval
	}
	if cfg.NarrativeTimeout <= 0 {
		cfg.NarrativeTimeout = 10 * time.Second
	}
	l := &Loop{
		ctrl:     ctrl,
		gen:      gen,
		log:      log.With().Str("component", "loop").Logger(),
		metrics:  metrics,
		config:   cfg,
		commands: make(chan Command, parameter.CommandQueueSize),
		results:  make(chan narrative.Result, 1),
	}
	l.latest.Store(ctrl.Snapshot())
	return l
}

// AddObserver registers o for every tick
func (l *Loop) AddObserver(o Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, o)
}

// Submit queues a command without blocking; false when the queue is full
func (l *Loop) Submit(cmd Command) bool {
	select {
	case l.commands <- cmd:
		return true
	default:
		l.metrics.Inc(status.MetricDroppedCommands)
		return false
	}
}

// Snapshot returns the last published snapshot
func (l *Loop) Snapshot() *Snapshot {
	return l.latest.Load()
}

// Run ticks until ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.config.TickInterval)
	defer ticker.Stop()

	dt := l.config.TickInterval.Seconds()
	l.log.Info().Dur("interval", l.config.TickInterval).Msg("loop started")

	for {
		select {
		case <-ctx.Done():
			l.inflight.Wait()
			l.log.Info().Msg("loop stopped")
			return nil
		case <-ticker.C:
			l.tick(ctx, dt)
		}
	}
}

// tick applies queued input and results, steps once and publishes
func (l *Loop) tick(ctx context.Context, dt float64) {
	var in Input

	for drained := false; !drained; {
		select {
		case cmd := <-l.commands:
			l.apply(cmd, &in)
		default:
			drained = true
		}
	}

	select {
	case res := <-l.results:
		if err := l.ctrl.ResolveMystery(res); err != nil {
			l.log.Warn().Err(err).Msg("dropping narrative result")
		}
	default:
	}

	evs := l.ctrl.DrainEvents()
	evs = append(evs, l.ctrl.Step(dt, in)...)

	for _, ev := range evs {
		if ev.Type == event.EventMysteryRequested {
			l.requestNarrative(ctx)
		}
	}

	snap := l.ctrl.Snapshot()
	l.latest.Store(snap)

	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.observers {
		o.Observe(snap, evs)
	}
}

func (l *Loop) apply(cmd Command, in *Input) {
	var err error
	switch cmd.Kind {
	case CommandShoot:
		in.Shoot = true
	case CommandConfirm:
		err = l.ctrl.Confirm()
	case CommandSelectSkill:
		err = l.ctrl.SelectSkill(cmd.Index)
	}
	if err != nil {
		l.log.Debug().Err(err).Str("command", cmd.Kind.String()).Msg("command ignored")
	}
}

func (l *Loop) requestNarrative(ctx context.Context) {
	l.inflight.Add(1)
	go func() {
		defer l.inflight.Done()

		reqCtx, cancel := context.WithTimeout(ctx, l.config.NarrativeTimeout)
		res := narrative.Request(reqCtx, l.gen, l.log)
		cancel()

		select {
		case l.results <- res:
		case <-ctx.Done():
		}
	}()
}
