// Package network streams game snapshots to websocket spectators and accepts remote commands
package network

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/hook-miner/engine"
	"github.com/lixenwraith/hook-miner/event"
	"github.com/lixenwraith/hook-miner/status"
)

// CommandSink accepts remote commands; engine.Loop implements it
type CommandSink interface {
	Submit(cmd engine.Command) bool
}

// Hub fans snapshots out to subscribers
// Observe runs on the tick goroutine and never blocks on a socket
type Hub struct {
	config  *Config
	sink    CommandSink
	log     zerolog.Logger
	metrics *status.Registry

	mu      sync.Mutex
	clients map[*client]struct{}
	ticks   int
	pending []event.GameEvent
}

// NewHub creates a hub forwarding commands to sink
func NewHub(config *Config, sink CommandSink, log zerolog.Logger, metrics *status.Registry) *Hub {
	if config == nil {
		config = DefaultConfig()
	}
	return &Hub{
		config:  config,
		sink:    sink,
		log:     log.With().Str("component", "hub").Logger(),
		metrics: metrics,
		clients: make(map[*client]struct{}),
	}
}

// Count returns the number of connected subscribers
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	h.metrics.SetFloat(status.GaugeClients, float64(n))
	h.log.Info().Str("remote", c.conn.RemoteAddr().String()).Int("subscribers", n).Msg("subscriber joined")
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	n := len(h.clients)
	h.mu.Unlock()
	h.metrics.SetFloat(status.GaugeClients, float64(n))
}

// Observe implements engine.Observer
// Events accumulate across throttled ticks so subscribers see every one
func (h *Hub) Observe(snap *engine.Snapshot, evs []event.GameEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.pending = append(h.pending, evs...)
	h.ticks++
	every := max(h.config.SnapshotEvery, 1)
	if h.ticks%every != 0 && len(evs) == 0 {
		return
	}
	if len(h.clients) == 0 {
		h.pending = nil
		return
	}

	frame := Frame{Type: "snapshot", Snapshot: snap, Events: h.pending}
	h.pending = nil

	encoded := make(map[Format][]byte, 2)
	failed := make(map[Format]bool)
	for c := range h.clients {
		if failed[c.format] {
			continue
		}
		data, ok := encoded[c.format]
		if !ok {
			var err error
			data, err = Encode(c.format, frame)
			if err != nil {
				h.log.Error().Err(err).Stringer("format", c.format).Msg("encode frame failed")
				failed[c.format] = true
				continue
			}
			encoded[c.format] = data
		}

		select {
		case c.send <- data:
		default:
			// Slow subscriber; drop this frame
		}
	}

	// Retry on the next flush; events that cannot be encoded are dropped
	if len(failed) > 0 {
		h.pending = frame.Events
		for f := range failed {
			h.pending = encodable(f, h.pending)
		}
	}
}

// encodable keeps the events that encode in format f
func encodable(f Format, evs []event.GameEvent) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range evs {
		if _, err := Encode(f, ev); err == nil {
			out = append(out, ev)
		}
	}
	return out
}

// Close disconnects every subscriber
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			timeNow().Add(h.config.WriteWait))
		c.conn.Close()
	}
}
