package network

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/hook-miner/engine"
	"github.com/lixenwraith/hook-miner/status"
)

// SnapshotSource exposes the latest published snapshot; engine.Loop implements it
type SnapshotSource interface {
	Snapshot() *engine.Snapshot
}

// Server routes spectator HTTP and websocket traffic
type Server struct {
	hub     *Hub
	source  SnapshotSource
	metrics *status.Registry
	log     zerolog.Logger
	router  *mux.Router
}

// NewServer builds the router
//
//	GET /ws        websocket stream (?format=json|msgpack)
//	GET /snapshot  latest snapshot (?format=json|msgpack)
//	GET /status    metrics registry as JSON
//	GET /health    liveness
func NewServer(hub *Hub, source SnapshotSource, metrics *status.Registry, log zerolog.Logger) *Server {
	s := &Server{
		hub:     hub,
		source:  source,
		metrics: metrics,
		log:     log.With().Str("component", "http").Logger(),
		router:  mux.NewRouter(),
	}

	s.router.HandleFunc("/ws", s.handleWs).Methods(http.MethodGet)
	s.router.HandleFunc("/snapshot", s.handleSnapshot).Methods(http.MethodGet)
	s.router.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) latest() *engine.Snapshot {
	if s.source == nil {
		return nil
	}
	return s.source.Snapshot()
}

func (s *Server) handleWs(w http.ResponseWriter, r *http.Request) {
	s.hub.ServeWs(w, r, s.latest())
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	format, err := ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	snap := s.latest()
	if snap == nil {
		http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}

	data, err := Encode(format, snap)
	if err != nil {
		s.log.Error().Err(err).Msg("encode snapshot failed")
		http.Error(w, "encode failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Write(data)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	out := map[string]any{}
	if s.metrics != nil {
		out = s.metrics.Export()
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":      "ok",
		"subscribers": s.hub.Count(),
	})
}
