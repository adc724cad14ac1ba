package network

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/hook-miner/component"
	"github.com/lixenwraith/hook-miner/config"
	"github.com/lixenwraith/hook-miner/engine"
	"github.com/lixenwraith/hook-miner/event"
	"github.com/lixenwraith/hook-miner/status"
	"github.com/lixenwraith/hook-miner/vmath"
)

type fakeSink struct {
	cmds chan engine.Command
}

func (f *fakeSink) Submit(cmd engine.Command) bool {
	select {
	case f.cmds <- cmd:
		return true
	default:
		return false
	}
}

type fakeSource struct {
	snap *engine.Snapshot
}

func (f *fakeSource) Snapshot() *engine.Snapshot { return f.snap }

func testSnapshot() *engine.Snapshot {
	return &engine.Snapshot{
		Tick:   42,
		Phase:  engine.PhasePlaying,
		Level:  1,
		Score:  50,
		Target: 100,
		Items:  []component.Item{component.NewItem("a", component.KindGoldSmall, vmath.Vec2{X: 1, Y: 2})},
		Offers: config.Skills()[:1],
		Game:   config.DefaultGame(),
	}
}

type harness struct {
	hub  *Hub
	sink *fakeSink
	srv  *httptest.Server
}

func newHarness(t *testing.T, every int) *harness {
	t.Helper()
	cfg := DefaultConfig()
	cfg.SnapshotEvery = every
	sink := &fakeSink{cmds: make(chan engine.Command, 8)}
	hub := NewHub(cfg, sink, zerolog.Nop(), status.NewRegistry())
	metrics := status.NewRegistry()
	metrics.Add(status.MetricCatches, 2)
	srv := httptest.NewServer(NewServer(hub, &fakeSource{snap: testSnapshot()}, metrics, zerolog.Nop()))
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return &harness{hub: hub, sink: sink, srv: srv}
}

func (h *harness) dial(t *testing.T, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(h.srv.URL, "http") + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	deadline := time.Now().Add(2 * time.Second)
	for h.hub.Count() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	mt, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if mt != websocket.TextMessage {
		t.Errorf("Expected text frame, got %d", mt)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Frame is not JSON: %v", err)
	}
	return out
}

func TestWebsocketInitialSnapshot(t *testing.T) {
	h := newHarness(t, 1)
	conn := h.dial(t, "")

	frame := readJSON(t, conn)
	if frame["type"] != "snapshot" {
		t.Errorf("Expected snapshot frame, got %v", frame["type"])
	}
	snap := frame["snapshot"].(map[string]any)
	if snap["phase"] != "PLAYING" {
		t.Errorf("Expected phase PLAYING, got %v", snap["phase"])
	}
	items := snap["items"].([]any)
	if items[0].(map[string]any)["kind"] != "GOLD_SMALL" {
		t.Errorf("Expected kind by name, got %v", items[0])
	}
}

func TestWebsocketBroadcastCarriesEvents(t *testing.T) {
	h := newHarness(t, 100)
	conn := h.dial(t, "")
	readJSON(t, conn)

	snap := testSnapshot()
	// Throttled tick without events: nothing sent
	h.hub.Observe(snap, nil)
	// Event ticks always flush
	h.hub.Observe(snap, []event.GameEvent{{Type: event.EventExplosion, Payload: &event.ExplosionPayload{Removed: []string{"x"}}}})

	frame := readJSON(t, conn)
	evs, _ := frame["events"].([]any)
	if len(evs) != 1 {
		t.Fatalf("Expected 1 event in frame, got %v", frame["events"])
	}
	if evs[0].(map[string]any)["type"] != "explosion" {
		t.Errorf("Expected explosion event, got %v", evs[0])
	}
}

func TestWebsocketCommands(t *testing.T) {
	h := newHarness(t, 1)
	conn := h.dial(t, "")
	readJSON(t, conn)

	conn.WriteMessage(websocket.TextMessage, []byte(`{"command":"bogus"}`))
	conn.WriteMessage(websocket.TextMessage, []byte(`{"command":"select_skill","index":2}`))

	select {
	case cmd := <-h.sink.cmds:
		if cmd.Kind != engine.CommandSelectSkill || cmd.Index != 2 {
			t.Errorf("Expected select skill 2, got %+v", cmd)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Command never reached the sink")
	}
}

func TestWebsocketMsgpack(t *testing.T) {
	h := newHarness(t, 1)
	conn := h.dial(t, "?format=msgpack")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	mt, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if mt != websocket.BinaryMessage {
		t.Errorf("Expected binary frame, got %d", mt)
	}
	var frame map[string]any
	if err := msgpack.Unmarshal(data, &frame); err != nil {
		t.Fatalf("Frame is not msgpack: %v", err)
	}
	if frame["type"] != "snapshot" {
		t.Errorf("Expected snapshot frame, got %v", frame["type"])
	}

	cmd, _ := msgpack.Marshal(ClientMessage{Command: "shoot"})
	conn.WriteMessage(websocket.BinaryMessage, cmd)
	select {
	case got := <-h.sink.cmds:
		if got.Kind != engine.CommandShoot {
			t.Errorf("Expected shoot, got %+v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Command never reached the sink")
	}
}

func TestHTTPEndpoints(t *testing.T) {
	h := newHarness(t, 1)

	resp, err := http.Get(h.srv.URL + "/snapshot")
	if err != nil {
		t.Fatalf("GET /snapshot failed: %v", err)
	}
	var snap map[string]any
	json.NewDecoder(resp.Body).Decode(&snap)
	resp.Body.Close()
	if snap["tick"] != float64(42) || snap["score"] != float64(50) {
		t.Errorf("Unexpected snapshot %v", snap)
	}

	resp, _ = http.Get(h.srv.URL + "/snapshot?format=msgpack")
	if ct := resp.Header.Get("Content-Type"); ct != "application/msgpack" {
		t.Errorf("Expected msgpack content type, got %s", ct)
	}
	resp.Body.Close()

	resp, _ = http.Get(h.srv.URL + "/snapshot?format=xml")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown format, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp, _ = http.Get(h.srv.URL + "/status")
	var metrics map[string]any
	json.NewDecoder(resp.Body).Decode(&metrics)
	resp.Body.Close()
	if metrics[status.MetricCatches] != float64(2) {
		t.Errorf("Expected catches 2 in status, got %v", metrics[status.MetricCatches])
	}

	resp, _ = http.Get(h.srv.URL + "/health")
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), `"ok"`) {
		t.Errorf("Unexpected health body %s", body)
	}

	req, _ := http.NewRequest(http.MethodPost, h.srv.URL+"/health", nil)
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for POST, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestDecodeCommand(t *testing.T) {
	if _, err := DecodeCommand(FormatJSON, []byte(`not json`)); err == nil {
		t.Error("Expected decode error")
	}
	cmd, err := DecodeCommand(FormatJSON, []byte(`{"command":"confirm"}`))
	if err != nil || cmd.Kind != engine.CommandConfirm {
		t.Errorf("Expected confirm, got %+v %v", cmd, err)
	}
}

func TestServiceLifecycle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = "127.0.0.1:0"
	s := NewService(&fakeSource{snap: testSnapshot()}, nil, zerolog.Nop(), status.NewRegistry())
	if err := s.Init(cfg); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	resp, err := http.Get("http://" + s.Addr() + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}

	if err := s.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Second Stop should be a no-op, got %v", err)
	}
}

func TestServiceDisabled(t *testing.T) {
	s := NewService(nil, nil, zerolog.Nop(), nil)
	var cfg *Config
	s.Init(cfg)
	if !s.IsDisabled() {
		t.Error("Expected nil config to disable the service")
	}
	if err := s.Start(); err != nil {
		t.Errorf("Disabled Start should succeed, got %v", err)
	}
	s.Observe(testSnapshot(), nil)
	s.Stop()
}

func TestEncodeFailureKeepsOtherFormatsAndEvents(t *testing.T) {
	h := newHarness(t, 1)
	jsonConn := h.dial(t, "")
	readJSON(t, jsonConn)

	url := "ws" + strings.TrimPrefix(h.srv.URL, "http") + "/ws?format=msgpack"
	mpConn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer mpConn.Close()
	mpConn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := mpConn.ReadMessage(); err != nil {
		t.Fatalf("Read initial msgpack frame failed: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for h.hub.Count() < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	// NaN cannot be written as JSON but is valid msgpack
	good := event.GameEvent{Type: event.EventGemRain, Payload: &event.GemRainPayload{Count: 5}}
	bad := event.GameEvent{Type: event.EventCatch, Payload: math.NaN()}
	snap := testSnapshot()
	h.hub.Observe(snap, []event.GameEvent{good, bad})

	mpConn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := mpConn.ReadMessage()
	if err != nil {
		t.Fatalf("Expected msgpack subscriber to still receive the frame: %v", err)
	}
	var mpFrame map[string]any
	if err := msgpack.Unmarshal(data, &mpFrame); err != nil {
		t.Fatalf("Frame is not msgpack: %v", err)
	}
	if evs, _ := mpFrame["events"].([]any); len(evs) != 2 {
		t.Errorf("Expected 2 events in msgpack frame, got %v", mpFrame["events"])
	}

	// Next flush carries the encodable event to the JSON subscriber
	h.hub.Observe(snap, nil)
	frame := readJSON(t, jsonConn)
	evs, _ := frame["events"].([]any)
	if len(evs) != 1 {
		t.Fatalf("Expected the gem rain event to be retried, got %v", frame["events"])
	}
	if evs[0].(map[string]any)["type"] != "gem_rain" {
		t.Errorf("Expected gem_rain event, got %v", evs[0])
	}
}
