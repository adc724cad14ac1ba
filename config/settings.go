package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/hook-miner/parameter"
)

// Narrative backends
const (
	BackendOff    = "off"    // Every mystery stone yields the fallback result
	BackendDeck   = "deck"   // Local sqlite event deck
	BackendGemini = "gemini" // Remote structured-output model
)

// Environment overrides, applied after the YAML file
const (
	EnvNarrative = "HOOK_MINER_NARRATIVE"
	EnvListen    = "HOOK_MINER_LISTEN"
	EnvDeckPath  = "HOOK_MINER_DECK"
)

// Settings is the process configuration (mirrors hook-miner.yaml)
type Settings struct {
	Sim       SimSettings       `yaml:"sim"`
	Run       Game              `yaml:"run"`
	Narrative NarrativeSettings `yaml:"narrative"`
	Network   NetworkSettings   `yaml:"network"`
	Audio     AudioSettings     `yaml:"audio"`
	Log       LogSettings       `yaml:"log"`
}

type SimSettings struct {
	TickRate     int     `yaml:"tick_rate"`
	EventHoldSec float64 `yaml:"event_hold_sec"`
	Seed         uint64  `yaml:"seed"` // 0 = seeded from the clock
	CanvasWidth  float64 `yaml:"canvas_width"`
	CanvasHeight float64 `yaml:"canvas_height"`
}

type NarrativeSettings struct {
	Backend    string  `yaml:"backend"`
	DeckPath   string  `yaml:"deck_path"`
	BaseURL    string  `yaml:"base_url"` // Empty uses the SDK default host
	Model      string  `yaml:"model"`
	TimeoutSec float64 `yaml:"timeout_sec"`
	APIKeyEnv  string  `yaml:"api_key_env"`
}

type NetworkSettings struct {
	Enabled       bool   `yaml:"enabled"`
	Address       string `yaml:"address"`
	SnapshotEvery int    `yaml:"snapshot_every"` // Ticks between spectator broadcasts
}

type AudioSettings struct {
	Enabled bool `yaml:"enabled"`
}

type LogSettings struct {
	Dir       string `yaml:"dir"`
	MaxSizeMB int    `yaml:"max_size_mb"`
	Level     string `yaml:"level"`
}

// DefaultSettings returns settings usable without any file
func DefaultSettings() *Settings {
	return &Settings{
		Sim: SimSettings{
			TickRate:     60,
			EventHoldSec: 2.5,
			CanvasWidth:  parameter.CanvasWidth,
			CanvasHeight: parameter.CanvasHeight,
		},
		Run: DefaultGame(),
		Narrative: NarrativeSettings{
			Backend:    BackendDeck,
			DeckPath:   "hook-miner.db",
			Model:      "gemini-2.5-flash",
			TimeoutSec: 10,
			APIKeyEnv:  "GEMINI_API_KEY",
		},
		Network: NetworkSettings{
			Enabled:       false,
			Address:       "127.0.0.1:8080",
			SnapshotEvery: 6,
		},
		Audio: AudioSettings{Enabled: true},
		Log: LogSettings{
			Dir:       "logs",
			MaxSizeMB: 10,
			Level:     "debug",
		},
	}
}

// LoadSettings builds settings from defaults, an optional YAML file and the environment
// envFiles are dotenv files; missing ones are skipped. Empty path skips the YAML stage
func LoadSettings(path string, envFiles ...string) (*Settings, error) {
	s := DefaultSettings()

	if err := loadEnv(envFiles...); err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read settings %s: %w", path, err)
		}
		if err := decodeYAML(data, s); err != nil {
			return nil, fmt.Errorf("parse settings %s: %w", path, err)
		}
	}

	applyEnv(s)

	if err := s.Validate(); err != nil {
		return nil, err
	}
	ClampSettings(s)
	return s, nil
}

func loadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env %s: %w", f, err)
		}
	}
	return nil
}

func decodeYAML(data []byte, s *Settings) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(s *Settings) {
	if v := os.Getenv(EnvNarrative); v != "" {
		s.Narrative.Backend = v
	}
	if v := os.Getenv(EnvListen); v != "" {
		s.Network.Address = v
		s.Network.Enabled = true
	}
	if v := os.Getenv(EnvDeckPath); v != "" {
		s.Narrative.DeckPath = v
	}
}

// APIKey resolves the narrative API key from the configured environment variable
func (s *Settings) APIKey() string {
	if s.Narrative.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(s.Narrative.APIKeyEnv)
}

// TickInterval is the wall-clock pacing derived from the tick rate
func (s *Settings) TickInterval() time.Duration {
	return time.Second / time.Duration(s.Sim.TickRate)
}

// NarrativeTimeout bounds a single narrative request
func (s *Settings) NarrativeTimeout() time.Duration {
	return time.Duration(s.Narrative.TimeoutSec * float64(time.Second))
}
