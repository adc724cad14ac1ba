package network

import (
	"time"

	"github.com/lixenwraith/hook-miner/parameter"
)

// Config holds spectator server configuration
type Config struct {
	// Address to bind; empty disables the server
	Address string

	// SnapshotEvery broadcasts one frame per N ticks; events are never skipped
	SnapshotEvery int

	// Per-subscriber outbound buffer
	SendQueueSize int

	// Timing
	WriteWait       time.Duration
	PongWait        time.Duration
	PingPeriod      time.Duration
	ShutdownTimeout time.Duration

	// Largest inbound command frame
	MaxMessageSize int64
}

// DefaultConfig returns loopback defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         "127.0.0.1:8080",
		SnapshotEvery:   parameter.SnapshotEveryTicks,
		SendQueueSize:   parameter.SubscriberQueueSize,
		WriteWait:       parameter.WriteWait,
		PongWait:        parameter.PongWait,
		PingPeriod:      parameter.PingPeriod,
		ShutdownTimeout: 2 * time.Second,
		MaxMessageSize:  parameter.MaxMessageSize,
	}
}
