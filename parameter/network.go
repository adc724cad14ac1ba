package parameter

import "time"

// Spectator transport
const (
	// SnapshotEveryTicks throttles websocket broadcasts (6 = 10 Hz at 60 Hz tick)
	SnapshotEveryTicks = 6

	// SubscriberQueueSize is the per-subscriber outbound buffer; full queues drop frames
	SubscriberQueueSize = 16

	// CommandQueueSize buffers inputs between producers and the tick loop
	CommandQueueSize = 64

	WriteWait      = 5 * time.Second
	PongWait       = 30 * time.Second
	PingPeriod     = (PongWait * 9) / 10
	MaxMessageSize = 1024
)
