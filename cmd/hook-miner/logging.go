package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logFileName = "hook-miner.log"
	bytesPerMB  = 1024 * 1024
)

// setupLogging opens dir/hook-miner.log when debug is set, rotating it past maxSizeMB
// Returns a no-op logger and nil file otherwise; the terminal is never written to
func setupLogging(debug bool, dir string, maxSizeMB int, level string) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.New(io.Discard).Level(zerolog.Disabled), nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > int64(maxSizeMB)*bytesPerMB {
		rotated := filepath.Join(dir, fmt.Sprintf("hook-miner_%s.log", time.Now().Format("20060102_150405")))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}
	log := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return log, f
}
