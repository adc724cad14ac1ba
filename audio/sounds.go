package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/hook-miner/event"
)

// Sound identifies a synthesized effect
type Sound uint8

const (
	SoundNone Sound = iota
	SoundShoot
	SoundCatch
	SoundMiss
	SoundDeliver
	SoundExplosion
	SoundGemRain
	SoundMystery
	SoundLevelComplete
	SoundGameOver
)

// SoundFor maps a game event to its effect; SoundNone when silent
func SoundFor(t event.EventType) Sound {
	switch t {
	case event.EventShoot:
		return SoundShoot
	case event.EventCatch:
		return SoundCatch
	case event.EventMiss:
		return SoundMiss
	case event.EventDeliver:
		return SoundDeliver
	case event.EventExplosion:
		return SoundExplosion
	case event.EventGemRain:
		return SoundGemRain
	case event.EventMysteryResolved:
		return SoundMystery
	case event.EventLevelComplete:
		return SoundLevelComplete
	case event.EventGameOver:
		return SoundGameOver
	}
	return SoundNone
}

func ms(d int) time.Duration {
	return time.Duration(d) * time.Millisecond
}

// streamer builds a finite streamer for s; nil for SoundNone
func streamer(sr beep.SampleRate, s Sound) beep.Streamer {
	tone := func(d int, start, end, decay, vol float64) beep.Streamer {
		n := sr.N(ms(d))
		return beep.Take(n, NewToneGenerator(sr, n, start, end, decay, vol))
	}

	switch s {
	case SoundShoot:
		return tone(120, 900, 400, 12, 0.12)
	case SoundCatch:
		n := sr.N(ms(90))
		return beep.Take(n, NewToneGenerator(sr, n, 220, 180, 20, 0.2).WithHarmonic(0.5))
	case SoundMiss:
		return tone(200, 300, 150, 8, 0.1)
	case SoundDeliver:
		return beep.Seq(tone(80, 880, 880, 10, 0.15), tone(120, 1320, 1320, 8, 0.15))
	case SoundExplosion:
		return beep.Take(sr.N(ms(600)), NewNoiseGenerator(sr, 0x9e3779b9, 0.5))
	case SoundGemRain:
		return beep.Seq(
			tone(60, 1568, 1568, 15, 0.1),
			tone(60, 1760, 1760, 15, 0.1),
			tone(60, 1976, 1976, 15, 0.1),
			tone(120, 2093, 2093, 10, 0.1),
		)
	case SoundMystery:
		return beep.Seq(tone(150, 523, 659, 4, 0.12), tone(250, 784, 1046, 4, 0.12))
	case SoundLevelComplete:
		return beep.Seq(tone(120, 523, 523, 6, 0.15), tone(120, 659, 659, 6, 0.15), tone(300, 784, 784, 4, 0.15))
	case SoundGameOver:
		return beep.Seq(tone(200, 392, 392, 5, 0.15), tone(200, 330, 330, 5, 0.15), tone(400, 262, 200, 3, 0.15))
	}
	return nil
}
