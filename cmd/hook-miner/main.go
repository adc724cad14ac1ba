package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/hook-miner/audio"
	"github.com/lixenwraith/hook-miner/config"
	"github.com/lixenwraith/hook-miner/engine"
	"github.com/lixenwraith/hook-miner/input"
	"github.com/lixenwraith/hook-miner/narrative"
	"github.com/lixenwraith/hook-miner/network"
	"github.com/lixenwraith/hook-miner/render"
	"github.com/lixenwraith/hook-miner/service"
	"github.com/lixenwraith/hook-miner/spawn"
	"github.com/lixenwraith/hook-miner/status"
)

var (
	configFlag = flag.String("config", "", "Path to hook-miner.yaml")
	debugFlag  = flag.Bool("debug", false, "Write logs to the log directory")
	envFlag    = flag.String("env", ".env", "Dotenv file with API keys")
)

func main() {
	var screen tcell.Screen

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mHOOK-MINER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	settings, err := config.LoadSettings(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}

	log, logFile := setupLogging(*debugFlag, settings.Log.Dir, settings.Log.MaxSizeMB, settings.Log.Level)
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seed := settings.Sim.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().Uint64("seed", seed).Str("narrative", settings.Narrative.Backend).Msg("starting")

	gen, closeGen := newGenerator(ctx, settings, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), log)
	defer closeGen()

	metrics := status.NewRegistry()
	rng := rand.New(rand.NewPCG(seed, 0))
	width, height := settings.Sim.CanvasWidth, settings.Sim.CanvasHeight
	ctrl := engine.NewController(
		settings.Run,
		spawn.NewSpawner(rng, spawn.WithBounds(width, height)),
		rng,
		engine.WithBounds(width, height),
		engine.WithLogger(log),
		engine.WithMetrics(metrics),
		engine.WithEventHold(settings.Sim.EventHoldSec),
	)
	loop := engine.NewLoop(ctrl, gen, engine.LoopConfig{
		TickInterval:     settings.TickInterval(),
		NarrativeTimeout: settings.NarrativeTimeout(),
	}, log, metrics)

	screen, err = tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.HideCursor()

	loop.AddObserver(render.NewRenderer(screen))

	audioSvc := audio.NewService(log)
	netSvc := network.NewService(loop, loop, log, metrics)

	var netConfig *network.Config
	if settings.Network.Enabled {
		netConfig = network.DefaultConfig()
		netConfig.Address = settings.Network.Address
		netConfig.SnapshotEvery = settings.Network.SnapshotEvery
	}

	services := service.NewGroup(log)
	services.Add(audioSvc, settings.Audio.Enabled)
	services.Add(netSvc, netConfig)
	if err := services.Start(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start services: %v\n", err)
		os.Exit(1)
	}
	defer services.Stop()

	loop.AddObserver(audioSvc)
	loop.AddObserver(netSvc)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})

	events := make(chan tcell.Event, 64)
	// Input polling uses raw goroutine as PollEvent only returns after Fini
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	g.Go(func() error {
		return pumpInput(gctx, cancel, events, input.DefaultKeyTable(), loop, audioSvc, screen)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("run failed")
	}

	log.Info().Fields(metrics.Export()).Msg("final metrics")
}

// pumpInput translates terminal events until quit or cancellation
func pumpInput(ctx context.Context, quit context.CancelFunc, events <-chan tcell.Event, keys *input.KeyTable, loop *engine.Loop, sound *audio.Service, screen tcell.Screen) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				quit()
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
				continue
			}

			intent := keys.Translate(ev)
			switch intent.Type {
			case input.IntentNone:
			case input.IntentQuit:
				quit()
				return nil
			case input.IntentToggleMute:
				sound.ToggleMute()
			default:
				if cmd, ok := intent.Command(); ok {
					loop.Submit(cmd)
				}
			}
		}
	}
}

// newGenerator picks the mystery stone backend, degrading to the fallback result
func newGenerator(ctx context.Context, settings *config.Settings, rng *rand.Rand, log zerolog.Logger) (narrative.Generator, func()) {
	nop := func() {}
	static := narrative.Static{Result: narrative.Fallback()}

	switch settings.Narrative.Backend {
	case config.BackendGemini:
		gen, err := narrative.NewGemini(ctx, narrative.GeminiConfig{
			BaseURL: settings.Narrative.BaseURL,
			Model:   settings.Narrative.Model,
			APIKey:  settings.APIKey(),
			Timeout: settings.NarrativeTimeout(),
		}, nil)
		if err == nil {
			return gen, nop
		}
		log.Warn().Err(err).Msg("gemini unavailable, using local deck")
		fallthrough

	case config.BackendDeck:
		deck, err := narrative.OpenDeck(ctx, settings.Narrative.DeckPath, rng)
		if err != nil {
			log.Warn().Err(err).Msg("deck unavailable, mystery stones disabled")
			return static, nop
		}
		if err := deck.Seed(ctx, narrative.DefaultEntries()); err != nil {
			log.Warn().Err(err).Msg("deck seed failed")
		}
		return deck, func() { deck.Close() }

	default:
		return static, nop
	}
}
