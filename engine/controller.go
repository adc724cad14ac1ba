// Package engine owns the run state machine and drives the fixed-tick simulation
package engine

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hook-miner/component"
	"github.com/lixenwraith/hook-miner/config"
	"github.com/lixenwraith/hook-miner/effect"
	"github.com/lixenwraith/hook-miner/event"
	"github.com/lixenwraith/hook-miner/narrative"
	"github.com/lixenwraith/hook-miner/parameter"
	"github.com/lixenwraith/hook-miner/physics"
	"github.com/lixenwraith/hook-miner/spawn"
	"github.com/lixenwraith/hook-miner/status"
)

// Input is the per-tick player intent
type Input struct {
	Shoot bool
}

// Controller holds the authoritative simulation state
// Not safe for concurrent use; one goroutine owns it and publishes snapshots
type Controller struct {
	log      zerolog.Logger
	metrics  *status.Registry
	rng      *rand.Rand
	spawner  *spawn.Spawner
	resolver *effect.Resolver

	base      config.Game
	eventHold float64
	width     float64
	height    float64

	// Run state
	phase  Phase
	game   config.Game
	score  float64
	target int
	level  int
	offers []config.Skill

	// Level state
	hook     physics.Hook
	items    []component.Item
	timeLeft float64

	// Mystery state
	pending  bool
	holdLeft float64
	message  string

	tick   uint64
	events []event.GameEvent
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger attaches a logger
func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log.With().Str("component", "controller").Logger() }
}

// WithMetrics attaches a metrics registry
func WithMetrics(r *status.Registry) Option {
	return func(c *Controller) { c.metrics = r }
}

// WithEventHold overrides the seconds a mystery message stays up
func WithEventHold(seconds float64) Option {
	return func(c *Controller) { c.eventHold = seconds }
}

// WithBounds overrides the canvas size used for hook misses
func WithBounds(width, height float64) Option {
	return func(c *Controller) {
		c.width = width
		c.height = height
	}
}

// NewController creates a controller in MENU with a fresh run
// rng drives skill offers; spawner owns item placement
func NewController(base config.Game, spawner *spawn.Spawner, rng *rand.Rand, opts ...Option) *Controller {
	c := &Controller{
		log:       zerolog.Nop(),
		rng:       rng,
		spawner:   spawner,
		resolver:  effect.NewResolver(spawner),
		base:      base,
		eventHold: parameter.EventHoldSeconds,
		width:     parameter.CanvasWidth,
		height:    parameter.CanvasHeight,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.resetRun()
	c.phase = PhaseMenu
	c.metrics.SetLabel(status.LabelPhase, c.phase.String())
	return c
}

func (c *Controller) resetRun() {
	c.game = c.base
	c.score = 0
	c.target = parameter.InitialTargetScore
	c.level = parameter.InitialLevel
	c.offers = nil
	c.resetLevel()
}

func (c *Controller) resetLevel() {
	c.hook = physics.NewHookAt(physics.OriginFor(c.width))
	c.items = nil
	c.timeLeft = 0
	c.pending = false
	c.holdLeft = 0
	c.message = ""
}

// Phase returns the current phase
func (c *Controller) Phase() Phase {
	return c.phase
}

// Game returns the current run configuration
func (c *Controller) Game() config.Game {
	return c.game
}

// Score returns the run score
func (c *Controller) Score() float64 {
	return c.score
}

// MysteryPending reports whether a narrative result is awaited
func (c *Controller) MysteryPending() bool {
	return c.pending
}

func (c *Controller) emit(t event.EventType, payload any) {
	c.events = append(c.events, event.GameEvent{Type: t, Tick: c.tick, Payload: payload})
}

// DrainEvents returns and clears events produced since the last drain
func (c *Controller) DrainEvents() []event.GameEvent {
	evs := c.events
	c.events = nil
	return evs
}

func (c *Controller) transition(to Phase) error {
	from := c.phase
	if !CanTransition(from, to) {
		return fmt.Errorf("transition %s -> %s: %w", from, to, ErrInvalidPhase)
	}
	c.phase = to
	c.metrics.SetLabel(status.LabelPhase, to.String())
	c.emit(event.EventPhaseChange, &event.PhaseChangePayload{From: from.String(), To: to.String()})
	c.log.Debug().Str("from", from.String()).Str("to", to.String()).Msg("phase change")
	return nil
}

// Start leaves the menu and rolls the first skill offers
func (c *Controller) Start() error {
	if c.phase != PhaseMenu {
		return phaseError("start", c.phase)
	}
	if err := c.transition(PhaseSkillSelect); err != nil {
		return err
	}
	c.rollOffers()
	return nil
}

func (c *Controller) rollOffers() {
	all := config.Skills()
	n := min(parameter.SkillOfferCount, len(all))
	c.offers = make([]config.Skill, 0, n)
	for _, i := range c.rng.Perm(len(all))[:n] {
		c.offers = append(c.offers, all[i])
	}
}

// Offers returns the skills on offer in SKILL_SELECT
func (c *Controller) Offers() []config.Skill {
	out := make([]config.Skill, len(c.offers))
	copy(out, c.offers)
	return out
}

// SelectSkill applies offer i and starts the level
func (c *Controller) SelectSkill(i int) error {
	if c.phase != PhaseSkillSelect {
		return phaseError("select skill", c.phase)
	}
	if i < 0 || i >= len(c.offers) {
		return fmt.Errorf("skill offer %d out of range [0,%d)", i, len(c.offers))
	}

	skill := c.offers[i]
	c.game = skill.Apply(c.game)
	c.offers = nil
	c.log.Info().Str("skill", skill.Name).Int("level", c.level).Msg("skill selected")
	return c.startLevel()
}

func (c *Controller) startLevel() error {
	c.resetLevel()
	c.items = c.spawner.Spawn(c.level, c.game.Luck)
	c.timeLeft = c.game.TimeLimit
	if err := c.transition(PhasePlaying); err != nil {
		return err
	}
	c.emit(event.EventLevelStart, c.levelPayload())
	c.log.Info().Int("level", c.level).Int("target", c.target).Int("items", len(c.items)).Msg("level start")
	return nil
}

func (c *Controller) levelPayload() *event.LevelPayload {
	return &event.LevelPayload{Level: c.level, Score: c.score, Target: c.target}
}

// Shoot fires the hook; accepted only while PLAYING with the hook idle
func (c *Controller) Shoot() bool {
	if c.phase != PhasePlaying {
		return false
	}
	if !c.hook.Shoot() {
		return false
	}
	c.metrics.Inc(status.MetricShots)
	c.emit(event.EventShoot, nil)
	return true
}

// Step advances the simulation by dt seconds and returns the tick's events
func (c *Controller) Step(dt float64, in Input) []event.GameEvent {
	c.tick++
	c.metrics.Inc(status.MetricTicks)

	switch c.phase {
	case PhasePlaying:
		if in.Shoot {
			c.Shoot()
		}
		c.stepPlaying(dt)
	case PhaseEventProcessing:
		c.stepHold(dt)
	}

	c.metrics.SetFloat(status.GaugeScore, c.score)
	c.metrics.SetFloat(status.GaugeTimeLeft, c.timeLeft)
	c.metrics.SetFloat(status.GaugeLevel, float64(c.level))
	return c.DrainEvents()
}

func (c *Controller) stepPlaying(dt float64) {
	weight := 0.0
	if c.hook.Attached != "" {
		if idx := component.IndexOf(c.items, c.hook.Attached); idx >= 0 {
			weight = c.items[idx].Weight
		}
	}

	params := physics.Params{
		HookSpeed: c.game.HookSpeed,
		Strength:  c.game.StrengthMultiplier,
		Width:     c.width,
		Height:    c.height,
	}

	var step physics.Step
	c.hook, step = physics.StepHook(c.hook, params, weight)

	switch step.Outcome {
	case physics.OutcomeMiss:
		c.metrics.Inc(status.MetricMisses)
		c.emit(event.EventMiss, nil)
	case physics.OutcomeDelivered:
		c.deliver(step.ItemID)
	}

	if c.phase == PhasePlaying && c.hook.State == physics.HookShooting && c.hook.Attached == "" {
		if idx := physics.FindCatch(c.hook.Tip(), c.items); idx >= 0 {
			c.items[idx].Caught = true
			c.hook.Attach(c.items[idx].ID)
			c.metrics.Inc(status.MetricCatches)
			c.emit(event.EventCatch, &event.CatchPayload{ItemID: c.items[idx].ID, Kind: c.items[idx].Kind})
		}
	}

	// A delivery that opened a mystery event freezes the clock from this tick on
	if c.phase != PhasePlaying {
		return
	}

	c.timeLeft = math.Max(0, c.timeLeft-dt)
	if c.timeLeft <= 0 && c.hook.State == physics.HookIdle {
		c.endLevel()
	}
}

func (c *Controller) deliver(id string) {
	var out effect.Outcome
	var ok bool
	c.items, out, ok = c.resolver.Deliver(c.items, id, c.game.GoldMultiplier)
	if !ok {
		c.log.Warn().Str("item", id).Msg("delivered item not on board")
		return
	}

	c.score += out.ScoreGain
	c.metrics.Inc(status.MetricDeliveries)
	c.emit(event.EventDeliver, &event.DeliverPayload{Item: out.Item, ScoreGain: out.ScoreGain})

	switch {
	case out.Item.Kind == component.KindBomb:
		c.metrics.Inc(status.MetricExplosions)
		c.metrics.Add(status.MetricExploded, int64(len(out.Exploded)))
		c.emit(event.EventExplosion, &event.ExplosionPayload{
			Center:  out.Item.Pos,
			Radius:  parameter.BombRadius,
			Removed: out.Exploded,
		})
	case len(out.Spawned) > 0:
		c.metrics.Inc(status.MetricGemRains)
		c.emit(event.EventGemRain, &event.GemRainPayload{Count: len(out.Spawned)})
	case out.MysteryRequested:
		c.requestMystery(out.Item.ID)
	}
}

func (c *Controller) requestMystery(itemID string) {
	if err := c.transition(PhaseEventProcessing); err != nil {
		c.log.Error().Err(err).Msg("cannot open mystery event")
		return
	}
	c.pending = true
	c.holdLeft = 0
	c.message = ""
	c.metrics.Inc(status.MetricMysteryRequests)
	c.emit(event.EventMysteryRequested, &event.MysteryPayload{ItemID: itemID})
}

// ResolveMystery applies a narrative result to the pending mystery event
func (c *Controller) ResolveMystery(res narrative.Result) error {
	if c.phase != PhaseEventProcessing || !c.pending {
		return phaseError("resolve mystery", c.phase)
	}

	gain := effect.ApplyNarrative(res)
	c.score += gain.Score
	c.timeLeft += gain.Time
	c.game.StrengthMultiplier += gain.Strength

	c.pending = false
	c.message = res.Message
	c.holdLeft = c.eventHold
	if res == narrative.Fallback() {
		c.metrics.Inc(status.MetricMysteryFallbacks)
	}
	c.emit(event.EventMysteryResolved, &event.MysteryPayload{Result: &res})
	c.log.Info().Str("effect", string(res.EffectType)).Int("value", res.Value).Msg("mystery resolved")
	return nil
}

func (c *Controller) stepHold(dt float64) {
	if c.pending {
		return
	}
	c.holdLeft -= dt
	if c.holdLeft > 0 {
		return
	}
	c.holdLeft = 0
	c.message = ""
	if err := c.transition(PhasePlaying); err != nil {
		c.log.Error().Err(err).Msg("cannot resume play")
	}
}

func (c *Controller) endLevel() {
	cleared := c.score >= float64(c.target)
	next := PhaseGameOver
	if cleared {
		next = PhaseLevelComplete
	}
	if err := c.transition(next); err != nil {
		c.log.Error().Err(err).Msg("cannot end level")
		return
	}
	c.items = nil

	if cleared {
		c.metrics.Inc(status.MetricLevelsCleared)
		c.emit(event.EventLevelComplete, c.levelPayload())
	} else {
		c.metrics.Inc(status.MetricGameOvers)
		c.emit(event.EventGameOver, c.levelPayload())
	}
	c.log.Info().Bool("cleared", cleared).Float64("score", c.score).Int("target", c.target).Msg("level end")
}

// NextLevel advances from LEVEL_COMPLETE to the next skill selection
func (c *Controller) NextLevel() error {
	if c.phase != PhaseLevelComplete {
		return phaseError("next level", c.phase)
	}
	c.level++
	c.target = int(math.Floor(float64(c.target) * parameter.TargetScoreGrowth))
	if err := c.transition(PhaseSkillSelect); err != nil {
		return err
	}
	c.rollOffers()
	return nil
}

// Restart resets the run from GAME_OVER and passes through MENU into skill selection
func (c *Controller) Restart() error {
	if c.phase != PhaseGameOver {
		return phaseError("restart", c.phase)
	}
	c.resetRun()
	if err := c.transition(PhaseMenu); err != nil {
		return err
	}
	return c.Start()
}

// Confirm performs the phase's primary action: start, advance or restart
func (c *Controller) Confirm() error {
	switch c.phase {
	case PhaseMenu:
		return c.Start()
	case PhaseLevelComplete:
		return c.NextLevel()
	case PhaseGameOver:
		return c.Restart()
	}
	return phaseError("confirm", c.phase)
}
