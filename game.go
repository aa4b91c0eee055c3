package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/skyclimber/common"
	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
	"github.com/milk9111/skyclimber/ecs/entity"
	"github.com/milk9111/skyclimber/ecs/render"
	"github.com/milk9111/skyclimber/ecs/system"
	"github.com/milk9111/skyclimber/prefabs"
)

type Options struct {
	ConfigPath string
	Seed       uint64
	Debug      bool
}

type Game struct {
	frames int

	spec   *prefabs.GameSpec
	opts   Options
	logger *log.Logger
	rng    common.Random
	atlas  *render.Atlas
	world  *ecs.World

	input     *system.InputSystem
	lifecycle *system.LifecycleSystem
	gameplay  *ecs.Scheduler
	renderer  *ecs.Scheduler

	watcher *prefabs.Watcher
	// pending is a reloaded spec waiting for the next restart.
	pending *prefabs.GameSpec

	paused    bool
	restart   bool
	quit      bool
	pauseUI   *ebitenui.UI
	clipboard *Clipboard
}

// NewGame loads the atlas and builds the first session.
func NewGame(spec *prefabs.GameSpec, opts Options, logger *log.Logger) (*Game, error) {
	atlas, err := render.LoadAtlas(spec)
	if err != nil {
		return nil, err
	}
	g, err := newGame(spec, atlas, opts, logger)
	if err != nil {
		return nil, err
	}
	if opts.Debug {
		g.watch()
	}
	return g, nil
}

func newGame(spec *prefabs.GameSpec, atlas *render.Atlas, opts Options, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		opts:      opts,
		logger:    logger,
		rng:       common.NewRandom(opts.Seed),
		atlas:     atlas,
		world:     ecs.NewWorld(),
		input:     system.NewInputSystem(),
		clipboard: &Clipboard{},
	}
	if err := g.applySpec(spec); err != nil {
		return nil, err
	}
	if _, err := entity.BuildSession(g.world, spec, atlas, g.rng, entity.NewCarry(spec)); err != nil {
		return nil, fmt.Errorf("build session: %w", err)
	}
	return g, nil
}

// applySpec rebuilds every system around spec.
func (g *Game) applySpec(spec *prefabs.GameSpec) error {
	rules, err := system.LoadDifficultyRules(spec)
	if err != nil {
		return err
	}
	g.spec = spec
	g.lifecycle = system.NewLifecycleSystem(spec, g.atlas, g.rng)
	g.gameplay = ecs.NewScheduler(
		system.NewPlatformSpawnSystem(spec, g.atlas, g.rng, rules),
		system.NewPlayerControllerSystem(spec),
		system.NewPickupCollectSystem(),
		system.NewPlayerPhysicsSystem(spec),
		system.NewCameraSystem(),
		system.NewAnimationSystem(),
		system.NewAsteroidSystem(spec),
		system.NewAsteroidSpawnSystem(spec, g.atlas, g.rng, rules),
		system.NewBackgroundSystem(spec),
	)
	g.renderer = ecs.NewScheduler(system.NewRenderSystem(spec))
	return nil
}

func (g *Game) applyPending() {
	if g.pending == nil {
		return
	}
	spec := g.pending
	g.pending = nil
	if err := g.applySpec(spec); err != nil {
		g.logger.Warn("reloaded spec rejected, keeping current one", "err", err)
		return
	}
	g.logger.Info("applied reloaded spec")
}

func (g *Game) Update() error {
	g.frames++
	g.pollReload()
	g.input.Update(g.world)
	return g.tick()
}

func (g *Game) tick() error {
	defer g.drainEvents()

	if g.quit {
		return ebiten.Termination
	}
	if g.pausePressed() {
		g.paused = !g.paused
		if !g.paused {
			g.resetFlight()
		}
	}
	if g.paused {
		g.pauseMenu().Update()
		return nil
	}

	if g.restart {
		g.restart = false
		g.applyPending()
		return g.lifecycle.Restart(g.world)
	}
	if g.pending != nil && system.Dead(g.world) {
		g.applyPending()
	}

	simulate, err := g.lifecycle.Step(g.world)
	if err != nil {
		return err
	}
	if simulate {
		g.gameplay.Update(g.world)
	}
	return nil
}

func (g *Game) pausePressed() bool {
	player, ok := ecs.First(g.world, component.PlayerTagComponent.Kind())
	if !ok {
		return false
	}
	in, ok := ecs.Get(g.world, player, component.InputComponent.Kind())
	return ok && in.PausePressed
}

// resetFlight drops the jump impulse built up before a pause. The key
// release that would have cleared it is never seen while paused.
func (g *Game) resetFlight() {
	player, ok := ecs.First(g.world, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	if p, ok := ecs.Get(g.world, player, component.PlayerComponent.Kind()); ok {
		p.FlyCount = 0
	}
}

func (g *Game) pauseMenu() *ebitenui.UI {
	if g.pauseUI == nil {
		g.pauseUI = NewPauseUI(g)
	}
	return g.pauseUI
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)

	if g.opts.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  TPS: %.2f  entities: %d", ebiten.ActualFPS(), ebiten.ActualTPS(), len(ecs.Entities(g.world))))
	}
	if g.paused {
		g.pauseMenu().Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Window.Width, g.spec.Window.Height
}

// Close stops the prefab watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) copyScore() {
	score, best := system.Score(g.world)
	if err := g.clipboard.Copy(scoreLine(score, best)); err != nil {
		g.logger.Warn("could not copy score", "err", err)
		return
	}
	g.logger.Info("score copied to clipboard", "score", score, "best", best)
}

func scoreLine(score, best int) string {
	return fmt.Sprintf("I climbed %d platforms in skyclimber (best %d)", score, best)
}

func (g *Game) watch() {
	dirs := []string{prefabs.Dir(), filepath.Join(prefabs.Dir(), "scripts")}
	if g.opts.ConfigPath != "" {
		dirs = append(dirs, filepath.Dir(g.opts.ConfigPath))
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		g.logger.Warn("hot reload disabled", "dirs", dirs, "err", err)
		return
	}
	g.watcher = w
	g.logger.Debug("watching prefabs", "dirs", dirs)
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		if err != nil {
			g.logger.Warn("prefab watcher", "err", err)
		}
	default:
	}

	changed := ""
	for {
		name, ok := g.watcher.Poll()
		if !ok {
			break
		}
		changed = name
	}
	if changed == "" {
		return
	}

	spec, err := prefabs.LoadGameSpec(g.opts.ConfigPath)
	if err != nil {
		g.logger.Warn("reload failed, keeping current spec", "file", changed, "err", err)
		return
	}
	g.pending = spec
	g.logger.Info("spec reloaded, applies on restart", "file", changed)
}

func (g *Game) drainEvents() {
	for _, ev := range g.world.Events().Drain() {
		msg := strings.ReplaceAll(string(ev.Kind), "_", " ")
		kv := eventKeyvals(ev)
		switch ev.Kind {
		case ecs.EventPlayerDied, ecs.EventSessionStarted:
			g.logger.Info(msg, kv...)
		default:
			g.logger.Debug(msg, kv...)
		}
	}
}

// eventKeyvals flattens event data into sorted key/value pairs.
func eventKeyvals(ev ecs.Event) []any {
	keys := make([]string, 0, len(ev.Data))
	for k := range ev.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kv := make([]any, 0, 2+2*len(keys))
	kv = append(kv, "entity", ev.Entity.String())
	for _, k := range keys {
		kv = append(kv, k, ev.Data[k])
	}
	return kv
}
