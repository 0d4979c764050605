package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/catburglar/ecs/entity"
	"github.com/milk9111/catburglar/ecs/system"
	"github.com/milk9111/catburglar/input"
	"github.com/milk9111/catburglar/prefabs"
	"github.com/milk9111/catburglar/settings"
	"github.com/milk9111/catburglar/storage"
)

const (
	minZoom = 1.0
	maxZoom = 4.0
)

type Game struct {
	frames int

	spec     *prefabs.WorldSpec
	tables   entity.TableSource
	keys     *input.KeyHandler
	session  *Session
	render   *system.RenderSystem
	settings *settings.Manager
	store    *storage.Store
	watcher  *prefabs.Watcher
	logger   *log.Logger

	seed     int64
	nextSeed func() int64
	debug    bool
}

type GameOptions struct {
	Spec     *prefabs.WorldSpec
	Tables   entity.TableSource
	Settings *settings.Manager
	Store    *storage.Store
	Watcher  *prefabs.Watcher
	Logger   *log.Logger
	// Seed fixes the first run's RNG; zero draws one from the clock.
	Seed  int64
	Debug bool
}

func NewGame(opts GameOptions) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		spec:     opts.Spec,
		tables:   opts.Tables,
		keys:     input.NewKeyHandler(DefaultBindings()),
		render:   system.NewRenderSystem(opts.Spec.PlayHeight()),
		settings: opts.Settings,
		store:    opts.Store,
		watcher:  opts.Watcher,
		logger:   logger,
		debug:    opts.Debug,
		nextSeed: func() int64 { return time.Now().UnixNano() },
	}
	g.render.Zoom = 2
	seed := opts.Seed
	if seed == 0 {
		seed = g.nextSeed()
	}
	if err := g.restart(seed); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) restart(seed int64) error {
	s, err := NewSession(g.spec, g.tables, g.keys, seed, g.logger)
	if err != nil {
		return err
	}
	g.session = s
	g.seed = seed
	return nil
}

func (g *Game) Update() error {
	g.frames++
	pollKeys(g.keys)
	g.reload()

	if g.keys.JustPressed(input.Escape) {
		return ebiten.Termination
	}
	if g.keys.JustPressed(input.Fullscreen) {
		g.toggleFullscreen()
	}
	if g.keys.JustPressed(input.ZoomIn) {
		g.render.Zoom = min(g.render.Zoom+0.5, maxZoom)
	}
	if g.keys.JustPressed(input.ZoomOut) {
		g.render.Zoom = max(g.render.Zoom-0.5, minZoom)
	}

	if g.session.State != Playing {
		if g.keys.JustPressed(input.Enter) {
			if err := g.restart(g.nextSeed()); err != nil {
				return err
			}
		}
		return nil
	}

	if state := g.session.Tick(); state != Playing {
		g.record()
	}
	return nil
}

// reload picks up world.yaml edits from the watcher.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Pending() {
		if filepath.Base(name) != "world.yaml" {
			g.logger.Debug("prefab changed", "file", name)
			continue
		}
		spec, err := prefabs.LoadWorldSpec()
		if err != nil {
			g.logger.Error("reload world spec", "error", err)
			continue
		}
		g.spec = spec
		g.session.Retune(spec)
	}
	for {
		select {
		case err, ok := <-g.watcher.Errors:
			if !ok {
				return
			}
			g.logger.Warn("prefab watcher", "error", err)
		default:
			return
		}
	}
}

func (g *Game) record() {
	s := g.session
	g.logger.Info("run over", "result", s.State, "elapsed", s.Elapsed(), "enemies", s.Spawned(), "seed", s.Seed)
	if g.store == nil {
		return
	}
	id, err := g.store.SaveRun(storage.Run{
		Duration: s.Elapsed(),
		Escaped:  s.State == Won,
		Seed:     s.Seed,
		Enemies:  s.Spawned(),
	})
	if err != nil {
		g.logger.Error("save run", "error", err)
		return
	}
	g.logger.Debug("run saved", "id", id)
}

func (g *Game) toggleFullscreen() {
	if g.settings == nil {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		return
	}
	on, err := g.settings.ToggleFullscreen()
	if err != nil {
		g.logger.Warn("save settings", "error", err)
	}
	ebiten.SetFullscreen(on)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.session.World, screen)

	s := g.session
	hud := fmt.Sprintf("Time: %s / %s    Enemies: %d", clock(s.Elapsed()), clock(time.Duration(g.spec.RunSecs*float64(time.Second))), s.Spawned())
	switch s.State {
	case Won:
		hud += "\nYou escaped! Press Enter to run again."
	case Lost:
		hud += "\nCaught! Press Enter to try again."
	}
	if g.debug {
		g.render.DrawHitboxDebug(s.World, screen, g.spec.Physics.GroundLevel)
		system.DrawPlayerStateDebug(s.World, screen)
		hud += fmt.Sprintf("\nFPS: %.2f  TPS: %.2f  State: %s  Seed: %d  Entities: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), s.PlayerMoveState(), s.Seed, len(s.World.Entities()))
	}
	ebitenutil.DebugPrint(screen, hud)
}

func clock(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.spec.PlayWidth() * g.render.Zoom, g.spec.PlayHeight() * g.render.Zoom
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
