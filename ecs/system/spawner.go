package system

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/milk9111/catburglar/common"
	anim "github.com/milk9111/catburglar/component"
	"github.com/milk9111/catburglar/ecs"
	"github.com/milk9111/catburglar/ecs/component"
)

// SpawnerConfig sets the pacing and the play area enemies enter from.
type SpawnerConfig struct {
	// GracePeriod is the delay before the first enemy, in seconds.
	GracePeriod float64
	MinGap      float64
	MaxGap      float64
	TileSize    float64
	WidthTiles  float64
	HeightTiles float64
}

func DefaultSpawnerConfig() SpawnerConfig {
	return SpawnerConfig{
		GracePeriod: 5,
		MinGap:      1,
		MaxGap:      2,
		TileSize:    16,
		WidthTiles:  50,
		HeightTiles: 14,
	}
}

// EnemyFactory builds one enemy of kind centered at x, y.
type EnemyFactory func(w *ecs.World, kind component.EnemyKind, x, y float64) (ecs.Entity, error)

// SpawnerSystem emits one enemy each time its countdown drains. The gap to the next one
// narrows from [MinGap, MaxGap] toward MinGap as the run clock completes.
type SpawnerSystem struct {
	Config SpawnerConfig

	factory   EnemyFactory
	rng       *rand.Rand
	clock     *anim.Timer
	countdown *anim.Timer
	spawned   int
	logger    *log.Logger
}

// NewSpawnerSystem seeds the countdown with the grace period. clock may be nil, which
// pins progress at zero.
func NewSpawnerSystem(cfg SpawnerConfig, factory EnemyFactory, rng *rand.Rand, clock *anim.Timer, logger *log.Logger) *SpawnerSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &SpawnerSystem{
		Config:    cfg,
		factory:   factory,
		rng:       rng,
		clock:     clock,
		countdown: anim.NewCountdown(cfg.GracePeriod),
		logger:    loggerOrDefault(logger),
	}
}

// Remaining is the time until the next spawn.
func (s *SpawnerSystem) Remaining() float64 {
	return s.countdown.Remaining()
}

// Spawned counts the enemies emitted so far.
func (s *SpawnerSystem) Spawned() int {
	return s.spawned
}

// Progress is the run clock completion, or 0 without a bounded clock.
func (s *SpawnerSystem) Progress() float64 {
	c, ok := s.clock.Completion()
	if !ok {
		return 0
	}
	return c
}

// NextGap draws the delay before the next spawn for the given run progress.
func (s *SpawnerSystem) NextGap(progress float64) float64 {
	hi := common.Lerp(s.Config.MaxGap, s.Config.MinGap, common.Clamp01(progress))
	return common.UniformRange(s.Config.MinGap, hi, s.rng.Float64())
}

func (s *SpawnerSystem) Update(w *ecs.World, dt float64) {
	s.countdown.Update(dt)
	if s.countdown.Remaining() > 0 {
		return
	}
	s.spawn(w)
	s.countdown.SetRemaining(s.NextGap(s.Progress()))
}

func (s *SpawnerSystem) spawn(w *ecs.World) {
	cfg := s.Config
	x := (cfg.WidthTiles + 1) * cfg.TileSize

	var kind component.EnemyKind
	var y float64
	if s.rng.Float64() > 0.5 {
		kind = component.Cop
		y = cfg.TileSize * 2
	} else {
		kind = component.Drone
		y = common.UniformRange(cfg.TileSize*1.5, cfg.TileSize*cfg.HeightTiles, s.rng.Float64())
	}

	if s.factory == nil {
		return
	}
	e, err := s.factory(w, kind, x, y)
	if err != nil {
		panic("spawner: create " + kind.String() + ": " + err.Error())
	}
	s.spawned++
	s.logger.Debug("enemy spawned", "entity", e, "kind", kind, "x", x, "y", y, "progress", s.Progress())
	w.Events().Push(ecs.Event{
		Kind:   ecs.EventEnemySpawned,
		Entity: e,
		Data:   ecs.EnemySpawn{Kind: kind, X: x, Y: y},
	})
}
