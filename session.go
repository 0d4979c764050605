package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	anim "github.com/milk9111/catburglar/component"
	"github.com/milk9111/catburglar/ecs"
	"github.com/milk9111/catburglar/ecs/component"
	"github.com/milk9111/catburglar/ecs/entity"
	"github.com/milk9111/catburglar/ecs/system"
	"github.com/milk9111/catburglar/input"
	"github.com/milk9111/catburglar/prefabs"
)

// RunState is where a run stands.
type RunState uint8

const (
	Playing RunState = iota
	Won
	Lost
)

func (s RunState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "escaped"
	case Lost:
		return "caught"
	default:
		return "unknown"
	}
}

// Session is one run: the world, its systems and the outcome.
type Session struct {
	World  *ecs.World
	Player ecs.Entity
	State  RunState
	Seed   int64

	spec    *prefabs.WorldSpec
	physics *system.RunnerPhysicsSystem
	spawner *system.SpawnerSystem
	clock   *system.RunClockSystem
	logger  *log.Logger
}

// NewSession builds the floor and the player and registers the systems in tick order.
func NewSession(spec *prefabs.WorldSpec, tables entity.TableSource, src input.Source, seed int64, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.Default()
	}
	w := ecs.NewWorld()

	if _, err := entity.NewFloor(w, spec.Floor.Prefab, tables, spec.PlayWidth(), spec.Physics.GroundLevel); err != nil {
		return nil, fmt.Errorf("session: floor: %w", err)
	}
	player, err := entity.NewPlayerAt(w, spec.Player.Prefab, tables, spec.Player.X, spec.Physics.GroundLevel)
	if err != nil {
		return nil, fmt.Errorf("session: player: %w", err)
	}

	cop, err := entity.LoadEnemyPrefab(spec.Cop.Prefab, tables, component.Cop)
	if err != nil {
		return nil, fmt.Errorf("session: cop: %w", err)
	}
	drone, err := entity.LoadEnemyPrefab(spec.Drone.Prefab, tables, component.Drone)
	if err != nil {
		return nil, fmt.Errorf("session: drone: %w", err)
	}
	factory := func(w *ecs.World, kind component.EnemyKind, x, y float64) (ecs.Entity, error) {
		if kind == component.Drone {
			return drone.Spawn(w, x, y)
		}
		return cop.Spawn(w, x, y)
	}

	runClock := anim.NewStopwatch(spec.RunSecs)
	s := &Session{
		World:   w,
		Player:  player,
		Seed:    seed,
		spec:    spec,
		physics: system.NewRunnerPhysicsSystem(physicsConfig(spec), logger),
		spawner: system.NewSpawnerSystem(spawnerConfig(spec), factory, rand.New(rand.NewSource(seed)), runClock, logger),
		clock:   system.NewRunClockSystem(runClock, logger),
		logger:  logger,
	}

	// The clock runs first so the spawner ramps on this tick's progress. Spawns are staged
	// until Commit, so a new enemy first moves on the next tick.
	w.AddSystem(system.NewInputSystem(src))
	w.AddSystem(s.clock)
	w.AddSystem(s.spawner)
	w.AddSystem(system.NewEnemySystem(logger))
	w.AddSystem(system.NewPlayerControllerSystem())
	w.AddSystem(s.physics)
	w.AddSystem(system.NewCollisionSystem())
	w.AddSystem(system.NewAnimationSystem())

	logger.Info("run started", "seed", seed, "run_seconds", spec.RunSecs)
	return s, nil
}

func physicsConfig(spec *prefabs.WorldSpec) system.RunnerPhysicsConfig {
	return system.RunnerPhysicsConfig{
		GroundLevel:         spec.Physics.GroundLevel,
		Gravity:             spec.Physics.Gravity,
		InitialJumpVelocity: spec.Physics.InitialJumpVelocity,
		MinX:                0,
		MaxX:                spec.PlayWidth(),
	}
}

func spawnerConfig(spec *prefabs.WorldSpec) system.SpawnerConfig {
	return system.SpawnerConfig{
		GracePeriod: spec.Spawner.GracePeriod,
		MinGap:      spec.Spawner.MinGap,
		MaxGap:      spec.Spawner.MaxGap,
		TileSize:    spec.PlayArea.TileSize,
		WidthTiles:  spec.PlayArea.WidthTiles,
		HeightTiles: spec.PlayArea.HeightTiles,
	}
}

// Tick advances one fixed step while the run is in progress and returns the state after it.
func (s *Session) Tick() RunState {
	if s.State != Playing {
		return s.State
	}
	s.World.Update(s.spec.TickSeconds())

	for _, evt := range s.World.Events().Drain() {
		switch evt.Kind {
		case ecs.EventPlayerCaught:
			caught, _ := evt.Data.(ecs.Caught)
			s.logger.Info("caught", "by", caught.By, "kind", caught.Kind, "elapsed", s.Elapsed())
			s.State = Lost
		case ecs.EventRunEscaped:
			if s.State == Playing {
				s.State = Won
			}
		case ecs.EventMoveStateChanged:
			change, _ := evt.Data.(ecs.MoveStateChange)
			s.logger.Debug("move state", "entity", evt.Entity, "from", change.From, "to", change.To)
		case ecs.EventEnemyDespawned:
			s.logger.Debug("enemy despawned", "entity", evt.Entity, "kind", evt.Data)
		}
	}
	return s.State
}

// Retune applies new world tuning to the running systems. The play area and run length
// only take effect on the next run.
func (s *Session) Retune(spec *prefabs.WorldSpec) {
	s.physics.Config = physicsConfig(spec)
	s.spawner.Config = spawnerConfig(spec)
	s.logger.Info("world tuning reloaded",
		"gravity", spec.Physics.Gravity,
		"jump", spec.Physics.InitialJumpVelocity,
		"min_gap", spec.Spawner.MinGap,
		"max_gap", spec.Spawner.MaxGap)
}

// Elapsed is the time survived so far.
func (s *Session) Elapsed() time.Duration {
	return time.Duration(s.clock.Clock().Elapsed() * float64(time.Second))
}

// Progress is the run completion in [0, 1].
func (s *Session) Progress() float64 {
	return s.spawner.Progress()
}

func (s *Session) Spawned() int {
	return s.spawner.Spawned()
}

// PlayerMoveState reports the player's movement cycle state.
func (s *Session) PlayerMoveState() anim.MoveState {
	p, ok := ecs.Get(s.World, s.Player, component.PlayerComponent.Kind())
	if !ok {
		return anim.Running
	}
	return p.MoveState
}
