package system

import (
	"github.com/charmbracelet/log"
	anim "github.com/milk9111/catburglar/component"
	"github.com/milk9111/catburglar/ecs"
	"github.com/milk9111/catburglar/ecs/component"
)

// RunnerPhysicsConfig holds the vertical tuning. Units are px and px/tick, y up.
type RunnerPhysicsConfig struct {
	GroundLevel         float64
	Gravity             float64
	InitialJumpVelocity float64
	// MinX and MaxX keep the player on screen. MaxX <= MinX disables the bound.
	MinX float64
	MaxX float64
}

func DefaultRunnerPhysicsConfig() RunnerPhysicsConfig {
	return RunnerPhysicsConfig{
		GroundLevel:         16,
		Gravity:             0.3,
		InitialJumpVelocity: 5,
	}
}

// RunnerPhysicsSystem drives the player's Running/Jumping/Falling cycle and runs the
// actor step for players. It takes one Euler step per tick, so the feel is tied to the
// fixed tick rate.
type RunnerPhysicsSystem struct {
	Config RunnerPhysicsConfig
	logger *log.Logger
}

func NewRunnerPhysicsSystem(cfg RunnerPhysicsConfig, logger *log.Logger) *RunnerPhysicsSystem {
	return &RunnerPhysicsSystem{Config: cfg, logger: loggerOrDefault(logger)}
}

func (s *RunnerPhysicsSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.TransformComponent.Kind(),
		component.MovementComponent.Kind(),
		func(e ecs.Entity, player *component.Player, tr *component.Transform, mv *anim.Movement) {
			an, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
			jump := false
			if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
				jump = in.Jump
			}

			s.step(w, e, player, tr, mv, jump)
			updateActor(tr, mv, an, dt)
			s.bound(tr, mv)
		})
}

func (s *RunnerPhysicsSystem) step(w *ecs.World, e ecs.Entity, p *component.Player, tr *component.Transform, mv *anim.Movement, jump bool) {
	cfg := s.Config
	cancelled := false

	switch {
	case p.MoveState == anim.Running && jump:
		mv.VY = cfg.InitialJumpVelocity
		if p.JumpSpeed > 0 {
			mv.VY = p.JumpSpeed
		}
		s.transition(w, e, p, anim.Jumping)
	case p.MoveState == anim.Jumping && !jump:
		// Releasing early ends the rise; gravity picks up again next tick.
		mv.VY = 0
		cancelled = true
		s.transition(w, e, p, anim.Falling)
	}

	if !cancelled && tr.Bottom() > cfg.GroundLevel {
		mv.VY -= cfg.Gravity
		if p.MoveState == anim.Jumping && mv.VY < 0 {
			s.transition(w, e, p, anim.Falling)
		}
	}

	if tr.Bottom() < cfg.GroundLevel {
		tr.SetBottom(cfg.GroundLevel)
		mv.VY = 0
		s.transition(w, e, p, anim.Running)
	}
}

func (s *RunnerPhysicsSystem) bound(tr *component.Transform, mv *anim.Movement) {
	cfg := s.Config
	if cfg.MaxX <= cfg.MinX {
		return
	}
	if tr.Left() < cfg.MinX {
		tr.X = cfg.MinX + tr.Width/2
		mv.VX = 0
	} else if tr.Right() > cfg.MaxX {
		tr.X = cfg.MaxX - tr.Width/2
		mv.VX = 0
	}
}

func (s *RunnerPhysicsSystem) transition(w *ecs.World, e ecs.Entity, p *component.Player, to anim.MoveState) {
	from := p.MoveState
	if from == to {
		return
	}
	p.MoveState = to
	s.logger.Debug("move state", "entity", e, "from", from, "to", to)
	w.Events().Push(ecs.Event{
		Kind:   ecs.EventMoveStateChanged,
		Entity: e,
		Data:   ecs.MoveStateChange{From: from, To: to},
	})
}
