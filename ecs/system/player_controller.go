package system

import (
	"math"

	anim "github.com/milk9111/catburglar/component"
	"github.com/milk9111/catburglar/ecs"
	"github.com/milk9111/catburglar/ecs/component"
)

// WalkDeadZone is the |vx| above which the player shows a walk animation.
const WalkDeadZone = 0.1

// PlayerControllerSystem turns held left/right into horizontal velocity and picks the
// walk or still animation. Vertical motion belongs to RunnerPhysicsSystem.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World, _ float64) {
	ecs.ForEach4(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.MovementComponent.Kind(),
		component.AnimationComponent.Kind(),
		func(_ ecs.Entity, player *component.Player, in *component.Input, mv *anim.Movement, an *anim.NamedAnimation) {
			steer(player, in, mv, an)
		})
}

func steer(p *component.Player, in *component.Input, mv *anim.Movement, an *anim.NamedAnimation) {
	mv.VX *= p.HorizontalDamping
	if in.Left {
		mv.VX -= p.MoveSpeed
	}
	if in.Right {
		mv.VX += p.MoveSpeed
	}

	if math.Abs(mv.VX) > WalkDeadZone {
		if mv.VX < 0 {
			p.Facing = anim.FacingLeft
		} else {
			p.Facing = anim.FacingRight
		}
		setAnimation("player controller", an, p.Facing.WalkState())
		return
	}
	if s := an.State(); s == anim.WalkLeft || s == anim.WalkRight {
		setAnimation("player controller", an, p.Facing.StillState())
	}
}
