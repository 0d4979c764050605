package system

import (
	"github.com/charmbracelet/log"
	anim "github.com/milk9111/catburglar/component"
	"github.com/milk9111/catburglar/ecs/component"
)

// updateActor is the shared per-tick step for anything that moves: one Euler step in
// px/tick, then the animation advances by dt, then the moving flag is recomputed.
func updateActor(tr *component.Transform, mv *anim.Movement, an *anim.NamedAnimation, dt float64) {
	tr.X += mv.VX
	tr.Y += mv.VY
	if an != nil {
		an.Advance(dt)
	}
	mv.UpdateMoving()
}

// setAnimation switches an animation and panics on a state the table lacks. Tables are
// validated at load time, so a miss here is a programming error.
func setAnimation(who string, an *anim.NamedAnimation, state anim.AnimState) {
	if an == nil {
		return
	}
	if err := an.SetState(state); err != nil {
		panic(who + ": set animation: " + err.Error())
	}
}

func loggerOrDefault(l *log.Logger) *log.Logger {
	if l == nil {
		return log.Default()
	}
	return l
}
