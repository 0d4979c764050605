package system

import (
	anim "github.com/milk9111/catburglar/component"
	"github.com/milk9111/catburglar/ecs"
	"github.com/milk9111/catburglar/ecs/component"
)

// AnimationSystem advances animations on entities that don't move, such as floor tiles.
// Actors advance theirs inside the actor step.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, an *anim.NamedAnimation) {
		if ecs.Has(w, e, component.MovementComponent.Kind()) {
			return
		}
		an.Advance(dt)
	})
}
