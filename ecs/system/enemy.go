package system

import (
	"github.com/charmbracelet/log"
	anim "github.com/milk9111/catburglar/component"
	"github.com/milk9111/catburglar/ecs"
	"github.com/milk9111/catburglar/ecs/component"
)

// EnemySystem moves enemies left at their base speed and removes them once their hit box
// has fully left the screen.
type EnemySystem struct {
	logger *log.Logger
}

func NewEnemySystem(logger *log.Logger) *EnemySystem {
	return &EnemySystem{logger: loggerOrDefault(logger)}
}

func (s *EnemySystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach3(w,
		component.EnemyComponent.Kind(),
		component.TransformComponent.Kind(),
		component.MovementComponent.Kind(),
		func(e ecs.Entity, enemy *component.Enemy, tr *component.Transform, mv *anim.Movement) {
			an, _ := ecs.Get(w, e, component.AnimationComponent.Kind())

			mv.VX = enemy.BaseVelocityX
			setAnimation("enemy", an, anim.WalkLeft)
			updateActor(tr, mv, an, dt)

			right := tr.Right()
			if col, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
				right = col.Right(tr)
			}
			if right > 0 || !w.DestroyEntity(e) {
				return
			}
			s.logger.Debug("enemy despawned", "entity", e, "kind", enemy.Kind)
			w.Events().Push(ecs.Event{Kind: ecs.EventEnemyDespawned, Entity: e, Data: enemy.Kind})
		})
}
