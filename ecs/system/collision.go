package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/catburglar/ecs"
	"github.com/milk9111/catburglar/ecs/component"
)

// CollisionSystem raises EventPlayerCaught when a player's hit box overlaps an enemy's.
// Each enemy catches a given player at most once.
type CollisionSystem struct {
	caught map[[2]ecs.Entity]struct{}
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{caught: make(map[[2]ecs.Entity]struct{})}
}

func (s *CollisionSystem) Update(w *ecs.World, _ float64) {
	enemies := w.Query(component.EnemyComponent.Kind(), component.TransformComponent.Kind())
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(p ecs.Entity, _ *component.Player, _ *component.Transform) {
		pb := hitBox(w, p)
		for _, e := range enemies {
			key := [2]ecs.Entity{p, e}
			if _, done := s.caught[key]; done {
				continue
			}
			if !pb.Intersects(hitBox(w, e)) {
				continue
			}
			s.caught[key] = struct{}{}
			enemy := ecs.MustGet(w, e, component.EnemyComponent.Kind())
			w.Events().Push(ecs.Event{
				Kind:   ecs.EventPlayerCaught,
				Entity: p,
				Data:   ecs.Caught{By: e, Kind: enemy.Kind},
			})
		}
	})
}

func hitBox(w *ecs.World, e ecs.Entity) cp.BB {
	tr := ecs.MustGet(w, e, component.TransformComponent.Kind())
	col, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		col = &component.Collider{}
	}
	return col.BB(tr)
}
