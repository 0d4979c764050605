package entity

import (
	"fmt"

	"github.com/milk9111/catburglar/ecs"
	"github.com/milk9111/catburglar/ecs/component"
)

// NewPlayerAt builds the player from prefab with its center at x and its feet on ground.
func NewPlayerAt(w *ecs.World, prefab string, tables TableSource, x, ground float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefab, tables)
	if err != nil {
		return 0, err
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player: %q has no transform", prefab)
	}
	t.X = x
	t.SetBottom(ground)
	if !ecs.Has(w, e, component.PlayerComponent.Kind()) {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player: %q has no player component", prefab)
	}
	return e, nil
}
