package entity

import (
	"fmt"

	"github.com/milk9111/catburglar/ecs"
	"github.com/milk9111/catburglar/ecs/component"
)

// NewFloor lays floor tiles from x=0 across width with their tops at ground.
func NewFloor(w *ecs.World, prefab string, tables TableSource, width, ground float64) ([]ecs.Entity, error) {
	var tiles []ecs.Entity
	for x := 0.0; x < width; {
		e, err := BuildEntity(w, prefab, tables)
		if err != nil {
			return tiles, err
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok || t.Width <= 0 {
			ecs.DestroyEntity(w, e)
			return tiles, fmt.Errorf("floor: %q needs a sized transform", prefab)
		}
		t.X = x + t.Width/2
		t.Y = ground - t.Height/2
		tiles = append(tiles, e)
		x += t.Width
	}
	return tiles, nil
}
