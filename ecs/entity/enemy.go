package entity

import (
	"fmt"

	"github.com/milk9111/catburglar/ecs"
	"github.com/milk9111/catburglar/ecs/component"
	"github.com/milk9111/catburglar/prefabs"
)

// EnemyPrefab is an enemy spec loaded and checked once so spawning never touches disk.
type EnemyPrefab struct {
	Path string
	Kind component.EnemyKind

	spec   prefabs.EntityBuildSpec
	tables TableSource
}

// LoadEnemyPrefab loads prefab and test-builds it in a scratch world, so a bad file, an
// unknown asset table or a kind mismatch is reported here instead of at spawn time.
func LoadEnemyPrefab(prefab string, tables TableSource, kind component.EnemyKind) (*EnemyPrefab, error) {
	spec, err := prefabs.LoadEntityBuildSpec(prefab)
	if err != nil {
		return nil, fmt.Errorf("enemy: load %q: %w", prefab, err)
	}
	p := &EnemyPrefab{Path: prefab, Kind: kind, spec: spec, tables: tables}
	if _, err := p.Spawn(ecs.NewWorld(), 0, 0); err != nil {
		return nil, err
	}
	return p, nil
}

// Spawn builds one enemy centered at x, y.
func (p *EnemyPrefab) Spawn(w *ecs.World, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntityFromSpec(w, p.Path, p.spec, p.tables)
	if err != nil {
		return 0, err
	}
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok || enemy.Kind != p.Kind {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("enemy: %q does not build a %s", p.Path, p.Kind)
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("enemy: override transform: %w", err)
	}
	return e, nil
}

// NewEnemyAt builds an enemy from prefab centered at x, y and checks it is of kind.
func NewEnemyAt(w *ecs.World, prefab string, tables TableSource, kind component.EnemyKind, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadEntityBuildSpec(prefab)
	if err != nil {
		return 0, fmt.Errorf("enemy: load %q: %w", prefab, err)
	}
	p := &EnemyPrefab{Path: prefab, Kind: kind, spec: spec, tables: tables}
	return p.Spawn(w, x, y)
}
