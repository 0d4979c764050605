package entity

import (
	"fmt"

	anim "github.com/milk9111/catburglar/component"
	"github.com/milk9111/catburglar/ecs"
	"github.com/milk9111/catburglar/ecs/component"
	"github.com/milk9111/catburglar/prefabs"
)

// TableSource resolves an animation table by asset directory name.
type TableSource interface {
	Table(name string) (anim.AnimationTable, bool)
}

type buildContext struct {
	PrefabPath string
	Tables     TableSource
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag": addPlayerTag,
	"floor_tag":  addFloorTag,
	"player":     addPlayer,
	"input":      addInput,
	"enemy":      addEnemy,
	"transform":  addTransform,
	"collider":   addCollider,
	"movement":   addMovement,
	"animation":  addAnimation,
}

var componentBuildOrder = []string{
	"player_tag",
	"floor_tag",
	"player",
	"input",
	"enemy",
	"transform",
	"collider",
	"movement",
	"animation",
}

// BuildEntity creates an entity from a prefab. On any error the half-built entity is
// destroyed.
func BuildEntity(w *ecs.World, prefabPath string, tables TableSource) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntityFromSpec(w, prefabPath, spec, tables)
}

// BuildEntityFromSpec is BuildEntity for a spec that is already loaded. prefabPath only
// labels errors.
func BuildEntityFromSpec(w *ecs.World, prefabPath string, spec prefabs.EntityBuildSpec, tables TableSource) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Tables: tables}
	for _, name := range componentBuildOrder {
		raw, ok := spec.Components[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}
	return e, nil
}

// SetEntityTransform moves e's center to x, y.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("entity %v has no transform", e)
	}
	t.X = x
	t.Y = y
	return nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addFloorTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.FloorTagComponent.Kind(), &component.FloorTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addMovement(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.MovementComponent.Kind(), &anim.Movement{})
}

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PlayerComponentSpec](raw)
	if err != nil {
		return err
	}
	facing := anim.FacingRight
	if spec.Facing == "left" {
		facing = anim.FacingLeft
	}
	damping := spec.HorizontalDamping
	if damping == 0 {
		damping = 0.9
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveState:         anim.Running,
		MoveSpeed:         spec.MoveSpeed,
		JumpSpeed:         spec.JumpSpeed,
		HorizontalDamping: damping,
		Facing:            facing,
	})
}

func addEnemy(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.EnemyComponentSpec](raw)
	if err != nil {
		return err
	}
	kind := component.Cop
	if spec.Kind == "drone" {
		kind = component.Drone
	}
	return ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
		Kind:          kind,
		BaseVelocityX: spec.BaseVelocityX,
	})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      spec.X,
		Y:      spec.Y,
		Width:  spec.Width,
		Height: spec.Height,
	})
}

func addCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ColliderComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Width:   spec.Width,
		Height:  spec.Height,
		OffsetX: spec.OffsetX,
		OffsetY: spec.OffsetY,
	})
}

func addAnimation(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AnimationComponentSpec](raw)
	if err != nil {
		return err
	}
	if ctx.Tables == nil {
		return fmt.Errorf("no animation tables for %q", spec.Assets)
	}
	table, ok := ctx.Tables.Table(spec.Assets)
	if !ok {
		return fmt.Errorf("unknown animation assets %q", spec.Assets)
	}
	initial, ok := anim.ParseAnimState(spec.Initial)
	if !ok {
		return fmt.Errorf("unknown animation state %q", spec.Initial)
	}
	a, err := anim.NewNamedAnimation(table, initial, spec.FrameLength)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.AnimationComponent.Kind(), a)
}

// Tables is a map-backed TableSource.
type Tables map[string]anim.AnimationTable

func (t Tables) Table(name string) (anim.AnimationTable, bool) {
	table, ok := t[name]
	return table, ok
}
