package system

import (
	"image"
	"testing"

	anim "github.com/milk9111/catburglar/component"
	"github.com/milk9111/catburglar/ecs"
	"github.com/milk9111/catburglar/ecs/component"
)

const tick = 1.0 / 60

func actorTable(t *testing.T) anim.AnimationTable {
	t.Helper()
	seq := func(n int) []image.Image {
		out := make([]image.Image, n)
		for i := range out {
			out[i] = image.NewRGBA(image.Rect(0, 0, 1, 1))
		}
		return out
	}
	table, err := anim.NewAnimationTable(map[anim.AnimState][]image.Image{
		anim.StillRight: seq(1),
		anim.StillLeft:  seq(1),
		anim.WalkRight:  seq(4),
		anim.WalkLeft:   seq(4),
	}, anim.ActorStates, "test")
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add: %v", err)
	}
}

// newTestPlayer places a 16x32 player with its feet at bottom.
func newTestPlayer(t *testing.T, w *ecs.World, bottom float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	tr := &component.Transform{X: 100, Width: 16, Height: 32}
	tr.SetBottom(bottom)
	an, err := anim.NewNamedAnimation(actorTable(t), anim.StillRight, 0)
	if err != nil {
		t.Fatal(err)
	}
	mustAdd(t, w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveState:         anim.Running,
		MoveSpeed:         1,
		HorizontalDamping: 0.9,
	})
	mustAdd(t, w, e, component.TransformComponent.Kind(), tr)
	mustAdd(t, w, e, component.MovementComponent.Kind(), &anim.Movement{})
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, e, component.AnimationComponent.Kind(), an)
	return e
}

func newTestEnemy(t *testing.T, w *ecs.World, kind component.EnemyKind, x, y, vx float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	an, err := anim.NewNamedAnimation(actorTable(t), anim.WalkLeft, 0)
	if err != nil {
		t.Fatal(err)
	}
	mustAdd(t, w, e, component.EnemyComponent.Kind(), &component.Enemy{Kind: kind, BaseVelocityX: vx})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Width: 16, Height: 32})
	mustAdd(t, w, e, component.MovementComponent.Kind(), &anim.Movement{})
	mustAdd(t, w, e, component.AnimationComponent.Kind(), an)
	return e
}

func eventsOf(w *ecs.World, kind ecs.EventKind) []ecs.Event {
	var out []ecs.Event
	for _, evt := range w.Events().Items() {
		if evt.Kind == kind {
			out = append(out, evt)
		}
	}
	return out
}
