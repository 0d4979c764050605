package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/milk9111/catburglar/assets"
	anim "github.com/milk9111/catburglar/component"
	"github.com/milk9111/catburglar/ecs"
	"github.com/milk9111/catburglar/ecs/component"
	"github.com/milk9111/catburglar/input"
	"github.com/milk9111/catburglar/prefabs"
)

func newTestSession(t *testing.T, src input.Source, tweak func(*prefabs.WorldSpec)) *Session {
	t.Helper()
	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		t.Fatalf("LoadWorldSpec: %v", err)
	}
	if tweak != nil {
		tweak(spec)
	}
	lib, err := assets.LoadLibrary(assets.FS(), assets.DefaultTables)
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	s, err := NewSession(spec, lib, src, 42, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestSessionStartsGrounded(t *testing.T) {
	s := newTestSession(t, input.Static{}, nil)
	tr, ok := ecs.Get(s.World, s.Player, component.TransformComponent.Kind())
	if !ok {
		t.Fatal("player has no transform")
	}
	if tr.Bottom() != s.spec.Physics.GroundLevel {
		t.Fatalf("player bottom = %v, want %v", tr.Bottom(), s.spec.Physics.GroundLevel)
	}
	if len(s.World.Query(component.FloorTagComponent.Kind())) == 0 {
		t.Fatal("expected floor tiles")
	}
	if s.PlayerMoveState() != anim.Running {
		t.Fatalf("move state = %v, want running", s.PlayerMoveState())
	}
}

func TestSessionEscapes(t *testing.T) {
	s := newTestSession(t, input.Static{}, func(spec *prefabs.WorldSpec) {
		spec.RunSecs = 1
		spec.Spawner.GracePeriod = 10
	})
	ticks := 0
	for s.Tick() == Playing {
		ticks++
		if ticks > 120 {
			t.Fatal("run did not end")
		}
	}
	if s.State != Won {
		t.Fatalf("state = %v, want escaped", s.State)
	}
	if s.Spawned() != 0 {
		t.Fatalf("spawned %d enemies during the grace period", s.Spawned())
	}
	before := s.World.Ticks()
	s.Tick()
	if s.World.Ticks() != before {
		t.Fatal("a finished run must not advance the world")
	}
}

func TestSessionIdlePlayerIsCaught(t *testing.T) {
	s := newTestSession(t, input.Static{}, func(spec *prefabs.WorldSpec) {
		spec.Spawner.GracePeriod = 0.5
	})
	for i := 0; i < 60*120 && s.Tick() == Playing; i++ {
	}
	if s.State != Lost {
		t.Fatalf("state = %v, want caught", s.State)
	}
	if s.Spawned() == 0 {
		t.Fatal("expected at least one enemy")
	}
	if s.Elapsed() <= 0 {
		t.Fatal("expected elapsed time to be recorded")
	}
}

func TestSessionJumpLeavesGround(t *testing.T) {
	s := newTestSession(t, input.Static{input.Jump: true}, nil)
	s.Tick()
	if s.PlayerMoveState() != anim.Jumping {
		t.Fatalf("move state = %v, want jumping", s.PlayerMoveState())
	}
}

func TestSessionRejectsBadEnemyPrefab(t *testing.T) {
	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		t.Fatalf("LoadWorldSpec: %v", err)
	}
	lib, err := assets.LoadLibrary(assets.FS(), assets.DefaultTables)
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	cases := []struct {
		name  string
		tweak func(*prefabs.WorldSpec)
	}{
		{"missing_cop", func(s *prefabs.WorldSpec) { s.Cop.Prefab = "no_such.yaml" }},
		{"missing_drone", func(s *prefabs.WorldSpec) { s.Drone.Prefab = "no_such.yaml" }},
		{"cop_builds_drone", func(s *prefabs.WorldSpec) { s.Cop.Prefab = s.Drone.Prefab }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bad := *spec
			c.tweak(&bad)
			if _, err := NewSession(&bad, lib, input.Static{}, 1, log.New(io.Discard)); err == nil {
				t.Fatal("expected NewSession to reject the enemy prefab")
			}
		})
	}
}

func TestSessionSystemOrder(t *testing.T) {
	s := newTestSession(t, input.Static{}, nil)
	systems := s.World.Systems()
	index := func(target ecs.System) int {
		for i, sys := range systems {
			if sys == target {
				return i
			}
		}
		t.Fatalf("system %T not registered", target)
		return -1
	}
	clock, spawner, physics := index(s.clock), index(s.spawner), index(s.physics)
	if !(clock < spawner && spawner < physics) {
		t.Fatalf("order clock=%d spawner=%d physics=%d, want clock < spawner < physics", clock, spawner, physics)
	}
}

func TestSessionRetune(t *testing.T) {
	s := newTestSession(t, input.Static{}, nil)
	spec := *s.spec
	spec.Physics.Gravity = 1
	spec.Spawner.MinGap = 0.25
	spec.Spawner.MaxGap = 0.5
	s.Retune(&spec)
	if s.physics.Config.Gravity != 1 {
		t.Fatalf("gravity = %v, want 1", s.physics.Config.Gravity)
	}
	if s.spawner.Config.MinGap != 0.25 || s.spawner.Config.MaxGap != 0.5 {
		t.Fatalf("spawner gaps = %v..%v", s.spawner.Config.MinGap, s.spawner.Config.MaxGap)
	}
}
