package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedPrefabsLoad(t *testing.T) {
	DiskDir = t.TempDir()
	t.Cleanup(func() { DiskDir = "prefabs" })

	world, err := LoadWorldSpec()
	if err != nil {
		t.Fatalf("LoadWorldSpec: %v", err)
	}
	if world.TickRate != 60 || world.Physics.GroundLevel != 16 || world.Spawner.GracePeriod != 5 {
		t.Fatalf("unexpected world defaults: %+v", world)
	}
	if got := world.PlayWidth(); got != 800 {
		t.Fatalf("play width = %v, want 800", got)
	}

	for _, name := range []string{world.Player.Prefab, world.Floor.Prefab, world.Cop.Prefab, world.Drone.Prefab} {
		t.Run(name, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(name)
			if err != nil {
				t.Fatalf("load %s: %v", name, err)
			}
			if _, ok := spec.Components["transform"]; !ok {
				t.Fatalf("%s has no transform", name)
			}
		})
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	DiskDir = dir
	t.Cleanup(func() { DiskDir = "prefabs" })

	data, err := PrefabsFS.ReadFile("world.yaml")
	if err != nil {
		t.Fatal(err)
	}
	edited := strings.Replace(string(data), "gravity: 0.3", "gravity: 0.5", 1)
	if err := os.WriteFile(filepath.Join(dir, "world.yaml"), []byte(edited), 0o644); err != nil {
		t.Fatal(err)
	}

	world, err := LoadWorldSpec()
	if err != nil {
		t.Fatal(err)
	}
	if world.Physics.Gravity != 0.5 {
		t.Fatalf("gravity = %v, want disk override 0.5", world.Physics.Gravity)
	}
	if _, ok := ModTime("prefabs/world.yaml"); !ok {
		t.Fatal("expected mod time for disk prefab")
	}
}

func TestWorldSpecValidate(t *testing.T) {
	valid := func() WorldSpec {
		return WorldSpec{
			TickRate: 60,
			RunSecs:  300,
			PlayArea: PlayAreaSpec{TileSize: 16, WidthTiles: 50, HeightTiles: 14},
			Physics:  PhysicsSpec{GroundLevel: 16, Gravity: 0.3, InitialJumpVelocity: 5},
			Spawner:  SpawnerSpec{GracePeriod: 5, MinGap: 1, MaxGap: 2},
			Player:   PlacementSpec{Prefab: "player.yaml"},
			Floor:    PlacementSpec{Prefab: "floor.yaml"},
			Cop:      PlacementSpec{Prefab: "cop.yaml"},
			Drone:    PlacementSpec{Prefab: "drone.yaml"},
		}
	}
	cases := []struct {
		name    string
		mutate  func(*WorldSpec)
		wantErr string
	}{
		{"valid", func(*WorldSpec) {}, ""},
		{"zero_tick_rate", func(s *WorldSpec) { s.TickRate = 0 }, "tick_rate"},
		{"gaps_inverted", func(s *WorldSpec) { s.Spawner.MaxGap = 0.5 }, "min_gap"},
		{"zero_tile", func(s *WorldSpec) { s.PlayArea.TileSize = 0 }, "play_area"},
		{"missing_prefab", func(s *WorldSpec) { s.Cop.Prefab = "" }, "cop.prefab"},
		{"negative_gravity", func(s *WorldSpec) { s.Physics.Gravity = -1 }, "gravity"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := valid()
			c.mutate(&s)
			err := s.Validate()
			if c.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", c.wantErr, err)
			}
		})
	}
}

func TestDecodeComponentSpecValidates(t *testing.T) {
	cases := []struct {
		name    string
		raw     any
		wantErr bool
	}{
		{"cop", map[string]any{"kind": "cop", "base_velocity_x": -2}, false},
		{"unknown_kind", map[string]any{"kind": "dog", "base_velocity_x": -2}, true},
		{"drifts_right", map[string]any{"kind": "drone", "base_velocity_x": 3}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeComponentSpec[EnemyComponentSpec](c.raw)
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}
