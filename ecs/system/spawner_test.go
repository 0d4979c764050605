package system

import (
	"io"
	"math"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/milk9111/catburglar/common"
	anim "github.com/milk9111/catburglar/component"
	"github.com/milk9111/catburglar/ecs"
	"github.com/milk9111/catburglar/ecs/component"
)

type spawnRecord struct {
	kind component.EnemyKind
	x, y float64
}

func recordingFactory(t *testing.T, out *[]spawnRecord) EnemyFactory {
	return func(w *ecs.World, kind component.EnemyKind, x, y float64) (ecs.Entity, error) {
		*out = append(*out, spawnRecord{kind, x, y})
		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{Kind: kind, BaseVelocityX: -2}); err != nil {
			return 0, err
		}
		return e, nil
	}
}

func newTestSpawner(t *testing.T, seed int64, out *[]spawnRecord) *SpawnerSystem {
	return NewSpawnerSystem(DefaultSpawnerConfig(), recordingFactory(t, out), rand.New(rand.NewSource(seed)), nil, log.New(io.Discard))
}

func TestSpawnerNextGap(t *testing.T) {
	s := newTestSpawner(t, 7, nil)
	cases := []struct {
		progress float64
	}{
		{0}, {0.25}, {0.5}, {0.9},
	}
	for _, c := range cases {
		hi := common.Lerp(2, 1, c.progress)
		for i := 0; i < 200; i++ {
			gap := s.NextGap(c.progress)
			if gap < 1 || gap > hi {
				t.Fatalf("progress %v: gap %v outside [1, %v]", c.progress, gap, hi)
			}
		}
	}

	for _, p := range []float64{1, 1.5, 10} {
		if gap := s.NextGap(p); gap != 1 {
			t.Fatalf("progress %v: gap = %v, want exactly 1", p, gap)
		}
	}
	if gap := s.NextGap(-1); gap < 1 || gap > 2 {
		t.Fatalf("negative progress should clamp to 0, got gap %v", gap)
	}
}

func TestSpawnerGapShrinksWithProgress(t *testing.T) {
	const draws = 2000
	mean := func(s *SpawnerSystem, progress float64) float64 {
		sum := 0.0
		for i := 0; i < draws; i++ {
			sum += s.NextGap(progress)
		}
		return sum / draws
	}
	for _, seed := range []int64{1, 7, 42, 1234} {
		early := mean(newTestSpawner(t, seed, nil), 0.1)
		late := mean(newTestSpawner(t, seed, nil), 0.9)
		if late > early {
			t.Fatalf("seed %d: mean gap at 0.9 = %v, above mean at 0.1 = %v", seed, late, early)
		}
		// Uniform on [1, 1.9] and [1, 1.1].
		if math.Abs(early-1.45) > 0.05 || math.Abs(late-1.05) > 0.05 {
			t.Fatalf("seed %d: mean gaps %v and %v, want about 1.45 and 1.05", seed, early, late)
		}
	}
}

func TestSpawnerGracePeriod(t *testing.T) {
	var spawned []spawnRecord
	w := ecs.NewWorld()
	w.AddSystem(newTestSpawner(t, 1, &spawned))

	for i := 0; i < 9; i++ {
		w.Update(0.5)
	}
	if len(spawned) != 0 {
		t.Fatalf("spawned %d enemies during the grace period", len(spawned))
	}
	w.Update(0.5)
	if len(spawned) != 1 {
		t.Fatalf("spawned %d enemies at the end of the grace period, want 1", len(spawned))
	}
	if got := eventsOf(w, ecs.EventEnemySpawned); len(got) != 1 {
		t.Fatalf("spawn events = %d, want 1", len(got))
	}
}

func TestSpawnerPlacement(t *testing.T) {
	var spawned []spawnRecord
	s := newTestSpawner(t, 42, &spawned)
	w := ecs.NewWorld()
	w.AddSystem(s)

	for i := 0; len(spawned) < 200 && i < 100000; i++ {
		w.Update(0.5)
	}
	if len(spawned) < 200 {
		t.Fatalf("only %d spawns", len(spawned))
	}
	counts := map[component.EnemyKind]int{}
	for _, r := range spawned {
		counts[r.kind]++
		if r.x != 816 {
			t.Fatalf("spawn x = %v, want 816", r.x)
		}
		switch r.kind {
		case component.Cop:
			if r.y != 32 {
				t.Fatalf("cop y = %v, want 32", r.y)
			}
		case component.Drone:
			if r.y < 24 || r.y > 224 {
				t.Fatalf("drone y = %v outside [24, 224]", r.y)
			}
		}
	}
	if counts[component.Cop] == 0 || counts[component.Drone] == 0 {
		t.Fatalf("expected both kinds, got %v", counts)
	}
	if s.Spawned() != len(spawned) {
		t.Fatalf("Spawned() = %d, want %d", s.Spawned(), len(spawned))
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	run := func() []spawnRecord {
		var spawned []spawnRecord
		w := ecs.NewWorld()
		w.AddSystem(newTestSpawner(t, 99, &spawned))
		for i := 0; i < 600; i++ {
			w.Update(0.1)
		}
		return spawned
	}
	a, b := run(), run()
	if len(a) != len(b) || len(a) == 0 {
		t.Fatalf("runs spawned %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSpawnerGapTracksRunClock(t *testing.T) {
	clock := anim.NewStopwatch(10)
	clock.Start()
	clock.Update(10)

	var spawned []spawnRecord
	cfg := DefaultSpawnerConfig()
	cfg.GracePeriod = 0.5
	s := NewSpawnerSystem(cfg, recordingFactory(t, &spawned), rand.New(rand.NewSource(3)), clock, log.New(io.Discard))
	w := ecs.NewWorld()
	w.AddSystem(s)

	w.Update(0.5)
	if len(spawned) != 1 {
		t.Fatalf("spawned %d, want 1", len(spawned))
	}
	if s.Progress() != 1 {
		t.Fatalf("progress = %v, want 1", s.Progress())
	}
	if s.Remaining() != 1 {
		t.Fatalf("next gap at full progress = %v, want 1", s.Remaining())
	}
}

func TestSpawnedEnemiesAreStaged(t *testing.T) {
	var spawned []spawnRecord
	cfg := DefaultSpawnerConfig()
	cfg.GracePeriod = 0.1
	w := ecs.NewWorld()
	w.AddSystem(NewSpawnerSystem(cfg, recordingFactory(t, &spawned), rand.New(rand.NewSource(5)), nil, log.New(io.Discard)))
	visible := -1
	w.AddSystem(ecs.SystemFunc(func(w *ecs.World, _ float64) {
		visible = len(w.Query(component.EnemyComponent.Kind()))
	}))

	w.Update(0.1)
	if len(spawned) != 1 {
		t.Fatalf("spawned %d, want 1", len(spawned))
	}
	if visible != 0 {
		t.Fatalf("spawned enemy visible during its spawn tick: %d", visible)
	}
	if got := len(w.Query(component.EnemyComponent.Kind())); got != 1 {
		t.Fatalf("enemies after commit = %d, want 1", got)
	}
}
