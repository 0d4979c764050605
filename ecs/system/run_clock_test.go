package system

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	anim "github.com/milk9111/catburglar/component"
	"github.com/milk9111/catburglar/ecs"
)

func TestRunClockEscapesOnce(t *testing.T) {
	clock := anim.NewStopwatch(1)
	s := NewRunClockSystem(clock, log.New(io.Discard))
	w := ecs.NewWorld()
	w.AddSystem(s)

	w.Update(0.5)
	if s.Escaped() || len(eventsOf(w, ecs.EventRunEscaped)) != 0 {
		t.Fatal("escaped halfway through the run")
	}
	w.Update(0.5)
	if !s.Escaped() || len(eventsOf(w, ecs.EventRunEscaped)) != 1 {
		t.Fatal("expected escape when the clock completes")
	}
	w.Update(0.5)
	if len(eventsOf(w, ecs.EventRunEscaped)) != 0 {
		t.Fatal("escape raised twice")
	}
	if clock.Elapsed() != 1 {
		t.Fatalf("elapsed = %v, want clamped to 1", clock.Elapsed())
	}
}

func TestRunClockUnbounded(t *testing.T) {
	clock := anim.NewStopwatch(0)
	s := NewRunClockSystem(clock, log.New(io.Discard))
	w := ecs.NewWorld()
	w.AddSystem(s)
	for i := 0; i < 100; i++ {
		w.Update(10)
	}
	if s.Escaped() {
		t.Fatal("an unbounded run never escapes")
	}
	if clock.Elapsed() != 1000 {
		t.Fatalf("elapsed = %v, want 1000", clock.Elapsed())
	}
}
