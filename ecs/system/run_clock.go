package system

import (
	"github.com/charmbracelet/log"
	anim "github.com/milk9111/catburglar/component"
	"github.com/milk9111/catburglar/ecs"
)

// RunClockSystem advances the run stopwatch and raises EventRunEscaped once when it
// reaches its maximum.
type RunClockSystem struct {
	clock   *anim.Timer
	escaped bool
	logger  *log.Logger
}

// NewRunClockSystem starts clock.
func NewRunClockSystem(clock *anim.Timer, logger *log.Logger) *RunClockSystem {
	clock.Start()
	return &RunClockSystem{clock: clock, logger: loggerOrDefault(logger)}
}

func (s *RunClockSystem) Clock() *anim.Timer {
	return s.clock
}

func (s *RunClockSystem) Escaped() bool {
	return s.escaped
}

func (s *RunClockSystem) Update(w *ecs.World, dt float64) {
	if s.escaped {
		return
	}
	s.clock.Update(dt)
	if c, ok := s.clock.Completion(); !ok || c < 1 {
		return
	}
	s.escaped = true
	s.logger.Info("escaped", "elapsed", s.clock.Elapsed())
	w.Events().Push(ecs.Event{Kind: ecs.EventRunEscaped})
}
