package component

import "math"

// TimerMode selects whether a Timer counts down or up.
type TimerMode uint8

const (
	Countdown TimerMode = iota
	Stopwatch
)

func (m TimerMode) String() string {
	switch m {
	case Countdown:
		return "countdown"
	case Stopwatch:
		return "stopwatch"
	default:
		return "unknown"
	}
}

// Timer is a gameplay clock driven by Update(dt) with dt in seconds.
//
// A countdown decrements while running and stops when it reaches zero. Raising its
// remaining time restarts it when autostart is enabled, so a drained frame timer can be
// reloaded with SetRemaining. A stopwatch counts up while running and stops at its
// maximum, if it has one.
type Timer struct {
	mode      TimerMode
	value     float64
	running   bool
	autostart bool
	maximum   float64
}

// NewCountdown returns a running countdown that restarts whenever time is added.
func NewCountdown(remaining float64) *Timer {
	return &Timer{
		mode:      Countdown,
		value:     math.Max(0, remaining),
		running:   true,
		autostart: true,
	}
}

// NewStopwatch returns a stopped stopwatch. maximum <= 0 or +Inf means unbounded.
func NewStopwatch(maximum float64) *Timer {
	if maximum <= 0 || math.IsNaN(maximum) {
		maximum = math.Inf(1)
	}
	return &Timer{mode: Stopwatch, maximum: maximum}
}

func (t *Timer) Mode() TimerMode {
	return t.mode
}

func (t *Timer) Running() bool {
	return t != nil && t.running
}

// Start resumes the clock. A drained countdown or a maxed-out stopwatch stays stopped.
func (t *Timer) Start() {
	if t == nil {
		return
	}
	switch t.mode {
	case Countdown:
		t.running = t.value > 0
	case Stopwatch:
		t.running = t.value < t.maximum
	}
}

// Pause stops the clock without touching its value.
func (t *Timer) Pause() {
	if t == nil {
		return
	}
	t.running = false
}

// SetAutostart controls whether SetRemaining with a larger value restarts a countdown.
func (t *Timer) SetAutostart(enabled bool) {
	if t == nil {
		return
	}
	t.autostart = enabled
}

// Remaining is the time left on a countdown.
func (t *Timer) Remaining() float64 {
	if t == nil || t.mode != Countdown {
		return 0
	}
	return t.value
}

// SetRemaining sets the countdown value, clamped to zero.
func (t *Timer) SetRemaining(amount float64) {
	if t == nil || t.mode != Countdown {
		return
	}
	amount = math.Max(0, amount)
	if amount > t.value && t.autostart {
		t.running = true
	}
	t.value = amount
}

// Elapsed is the time counted by a stopwatch.
func (t *Timer) Elapsed() float64 {
	if t == nil || t.mode != Stopwatch {
		return 0
	}
	return t.value
}

// Maximum is the stopwatch limit, +Inf when unbounded.
func (t *Timer) Maximum() float64 {
	if t == nil {
		return math.Inf(1)
	}
	return t.maximum
}

// Completion reports elapsed/maximum in [0, 1]. ok is false for an unbounded stopwatch
// and for countdowns.
func (t *Timer) Completion() (float64, bool) {
	if t == nil || t.mode != Stopwatch || math.IsInf(t.maximum, 1) {
		return 0, false
	}
	return math.Min(1, t.value/t.maximum), true
}

// Reset zeroes the clock and stops it.
func (t *Timer) Reset() {
	if t == nil {
		return
	}
	t.value = 0
	t.running = false
}

// Update advances the clock by dt seconds. Non-positive steps do nothing.
func (t *Timer) Update(dt float64) {
	if t == nil || !t.running || dt <= 0 {
		return
	}
	switch t.mode {
	case Countdown:
		t.value = math.Max(0, t.value-dt)
		if t.value == 0 {
			t.running = false
		}
	case Stopwatch:
		t.value += dt
		if t.value >= t.maximum {
			t.value = t.maximum
			t.running = false
		}
	}
}
