package component

import "math"

const (
	// MovingThreshold is the |vx| a stopped actor must exceed to count as moving.
	MovingThreshold = 0.1
	// StoppingThreshold is the |vx| a moving actor must drop below to count as stopped.
	StoppingThreshold = 0.05
)

// Movement holds an actor's velocity in px/tick and whether it is visibly moving.
type Movement struct {
	VX, VY float64

	moving bool
}

func (m *Movement) Moving() bool {
	return m != nil && m.moving
}

// UpdateMoving recomputes the moving flag. The two thresholds form a dead band so float
// noise around a single cutoff doesn't make the flag flicker.
func (m *Movement) UpdateMoving() bool {
	if m == nil {
		return false
	}
	speed := math.Abs(m.VX)
	if m.moving {
		if speed < StoppingThreshold {
			m.moving = false
		}
	} else if speed > MovingThreshold {
		m.moving = true
	}
	return m.moving
}
