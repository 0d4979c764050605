package component

// MoveState is the player's coarse vertical phase.
type MoveState uint8

const (
	Running MoveState = iota
	Jumping
	Falling
)

func (s MoveState) String() string {
	switch s {
	case Running:
		return "running"
	case Jumping:
		return "jumping"
	case Falling:
		return "falling"
	default:
		return "unknown"
	}
}

// Facing is the horizontal direction an actor last moved in.
type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
)

// StillState is the idle animation for the facing.
func (f Facing) StillState() AnimState {
	if f == FacingLeft {
		return StillLeft
	}
	return StillRight
}

// WalkState is the walking animation for the facing.
func (f Facing) WalkState() AnimState {
	if f == FacingLeft {
		return WalkLeft
	}
	return WalkRight
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}
