package component

import (
	"image"
	"sort"
)

// DefaultFrameLength is how long each frame is shown, in seconds.
const DefaultFrameLength = 1.0 / 12

// AnimationTable maps animation states to ordered frame sequences. Frames are opaque
// image handles; the renderer decides what concrete type they are.
type AnimationTable map[AnimState][]image.Image

// NewAnimationTable copies frames into a table and checks that every required state is
// present with at least one frame. source is only used in error messages.
func NewAnimationTable(frames map[AnimState][]image.Image, required []AnimState, source string) (AnimationTable, error) {
	table := make(AnimationTable, len(frames))
	for state, seq := range frames {
		if len(seq) == 0 {
			continue
		}
		table[state] = append([]image.Image(nil), seq...)
	}
	for _, state := range required {
		if _, ok := table[state]; !ok {
			return nil, &MissingSubgroupError{State: state, Source: source}
		}
	}
	return table, nil
}

// Has reports whether the table holds a sequence for state.
func (t AnimationTable) Has(state AnimState) bool {
	return len(t[state]) > 0
}

// States returns the table's states in declaration order.
func (t AnimationTable) States() []AnimState {
	out := make([]AnimState, 0, len(t))
	for s := range t {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NamedAnimation plays one sequence at a time out of an AnimationTable.
type NamedAnimation struct {
	table       AnimationTable
	current     AnimState
	frameIndex  int
	frameLength float64
	frameTimer  *Timer
}

// NewNamedAnimation starts playing initial. frameLength <= 0 uses DefaultFrameLength.
func NewNamedAnimation(table AnimationTable, initial AnimState, frameLength float64) (*NamedAnimation, error) {
	if frameLength <= 0 {
		frameLength = DefaultFrameLength
	}
	if !table.Has(initial) {
		return nil, &UnknownStateError{State: initial}
	}
	return &NamedAnimation{
		table:       table,
		current:     initial,
		frameLength: frameLength,
		frameTimer:  NewCountdown(frameLength),
	}, nil
}

func (a *NamedAnimation) State() AnimState {
	return a.current
}

func (a *NamedAnimation) FrameIndex() int {
	return a.frameIndex
}

func (a *NamedAnimation) FrameLength() float64 {
	return a.frameLength
}

func (a *NamedAnimation) Table() AnimationTable {
	return a.table
}

// Remaining is the time left on the current frame.
func (a *NamedAnimation) Remaining() float64 {
	return a.frameTimer.Remaining()
}

// Frame returns the image for the current state and frame index.
func (a *NamedAnimation) Frame() image.Image {
	seq := a.table[a.current]
	if len(seq) == 0 {
		return nil
	}
	return seq[a.frameIndex]
}

// SetState switches to another sequence. Switching to the playing state is a no-op so
// repeated requests don't restart the animation.
func (a *NamedAnimation) SetState(state AnimState) error {
	if !a.table.Has(state) {
		return &UnknownStateError{State: state}
	}
	if state == a.current {
		return nil
	}
	a.current = state
	a.frameIndex = 0
	a.frameTimer.SetRemaining(a.frameLength)
	a.frameTimer.Start()
	return nil
}

// frameEpsilon absorbs float error so steps that sum to a frame length drain the timer.
const frameEpsilon = 1e-9

// Advance runs the frame timer and steps to the next frame when it drains. At most one
// frame is advanced per call; overshoot shorter than a frame carries into the reload.
// Single-frame sequences keep index 0 but still reload the timer.
func (a *NamedAnimation) Advance(dt float64) image.Image {
	before := a.frameTimer.Remaining()
	a.frameTimer.Update(dt)
	if a.frameTimer.Remaining() > frameEpsilon {
		return a.Frame()
	}
	if n := len(a.table[a.current]); n > 1 {
		a.frameIndex = (a.frameIndex + 1) % n
	}
	next := a.frameLength
	if overshoot := dt - before; overshoot > frameEpsilon && overshoot < a.frameLength {
		next -= overshoot
	}
	a.frameTimer.SetRemaining(next)
	return a.Frame()
}

// Expiring reports that the last frame of the sequence is showing, which lets callers
// chain into another animation without a visible stutter.
func (a *NamedAnimation) Expiring() bool {
	return a.frameTimer.Remaining() <= a.frameLength &&
		a.frameIndex+1 >= len(a.table[a.current])
}
