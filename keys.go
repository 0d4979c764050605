package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/catburglar/input"
)

func keys(ks ...ebiten.Key) []int {
	out := make([]int, len(ks))
	for i, k := range ks {
		out[i] = int(k)
	}
	return out
}

// DefaultBindings is the keyboard layout. Arrows and WASD both move.
func DefaultBindings() input.Bindings {
	return input.Bindings{
		input.Jump:       keys(ebiten.KeySpace),
		input.Up:         keys(ebiten.KeyArrowUp, ebiten.KeyW),
		input.Down:       keys(ebiten.KeyArrowDown, ebiten.KeyS),
		input.Left:       keys(ebiten.KeyArrowLeft, ebiten.KeyA),
		input.Right:      keys(ebiten.KeyArrowRight, ebiten.KeyD),
		input.ZoomOut:    keys(ebiten.KeyMinus),
		input.ZoomIn:     keys(ebiten.KeyEqual),
		input.Fullscreen: keys(ebiten.KeyF10),
		input.Escape:     keys(ebiten.KeyEscape),
		input.Enter:      keys(ebiten.KeyEnter),
	}
}

// pollKeys feeds the current keyboard state into h: held keys for the simulation and
// this frame's presses for the one-shot controls.
func pollKeys(h *input.KeyHandler) {
	h.NewFrame()
	for _, code := range h.BoundCodes() {
		key := ebiten.Key(code)
		h.Set(code, ebiten.IsKeyPressed(key))
		if inpututil.IsKeyJustPressed(key) {
			h.Tap(code)
		}
	}
}
