package system

import (
	"github.com/milk9111/catburglar/ecs"
	"github.com/milk9111/catburglar/ecs/component"
	"github.com/milk9111/catburglar/input"
)

// InputSystem samples the held actions once per tick and copies them into every Input
// component, so later systems never read devices directly.
type InputSystem struct {
	Source input.Source
}

func NewInputSystem(src input.Source) *InputSystem {
	return &InputSystem{Source: src}
}

func (i *InputSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	var left, right, jump bool
	if i.Source != nil {
		left = i.Source.IsPressed(input.Left)
		right = i.Source.IsPressed(input.Right)
		jump = i.Source.IsPressed(input.Jump)
	}
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		in.Left = left
		in.Right = right
		in.Jump = jump
	})
}
