package component

import anim "github.com/milk9111/catburglar/component"

// Player holds the controller and physics state of the cat.
type Player struct {
	MoveState         anim.MoveState
	MoveSpeed         float64
	JumpSpeed         float64
	HorizontalDamping float64
	Facing            anim.Facing
}

var PlayerComponent = NewComponent[Player]()
