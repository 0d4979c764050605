package component

import anim "github.com/milk9111/catburglar/component"

// Animation is the entity's named-state animation. Systems advance it; the renderer only
// reads Frame.
var AnimationComponent = NewComponent[anim.NamedAnimation]()

// Movement is the entity's velocity and moving flag.
var MovementComponent = NewComponent[anim.Movement]()
