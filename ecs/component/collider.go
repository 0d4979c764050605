package component

import "github.com/jakecoffman/cp"

// Collider is an axis-aligned hit box relative to the Transform center. A zero size falls
// back to the Transform size.
type Collider struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

// BB returns the hit box in world space.
func (c *Collider) BB(t *Transform) cp.BB {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = t.Width
	}
	if h <= 0 {
		h = t.Height
	}
	cx, cy := t.X+c.OffsetX, t.Y+c.OffsetY
	return cp.NewBBForExtents(cp.Vector{X: cx, Y: cy}, w/2, h/2)
}

// Right is the right edge of the hit box.
func (c *Collider) Right(t *Transform) float64 {
	return c.BB(t).R
}

var ColliderComponent = NewComponent[Collider]()
