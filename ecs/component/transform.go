package component

// Transform places an entity in world space. X/Y is the center, y grows upward, and
// Width/Height is the drawn size in px.
type Transform struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (t *Transform) Bottom() float64 {
	return t.Y - t.Height/2
}

// SetBottom moves the entity vertically so its bottom edge sits at y.
func (t *Transform) SetBottom(y float64) {
	t.Y = y + t.Height/2
}

func (t *Transform) Top() float64 {
	return t.Y + t.Height/2
}

func (t *Transform) Left() float64 {
	return t.X - t.Width/2
}

func (t *Transform) Right() float64 {
	return t.X + t.Width/2
}

var TransformComponent = NewComponent[Transform]()
