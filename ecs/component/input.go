package component

// Input stores the held actions sampled for an entity this tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

var InputComponent = NewComponent[Input]()
