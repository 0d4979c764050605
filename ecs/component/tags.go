package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type FloorTag struct{}

var FloorTagComponent = NewComponent[FloorTag]()
