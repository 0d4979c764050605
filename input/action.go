// Package input maps raw key codes to game actions.
package input

// Action is a logical control, independent of the physical key that triggers it.
type Action uint8

const (
	Left Action = iota + 1
	Right
	Up
	Down
	Jump
	ZoomIn
	ZoomOut
	Fullscreen
	Escape
	Enter
)

var actionNames = map[Action]string{
	Left:       "left",
	Right:      "right",
	Up:         "up",
	Down:       "down",
	Jump:       "jump",
	ZoomIn:     "zoom_in",
	ZoomOut:    "zoom_out",
	Fullscreen: "fullscreen",
	Escape:     "escape",
	Enter:      "enter",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Actions lists every action in declaration order.
func Actions() []Action {
	return []Action{Left, Right, Up, Down, Jump, ZoomIn, ZoomOut, Fullscreen, Escape, Enter}
}

// Source answers whether an action is currently held.
type Source interface {
	IsPressed(a Action) bool
}

// Static is a fixed Source, handy for tests and replays.
type Static map[Action]bool

func (s Static) IsPressed(a Action) bool {
	return s[a]
}
