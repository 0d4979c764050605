package component

// AnimState tags a named animation sequence (a subgroup) in an AnimationTable.
type AnimState uint8

const (
	StillRight AnimState = iota + 1
	StillLeft
	WalkRight
	WalkLeft
	StillFacing
	StillAway
	GroundLeft
)

var animStateNames = map[AnimState]string{
	StillRight:  "still_right",
	StillLeft:   "still_left",
	WalkRight:   "walk_right",
	WalkLeft:    "walk_left",
	StillFacing: "still_facing",
	StillAway:   "still_awaycamera",
	GroundLeft:  "ground_left",
}

// String returns the subgroup name used in asset file names.
func (s AnimState) String() string {
	if name, ok := animStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseAnimState maps a subgroup name back to its tag.
func ParseAnimState(name string) (AnimState, bool) {
	for s, n := range animStateNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// ActorStates must be present in the table of every mobile actor.
var ActorStates = []AnimState{StillRight, StillLeft, WalkRight, WalkLeft}

// GroundStates must be present in a floor tile table.
var GroundStates = []AnimState{GroundLeft}
