package component

// EnemyKind distinguishes the enemy variants.
type EnemyKind uint8

const (
	Cop EnemyKind = iota + 1
	Drone
)

func (k EnemyKind) String() string {
	switch k {
	case Cop:
		return "cop"
	case Drone:
		return "drone"
	default:
		return "unknown"
	}
}

// Enemy drifts left at a constant BaseVelocityX (px/tick) until it leaves the screen.
type Enemy struct {
	Kind          EnemyKind
	BaseVelocityX float64
}

var EnemyComponent = NewComponent[Enemy]()
