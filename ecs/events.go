package ecs

import (
	"github.com/milk9111/catburglar/component"
	ecscomp "github.com/milk9111/catburglar/ecs/component"
)

// EventKind identifies what happened.
type EventKind string

const (
	EventEnemySpawned     EventKind = "enemy_spawned"
	EventEnemyDespawned   EventKind = "enemy_despawned"
	EventMoveStateChanged EventKind = "move_state_changed"
	EventPlayerCaught     EventKind = "player_caught"
	EventRunEscaped       EventKind = "run_escaped"
)

// Event is one notification raised by a system. Data holds one of the payload types below,
// or nil.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   any
}

// EnemySpawn is the payload of EventEnemySpawned.
type EnemySpawn struct {
	Kind ecscomp.EnemyKind
	X, Y float64
}

// MoveStateChange is the payload of EventMoveStateChanged.
type MoveStateChange struct {
	From, To component.MoveState
}

// Caught is the payload of EventPlayerCaught. Entity is the player.
type Caught struct {
	By   Entity
	Kind ecscomp.EnemyKind
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Items returns a copy of the queued events without clearing them.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return append([]Event(nil), q.items...)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
