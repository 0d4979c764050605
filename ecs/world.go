package ecs

import (
	"sort"

	"github.com/milk9111/catburglar/ecs/component"
)

// World owns entities, their components, the system order and the per-tick event queue.
//
// Structural changes made while systems run are deferred: entities created during a tick
// are staged and stay invisible to queries, and destroyed entities are only marked. Both
// land in Commit at the end of Update. Outside a tick, creation and destruction apply
// immediately.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	scheduler *Scheduler
	events    EventQueue

	inTick  bool
	staged  map[Entity]struct{}
	doomed  map[Entity]struct{}
	pending []Entity
	ticks   uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:    make(map[component.ComponentID]*SparseSet),
		scheduler: NewScheduler(),
		staged:    make(map[Entity]struct{}),
		doomed:    make(map[Entity]struct{}),
	}
}

// CreateEntity allocates a new entity. During a tick it is staged until Commit.
func (w *World) CreateEntity() Entity {
	e := w.entities.create()
	if w.inTick {
		w.staged[e] = struct{}{}
	}
	return e
}

// DestroyEntity removes e, or marks it for removal when called during a tick. A marked
// entity is no longer alive but keeps its components until Commit. It reports false for
// stale or already destroyed handles.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	if w.inTick {
		w.doomed[e] = struct{}{}
		w.pending = append(w.pending, e)
		return true
	}
	w.remove(e)
	return true
}

// IsAlive reports whether e is live and not marked for destruction.
func (w *World) IsAlive(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	_, marked := w.doomed[e]
	return !marked
}

// Staged reports whether e was created this tick and is still waiting for Commit.
func (w *World) Staged(e Entity) bool {
	_, ok := w.staged[e]
	return ok
}

func (w *World) visible(e Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	_, staged := w.staged[e]
	return !staged
}

// Entities returns every visible entity in id order.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) {
		if w.visible(e) {
			out = append(out, e)
		}
	})
	return out
}

// Commit applies deferred destruction and publishes staged entities.
func (w *World) Commit() {
	for _, e := range w.pending {
		w.remove(e)
	}
	w.pending = w.pending[:0]
	clear(w.doomed)
	clear(w.staged)
}

func (w *World) remove(e Entity) {
	for _, s := range w.stores {
		if s.Has(e) {
			s.Remove(e)
		}
	}
	w.entities.destroy(e)
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent stores value (a non-nil pointer) under kind for e.
func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

// GetComponent returns the raw value stored under kind for e.
func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	if kind == nil || !w.IsAlive(e) {
		return nil, false
	}
	s := w.store(kind.ID(), false)
	if !s.Has(e) {
		return nil, false
	}
	return s.Get(e), true
}

func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	_, ok := w.GetComponent(e, kind)
	return ok
}

func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	if kind == nil || !w.IsAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e)
}

// Query returns the visible entities that have every kind, in id order. The result is a
// snapshot; systems may create or destroy entities while walking it.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		if k == nil {
			return nil
		}
		sets = append(sets, w.store(k.ID(), false))
	}
	out := intersect(sets...)
	n := 0
	for _, e := range out {
		if w.visible(e) {
			out[n] = e
			n++
		}
	}
	out = out[:n]
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// First returns the lowest-id visible entity with kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	w.scheduler.Add(s)
}

// Systems returns the update order.
func (w *World) Systems() []System {
	return w.scheduler.Systems()
}

// Update clears the previous tick's events, runs every system once and commits deferred
// changes. dt is the tick length in seconds.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.events.flush()
	w.inTick = true
	w.scheduler.Update(w, dt)
	w.inTick = false
	w.Commit()
	w.ticks++
}

// Ticks is the number of completed Update calls.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Events returns the world event queue. It holds the events of the last tick until the
// next Update starts.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
