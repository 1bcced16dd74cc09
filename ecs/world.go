package ecs

import "github.com/milk9111/tiledimage/ecs/component"

// World owns entities and their component stores.
//
// Every stored component carries the change tick at which it was last
// written through Add or GetMut. The scheduler advances the world tick
// before each system runs, so a system can ask whether a component changed
// since the tick it last observed.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
	tick     uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]store),
		tick:   1,
	}
}

// ChangeTick returns the current world tick.
func (w *World) ChangeTick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// AdvanceTick moves the world to the next tick and returns it.
func (w *World) AdvanceTick() uint64 {
	w.tick++
	return w.tick
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Query returns live entities holding every listed component kind.
func (w *World) Query(kinds ...component.AnyKind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]store, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		stores = append(stores, s)
	}
	// iterate smallest store
	smallest := 0
	for i, s := range stores {
		if s.len() < stores[smallest].len() {
			smallest = i
		}
	}

	var out []Entity
	for _, id := range stores[smallest].ids() {
		matched := true
		for i, s := range stores {
			if i != smallest && !s.has(id) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity holding kind.
func (w *World) First(kind component.AnyKind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		return 0, false
	}
	for _, id := range s.ids() {
		if e, ok := w.entities.handle(id); ok {
			return e, true
		}
	}
	return 0, false
}

func (w *World) storeFor(kind component.AnyKind) (store, bool) {
	if w == nil {
		return nil, false
	}
	s, ok := w.stores[kind.ID()]
	return s, ok
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its id.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether e refers to a live entity of w.
func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities returns every live entity in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}
