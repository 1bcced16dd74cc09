package ecs

import "github.com/milk9111/tiledimage/ecs/component"

func typedStore[T any](w *World, kind component.ComponentKind[T], create bool) (*sparseSet[T], error) {
	if !kind.Valid() {
		return nil, component.ErrInvalidComponentKind
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		if !create {
			return nil, nil
		}
		typed := &sparseSet[T]{}
		w.stores[kind.ID()] = typed
		return typed, nil
	}
	typed, ok := s.(*sparseSet[T])
	if !ok {
		return nil, component.ErrInvalidComponentKind
	}
	return typed, nil
}

// Add inserts or replaces the component of kind on e and stamps it as
// changed at the current tick.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	s, err := typedStore(w, kind, true)
	if err != nil {
		return err
	}
	s.set(e.id(), value, w.tick)
	return nil
}

// Remove detaches the component of kind from e.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	s, err := typedStore(w, kind, false)
	if err != nil || s == nil {
		return false
	}
	return s.remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	s, err := typedStore(w, kind, false)
	if err != nil || s == nil {
		return false
	}
	return s.has(e.id())
}

// Get returns the component for read access. Writing through the pointer
// is not seen by change detection; use GetMut for that.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	s, err := typedStore(w, kind, false)
	if err != nil || s == nil {
		return nil, false
	}
	return s.get(e.id())
}

// GetMut returns the component for write access and stamps it as changed
// at the current tick.
func GetMut[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	v, ok := Get(w, e, kind)
	if !ok {
		return nil, false
	}
	w.stores[kind.ID()].touch(e.id(), w.tick)
	return v, true
}

// MarkChanged stamps the component of kind on e as changed at the current
// tick without touching its value.
func MarkChanged(w *World, e Entity, kind component.AnyKind) bool {
	if !w.IsAlive(e) {
		return false
	}
	s, ok := w.storeFor(kind)
	if !ok || !s.has(e.id()) {
		return false
	}
	s.touch(e.id(), w.tick)
	return true
}

// ChangedTick returns the tick at which the component of kind on e was
// last written.
func ChangedTick(w *World, e Entity, kind component.AnyKind) (uint64, bool) {
	if !w.IsAlive(e) {
		return 0, false
	}
	s, ok := w.storeFor(kind)
	if !ok {
		return 0, false
	}
	return s.changed(e.id())
}

// ChangedSince reports whether the component of kind on e was written
// after tick since.
func ChangedSince(w *World, e Entity, kind component.AnyKind, since uint64) bool {
	tick, ok := ChangedTick(w, e, kind)
	return ok && tick > since
}
