package ecs

import "github.com/milk9111/tiledimage/ecs/component"

// Filter narrows a query without fetching component data.
type Filter func(w *World, e Entity) bool

// With keeps entities that hold kind.
func With(kind component.AnyKind) Filter {
	return func(w *World, e Entity) bool {
		s, ok := w.storeFor(kind)
		return ok && s.has(e.id())
	}
}

// Without keeps entities that do not hold kind.
func Without(kind component.AnyKind) Filter {
	return func(w *World, e Entity) bool {
		s, ok := w.storeFor(kind)
		return !ok || !s.has(e.id())
	}
}

// ChangedAfter keeps entities whose kind component was written after tick
// since. Entities without the component are dropped.
func ChangedAfter(kind component.AnyKind, since uint64) Filter {
	return func(w *World, e Entity) bool {
		return ChangedSince(w, e, kind, since)
	}
}

func matches(w *World, e Entity, filters []Filter) bool {
	for _, f := range filters {
		if f != nil && !f(w, e) {
			return false
		}
	}
	return true
}

// liveEntities returns the live entities present in every store, iterating
// the first. A missing store yields nothing.
func liveEntities(w *World, first store, rest ...store) []Entity {
	if w == nil || first == nil {
		return nil
	}
	ids := first.ids()
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		ok := true
		for _, s := range rest {
			if s == nil || !s.has(id) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if e, alive := w.entities.handle(id); alive {
			out = append(out, e)
		}
	}
	return out
}

// ForEach calls fn for every live entity holding a, subject to filters.
// The entity set is captured before the first call, so fn may add or
// remove components.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A), filters ...Filter) {
	if w == nil {
		return
	}
	sa, _ := typedStore(w, a, false)
	if sa == nil {
		return
	}
	for _, e := range liveEntities(w, sa) {
		if !matches(w, e, filters) {
			continue
		}
		va, ok := sa.get(e.id())
		if !ok {
			continue
		}
		fn(e, va)
	}
}

// ForEach2 calls fn for every live entity holding both a and b.
func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B), filters ...Filter) {
	if w == nil {
		return
	}
	sa, _ := typedStore(w, a, false)
	sb, _ := typedStore(w, b, false)
	if sa == nil || sb == nil {
		return
	}
	for _, e := range liveEntities(w, sa, sb) {
		if !matches(w, e, filters) {
			continue
		}
		va, okA := sa.get(e.id())
		vb, okB := sb.get(e.id())
		if !okA || !okB {
			continue
		}
		fn(e, va, vb)
	}
}

func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C), filters ...Filter) {
	if w == nil {
		return
	}
	sa, _ := typedStore(w, a, false)
	sb, _ := typedStore(w, b, false)
	sc, _ := typedStore(w, c, false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for _, e := range liveEntities(w, sa, sb, sc) {
		if !matches(w, e, filters) {
			continue
		}
		va, okA := sa.get(e.id())
		vb, okB := sb.get(e.id())
		vc, okC := sc.get(e.id())
		if !okA || !okB || !okC {
			continue
		}
		fn(e, va, vb, vc)
	}
}

func ForEach4[A, B, C, D any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], d component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D), filters ...Filter) {
	if w == nil {
		return
	}
	sa, _ := typedStore(w, a, false)
	sb, _ := typedStore(w, b, false)
	sc, _ := typedStore(w, c, false)
	sd, _ := typedStore(w, d, false)
	if sa == nil || sb == nil || sc == nil || sd == nil {
		return
	}
	for _, e := range liveEntities(w, sa, sb, sc, sd) {
		if !matches(w, e, filters) {
			continue
		}
		va, okA := sa.get(e.id())
		vb, okB := sb.get(e.id())
		vc, okC := sc.get(e.id())
		vd, okD := sd.get(e.id())
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, va, vb, vc, vd)
	}
}

// Single returns the only live entity holding kind that passes filters.
// It reports false when no entity or more than one entity matches.
func Single[T any](w *World, kind component.ComponentKind[T], filters ...Filter) (Entity, *T, bool) {
	var (
		found Entity
		value *T
		count int
	)
	ForEach(w, kind, func(e Entity, v *T) {
		count++
		found, value = e, v
	}, filters...)
	if count != 1 {
		return 0, nil, false
	}
	return found, value, true
}
