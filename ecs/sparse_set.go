package ecs

// store is the type-erased view of a sparseSet the world needs for
// entity teardown, untyped queries and change detection.
type store interface {
	has(id entityID) bool
	remove(id entityID) bool
	ids() []entityID
	value(id entityID) (any, bool)
	changed(id entityID) (uint64, bool)
	touch(id entityID, tick uint64)
	len() int
}

// sparseSet is a cache-friendly storage for components keyed by entity id.
// Each dense slot also records the tick at which its value last changed.
type sparseSet[T any] struct {
	dense  []entityID
	values []*T
	ticks  []uint64
	sparse []int
}

func (s *sparseSet[T]) index(id entityID) (int, bool) {
	if id == 0 || int(id) > len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.dense) || s.dense[idx] != id {
		return 0, false
	}
	return idx, true
}

func (s *sparseSet[T]) has(id entityID) bool {
	_, ok := s.index(id)
	return ok
}

func (s *sparseSet[T]) get(id entityID) (*T, bool) {
	idx, ok := s.index(id)
	if !ok {
		return nil, false
	}
	return s.values[idx], true
}

func (s *sparseSet[T]) set(id entityID, v *T, tick uint64) {
	if id == 0 {
		return
	}
	for int(id) > len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if idx, ok := s.index(id); ok {
		s.values[idx] = v
		s.ticks[idx] = tick
		return
	}
	s.dense = append(s.dense, id)
	s.values = append(s.values, v)
	s.ticks = append(s.ticks, tick)
	s.sparse[id-1] = len(s.dense) - 1
}

func (s *sparseSet[T]) remove(id entityID) bool {
	idx, ok := s.index(id)
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	lastID := s.dense[last]

	s.dense[idx] = s.dense[last]
	s.values[idx] = s.values[last]
	s.ticks[idx] = s.ticks[last]
	s.sparse[lastID-1] = idx

	s.values[last] = nil
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.ticks = s.ticks[:last]
	s.sparse[id-1] = -1
	return true
}

func (s *sparseSet[T]) ids() []entityID {
	return append([]entityID(nil), s.dense...)
}

func (s *sparseSet[T]) value(id entityID) (any, bool) {
	v, ok := s.get(id)
	if !ok {
		return nil, false
	}
	return v, true
}

func (s *sparseSet[T]) changed(id entityID) (uint64, bool) {
	idx, ok := s.index(id)
	if !ok {
		return 0, false
	}
	return s.ticks[idx], true
}

func (s *sparseSet[T]) touch(id entityID, tick uint64) {
	if idx, ok := s.index(id); ok {
		s.ticks[idx] = tick
	}
}

func (s *sparseSet[T]) len() int {
	return len(s.dense)
}
