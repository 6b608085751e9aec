package ecs

// Removable is implemented by all component stores so the World can
// bulk-remove an entity's data from every store on destroy.
type Removable interface {
	Remove(id EntityID)
	Clear()
}

// Store is a typed component store laid out as a sparse set: components
// live densely in insertion order and an index map points entity ids at
// their slot. Pointers returned by Get and Each stay valid until the next
// Set of a new entity or Remove on this store.
type Store[T any] struct {
	dense []T
	ids   []EntityID
	index map[EntityID]int
}

// NewStore creates a store and registers it with the world so that
// destroyed entities lose their components.
func NewStore[T any](w *World) *Store[T] {
	s := &Store[T]{
		dense: make([]T, 0, 8),
		ids:   make([]EntityID, 0, 8),
		index: make(map[EntityID]int, 8),
	}
	w.register(s)
	return s
}

// Set attaches (or replaces) the component for id.
func (s *Store[T]) Set(id EntityID, c T) {
	if i, ok := s.index[id]; ok {
		s.dense[i] = c
		return
	}
	s.index[id] = len(s.dense)
	s.dense = append(s.dense, c)
	s.ids = append(s.ids, id)
}

func (s *Store[T]) Get(id EntityID) (*T, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return &s.dense[i], true
}

// Remove detaches the component for id, moving the last component into
// its slot.
func (s *Store[T]) Remove(id EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	last := len(s.dense) - 1
	if i != last {
		s.dense[i] = s.dense[last]
		s.ids[i] = s.ids[last]
		s.index[s.ids[i]] = i
	}
	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.ids = s.ids[:last]
	delete(s.index, id)
}

// Clear drops every component.
func (s *Store[T]) Clear() {
	clear(s.dense)
	s.dense = s.dense[:0]
	s.ids = s.ids[:0]
	clear(s.index)
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.dense)
}

// Each iterates components in insertion order (modulo swap-removal).
func (s *Store[T]) Each(fn func(EntityID, *T)) {
	for i := range s.dense {
		fn(s.ids[i], &s.dense[i])
	}
}
