package ecs

// World is the top-level ECS container. It owns the entity pool and every
// component store created for it.
type World struct {
	pool   *EntityPool
	stores []Removable
}

func NewWorld() *World {
	return &World{
		pool:   NewEntityPool(),
		stores: make([]Removable, 0, 8),
	}
}

func (w *World) register(s Removable) {
	w.stores = append(w.stores, s)
}

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.pool.Len()
}

// Destroy removes the entity's components from every store and retires its id.
func (w *World) Destroy(id EntityID) {
	if !w.pool.Alive(id) {
		return
	}
	for _, s := range w.stores {
		s.Remove(id)
	}
	w.pool.Destroy(id)
}

// DeleteAll destroys every live entity. Ids handed out before the call are
// stale afterwards.
func (w *World) DeleteAll() {
	ids := make([]EntityID, 0, w.pool.Len())
	w.pool.Each(func(id EntityID) {
		ids = append(ids, id)
	})
	for _, id := range ids {
		w.pool.Destroy(id)
	}
	for _, s := range w.stores {
		s.Clear()
	}
}

// Entities returns the live entity ids in index order.
func (w *World) Entities() []EntityID {
	ids := make([]EntityID, 0, w.pool.Len())
	w.pool.Each(func(id EntityID) {
		ids = append(ids, id)
	})
	return ids
}
