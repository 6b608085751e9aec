package ecs

// Each2 iterates over entities that have both component A and B.
// It iterates over the smaller store and checks the larger one.
func Each2[A, B any](sa *Store[A], sb *Store[B], fn func(EntityID, *A, *B)) {
	if sa.Len() <= sb.Len() {
		for i := range sa.dense {
			id := sa.ids[i]
			if j, ok := sb.index[id]; ok {
				fn(id, &sa.dense[i], &sb.dense[j])
			}
		}
		return
	}
	for j := range sb.dense {
		id := sb.ids[j]
		if i, ok := sa.index[id]; ok {
			fn(id, &sa.dense[i], &sb.dense[j])
		}
	}
}

// First returns the first entity (in sa order) that has both A and B.
func First[A, B any](sa *Store[A], sb *Store[B]) (EntityID, *A, *B, bool) {
	for i := range sa.dense {
		id := sa.ids[i]
		if j, ok := sb.index[id]; ok {
			return id, &sa.dense[i], &sb.dense[j], true
		}
	}
	return 0, nil, nil, false
}
