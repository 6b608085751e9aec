package ecs

import (
	"testing"

	"github.com/vovakirdan/rockjump/internal/core"
)

type position struct{ X, Y float64 }
type velocity struct{ DX float64 }

func TestEntityPoolGenerations(t *testing.T) {
	p := NewEntityPool()

	a := p.Create()
	if a.IsZero() {
		t.Fatal("First entity must not be the zero id")
	}
	if !p.Alive(a) {
		t.Fatal("Created entity should be alive")
	}

	p.Destroy(a)
	if p.Alive(a) {
		t.Error("Destroyed entity should not be alive")
	}

	// Index is recycled with a bumped generation
	b := p.Create()
	if b.Index() != a.Index() {
		t.Errorf("Expected index %d to be recycled, got %d", a.Index(), b.Index())
	}
	if b.Generation() != a.Generation()+1 {
		t.Errorf("Expected generation %d, got %d", a.Generation()+1, b.Generation())
	}
	if p.Alive(a) {
		t.Error("Stale id must stay dead after its index is reused")
	}

	// Double destroy of a stale id is a no-op
	p.Destroy(a)
	if !p.Alive(b) || p.Len() != 1 {
		t.Errorf("Stale destroy must not affect the new entity, alive=%v len=%d", p.Alive(b), p.Len())
	}

	if p.Alive(NewEntityID(42, 1)) {
		t.Error("Never-allocated index should not be alive")
	}
}

func TestStoreSetGetRemove(t *testing.T) {
	w := NewWorld()
	s := NewStore[position](w)

	e1, e2, e3 := w.CreateEntity(), w.CreateEntity(), w.CreateEntity()
	s.Set(e1, position{X: 1})
	s.Set(e2, position{X: 2})
	s.Set(e3, position{X: 3})

	if p, ok := s.Get(e2); !ok || p.X != 2 {
		t.Fatalf("Get(e2) = %v, %v", p, ok)
	}

	// Pointer mutation is visible
	p, _ := s.Get(e1)
	p.Y = 10
	if again, _ := s.Get(e1); again.Y != 10 {
		t.Error("Mutation through Get pointer should persist")
	}

	// Replace keeps the slot
	s.Set(e1, position{X: 100})
	if s.Len() != 3 {
		t.Errorf("Replacing a component should not grow the store, len=%d", s.Len())
	}

	s.Remove(e1)
	if s.Has(e1) {
		t.Error("Removed component should be gone")
	}
	// Swap-removal must keep the moved entity addressable
	if p, ok := s.Get(e3); !ok || p.X != 3 {
		t.Errorf("e3 should survive swap-removal, got %v, %v", p, ok)
	}
	if p, ok := s.Get(e2); !ok || p.X != 2 {
		t.Errorf("e2 should survive swap-removal, got %v, %v", p, ok)
	}

	s.Remove(e1) // no-op
	if s.Len() != 2 {
		t.Errorf("Expected 2 components, got %d", s.Len())
	}
}

func TestStoreEachOrder(t *testing.T) {
	w := NewWorld()
	s := NewStore[position](w)

	var ids []EntityID
	for i := 0; i < 4; i++ {
		id := w.CreateEntity()
		ids = append(ids, id)
		s.Set(id, position{X: float64(i)})
	}

	i := 0
	s.Each(func(id EntityID, p *position) {
		if id != ids[i] {
			t.Errorf("Each visited %v at step %d, expected %v", id, i, ids[i])
		}
		i++
	})
	if i != 4 {
		t.Errorf("Each visited %d components, expected 4", i)
	}
}

func TestEach2(t *testing.T) {
	w := NewWorld()
	pos := NewStore[position](w)
	vel := NewStore[velocity](w)

	moving := w.CreateEntity()
	static := w.CreateEntity()
	ghost := w.CreateEntity()

	pos.Set(moving, position{X: 0})
	vel.Set(moving, velocity{DX: 2})
	pos.Set(static, position{X: 5})
	vel.Set(ghost, velocity{DX: 9})

	visited := 0
	Each2(pos, vel, func(id EntityID, p *position, v *velocity) {
		visited++
		if id != moving {
			t.Errorf("Each2 should only visit entities with both components, got %v", id)
		}
		p.X += v.DX
	})
	if visited != 1 {
		t.Errorf("Each2 visited %d entities, expected 1", visited)
	}
	if p, _ := pos.Get(moving); p.X != 2 {
		t.Errorf("Each2 mutation lost, X = %f", p.X)
	}

	// Iterating from the other side gives the same pairs
	visited = 0
	Each2(vel, pos, func(id EntityID, _ *velocity, _ *position) {
		visited++
	})
	if visited != 1 {
		t.Errorf("Reversed Each2 visited %d entities, expected 1", visited)
	}

	if id, _, _, ok := First(vel, pos); !ok || id != moving {
		t.Errorf("First(vel, pos) = %v, %v, expected %v", id, ok, moving)
	}
}

func TestWorldDestroyAndDeleteAll(t *testing.T) {
	w := NewWorld()
	pos := NewStore[position](w)
	vel := NewStore[velocity](w)

	a := w.CreateEntity()
	b := w.CreateEntity()
	pos.Set(a, position{})
	vel.Set(a, velocity{})
	pos.Set(b, position{})

	w.Destroy(a)
	if pos.Has(a) || vel.Has(a) {
		t.Error("Destroy should remove components from every store")
	}
	if w.Len() != 1 {
		t.Errorf("Expected 1 live entity, got %d", w.Len())
	}

	w.DeleteAll()
	if w.Len() != 0 || pos.Len() != 0 || vel.Len() != 0 {
		t.Errorf("DeleteAll should empty the world, entities=%d pos=%d vel=%d", w.Len(), pos.Len(), vel.Len())
	}
	if w.Alive(b) {
		t.Error("Ids from before DeleteAll must be stale")
	}
	if len(w.Entities()) != 0 {
		t.Errorf("Entities() should be empty, got %v", w.Entities())
	}

	// World is reusable afterwards
	c := w.CreateEntity()
	pos.Set(c, position{X: 1})
	if !w.Alive(c) || pos.Len() != 1 {
		t.Error("World should accept new entities after DeleteAll")
	}
}

type recordingSystem struct {
	name  string
	phase Phase
	log   *[]string
}

func (s recordingSystem) Phase() Phase { return s.phase }

func (s recordingSystem) Update(f *core.Frame) {
	*s.log = append(*s.log, s.name)
}

func TestRunnerPhaseOrder(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(recordingSystem{name: "post", phase: PhasePostUpdate, log: &log})
	r.Register(recordingSystem{name: "update-a", phase: PhaseUpdate, log: &log})
	r.Register(recordingSystem{name: "input", phase: PhaseInput, log: &log})
	r.Register(recordingSystem{name: "update-b", phase: PhaseUpdate, log: &log})

	r.Tick(core.NewFrame(0, core.NewInputFrame()))

	expected := []string{"input", "update-a", "update-b", "post"}
	if len(log) != len(expected) {
		t.Fatalf("Ran %v, expected %v", log, expected)
	}
	for i := range expected {
		if log[i] != expected[i] {
			t.Errorf("Step %d ran %q, expected %q", i, log[i], expected[i])
		}
	}
	if r.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", r.Len())
	}
}
