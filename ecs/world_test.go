package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/tiledimage/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
		wantAlive    int
	}{
		{"single", 1, 0, 0},
		{"three_create_destroy_middle", 3, 1, 2},
		{"none_destroy", 2, -1, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
			}
			if got := len(Entities(w)); got != c.wantAlive {
				t.Fatalf("expected %d entities, got %d", c.wantAlive, got)
			}
		})
	}
}

func TestRecycledIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	if !DestroyEntity(w, old) {
		t.Fatal("failed to destroy entity")
	}
	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected id %d to be recycled, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatal("recycled entity should differ from stale handle")
	}
	if IsAlive(w, old) {
		t.Fatal("stale handle should not be alive")
	}
	if !IsAlive(w, fresh) {
		t.Fatal("fresh handle should be alive")
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestComponentAccess(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, ints.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ints.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, ints.Kind()) {
					t.Fatal("e2 should not have int component")
				}
			},
			teardown: func() bool { return Remove(w, e1, ints.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, strs.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, strs.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, strs.Kind()) || !Has(w, e2, strs.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, strs.Kind()) && Remove(w, e2, strs.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	dead := CreateEntity(w)
	DestroyEntity(w, dead)
	alive := CreateEntity(w)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil_value", Add[int](w, alive, kind, nil), component.ErrNilComponent},
		{"dead_entity", Add(w, dead, kind, intPtr(1)), component.ErrEntityNotAlive},
		{"zero_kind", Add(w, alive, component.ComponentKind[int]{}, intPtr(1)), component.ErrInvalidComponentKind},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, tc.err)
			}
		})
	}
}

func TestDestroyRemovesComponents(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	e := CreateEntity(w)
	if err := Add(w, e, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, e)
	reused := CreateEntity(w)
	if Has(w, reused, kind) {
		t.Fatal("recycled entity should not inherit components")
	}
}

func TestChangeTicks(t *testing.T) {
	w := NewWorld()
	// Systems start with a last-run tick of 0, so anything written before
	// the first frame must already count as changed.
	if w.ChangeTick() != 1 {
		t.Fatalf("expected a new world at tick 1, got %d", w.ChangeTick())
	}
	kind := component.NewComponentKind[int]()
	e := CreateEntity(w)
	if err := Add(w, e, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	added, ok := ChangedTick(w, e, kind)
	if !ok || added != w.ChangeTick() {
		t.Fatalf("expected add stamped at %d, got %d ok=%v", w.ChangeTick(), added, ok)
	}

	w.AdvanceTick()
	v, _ := Get(w, e, kind)
	*v = 2
	if ChangedSince(w, e, kind, added) {
		t.Fatal("Get should not mark the component changed")
	}

	v, _ = GetMut(w, e, kind)
	*v = 3
	if !ChangedSince(w, e, kind, added) {
		t.Fatal("GetMut should mark the component changed")
	}

	w.AdvanceTick()
	if !MarkChanged(w, e, kind) {
		t.Fatal("MarkChanged should succeed for a present component")
	}
	if tick, _ := ChangedTick(w, e, kind); tick != w.ChangeTick() {
		t.Fatalf("expected tick %d after MarkChanged, got %d", w.ChangeTick(), tick)
	}
	if MarkChanged(w, e, component.NewComponentKind[string]()) {
		t.Fatal("MarkChanged should fail for a missing component")
	}
}
