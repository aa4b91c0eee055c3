package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/skyclimber/ecs/component"
)

type position struct{ X, Y float64 }
type tag struct{}

var (
	positionKind = component.NewComponentKind[position]()
	tagKind      = component.NewComponentKind[tag]()
	nameKind     = component.NewComponentKind[string]()
)

func spawn(t *testing.T, w *World, x float64, tagged bool) Entity {
	t.Helper()
	e := CreateEntity(w)
	if err := Add(w, e, positionKind, &position{X: x}); err != nil {
		t.Fatalf("add position: %v", err)
	}
	if tagged {
		if err := Add(w, e, tagKind, &tag{}); err != nil {
			t.Fatalf("add tag: %v", err)
		}
	}
	return e
}

func positions(w *World) []float64 {
	var xs []float64
	ForEach(w, positionKind, func(_ Entity, p *position) { xs = append(xs, p.X) })
	return xs
}

func TestSlotReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	old := spawn(t, w, 1, true)
	if !DestroyEntity(w, old) {
		t.Fatalf("DestroyEntity should report a live entity")
	}
	if DestroyEntity(w, old) {
		t.Fatalf("second destroy of the same handle should fail")
	}

	reused := CreateEntity(w)
	if reused.id() != old.id() || reused.generation() != old.generation()+1 {
		t.Fatalf("expected slot %d at generation %d, got %s", old.id(), old.generation()+1, reused)
	}
	if IsAlive(w, old) || !IsAlive(w, reused) {
		t.Fatalf("stale handle alive=%v, new handle alive=%v", IsAlive(w, old), IsAlive(w, reused))
	}
	if _, ok := Get(w, reused, positionKind); ok {
		t.Fatalf("reused slot must start without components")
	}
	if _, ok := Get(w, old, positionKind); ok {
		t.Fatalf("stale handle must not read components")
	}

	cases := []struct {
		name string
		err  error
		want error
	}{
		{"stale_entity", Add(w, old, positionKind, &position{}), component.ErrEntityNotAlive},
		{"nil_value", Add[position](w, reused, positionKind, nil), component.ErrNilComponent},
		{"zero_kind", Add(w, reused, component.ComponentKind[position]{}, &position{}), component.ErrInvalidComponentKind},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !errors.Is(c.err, c.want) {
				t.Fatalf("got %v, want %v", c.err, c.want)
			}
		})
	}
}

func TestAddReplacesComponent(t *testing.T) {
	w := NewWorld()
	e := spawn(t, w, 1, false)
	if err := Add(w, e, positionKind, &position{X: 9}); err != nil {
		t.Fatalf("add: %v", err)
	}
	p, ok := Get(w, e, positionKind)
	if !ok || p.X != 9 {
		t.Fatalf("expected replaced position 9, got %v ok=%v", p, ok)
	}
	if Count(w, positionKind) != 1 {
		t.Fatalf("replace must not grow the store")
	}
}

func TestForEachDestroyDuringIteration(t *testing.T) {
	cases := []struct {
		name      string
		destroyed func(all []Entity, cur Entity) []Entity
		wantSeen  int
	}{
		{
			name:      "destroy_current",
			destroyed: func(_ []Entity, cur Entity) []Entity { return []Entity{cur} },
			wantSeen:  4,
		},
		{
			// Visiting 0 kills 0 and 1; visiting 2 kills 2 and 3.
			name: "destroy_current_and_next",
			destroyed: func(all []Entity, cur Entity) []Entity {
				for i, e := range all {
					if e == cur && i+1 < len(all) {
						return []Entity{cur, all[i+1]}
					}
				}
				return []Entity{cur}
			},
			wantSeen: 2,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			var all []Entity
			for i := 0; i < 4; i++ {
				all = append(all, spawn(t, w, float64(i), false))
			}
			seen := 0
			ForEach(w, positionKind, func(e Entity, _ *position) {
				seen++
				for _, d := range c.destroyed(all, e) {
					DestroyEntity(w, d)
				}
			})
			if seen != c.wantSeen {
				t.Fatalf("visited %d entities, want %d", seen, c.wantSeen)
			}
			if left := positions(w); len(left) != 0 || len(Entities(w)) != 0 {
				t.Fatalf("entities survived iteration: %v", left)
			}
		})
	}
}

func TestForEachSkipsEntitiesAddedDuringIteration(t *testing.T) {
	w := NewWorld()
	spawn(t, w, 0, false)
	spawn(t, w, 1, false)

	seen := 0
	ForEach(w, positionKind, func(_ Entity, _ *position) {
		seen++
		spawn(t, w, 10, false)
	})
	if seen != 2 {
		t.Fatalf("visited %d, want the 2 present at start", seen)
	}
	if Count(w, positionKind) != 4 {
		t.Fatalf("Count = %d, want 4", Count(w, positionKind))
	}
}

func TestForEachIntersections(t *testing.T) {
	w := NewWorld()
	spawn(t, w, 0, false)
	tagged := spawn(t, w, 1, true)
	named := spawn(t, w, 2, true)
	_ = Add(w, named, nameKind, new(string))
	onlyName := CreateEntity(w)
	_ = Add(w, onlyName, nameKind, new(string))

	var two, three []Entity
	ForEach2(w, positionKind, tagKind, func(e Entity, _ *position, _ *tag) { two = append(two, e) })
	ForEach3(w, positionKind, tagKind, nameKind, func(e Entity, _ *position, _ *tag, _ *string) { three = append(three, e) })

	if len(two) != 2 || two[0] != tagged || two[1] != named {
		t.Fatalf("ForEach2 = %v, want [%s %s]", two, tagged, named)
	}
	if len(three) != 1 || three[0] != named {
		t.Fatalf("ForEach3 = %v, want [%s]", three, named)
	}

	empty := component.NewComponentKind[int]()
	ForEach4(w, positionKind, tagKind, nameKind, empty, func(Entity, *position, *tag, *string, *int) {
		t.Fatalf("no entity carries the fourth kind")
	})
}

func TestFirstAfterSwapRemove(t *testing.T) {
	w := NewWorld()
	if _, ok := First(w, positionKind); ok {
		t.Fatalf("empty world has no first entity")
	}

	a := spawn(t, w, 0, false)
	spawn(t, w, 1, false)
	c := spawn(t, w, 2, false)

	// Destroying a moves c into the first dense slot.
	DestroyEntity(w, a)
	first, ok := First(w, positionKind)
	if !ok || first != c {
		t.Fatalf("First = %s, want %s", first, c)
	}
	p, _ := Get(w, first, positionKind)
	if p.X != 2 {
		t.Fatalf("First resolved to x=%v, want 2", p.X)
	}
	if got := positions(w); len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Fatalf("positions after swap-remove = %v, want [2 1]", got)
	}
}

func TestClear(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 3; i++ {
		spawn(t, w, float64(i), i%2 == 0)
	}
	Clear(w)
	if len(Entities(w)) != 0 || Count(w, positionKind) != 0 || Count(w, tagKind) != 0 {
		t.Fatalf("Clear left %d entities", len(Entities(w)))
	}

	e := spawn(t, w, 5, false)
	if first, ok := First(w, positionKind); !ok || first != e {
		t.Fatalf("First after Clear = %s, want %s", first, e)
	}
}
