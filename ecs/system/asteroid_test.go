package system

import (
	"testing"

	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
	"github.com/milk9111/skyclimber/ecs/entity"
)

func TestAsteroidCadence(t *testing.T) {
	cases := []struct {
		name      string
		platforms int
		count     int
		want      bool
	}{
		{"first_interval", 2, 199, true},
		{"between", 2, 200, false},
		{"shorter_interval", 5, 49, true},
		{"shorter_interval_miss", 5, 50, false},
		{"zero_divisor", 1, 199, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, spec := newTestWorld(t)
			s := mustSession(t, w)
			s.Platforms = c.platforms
			s.AsteroidCount = c.count

			NewAsteroidSystem(spec).Update(w)
			NewAsteroidSpawnSystem(spec, nil, stubRandom{}, NewStandardRules(spec)).Update(w)

			got := ecs.Count(w, component.AsteroidComponent.Kind()) == 1
			if got != c.want {
				t.Fatalf("spawned = %v, want %v (count %d)", got, c.want, s.AsteroidCount)
			}
		})
	}
}

func TestAsteroidSpawnPosition(t *testing.T) {
	w, spec := newTestWorld(t)
	mustSession(t, w).AsteroidCount = 200
	NewAsteroidSpawnSystem(spec, nil, stubRandom{}, NewStandardRules(spec)).Update(w)

	e, ok := ecs.First(w, component.AsteroidComponent.Kind())
	if !ok {
		t.Fatalf("asteroid missing")
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.X != -256 || tr.Y != -188 {
		t.Fatalf("asteroid at (%v,%v), want (-256,-188)", tr.X, tr.Y)
	}
}

func TestAsteroidMoveAndEvict(t *testing.T) {
	cases := []struct {
		name  string
		y     float64
		evict bool
		alive bool
	}{
		{"moves", 0, true, true},
		{"near_limit_kept", 270, true, true},
		{"past_limit_evicted", 275, true, false},
		{"eviction_off", 275, false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, spec := newTestWorld(t)
			spec.Asteroid.Evict = c.evict
			a, err := entity.NewAsteroid(w, spec, nil, 5, c.y)
			if err != nil {
				t.Fatalf("NewAsteroid: %v", err)
			}
			NewAsteroidSystem(spec).Update(w)
			if ecs.IsAlive(w, a) != c.alive {
				t.Fatalf("alive = %v, want %v", ecs.IsAlive(w, a), c.alive)
			}
			if !c.alive {
				return
			}
			tr, _ := ecs.Get(w, a, component.TransformComponent.Kind())
			if tr.X != 7 || tr.Y != c.y+2 {
				t.Fatalf("asteroid at (%v,%v), want (7,%v)", tr.X, tr.Y, c.y+2)
			}
		})
	}
}

func TestAsteroidEvictsSeveralInOnePass(t *testing.T) {
	w, spec := newTestWorld(t)
	var rocks []ecs.Entity
	for _, y := range []float64{275, 0, 280} {
		a, err := entity.NewAsteroid(w, spec, nil, 5, y)
		if err != nil {
			t.Fatalf("NewAsteroid: %v", err)
		}
		rocks = append(rocks, a)
	}

	NewAsteroidSystem(spec).Update(w)

	if ecs.IsAlive(w, rocks[0]) || ecs.IsAlive(w, rocks[2]) {
		t.Fatalf("asteroids past the limit survived")
	}
	if !ecs.IsAlive(w, rocks[1]) {
		t.Fatalf("asteroid in view was evicted")
	}
	if n := ecs.Count(w, component.AsteroidComponent.Kind()); n != 1 {
		t.Fatalf("%d asteroids left, want 1", n)
	}
	tr, _ := ecs.Get(w, rocks[1], component.TransformComponent.Kind())
	if tr.Y != 2 {
		t.Fatalf("kept asteroid at y=%v, want 2", tr.Y)
	}
}
