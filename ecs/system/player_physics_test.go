package system

import (
	"testing"

	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
)

func TestPlayerPhysics(t *testing.T) {
	cases := []struct {
		name   string
		setup  func(p playerState)
		checks func(t *testing.T, p playerState)
	}{
		{
			name:  "free_fall_ramps_gravity",
			setup: func(p playerState) { p.Player.FallCount = 1 },
			checks: func(t *testing.T, p playerState) {
				if !approx(p.Velocity.Y, 0.00625) || p.Player.FallCount != 2 || p.Transform.Y != -60 {
					t.Fatalf("vy=%v fall=%d y=%v", p.Velocity.Y, p.Player.FallCount, p.Transform.Y)
				}
			},
		},
		{
			name:  "gravity_step_capped",
			setup: func(p playerState) { p.Player.FallCount = 1000 },
			checks: func(t *testing.T, p playerState) {
				if p.Velocity.Y != 1 || p.Transform.Y != -59 {
					t.Fatalf("vy=%v y=%v, want 1 and -59", p.Velocity.Y, p.Transform.Y)
				}
			},
		},
		{
			name: "lands_on_platform",
			setup: func(p playerState) {
				p.Transform.X, p.Transform.Y = 10, -12
				p.Velocity.Y = 2
				p.Player.FallCount = 0
			},
			checks: func(t *testing.T, p playerState) {
				if p.Transform.Y != -11 || p.Velocity.Y != 0 || p.Player.FallCount != 0 {
					t.Fatalf("y=%v vy=%v fall=%d, want -11 0 0", p.Transform.Y, p.Velocity.Y, p.Player.FallCount)
				}
			},
		},
		{
			name: "bumps_head_under_platform",
			setup: func(p playerState) {
				p.Transform.X, p.Transform.Y = 10, 2
				p.Velocity.Y = -2
				p.Player.FlyCount = 5
			},
			checks: func(t *testing.T, p playerState) {
				if p.Transform.Y != 3 || p.Velocity.Y != 0 || p.Player.FlyCount != 0 {
					t.Fatalf("y=%v vy=%v fly=%d, want 3 0 0", p.Transform.Y, p.Velocity.Y, p.Player.FlyCount)
				}
			},
		},
		{
			name: "blocked_sideways",
			setup: func(p playerState) {
				p.Transform.X, p.Transform.Y = 70, -5
				p.Velocity.X = -2
			},
			checks: func(t *testing.T, p playerState) {
				if p.Transform.X != 70 {
					t.Fatalf("x=%v, want 70", p.Transform.X)
				}
			},
		},
		{
			name: "rounds_half_to_even",
			setup: func(p playerState) {
				p.Transform.X, p.Transform.Y = 100, -200
				p.Velocity.X = -2.5
				p.Velocity.Y = 0.5
			},
			checks: func(t *testing.T, p playerState) {
				if p.Transform.X != 98 || p.Transform.Y != -200 || p.Velocity.X != 0 {
					t.Fatalf("x=%v y=%v vx=%v, want 98 -200 0", p.Transform.X, p.Transform.Y, p.Velocity.X)
				}
			},
		},
		{
			name: "release_resets_fly_count",
			setup: func(p playerState) {
				p.Player.FlyCount = 4
				p.Input.JumpReleased = true
			},
			checks: func(t *testing.T, p playerState) {
				if p.Player.FlyCount != 0 {
					t.Fatalf("fly=%d, want 0", p.Player.FlyCount)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, spec := newTestWorld(t)
			p := mustPlayer(t, w)
			c.setup(p)
			NewPlayerPhysicsSystem(spec).Update(w)
			c.checks(t, p)
		})
	}
}

func TestNearestPlatformTieGoesToLowestIndex(t *testing.T) {
	w := ecs.NewWorld()
	for _, pl := range []struct {
		index int
		x     float64
	}{{1, 10}, {0, -10}, {2, 30}} {
		e := ecs.CreateEntity(w)
		_ = ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{Index: pl.index})
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pl.x})
		_ = ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Width: 64, Height: 3})
	}

	got, _, ok := nearestPlatform(w, &component.Transform{})
	if !ok {
		t.Fatalf("expected a platform")
	}
	if got.X != -10 {
		t.Fatalf("nearest x=%v, want -10", got.X)
	}
}
