package system

import (
	"testing"

	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
	"github.com/milk9111/skyclimber/ecs/entity"
)

func TestLifecycleDeath(t *testing.T) {
	cases := []struct {
		name      string
		setup     func(t *testing.T, w *ecs.World, p playerState)
		wantCause string
	}{
		{
			name:      "alive",
			setup:     func(*testing.T, *ecs.World, playerState) {},
			wantCause: "",
		},
		{
			name:      "at_death_line",
			setup:     func(_ *testing.T, _ *ecs.World, p playerState) { p.Transform.Y = 20 },
			wantCause: "",
		},
		{
			name:      "fell",
			setup:     func(_ *testing.T, _ *ecs.World, p playerState) { p.Transform.Y = 21 },
			wantCause: "fell",
		},
		{
			name: "asteroid",
			setup: func(t *testing.T, w *ecs.World, p playerState) {
				spec := prefabDefaults()
				if _, err := entity.NewAsteroid(w, &spec, nil, p.Transform.X+5, p.Transform.Y+5); err != nil {
					t.Fatalf("NewAsteroid: %v", err)
				}
			},
			wantCause: "asteroid",
		},
		{
			name: "asteroid_touching_only",
			setup: func(t *testing.T, w *ecs.World, p playerState) {
				spec := prefabDefaults()
				if _, err := entity.NewAsteroid(w, &spec, nil, p.Transform.X+13, p.Transform.Y); err != nil {
					t.Fatalf("NewAsteroid: %v", err)
				}
			},
			wantCause: "",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, spec := newTestWorld(t)
			p := mustPlayer(t, w)
			s := mustSession(t, w)
			s.Platforms = 6
			s.BestScore = 2
			c.setup(t, w, p)

			simulate, err := NewLifecycleSystem(spec, nil, stubRandom{frac: 0.5}).Step(w)
			if err != nil {
				t.Fatalf("Step: %v", err)
			}
			if c.wantCause == "" {
				if !simulate || s.State != component.SessionPlaying {
					t.Fatalf("expected to keep playing, state %v", s.State)
				}
				return
			}
			if simulate || s.State != component.SessionDead {
				t.Fatalf("expected death, state %v simulate %v", s.State, simulate)
			}
			if s.BestScore != 4 {
				t.Fatalf("best=%d, want 4", s.BestScore)
			}
			bd, _ := ecs.First(w, component.BackdropComponent.Kind())
			b, _ := ecs.Get(w, bd, component.BackdropComponent.Kind())
			if b.Color != spec.Backdrop.Dead.RGBA {
				t.Fatalf("backdrop %v, want gray", b.Color)
			}
			events := w.Events().Drain()
			if len(events) != 1 || events[0].Kind != ecs.EventPlayerDied || events[0].Data["cause"] != c.wantCause {
				t.Fatalf("unexpected events %+v", events)
			}
		})
	}
}

func TestLifecycleFrozenUntilRestart(t *testing.T) {
	w, spec := newTestWorld(t)
	lifecycle := NewLifecycleSystem(spec, nil, stubRandom{frac: 0.5})
	p := mustPlayer(t, w)
	s := mustSession(t, w)
	s.Platforms = 9
	s.FuelChance = 0.9
	p.Transform.Y = 40

	if simulate, _ := lifecycle.Step(w); simulate {
		t.Fatalf("death tick must not simulate")
	}
	for i := 0; i < 3; i++ {
		if simulate, _ := lifecycle.Step(w); simulate {
			t.Fatalf("dead session must not simulate")
		}
	}
	if !Dead(w) {
		t.Fatalf("expected dead")
	}

	p.Input.JumpPressed = true
	simulate, err := lifecycle.Step(w)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if simulate {
		t.Fatalf("restart tick must not simulate")
	}
	if Dead(w) {
		t.Fatalf("expected playing after restart")
	}

	s = mustSession(t, w)
	p = mustPlayer(t, w)
	if s.BestScore != 7 || s.FuelChance != 0.9 || s.Platforms != 2 || s.AsteroidCount != 0 {
		t.Fatalf("unexpected session %+v", *s)
	}
	if p.Transform.X != 0 || p.Transform.Y != -60 {
		t.Fatalf("player at (%v,%v)", p.Transform.X, p.Transform.Y)
	}
	if g := mustGauge(t, w); g.Level != 0.7 {
		t.Fatalf("gauge %v, want 0.7", g.Level)
	}
	score, best := Score(w)
	if score != 0 || best != 7 {
		t.Fatalf("Score = %d, %d", score, best)
	}
}

func TestLifecycleRestartNeedsFreshPress(t *testing.T) {
	w, spec := newTestWorld(t)
	lifecycle := NewLifecycleSystem(spec, nil, stubRandom{frac: 0.5})
	p := mustPlayer(t, w)
	p.Transform.Y = 40
	p.Input.Jump = true
	lifecycle.Step(w)
	lifecycle.Step(w)
	if !Dead(w) {
		t.Fatalf("holding jump must not restart")
	}
}
