package system

import (
	"image/color"
	"testing"

	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
)

func TestBackgroundBlend(t *testing.T) {
	cases := []struct {
		name  string
		score int
		want  color.RGBA
	}{
		{"start", 0, color.RGBA{135, 206, 235, 255}},
		{"halfway", 10, color.RGBA{77, 115, 166, 255}},
		{"dusk", 20, color.RGBA{19, 24, 98, 255}},
		{"clamped", 45, color.RGBA{19, 24, 98, 255}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, spec := newTestWorld(t)
			mustSession(t, w).Platforms = c.score + 2
			NewBackgroundSystem(spec).Update(w)

			e, _ := ecs.First(w, component.BackdropComponent.Kind())
			b, _ := ecs.Get(w, e, component.BackdropComponent.Kind())
			if b.Color != c.want {
				t.Fatalf("backdrop %v, want %v", b.Color, c.want)
			}
		})
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	w, _ := newTestWorld(t)
	p := mustPlayer(t, w)
	p.Transform.X, p.Transform.Y = 300, -90
	NewCameraSystem().Update(w)

	e, _ := ecs.First(w, component.CameraComponent.Kind())
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.X != 178.5 || tr.Y != -212.5 {
		t.Fatalf("camera at (%v,%v), want (178.5,-212.5)", tr.X, tr.Y)
	}
}

func TestAnimationPicksFrame(t *testing.T) {
	w, _ := newTestWorld(t)
	p := mustPlayer(t, w)
	sprite := &component.Sprite{}
	if err := ecs.Add(w, p.Entity, component.SpriteComponent.Kind(), sprite); err != nil {
		t.Fatalf("add sprite: %v", err)
	}
	p.Player.FlyCount = 2
	p.Player.Direction = -1
	NewAnimationSystem().Update(w)
	if !sprite.UseAlt || !sprite.FacingLeft {
		t.Fatalf("unexpected sprite flags %+v", *sprite)
	}

	p.Player.FlyCount = 0
	p.Player.Direction = 1
	NewAnimationSystem().Update(w)
	if sprite.UseAlt || sprite.FacingLeft {
		t.Fatalf("unexpected sprite flags %+v", *sprite)
	}
}
