package system

import (
	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
)

// AnimationSystem picks the player's frame: the thrust frame while flying,
// mirrored when heading left.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, p *component.Player, sprite *component.Sprite) {
		sprite.UseAlt = p.FlyCount > 0
		sprite.FacingLeft = p.Direction < 0
	})
}
