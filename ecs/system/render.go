package system

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
	"github.com/milk9111/skyclimber/ecs/render"
	"github.com/milk9111/skyclimber/prefabs"
	"golang.org/x/image/colornames"
)

// RenderSystem draws the world through the camera. It has no Update work.
type RenderSystem struct {
	spec    *prefabs.GameSpec
	palette render.Palette
}

func NewRenderSystem(spec *prefabs.GameSpec) *RenderSystem {
	return &RenderSystem{spec: spec, palette: render.NewPalette(spec.Palette)}
}

func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	p, ok := lookupPlayer(w)
	if !ok {
		return
	}
	session, ok := lookupSession(w)
	if !ok {
		return
	}

	var camX, camY float64
	if cam, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		if t, ok := ecs.Get(w, cam, component.TransformComponent.Kind()); ok {
			camX, camY = t.X, t.Y
		}
	}
	c := render.NewCanvas(screen, camX, camY, r.palette)

	if bd, ok := ecs.First(w, component.BackdropComponent.Kind()); ok {
		if b, ok := ecs.Get(w, bd, component.BackdropComponent.Kind()); ok {
			c.Clear(b.Color)
		}
	}

	hudDrawn := false
	for _, item := range drawOrder(w) {
		if item.layer > component.LayerPickup && !hudDrawn {
			r.drawHUD(w, c, p, camX, camY, session)
			hudDrawn = true
		}
		s := item.sprite
		src := s.Source
		if s.UseAlt && !s.Alt.Empty() {
			src = s.Alt
		}
		c.Blit(s.Image, src, item.x, item.y, s.FacingLeft)
	}
	if !hudDrawn {
		r.drawHUD(w, c, p, camX, camY, session)
	}

	label := r.palette.Color(r.spec.Player.LabelColor)
	c.Text(-100, -50, "Arrow Keys to move", label)
	c.Text(-100, -60, "Space to jump", label)
	c.Text(-100, -70, fmt.Sprintf("Best score : %d", session.BestScore), label)

	if session.State == component.SessionDead {
		clr := r.palette.Color(r.spec.Player.TextColor)
		c.Text(p.Transform.X-10, p.Transform.Y, "You dead", clr)
		c.Text(p.Transform.X-35, p.Transform.Y+10, "Press [Space] to restart", clr)
	}
}

// drawHUD draws the fuel gauge, the guide line to the newest platform and
// the score.
func (r *RenderSystem) drawHUD(w *ecs.World, c *render.Canvas, p playerState, camX, camY float64, session *component.Session) {
	if g, ok := lookupGauge(w); ok {
		x := p.Transform.X + r.spec.Gauge.OffsetX
		y := p.Transform.Y + r.spec.Gauge.OffsetY
		inner := g.Height - 2
		c.Rect(x, y, g.Width, g.Height, r.palette.Color(g.BorderColor))
		c.Rect(x+1, y+1, g.Width-2, inner, colornames.Black)
		c.Rect(x+1, y+1+inner*(1-g.Level), g.Width-2, inner*g.Level, r.palette.Color(g.FillColor))
	}

	if prev, last, ok := lastTwoPlatforms(w); ok {
		c.Line(prev.x+prev.w, prev.y, last.x, last.y, r.palette.Color(r.spec.Platform.LineColor))
	}

	c.Text(camX+10, camY+10, fmt.Sprintf("Score : %d", session.Score()), r.palette.Color(r.spec.Player.TextColor))
}

type drawItem struct {
	layer  int
	x, y   float64
	sprite *component.Sprite
}

// drawOrder returns every sprite sorted by render layer. Entities within a
// layer keep store order.
func drawOrder(w *ecs.World) []drawItem {
	var items []drawItem
	ecs.ForEach3(w, component.RenderLayerComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind(),
		func(_ ecs.Entity, l *component.RenderLayer, t *component.Transform, s *component.Sprite) {
			items = append(items, drawItem{layer: l.Index, x: t.X, y: t.Y, sprite: s})
		})
	sort.SliceStable(items, func(i, j int) bool { return items[i].layer < items[j].layer })
	return items
}

type platformBox struct {
	index   int
	x, y, w float64
}

func lastTwoPlatforms(w *ecs.World) (platformBox, platformBox, bool) {
	var boxes []platformBox
	ecs.ForEach3(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(_ ecs.Entity, pl *component.Platform, t *component.Transform, c *component.Collider) {
			boxes = append(boxes, platformBox{index: pl.Index, x: t.X, y: t.Y, w: c.Width})
		})
	if len(boxes) < 2 {
		return platformBox{}, platformBox{}, false
	}
	sort.Slice(boxes, func(i, j int) bool { return boxes[i].index < boxes[j].index })
	return boxes[len(boxes)-2], boxes[len(boxes)-1], true
}
