package render

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skyclimber/assets"
	"github.com/milk9111/skyclimber/prefabs"
)

// Atlas is the sprite sheet plus the named regions the game blits from.
type Atlas struct {
	Image     *ebiten.Image
	Player    image.Rectangle
	PlayerFly image.Rectangle
	Platform  image.Rectangle
	Fuel      image.Rectangle
	Asteroid  image.Rectangle
}

// Region converts a spec rectangle to image space.
func Region(r prefabs.RegionSpec) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// NewAtlasRegions builds an atlas without an image. Builders skip sprites
// when Image is nil.
func NewAtlasRegions(spec *prefabs.GameSpec) *Atlas {
	return &Atlas{
		Player:    Region(spec.Player.Sprite),
		PlayerFly: Region(spec.Player.FlySprite),
		Platform:  Region(spec.Platform.Sprite),
		Fuel:      Region(spec.Fuel.Sprite),
		Asteroid:  Region(spec.Asteroid.Sprite),
	}
}

// LoadAtlas decodes the spec's atlas image and checks every region fits.
func LoadAtlas(spec *prefabs.GameSpec) (*Atlas, error) {
	img, err := LoadImage(spec.Atlas, assets.LoadImage)
	if err != nil {
		return nil, fmt.Errorf("render: load atlas %s: %w", spec.Atlas, err)
	}
	a := NewAtlasRegions(spec)
	a.Image = img
	bounds := img.Bounds()
	for name, r := range map[string]image.Rectangle{
		"player": a.Player, "player_fly": a.PlayerFly, "platform": a.Platform,
		"fuel": a.Fuel, "asteroid": a.Asteroid,
	} {
		if r.Empty() || !r.In(bounds) {
			return nil, fmt.Errorf("render: atlas region %s %v outside %v", name, r, bounds)
		}
	}
	return a, nil
}
