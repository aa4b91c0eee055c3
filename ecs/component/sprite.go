package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a region of an atlas image. Alt, when set, replaces Source while
// the owner is airborne under thrust.
type Sprite struct {
	Image      *ebiten.Image
	Source     image.Rectangle
	Alt        image.Rectangle
	UseAlt     bool
	FacingLeft bool
}

var SpriteComponent = NewComponent[Sprite]()
