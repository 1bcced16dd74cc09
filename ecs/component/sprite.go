package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is the renderable image of an entity. A nil Image is a valid,
// empty sprite that the renderer skips.
type Sprite struct {
	Image     *ebiten.Image   `yaml:"-"`
	Path      string          `yaml:"path,omitempty"`
	Source    image.Rectangle `yaml:"-"`
	UseSource bool            `yaml:"use_source"`
	OriginX   float32         `yaml:"origin_x"`
	OriginY   float32         `yaml:"origin_y"`
}

var SpriteComponent = NewComponent[Sprite]()
