package component

// ImageLayer marks the entity holding a map image layer's sprite. Entities
// carrying it always also carry Visibility, Transform and Sprite; use
// entity.NewImageLayer or entity.RequireImageLayer to attach it.
type ImageLayer struct{}

var ImageLayerComponent = NewComponent[ImageLayer]()

// ImageParallax scrolls an image layer at a fraction of camera movement.
//
// A factor of 1 keeps the layer at BasePosition in world space; 0 moves it
// with the camera so it appears fixed on screen. Factors are not
// validated: values outside [0, 1] exaggerate or invert the scroll.
type ImageParallax struct {
	ParallaxX float32 `yaml:"parallax_x"`
	ParallaxY float32 `yaml:"parallax_y"`
	// BasePosition is the layer position with no camera offset. It is set
	// when the layer is built and never rewritten.
	BasePosition Vec2 `yaml:"base_position"`
}

// Offset is the displacement of the layer from BasePosition for a camera
// at cam.
func (p ImageParallax) Offset(cam Vec2) Vec2 {
	return Vec2{
		X: cam.X * (1 - p.ParallaxX),
		Y: cam.Y * (1 - p.ParallaxY),
	}
}

// Position is BasePosition shifted by Offset(cam).
func (p ImageParallax) Position(cam Vec2) Vec2 {
	return p.BasePosition.Add(p.Offset(cam))
}

var ImageParallaxComponent = NewComponent[ImageParallax]()
