package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tiledimage/ecs"
	"github.com/milk9111/tiledimage/ecs/component"
	"github.com/milk9111/tiledimage/levels"
)

// LoadImageLayers spawns one image layer per entry of lvl, caching images
// by path. If any layer fails, the layers spawned so far are destroyed.
// On success the camera transform, if there is exactly one camera, is
// marked changed.
func LoadImageLayers(world *ecs.World, lvl *levels.Level, images ImageLoader) ([]ecs.Entity, error) {
	if lvl == nil {
		return nil, nil
	}
	imgs := make(map[string]*ebiten.Image)

	spawned := make([]ecs.Entity, 0, len(lvl.ImageLayers))
	fail := func(err error) ([]ecs.Entity, error) {
		for _, e := range spawned {
			ecs.DestroyEntity(world, e)
		}
		return nil, err
	}

	for i, layer := range lvl.ImageLayers {
		var img *ebiten.Image
		if layer.Image != "" && images != nil {
			cached, ok := imgs[layer.Image]
			if !ok {
				var err error
				cached, err = images(layer.Image)
				if err != nil {
					return fail(fmt.Errorf("image layer %d %q: load %q: %w", i, layer.Name, layer.Image, err))
				}
				imgs[layer.Image] = cached
			}
			img = cached
		}

		spec := ImageLayerSpec{
			Name:        layer.Name,
			Image:       img,
			Path:        layer.Image,
			Position:    component.Vec2{X: layer.X, Y: layer.Y},
			Z:           layer.Z,
			Hidden:      layer.Hidden,
			RenderLayer: layer.RenderLayer,
		}
		if layer.HasParallax() {
			x, y := layer.Factors()
			spec.Parallax = &component.Vec2{X: x, Y: y}
		}

		e, err := NewImageLayer(world, spec)
		if err != nil {
			return fail(err)
		}
		spawned = append(spawned, e)
	}

	// New layers start at their base position. Marking the camera changed
	// lets the next parallax pass place them while the camera is idle.
	if len(spawned) > 0 {
		if cam, _, ok := ecs.Single(world, component.TransformComponent.Kind(), ecs.With(component.CameraTagComponent.Kind())); ok {
			ecs.MarkChanged(world, cam, component.TransformComponent.Kind())
		}
	}

	return spawned, nil
}
