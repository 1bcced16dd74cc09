package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tiledimage/ecs"
	"github.com/milk9111/tiledimage/ecs/component"
	"github.com/milk9111/tiledimage/prefabs"
)

// ImageLayerSpec describes one map image layer as authored.
type ImageLayerSpec struct {
	Name     string
	Image    *ebiten.Image
	Path     string
	Position component.Vec2
	Z        float32
	Hidden   bool
	// RenderLayer overrides the prefab's render layer index when set.
	RenderLayer *int
	// Parallax holds the X/Y scroll factors. Nil means the layer is fixed in
	// world space and gets no ImageParallax component.
	Parallax *component.Vec2
}

// NewImageLayer spawns an image layer from the image_layer prefab and spec.
// The entity always ends up with ImageLayer, Visibility, Transform and
// Sprite; ImageParallax is attached, anchored at spec.Position, when the
// spec carries parallax factors.
func NewImageLayer(w *ecs.World, spec ImageLayerSpec) (ecs.Entity, error) {
	prefab, err := prefabs.LoadEntityBuildSpec(prefabs.ImageLayerPrefab)
	if err != nil {
		return 0, fmt.Errorf("image layer: load spec: %w", err)
	}
	e, err := BuildEntityFromSpec(w, prefab, &buildContext{PrefabPath: prefabs.ImageLayerPrefab})
	if err != nil {
		return 0, fmt.Errorf("image layer %q: %w", spec.Name, err)
	}

	fail := func(step string, err error) (ecs.Entity, error) {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("image layer %q: %s: %w", spec.Name, step, err)
	}

	transform, _ := ecs.GetMut(w, e, component.TransformComponent.Kind())
	transform.Translation = component.Vec3{X: spec.Position.X, Y: spec.Position.Y, Z: spec.Z}

	sprite, _ := ecs.GetMut(w, e, component.SpriteComponent.Kind())
	sprite.Image = spec.Image
	sprite.Path = spec.Path

	visibility, _ := ecs.GetMut(w, e, component.VisibilityComponent.Kind())
	visibility.Hidden = spec.Hidden

	if spec.RenderLayer != nil {
		if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: *spec.RenderLayer}); err != nil {
			return fail("add render layer", err)
		}
	}

	if spec.Parallax != nil {
		if err := ecs.Add(w, e, component.ImageParallaxComponent.Kind(), &component.ImageParallax{
			ParallaxX:    spec.Parallax.X,
			ParallaxY:    spec.Parallax.Y,
			BasePosition: spec.Position,
		}); err != nil {
			return fail("add parallax", err)
		}
	}

	return e, nil
}

// RequireImageLayer marks e as an image layer, first inserting a default
// Visibility, Transform and Sprite for any of them e lacks. Components
// already present are left alone.
func RequireImageLayer(w *ecs.World, e ecs.Entity) error {
	if !ecs.IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	if !ecs.Has(w, e, component.VisibilityComponent.Kind()) {
		if err := ecs.Add(w, e, component.VisibilityComponent.Kind(), &component.Visibility{}); err != nil {
			return err
		}
	}
	if !ecs.Has(w, e, component.TransformComponent.Kind()) {
		t := component.DefaultTransform()
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &t); err != nil {
			return err
		}
	}
	if !ecs.Has(w, e, component.SpriteComponent.Kind()) {
		if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{}); err != nil {
			return err
		}
	}
	return ecs.Add(w, e, component.ImageLayerComponent.Kind(), &component.ImageLayer{})
}

// UnloadImageLayers destroys every image layer entity and reports how many
// were removed.
func UnloadImageLayers(w *ecs.World) int {
	layers := w.Query(component.ImageLayerComponent.Kind())
	removed := 0
	for _, e := range layers {
		if ecs.DestroyEntity(w, e) {
			removed++
		}
	}
	return removed
}
