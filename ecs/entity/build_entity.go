package entity

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tiledimage/ecs"
	"github.com/milk9111/tiledimage/ecs/component"
	"github.com/milk9111/tiledimage/prefabs"
)

// ImageLoader resolves a sprite image path. Decoding is up to the loader.
type ImageLoader func(path string) (*ebiten.Image, error)

type buildContext struct {
	PrefabPath string
	Images     ImageLoader
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"camera_tag":     addCameraTag,
	"camera":         addCamera,
	"transform":      addTransform,
	"sprite":         addSprite,
	"visibility":     addVisibility,
	"render_layer":   addRenderLayer,
	"image_layer":    addImageLayer,
	"image_parallax": addImageParallax,
}

// image_layer fills in whatever transform/sprite/visibility the prefab left
// out, and image_parallax anchors on the transform, so both come last.
var componentBuildOrder = []string{
	"camera_tag",
	"camera",
	"transform",
	"sprite",
	"visibility",
	"render_layer",
	"image_layer",
	"image_parallax",
}

// BuildEntity spawns an entity from a prefab file.
func BuildEntity(w *ecs.World, prefabPath string, images ImageLoader) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntityFromSpec(w, spec, &buildContext{PrefabPath: prefabPath, Images: images})
}

// BuildEntityFromSpec spawns an entity from an already decoded prefab. On
// any component error the partially built entity is destroyed.
func BuildEntityFromSpec(w *ecs.World, spec prefabs.EntityBuildSpec, ctx *buildContext) (ecs.Entity, error) {
	if ctx == nil {
		ctx = &buildContext{PrefabPath: spec.Name}
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", ctx.PrefabPath)
	}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		if _, ok := componentRegistry[k]; !ok {
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", ctx.PrefabPath, k)
		}
		remaining[k] = v
	}

	e := ecs.CreateEntity(w)
	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", ctx.PrefabPath, name, err)
		}
		delete(remaining, name)
	}

	names := make([]string, 0, len(remaining))
	for name := range remaining {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := componentRegistry[name](w, e, remaining[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", ctx.PrefabPath, name, err)
		}
	}

	return e, nil
}

// SetEntityPosition moves e, creating a default transform if needed. Z is
// kept.
func SetEntityPosition(w *ecs.World, e ecs.Entity, x, y float32) error {
	t, ok := ecs.GetMut(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		def := component.DefaultTransform()
		t = &def
	}
	t.Translation.X = x
	t.Translation.Y = y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom <= 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{Zoom: spec.Zoom})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Translation: component.Vec3{X: spec.X, Y: spec.Y, Z: spec.Z},
		ScaleX:      spec.ScaleX,
		ScaleY:      spec.ScaleY,
		Rotation:    spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	sprite := component.Sprite{Path: spec.Image}
	if spec.Image != "" && ctx != nil && ctx.Images != nil {
		img, err := ctx.Images(spec.Image)
		if err != nil {
			return fmt.Errorf("load image %q: %w", spec.Image, err)
		}
		sprite.Image = img
	}

	sprite.UseSource = spec.UseSource
	sprite.OriginX = spec.OriginX
	sprite.OriginY = spec.OriginY
	if sprite.OriginX == 0 && sprite.OriginY == 0 && spec.CenterOriginIfZero && sprite.Image != nil {
		w, h := sprite.Image.Bounds().Dx(), sprite.Image.Bounds().Dy()
		sprite.OriginX = float32(w) / 2
		sprite.OriginY = float32(h) / 2
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type visibilitySpec = prefabs.VisibilityComponentSpec

func addVisibility(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[visibilitySpec](raw)
	if err != nil {
		return fmt.Errorf("decode visibility spec: %w", err)
	}
	return ecs.Add(w, e, component.VisibilityComponent.Kind(), &component.Visibility{Hidden: spec.Hidden})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

func addImageLayer(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return RequireImageLayer(w, e)
}

type imageParallaxSpec = prefabs.ImageParallaxComponentSpec

func addImageParallax(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[imageParallaxSpec](raw)
	if err != nil {
		return fmt.Errorf("decode image parallax spec: %w", err)
	}
	var base component.Vec2
	if spec.BasePosition != nil {
		base = component.Vec2{X: spec.BasePosition.X, Y: spec.BasePosition.Y}
	} else if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		base = t.Translation.XY()
	}
	return ecs.Add(w, e, component.ImageParallaxComponent.Kind(), &component.ImageParallax{
		ParallaxX:    spec.ParallaxX,
		ParallaxY:    spec.ParallaxY,
		BasePosition: base,
	})
}
