package system

import (
	"github.com/milk9111/tiledimage/ecs"
	"github.com/milk9111/tiledimage/ecs/component"
)

// CorePlugin registers the engine's built-in component types.
type CorePlugin struct{}

func (CorePlugin) Name() string {
	return "core"
}

func (CorePlugin) Build(app *ecs.App) error {
	r := app.Registry
	for _, register := range []func() error{
		func() error { return ecs.Register(r, "transform", component.TransformComponent.Kind()) },
		func() error { return ecs.Register(r, "visibility", component.VisibilityComponent.Kind()) },
		func() error { return ecs.Register(r, "sprite", component.SpriteComponent.Kind()) },
		func() error { return ecs.Register(r, "render_layer", component.RenderLayerComponent.Kind()) },
		func() error { return ecs.Register(r, "camera", component.CameraComponent.Kind()) },
		func() error { return ecs.Register(r, "camera_tag", component.CameraTagComponent.Kind()) },
	} {
		if err := register(); err != nil {
			return err
		}
	}
	return nil
}
