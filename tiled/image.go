// Package tiled wires tile-map image layers into an ecs.App.
package tiled

import (
	"github.com/milk9111/tiledimage/ecs"
	"github.com/milk9111/tiledimage/ecs/component"
	"github.com/milk9111/tiledimage/ecs/system"
)

const (
	ImageLayerTypeName    = "tiled_image"
	ImageParallaxTypeName = "tiled_image_parallax"
)

// ImagePlugin registers the image layer components and schedules parallax
// in the Update stage. Add it after any plugin that moves the camera
// during Update.
type ImagePlugin struct{}

func (ImagePlugin) Name() string {
	return "tiled_image"
}

func (ImagePlugin) Build(app *ecs.App) error {
	if err := ecs.Register(app.Registry, ImageLayerTypeName, component.ImageLayerComponent.Kind()); err != nil {
		return err
	}
	if err := ecs.Register(app.Registry, ImageParallaxTypeName, component.ImageParallaxComponent.Kind()); err != nil {
		return err
	}
	app.AddSystem(ecs.Update, system.NewImageParallaxSystem())
	return nil
}
