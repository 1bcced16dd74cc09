package system

import (
	"github.com/milk9111/tiledimage/ecs"
	"github.com/milk9111/tiledimage/ecs/component"
)

// ImageParallaxSystem repositions parallax image layers from the camera
// position. It must run after whatever moves the camera in the same frame,
// otherwise layers lag one frame behind.
type ImageParallaxSystem struct {
	lastRun uint64
}

func NewImageParallaxSystem() *ImageParallaxSystem {
	return &ImageParallaxSystem{}
}

// Update rewrites the X/Y translation of every ImageLayer carrying
// ImageParallax. Nothing happens unless exactly one camera's transform
// changed since the previous run.
func (s *ImageParallaxSystem) Update(w *ecs.World) {
	now := w.ChangeTick()
	since := s.lastRun
	s.lastRun = now

	_, camTransform, ok := ecs.Single(w, component.TransformComponent.Kind(),
		ecs.With(component.CameraTagComponent.Kind()),
		ecs.ChangedAfter(component.TransformComponent.Kind(), since),
	)
	if !ok {
		return
	}
	cam := camTransform.Translation.XY()

	ecs.ForEach2(w,
		component.ImageParallaxComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, parallax *component.ImageParallax, transform *component.Transform) {
			pos := parallax.Position(cam)
			transform.Translation.X = pos.X
			transform.Translation.Y = pos.Y
			ecs.MarkChanged(w, e, component.TransformComponent.Kind())
		},
		ecs.With(component.ImageLayerComponent.Kind()),
		ecs.Without(component.CameraTagComponent.Kind()),
	)
}
