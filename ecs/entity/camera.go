package entity

import (
	"fmt"

	"github.com/milk9111/tiledimage/ecs"
	"github.com/milk9111/tiledimage/prefabs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	camera, err := BuildEntity(w, prefabs.CameraPrefab, nil)
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	return camera, nil
}

func NewCameraAt(w *ecs.World, x, y float32) (ecs.Entity, error) {
	camera, err := NewCamera(w)
	if err != nil {
		return 0, err
	}
	if err := SetEntityPosition(w, camera, x, y); err != nil {
		ecs.DestroyEntity(w, camera)
		return 0, fmt.Errorf("camera: override transform: %w", err)
	}
	return camera, nil
}
