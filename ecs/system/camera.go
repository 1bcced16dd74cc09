package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tiledimage/ecs"
	"github.com/milk9111/tiledimage/ecs/component"
)

const defaultPanSpeed = 4

// PanInput reports the camera direction for this frame. Each axis is
// expected in [-1, 1].
type PanInput func() (dx, dy float32)

type CameraSystem struct {
	camEntity ecs.Entity
	Speed     float32
	Input     PanInput
}

func NewCameraSystem(input PanInput) *CameraSystem {
	if input == nil {
		input = KeyboardPan
	}
	return &CameraSystem{Speed: defaultPanSpeed, Input: input}
}

// Update moves the camera by Input scaled by Speed. The camera transform
// is only written when there is movement, so idle frames do not count as
// camera changes.
func (cs *CameraSystem) Update(w *ecs.World) {
	if !cs.camEntity.Valid() || !ecs.IsAlive(w, cs.camEntity) {
		camEntity, ok := w.First(component.CameraTagComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	if cs.Input == nil {
		return
	}
	dx, dy := cs.Input()
	if dx == 0 && dy == 0 {
		return
	}

	camTransform, ok := ecs.GetMut(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camTransform.Translation.X += dx * cs.Speed
	camTransform.Translation.Y += dy * cs.Speed
}

// KeyboardPan reads the arrow keys and WASD.
func KeyboardPan() (float32, float32) {
	var dx, dy float32
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	return dx, dy
}
