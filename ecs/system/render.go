package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tiledimage/ecs"
	"github.com/milk9111/tiledimage/ecs/component"
)

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// cameraView returns the single camera's top-left and zoom, or the origin
// at zoom 1 when there is no unique camera.
func cameraView(w *ecs.World) (ecs.Entity, float32, float32, float32) {
	cam, camTransform, ok := ecs.Single(w, component.TransformComponent.Kind(), ecs.With(component.CameraTagComponent.Kind()))
	if !ok {
		return 0, 0, 0, 1
	}
	zoom := float32(1)
	if camComp, ok := ecs.Get(w, cam, component.CameraComponent.Kind()); ok && camComp.Zoom > 0 {
		zoom = camComp.Zoom
	}
	return cam, camTransform.Translation.X, camTransform.Translation.Y, zoom
}

// drawOrder returns the visible sprite entities, back to front: render
// layer index, then translation Z, then entity id.
func drawOrder(w *ecs.World, skip ecs.Entity) []ecs.Entity {
	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	visible := entities[:0]
	for _, e := range entities {
		if e == skip {
			continue
		}
		if v, ok := ecs.Get(w, e, component.VisibilityComponent.Kind()); ok && !v.Visible() {
			continue
		}
		visible = append(visible, e)
	}

	layerOf := func(e ecs.Entity) int {
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return layer.Index
		}
		return 0
	}
	depthOf := func(e ecs.Entity) float32 {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			return t.Translation.Z
		}
		return 0
	}

	sort.SliceStable(visible, func(i, j int) bool {
		li, lj := layerOf(visible[i]), layerOf(visible[j])
		if li != lj {
			return li < lj
		}
		zi, zj := depthOf(visible[i]), depthOf(visible[j])
		if zi != zj {
			return zi < zj
		}
		return uint64(visible[i]) < uint64(visible[j])
	})
	return visible
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	camEntity, camX, camY, zoom := cameraView(w)

	for _, e := range drawOrder(w, camEntity) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil {
			continue
		}

		img := s.Image
		if s.UseSource {
			sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image)
			if ok {
				img = sub
			}
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(-s.OriginX), float64(-s.OriginY))

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}

		op.GeoM.Scale(float64(sx), float64(sy))
		op.GeoM.Rotate(float64(t.Rotation))
		op.GeoM.Scale(float64(zoom), float64(zoom))
		op.GeoM.Translate(float64((t.Translation.X-camX)*zoom), float64((t.Translation.Y-camY)*zoom))

		screen.DrawImage(img, op)
	}
}
