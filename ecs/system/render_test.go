package system

import (
	"testing"

	"github.com/milk9111/tiledimage/ecs"
	"github.com/milk9111/tiledimage/ecs/component"
)

func spawnSprite(t *testing.T, w *ecs.World, layer int, z float32, hidden bool) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	ecsAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{Translation: component.Vec3{Z: z}, ScaleX: 1, ScaleY: 1})
	ecsAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{})
	ecsAdd(t, w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer})
	ecsAdd(t, w, e, component.VisibilityComponent.Kind(), &component.Visibility{Hidden: hidden})
	return e
}

func TestDrawOrder(t *testing.T) {
	w := ecs.NewWorld()
	front := spawnSprite(t, w, 1, 0, false)
	backFar := spawnSprite(t, w, -1, -5, false)
	backNear := spawnSprite(t, w, -1, 2, false)
	spawnSprite(t, w, 0, 0, true)
	tieA := spawnSprite(t, w, 0, 0, false)
	tieB := spawnSprite(t, w, 0, 0, false)

	noVisibility := ecs.CreateEntity(w)
	ecsAdd(t, w, noVisibility, component.TransformComponent.Kind(), &component.Transform{Translation: component.Vec3{Z: 9}})
	ecsAdd(t, w, noVisibility, component.SpriteComponent.Kind(), &component.Sprite{})

	got := drawOrder(w, 0)
	want := []ecs.Entity{backFar, backNear, tieA, tieB, noVisibility, front}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestDrawOrderSkipsCamera(t *testing.T) {
	w := ecs.NewWorld()
	cam := spawnSprite(t, w, 0, 0, false)
	ecsAdd(t, w, cam, component.CameraTagComponent.Kind(), &component.CameraTag{})
	ecsAdd(t, w, cam, component.CameraComponent.Kind(), &component.Camera{Zoom: 2})
	other := spawnSprite(t, w, 0, 0, false)

	camEntity, _, _, zoom := cameraView(w)
	if camEntity != cam || zoom != 2 {
		t.Fatalf("expected camera %v at zoom 2, got %v at %v", cam, camEntity, zoom)
	}
	got := drawOrder(w, camEntity)
	if len(got) != 1 || got[0] != other {
		t.Fatalf("expected only %v, got %v", other, got)
	}
}

func TestCameraViewWithoutUniqueCamera(t *testing.T) {
	w := ecs.NewWorld()
	if e, x, y, zoom := cameraView(w); e != 0 || x != 0 || y != 0 || zoom != 1 {
		t.Fatalf("expected default view, got %v %v %v %v", e, x, y, zoom)
	}
}
