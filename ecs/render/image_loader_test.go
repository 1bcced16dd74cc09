package render

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadImageErrors(t *testing.T) {
	if _, err := LoadImage(""); !errors.Is(err, ErrEmptyImageKey) {
		t.Fatalf("expected ErrEmptyImageKey, got %v", err)
	}
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("expected error for missing image")
	}
}

func TestLoadImageRejectsUndecodableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(path); err == nil {
		t.Fatal("expected decode error")
	}
	if GetImage(path) != nil {
		t.Fatal("failed load should not be cached")
	}
}

func TestCandidatePaths(t *testing.T) {
	got := candidatePaths("layers/sky.png")
	want := []string{"layers/sky.png", filepath.Join("assets", "layers/sky.png"), "sky.png"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
}

func TestForgetImageReloadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layer.png")
	writePNG(t, path, 4, 2)

	first, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if cached, _ := LoadImage(path); cached != first {
		t.Fatal("second load should hit the cache")
	}

	writePNG(t, path, 8, 8)
	if cached, _ := LoadImage(path); cached.Bounds().Dx() != 4 {
		t.Fatal("cached image should not change until forgotten")
	}
	ForgetImage(path)
	if GetImage(path) != nil {
		t.Fatal("forgotten image still cached")
	}
	second, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := second.Bounds(); got.Dx() != 8 || got.Dy() != 8 {
		t.Fatalf("expected edited 8x8 image, got %v", got)
	}
}
