package assets

import (
	"bytes"
	"image"
	"testing"
)

func TestCleanAssetPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"sky.png", "sky.png"},
		{"assets/sky.png", "sky.png"},
		{"assets/layers/sky.png", "layers/sky.png"},
		{"/home/me/game/assets/layers/sky.png", "layers/sky.png"},
		{"/tmp/sky.png", "sky.png"},
	}
	for _, tc := range tests {
		if got := cleanAssetPath(tc.in); got != tc.want {
			t.Errorf("cleanAssetPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEmbeddedLayerImages(t *testing.T) {
	tests := []struct {
		path string
		w, h int
	}{
		{"sky.png", 1600, 400},
		{"assets/mountains.png", 1600, 300},
		{"hills.png", 1600, 200},
		{"ground.png", 1600, 120},
	}
	for _, tc := range tests {
		b, err := LoadFile(tc.path)
		if err != nil {
			t.Fatalf("%s: %v", tc.path, err)
		}
		cfg, format, err := image.DecodeConfig(bytes.NewReader(b))
		if err != nil {
			t.Fatalf("%s: %v", tc.path, err)
		}
		if format != "png" || cfg.Width != tc.w || cfg.Height != tc.h {
			t.Fatalf("%s: got %s %dx%d", tc.path, format, cfg.Width, cfg.Height)
		}
	}
}

func TestLoadImageMissing(t *testing.T) {
	if _, err := LoadImage("does-not-exist.png"); err == nil {
		t.Fatal("expected error for missing asset")
	}
}
