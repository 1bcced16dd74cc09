package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tiledimage/assets"
)

var ErrEmptyImageKey = errors.New("render: empty image key")

// LoadImage loads an image from the filesystem or the embedded assets and
// caches it by key. On-disk copies win so edited art shows up after
// ForgetImage.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, ErrEmptyImageKey
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	img, err := loadImageFromFSOrAssets(key)
	if err != nil {
		return nil, err
	}
	RegisterImage(key, img)
	return img, nil
}

// candidatePaths lists the on-disk locations tried for path, in order.
func candidatePaths(path string) []string {
	return []string{path, filepath.Join("assets", path), filepath.Base(path)}
}

func loadImageFromFSOrAssets(path string) (*ebiten.Image, error) {
	for _, p := range candidatePaths(path) {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		im, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("render: decode %s: %w", p, err)
		}
		return ebiten.NewImageFromImage(im), nil
	}
	if img, err := assets.LoadImage(path); err == nil {
		return img, nil
	}
	return nil, fmt.Errorf("render: image %s not found", path)
}
