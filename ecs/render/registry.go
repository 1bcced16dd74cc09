package render

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	mu     sync.RWMutex
	images = map[string]*ebiten.Image{}
)

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	images[key] = img
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	mu.RLock()
	defer mu.RUnlock()
	return images[key]
}

// ForgetImage drops key from the cache so the next load re-reads it.
func ForgetImage(key string) {
	mu.Lock()
	defer mu.Unlock()
	delete(images, key)
}
