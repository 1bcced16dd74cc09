package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

type Level struct {
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	ImageLayers []ImageLayer `json:"image_layers,omitempty"`
}

// ImageLayer is an authored background or foreground image. Parallax
// factors default to 1 (no parallax) when omitted.
type ImageLayer struct {
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	X           float32  `json:"x"`
	Y           float32  `json:"y"`
	Z           float32  `json:"z,omitempty"`
	ParallaxX   *float32 `json:"parallax_x,omitempty"`
	ParallaxY   *float32 `json:"parallax_y,omitempty"`
	Hidden      bool     `json:"hidden,omitempty"`
	RenderLayer *int     `json:"render_layer,omitempty"`
}

// HasParallax reports whether either factor was authored.
func (l ImageLayer) HasParallax() bool {
	return l.ParallaxX != nil || l.ParallaxY != nil
}

// Factors returns the parallax factors with unset ones defaulted to 1.
func (l ImageLayer) Factors() (float32, float32) {
	x, y := float32(1), float32(1)
	if l.ParallaxX != nil {
		x = *l.ParallaxX
	}
	if l.ParallaxY != nil {
		y = *l.ParallaxY
	}
	return x, y
}

// Load reads a level by name from fsys. The .json extension is optional.
func Load(fsys fs.FS, name string) (*Level, error) {
	clean := strings.TrimPrefix(filepath.ToSlash(name), "levels/")
	if filepath.Ext(clean) == "" {
		clean += ".json"
	}
	data, err := fs.ReadFile(fsys, clean)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data)
}

// LoadLevelFromFS reads a level from the embedded levels.
func LoadLevelFromFS(name string) (*Level, error) {
	return Load(LevelsFS, name)
}

// LoadLevel prefers an on-disk copy under levels/ so edits are picked up
// without rebuilding.
func LoadLevel(name string) (*Level, error) {
	lvl, err := Load(os.DirFS("levels"), name)
	if err == nil {
		return lvl, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return LoadLevelFromFS(name)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	return &lvl, nil
}
