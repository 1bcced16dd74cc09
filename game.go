package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/tiledimage/ecs"
	"github.com/milk9111/tiledimage/ecs/entity"
	"github.com/milk9111/tiledimage/ecs/render"
	"github.com/milk9111/tiledimage/ecs/system"
	"github.com/milk9111/tiledimage/levels"
	"github.com/milk9111/tiledimage/prefabs"
	"github.com/milk9111/tiledimage/tiled"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	scriptedPanPeriod = 240
	placeholderSize   = 256
)

// cameraPlugin moves the camera. It has to be added before the image plugin
// so the parallax pass sees this frame's camera position.
type cameraPlugin struct {
	input system.PanInput
}

func (cameraPlugin) Name() string {
	return "camera"
}

func (p cameraPlugin) Build(app *ecs.App) error {
	app.AddSystem(ecs.Update, system.NewCameraSystem(p.input))
	return nil
}

type Game struct {
	frames int

	levelName string
	app       *ecs.App
	renderer  *system.RenderSystem
	watcher   *prefabs.Watcher
	level     *levels.Level
	layers    int
}

func NewGame(levelName string, auto, watch bool) (*Game, error) {
	input := system.PanInput(system.KeyboardPan)
	if auto {
		scripted, err := system.ScriptedPan(prefabs.CameraPanScript, scriptedPanPeriod)
		if err != nil {
			return nil, err
		}
		input = scripted
	}

	app := ecs.NewApp()
	if err := app.AddPlugins(system.CorePlugin{}, cameraPlugin{input: input}, tiled.ImagePlugin{}); err != nil {
		return nil, fmt.Errorf("build app: %w", err)
	}

	if _, err := entity.NewCamera(app.World); err != nil {
		return nil, fmt.Errorf("spawn camera: %w", err)
	}

	g := &Game{
		levelName: levelName,
		app:       app,
		renderer:  system.NewRenderSystem(),
	}
	if err := g.loadLevel(); err != nil {
		return nil, err
	}

	if watch {
		var dirs []string
		for _, dir := range []string{"levels", "prefabs", "assets"} {
			if _, err := os.Stat(dir); err == nil {
				dirs = append(dirs, dir)
			}
		}
		if len(dirs) > 0 {
			w, err := prefabs.NewWatcher(dirs...)
			if err != nil {
				log.Printf("hot reload disabled: %v", err)
			} else {
				g.watcher = w
			}
		}
	}
	return g, nil
}

func (g *Game) loadLevel() error {
	lvl, err := levels.LoadLevel(g.levelName)
	if err != nil {
		return fmt.Errorf("load level %s: %w", g.levelName, err)
	}
	layers, err := entity.LoadImageLayers(g.app.World, lvl, loadLayerImage)
	if err != nil {
		return fmt.Errorf("load level %s: %w", g.levelName, err)
	}
	g.level = lvl
	g.layers = len(layers)
	log.Printf("loaded level %s: %d image layers", g.levelName, g.layers)
	return nil
}

// loadLayerImage resolves a level image, falling back to a solid
// placeholder so a level can be laid out before its art exists.
func loadLayerImage(path string) (*ebiten.Image, error) {
	img, err := render.LoadImage(path)
	if err == nil {
		return img, nil
	}
	log.Printf("image %s: %v; using placeholder", path, err)
	img = ebiten.NewImage(placeholderSize, placeholderSize)
	img.Fill(placeholderColor(path))
	render.RegisterImage(path, img)
	return img, nil
}

// forgetLevelImages drops the cached art of lvl so a reload reads it again.
func forgetLevelImages(lvl *levels.Level) {
	if lvl == nil {
		return
	}
	for _, layer := range lvl.ImageLayers {
		render.ForgetImage(layer.Image)
	}
}

var placeholderPalette = []color.RGBA{
	colornames.Slategray,
	colornames.Darkolivegreen,
	colornames.Steelblue,
	colornames.Sienna,
	colornames.Cadetblue,
	colornames.Rosybrown,
}

// placeholderColor picks a stable color per image path.
func placeholderColor(path string) color.RGBA {
	var h uint32
	for i := 0; i < len(path); i++ {
		h = h*31 + uint32(path[i])
	}
	return placeholderPalette[h%uint32(len(placeholderPalette))]
}

// reloadsLevel reports whether a change to path affects the level named
// levelName. Prefab and art edits always do.
func reloadsLevel(path, levelName string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return true
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return base == strings.TrimSuffix(filepath.Base(levelName), ".json")
}

func (g *Game) reload(path string) {
	if !reloadsLevel(path, g.levelName) {
		return
	}
	forgetLevelImages(g.level)
	removed := entity.UnloadImageLayers(g.app.World)
	if err := g.loadLevel(); err != nil {
		log.Printf("reload %s: %v", path, err)
		return
	}
	log.Printf("reloaded %s: replaced %d image layers", path, removed)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("close watcher: %v", err)
		}
	}
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()
	g.app.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Skyblue)
	g.renderer.Draw(g.app.World, screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Layers: %d", g.frames, ebiten.ActualFPS(), g.layers))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
