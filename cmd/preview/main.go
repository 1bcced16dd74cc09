// Command preview prints where a level's image layers end up for a given
// camera position, without opening a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/tiledimage/ecs"
	"github.com/milk9111/tiledimage/ecs/component"
	"github.com/milk9111/tiledimage/ecs/entity"
	"github.com/milk9111/tiledimage/ecs/system"
	"github.com/milk9111/tiledimage/levels"
	"github.com/milk9111/tiledimage/tiled"
	"gopkg.in/yaml.v3"
)

type layerReport struct {
	Name     string  `yaml:"name"`
	X        float32 `yaml:"x"`
	Y        float32 `yaml:"y"`
	Z        float32 `yaml:"z"`
	Parallax bool    `yaml:"parallax"`
}

func main() {
	levelName := flag.String("level", "demo", "level name in levels/ (basename, .json optional)")
	camX := flag.Float64("x", 0, "camera x")
	camY := flag.Float64("y", 0, "camera y")
	flag.Parse()

	reports, err := preview(*levelName, float32(*camX), float32(*camY))
	if err != nil {
		log.Fatal(err)
	}
	if err := yaml.NewEncoder(os.Stdout).Encode(reports); err != nil {
		log.Fatal(err)
	}
}

func preview(levelName string, camX, camY float32) ([]layerReport, error) {
	app := ecs.NewApp()
	if err := app.AddPlugins(system.CorePlugin{}, tiled.ImagePlugin{}); err != nil {
		return nil, err
	}
	lvl, err := levels.LoadLevel(levelName)
	if err != nil {
		return nil, err
	}
	layers, err := entity.LoadImageLayers(app.World, lvl, nil)
	if err != nil {
		return nil, err
	}
	if _, err := entity.NewCameraAt(app.World, camX, camY); err != nil {
		return nil, fmt.Errorf("spawn camera: %w", err)
	}
	app.Update()

	reports := make([]layerReport, 0, len(layers))
	for i, e := range layers {
		tr, ok := ecs.Get(app.World, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		reports = append(reports, layerReport{
			Name:     lvl.ImageLayers[i].Name,
			X:        tr.Translation.X,
			Y:        tr.Translation.Y,
			Z:        tr.Translation.Z,
			Parallax: ecs.Has(app.World, e, component.ImageParallaxComponent.Kind()),
		})
	}
	return reports, nil
}
