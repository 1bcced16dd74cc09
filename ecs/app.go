package ecs

import (
	"errors"
	"fmt"
)

var ErrDuplicatePlugin = errors.New("ecs: plugin already added")

// Plugin bundles component registrations and systems under a name.
type Plugin interface {
	Name() string
	Build(app *App) error
}

// App ties a world to the scheduler that updates it and the registry that
// describes its component types.
type App struct {
	World     *World
	Scheduler *Scheduler
	Registry  *Registry

	plugins map[string]struct{}
}

func NewApp() *App {
	return &App{
		World:     NewWorld(),
		Scheduler: NewScheduler(),
		Registry:  NewRegistry(),
		plugins:   make(map[string]struct{}),
	}
}

// AddPlugins builds each plugin once, in order.
func (a *App) AddPlugins(plugins ...Plugin) error {
	for _, p := range plugins {
		if p == nil {
			continue
		}
		name := p.Name()
		if _, ok := a.plugins[name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePlugin, name)
		}
		if err := p.Build(a); err != nil {
			return fmt.Errorf("ecs: build plugin %s: %w", name, err)
		}
		a.plugins[name] = struct{}{}
	}
	return nil
}

// AddSystem schedules system in stage.
func (a *App) AddSystem(stage Stage, system System) {
	a.Scheduler.Add(stage, system)
}

// Update runs one frame.
func (a *App) Update() {
	a.Scheduler.Update(a.World)
}
