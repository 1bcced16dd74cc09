package ecs

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/milk9111/tiledimage/ecs/component"
	"gopkg.in/yaml.v3"
)

var (
	ErrDuplicateType = errors.New("ecs: component type already registered")
	ErrUnknownType   = errors.New("ecs: component type not registered")
)

// TypeInfo describes a registered component type.
type TypeInfo struct {
	Name string
	Type reflect.Type
	Kind component.ComponentID
}

type registration struct {
	info   TypeInfo
	get    func(w *World, e Entity) (any, bool)
	decode func(w *World, e Entity, node *yaml.Node) error
}

// Registry maps stable names to component types so tooling can inspect,
// save and edit entities without knowing their Go types.
type Registry struct {
	byName map[string]registration
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]registration)}
}

// Register records T under name.
func Register[T any](r *Registry, name string, kind component.ComponentKind[T]) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateType, name)
	}
	r.byName[name] = registration{
		info: TypeInfo{
			Name: name,
			Type: reflect.TypeFor[T](),
			Kind: kind.ID(),
		},
		get: func(w *World, e Entity) (any, bool) {
			return Get(w, e, kind)
		},
		decode: func(w *World, e Entity, node *yaml.Node) error {
			var value T
			if existing, ok := Get(w, e, kind); ok {
				value = *existing
			}
			if err := node.Decode(&value); err != nil {
				return fmt.Errorf("ecs: decode %s: %w", name, err)
			}
			return Add(w, e, kind, &value)
		},
	}
	return nil
}

// Registered returns the type registered under name.
func (r *Registry) Registered(name string) (TypeInfo, bool) {
	reg, ok := r.byName[name]
	return reg.info, ok
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns the registered components of e keyed by name.
func (r *Registry) Snapshot(w *World, e Entity) map[string]any {
	out := make(map[string]any)
	for name, reg := range r.byName {
		if v, ok := reg.get(w, e); ok {
			out[name] = v
		}
	}
	return out
}

// MarshalEntity encodes the registered components of e as YAML.
func (r *Registry) MarshalEntity(w *World, e Entity) ([]byte, error) {
	if !w.IsAlive(e) {
		return nil, component.ErrEntityNotAlive
	}
	data, err := yaml.Marshal(r.Snapshot(w, e))
	if err != nil {
		return nil, fmt.Errorf("ecs: marshal entity %s: %w", e, err)
	}
	return data, nil
}

// UnmarshalEntity applies a YAML document produced by MarshalEntity to e.
// Fields missing from the document keep their current values.
func (r *Registry) UnmarshalEntity(w *World, e Entity, data []byte) error {
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("ecs: unmarshal entity %s: %w", e, err)
	}
	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		reg, ok := r.byName[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownType, name)
		}
		node := doc[name]
		if err := reg.decode(w, e, &node); err != nil {
			return err
		}
	}
	return nil
}
