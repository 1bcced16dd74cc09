package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec re-decodes a loosely typed component block into T.
// A nil block yields the zero T.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float32 `yaml:"x"`
	Y        float32 `yaml:"y"`
	Z        float32 `yaml:"z"`
	ScaleX   float32 `yaml:"scale_x"`
	ScaleY   float32 `yaml:"scale_y"`
	Rotation float32 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Image              string  `yaml:"image"`
	UseSource          bool    `yaml:"use_source"`
	OriginX            float32 `yaml:"origin_x"`
	OriginY            float32 `yaml:"origin_y"`
	CenterOriginIfZero bool    `yaml:"center_origin_if_zero"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type VisibilityComponentSpec struct {
	Hidden bool `yaml:"hidden"`
}

type CameraComponentSpec struct {
	Zoom float32 `yaml:"zoom"`
}

type Vec2Spec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// ImageParallaxComponentSpec leaves BasePosition nil to anchor the layer
// at its transform.
type ImageParallaxComponentSpec struct {
	ParallaxX    float32   `yaml:"parallax_x"`
	ParallaxY    float32   `yaml:"parallax_y"`
	BasePosition *Vec2Spec `yaml:"base_position"`
}
