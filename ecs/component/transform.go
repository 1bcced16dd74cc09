package component

// Transform places an entity in world space. Translation.Z orders draws
// within a render layer and is otherwise ignored by 2D systems.
type Transform struct {
	Translation Vec3    `yaml:"translation"`
	ScaleX      float32 `yaml:"scale_x"`
	ScaleY      float32 `yaml:"scale_y"`
	Rotation    float32 `yaml:"rotation"`
}

// DefaultTransform is the identity transform at the origin.
func DefaultTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

var TransformComponent = NewComponent[Transform]()
