package component

type Camera struct {
	Zoom float32 `yaml:"zoom"`
}

var CameraComponent = NewComponent[Camera]()
