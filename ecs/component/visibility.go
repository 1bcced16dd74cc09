package component

// Visibility is the zero-value-visible draw flag.
type Visibility struct {
	Hidden bool `yaml:"hidden"`
}

func (v Visibility) Visible() bool {
	return !v.Hidden
}

var VisibilityComponent = NewComponent[Visibility]()
