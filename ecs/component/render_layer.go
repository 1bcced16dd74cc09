package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int `yaml:"index"`
}

var RenderLayerComponent = NewComponent[RenderLayer]()
