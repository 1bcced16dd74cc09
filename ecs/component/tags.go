package component

// CameraTag marks the active camera. Exactly one camera is expected at a
// time; systems that need the camera treat zero or several as "no camera".
type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()
