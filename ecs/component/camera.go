package component

// Camera is the viewport. Its Transform is the world position drawn at the
// screen's top-left corner.
type Camera struct {
	ViewWidth  float64
	ViewHeight float64
}

var CameraComponent = NewComponent[Camera]()

// Focus returns the camera position that centres a w x h box at (x, y).
func (c *Camera) Focus(x, y, w, h float64) (float64, float64) {
	return x - c.ViewWidth/2 + w/2, y - c.ViewHeight/2 + h/2
}
