package component

// Render layers in draw order. HUD elements are drawn between LayerPickup and
// LayerHazard.
const (
	LayerPlayer = iota
	LayerPlatform
	LayerPickup
	LayerHazard
)

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
