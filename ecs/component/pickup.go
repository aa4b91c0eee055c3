package component

// PickupKindFuel refills the fuel gauge.
const PickupKindFuel = "fuel"

// Pickup is a collectible removed on contact with the player.
type Pickup struct {
	Kind   string
	Amount float64
}

var PickupComponent = NewComponent[Pickup]()
