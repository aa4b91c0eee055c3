package component

// Platform marks a static ledge. Index is its placement order within the
// session, starting at 0.
type Platform struct {
	Index int
}

var PlatformComponent = NewComponent[Platform]()
