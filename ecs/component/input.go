package component

// Input stores per-frame input state. Held flags are true every tick the key
// is down; Pressed/Released flags only on the transition tick.
type Input struct {
	Left         bool
	Right        bool
	Jump         bool
	JumpPressed  bool
	JumpReleased bool
	Refuel       bool
	PausePressed bool
}

var InputComponent = NewComponent[Input]()
