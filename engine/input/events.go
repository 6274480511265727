package input

// Event is a discrete input the controller understands
type Event interface {
	isEvent()
}

// KeyDown is a key press (or auto-repeat) identified by its character
type KeyDown struct {
	Key rune
}

// PointerMove carries the pointer's horizontal position in screen pixels
type PointerMove struct {
	X float32
}

// PointerLeave marks a gap in pointer tracking (left the window, lost focus)
type PointerLeave struct{}

// Click is a primary-button press; Alt selects the alternate action
type Click struct {
	Alt bool
}

func (KeyDown) isEvent()      {}
func (PointerMove) isEvent()  {}
func (PointerLeave) isEvent() {}
func (Click) isEvent()        {}

// Action is what a key does
type Action uint8

const (
	ActNone Action = iota
	ActForward
	ActBackward
	ActLeft
	ActRight
	ActPanLeft
	ActPanRight
)

// DefaultBindings maps characters to actions
var DefaultBindings = map[rune]Action{
	'w': ActForward,
	's': ActBackward,
	'a': ActLeft,
	'd': ActRight,
	'q': ActPanLeft,
	'e': ActPanRight,
}
