package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DiscoveryRadius is the half-width of the square zone around the frog
const DiscoveryRadius = 2

// FrogGreeting is announced when the frog is found
const FrogGreeting = "The frog says: 'Welcome to your world!'"

// DiscoveryState is the one-shot latch state
type DiscoveryState uint8

const (
	NotYetTriggered DiscoveryState = iota
	Triggered
)

// DiscoveryLatch fires once per session, the first time the camera's
// horizontal position enters the zone around the frog
type DiscoveryLatch struct {
	state DiscoveryState
}

func (l *DiscoveryLatch) State() DiscoveryState { return l.state }

// InZone reports whether eye is within the discovery zone (X/Z only)
func InZone(eye mgl32.Vec3) bool {
	return math32.Abs(eye.X()) < DiscoveryRadius && math32.Abs(eye.Z()) < DiscoveryRadius
}

// Observe returns true exactly once: on the first call with eye in the zone
func (l *DiscoveryLatch) Observe(eye mgl32.Vec3) bool {
	if l.state == Triggered || !InZone(eye) {
		return false
	}
	l.state = Triggered
	return true
}
