package core

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/1siamBot/voxel-world/engine/scene"
)

// SessionSnapshot is a read-only view of the session for HUDs and logs
type SessionSnapshot struct {
	Eye        mgl32.Vec3
	Forward    mgl32.Vec3
	FocusCol   int
	FocusRow   int
	FocusH     int
	FocusValid bool
	Cubes      int
	Renders    uint64
	Discovery  scene.DiscoveryState
	GridDigest uint64
}
