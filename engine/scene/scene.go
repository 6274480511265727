// Package scene turns the camera and the voxel grid into the ordered list
// of cube placements that make up one frame.
package scene

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/1siamBot/voxel-world/engine/camera"
	"github.com/1siamBot/voxel-world/engine/voxel"
)

// ErrNotReady is returned when a frame is requested before the camera or
// grid exist
var ErrNotReady = errors.New("scene: camera, grid and latch are required")

// RenderMode selects how the backend fills a cube's faces
type RenderMode int

const (
	ModeFlatColor RenderMode = iota
	ModeTexture0             // sky
	ModeTexture1             // block surface
)

func (m RenderMode) String() string {
	switch m {
	case ModeFlatColor:
		return "flat"
	case ModeTexture0:
		return "texture0"
	case ModeTexture1:
		return "texture1"
	default:
		return "invalid"
	}
}

// Layer orders drawing for backends without a depth buffer: sky first,
// then the ground, then depth-sorted solids
type Layer uint8

const (
	LayerSky Layer = iota
	LayerGround
	LayerSolid
)

// Part names what a placement belongs to
type Part uint8

const (
	PartGround Part = iota
	PartSky
	PartBlock
	PartFrog
)

// Placement is one unit cube [0,1]^3 transformed into the world
type Placement struct {
	Model mgl32.Mat4
	Mode  RenderMode
	Color mgl32.Vec4 // used by ModeFlatColor
	Layer Layer
	Part  Part
}

// Frame is everything a backend needs to draw one image
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Eye        mgl32.Vec3
	Cubes      []Placement

	// Discovered is set on the one frame that tripped the discovery latch
	Discovered bool
}

// Scene constants
var (
	GroundColor = mgl32.Vec4{0.2, 0.6, 0.2, 1}
	ClearColor  = mgl32.Vec4{0.5, 0.8, 0.92, 1}
)

const (
	SkySize         = 1000
	GroundY         = -1
	GroundThickness = 0.1
)

// Compose builds the frame for the current camera pose and grid state and
// feeds the camera position to the discovery latch
func Compose(cam *camera.Camera, grid *voxel.Grid, latch *DiscoveryLatch) (Frame, error) {
	if cam == nil || grid == nil || latch == nil {
		return Frame{}, ErrNotReady
	}

	f := Frame{
		View:       cam.View(),
		Projection: cam.Projection(),
		Eye:        cam.Eye(),
		Cubes:      make([]Placement, 0, CubeCount(grid)),
	}

	f.Cubes = append(f.Cubes, groundPlacement(grid), skyPlacement())

	grid.Each(func(col, row, h int) {
		if h == 0 {
			return
		}
		x, z := grid.WorldOrigin(col, row)
		for level := 0; level < h; level++ {
			f.Cubes = append(f.Cubes, Placement{
				Model: mgl32.Translate3D(x, float32(level), z),
				Mode:  ModeTexture1,
				Layer: LayerSolid,
				Part:  PartBlock,
			})
		}
	})

	f.Cubes = append(f.Cubes, FrogModel()...)

	f.Discovered = latch.Observe(f.Eye)
	return f, nil
}

// CubeCount is the number of placements Compose emits for grid
func CubeCount(grid *voxel.Grid) int {
	return grid.TotalHeight() + 2 + FrogCubeCount
}

func groundPlacement(grid *voxel.Grid) Placement {
	n := float32(grid.Size())
	h := float32(grid.Half())
	return Placement{
		Model: camera.TranslateScale(camera.V3(-h, GroundY, -h), camera.V3(n, GroundThickness, n)),
		Mode:  ModeFlatColor,
		Color: GroundColor,
		Layer: LayerGround,
		Part:  PartGround,
	}
}

func skyPlacement() Placement {
	const half = SkySize / 2
	return Placement{
		Model: camera.TranslateScale(camera.V3(-half, -half, -half), camera.V3(SkySize, SkySize, SkySize)),
		Mode:  ModeTexture0,
		Layer: LayerSky,
		Part:  PartSky,
	}
}
