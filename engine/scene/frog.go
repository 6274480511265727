package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/1siamBot/voxel-world/engine/camera"
)

// Frog colors
var (
	FrogGreen  = mgl32.Vec4{0, 0.8, 0, 1}
	EyeWhite   = mgl32.Vec4{1, 1, 1, 1}
	PupilBlack = mgl32.Vec4{0, 0, 0, 1}
)

// FrogBase is where the decorative frog sits
var FrogBase = mgl32.Vec3{0, 0.5, 0}

// FrogCubeCount is the number of cubes in FrogModel
const FrogCubeCount = 5

type frogPart struct {
	offset mgl32.Vec3
	scale  mgl32.Vec3
	color  mgl32.Vec4
}

var frogParts = [FrogCubeCount]frogPart{
	// Body
	{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 1, 2}, FrogGreen},
	// Eyes
	{mgl32.Vec3{-0.6, 1.0, 0.8}, mgl32.Vec3{0.4, 0.4, 0.4}, EyeWhite},
	{mgl32.Vec3{0.6, 1.0, 0.8}, mgl32.Vec3{0.4, 0.4, 0.4}, EyeWhite},
	// Pupils
	{mgl32.Vec3{-0.5, 1.1, 1.0}, mgl32.Vec3{0.2, 0.2, 0.2}, PupilBlack},
	{mgl32.Vec3{0.5, 1.1, 1.0}, mgl32.Vec3{0.2, 0.2, 0.2}, PupilBlack},
}

// FrogModel returns the frog's flat-colored cubes
func FrogModel() []Placement {
	out := make([]Placement, 0, FrogCubeCount)
	for _, p := range frogParts {
		out = append(out, Placement{
			Model: camera.TranslateScale(FrogBase.Add(p.offset), p.scale),
			Mode:  ModeFlatColor,
			Color: p.color,
			Layer: LayerSolid,
			Part:  PartFrog,
		})
	}
	return out
}
