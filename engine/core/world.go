package core

import (
	"fmt"

	"github.com/1siamBot/voxel-world/engine/camera"
	"github.com/1siamBot/voxel-world/engine/config"
	"github.com/1siamBot/voxel-world/engine/voxel"
)

// WorldInfo describes how a session's world was generated
type WorldInfo struct {
	Seed   uint64
	Digest uint64
	Cubes  int
}

// NewWorld builds the camera and grid described by cfg and wraps them in a
// session. The camera aspect comes from the window size.
func NewWorld(cfg config.Config) (*Session, WorldInfo, error) {
	cc := cfg.Camera
	aspect := float32(cfg.Window.Width) / float32(cfg.Window.Height)
	cam, err := camera.NewWithClip(cc.Eye, cc.At, cc.Up, cc.FOV, aspect, cc.Near, cc.Far)
	if err != nil {
		return nil, WorldInfo{}, fmt.Errorf("core: camera: %w", err)
	}

	grid, seed, err := voxel.Generate(cfg.World.GridSize, cfg.World.MaxHeight, cfg.World.Seed, cfg.World.Fill)
	if err != nil {
		return nil, WorldInfo{}, fmt.Errorf("core: grid: %w", err)
	}

	s, err := NewSession(cam, grid)
	if err != nil {
		return nil, WorldInfo{}, err
	}
	return s, WorldInfo{Seed: seed, Digest: grid.Digest(), Cubes: grid.TotalHeight()}, nil
}
