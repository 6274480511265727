// Command sceneexport generates a world from the config and writes the
// first frame to a binary glTF file without opening a window.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/1siamBot/voxel-world/engine/config"
	"github.com/1siamBot/voxel-world/engine/core"
	"github.com/1siamBot/voxel-world/engine/export"
)

func main() {
	cfgPath := flag.String("config", config.DefaultPath, "path to the TOML config")
	seed := flag.String("seed", "", "world seed (integer or phrase); overrides the config")
	out := flag.String("out", "world.glb", "output .glb path")
	sky := flag.Bool("sky", false, "include the sky box")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(*cfgPath, *seed, *out, *sky, logger); err != nil {
		logger.Error("export failed", "err", err)
		os.Exit(1)
	}
}

func run(cfgPath, seed, out string, sky bool, logger *slog.Logger) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if seed != "" {
		cfg.World.Seed = seed
	}

	session, info, err := core.NewWorld(cfg)
	if err != nil {
		return err
	}
	f, err := session.Render()
	if err != nil {
		return err
	}
	if err := export.WriteGLB(f, out, export.Options{IncludeSky: sky, Generator: "voxel-world sceneexport"}); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	logger.Info("scene exported", "path", out, "seed", info.Seed, "cubes", len(f.Cubes),
		"digest", fmt.Sprintf("%016x", info.Digest))
	return nil
}
