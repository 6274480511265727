// Command generate_textures writes the builtin sky and dirt textures to PNG
// files so they can be edited and loaded from disk through the config.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/1siamBot/voxel-world/engine/assets"
)

var outputs = map[string]string{
	assets.BuiltinSky:  "sky.png",
	assets.BuiltinDirt: "dirt.png",
}

func main() {
	dir := flag.String("dir", filepath.Join("assets", "textures"), "output directory")
	force := flag.Bool("force", false, "overwrite existing files")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		slog.Error("create output dir", "err", err)
		os.Exit(1)
	}
	for src, name := range outputs {
		path := filepath.Join(*dir, name)
		if err := write(src, path, *force); err != nil {
			slog.Error("texture not written", "src", src, "err", err)
			os.Exit(1)
		}
	}
}

func write(src, path string, force bool) error {
	// Don't overwrite existing
	if _, err := os.Stat(path); err == nil && !force {
		slog.Info("skipped existing", "path", path)
		return nil
	}
	img, ok := assets.Builtin(src)
	if !ok {
		return fmt.Errorf("%w: %q", assets.ErrUnknownBuiltin, src)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	slog.Info("texture written", "path", path)
	return f.Close()
}
