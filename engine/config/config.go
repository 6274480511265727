// Package config loads the world's settings from a TOML file. Missing files
// fall back to the reference scene; malformed or out-of-range values are
// errors.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/1siamBot/voxel-world/engine/voxel"
)

// DefaultPath is where the game looks for its config file
const DefaultPath = "config/world.toml"

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Window   WindowConfig   `toml:"window"`
	World    WorldConfig    `toml:"world"`
	Camera   CameraConfig   `toml:"camera"`
	Controls ControlsConfig `toml:"controls"`
	Assets   AssetsConfig   `toml:"assets"`
	Log      LogConfig      `toml:"log"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type WorldConfig struct {
	GridSize  int    `toml:"grid_size"`
	MaxHeight int    `toml:"max_height"`
	Seed      string `toml:"seed"` // integer or phrase; empty = time-seeded
	Fill      int    `toml:"fill"` // fixed height for every cell; -1 = random
}

type CameraConfig struct {
	FOV  float32    `toml:"fov"`
	Eye  [3]float32 `toml:"eye"`
	At   [3]float32 `toml:"at"`
	Up   [3]float32 `toml:"up"`
	Near float32    `toml:"near"`
	Far  float32    `toml:"far"`
}

type ControlsConfig struct {
	Step             float32 `toml:"step"`
	PanDegrees       float32 `toml:"pan_degrees"`
	MouseSensitivity float32 `toml:"mouse_sensitivity"`
	RepeatDelay      int     `toml:"repeat_delay"`    // ticks before a held key repeats
	RepeatInterval   int     `toml:"repeat_interval"` // ticks between repeats
}

type AssetsConfig struct {
	Sky     string   `toml:"sky"`
	Block   string   `toml:"block"`
	Timeout Duration `toml:"timeout"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Duration is a time.Duration written as a Go duration string ("10s")
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Default returns the reference scene settings
func Default() Config {
	return Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "Voxel World"},
		World:  WorldConfig{GridSize: 32, MaxHeight: 4, Fill: -1},
		Camera: CameraConfig{
			FOV:  60,
			Eye:  [3]float32{0, 1, 5},
			At:   [3]float32{0, 1, 4},
			Up:   [3]float32{0, 1, 0},
			Near: 0.1,
			Far:  1000,
		},
		Controls: ControlsConfig{
			Step:             0.5,
			PanDegrees:       5,
			MouseSensitivity: 0.5,
			RepeatDelay:      30,
			RepeatInterval:   3,
		},
		Assets: AssetsConfig{
			Sky:     "builtin:sky",
			Block:   "builtin:dirt",
			Timeout: Duration(10 * time.Second),
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML over the defaults and validates the result. Unknown
// keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks ranges; camera geometry is checked by the camera itself
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}
	check(c.Window.Width > 0 && c.Window.Height > 0, "window %dx%d", c.Window.Width, c.Window.Height)
	check(c.World.GridSize > 0 && c.World.GridSize%2 == 0 && c.World.GridSize <= voxel.MaxSize,
		"world.grid_size %d must be even and in [2, %d]", c.World.GridSize, voxel.MaxSize)
	check(c.World.MaxHeight > 0 && c.World.MaxHeight <= 255, "world.max_height %d", c.World.MaxHeight)
	check(c.World.Fill <= c.World.MaxHeight, "world.fill %d above max_height", c.World.Fill)
	check(c.Camera.FOV > 0 && c.Camera.FOV < 180, "camera.fov %v", c.Camera.FOV)
	check(c.Camera.Near > 0 && c.Camera.Far > c.Camera.Near, "camera near %v / far %v", c.Camera.Near, c.Camera.Far)
	check(c.Controls.Step > 0, "controls.step %v", c.Controls.Step)
	check(c.Controls.RepeatDelay > 0 && c.Controls.RepeatInterval > 0, "controls repeat %d/%d", c.Controls.RepeatDelay, c.Controls.RepeatInterval)
	check(c.Assets.Sky != "" && c.Assets.Block != "", "assets.sky and assets.block are required")
	check(c.Assets.Timeout > 0, "assets.timeout %v", time.Duration(c.Assets.Timeout))
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("%w: log.level: %v", ErrInvalid, err))
	}
	return errors.Join(errs...)
}

// SlogLevel parses the configured level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(l.Level))
	return lvl, err
}
