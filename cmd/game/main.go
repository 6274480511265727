package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/1siamBot/voxel-world/engine/assets"
	"github.com/1siamBot/voxel-world/engine/config"
	"github.com/1siamBot/voxel-world/engine/core"
	"github.com/1siamBot/voxel-world/engine/export"
	"github.com/1siamBot/voxel-world/engine/gfx"
	"github.com/1siamBot/voxel-world/engine/input"
	"github.com/1siamBot/voxel-world/engine/scene"
)

// Game implements ebiten.Game
type Game struct {
	cfg    config.Config
	logger *slog.Logger

	state   core.GameState
	startup *core.Startup[assets.Textures]
	failure error

	session  *core.Session
	control  *input.Controller
	poller   *gfx.Poller
	renderer *gfx.Renderer

	showHUD bool
	exports int

	// logical screen size; layoutW/H is the latest size offered by ebiten
	width, height    int
	layoutW, layoutH int
}

func NewGame(cfg config.Config, logger *slog.Logger) *Game {
	g := &Game{cfg: cfg, logger: logger, state: core.StateLoading, showHUD: true}
	g.width, g.height = cfg.Window.Width, cfg.Window.Height
	g.layoutW, g.layoutH = g.width, g.height

	loader := assets.Loader{Logger: logger}
	timeout := time.Duration(cfg.Assets.Timeout)
	g.startup = core.StartStartup(context.Background(), func(ctx context.Context) (assets.Textures, error) {
		return loader.Load(ctx, cfg.Assets.Sky, cfg.Assets.Block, timeout)
	})
	logger.Info("loading textures", "sky", cfg.Assets.Sky, "block", cfg.Assets.Block, "timeout", timeout)
	return g
}

func (g *Game) Update() error {
	g.applyLayout()
	switch g.state {
	case core.StateLoading:
		g.pollStartup()
	case core.StatePlaying:
		g.play()
	}
	return nil
}

func (g *Game) pollStartup() {
	tex, ready, err := g.startup.Poll()
	if !ready {
		return
	}
	if err == nil {
		err = g.start(tex)
	}
	if err != nil {
		g.fail(err)
		return
	}
	g.state = core.StatePlaying
	g.logger.Info("state changed", "state", g.state)
}

func (g *Game) fail(err error) {
	g.failure = err
	g.state = core.StateFailed
	g.logger.Error("startup failed", "err", err)
}

// start runs once the textures are in: the camera needs the window size and
// the first frame needs both textures
func (g *Game) start(tex assets.Textures) error {
	session, info, err := core.NewWorld(g.cfg)
	if err != nil {
		return err
	}
	g.logger.Info("world generated",
		"size", g.cfg.World.GridSize, "seed", info.Seed,
		"cubes", info.Cubes, "digest", fmt.Sprintf("%016x", info.Digest))

	g.session = session
	g.control = input.NewController(input.Settings{
		Step:             g.cfg.Controls.Step,
		PanDegrees:       g.cfg.Controls.PanDegrees,
		MouseSensitivity: g.cfg.Controls.MouseSensitivity,
	})
	g.poller = gfx.NewPoller(input.Repeat{
		Delay:    g.cfg.Controls.RepeatDelay,
		Interval: g.cfg.Controls.RepeatInterval,
	})
	if _, err := session.Resize(g.width, g.height); err != nil {
		return err
	}
	g.renderer = gfx.NewRenderer(g.width, g.height, gfx.NewTextureSet(tex), g.logger)
	g.subscribe()

	f, err := session.Render()
	if err != nil {
		return err
	}
	g.renderer.Rebuild(f)
	session.Events.Dispatch()
	return nil
}

func (g *Game) subscribe() {
	ev := g.session.Events
	ev.On(core.EvtSessionStarted, func(core.Event) {
		g.logger.Debug("session started")
	})
	ev.On(core.EvtDiscovered, func(e core.Event) {
		g.logger.Info(scene.FrogGreeting, "frame", e.Seq)
	})
	logCell := func(e core.Event) {
		c, ok := e.Payload.(core.CellPayload)
		if !ok {
			return
		}
		g.logger.Debug("cell edited", "event", e.Type, "col", c.Col, "row", c.Row,
			"height", c.Height, "changed", c.Changed,
			"digest", fmt.Sprintf("%016x", g.session.Snapshot().GridDigest))
	}
	ev.On(core.EvtCellRaised, logCell)
	ev.On(core.EvtCellLowered, logCell)
	ev.On(core.EvtFrameExported, func(e core.Event) {
		g.logger.Info("frame exported", "path", e.Payload)
	})
}

func (g *Game) play() {
	events := g.poller.Poll(g.width, g.height)
	frames, errs := g.control.Pump(g.session, events)
	for _, err := range errs {
		g.logger.Warn("input dropped", "err", err)
	}
	if frames > 0 {
		if f, err := g.session.Frame(); err == nil {
			g.renderer.Rebuild(f)
		}
	}

	if g.poller.HUDToggled() {
		g.showHUD = !g.showHUD
	}
	if g.poller.ExportRequested() {
		g.export()
	}

	g.session.Events.Dispatch()
}

func (g *Game) export() {
	f, err := g.session.Frame()
	if err != nil {
		g.logger.Warn("export skipped", "err", err)
		return
	}
	g.exports++
	path := fmt.Sprintf("voxel-world-%03d.glb", g.exports)
	if err := export.WriteGLB(f, path, export.Options{Generator: "voxel-world"}); err != nil {
		g.logger.Error("export failed", "path", path, "err", err)
		return
	}
	g.session.Events.Emit(core.Event{Type: core.EvtFrameExported, Seq: g.session.Renders(), Payload: path})
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case core.StateLoading:
		gfx.DrawStatus(screen, "Loading textures...", false)
	case core.StateFailed:
		gfx.DrawStatus(screen, "Failed to start: "+g.failure.Error(), true)
	case core.StatePlaying:
		g.renderer.Draw(screen)
		if g.showHUD {
			gfx.DrawHUD(screen, g.session.Snapshot(), g.renderer.Stats())
		}
	}
}

// applyLayout moves a window resize into the camera and the pipeline
func (g *Game) applyLayout() {
	if g.layoutW == g.width && g.layoutH == g.height {
		return
	}
	g.width, g.height = g.layoutW, g.layoutH
	if g.state != core.StatePlaying {
		return
	}

	g.renderer.Pipeline.Resize(g.width, g.height)
	changed, err := g.session.Resize(g.width, g.height)
	if err != nil {
		g.logger.Warn("resize ignored", "width", g.width, "height", g.height, "err", err)
		return
	}
	if changed {
		g.logger.Debug("viewport resized", "width", g.width, "height", g.height)
	}
	f, err := g.session.Render()
	if err != nil {
		g.logger.Warn("render after resize failed", "err", err)
		return
	}
	g.renderer.Rebuild(f)
}

// Layout follows the window so the projection keeps the window's shape
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.layoutW, g.layoutH = outsideWidth, outsideHeight
	}
	return g.layoutW, g.layoutH
}

func main() {
	cfgPath := flag.String("config", config.DefaultPath, "path to the TOML config")
	seed := flag.String("seed", "", "world seed (integer or phrase); overrides the config")
	level := flag.String("log-level", "", "debug, info, warn or error; overrides the config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed != "" {
		cfg.World.Seed = *seed
	}
	if *level != "" {
		cfg.Log.Level = *level
	}
	lvl, err := cfg.Log.SlogLevel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad log level:", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	game := NewGame(cfg, logger)
	defer game.startup.Cancel()

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game exited", "err", err)
		os.Exit(1)
	}
}
