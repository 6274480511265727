package input

import (
	"fmt"
	"maps"
	"unicode"

	"github.com/1siamBot/voxel-world/engine/camera"
	"github.com/1siamBot/voxel-world/engine/core"
	"github.com/1siamBot/voxel-world/engine/voxel"
)

// Settings tune how far one input moves the camera
type Settings struct {
	Step             float32 // world units per key press
	PanDegrees       float32 // degrees per pan key press
	MouseSensitivity float32 // degrees per pixel of horizontal pointer motion
}

// DefaultSettings match the reference scene
func DefaultSettings() Settings {
	return Settings{Step: 0.5, PanDegrees: 5, MouseSensitivity: 0.5}
}

// Controller maps input events to camera and grid mutations. It never draws;
// Handle reports whether the caller must render a new frame.
type Controller struct {
	Settings Settings
	Bindings map[rune]Action

	lastX   float32
	tracked bool // lastX is a valid baseline
}

func NewController(st Settings) *Controller {
	return &Controller{Settings: st, Bindings: maps.Clone(DefaultBindings)}
}

// Handle applies one event to the session
func (c *Controller) Handle(s *core.Session, ev Event) (dirty bool, err error) {
	switch ev := ev.(type) {
	case KeyDown:
		return c.handleKey(s, ev)
	case PointerMove:
		return c.handlePointer(s, ev)
	case PointerLeave:
		c.tracked = false
		return false, nil
	case Click:
		return c.handleClick(s, ev)
	default:
		return false, fmt.Errorf("input: unsupported event %T", ev)
	}
}

func (c *Controller) handleKey(s *core.Session, ev KeyDown) (bool, error) {
	act := c.Bindings[unicode.ToLower(ev.Key)]
	if act == ActNone {
		return false, nil
	}
	return s.Mutate(func(cam *camera.Camera, _ *voxel.Grid) (bool, error) {
		var err error
		switch act {
		case ActForward:
			err = cam.MoveForward(c.Settings.Step)
		case ActBackward:
			err = cam.MoveBackward(c.Settings.Step)
		case ActLeft:
			err = cam.MoveLeft(c.Settings.Step)
		case ActRight:
			err = cam.MoveRight(c.Settings.Step)
		case ActPanLeft:
			err = cam.PanLeft(c.Settings.PanDegrees)
		case ActPanRight:
			err = cam.PanRight(c.Settings.PanDegrees)
		}
		if err != nil {
			return false, fmt.Errorf("input: key %q: %w", ev.Key, err)
		}
		s.Events.Emit(core.Event{Type: core.EvtCameraMoved, Payload: cam.Eye()})
		return true, nil
	})
}

// handlePointer pans by the horizontal delta since the last sample. The
// first sample after a gap only sets the baseline.
func (c *Controller) handlePointer(s *core.Session, ev PointerMove) (bool, error) {
	if !c.tracked {
		c.lastX = ev.X
		c.tracked = true
		return false, nil
	}
	dx := ev.X - c.lastX
	c.lastX = ev.X
	return s.Mutate(func(cam *camera.Camera, _ *voxel.Grid) (bool, error) {
		if err := cam.PanRight(-dx * c.Settings.MouseSensitivity); err != nil {
			return false, fmt.Errorf("input: pointer pan: %w", err)
		}
		s.Events.Emit(core.Event{Type: core.EvtCameraMoved, Payload: cam.Eye()})
		return true, nil
	})
}

// handleClick edits the cell one unit ahead of the eye. Out-of-bounds cells
// and clamped edits still count as handled and request a frame.
func (c *Controller) handleClick(s *core.Session, ev Click) (bool, error) {
	return s.Mutate(func(cam *camera.Camera, grid *voxel.Grid) (bool, error) {
		col, row := cam.GridCoordsInFront(grid.Half())
		if !grid.InBounds(col, row) {
			return true, nil
		}
		var changed bool
		typ := core.EvtCellRaised
		if ev.Alt {
			changed = grid.Decrement(col, row)
			typ = core.EvtCellLowered
		} else {
			changed = grid.Increment(col, row)
		}
		h, _ := grid.HeightAt(col, row)
		s.Events.Emit(core.Event{Type: typ, Payload: core.CellPayload{Col: col, Row: row, Height: h, Changed: changed}})
		return true, nil
	})
}

// Tracking reports whether a pointer baseline is held
func (c *Controller) Tracking() bool { return c.tracked }

// Pump handles events in order and renders once after each event that
// needs a new frame. A failing event is dropped and its error collected.
func (c *Controller) Pump(s *core.Session, events []Event) (frames int, errs []error) {
	for _, ev := range events {
		dirty, err := c.Handle(s, ev)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !dirty {
			continue
		}
		if _, err := s.Render(); err != nil {
			errs = append(errs, err)
			continue
		}
		frames++
	}
	return frames, errs
}
