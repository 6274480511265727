package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/1siamBot/voxel-world/engine/camera"
	"github.com/1siamBot/voxel-world/engine/scene"
	"github.com/1siamBot/voxel-world/engine/voxel"
)

var ErrNoFrame = errors.New("core: no frame rendered yet")

// Session is the per-run world context: the camera, the grid, the discovery
// latch and the last composed frame. Mutations and renders are serialized on
// one mutex so the camera/grid pair is never observed mid-edit.
type Session struct {
	Events *EventBus

	mu      sync.Mutex
	cam     *camera.Camera
	grid    *voxel.Grid
	latch   scene.DiscoveryLatch
	frame   scene.Frame
	renders uint64
}

// NewSession wires an existing camera and grid into a session
func NewSession(cam *camera.Camera, grid *voxel.Grid) (*Session, error) {
	if cam == nil || grid == nil {
		return nil, scene.ErrNotReady
	}
	s := &Session{
		Events: NewEventBus(),
		cam:    cam,
		grid:   grid,
	}
	s.Events.Emit(Event{Type: EvtSessionStarted})
	return s, nil
}

// Mutate runs fn with exclusive access to the camera and grid. fn reports
// whether it changed anything that requires a new frame.
func (s *Session) Mutate(fn func(cam *camera.Camera, grid *voxel.Grid) (dirty bool, err error)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.cam, s.grid)
}

// Render composes a new frame from the current state
func (s *Session) Render() (scene.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := scene.Compose(s.cam, s.grid, &s.latch)
	if err != nil {
		return scene.Frame{}, err
	}
	s.frame = f
	s.renders++
	s.Events.Emit(Event{Type: EvtFrameRendered, Seq: s.renders, Payload: len(f.Cubes)})
	if f.Discovered {
		s.Events.Emit(Event{Type: EvtDiscovered, Seq: s.renders, Payload: f.Eye})
	}
	return f, nil
}

// Resize matches the camera aspect to a viewport of width x height pixels.
// changed is false when the aspect is already the same.
func (s *Session) Resize(width, height int) (changed bool, err error) {
	if width <= 0 || height <= 0 {
		return false, fmt.Errorf("%w: viewport %dx%d", camera.ErrInvalidAspect, width, height)
	}
	aspect := float32(width) / float32(height)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cam.Aspect() == aspect {
		return false, nil
	}
	if err := s.cam.SetAspect(aspect); err != nil {
		return false, err
	}
	return true, nil
}

// Frame returns the last composed frame
func (s *Session) Frame() (scene.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.renders == 0 {
		return scene.Frame{}, ErrNoFrame
	}
	return s.frame, nil
}

// Renders is the number of frames composed so far
func (s *Session) Renders() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renders
}

// Discovery returns the latch state
func (s *Session) Discovery() scene.DiscoveryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latch.State()
}

// Snapshot returns copies of values safe to read outside the lock
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, row := s.cam.GridCoordsInFront(s.grid.Half())
	h, ok := s.grid.HeightAt(col, row)
	return SessionSnapshot{
		Eye:        s.cam.Eye(),
		Forward:    s.cam.Forward(),
		FocusCol:   col,
		FocusRow:   row,
		FocusH:     h,
		FocusValid: ok,
		Cubes:      len(s.frame.Cubes),
		Renders:    s.renders,
		Discovery:  s.latch.State(),
		GridDigest: s.grid.Digest(),
	}
}
