// Package camera implements a free-fly first-person camera: an eye point, a
// look-at point and an up reference, with the view and projection matrices
// derived from them.
package camera

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Default clip planes
const (
	DefaultNear = 0.1
	DefaultFar  = 1000
)

var (
	ErrInvalidAspect  = errors.New("camera: aspect ratio must be positive and finite")
	ErrInvalidFOV     = errors.New("camera: field of view must be in (0, 180) degrees")
	ErrInvalidClip    = errors.New("camera: clip planes must satisfy 0 < near < far")
	ErrDegenerateView = errors.New("camera: degenerate view basis")
	ErrNonFinite      = errors.New("camera: non-finite argument")
)

// Camera is a continuous-pose perspective camera.
//
// The view matrix is recomputed synchronously by every mutating call, so
// View always reflects the current pose. A call that would collapse eye onto
// at, or make up parallel to the viewing direction, fails and leaves the
// camera untouched.
type Camera struct {
	eye, at, up mgl32.Vec3

	fov    float32 // vertical, degrees
	aspect float32
	near   float32
	far    float32

	view mgl32.Mat4
	proj mgl32.Mat4
}

// New creates a camera with the default clip planes
func New(eye, at, up mgl32.Vec3, fov, aspect float32) (*Camera, error) {
	return NewWithClip(eye, at, up, fov, aspect, DefaultNear, DefaultFar)
}

// NewWithClip creates a camera with explicit near/far planes
func NewWithClip(eye, at, up mgl32.Vec3, fov, aspect, near, far float32) (*Camera, error) {
	if !finite(fov) || fov <= 0 || fov >= 180 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidFOV, fov)
	}
	if !finite(near) || !finite(far) || near <= 0 || far <= near {
		return nil, fmt.Errorf("%w: near=%v far=%v", ErrInvalidClip, near, far)
	}
	if err := checkAspect(aspect); err != nil {
		return nil, err
	}
	if err := checkBasis(eye, at, up); err != nil {
		return nil, err
	}
	c := &Camera{
		eye:    eye,
		at:     at,
		up:     up,
		fov:    fov,
		aspect: aspect,
		near:   near,
		far:    far,
	}
	c.updateProjection()
	c.UpdateView()
	return c, nil
}

func checkAspect(aspect float32) error {
	if !finite(aspect) || aspect <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidAspect, aspect)
	}
	return nil
}

func checkBasis(eye, at, up mgl32.Vec3) error {
	if !finiteVec(eye) || !finiteVec(at) || !finiteVec(up) {
		return fmt.Errorf("%w: eye=%v at=%v up=%v", ErrNonFinite, eye, at, up)
	}
	f := at.Sub(eye)
	if f.Len() < epsilon {
		return fmt.Errorf("%w: eye and at coincide at %v", ErrDegenerateView, eye)
	}
	if up.Len() < epsilon {
		return fmt.Errorf("%w: zero up vector", ErrDegenerateView)
	}
	if parallel(f, up) {
		return fmt.Errorf("%w: up %v is parallel to forward %v", ErrDegenerateView, up, f)
	}
	return nil
}

func (c *Camera) Eye() mgl32.Vec3 { return c.eye }
func (c *Camera) At() mgl32.Vec3 { return c.at }
func (c *Camera) Up() mgl32.Vec3 { return c.up }
func (c *Camera) FOV() float32 { return c.fov }
func (c *Camera) Aspect() float32 { return c.aspect }
func (c *Camera) View() mgl32.Mat4 { return c.view }
func (c *Camera) Projection() mgl32.Mat4 { return c.proj }

// ViewProj returns projection·view
func (c *Camera) ViewProj() mgl32.Mat4 {
	return c.proj.Mul4(c.view)
}

// Forward returns the normalized viewing direction
func (c *Camera) Forward() mgl32.Vec3 {
	return c.at.Sub(c.eye).Normalize()
}

// UpdateView recomputes the view matrix from eye, at and up
func (c *Camera) UpdateView() {
	c.view = mgl32.LookAtV(c.eye, c.at, c.up)
}

func (c *Camera) updateProjection() {
	c.proj = mgl32.Perspective(mgl32.DegToRad(c.fov), c.aspect, c.near, c.far)
}

// SetAspect rebuilds the projection for a new viewport shape
func (c *Camera) SetAspect(aspect float32) error {
	if err := checkAspect(aspect); err != nil {
		return err
	}
	c.aspect = aspect
	c.updateProjection()
	return nil
}

// MoveForward moves eye and at along the viewing direction
func (c *Camera) MoveForward(distance float32) error {
	if !finite(distance) {
		return fmt.Errorf("%w: distance %v", ErrNonFinite, distance)
	}
	return c.translate(c.Forward().Mul(distance))
}

// MoveBackward moves eye and at against the viewing direction
func (c *Camera) MoveBackward(distance float32) error {
	if !finite(distance) {
		return fmt.Errorf("%w: distance %v", ErrNonFinite, distance)
	}
	return c.translate(c.eye.Sub(c.at).Normalize().Mul(distance))
}

// MoveLeft strafes along cross(up, forward)
func (c *Camera) MoveLeft(distance float32) error {
	if !finite(distance) {
		return fmt.Errorf("%w: distance %v", ErrNonFinite, distance)
	}
	s := c.up.Cross(c.Forward()).Normalize()
	return c.translate(s.Mul(distance))
}

// MoveRight strafes along cross(forward, up)
func (c *Camera) MoveRight(distance float32) error {
	if !finite(distance) {
		return fmt.Errorf("%w: distance %v", ErrNonFinite, distance)
	}
	s := c.Forward().Cross(c.up).Normalize()
	return c.translate(s.Mul(distance))
}

func (c *Camera) translate(delta mgl32.Vec3) error {
	eye := c.eye.Add(delta)
	at := c.at.Add(delta)
	if err := checkBasis(eye, at, c.up); err != nil {
		return err
	}
	c.eye, c.at = eye, at
	c.UpdateView()
	return nil
}

// PanLeft turns the view left about the up axis; eye stays put
func (c *Camera) PanLeft(angleDeg float32) error {
	return c.rotateAroundUp(angleDeg)
}

// PanRight turns the view right about the up axis; eye stays put
func (c *Camera) PanRight(angleDeg float32) error {
	return c.rotateAroundUp(-angleDeg)
}

func (c *Camera) rotateAroundUp(angleDeg float32) error {
	if !finite(angleDeg) {
		return fmt.Errorf("%w: angle %v", ErrNonFinite, angleDeg)
	}
	f := c.at.Sub(c.eye)
	at := c.eye.Add(RotateAboutAxis(f, angleDeg, c.up))
	if err := checkBasis(c.eye, at, c.up); err != nil {
		return err
	}
	c.at = at
	c.UpdateView()
	return nil
}

// GridCoordsInFront samples the point one unit ahead of the eye, shifts it by
// half the grid extent on both horizontal axes and floors it to a cell.
// It is a fixed-distance sample, not a ray cast: looking diagonally or from
// above may name a cell other than the one visually targeted.
func (c *Camera) GridCoordsInFront(half int) (col, row int) {
	h := float32(half)
	p := c.eye.Add(c.Forward()).Add(V3(h, 0, h))
	return int(math32.Floor(p.X())), int(math32.Floor(p.Z()))
}
