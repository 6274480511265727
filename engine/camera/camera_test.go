package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func newRefCamera(t *testing.T) *Camera {
	t.Helper()
	c, err := New(V3(0, 1, 5), V3(0, 1, 4), V3(0, 1, 0), 60, 16.0/9.0)
	require.NoError(t, err)
	return c
}

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], tol, "component %d of %v vs %v", i, want, got)
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	up := V3(0, 1, 0)
	cases := []struct {
		name   string
		eye    mgl32.Vec3
		at     mgl32.Vec3
		up     mgl32.Vec3
		fov    float32
		aspect float32
		want   error
	}{
		{"zero aspect", V3(0, 1, 5), V3(0, 1, 4), up, 60, 0, ErrInvalidAspect},
		{"negative aspect", V3(0, 1, 5), V3(0, 1, 4), up, 60, -1, ErrInvalidAspect},
		{"zero fov", V3(0, 1, 5), V3(0, 1, 4), up, 0, 1, ErrInvalidFOV},
		{"eye equals at", V3(1, 1, 1), V3(1, 1, 1), up, 60, 1, ErrDegenerateView},
		{"up parallel to forward", V3(0, 0, 0), V3(0, 5, 0), up, 60, 1, ErrDegenerateView},
		{"zero up", V3(0, 1, 5), V3(0, 1, 4), V3(0, 0, 0), 60, 1, ErrDegenerateView},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := New(tc.eye, tc.at, tc.up, tc.fov, tc.aspect)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewBuildsMatrices(t *testing.T) {
	c := newRefCamera(t)
	assert.Equal(t, mgl32.LookAtV(V3(0, 1, 5), V3(0, 1, 4), V3(0, 1, 0)), c.View())
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(60), 16.0/9.0, 0.1, 1000), c.Projection())

	// The eye maps to the view-space origin.
	v := TransformPoint(c.View(), c.Eye())
	assertVec(t, V3(0, 0, 0), v.Vec3())
}

func TestUpdateViewIdempotent(t *testing.T) {
	c := newRefCamera(t)
	before := c.View()
	c.UpdateView()
	c.UpdateView()
	assert.Equal(t, before, c.View())
}

func TestMoveForwardBackwardRoundTrip(t *testing.T) {
	c := newRefCamera(t)
	eye0, at0 := c.Eye(), c.At()

	for i := 0; i < 7; i++ {
		require.NoError(t, c.MoveForward(0.5))
	}
	assertVec(t, V3(0, 1, 1.5), c.Eye())
	for i := 0; i < 7; i++ {
		require.NoError(t, c.MoveBackward(0.5))
	}
	assertVec(t, eye0, c.Eye())
	assertVec(t, at0, c.At())
}

func TestStrafeDirection(t *testing.T) {
	// Looking down -Z with +Y up, left is -X and right is +X.
	c := newRefCamera(t)
	require.NoError(t, c.MoveLeft(1))
	assertVec(t, V3(-1, 1, 5), c.Eye())
	assertVec(t, V3(-1, 1, 4), c.At())

	require.NoError(t, c.MoveRight(2))
	assertVec(t, V3(1, 1, 5), c.Eye())
	assertVec(t, V3(1, 1, 4), c.At())
}

func TestMovementAndPanPreserveDistance(t *testing.T) {
	c, err := New(V3(2, 1, 3), V3(-1, 1, -1), V3(0, 1, 0), 60, 1.5)
	require.NoError(t, err)
	dist := c.At().Sub(c.Eye()).Len()

	ops := []func() error{
		func() error { return c.MoveForward(0.5) },
		func() error { return c.PanLeft(33) },
		func() error { return c.MoveLeft(1.25) },
		func() error { return c.PanRight(170) },
		func() error { return c.MoveBackward(3) },
		func() error { return c.MoveRight(0.1) },
		func() error { return c.PanLeft(-12.5) },
	}
	for i, op := range ops {
		require.NoError(t, op())
		assert.InDelta(t, dist, c.At().Sub(c.Eye()).Len(), tol, "after op %d", i)
	}
}

func TestPanRoundTrip(t *testing.T) {
	for _, angle := range []float32{0, 5, 45, 90, 181, -30, 720} {
		c := newRefCamera(t)
		at0, eye0 := c.At(), c.Eye()
		require.NoError(t, c.PanLeft(angle))
		assertVec(t, eye0, c.Eye())
		require.NoError(t, c.PanRight(angle))
		assertVec(t, at0, c.At())
	}
}

func TestPanLeftTurnsLeft(t *testing.T) {
	c := newRefCamera(t)
	require.NoError(t, c.PanLeft(90))
	assertVec(t, V3(-1, 0, 0), c.Forward())

	require.NoError(t, c.PanRight(180))
	assertVec(t, V3(1, 0, 0), c.Forward())
}

func TestMutationsRecomputeView(t *testing.T) {
	c := newRefCamera(t)
	require.NoError(t, c.MoveForward(1))
	assert.Equal(t, mgl32.LookAtV(c.Eye(), c.At(), c.Up()), c.View())
	require.NoError(t, c.PanRight(10))
	assert.Equal(t, mgl32.LookAtV(c.Eye(), c.At(), c.Up()), c.View())
}

func TestNonFiniteArgumentsLeaveCameraUnchanged(t *testing.T) {
	c := newRefCamera(t)
	eye, at := c.Eye(), c.At()
	nan := float32(0)
	nan = nan / nan

	assert.ErrorIs(t, c.MoveForward(nan), ErrNonFinite)
	assert.ErrorIs(t, c.MoveLeft(nan), ErrNonFinite)
	assert.ErrorIs(t, c.PanLeft(nan), ErrNonFinite)
	assert.Equal(t, eye, c.Eye())
	assert.Equal(t, at, c.At())
}

func TestGridCoordsInFront(t *testing.T) {
	c := newRefCamera(t)
	col, row := c.GridCoordsInFront(16)
	assert.Equal(t, 16, col)
	assert.Equal(t, 20, row)

	require.NoError(t, c.PanLeft(90)) // facing -X, sample at (-1, 1, 5)
	col, row = c.GridCoordsInFront(16)
	assert.Equal(t, 15, col)
	assert.Equal(t, 21, row)
}

func TestSetAspect(t *testing.T) {
	c := newRefCamera(t)
	assert.ErrorIs(t, c.SetAspect(0), ErrInvalidAspect)
	require.NoError(t, c.SetAspect(2))
	assert.Equal(t, float32(2), c.Aspect())
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(60), 2, 0.1, 1000), c.Projection())
}
