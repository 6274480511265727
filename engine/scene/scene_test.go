package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/voxel-world/engine/camera"
	"github.com/1siamBot/voxel-world/engine/voxel"
)

func refCamera(t *testing.T, eye, at mgl32.Vec3) *camera.Camera {
	t.Helper()
	c, err := camera.New(eye, at, camera.V3(0, 1, 0), 60, 4.0/3.0)
	require.NoError(t, err)
	return c
}

func TestComposeRequiresState(t *testing.T) {
	g, err := voxel.New(32, 4)
	require.NoError(t, err)
	c := refCamera(t, camera.V3(0, 1, 5), camera.V3(0, 1, 4))

	_, err = Compose(nil, g, &DiscoveryLatch{})
	assert.ErrorIs(t, err, ErrNotReady)
	_, err = Compose(c, nil, &DiscoveryLatch{})
	assert.ErrorIs(t, err, ErrNotReady)
	_, err = Compose(c, g, nil)
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestComposeCubeCount(t *testing.T) {
	g, _, err := voxel.Generate(32, 4, "count", -1)
	require.NoError(t, err)
	c := refCamera(t, camera.V3(0, 1, 5), camera.V3(0, 1, 4))

	f, err := Compose(c, g, &DiscoveryLatch{})
	require.NoError(t, err)
	assert.Len(t, f.Cubes, g.TotalHeight()+2+FrogCubeCount)
	assert.Equal(t, CubeCount(g), len(f.Cubes))
}

func TestComposeOrderAndModes(t *testing.T) {
	g, err := voxel.New(4, 4)
	require.NoError(t, err)
	g.Set(1, 3, 3)
	c := refCamera(t, camera.V3(10, 1, 10), camera.V3(10, 1, 9))

	f, err := Compose(c, g, &DiscoveryLatch{})
	require.NoError(t, err)
	require.Len(t, f.Cubes, 3+2+FrogCubeCount)

	assert.Equal(t, PartGround, f.Cubes[0].Part)
	assert.Equal(t, ModeFlatColor, f.Cubes[0].Mode)
	assert.Equal(t, GroundColor, f.Cubes[0].Color)
	assert.Equal(t, PartSky, f.Cubes[1].Part)
	assert.Equal(t, ModeTexture0, f.Cubes[1].Mode)

	// Cell (1,3) on a 4x4 grid sits at x=-1, z=1, stacked at y=0,1,2.
	for level := 0; level < 3; level++ {
		p := f.Cubes[2+level]
		assert.Equal(t, PartBlock, p.Part)
		assert.Equal(t, ModeTexture1, p.Mode)
		assert.Equal(t, mgl32.Translate3D(-1, float32(level), 1), p.Model)
	}
	for _, p := range f.Cubes[5:] {
		assert.Equal(t, PartFrog, p.Part)
		assert.Equal(t, ModeFlatColor, p.Mode)
	}
	assert.Equal(t, c.View(), f.View)
	assert.Equal(t, c.Projection(), f.Projection)
}

func TestSkyEnclosesScene(t *testing.T) {
	sky := skyPlacement()
	lo := camera.TransformPoint(sky.Model, camera.V3(0, 0, 0)).Vec3()
	hi := camera.TransformPoint(sky.Model, camera.V3(1, 1, 1)).Vec3()
	assert.Equal(t, camera.V3(-500, -500, -500), lo)
	assert.Equal(t, camera.V3(500, 500, 500), hi)
}

func TestFrogModel(t *testing.T) {
	frog := FrogModel()
	require.Len(t, frog, FrogCubeCount)
	body := camera.TransformPoint(frog[0].Model, camera.V3(1, 1, 1)).Vec3()
	assert.Equal(t, camera.V3(2, 1.5, 2), body)
	assert.Equal(t, FrogGreen, frog[0].Color)
	assert.Equal(t, PupilBlack, frog[4].Color)
}

func TestDiscoveryFiresOnce(t *testing.T) {
	g, err := voxel.New(32, 4)
	require.NoError(t, err)
	latch := &DiscoveryLatch{}
	notifications := 0

	path := []mgl32.Vec3{
		{0, 1, 5},  // outside
		{1, 1, 1},  // enters
		{1, 1, 1},  // dwells
		{1, 1, 5},  // leaves
		{-1, 1, 1}, // re-enters
	}
	for _, eye := range path {
		c := refCamera(t, eye, eye.Add(camera.V3(0, 0, -1)))
		f, err := Compose(c, g, latch)
		require.NoError(t, err)
		if f.Discovered {
			notifications++
		}
	}
	assert.Equal(t, 1, notifications)
	assert.Equal(t, Triggered, latch.State())
}

func TestInZone(t *testing.T) {
	assert.True(t, InZone(camera.V3(1.9, 100, -1.9)))
	assert.False(t, InZone(camera.V3(2, 0, 0)))
	assert.False(t, InZone(camera.V3(0, 0, -2)))
}

func TestRenderModeString(t *testing.T) {
	assert.Equal(t, "flat", ModeFlatColor.String())
	assert.Equal(t, "invalid", RenderMode(7).String())
}
