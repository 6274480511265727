package render3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/voxel-world/engine/camera"
	"github.com/1siamBot/voxel-world/engine/scene"
	"github.com/1siamBot/voxel-world/engine/voxel"
)

const screenW, screenH = 800, 600

func frameFrom(t *testing.T, eye, at mgl32.Vec3, cubes ...scene.Placement) scene.Frame {
	t.Helper()
	c, err := camera.New(eye, at, camera.V3(0, 1, 0), 60, float32(screenW)/screenH)
	require.NoError(t, err)
	return scene.Frame{View: c.View(), Projection: c.Projection(), Eye: eye, Cubes: cubes}
}

func solid(model mgl32.Mat4) scene.Placement {
	return scene.Placement{Model: model, Mode: scene.ModeTexture1, Layer: scene.LayerSolid, Part: scene.PartBlock}
}

func TestUnitCubeWindsOutward(t *testing.T) {
	m := MakeUnitCube()
	require.Len(t, m.Triangles, 12)

	center := mgl32.Vec3{0.5, 0.5, 0.5}
	for i, tri := range m.Triangles {
		for _, v := range tri.V {
			for k := 0; k < 3; k++ {
				assert.True(t, v.Pos[k] == 0 || v.Pos[k] == 1, "triangle %d vertex off the unit cube", i)
			}
		}
		n := tri.V[1].Pos.Sub(tri.V[0].Pos).Cross(tri.V[2].Pos.Sub(tri.V[0].Pos))
		centroid := tri.V[0].Pos.Add(tri.V[1].Pos).Add(tri.V[2].Pos).Mul(1.0 / 3)
		assert.Greater(t, n.Dot(centroid.Sub(center)), float32(0), "triangle %d faces inward", i)
	}
}

func TestMeshTransform(t *testing.T) {
	m := MakeUnitCube().Transform(mgl32.Translate3D(2, 3, 4))
	for _, tri := range m.Triangles {
		for _, v := range tri.V {
			assert.GreaterOrEqual(t, v.Pos.X(), float32(2))
			assert.LessOrEqual(t, v.Pos.Z(), float32(5))
		}
	}
}

func TestClipNear(t *testing.T) {
	in := clipVertex{Pos: mgl32.Vec4{0, 0, 0, 1}}
	out := clipVertex{Pos: mgl32.Vec4{0, 0, -3, 1}}

	tests := []struct {
		name string
		poly []clipVertex
		want int
	}{
		{"all inside", []clipVertex{in, in, in}, 3},
		{"one behind", []clipVertex{in, in, out}, 4},
		{"two behind", []clipVertex{in, out, out}, 3},
		{"all behind", []clipVertex{out, out, out}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clipNear(nil, tt.poly)
			require.Len(t, got, tt.want)
			for _, v := range got {
				assert.GreaterOrEqual(t, nearDist(v), float32(-1e-5))
			}
		})
	}
}

func TestClipNearInterpolatesUV(t *testing.T) {
	a := clipVertex{Pos: mgl32.Vec4{0, 0, 1, 1}, UV: mgl32.Vec2{0, 0}, Shade: 1}
	b := clipVertex{Pos: mgl32.Vec4{0, 0, -3, 1}, UV: mgl32.Vec2{1, 1}, Shade: 0}
	c := clipVertex{Pos: mgl32.Vec4{1, 0, 1, 1}, UV: mgl32.Vec2{0, 0}, Shade: 1}

	got := clipNear(nil, []clipVertex{a, b, c})
	require.Len(t, got, 4)
	// a->b crosses the plane halfway
	assert.InDelta(t, 0.5, got[1].UV.X(), 1e-6)
	assert.InDelta(t, 0.5, got[1].Shade, 1e-6)
	assert.InDelta(t, 0, nearDist(got[1]), 1e-6)
}

func TestBuildCullsBackFaces(t *testing.T) {
	p := NewPipeline(screenW, screenH)
	f := frameFrom(t, camera.V3(0.5, 0.5, 5), camera.V3(0.5, 0.5, 0), solid(mgl32.Ident4()))

	batches := p.Build(f)
	require.Len(t, batches, 1)
	assert.Equal(t, scene.ModeTexture1, batches[0].Mode)
	assert.Len(t, batches[0].Vertices, 6, "only the face toward the camera")
	assert.Len(t, batches[0].Indices, 6)
	assert.Equal(t, 10, p.Stats().Culled)

	for _, v := range batches[0].Vertices {
		assert.InDelta(t, ShadeSideZ, v.R, 1e-6)
		assert.True(t, v.X >= 0 && v.X <= screenW && v.Y >= 0 && v.Y <= screenH)
	}
}

func TestBuildFlatColor(t *testing.T) {
	p := NewPipeline(screenW, screenH)
	pl := solid(mgl32.Ident4())
	pl.Mode = scene.ModeFlatColor
	pl.Color = mgl32.Vec4{1, 0.5, 0, 1}
	f := frameFrom(t, camera.V3(0.5, 5, 0.6), camera.V3(0.5, 0, 0.5), pl)

	batches := p.Build(f)
	require.Len(t, batches, 1)
	v := batches[0].Vertices[0]
	assert.InDelta(t, 1*ShadeTop, v.R, 1e-6)
	assert.InDelta(t, 0.5*ShadeTop, v.G, 1e-6)
	assert.InDelta(t, 0, v.B, 1e-6)
	assert.InDelta(t, 1, v.A, 1e-6)
}

func TestBuildSkySeenFromInside(t *testing.T) {
	sky := scene.Placement{
		Model: camera.TranslateScale(camera.V3(-500, -500, -500), camera.V3(1000, 1000, 1000)),
		Mode:  scene.ModeTexture0,
		Layer: scene.LayerSky,
	}
	f := frameFrom(t, camera.V3(0, 1, 5), camera.V3(0, 1, 4), sky)
	p := NewPipeline(screenW, screenH)
	batches := p.Build(f)
	require.NotEmpty(t, batches)
	for _, v := range batches[0].Vertices {
		assert.Equal(t, float32(1), v.R, "sky is unshaded")
	}

	// the same cube as a solid shows only back faces from inside
	sky.Layer = scene.LayerSolid
	f.Cubes = []scene.Placement{sky}
	assert.Empty(t, p.Build(f))
}

func TestBuildSortsLayersAndDepth(t *testing.T) {
	g, err := voxel.New(32, 4)
	require.NoError(t, err)
	g.Fill(2)
	cam, err := camera.New(camera.V3(0, 1, 5), camera.V3(0, 1, 4), camera.V3(0, 1, 0), 60, float32(screenW)/screenH)
	require.NoError(t, err)
	f, err := scene.Compose(cam, g, &scene.DiscoveryLatch{})
	require.NoError(t, err)

	p := NewPipeline(screenW, screenH)
	batches := p.Build(f)
	require.NotEmpty(t, batches)
	assert.Equal(t, scene.ModeTexture0, batches[0].Mode, "sky first")
	assert.Greater(t, p.Stats().Clipped, 0, "ground reaches behind the eye")

	for i := 1; i < len(p.tris); i++ {
		prev, cur := p.tris[i-1], p.tris[i]
		require.LessOrEqual(t, prev.layer, cur.layer)
		if prev.layer == cur.layer {
			require.GreaterOrEqual(t, prev.depth, cur.depth)
		}
	}

	total := 0
	for _, b := range batches {
		total += len(b.Vertices) / 3
		require.Len(t, b.Indices, len(b.Vertices))
	}
	assert.Equal(t, p.Stats().Triangles, total)
}

func TestBatchSplitsOnModeAndSize(t *testing.T) {
	p := NewPipeline(screenW, screenH)
	n := MaxBatchVertices/3 + 10
	for i := 0; i < n; i++ {
		p.tris = append(p.tris, screenTri{mode: scene.ModeTexture1})
	}
	p.tris = append(p.tris, screenTri{mode: scene.ModeFlatColor})

	batches := p.batch()
	require.Len(t, batches, 3)
	assert.Len(t, batches[0].Vertices, (MaxBatchVertices/3)*3)
	assert.Len(t, batches[1].Vertices, 30)
	assert.Equal(t, uint16(0), batches[1].Indices[0])
	assert.Equal(t, scene.ModeFlatColor, batches[2].Mode)
}

func TestResize(t *testing.T) {
	p := NewPipeline(screenW, screenH)
	p.Resize(100, 50)
	w, h := p.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)
}
