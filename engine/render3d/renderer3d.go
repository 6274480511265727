package render3d

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/1siamBot/voxel-world/engine/scene"
)

// MaxBatchVertices keeps every batch addressable with uint16 indices
const MaxBatchVertices = 65000

// minArea is twice the smallest screen area, in pixels, worth drawing
const minArea = 0.5

// ScreenVertex is a projected vertex ready for triangle submission
type ScreenVertex struct {
	X, Y       float32
	U, V       float32 // normalized texture coordinates
	R, G, B, A float32
}

// Batch is a run of triangles that share a render mode, in draw order
type Batch struct {
	Mode     scene.RenderMode
	Vertices []ScreenVertex
	Indices  []uint16
}

// Stats counts what the last Build did
type Stats struct {
	Placements int
	Culled     int // back-facing, degenerate or outside the frustum
	Clipped    int // crossed the near plane
	Triangles  int
	Batches    int
}

type screenTri struct {
	v     [3]ScreenVertex
	mode  scene.RenderMode
	layer scene.Layer
	depth float32
}

// Pipeline turns composed frames into screen-space batches
type Pipeline struct {
	width, height float32
	cube          *Mesh3D

	tris  []screenTri
	poly  []clipVertex
	clip  []clipVertex
	stats Stats
}

func NewPipeline(width, height int) *Pipeline {
	p := &Pipeline{cube: MakeUnitCube()}
	p.Resize(width, height)
	return p
}

func (p *Pipeline) Resize(width, height int) {
	p.width, p.height = float32(width), float32(height)
}

func (p *Pipeline) Size() (int, int) { return int(p.width), int(p.height) }

func (p *Pipeline) Stats() Stats { return p.stats }

// Build projects every placement of f. Triangles come back sky first, then
// ground, then solids far to near.
func (p *Pipeline) Build(f scene.Frame) []Batch {
	p.stats = Stats{Placements: len(f.Cubes)}
	p.tris = p.tris[:0]

	vp := f.Projection.Mul4(f.View)
	for _, pl := range f.Cubes {
		p.addPlacement(vp.Mul4(pl.Model), pl)
	}

	sort.SliceStable(p.tris, func(i, j int) bool {
		a, b := p.tris[i], p.tris[j]
		if a.layer != b.layer {
			return a.layer < b.layer
		}
		return a.depth > b.depth
	})

	batches := p.batch()
	p.stats.Triangles = len(p.tris)
	p.stats.Batches = len(batches)
	return batches
}

func (p *Pipeline) addPlacement(mvp mgl32.Mat4, pl scene.Placement) {
	inside := pl.Layer == scene.LayerSky

	for _, tri := range p.cube.Triangles {
		var cv [3]clipVertex
		for k, v := range tri.V {
			shade := v.Shade
			if inside {
				shade = 1
			}
			cv[k] = clipVertex{Pos: mvp.Mul4x1(v.Pos.Vec4(1)), UV: v.UV, Shade: shade}
		}
		if outsideFrustum(cv) {
			p.stats.Culled++
			continue
		}

		if nearDist(cv[0]) >= 0 && nearDist(cv[1]) >= 0 && nearDist(cv[2]) >= 0 {
			p.emit(cv, pl, inside)
			continue
		}

		p.stats.Clipped++
		p.poly = append(p.poly[:0], cv[:]...)
		p.clip = clipNear(p.clip, p.poly)
		for k := 1; k+1 < len(p.clip); k++ {
			p.emit([3]clipVertex{p.clip[0], p.clip[k], p.clip[k+1]}, pl, inside)
		}
	}
}

func (p *Pipeline) emit(cv [3]clipVertex, pl scene.Placement, inside bool) {
	var st screenTri
	st.mode = pl.Mode
	st.layer = pl.Layer

	for k, v := range cv {
		w := v.Pos.W()
		st.depth += w / 3
		ndcX, ndcY := v.Pos.X()/w, v.Pos.Y()/w

		sv := ScreenVertex{
			X: (ndcX*0.5 + 0.5) * p.width,
			Y: (1 - (ndcY*0.5 + 0.5)) * p.height,
			U: v.UV.X(),
			V: v.UV.Y(),
			A: 1,
		}
		if pl.Mode == scene.ModeFlatColor {
			sv.R, sv.G, sv.B, sv.A = pl.Color.X()*v.Shade, pl.Color.Y()*v.Shade, pl.Color.Z()*v.Shade, pl.Color.W()
		} else {
			sv.R, sv.G, sv.B = v.Shade, v.Shade, v.Shade
		}
		st.v[k] = sv
	}

	// Screen space is y-down, so counter-clockwise front faces have a
	// negative cross product. The sky is seen from inside, so only degenerate
	// sky triangles are dropped.
	ax, ay := st.v[1].X-st.v[0].X, st.v[1].Y-st.v[0].Y
	bx, by := st.v[2].X-st.v[0].X, st.v[2].Y-st.v[0].Y
	cross := ax*by - ay*bx
	if inside {
		if cross < minArea && cross > -minArea {
			p.stats.Culled++
			return
		}
	} else if -cross < minArea {
		p.stats.Culled++
		return
	}

	p.tris = append(p.tris, st)
}

func (p *Pipeline) batch() []Batch {
	var out []Batch
	for i := range p.tris {
		t := &p.tris[i]
		n := len(out)
		if n == 0 || out[n-1].Mode != t.mode || len(out[n-1].Vertices)+3 > MaxBatchVertices {
			out = append(out, Batch{Mode: t.mode})
			n++
		}
		b := &out[n-1]
		base := uint16(len(b.Vertices))
		b.Vertices = append(b.Vertices, t.v[0], t.v[1], t.v[2])
		b.Indices = append(b.Indices, base, base+1, base+2)
	}
	return out
}
