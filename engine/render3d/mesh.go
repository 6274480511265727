package render3d

import "github.com/go-gl/mathgl/mgl32"

// Vertex3D is a model-space vertex with texture coordinates and a flat
// per-face shade factor
type Vertex3D struct {
	Pos   mgl32.Vec3
	UV    mgl32.Vec2
	Shade float32
}

// Triangle3D is three vertices wound counter-clockwise when seen from
// outside the mesh
type Triangle3D struct {
	V [3]Vertex3D
}

// Mesh3D is a collection of triangles
type Mesh3D struct {
	Triangles []Triangle3D
}

func NewMesh() *Mesh3D { return &Mesh3D{} }

func (m *Mesh3D) AddTriangle(v0, v1, v2 Vertex3D) {
	m.Triangles = append(m.Triangles, Triangle3D{V: [3]Vertex3D{v0, v1, v2}})
}

func (m *Mesh3D) AddQuad(v0, v1, v2, v3 Vertex3D) {
	m.AddTriangle(v0, v1, v2)
	m.AddTriangle(v0, v2, v3)
}

// Transform returns a copy with every position multiplied by mat
func (m *Mesh3D) Transform(mat mgl32.Mat4) *Mesh3D {
	out := &Mesh3D{Triangles: make([]Triangle3D, len(m.Triangles))}
	for i, tri := range m.Triangles {
		for j := 0; j < 3; j++ {
			out.Triangles[i].V[j] = tri.V[j]
			out.Triangles[i].V[j].Pos = mat.Mul4x1(tri.V[j].Pos.Vec4(1)).Vec3()
		}
	}
	return out
}

// Face shades. Top is full brightness, the bottom darkest.
const (
	ShadeTop    float32 = 1.0
	ShadeSideX  float32 = 0.8
	ShadeSideZ  float32 = 0.9
	ShadeBottom float32 = 0.6
)

// CubeFace names the faces of the unit cube in mesh order
type CubeFace int

const (
	FaceFront  CubeFace = iota // +z
	FaceBack                   // -z
	FaceLeft                   // -x
	FaceRight                  // +x
	FaceTop                    // +y
	FaceBottom                 // -y
)

// MakeUnitCube builds the cube spanning [0,1]^3, two triangles per face,
// each face carrying the full texture
func MakeUnitCube() *Mesh3D {
	m := NewMesh()

	v := [8]mgl32.Vec3{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}

	// Counter-clockwise from outside, starting bottom-left of the face
	faces := [6][4]int{
		FaceFront:  {4, 5, 6, 7},
		FaceBack:   {1, 0, 3, 2},
		FaceLeft:   {0, 4, 7, 3},
		FaceRight:  {5, 1, 2, 6},
		FaceTop:    {7, 6, 2, 3},
		FaceBottom: {0, 1, 5, 4},
	}
	shades := [6]float32{ShadeSideZ, ShadeSideZ, ShadeSideX, ShadeSideX, ShadeTop, ShadeBottom}
	uvs := [4]mgl32.Vec2{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

	for fi, f := range faces {
		var q [4]Vertex3D
		for k := 0; k < 4; k++ {
			q[k] = Vertex3D{Pos: v[f[k]], UV: uvs[k], Shade: shades[fi]}
		}
		m.AddQuad(q[0], q[1], q[2], q[3])
	}
	return m
}
