// Package export writes a composed frame to a binary glTF file so the
// world can be inspected in any model viewer.
package export

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/1siamBot/voxel-world/engine/render3d"
	"github.com/1siamBot/voxel-world/engine/scene"
)

// Vertex colors for textured modes, which export without their images
var (
	SkyTint   = mgl32.Vec4{0.5, 0.8, 0.92, 1}
	BlockTint = mgl32.Vec4{0.55, 0.42, 0.28, 1}
)

// Options controls what goes into the file
type Options struct {
	IncludeSky bool
	Generator  string
}

var partNames = map[scene.Part]string{
	scene.PartGround: "ground",
	scene.PartSky:    "sky",
	scene.PartBlock:  "blocks",
	scene.PartFrog:   "frog",
}

// mesh order in the document
var partOrder = []scene.Part{scene.PartGround, scene.PartSky, scene.PartBlock, scene.PartFrog}

type meshData struct {
	positions [][3]float32
	normals   [][3]float32
	colors    [][4]float32
	indices   []uint32
}

// Document builds a glTF document with one mesh and node per scene part.
// Cube transforms are baked into the vertex positions.
func Document(f scene.Frame, opts Options) *gltf.Document {
	cube := render3d.MakeUnitCube()
	parts := make(map[scene.Part]*meshData)

	for _, pl := range f.Cubes {
		if pl.Part == scene.PartSky && !opts.IncludeSky {
			continue
		}
		md := parts[pl.Part]
		if md == nil {
			md = &meshData{}
			parts[pl.Part] = md
		}
		c := tint(pl)
		for _, tri := range cube.Transform(pl.Model).Triangles {
			p0, p1, p2 := tri.V[0].Pos, tri.V[1].Pos, tri.V[2].Pos
			n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
			for _, p := range [3]mgl32.Vec3{p0, p1, p2} {
				md.indices = append(md.indices, uint32(len(md.positions)))
				md.positions = append(md.positions, p)
				md.normals = append(md.normals, n)
				md.colors = append(md.colors, c)
			}
		}
	}

	doc := gltf.NewDocument()
	if opts.Generator != "" {
		doc.Asset.Generator = opts.Generator
	}

	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float64{1, 1, 1, 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	doc.Materials = []*gltf.Material{{Name: "vertex-color", PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}}

	for _, part := range partOrder {
		md := parts[part]
		if md == nil {
			continue
		}
		posAccessor := modeler.WritePosition(doc, md.positions)
		normalAccessor := modeler.WriteNormal(doc, md.normals)
		colorAccessor := modeler.WriteColor(doc, md.colors)
		indicesAccessor := modeler.WriteIndices(doc, md.indices)

		prim := &gltf.Primitive{
			Attributes: gltf.PrimitiveAttributes{
				gltf.POSITION: posAccessor,
				gltf.NORMAL:   normalAccessor,
				gltf.COLOR_0:  colorAccessor,
			},
			Indices:  gltf.Index(indicesAccessor),
			Material: gltf.Index(0),
		}
		name := partNames[part]
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: name, Primitives: []*gltf.Primitive{prim}})
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: gltf.Index(len(doc.Meshes) - 1)})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}
	return doc
}

// WriteGLB saves the frame as a binary glTF file at path
func WriteGLB(f scene.Frame, path string, opts Options) error {
	return gltf.SaveBinary(Document(f, opts), path)
}

func tint(pl scene.Placement) [4]float32 {
	switch pl.Mode {
	case scene.ModeFlatColor:
		return pl.Color
	case scene.ModeTexture0:
		return SkyTint
	case scene.ModeTexture1:
		return BlockTint
	default:
		return [4]float32{1, 0, 1, 1}
	}
}
