// Package gfx is the ebiten backend: it uploads textures, draws projected
// batches and polls input.
package gfx

import (
	"image/color"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/1siamBot/voxel-world/engine/render3d"
	"github.com/1siamBot/voxel-world/engine/scene"
)

// Renderer draws the last built frame every tick
type Renderer struct {
	Pipeline *render3d.Pipeline
	Textures *TextureSet
	Logger   *slog.Logger

	clear    color.RGBA
	batches  []render3d.Batch
	vertices []ebiten.Vertex
	warned   map[scene.RenderMode]bool
}

func NewRenderer(width, height int, tex *TextureSet, logger *slog.Logger) *Renderer {
	return &Renderer{
		Pipeline: render3d.NewPipeline(width, height),
		Textures: tex,
		Logger:   logger,
		clear:    toRGBA(scene.ClearColor),
		warned:   make(map[scene.RenderMode]bool),
	}
}

// Rebuild projects f; call once per dirty event
func (r *Renderer) Rebuild(f scene.Frame) {
	r.batches = r.Pipeline.Build(f)
}

// Draw clears to the clear color and submits the cached batches
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(r.clear)

	for i := range r.batches {
		b := &r.batches[i]
		img, textured, ok := r.Textures.For(b.Mode)
		if !ok && !r.warned[b.Mode] {
			r.warned[b.Mode] = true
			if r.Logger != nil {
				r.Logger.Warn("unknown render mode, drawing magenta", "mode", int(b.Mode))
			}
		}

		sw, sh := float32(img.Bounds().Dx()), float32(img.Bounds().Dy())
		r.vertices = r.vertices[:0]
		for _, v := range b.Vertices {
			ev := ebiten.Vertex{
				DstX: v.X, DstY: v.Y,
				SrcX: 1, SrcY: 1,
				ColorR: v.R, ColorG: v.G, ColorB: v.B, ColorA: v.A,
			}
			if textured {
				ev.SrcX, ev.SrcY = v.U*sw, v.V*sh
			}
			if !ok {
				ev.ColorR, ev.ColorG, ev.ColorB, ev.ColorA = 1, 0, 1, 1
			}
			r.vertices = append(r.vertices, ev)
		}

		op := &ebiten.DrawTrianglesOptions{}
		if textured {
			op.Filter = ebiten.FilterLinear
		}
		screen.DrawTriangles(r.vertices, b.Indices, img, op)
	}
}

// Stats returns the pipeline counters of the last rebuild
func (r *Renderer) Stats() render3d.Stats { return r.Pipeline.Stats() }

func toRGBA(c mgl32.Vec4) color.RGBA {
	return color.RGBA{uint8(c.X() * 255), uint8(c.Y() * 255), uint8(c.Z() * 255), uint8(c.W() * 255)}
}
