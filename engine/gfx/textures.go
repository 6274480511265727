package gfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/1siamBot/voxel-world/engine/assets"
	"github.com/1siamBot/voxel-world/engine/scene"
)

// TextureSet holds the GPU images for each render mode
type TextureSet struct {
	sky   *ebiten.Image
	block *ebiten.Image
	white *ebiten.Image
}

// NewTextureSet uploads decoded textures. Must run on the game goroutine.
func NewTextureSet(tex assets.Textures) *TextureSet {
	white := ebiten.NewImage(4, 4)
	white.Fill(color.White)
	return &TextureSet{
		sky:   ebiten.NewImageFromImage(tex.Sky),
		block: ebiten.NewImageFromImage(tex.Block),
		white: white,
	}
}

// For returns the source image for mode. ok is false for an unknown mode,
// in which case the white image is returned and the caller paints magenta.
func (t *TextureSet) For(mode scene.RenderMode) (img *ebiten.Image, textured, ok bool) {
	switch mode {
	case scene.ModeFlatColor:
		return t.white, false, true
	case scene.ModeTexture0:
		return t.sky, true, true
	case scene.ModeTexture1:
		return t.block, true, true
	default:
		return t.white, false, false
	}
}
