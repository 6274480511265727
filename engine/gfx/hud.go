package gfx

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/voxel-world/engine/core"
	"github.com/1siamBot/voxel-world/engine/render3d"
	"github.com/1siamBot/voxel-world/engine/scene"
)

// DrawHUD prints the session diagnostics in the top-left corner
func DrawHUD(screen *ebiten.Image, snap core.SessionSnapshot, stats render3d.Stats) {
	focus := "outside grid"
	if snap.FocusValid {
		focus = fmt.Sprintf("(%d, %d) h=%d", snap.FocusCol, snap.FocusRow, snap.FocusH)
	}
	frog := "hiding"
	if snap.Discovery == scene.Triggered {
		frog = "found"
	}

	info := fmt.Sprintf(
		"Voxel World | FPS: %.0f | Frames: %d\n"+
			"Eye: (%.1f, %.1f, %.1f) | Facing cell: %s\n"+
			"Cubes: %d | Tris: %d (culled %d, clipped %d) | Frog: %s\n"+
			"[WASD] Move [QE/Mouse] Turn [Click] Raise [Shift+Click] Lower [X] Export [F3] HUD",
		ebiten.ActualFPS(), snap.Renders,
		snap.Eye.X(), snap.Eye.Y(), snap.Eye.Z(), focus,
		snap.Cubes, stats.Triangles, stats.Culled, stats.Clipped, frog,
	)
	ebitenutil.DebugPrint(screen, info)
}

// DrawStatus fills the screen with a centered message, used while loading
// and after a failure
func DrawStatus(screen *ebiten.Image, msg string, failed bool) {
	bg := color.RGBA{20, 24, 40, 255}
	if failed {
		bg = color.RGBA{60, 16, 16, 255}
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), bg, false)
	ebitenutil.DebugPrintAt(screen, msg, b.Dx()/2-len(msg)*3, b.Dy()/2-8)
}
