package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1siamBot/voxel-world/engine/input"
)

// keyRunes maps the polled keys to the characters the controller binds.
// Arrow keys mirror WASD.
var keyRunes = []struct {
	key ebiten.Key
	r   rune
}{
	{ebiten.KeyW, 'w'}, {ebiten.KeyS, 's'}, {ebiten.KeyA, 'a'}, {ebiten.KeyD, 'd'},
	{ebiten.KeyQ, 'q'}, {ebiten.KeyE, 'e'},
	{ebiten.KeyArrowUp, 'w'}, {ebiten.KeyArrowDown, 's'},
	{ebiten.KeyArrowLeft, 'q'}, {ebiten.KeyArrowRight, 'e'},
}

// Poller samples ebiten's input state once per tick and converts it to
// controller events
type Poller struct {
	Repeat input.Repeat

	inside bool
	lastX  int

	events []input.Event
}

func NewPoller(rep input.Repeat) *Poller {
	return &Poller{Repeat: rep}
}

// Poll returns this tick's events in order: keys, pointer, clicks. w and h
// are the logical screen size used for the cursor bounds check.
func (p *Poller) Poll(w, h int) []input.Event {
	p.events = p.events[:0]

	for _, kr := range keyRunes {
		if p.Repeat.Fire(inpututil.KeyPressDuration(kr.key)) {
			p.events = append(p.events, input.KeyDown{Key: kr.r})
		}
	}

	x, y := ebiten.CursorPosition()
	inside := ebiten.IsFocused() && x >= 0 && y >= 0 && x < w && y < h
	switch {
	case inside && (!p.inside || x != p.lastX):
		p.events = append(p.events, input.PointerMove{X: float32(x)})
		p.lastX = x
	case !inside && p.inside:
		p.events = append(p.events, input.PointerLeave{})
	}
	p.inside = inside

	alt := ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyAlt)
	if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.events = append(p.events, input.Click{Alt: alt})
	}
	if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		p.events = append(p.events, input.Click{Alt: true})
	}
	return p.events
}

// ExportRequested reports a fresh press of the export key
func (p *Poller) ExportRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyX)
}

// HUDToggled reports a fresh press of the HUD key
func (p *Poller) HUDToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}
