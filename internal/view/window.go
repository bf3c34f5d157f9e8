package view

import "github.com/vovakirdan/keepercfg/internal/core"

// SetupEngineWindow fits the requested engine window on the screen and
// stores it in p. The window never starts under the status panel when the
// panel is shown.
func SetupEngineWindow(p *Player, g *Game, want core.Rect) core.Rect {
	left := 0
	if g.Flags&GameStatusPanel != 0 {
		left = g.StatusPanelWidth
	}
	x := max(min(want.X, g.ScreenW), left)
	y := max(min(want.Y, g.ScreenH), 0)
	w := max(min(want.W, g.ScreenW-x), 0)
	h := max(min(want.H, g.ScreenH-y), 0)

	p.Window = core.NewRect(x, y, w, h)
	return p.Window
}

// StoreEngineWindow returns the engine window in units of divider pixels.
func StoreEngineWindow(p *Player, divider int) core.Rect {
	return p.Window.Div(divider)
}
