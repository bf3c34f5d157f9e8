package view

import "fmt"

const (
	// FadeMax is the fully faded parchment step.
	FadeMax  = 32
	fadeStep = 4
)

// Renderer draws the parts of a frame that depend on the view mode.
type Renderer interface {
	DrawCreatureView(p *Player)
	DrawIsometricView(p *Player)
	DrawParchmentView(p *Player)
	DrawFrontView(p *Player)
	// DrawParchmentFade draws the map fade at the given step.
	DrawParchmentFade(p *Player, step int)
	DrawBanner(x, y int, text string)
}

// Banner sizes, in pixels, used to place the overlays.
type Banner struct {
	PausedWidth     int
	ArmageddonWidth int
}

// FadeIn advances a parchment fade-in by one step.
func FadeIn(step int) int {
	return min(step+fadeStep, FadeMax)
}

// FadeOut advances a parchment fade-out by one step.
func FadeOut(step int) int {
	return max(step-fadeStep, 0)
}

// PausedBannerX returns the left edge of a paused banner w pixels wide. In
// the views that draw into the engine window the banner is centred on the
// window's right part, otherwise on the screen.
func PausedBannerX(p *Player, screenW, w int) int {
	switch p.ViewMode {
	case ModeCreature, ModeIsometric, ModeFront:
		return p.Window.X + (screenW-w-p.Window.X)/2
	default:
		return (screenW - w) / 2
	}
}

// ArmageddonCountdown returns the value shown in the armageddon banner and
// whether the banner is shown at all.
func ArmageddonCountdown(a Armageddon, turn int) (int, bool) {
	if a.Start == 0 {
		return 0, false
	}
	var i int
	if a.CountDown+a.Start <= turn {
		if a.End-a.Duration <= turn {
			i = a.End - turn
		}
	} else {
		i = turn - a.Start - a.CountDown
	}
	return i / 2, true
}

// ShowsPausedBanner reports whether the paused banner is drawn.
func ShowsPausedBanner(g *Game) bool {
	return g.Flags&GamePaused != 0 && g.Flags&GamePauseNoSplash == 0
}

// Redraw runs one display pass: it picks and applies the pointer, draws the
// view for the current mode and places the overlays. It returns the pointer
// that was applied.
func Redraw(f Frame, r Renderer, sink PointerSink, b Banner) Pointer {
	p, g := f.Player, f.Game
	p.Highlight = false
	if g.Kind == KindNoDisplay {
		return hidden
	}

	ptr := hidden
	if g.SmallMapState != 2 {
		ptr = PointerGraphic(f)
	}
	ptr.Apply(sink)
	p.Highlight = ptr.Highlight

	switch p.ViewMode {
	case ModeEmpty:
	case ModeCreature:
		r.DrawCreatureView(p)
	case ModeIsometric:
		cam := p.ActiveCamera()
		saved := *cam
		cam.X, cam.Y = CameraDeviation(saved, f.Dungeon, f.Rand)
		r.DrawIsometricView(p)
		*cam = saved
	case ModeParchment:
		r.DrawParchmentView(p)
	case ModeFront:
		r.DrawFrontView(p)
	case ModeParchFadeIn:
		r.DrawParchmentFade(p, p.FadeStep)
		p.FadeStep = FadeIn(p.FadeStep)
	case ModeParchFadeOut:
		r.DrawParchmentFade(p, p.FadeStep)
		p.FadeStep = FadeOut(p.FadeStep)
	default:
		f.logger().Error("unsupported drawing state", "mode", int(p.ViewMode))
	}

	if ShowsPausedBanner(g) {
		r.DrawBanner(PausedBannerX(p, g.ScreenW, b.PausedWidth), 16, "Paused")
	}
	if n, ok := ArmageddonCountdown(g.Armageddon, g.Turn); ok {
		r.DrawBanner(g.ScreenW-b.ArmageddonWidth-16, 16, fmt.Sprintf(" Armageddon %03d", n))
	}
	return ptr
}
