package view

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/keepercfg/internal/core"
)

const (
	// AngleUnits is the number of angle units in a full turn.
	AngleUnits = 2048
	// MapExtent bounds camera coordinates.
	MapExtent = 65535

	quakeRange = 80
)

// Projection is the sprite projection used by the renderer.
type Projection int

const (
	ProjectionKeep Projection = iota
	Projection3D
	ProjectionIsometric
)

// EngineSetup lists the renderer and sound changes a view switch asks for.
type EngineSetup struct {
	// Applied is false for remote players; only the camera changes then.
	Applied     bool
	SetLens     bool
	LensMode    int
	Projection  Projection
	Deadzone    int
	CentreMouse bool
}

// SetEngineView switches the player to a view mode and returns what the
// engine has to change for it.
func SetEngineView(p *Player, mode ViewMode) EngineSetup {
	var s EngineSetup
	switch mode {
	case ModeCreature:
		p.Camera = 1
		if p.Local {
			s = EngineSetup{Applied: true, SetLens: true, LensMode: 2, Projection: Projection3D, CentreMouse: true}
		}
	case ModeIsometric:
		p.Camera = 0
		if p.Local {
			s = EngineSetup{Applied: true, SetLens: true, Projection: ProjectionIsometric, Deadzone: 1280}
		}
	case ModeParchment:
		p.Camera = 2
		if p.Local {
			s = EngineSetup{Applied: true, Deadzone: 1280}
		}
	case ModeFront:
		p.Camera = 3
		if p.Local {
			s = EngineSetup{Applied: true, SetLens: true, Projection: ProjectionIsometric, Deadzone: 1280}
		}
	}
	if s.SetLens {
		p.LensMode = s.LensMode
	}
	p.ViewMode = mode
	return s
}

// sinL returns the sine of an angle in AngleUnits, scaled to 65536.
func sinL(a int) int {
	a &= AngleUnits - 1
	return int(math.Round(65536 * math.Sin(float64(a)*2*math.Pi/AngleUnits)))
}

func cosL(a int) int {
	return sinL(a + AngleUnits/4)
}

// CameraDeviation returns the camera position shaken by the dungeon's quake
// and jump effects. Without either effect the position is returned as is;
// otherwise it is clamped to the map. A nil rng uses the global source.
func CameraDeviation(cam Camera, d *Dungeon, rng *rand.Rand) (x, y int) {
	x, y = cam.X, cam.Y
	if d == nil {
		return x, y
	}
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	if d.CameraDeviateQuake != 0 {
		x += intn(quakeRange) - quakeRange/2
		y += intn(quakeRange) - quakeRange/2
	}
	if d.CameraDeviateJump != 0 {
		x += (d.CameraDeviateJump * sinL(cam.Orient) >> 8) >> 8
		y += (-(d.CameraDeviateJump * cosL(cam.Orient) >> 8)) >> 8
	}
	if d.CameraDeviateQuake != 0 || d.CameraDeviateJump != 0 {
		x = core.Clamp(x, 0, MapExtent)
		y = core.Clamp(y, 0, MapExtent)
	}
	return x, y
}
