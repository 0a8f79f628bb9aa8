package sim

import (
	"github.com/lixenwraith/mazechase/actor"
	"github.com/lixenwraith/mazechase/core"
	"github.com/lixenwraith/mazechase/maze"
	"github.com/lixenwraith/mazechase/parameter"
)

// Banner is the centre message of the display
type Banner uint8

const (
	BannerNone Banner = iota
	BannerPressConfirm
	BannerWaitOrPlay
	BannerReady
	BannerGameOver
	BannerDone
	BannerNewBest
)

var bannerTexts = [...]string{
	BannerNone:         "",
	BannerPressConfirm: "PRESS THE A BUTTON",
	BannerWaitOrPlay:   "WAIT FOR OPPONENT\nOR PRESS THE A BUTTON",
	BannerReady:        "READY",
	BannerGameOver:     "GAME OVER",
	BannerDone:         "YOU DID IT",
	BannerNewBest:      "NEW BEST TIME",
}

// Text returns the banner lines separated by newlines
func (b Banner) Text() string {
	if int(b) >= len(bannerTexts) {
		return ""
	}
	return bannerTexts[b]
}

// Shape is how a ghost is drawn this tick
type Shape uint8

const (
	ShapeHidden Shape = iota
	ShapeAlive
	ShapeFrightened
	ShapeFlashing
	ShapeEyes
	ShapeBurst
)

// flashPeriod is the blink half-period of frightened ghosts near the end of the timer
const flashPeriod = 16

// PlayerView is the drawable state of the player
type PlayerView struct {
	Visible    bool
	Tile       core.Tile
	Offset     core.Point // pixels from the tile origin
	Facing     core.Direction
	Frame      int
	Dying      bool
	DeathScale float64
}

// GhostView is the drawable state of one ghost
type GhostView struct {
	Name    string
	Shape   Shape
	Tile    core.Tile
	Offset  core.Point
	Facing  core.Direction
	Frame   int
	InPen   bool
	Control actor.Control
}

// View is a read-only snapshot of everything a renderer or sound sink needs
type View struct {
	Mode   string
	Banner Banner

	TopVisible bool
	ShowBest   bool
	Time       int
	BestTime   int

	Lives        int
	LivesVisible bool

	MazeVisible    bool
	PelletsVisible bool
	EnergizersLit  bool
	Pellets        [parameter.BoardHeight][parameter.BoardWidth]maze.Kind
	Remaining      int
	Grid           *maze.Grid

	Player PlayerView
	Ghosts []GhostView

	Frightened bool
	Versus     bool
}

// View captures the current state for output adapters
func (g *Game) View() View {
	v := View{
		Mode:           g.mode,
		Banner:         g.banner,
		TopVisible:     g.topVisible,
		ShowBest:       g.showBest,
		Time:           g.tick / g.rules.TicksPerDisplayUnit,
		BestTime:       g.bestShown,
		Lives:          g.lives,
		LivesVisible:   g.livesVisible,
		MazeVisible:    g.mazeVisible,
		PelletsVisible: g.pelletsVisible,
		EnergizersLit:  g.pellets.EnergizersVisible(),
		Remaining:      g.pellets.Remaining(),
		Grid:           g.grid,
		Frightened:     g.scared > 0,
		Versus:         g.versus,
	}

	for y := 0; y < parameter.BoardHeight; y++ {
		for x := 0; x < parameter.BoardWidth; x++ {
			p := g.pellets.At(core.Tile{X: x, Y: y})
			if !p.Eaten {
				v.Pellets[y][x] = p.Kind
			}
		}
	}

	p := g.player
	v.Player = PlayerView{
		Visible:    p.Mode() != actor.SubHide,
		Tile:       p.Tile,
		Offset:     p.DrawOffset(),
		Facing:     p.Facing,
		Frame:      p.Tick / 8 % 3,
		Dying:      p.Mode() == actor.SubDie,
		DeathScale: p.DeathScale(),
	}

	v.Ghosts = make([]GhostView, 0, len(g.ghosts))
	for _, gh := range g.ghosts {
		v.Ghosts = append(v.Ghosts, GhostView{
			Name:    gh.Name(),
			Shape:   g.ghostShape(gh),
			Tile:    gh.Tile,
			Offset:  gh.DrawOffset(),
			Facing:  gh.Facing,
			Frame:   gh.Tick / 8 % 2,
			InPen:   gh.Control().Scripted(),
			Control: gh.Control(),
		})
	}
	return v
}

func (g *Game) ghostShape(gh *actor.Ghost) Shape {
	if gh.Mode() == actor.SubDone {
		return ShapeBurst
	}
	switch gh.Visual() {
	case actor.VisualAlive:
		return ShapeAlive
	case actor.VisualFrightened:
		if g.scared < g.rules.FrightenedTicks/3 && (g.scared/flashPeriod)%2 == 0 {
			return ShapeFlashing
		}
		return ShapeFrightened
	case actor.VisualEaten:
		return ShapeEyes
	}
	return ShapeHidden
}
