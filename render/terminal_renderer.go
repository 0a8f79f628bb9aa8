package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mazechase/core"
	"github.com/lixenwraith/mazechase/maze"
	"github.com/lixenwraith/mazechase/parameter"
	"github.com/lixenwraith/mazechase/sim"
)

const (
	// CellsPerTile is the number of terminal columns one board tile spans
	CellsPerTile = 2

	// PanelWidth and PanelHeight are the terminal size of one board
	PanelWidth  = parameter.BoardWidth * CellsPerTile
	PanelHeight = parameter.BoardHeight

	// PanelGap separates side by side boards
	PanelGap = 4

	// bannerY is the board row the banner is centred on
	bannerY = 15

	// livesY is the board row of the remaining lives icons
	livesY = 1

	// pixelsPerCell is the horizontal sub-tile resolution of one terminal column
	pixelsPerCell = parameter.TileSize / CellsPerTile
)

// TerminalRenderer draws game views onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	color  bool
}

// NewTerminalRenderer creates a renderer; color false draws everything in the default style
func NewTerminalRenderer(screen tcell.Screen, color bool) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		color:  color,
	}
}

// Size returns the terminal area needed for n side by side boards
func Size(n int) (width, height int) {
	if n < 1 {
		n = 1
	}
	return n*PanelWidth + (n-1)*PanelGap, PanelHeight
}

// RenderFrame renders every view side by side and shows the frame
func (r *TerminalRenderer) RenderFrame(views ...sim.View) {
	r.screen.Clear()

	w, h := r.screen.Size()
	needW, needH := Size(len(views))
	if w < needW || h < needH {
		r.drawText(0, 0, fmt.Sprintf("terminal too small: need %dx%d", needW, needH), r.style(RgbText))
		r.screen.Show()
		return
	}

	originX := (w - needW) / 2
	originY := (h - needH) / 2
	for i, v := range views {
		r.drawPanel(originX+i*(PanelWidth+PanelGap), originY, v)
	}
	r.screen.Show()
}

// panel is one board mapped onto the screen
type panel struct {
	x, y int
}

// cell returns the screen cell of the top-left column of a board tile
func (p panel) cell(t core.Tile) (int, int) {
	return p.x + t.X*CellsPerTile, p.y + parameter.BoardHeight - 1 - t.Y
}

// contains reports whether a screen column belongs to the panel
func (p panel) contains(x int) bool {
	return x >= p.x && x < p.x+PanelWidth
}

func (r *TerminalRenderer) drawPanel(x, y int, v sim.View) {
	p := panel{x: x, y: y}

	if v.MazeVisible && v.Grid != nil {
		r.drawMaze(p, v.Grid)
	}
	if v.PelletsVisible {
		r.drawPellets(p, v)
	}
	if v.TopVisible {
		r.drawTop(p, v)
	}
	if v.LivesVisible {
		r.drawLives(p, v.Lives)
	}
	for _, g := range v.Ghosts {
		r.drawGhost(p, g)
	}
	if v.Player.Visible {
		r.drawPlayer(p, v.Player)
	}
	r.drawBanner(p, v.Banner)
}

func (r *TerminalRenderer) drawMaze(p panel, grid *maze.Grid) {
	wall := r.style(RgbWall)
	door := r.style(RgbDoor)
	for ty := 0; ty < parameter.BoardHeight; ty++ {
		for tx := 0; tx < parameter.BoardWidth; tx++ {
			t := core.Tile{X: tx, Y: ty}
			var ch rune
			st := wall
			switch grid.Glyph(t) {
			case '|':
				ch = '█'
			case '-':
				ch = '─'
				st = door
			default:
				continue
			}
			sx, sy := p.cell(t)
			r.screen.SetContent(sx, sy, ch, nil, st)
			r.screen.SetContent(sx+1, sy, ch, nil, st)
		}
	}
}

func (r *TerminalRenderer) drawPellets(p panel, v sim.View) {
	st := r.style(RgbPellet)
	for ty := 0; ty < parameter.BoardHeight; ty++ {
		for tx := 0; tx < parameter.BoardWidth; tx++ {
			var ch rune
			switch v.Pellets[ty][tx] {
			case maze.KindDot:
				ch = '·'
			case maze.KindEnergizer:
				if !v.EnergizersLit {
					continue
				}
				ch = '●'
			default:
				continue
			}
			sx, sy := p.cell(core.Tile{X: tx, Y: ty})
			r.screen.SetContent(sx, sy, ch, nil, st)
		}
	}
}

func (r *TerminalRenderer) drawTop(p panel, v sim.View) {
	st := r.style(RgbText)
	var line string
	if v.ShowBest {
		line = fmt.Sprintf("TIME TO BEAT %4d", v.BestTime)
	} else {
		line = fmt.Sprintf("TIME %4d", v.Time)
	}
	r.drawText(p.x+(PanelWidth-len(line))/2, p.y+1, line, st)
}

func (r *TerminalRenderer) drawLives(p panel, lives int) {
	st := r.style(RgbPlayer)
	for i := 1; i <= lives; i++ {
		sx, sy := p.cell(core.Tile{X: i, Y: livesY})
		r.drawText(sx, sy, "ᗧ", st)
	}
}

func (r *TerminalRenderer) drawBanner(p panel, b sim.Banner) {
	text := b.Text()
	if text == "" {
		return
	}
	st := r.style(bannerColors[b])
	lines := strings.Split(text, "\n")
	_, row := p.cell(core.Tile{Y: bannerY})
	row -= len(lines) / 2
	for i, line := range lines {
		r.drawText(p.x+(PanelWidth-len(line))/2, row+i, line, st)
	}
}

// sprite returns the screen cell of an entity drawn at a tile plus pixel offset
func (p panel) sprite(t core.Tile, off core.Point) (int, int) {
	px := t.X*parameter.TileSize + off.X
	py := t.Y*parameter.TileSize + off.Y + parameter.TileSize/2
	return p.x + floorDiv(px, pixelsPerCell), p.y + parameter.BoardHeight - 1 - floorDiv(py, parameter.TileSize)
}

// playerGlyphs are indexed by facing then mouth frame
var playerGlyphs = [...][3]string{
	core.DirNone:  {"()", "()", "()"},
	core.DirLeft:  {"()", ">)", "> "},
	core.DirRight: {"()", "(<", " <"},
	core.DirUp:    {"()", "\\/", "V "},
	core.DirDown:  {"()", "/\\", "^ "},
}

var deathGlyphs = []string{"()", "<>", "><", "''", ". ", "  "}

func (r *TerminalRenderer) drawPlayer(p panel, pl sim.PlayerView) {
	sx, sy := p.sprite(pl.Tile, pl.Offset)
	var glyph string
	switch {
	case pl.Dying:
		i := int((1 - pl.DeathScale) * float64(len(deathGlyphs)))
		if i < 0 {
			i = 0
		}
		if i >= len(deathGlyphs) {
			i = len(deathGlyphs) - 1
		}
		glyph = deathGlyphs[i]
	case int(pl.Facing) < len(playerGlyphs):
		glyph = playerGlyphs[pl.Facing][pl.Frame%3]
	default:
		glyph = playerGlyphs[core.DirNone][0]
	}
	r.drawClipped(p, sx, sy, glyph, r.style(RgbPlayer))
}

func (r *TerminalRenderer) drawGhost(p panel, g sim.GhostView) {
	var glyph string
	switch g.Shape {
	case sim.ShapeHidden:
		return
	case sim.ShapeEyes:
		glyph = "ºº"
	case sim.ShapeBurst:
		glyph = "**"
	default:
		if g.Frame == 0 {
			glyph = "ᗣᗣ"
		} else {
			glyph = "ᙁᙁ"
		}
	}
	sx, sy := p.sprite(g.Tile, g.Offset)
	r.drawClipped(p, sx, sy, glyph, r.style(ghostColor(g)))
}

// drawClipped draws a sprite keeping only the columns inside the panel
func (r *TerminalRenderer) drawClipped(p panel, x, y int, s string, st tcell.Style) {
	for _, ch := range s {
		if p.contains(x) && ch != ' ' {
			r.screen.SetContent(x, y, ch, nil, st)
		}
		x++
	}
}

func (r *TerminalRenderer) drawText(x, y int, s string, st tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, st)
		x++
	}
}

func (r *TerminalRenderer) style(fg tcell.Color) tcell.Style {
	if !r.color {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(fg).Background(RgbBackground)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
