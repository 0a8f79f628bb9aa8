package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/mazechase/actor"
	"github.com/lixenwraith/mazechase/core"
	"github.com/lixenwraith/mazechase/maze"
	"github.com/lixenwraith/mazechase/sim"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func testView() sim.View {
	v := sim.View{
		Mode:           "ready",
		Banner:         sim.BannerReady,
		TopVisible:     true,
		ShowBest:       true,
		BestTime:       9999,
		Lives:          2,
		LivesVisible:   true,
		MazeVisible:    true,
		PelletsVisible: true,
		EnergizersLit:  true,
		Grid:           maze.MustGrid(maze.ClassicBoard),
		Player: sim.PlayerView{
			Visible: true,
			Tile:    core.Tile{X: 13, Y: 8},
			Facing:  core.DirLeft,
		},
		Ghosts: []sim.GhostView{
			{Name: "shadow", Shape: sim.ShapeAlive, Tile: core.Tile{X: 13, Y: 21}, Control: actor.ControlChase},
			{Name: "speedy", Shape: sim.ShapeHidden, Tile: core.Tile{X: 5, Y: 8}},
		},
	}
	v.Pellets[8][1] = maze.KindDot
	v.Pellets[8][3] = maze.KindEnergizer
	return v
}

func runeAt(screen tcell.Screen, x, y int) rune {
	mainc, _, _, _ := screen.GetContent(x, y)
	return mainc
}

func lineAt(screen tcell.Screen, x, y, n int) string {
	out := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, runeAt(screen, x+i, y))
	}
	return string(out)
}

func TestRenderSinglePanel(t *testing.T) {
	w, h := Size(1)
	screen := newScreen(t, w, h)
	r := NewTerminalRenderer(screen, true)

	r.RenderFrame(testView())

	// Top wall row of the board
	assert.Equal(t, '█', runeAt(screen, 0, 3))
	assert.Equal(t, '█', runeAt(screen, PanelWidth-1, 3))

	// Pen door
	assert.Equal(t, '─', runeAt(screen, 13*CellsPerTile, 35-20))

	// Pellets on board row y=8
	assert.Equal(t, '·', runeAt(screen, 1*CellsPerTile, 35-8))
	assert.Equal(t, '●', runeAt(screen, 3*CellsPerTile, 35-8))

	// Player and ghosts
	assert.Equal(t, "()", lineAt(screen, 13*CellsPerTile, 35-8, 2))
	assert.Equal(t, 'ᗣ', runeAt(screen, 13*CellsPerTile, 35-21))
	assert.NotEqual(t, 'ᗣ', runeAt(screen, 5*CellsPerTile, 35-8))

	// Banner and top line
	assert.Equal(t, "READY", lineAt(screen, (PanelWidth-5)/2, 35-bannerY, 5))
	assert.Equal(t, "TIME TO BEAT 9999", lineAt(screen, (PanelWidth-17)/2, 1, 17))

	// Two lives icons
	assert.Equal(t, 'ᗧ', runeAt(screen, 1*CellsPerTile, 35-livesY))
	assert.Equal(t, 'ᗧ', runeAt(screen, 2*CellsPerTile, 35-livesY))
	assert.NotEqual(t, 'ᗧ', runeAt(screen, 3*CellsPerTile, 35-livesY))
}

func TestRenderColors(t *testing.T) {
	w, h := Size(1)
	screen := newScreen(t, w, h)

	NewTerminalRenderer(screen, true).RenderFrame(testView())
	_, _, style, _ := screen.GetContent(13*CellsPerTile, 35-21)
	fg, bg, _ := style.Decompose()
	if fg != RgbShadow {
		t.Errorf("Expected shadow color %v, got %v", RgbShadow, fg)
	}
	if bg != RgbBackground {
		t.Errorf("Expected background %v, got %v", RgbBackground, bg)
	}

	NewTerminalRenderer(screen, false).RenderFrame(testView())
	_, _, style, _ = screen.GetContent(13*CellsPerTile, 35-21)
	if style != tcell.StyleDefault {
		t.Errorf("Expected default style without color, got %v", style)
	}
}

func TestRenderGhostShapes(t *testing.T) {
	cases := []struct {
		shape sim.Shape
		want  tcell.Color
		glyph rune
	}{
		{sim.ShapeFrightened, RgbFrightened, 'ᗣ'},
		{sim.ShapeFlashing, RgbFlashing, 'ᗣ'},
		{sim.ShapeEyes, RgbEyes, 'º'},
		{sim.ShapeBurst, RgbShadow, '*'},
	}
	for _, c := range cases {
		w, h := Size(1)
		screen := newScreen(t, w, h)
		v := testView()
		v.Ghosts[0].Shape = c.shape

		NewTerminalRenderer(screen, true).RenderFrame(v)

		mainc, _, style, _ := screen.GetContent(13*CellsPerTile, 35-21)
		fg, _, _ := style.Decompose()
		if mainc != c.glyph {
			t.Errorf("Shape %d: expected glyph %c, got %c", c.shape, c.glyph, mainc)
		}
		if fg != c.want {
			t.Errorf("Shape %d: expected color %v, got %v", c.shape, c.want, fg)
		}
	}
}

func TestRenderSubTileOffset(t *testing.T) {
	w, h := Size(1)
	screen := newScreen(t, w, h)
	v := testView()
	v.Player.Offset = core.Point{X: -8}

	NewTerminalRenderer(screen, true).RenderFrame(v)

	// Half a tile left is one column left
	assert.Equal(t, "()", lineAt(screen, 13*CellsPerTile-1, 35-8, 2))
}

func TestRenderTunnelClipped(t *testing.T) {
	w, h := Size(2)
	screen := newScreen(t, w, h)
	left := testView()
	left.Player.Tile = core.Tile{X: 28, Y: 18}
	left.Player.Offset = core.Point{X: -8}
	right := testView()
	right.Player.Visible = false

	NewTerminalRenderer(screen, true).RenderFrame(left, right)

	for x := PanelWidth; x < PanelWidth+PanelGap; x++ {
		assert.Equal(t, ' ', runeAt(screen, x, 35-18), "gap column %d", x)
	}
	assert.Equal(t, " (", lineAt(screen, PanelWidth-2, 35-18, 2), "half a sprite on the last column")
}

func TestRenderTwoPanels(t *testing.T) {
	w, h := Size(2)
	screen := newScreen(t, w, h)
	left := testView()
	right := testView()
	right.Banner = sim.BannerWaitOrPlay
	right.ShowBest = false
	right.Time = 42

	NewTerminalRenderer(screen, true).RenderFrame(left, right)

	x := PanelWidth + PanelGap
	assert.Equal(t, "READY", lineAt(screen, (PanelWidth-5)/2, 35-bannerY, 5))
	assert.Equal(t, "TIME   42", lineAt(screen, x+(PanelWidth-9)/2, 1, 9))
	assert.Equal(t, "WAIT FOR OPPONENT", lineAt(screen, x+(PanelWidth-17)/2, 35-bannerY-1, 17))
	assert.Equal(t, "OR PRESS THE A BUTTON", lineAt(screen, x+(PanelWidth-21)/2, 35-bannerY, 21))
}

func TestRenderTooSmall(t *testing.T) {
	screen := newScreen(t, 80, 24)

	NewTerminalRenderer(screen, true).RenderFrame(testView())

	assert.Equal(t, "terminal too small", lineAt(screen, 0, 0, 18))
}

func TestRenderHiddenLayers(t *testing.T) {
	w, h := Size(1)
	screen := newScreen(t, w, h)
	v := testView()
	v.MazeVisible = false
	v.PelletsVisible = false
	v.LivesVisible = false
	v.TopVisible = false
	v.Banner = sim.BannerNone

	NewTerminalRenderer(screen, true).RenderFrame(v)

	assert.Equal(t, ' ', runeAt(screen, 0, 3))
	assert.Equal(t, ' ', runeAt(screen, 1*CellsPerTile, 35-8))
	assert.Equal(t, ' ', runeAt(screen, 1*CellsPerTile, 35-livesY))
}
