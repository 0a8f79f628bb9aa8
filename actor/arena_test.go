package actor

import (
	"github.com/lixenwraith/mazechase/core"
	"github.com/lixenwraith/mazechase/maze"
	"github.com/lixenwraith/mazechase/parameter"
)

// fakeArena is a minimal game stand-in over the classic maze
type fakeArena struct {
	grid    *maze.Grid
	pellets *maze.Pellets
	player  *Player
	ghosts  []*Ghost

	eaten      int
	frozen     bool
	frightened bool
	seed       int
}

func newFakeArena() *fakeArena {
	rules := parameter.DefaultRules()
	a := &fakeArena{
		grid:    maze.MustGrid(maze.ClassicBoard),
		pellets: maze.MustPellets(maze.ClassicPellets),
		player:  NewPlayer(rules),
	}
	for _, p := range Profiles() {
		a.ghosts = append(a.ghosts, NewGhost(p, rules))
	}
	return a
}

func (a *fakeArena) Grid() *maze.Grid  { return a.grid }
func (a *fakeArena) Player() *Player   { return a.player }
func (a *fakeArena) Lead() *Ghost      { return a.ghosts[0] }
func (a *fakeArena) PelletsEaten() int { return a.eaten }
func (a *fakeArena) Frozen() bool      { return a.frozen }
func (a *fakeArena) Frightened() bool  { return a.frightened }

func (a *fakeArena) Random() int {
	r := a.seed
	a.seed++
	return r
}

func (a *fakeArena) Eat(t core.Tile) int {
	p, ok := a.pellets.Eat(t)
	if !ok {
		return 0
	}
	a.eaten++
	return p.FreezeTicks()
}

func (a *fakeArena) ghost(id Identity) *Ghost {
	for _, g := range a.ghosts {
		if g.Identity() == id {
			return g
		}
	}
	return nil
}

// quanta runs an entity update until it stops repeating, bounded like the game loop
func quanta(update func() bool) {
	for i := 0; i < parameter.MaxQuantaPerTick && update(); i++ {
	}
}
