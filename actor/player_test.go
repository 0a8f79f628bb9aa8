package actor

import (
	"math"
	"testing"

	"github.com/lixenwraith/mazechase/core"
)

func playingPlayer(a *fakeArena, tile core.Tile, offset int, facing core.Direction) *Player {
	p := a.player
	p.SetMode(SubPlay)
	p.Tile = tile
	p.Offset = offset
	p.Facing = facing
	return p
}

func TestPlayerResetState(t *testing.T) {
	a := newFakeArena()
	p := a.player
	if p.Tile != (core.Tile{X: 13, Y: 9}) || p.Offset != 8 || p.Facing != core.DirRight {
		t.Errorf("Expected start (13,9)+8 facing right, got %v+%d facing %v", p.Tile, p.Offset, p.Facing)
	}
	if p.Mode() != SubFixed {
		t.Errorf("Expected reset to fall back to fixed, got %v", p.Mode())
	}
	if p.Velocity() != 2 {
		t.Errorf("Expected velocity 2, got %d", p.Velocity())
	}
}

func TestPlayerStaticModesDoNotMove(t *testing.T) {
	a := newFakeArena()
	p := a.player
	for _, m := range []SubMode{SubFixed, SubShow, SubHide} {
		p.SetMode(m)
		p.SetDesired(core.DirLeft)
		if p.Update(a) {
			t.Errorf("%v: expected no repeat", m)
		}
		if p.Offset != 8 || p.Facing != core.DirRight {
			t.Errorf("%v: expected no motion, got offset %d facing %v", m, p.Offset, p.Facing)
		}
	}
}

func TestPlayerEatsAndFreezes(t *testing.T) {
	a := newFakeArena()
	p := playingPlayer(a, core.Tile{X: 14, Y: 9}, 14, core.DirRight)

	p.Update(a)
	if p.Tile != (core.Tile{X: 15, Y: 9}) || p.Offset != 0 {
		t.Fatalf("Expected commit to (15,9) offset 0, got %v offset %d", p.Tile, p.Offset)
	}
	if a.eaten != 1 {
		t.Errorf("Expected one pellet eaten, got %d", a.eaten)
	}
	if p.Freeze() != 1 {
		t.Errorf("Expected dot freeze 1, got %d", p.Freeze())
	}

	if p.Update(a) {
		t.Error("Expected frozen update not to repeat")
	}
	if p.Offset != 0 {
		t.Errorf("Expected no motion while frozen, got offset %d", p.Offset)
	}
	p.Update(a)
	if p.Offset != 2 {
		t.Errorf("Expected motion after freeze, got offset %d", p.Offset)
	}
}

func TestPlayerHaltsAtWall(t *testing.T) {
	a := newFakeArena()
	p := playingPlayer(a, core.Tile{X: 20, Y: 9}, 14, core.DirRight)

	if p.Update(a) {
		t.Error("Expected no repeat after halting")
	}
	if p.Tile != (core.Tile{X: 21, Y: 9}) || p.Velocity() != 0 {
		t.Fatalf("Expected halt at (21,9) with velocity 0, got %v velocity %d", p.Tile, p.Velocity())
	}

	p.Update(a)
	if p.Offset != 0 || p.Tile != (core.Tile{X: 21, Y: 9}) {
		t.Errorf("Expected halted player to stay, got %v offset %d", p.Tile, p.Offset)
	}
}

func TestPlayerReversalMirrorsOffset(t *testing.T) {
	a := newFakeArena()
	p := playingPlayer(a, core.Tile{X: 13, Y: 9}, 8, core.DirRight)
	before := p.Position()

	p.SetDesired(core.DirLeft)
	p.Update(a)

	if p.Facing != core.DirLeft || p.Tile != (core.Tile{X: 14, Y: 9}) || p.Offset != 10 {
		t.Fatalf("Expected (14,9)+10 facing left, got %v+%d facing %v", p.Tile, p.Offset, p.Facing)
	}
	if got := p.Position(); got.X != before.X-2 || got.Y != before.Y {
		t.Errorf("Expected position to move 2 left of %v, got %v", before, got)
	}
}

func TestPlayerTurnsOnlyIntoOpenTiles(t *testing.T) {
	a := newFakeArena()
	p := playingPlayer(a, core.Tile{X: 7, Y: 9}, 0, core.DirRight)

	p.SetDesired(core.DirUp)
	p.Update(a)
	if p.Facing != core.DirRight {
		t.Errorf("Expected turn into wall (7,10) refused, got facing %v", p.Facing)
	}

	p = playingPlayer(a, core.Tile{X: 6, Y: 9}, 0, core.DirRight)
	p.SetDesired(core.DirUp)
	p.Update(a)
	if p.Facing != core.DirUp || p.Offset != 2 {
		t.Errorf("Expected turn up at (6,9) boundary, got facing %v offset %d", p.Facing, p.Offset)
	}
}

func TestPlayerMidTileTurnNeedsThreshold(t *testing.T) {
	a := newFakeArena()
	p := playingPlayer(a, core.Tile{X: 7, Y: 9}, 4, core.DirLeft)

	p.SetDesired(core.DirUp)
	p.Update(a)
	if p.Cornering() || p.Facing != core.DirLeft {
		t.Errorf("Expected no cornering below threshold, got cornering=%v facing %v", p.Cornering(), p.Facing)
	}
}

func TestPlayerCornering(t *testing.T) {
	a := newFakeArena()
	p := playingPlayer(a, core.Tile{X: 7, Y: 9}, 8, core.DirLeft)

	p.SetDesired(core.DirUp)
	p.Update(a)
	if !p.Cornering() || p.Facing != core.DirUp {
		t.Fatalf("Expected cornering up, got cornering=%v facing %v", p.Cornering(), p.Facing)
	}
	if got := p.DrawOffset(); got != (core.Point{X: -10, Y: 2}) {
		t.Errorf("Expected draw offset (-10,2), got %v", got)
	}

	// No new turns are taken mid-corner
	p.SetDesired(core.DirRight)
	p.Update(a)
	if p.Facing != core.DirUp {
		t.Errorf("Expected turn request ignored while cornering, got facing %v", p.Facing)
	}

	p.Update(a)
	p.Update(a)
	if p.Cornering() {
		t.Fatal("Expected corner to complete after the old offset reached a full tile")
	}
	if p.Tile != (core.Tile{X: 6, Y: 9}) || p.Offset != 8 {
		t.Errorf("Expected (6,9)+8 after corner, got %v+%d", p.Tile, p.Offset)
	}
	if p.Freeze() != 1 {
		t.Errorf("Expected dot at (6,9) eaten on corner commit, freeze %d", p.Freeze())
	}
}

func TestPlayerSpeedBudget(t *testing.T) {
	a := newFakeArena()
	p := playingPlayer(a, core.Tile{X: 6, Y: 3}, 0, core.DirRight)

	// Entry 0 of the normal table is 1: first tick of a life runs two quanta, then one
	if !p.Update(a) {
		t.Error("Expected repeat on fresh repetition counter")
	}
	if p.Update(a) {
		t.Error("Expected budget exhausted on second quantum")
	}
	if p.Cursor() != 1 {
		t.Errorf("Expected cursor 1, got %d", p.Cursor())
	}
}

func TestPlayerDeathAnimation(t *testing.T) {
	a := newFakeArena()
	p := a.player
	p.Tick = 40
	p.SetMode(SubDie)

	p.Update(a)
	if p.DeathScale() != 0 || p.Tick != 1 {
		t.Errorf("Expected scale 0 at tick 0, got %f tick %d", p.DeathScale(), p.Tick)
	}
	p.Update(a)
	want := math.Sin(1.0/12) * 4
	if math.Abs(p.DeathScale()-want) > 1e-9 {
		t.Errorf("Expected scale %f, got %f", want, p.DeathScale())
	}
}

// TestPlayerOffsetBounded drives the player with changing intents and checks the offset invariant
func TestPlayerOffsetBounded(t *testing.T) {
	a := newFakeArena()
	p := a.player
	p.SetMode(SubPlay)
	dirs := []core.Direction{core.DirLeft, core.DirUp, core.DirRight, core.DirDown}

	for tick := 0; tick < 4000; tick++ {
		desired := dirs[(tick/37)%len(dirs)]
		quanta(func() bool {
			p.SetDesired(desired)
			r := p.Update(a)
			if p.Offset < 0 || p.Offset >= 16 {
				t.Fatalf("tick %d: offset %d out of range", tick, p.Offset)
			}
			return r
		})
	}
	if a.eaten == 0 {
		t.Error("Expected the wandering player to eat something")
	}
}
