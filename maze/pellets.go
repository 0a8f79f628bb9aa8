package maze

import (
	"fmt"

	"github.com/lixenwraith/mazechase/core"
	"github.com/lixenwraith/mazechase/parameter"
)

// Kind discriminates pellet types
type Kind uint8

const (
	KindNone Kind = iota
	KindDot
	KindEnergizer
)

// Pellet is one consumable on the board
type Pellet struct {
	Kind  Kind
	Eaten bool
}

// FreezeTicks is how long the player stalls after eating this pellet
func (p Pellet) FreezeTicks() int {
	switch p.Kind {
	case KindDot:
		return parameter.DotFreezeTicks
	case KindEnergizer:
		return parameter.EnergizerFreezeTicks
	}
	return 0
}

// Pellets is the mutable pellet board of one game
type Pellets struct {
	cells [parameter.BoardHeight][parameter.BoardWidth]Pellet
	total int
	eaten int
	tick  int
}

// NewPellets parses a layout where '.' is a dot and 'o' an energizer
func NewPellets(layout string) (*Pellets, error) {
	if len(layout) != parameter.BoardWidth*parameter.BoardHeight {
		return nil, fmt.Errorf("pellets: %w: got %d cells", ErrLayoutSize, len(layout))
	}

	p := &Pellets{}
	for y := 0; y < parameter.BoardHeight; y++ {
		row := rowOf(y)
		for x := 0; x < parameter.BoardWidth; x++ {
			switch layout[row*parameter.BoardWidth+x] {
			case '.':
				p.cells[y][x].Kind = KindDot
				p.total++
			case 'o':
				p.cells[y][x].Kind = KindEnergizer
				p.total++
			}
		}
	}
	return p, nil
}

// MustPellets panics on a malformed layout
func MustPellets(layout string) *Pellets {
	p, err := NewPellets(layout)
	if err != nil {
		panic(err)
	}
	return p
}

// At returns the pellet at t; KindNone outside the board
func (p *Pellets) At(t core.Tile) Pellet {
	if !onBoard(t) {
		return Pellet{}
	}
	return p.cells[t.Y][t.X]
}

// Eat consumes the pellet at t if one is present and uneaten
func (p *Pellets) Eat(t core.Tile) (Pellet, bool) {
	if !onBoard(t) {
		return Pellet{}, false
	}
	cell := &p.cells[t.Y][t.X]
	if cell.Kind == KindNone || cell.Eaten {
		return Pellet{}, false
	}
	cell.Eaten = true
	p.eaten++
	return *cell, true
}

// Reset restores every pellet and the blink clock
func (p *Pellets) Reset() {
	for y := range p.cells {
		for x := range p.cells[y] {
			p.cells[y][x].Eaten = false
		}
	}
	p.eaten = 0
	p.tick = 0
}

// Update advances the energizer blink clock
func (p *Pellets) Update() {
	p.tick++
}

// EnergizersVisible reports the current blink phase
func (p *Pellets) EnergizersVisible() bool {
	return (p.tick/parameter.EnergizerBlinkTicks)%2 == 0
}

// Total is the number of pellets on a fresh board
func (p *Pellets) Total() int { return p.total }

// Remaining is the number of uneaten pellets
func (p *Pellets) Remaining() int { return p.total - p.eaten }

func onBoard(t core.Tile) bool {
	return t.X >= 0 && t.X < parameter.BoardWidth && t.Y >= 0 && t.Y < parameter.BoardHeight
}
