package sim

import (
	_ "embed"
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/mazechase/actor"
	"github.com/lixenwraith/mazechase/core"
	"github.com/lixenwraith/mazechase/event"
	"github.com/lixenwraith/mazechase/fsm"
	"github.com/lixenwraith/mazechase/maze"
	"github.com/lixenwraith/mazechase/parameter"
	"github.com/lixenwraith/mazechase/record"
)

//go:embed modes.yaml
var defaultModeTable []byte

// ErrBadTarget is returned when a mode names a sub-mode its component does not have
var ErrBadTarget = errors.New("unknown sub-mode target")

// Mode names of the master table
const (
	ModeReset      = "reset"
	ModeStart      = "start"
	ModeWaitOrPlay = "wait_or_play"
	ModeReady      = "ready"
	ModePlay       = "play"
	ModeDie        = "die"
	ModeDying      = "dying"
	ModePrepare    = "prepare"
	ModeGameOver   = "game_over"
	ModeDone       = "done"
	ModeDoneRecord = "done_record"
)

// Sub-mode target keys every mode must name
const (
	targetMaze    = "maze"
	targetPellets = "pellets"
	targetPlayer  = "player"
	targetGhosts  = "ghosts"
	targetLives   = "lives"
	targetDisplay = "display"
)

var requiredTargets = []string{targetMaze, targetPellets, targetPlayer, targetGhosts, targetLives, targetDisplay}

// timedModes advance the elapsed clock once the first life is spent
var timedModes = map[string]bool{
	ModeReady:   true,
	ModePlay:    true,
	ModeDie:     true,
	ModeDying:   true,
	ModePrepare: true,
}

// Game owns one complete simulation: board, actors, mode machine and timers
// Not safe for concurrent use; two games may share a goroutine and a versus link
type Game struct {
	rules   *parameter.Rules
	grid    *maze.Grid
	pellets *maze.Pellets
	player  *actor.Player
	ghosts  []*actor.Ghost
	hits    []bool

	machine *fsm.Machine[*Game]
	store   record.Store
	events  *event.Queue
	port    *Port

	modeTable []byte
	mode      string

	mazeVisible    bool
	pelletsVisible bool
	livesVisible   bool
	banner         Banner
	topVisible     bool
	showBest       bool

	phaseIndex int
	phaseTimer int

	frame     int // updates since creation, stamps events
	tick      int // elapsed play ticks
	bestTick  int
	bestShown int
	desired   core.Direction
	eatenWait int
	scared    int
	hit       bool
	seed      int
	lives     int

	confirm  bool
	released bool
	versus   bool
}

// Option configures a Game at construction
type Option func(*Game)

// WithRules replaces the default tuning
func WithRules(r *parameter.Rules) Option {
	return func(g *Game) { g.rules = r }
}

// WithStore sets the best time persistence; nil keeps records in memory only
func WithStore(s record.Store) Option {
	return func(g *Game) { g.store = s }
}

// WithModeTable replaces the embedded master mode table
func WithModeTable(data []byte) Option {
	return func(g *Game) { g.modeTable = data }
}

// NewGame builds a game on the classic board and enters the reset mode
func NewGame(opts ...Option) (*Game, error) {
	g := &Game{
		rules:     parameter.DefaultRules(),
		modeTable: defaultModeTable,
		events:    event.NewQueue(),
		released:  true,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.store == nil {
		g.store = record.NewMemoryStore()
	}

	grid, err := maze.NewGrid(maze.ClassicBoard)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	pellets, err := maze.NewPellets(maze.ClassicPellets)
	if err != nil {
		return nil, fmt.Errorf("pellet layout: %w", err)
	}
	g.grid = grid
	g.pellets = pellets

	g.player = actor.NewPlayer(g.rules)
	for _, p := range actor.Profiles() {
		g.ghosts = append(g.ghosts, actor.NewGhost(p, g.rules))
	}
	g.hits = make([]bool, len(g.ghosts))

	best, err := record.LoadOr(g.store, g.rules.DefaultBestTick)
	if err != nil {
		log.Printf("best time unavailable, using default: %v", err)
	}
	g.bestTick = best
	g.bestShown = best / g.rules.TicksPerDisplayUnit

	if err := g.buildMachine(); err != nil {
		return nil, err
	}
	if err := g.machine.Init(g); err != nil {
		return nil, fmt.Errorf("mode table: %w", err)
	}
	return g, nil
}

// buildMachine registers guards and actions and loads the mode table
func (g *Game) buildMachine() error {
	m := fsm.NewMachine[*Game]()
	registerGuards(m)
	registerActions(m)
	m.OnTransition(applyTargets)

	if err := m.LoadConfig(g.modeTable); err != nil {
		return fmt.Errorf("mode table: %w", err)
	}
	if err := m.Validate(requiredTargets...); err != nil {
		return fmt.Errorf("mode table: %w", err)
	}
	if err := checkTargets(m); err != nil {
		return fmt.Errorf("mode table: %w", err)
	}
	g.machine = m
	return nil
}

// Update advances the game by exactly one tick
func (g *Game) Update() {
	g.frame++
	g.drainMailbox()
	g.machine.Update(g)

	if g.eatenWait > 0 {
		g.eatenWait--
	}

	if g.mode == ModeDying {
		g.player.Update(g)
	} else {
		g.resolve()
	}

	g.advancePhase()
	g.pellets.Update()

	if timedModes[g.mode] {
		if g.lives != g.rules.Lives {
			g.tick++
		}
		g.showBest = false
	}
}

// advancePhase walks the scatter/chase schedule while play runs undisturbed
func (g *Game) advancePhase() {
	if g.mode != ModePlay || g.scared != 0 || g.hit {
		return
	}

	c := actor.ControlScatter
	if g.rules.Phases[g.phaseIndex].Chase {
		c = actor.ControlChase
	}
	for _, gh := range g.ghosts {
		gh.RequestControl(c, actor.VisualAlive)
	}

	g.phaseTimer--
	if g.phaseTimer == 0 {
		if g.phaseIndex < len(g.rules.Phases)-1 {
			g.phaseIndex++
		}
		g.phaseTimer = g.rules.Phases[g.phaseIndex].Ticks
	}
}

// energize frightens every ghost and restarts the frightened timer
func (g *Game) energize() {
	for _, gh := range g.ghosts {
		gh.RequestControl(actor.ControlRandom, actor.VisualFrightened)
	}
	g.scared = g.rules.FrightenedTicks
}

// SetDirection stores the desired heading; it stays until the next round
func (g *Game) SetDirection(d core.Direction) {
	g.desired = d
}

// HandleConfirm feeds the confirm button; only a press after a release counts
func (g *Game) HandleConfirm(pressed bool) {
	if !pressed {
		g.released = true
		return
	}
	if g.released {
		g.confirm = true
		g.released = false
	}
}

// Events drains the outbound event queue
func (g *Game) Events() []event.GameEvent {
	return g.events.Consume()
}

func (g *Game) emit(t event.EventType, payload any) {
	g.events.Emit(t, payload, g.frame)
}

// Mode returns the active master mode name
func (g *Game) Mode() string { return g.mode }

// Lives returns the remaining lives
func (g *Game) Lives() int { return g.lives }

// Elapsed returns the elapsed play ticks
func (g *Game) Elapsed() int { return g.tick }

// BestTick returns the best completion tick known to this game
func (g *Game) BestTick() int { return g.bestTick }

// Versus reports whether a paired session is committed
func (g *Game) Versus() bool { return g.versus }

// FrightenedTicks returns the remaining frightened time
func (g *Game) FrightenedTicks() int { return g.scared }

// Ghosts exposes the adversaries in identity order
func (g *Game) Ghosts() []*actor.Ghost { return g.ghosts }

// Arena implementation

func (g *Game) Grid() *maze.Grid { return g.grid }

func (g *Game) Player() *actor.Player { return g.player }

func (g *Game) Lead() *actor.Ghost { return g.ghosts[0] }

func (g *Game) PelletsEaten() int { return g.pellets.Total() - g.pellets.Remaining() }

func (g *Game) Frozen() bool { return g.eatenWait > 0 }

func (g *Game) Frightened() bool { return g.scared > 0 }

// Eat consumes the pellet under the player and returns the resulting stall
func (g *Game) Eat(t core.Tile) int {
	p, ok := g.pellets.Eat(t)
	if !ok {
		return 0
	}

	payload := &event.PelletPayload{Tile: t, Remaining: g.pellets.Remaining()}
	if p.Kind == maze.KindEnergizer {
		g.energize()
		g.emit(event.EventEnergizerEaten, payload)
	} else {
		g.emit(event.EventDotEaten, payload)
	}
	return p.FreezeTicks()
}
