package parameter

import "github.com/lixenwraith/mazechase/core"

// Board Geometry
const (
	// BoardWidth is the maze width in tiles
	BoardWidth = 28
	// BoardHeight is the maze height in tiles
	BoardHeight = 36

	// TileSize is the sub-tile resolution; offsets run in [0, TileSize)
	TileSize = 16

	// TunnelY is the row that wraps around at both ends
	TunnelY = 18

	// TunnelWrapLeft and TunnelWrapRight are the virtual columns where wrap happens
	TunnelWrapLeft  = -2
	TunnelWrapRight = BoardWidth + 2 - 1

	// TunnelWrapOffset is the offset given after a wrap so the entity does not re-trigger it
	TunnelWrapOffset = 2

	// TunnelSlowColumns is the number of columns at each tunnel end that count as tunnel space
	TunnelSlowColumns = 5
)

// Pellets
const (
	// TotalPellets is 240 dots plus 4 energizers
	TotalPellets = 244

	// DotFreezeTicks is how long the player stalls after eating a dot
	DotFreezeTicks = 1
	// EnergizerFreezeTicks is how long the player stalls after eating an energizer
	EnergizerFreezeTicks = 3

	// EnergizerBlinkTicks toggles energizer visibility
	EnergizerBlinkTicks = 10
)

// Movement
const (
	// MoveQuantum is the offset gained per movement step
	MoveQuantum = 2

	// CorneringThreshold is the minimum offset before an early turn is accepted
	CorneringThreshold = 4 * MoveQuantum

	// CollisionDistance is the pixel distance at which player and ghost touch
	CollisionDistance = 8.0

	// MaxQuantaPerTick bounds the repeat loop of a single entity within one tick
	MaxQuantaPerTick = 8
)

// Home Pen
var (
	// HomeDoor is the tile in front of the pen door; a returning ghost stops here at half offset
	HomeDoor = core.Tile{X: 13, Y: TunnelY + 3}

	// HomeSeat is the target a returning ghost steers for
	HomeSeat = core.Tile{X: 13, Y: TunnelY}

	// HomeExit is where a ghost is placed once its scripted exit completes
	HomeExit = core.Tile{X: 14, Y: TunnelY + 3}
)
