package sim

import (
	"math"

	"github.com/lixenwraith/mazechase/actor"
	"github.com/lixenwraith/mazechase/event"
	"github.com/lixenwraith/mazechase/parameter"
)

// resolve runs every entity's movement quanta for this tick and settles collisions
func (g *Game) resolve() {
	for i := range g.hits {
		g.hits[i] = false
	}

	if g.eatenWait == 0 {
		if g.scared > 0 && g.mode == ModePlay {
			g.scared--
			if g.scared == 0 {
				g.emit(event.EventFrightenedEnd, nil)
			}
		}

		for q := 0; q < parameter.MaxQuantaPerTick; q++ {
			g.player.SetDesired(g.desired)
			repeat := g.player.Update(g)
			for i, gh := range g.ghosts {
				if g.touching(gh) {
					g.hits[i] = true
				}
			}
			if !repeat {
				break
			}
		}
	}

	for i, gh := range g.ghosts {
		for q := 0; q < parameter.MaxQuantaPerTick; q++ {
			repeat := gh.Update(g)
			if g.touching(gh) {
				g.hits[i] = true
			}
			if !repeat {
				break
			}
		}
	}

	if g.eatenWait != 0 {
		return
	}
	for i, gh := range g.ghosts {
		if !g.hits[i] || gh.Control().Scripted() {
			continue
		}
		switch gh.Visual() {
		case actor.VisualFrightened:
			gh.RequestControl(actor.ControlHeadingHome, actor.VisualEaten)
			g.eatenWait = g.rules.EatenPauseTicks
			g.emit(event.EventGhostEaten, &event.GhostPayload{Ghost: gh.Name(), Tile: gh.Tile})
		case actor.VisualAlive:
			if !g.hit && g.mode == ModePlay {
				g.emit(event.EventPlayerHit, &event.GhostPayload{Ghost: gh.Name(), Tile: gh.Tile})
			}
			g.hit = true
		}
	}
}

// touching reports whether the player and ghost are within collision distance
func (g *Game) touching(gh *actor.Ghost) bool {
	a := g.player.Position()
	b := gh.Position()
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y)) <= parameter.CollisionDistance
}
