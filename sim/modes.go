package sim

import (
	"fmt"
	"log"

	"github.com/lixenwraith/mazechase/actor"
	"github.com/lixenwraith/mazechase/core"
	"github.com/lixenwraith/mazechase/event"
	"github.com/lixenwraith/mazechase/fsm"
	"github.com/lixenwraith/mazechase/record"
)

// registerGuards binds the guard names used by the mode table
func registerGuards(m *fsm.Machine[*Game]) {
	// Consumes a confirm edge; pairs with a peer already waiting for an opponent
	m.RegisterGuard("confirm_or_pair", func(g *Game) bool {
		if !g.confirm {
			return false
		}
		if g.port.PeerWaiting() {
			g.versus = true
			g.port.Send(event.EventPairRequest, g.frame)
		}
		g.confirm = false
		return true
	})

	m.RegisterGuard("versus_or_confirm", func(g *Game) bool {
		if g.versus {
			return true
		}
		if g.confirm {
			g.confirm = false
			return true
		}
		return false
	})

	m.RegisterGuard("cleared_with_record", func(g *Game) bool {
		return g.pellets.Remaining() == 0 && g.tick <= g.bestTick
	})

	m.RegisterGuard("cleared", func(g *Game) bool {
		return g.pellets.Remaining() == 0
	})

	// Consumes the hit signal
	m.RegisterGuard("hit", func(g *Game) bool {
		if g.hit {
			g.hit = false
			return true
		}
		return false
	})

	m.RegisterGuard("out_of_lives", func(g *Game) bool {
		return g.lives == 0
	})
}

// registerActions binds the on-enter side effects used by the mode table
func registerActions(m *fsm.Machine[*Game]) {
	m.RegisterAction("reset_game", func(g *Game, _ map[string]any) {
		g.phaseIndex = 0
		g.phaseTimer = g.rules.Phases[0].Ticks
		g.seed = 0
		g.tick = 0
		g.confirm = false
		g.released = true
		g.versus = false
		// A peer sharing the store may have set a better time
		if best, err := record.LoadOr(g.store, g.bestTick); err == nil && best < g.bestTick {
			g.bestTick = best
		}
		g.bestShown = g.bestTick / g.rules.TicksPerDisplayUnit
		g.showBest = true
		for _, gh := range g.ghosts {
			gh.ClearLatches()
		}
	})

	m.RegisterAction("prepare_round", func(g *Game, _ map[string]any) {
		g.desired = core.DirNone
		g.eatenWait = 0
		g.scared = 0
	})

	m.RegisterAction("start_life", func(g *Game, _ map[string]any) {
		g.hit = false
		g.lives--
	})

	m.RegisterAction("store_record", func(g *Game, _ map[string]any) {
		g.bestTick = g.tick
		if err := g.store.Save(g.bestTick); err != nil {
			log.Printf("failed to save best time: %v", err)
		}
		g.emit(event.EventNewRecord, &event.RecordPayload{BestTick: g.bestTick})
	})

	m.RegisterAction("end_session", func(g *Game, _ map[string]any) {
		if g.versus {
			g.port.Send(event.EventEndSession, g.frame)
		}
	})
}

// applyTargets pushes the entered mode's sub-mode targets to every component
func applyTargets(g *Game, from, to *fsm.Node[*Game]) {
	t := to.Targets

	switch t[targetMaze] {
	case "show":
		g.mazeVisible = true
	case "hide":
		g.mazeVisible = false
	}

	switch t[targetPellets] {
	case "reset":
		g.pellets.Reset()
	case "show":
		g.pelletsVisible = true
	case "hide":
		g.pelletsVisible = false
	}

	switch t[targetLives] {
	case "reset":
		g.lives = g.rules.Lives
	case "show":
		g.livesVisible = true
	case "hide":
		g.livesVisible = false
	}

	pm, _ := actor.ParseSubMode(t[targetPlayer])
	g.player.SetMode(pm)
	gm, _ := actor.ParseSubMode(t[targetGhosts])
	for _, gh := range g.ghosts {
		gh.SetMode(gm)
	}

	g.applyDisplay(t[targetDisplay])

	prev := ""
	if from != nil {
		prev = from.Name
	}
	g.mode = to.Name
	g.port.setWaiting(to.Name == ModeWaitOrPlay, g.frame)
	g.emit(event.EventModeChanged, &event.ModePayload{From: prev, To: to.Name})
}

// applyDisplay updates the banner; "prepare" keeps whatever is showing
func (g *Game) applyDisplay(target string) {
	switch target {
	case "reset":
		g.banner = BannerNone
		g.topVisible = false
	case "start":
		g.banner = BannerPressConfirm
		g.topVisible = true
	case "wait_or_play":
		g.banner = BannerWaitOrPlay
	case "ready":
		g.banner = BannerReady
	case "play":
		g.banner = BannerNone
	case "game_over":
		g.banner = BannerGameOver
	case "done":
		g.banner = BannerDone
	case "done_record":
		g.banner = BannerNewBest
	}
}

var displayTargets = map[string]bool{
	"reset": true, "start": true, "wait_or_play": true, "ready": true, "play": true,
	"prepare": true, "game_over": true, "done": true, "done_record": true,
}

var visibilityTargets = map[string]map[string]bool{
	targetMaze:    {"reset": true, "show": true, "hide": true},
	targetPellets: {"reset": true, "show": true, "hide": true},
	targetLives:   {"reset": true, "show": true, "hide": true},
}

// checkTargets rejects target values no component understands
func checkTargets(m *fsm.Machine[*Game]) error {
	for _, name := range []string{
		ModeReset, ModeStart, ModeWaitOrPlay, ModeReady, ModePlay, ModeDie,
		ModeDying, ModePrepare, ModeGameOver, ModeDone, ModeDoneRecord,
	} {
		if _, ok := m.Lookup(name); !ok {
			return fmt.Errorf("mode '%s': %w", name, fsm.ErrUnknownState)
		}
	}

	return m.EachNode(func(n *fsm.Node[*Game]) error {
		for key, allowed := range visibilityTargets {
			if !allowed[n.Targets[key]] {
				return fmt.Errorf("mode '%s' %s target '%s': %w", n.Name, key, n.Targets[key], ErrBadTarget)
			}
		}
		for _, key := range []string{targetPlayer, targetGhosts} {
			if _, ok := actor.ParseSubMode(n.Targets[key]); !ok {
				return fmt.Errorf("mode '%s' %s target '%s': %w", n.Name, key, n.Targets[key], ErrBadTarget)
			}
		}
		if !displayTargets[n.Targets[targetDisplay]] {
			return fmt.Errorf("mode '%s' display target '%s': %w", n.Name, n.Targets[targetDisplay], ErrBadTarget)
		}
		return nil
	})
}
