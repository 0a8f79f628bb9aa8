package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mazechase/audio"
	"github.com/lixenwraith/mazechase/config"
	"github.com/lixenwraith/mazechase/core"
	"github.com/lixenwraith/mazechase/input"
	"github.com/lixenwraith/mazechase/record"
	"github.com/lixenwraith/mazechase/render"
	"github.com/lixenwraith/mazechase/sim"
)

var (
	configFlag = flag.String("config", "", "YAML config file")
	envFlag    = flag.String("env", ".env", "dotenv file with MAZECHASE_* overrides")
	keymapFlag = flag.String("keymap", "", "YAML key binding overrides (replaces the config keymap)")
	debugFlag  = flag.Bool("debug", false, "write logs to logs/mazechase.log")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *keymapFlag != "" {
		cfg.Keymap = *keymapFlag
	}

	table, err := loadKeyTable(cfg.Keymap)
	if err != nil {
		log.Fatalf("keymap: %v", err)
	}

	games, err := newGames(cfg)
	if err != nil {
		log.Fatalf("game: %v", err)
	}

	// Startup errors above go to stderr; from here on the terminal belongs to the game
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashReset(screen.Fini)

	sound := audio.NewSoundManager(audio.FromConfig(cfg))
	if err := sound.Initialize(); err != nil && !errors.Is(err, audio.ErrDisabled) {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	run(screen, cfg, games, input.NewRouter(table), render.NewTerminalRenderer(screen, cfg.Color), sound)
}

// loadKeyTable returns the default bindings merged with the keymap file, if any
func loadKeyTable(path string) (*input.KeyTable, error) {
	table := input.DefaultKeyTable()
	if path == "" {
		return table, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	table.Merge(override)
	return table, nil
}

// newGames builds one game, or two linked games sharing the record store in versus
func newGames(cfg *config.Config) ([]*sim.Game, error) {
	store := record.NewFileStore(cfg.RecordPath)

	n := 1
	if cfg.Versus {
		n = 2
	}
	games := make([]*sim.Game, n)
	for i := range games {
		g, err := sim.NewGame(sim.WithStore(store))
		if err != nil {
			return nil, err
		}
		games[i] = g
	}
	if n == 2 {
		sim.Pair(games[0], games[1])
	}
	return games, nil
}

// run is the main loop: terminal events are applied as they arrive, games advance on the ticker
func run(screen tcell.Screen, cfg *config.Config, games []*sim.Game, router *input.Router, renderer *render.TerminalRenderer, sound *audio.SoundManager) {
	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	ticker := time.NewTicker(cfg.TickInterval)
	defer ticker.Stop()

	views := make([]sim.View, len(games))
	for {
		select {
		case ev := <-eventChan:
			if !apply(router.Translate(ev), games, screen, sound) {
				return
			}

		case <-ticker.C:
			for i, g := range games {
				g.Update()
				sound.Consume(i, g.Events())
				views[i] = g.View()
			}
			renderer.RenderFrame(views...)

			for _, in := range router.Release() {
				apply(in, games, screen, sound)
			}
		}
	}
}

// apply routes one intent; false means quit
func apply(in input.Intent, games []*sim.Game, screen tcell.Screen, sound *audio.SoundManager) bool {
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentMute:
		muted := sound.ToggleMute()
		log.Printf("audio muted: %v", muted)
	case input.IntentResize:
		screen.Sync()
	case input.IntentDirection:
		if in.Player < len(games) {
			games[in.Player].SetDirection(in.Direction)
		}
	case input.IntentConfirm:
		if in.Player < len(games) {
			games[in.Player].HandleConfirm(in.Pressed)
		}
	}
	return true
}
