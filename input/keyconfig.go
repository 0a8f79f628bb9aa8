package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/mazechase/core"
)

// Rune aliases for keys that are awkward as bare YAML scalars
var runeAliases = map[string]rune{
	"space": ' ',
}

// playerKeys is one player's section of a keymap file
type playerKeys struct {
	Up      string `yaml:"up"`
	Down    string `yaml:"down"`
	Left    string `yaml:"left"`
	Right   string `yaml:"right"`
	Confirm string `yaml:"confirm"`
}

type keyConfig struct {
	Players []playerKeys `yaml:"players"`
}

// LoadKeyConfig parses YAML keymap data into a sparse override KeyTable
// Returns error on unknown key names, too many players, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var cfg keyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if len(cfg.Players) > MaxPlayers {
		return nil, fmt.Errorf("keymap: %d players, at most %d supported", len(cfg.Players), MaxPlayers)
	}

	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry),
		Runes:       make(map[rune]KeyEntry),
	}

	for player, pk := range cfg.Players {
		bindings := []struct {
			name  string
			entry KeyEntry
		}{
			{pk.Up, KeyEntry{IntentDirection, player, core.DirUp}},
			{pk.Down, KeyEntry{IntentDirection, player, core.DirDown}},
			{pk.Left, KeyEntry{IntentDirection, player, core.DirLeft}},
			{pk.Right, KeyEntry{IntentDirection, player, core.DirRight}},
			{pk.Confirm, KeyEntry{IntentConfirm, player, core.DirNone}},
		}
		for _, b := range bindings {
			if b.name == "" {
				continue
			}
			if err := kt.bind(b.name, b.entry); err != nil {
				return nil, fmt.Errorf("player %d: %w", player+1, err)
			}
		}
	}
	return kt, nil
}

// bind resolves a key name to a rune or a tcell special key
func (kt *KeyTable) bind(name string, entry KeyEntry) error {
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		kt.Runes[r] = entry
		return nil
	}
	if runes := []rune(name); len(runes) == 1 {
		kt.Runes[runes[0]] = entry
		return nil
	}
	if k, ok := parseSpecialKey(name); ok {
		kt.SpecialKeys[k] = entry
		return nil
	}
	return fmt.Errorf("unknown key %q", name)
}

func parseSpecialKey(name string) (tcell.Key, bool) {
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return 0, false
}
