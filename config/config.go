package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/mazechase/parameter"
)

// EnvPrefix namespaces every environment override
const EnvPrefix = "MAZECHASE_"

// ErrInvalid is wrapped by every rejected setting
var ErrInvalid = errors.New("invalid configuration")

// Config is the runtime configuration of the terminal front end
type Config struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	RecordPath   string        `yaml:"record_path"`
	Versus       bool          `yaml:"versus"`
	Audio        bool          `yaml:"audio"`
	Volume       float64       `yaml:"volume"` // 0.0 - 1.0
	Color        bool          `yaml:"color"`
	Keymap       string        `yaml:"keymap"` // optional YAML key binding overrides
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		TickInterval: parameter.TickInterval,
		RecordPath:   defaultRecordPath(),
		Versus:       true,
		Audio:        true,
		Volume:       0.5,
		Color:        true,
	}
}

func defaultRecordPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "mazechase.rec"
	}
	return filepath.Join(dir, "mazechase", "best.rec")
}

// Load layers defaults, the YAML file at path, the .env file at envFile and the process environment
// Empty paths skip their layer; a missing .env file is not an error
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			dotenv = vars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("read env file %s: %w", envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			return v, true
		}
		v, ok := dotenv[EnvPrefix+key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from MAZECHASE_* variables
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("TICK_INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sTICK_INTERVAL %q: %w", EnvPrefix, v, ErrInvalid)
		}
		c.TickInterval = d
	}

	if v, ok := lookup("RECORD_PATH"); ok {
		c.RecordPath = v
	}
	if v, ok := lookup("KEYMAP"); ok {
		c.Keymap = v
	}

	for key, dst := range map[string]*bool{"VERSUS": &c.Versus, "AUDIO": &c.Audio, "COLOR": &c.Color} {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s %q: %w", EnvPrefix, key, v, ErrInvalid)
		}
		*dst = b
	}

	// Volume is given in percent like the audio mixer settings
	if v, ok := lookup("VOLUME"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sVOLUME %q: %w", EnvPrefix, v, ErrInvalid)
		}
		c.Volume = float64(n) / 100.0
		if c.Volume < 0 {
			c.Volume = 0
		}
		if c.Volume > 1 {
			c.Volume = 1
		}
	}
	return nil
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval %v: %w", c.TickInterval, ErrInvalid)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %v: %w", c.Volume, ErrInvalid)
	}
	if c.RecordPath == "" {
		return fmt.Errorf("empty record path: %w", ErrInvalid)
	}
	return nil
}
