package audio

import (
	"github.com/lixenwraith/mazechase/config"
	"github.com/lixenwraith/mazechase/parameter"
)

// AudioConfig holds sink settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundChomp:      0.5,
			SoundEnergizer:  0.8,
			SoundGhostEaten: 0.9,
			SoundDeath:      1.0,
			SoundNewRecord:  0.8,
		},
		SampleRate: parameter.AudioSampleRate,
	}
}

// FromConfig builds the sink settings from the application config
func FromConfig(c *config.Config) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = c.Audio
	cfg.MasterVolume = c.Volume
	if cfg.MasterVolume < 0 {
		cfg.MasterVolume = 0
	}
	if cfg.MasterVolume > 1 {
		cfg.MasterVolume = 1
	}
	return cfg
}

// volume is the effective gain of one effect
func (c *AudioConfig) volume(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
