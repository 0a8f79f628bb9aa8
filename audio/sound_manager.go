package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/mazechase/event"
	"github.com/lixenwraith/mazechase/parameter"
	"github.com/lixenwraith/mazechase/sim"
)

// maxSlots is the number of games one sink listens to
const maxSlots = 2

// SoundFor maps a game event to the effect it triggers
func SoundFor(ev event.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case event.EventDotEaten:
		return SoundChomp, true
	case event.EventEnergizerEaten:
		return SoundEnergizer, true
	case event.EventGhostEaten:
		return SoundGhostEaten, true
	case event.EventNewRecord:
		return SoundNewRecord, true
	case event.EventModeChanged:
		if p, ok := ev.Payload.(*event.ModePayload); ok && p.To == sim.ModeDying {
			return SoundDeath, true
		}
	}
	return 0, false
}

// sirenState tracks which games are mid-round and frightened
type sirenState struct {
	playing    [maxSlots]bool
	frightened [maxSlots]bool
}

func (s *sirenState) apply(slot int, ev event.GameEvent) {
	if slot < 0 || slot >= maxSlots {
		return
	}
	switch ev.Type {
	case event.EventModeChanged:
		if p, ok := ev.Payload.(*event.ModePayload); ok {
			s.playing[slot] = p.To == sim.ModePlay
			if !s.playing[slot] {
				s.frightened[slot] = false
			}
		}
	case event.EventEnergizerEaten:
		s.frightened[slot] = true
	case event.EventFrightenedEnd:
		s.frightened[slot] = false
	}
}

// active reports whether any game is mid-round
func (s *sirenState) active() bool {
	for _, p := range s.playing {
		if p {
			return true
		}
	}
	return false
}

// ratio is the siren playback speed
func (s *sirenState) ratio() float64 {
	for i, f := range s.frightened {
		if f && s.playing[i] {
			return parameter.SirenFrightenedRatio
		}
	}
	return 1
}

// SoundManager plays game events through the speaker
type SoundManager struct {
	mu           sync.Mutex
	cfg          *AudioConfig
	mixer        *beep.Mixer
	siren        *beep.Ctrl
	sirenRate    *beep.Resampler
	state        sirenState
	chompFalling bool
	muted        bool
	initialized  bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the paused siren
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	sm.sirenRate = beep.ResampleRatio(parameter.AudioResampleQuality, 1, newVolume(NewSiren(rate), parameter.SirenVolume*sm.cfg.MasterVolume))
	sm.siren = &beep.Ctrl{Streamer: sm.sirenRate, Paused: true}
	sm.mixer.Add(sm.siren)

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.siren.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Clear()
	sm.initialized = false
}

// Play starts a one-shot effect
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.play(st)
}

func (sm *SoundManager) play(st SoundType) {
	if !sm.initialized || sm.muted {
		return
	}

	var s beep.Streamer
	if st == SoundChomp {
		s = CreateChompSound(sm.cfg, sm.chompFalling)
		sm.chompFalling = !sm.chompFalling
	} else {
		s = GetSoundEffect(st, sm.cfg)
	}
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Consume plays the effects of one game's tick events and updates the siren
func (sm *SoundManager) Consume(slot int, events []event.GameEvent) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for _, ev := range events {
		if st, ok := SoundFor(ev); ok {
			sm.play(st)
		}
		sm.state.apply(slot, ev)
	}
	sm.updateSiren()
}

// ToggleMute silences or restores output and returns the new muted state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	sm.updateSiren()
	return sm.muted
}

// Siren reports whether the siren is running and at what speed
func (sm *SoundManager) Siren() (active bool, ratio float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.state.active() && !sm.muted, sm.state.ratio()
}

func (sm *SoundManager) updateSiren() {
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.siren.Paused = sm.muted || !sm.state.active()
	sm.sirenRate.SetRatio(sm.state.ratio())
	speaker.Unlock()
}
