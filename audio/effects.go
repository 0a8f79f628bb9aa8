package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/mazechase/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// sample returns the wave value at a phase in [0, 1)
func (w WaveType) sample(phase float64) float64 {
	switch w {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return 0
}

// oscillator generates raw audio waves, sliding linearly from freq to target over its duration
type oscillator struct {
	freq     float64
	target   float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		target:   to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := o.wave.sample(o.phase)
		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.target != o.freq && o.duration > 0 {
			freq += (o.target - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a stream in a linear gain
// math.Log2(0) is -Inf, so zero gain becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// siren is the endless rise and fall played during a round
type siren struct {
	phase  float64
	sweep  float64
	period int
	rate   beep.SampleRate
}

// NewSiren creates the background siren streamer; it never ends
func NewSiren(rate beep.SampleRate) beep.Streamer {
	return &siren{rate: rate, period: rate.N(parameter.SirenPeriod)}
}

func (s *siren) Stream(samples [][2]float64) (n int, ok bool) {
	span := parameter.SirenFreqHigh - parameter.SirenFreqLow
	for i := range samples {
		// Triangle sweep between the two pitches
		freq := parameter.SirenFreqLow + span*(1-math.Abs(2*s.sweep-1))
		val := WaveSine.sample(s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.sweep += 1 / float64(s.period)
		s.sweep -= math.Floor(s.sweep)
	}
	return len(samples), true
}

func (s *siren) Err() error { return nil }

// CreateChompSound generates the short blip of a dot; consecutive chomps alternate falling
func CreateChompSound(cfg *AudioConfig, falling bool) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	from, to := parameter.ChompFreqLow, parameter.ChompFreqHigh
	if falling {
		from, to = to, from
	}

	osc := NewSweep(from, to, parameter.ChompSoundDuration, WaveTriangle, rate)
	shaped := NewEnvelope(osc, parameter.ChompSoundDuration, parameter.ChompSoundAttack, parameter.ChompSoundRelease, rate)
	return newVolume(shaped, cfg.volume(SoundChomp))
}

// CreateEnergizerSound generates a low square thump with an octave overtone
func CreateEnergizerSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewOscillator(220.0, parameter.EnergizerSoundDuration, WaveSquare, rate)
	fundShaped := NewEnvelope(fund, parameter.EnergizerSoundDuration, parameter.EnergizerSoundAttack, parameter.EnergizerSoundRelease, rate)

	over := NewOscillator(440.0, parameter.EnergizerSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.EnergizerSoundDuration, parameter.EnergizerSoundAttack, parameter.EnergizerSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.6),
		newVolume(overShaped, 0.4),
	)
	return newVolume(mixed, cfg.volume(SoundEnergizer))
}

// CreateGhostEatenSound generates a rising zip
func CreateGhostEatenSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(parameter.GhostEatenFreqFrom, parameter.GhostEatenFreqTo, parameter.GhostEatenSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.GhostEatenSoundDuration, parameter.GhostEatenSoundAttack, parameter.GhostEatenSoundRelease, rate)
	return newVolume(shaped, cfg.volume(SoundGhostEaten))
}

// CreateDeathSound generates the long falling wail of a caught player
func CreateDeathSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(parameter.DeathFreqFrom, parameter.DeathFreqTo, parameter.DeathSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.DeathSoundDuration, parameter.DeathSoundAttack, parameter.DeathSoundRelease, rate)
	return newVolume(shaped, cfg.volume(SoundDeath))
}

// CreateRecordSound generates a rising arpeggio
func CreateRecordSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(parameter.RecordNotes))
	for _, f := range parameter.RecordNotes {
		n := NewOscillator(f, parameter.RecordNoteDuration, WaveSquare, rate)
		notes = append(notes, NewEnvelope(n, parameter.RecordNoteDuration, parameter.RecordNoteAttack, parameter.RecordNoteRelease, rate))
	}
	return newVolume(beep.Seq(notes...), cfg.volume(SoundNewRecord))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundChomp:
		return CreateChompSound(cfg, false)
	case SoundEnergizer:
		return CreateEnergizerSound(cfg)
	case SoundGhostEaten:
		return CreateGhostEatenSound(cfg)
	case SoundDeath:
		return CreateDeathSound(cfg)
	case SoundNewRecord:
		return CreateRecordSound(cfg)
	default:
		return nil
	}
}
