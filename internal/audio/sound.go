// Package audio synthesizes Unicorn Run's sound effects and background melody
// with beep. Sounds are fire-and-forget: the game enqueues them on a mixer
// and never waits for playback.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Sound identifies a sound effect.
type Sound int

const (
	SoundJump Sound = iota
	SoundDash
	SoundDestroy
	SoundHit
	SoundPowerUp
	soundCount
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// rampFloor is the gain every tone decays to by its end.
const rampFloor = 0.01

// tone is a single oscillator whose pitch and gain both ramp exponentially.
type tone struct {
	name     string
	from, to float64 // Hz
	wave     Wave
	dur      time.Duration
	gain     float64 // Fraction of the sfx volume
}

var tones = [soundCount]tone{
	SoundJump:    {name: "jump", from: 400, to: 600, wave: WaveSine, dur: 100 * time.Millisecond, gain: 1},
	SoundDash:    {name: "dash", from: 200, to: 100, wave: WaveSaw, dur: 200 * time.Millisecond, gain: 1},
	SoundDestroy: {name: "destroy", from: 800, to: 1200, wave: WaveSquare, dur: 150 * time.Millisecond, gain: 0.7},
	SoundHit:     {name: "hit", from: 150, to: 50, wave: WaveSaw, dur: 300 * time.Millisecond, gain: 1},
	SoundPowerUp: {name: "powerup", from: 600, to: 1200, wave: WaveSine, dur: 300 * time.Millisecond, gain: 0.6},
}

// String returns the sound's name.
func (s Sound) String() string {
	if s < 0 || s >= soundCount {
		return "unknown"
	}
	return tones[s].name
}

// Duration returns how long the sound plays.
func (s Sound) Duration() time.Duration {
	if s < 0 || s >= soundCount {
		return 0
	}
	return tones[s].dur
}

// sweep streams one tone. Frequency moves from f0 to f1 and the envelope
// from 1 to floor along exponential curves, then the stream ends.
type sweep struct {
	f0, f1 float64
	floor  float64
	wave   Wave
	rate   beep.SampleRate
	total  int
	pos    int
	phase  float64
}

func newSweep(f0, f1 float64, wave Wave, dur time.Duration, floor float64, rate beep.SampleRate) *sweep {
	return &sweep{
		f0:    f0,
		f1:    f1,
		floor: floor,
		wave:  wave,
		rate:  rate,
		total: rate.N(dur),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		p := float64(s.pos) / float64(s.total)
		freq := s.f0 * math.Pow(s.f1/s.f0, p)
		env := math.Pow(s.floor, p)

		val := oscillate(s.wave, s.phase) * env
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

func oscillate(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// withVolume scales a stream by a linear gain; zero or less is silence.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// newEffect builds the streamer for a sound at the given sfx volume.
// The envelope ends at rampFloor in absolute terms, like a gain ramp.
func newEffect(s Sound, sfxVolume float64, rate beep.SampleRate) beep.Streamer {
	t := tones[s]
	peak := sfxVolume * t.gain
	floor := 1.0
	if peak > rampFloor {
		floor = rampFloor / peak
	}
	return withVolume(newSweep(t.from, t.to, t.wave, t.dur, floor, rate), peak)
}

// newNote builds one melody note: a steady sine decaying to rampFloor.
func newNote(freq float64, dur time.Duration, musicVolume float64, rate beep.SampleRate) beep.Streamer {
	floor := 1.0
	if musicVolume > rampFloor {
		floor = rampFloor / musicVolume
	}
	return withVolume(newSweep(freq, freq, WaveSine, dur, floor, rate), musicVolume)
}
