package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/unicorn-run/internal/config"
	"github.com/vovakirdan/unicorn-run/internal/core"
)

// SampleRate is the output rate of every synthesized stream.
const SampleRate = beep.SampleRate(44100)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// initSpeaker opens the audio device once per process; the device cannot be
// reopened after a failure or a close.
func initSpeaker() error {
	speakerOnce.Do(func() {
		if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
			speakerErr = fmt.Errorf("audio: init speaker: %w", err)
		}
	})
	return speakerErr
}

// speakerLock guards the mixer against the speaker's playback goroutine.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Player plays sound effects and the looping melody.
// A silent player accepts every call and produces nothing.
type Player struct {
	mu     sync.Mutex
	cfg    config.AudioConfig
	melody Melody
	mixer  *beep.Mixer
	locker sync.Locker
	silent bool
	muted  bool

	musicOn  bool          // A game wants music
	musicPos time.Duration // Position in the melody
	clock    time.Duration // Last time passed to Update
	clockSet bool
	played   int
}

// Open starts playback on the default audio device. If the device is
// unavailable the error is logged and a silent player is returned.
func Open(cfg config.AudioConfig, logger *log.Logger) *Player {
	if err := initSpeaker(); err != nil {
		if logger != nil {
			logger.Warn("Audio disabled", "err", err)
		}
		return Silent(cfg)
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	return newPlayer(cfg, mixer, speakerLock{})
}

// Silent returns a player with no output.
func Silent(cfg config.AudioConfig) *Player {
	p := newPlayer(cfg, nil, &sync.Mutex{})
	p.silent = true
	return p
}

func newPlayer(cfg config.AudioConfig, mixer *beep.Mixer, locker sync.Locker) *Player {
	return &Player{
		cfg:    cfg,
		melody: DefaultMelody(),
		mixer:  mixer,
		locker: locker,
		muted:  cfg.Muted,
	}
}

// enqueue adds a stream to the mixer. Callers hold p.mu.
func (p *Player) enqueue(s beep.Streamer) {
	p.locker.Lock()
	p.mixer.Add(s)
	p.locker.Unlock()
	p.played++
}

func (p *Player) audible() bool {
	return !p.silent && !p.muted
}

// Play starts a sound effect and reports whether it was queued.
func (p *Player) Play(s Sound) bool {
	if s < 0 || s >= soundCount {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.audible() {
		return false
	}
	p.enqueue(newEffect(s, p.cfg.SFXVolume, SampleRate))
	return true
}

// StartMusic restarts the melody from its first note.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.musicOn = true
	p.musicPos = 0
}

// StopMusic stops scheduling melody notes. Notes already playing finish.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.musicOn = false
}

// Update schedules the melody notes due since the previous call. now is the
// game clock; when it jumps backwards (a new game) the clock is resynced.
func (p *Player) Update(now time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.clockSet || now < p.clock {
		p.clock = now
		p.clockSet = true
		return
	}
	dt := now - p.clock
	p.clock = now

	if !p.musicOn || !p.audible() {
		return
	}
	for _, n := range p.melody.Due(p.musicPos, p.musicPos+dt) {
		p.enqueue(newNote(n.Freq, n.Dur, p.cfg.MusicVolume, SampleRate))
	}
	p.musicPos += dt
}

// ToggleMute flips mute and returns the new state. Unmuting during a game
// picks the melody back up where it stopped.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	if p.muted && p.mixer != nil {
		p.locker.Lock()
		p.mixer.Clear()
		p.locker.Unlock()
	}
	return p.muted
}

// Muted reports whether sound is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// IsSilent reports whether the player has no output device.
func (p *Player) IsSilent() bool {
	return p.silent
}

// MusicPlaying reports whether the melody is scheduled.
func (p *Player) MusicPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.musicOn
}

// Played returns how many streams were queued.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// SetConfig applies new volumes. Mute is left as the user set it.
func (p *Player) SetConfig(cfg config.AudioConfig) {
	p.mu.Lock()
	defer p.mu.Unlock()

	muted := p.muted
	p.cfg = cfg
	p.muted = muted
}

// HandleEvents maps game events to sounds and music changes.
func (p *Player) HandleEvents(events []core.Event) {
	for _, e := range events {
		switch e {
		case core.EventJump:
			p.Play(SoundJump)
		case core.EventDash:
			p.Play(SoundDash)
		case core.EventDestroy:
			p.Play(SoundDestroy)
		case core.EventHit:
			p.Play(SoundHit)
		case core.EventPowerUp:
			p.Play(SoundPowerUp)
		case core.EventGameStart:
			p.StartMusic()
		case core.EventGameOver:
			p.StopMusic()
		}
	}
}

// Close stops the music and drops queued sounds. The device stays open for
// the life of the process.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.musicOn = false
	if p.mixer == nil {
		return
	}
	p.locker.Lock()
	p.mixer.Clear()
	p.locker.Unlock()
}
