package audio

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/unicorn-run/internal/config"
	"github.com/vovakirdan/unicorn-run/internal/core"
)

func testPlayer() (*Player, *beep.Mixer) {
	mixer := &beep.Mixer{}
	return newPlayer(config.DefaultUnicornConfig().Audio, mixer, &sync.Mutex{}), mixer
}

// drain streams s to the end and returns the sample count and peak level.
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestSoundDurations(t *testing.T) {
	tests := []struct {
		sound Sound
		dur   time.Duration
	}{
		{SoundJump, 100 * time.Millisecond},
		{SoundDash, 200 * time.Millisecond},
		{SoundDestroy, 150 * time.Millisecond},
		{SoundHit, 300 * time.Millisecond},
		{SoundPowerUp, 300 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			n, peak := drain(newEffect(tt.sound, 0.5, SampleRate))
			if want := SampleRate.N(tt.dur); n != want {
				t.Errorf("samples = %d, expected %d", n, want)
			}
			if peak <= 0 || peak > 0.5+1e-9 {
				t.Errorf("peak = %v, expected in (0, 0.5]", peak)
			}
		})
	}
}

func TestSweepEnvelopeDecays(t *testing.T) {
	s := newSweep(440, 440, WaveSquare, 100*time.Millisecond, rampFloor, SampleRate)
	buf := make([][2]float64, SampleRate.N(100*time.Millisecond))
	n, _ := s.Stream(buf)

	first := math.Abs(buf[0][0])
	last := math.Abs(buf[n-1][0])
	if first != 1 {
		t.Errorf("first sample = %v, expected full level", first)
	}
	if last > 0.011 {
		t.Errorf("last sample = %v, expected about %v", last, rampFloor)
	}
}

func TestSilentVolume(t *testing.T) {
	_, peak := drain(newEffect(SoundJump, 0, SampleRate))
	if peak != 0 {
		t.Errorf("peak = %v at zero volume, expected silence", peak)
	}
}

func TestMelodyLayout(t *testing.T) {
	m := DefaultMelody()
	if len(m.Notes) != 6 {
		t.Fatalf("notes = %d, expected 6", len(m.Notes))
	}
	if m.Period != 1900*time.Millisecond {
		t.Errorf("period = %v, expected 1.9s", m.Period)
	}
	if m.Notes[5].At != time.Second || m.Notes[5].Dur != 400*time.Millisecond {
		t.Errorf("last note = %+v", m.Notes[5])
	}
}

func TestMelodyDueContiguousWindows(t *testing.T) {
	m := DefaultMelody()
	step := time.Second / 60

	var got []Note
	for from := time.Duration(0); from+step <= 3*m.Period; from += step {
		got = append(got, m.Due(from, from+step)...)
	}

	want := 3 * len(m.Notes)
	if len(got) != want {
		t.Fatalf("notes = %d over three loops, expected %d", len(got), want)
	}
	for i := 1; i < len(got); i++ {
		if got[i].At <= got[i-1].At {
			t.Fatalf("note %d at %v is not after %v", i, got[i].At, got[i-1].At)
		}
	}
	if got[len(m.Notes)].At != m.Period {
		t.Errorf("second loop starts at %v, expected %v", got[len(m.Notes)].At, m.Period)
	}
}

func TestMelodyDueEdges(t *testing.T) {
	m := DefaultMelody()
	tests := []struct {
		name     string
		from, to time.Duration
		want     int
	}{
		{"empty window", time.Second, time.Second, 0},
		{"reversed window", time.Second, 0, 0},
		{"first note only", 0, time.Millisecond, 1},
		{"end excluded", 0, 200 * time.Millisecond, 1},
		{"rest", 1400 * time.Millisecond, 1900 * time.Millisecond, 0},
		{"whole loop", 0, 1900 * time.Millisecond, 6},
		{"spans loop boundary", 1800 * time.Millisecond, 2000 * time.Millisecond, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(m.Due(tt.from, tt.to)); got != tt.want {
				t.Errorf("Due(%v, %v) = %d notes, expected %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestPlayQueuesSounds(t *testing.T) {
	p, mixer := testPlayer()

	if !p.Play(SoundJump) {
		t.Fatal("Play should queue when unmuted")
	}
	if mixer.Len() != 1 {
		t.Errorf("mixer has %d streams, expected 1", mixer.Len())
	}
	if p.Play(Sound(99)) {
		t.Error("unknown sound should be rejected")
	}
}

func TestMuteStopsEverything(t *testing.T) {
	p, mixer := testPlayer()
	p.Play(SoundHit)

	if !p.ToggleMute() {
		t.Fatal("ToggleMute should report muted")
	}
	if mixer.Len() != 0 {
		t.Error("muting should drop queued sounds")
	}
	if p.Play(SoundJump) {
		t.Error("Play should be ignored while muted")
	}

	p.StartMusic()
	p.Update(0)
	p.Update(time.Second)
	if mixer.Len() != 0 {
		t.Error("no notes should be scheduled while muted")
	}

	if p.ToggleMute() {
		t.Fatal("second ToggleMute should unmute")
	}
	p.Update(time.Second + 10*time.Millisecond)
	if mixer.Len() != 1 {
		t.Errorf("melody should resume after unmuting, mixer has %d", mixer.Len())
	}
}

func TestMusicFollowsGameEvents(t *testing.T) {
	p, _ := testPlayer()
	step := time.Second / 60

	p.HandleEvents([]core.Event{core.EventGameStart})
	if !p.MusicPlaying() {
		t.Fatal("game start should start the music")
	}

	now := time.Duration(0)
	p.Update(now)
	for now+step < 1900*time.Millisecond {
		now += step
		p.Update(now)
	}
	if p.Played() != 6 {
		t.Errorf("queued %d notes over one loop, expected 6", p.Played())
	}

	p.HandleEvents([]core.Event{core.EventGameOver})
	if p.MusicPlaying() {
		t.Error("game over should stop the music")
	}
	for i := 0; i < 200; i++ {
		now += step
		p.Update(now)
	}
	if p.Played() != 6 {
		t.Errorf("notes queued after game over: %d", p.Played()-6)
	}
}

func TestUpdateResyncsOnClockReset(t *testing.T) {
	p, _ := testPlayer()
	p.StartMusic()
	p.Update(10 * time.Second)

	// A new game restarts the clock at zero
	p.Update(0)
	if p.Played() != 0 {
		t.Errorf("resync should not schedule notes, got %d", p.Played())
	}
	p.Update(time.Millisecond)
	if p.Played() != 1 {
		t.Errorf("first note should play right after resync, got %d", p.Played())
	}
}

func TestHandleEventsSounds(t *testing.T) {
	p, _ := testPlayer()
	p.HandleEvents([]core.Event{
		core.EventJump, core.EventDash, core.EventDestroy,
		core.EventHit, core.EventPowerUp, core.EventNewHighScore,
	})
	if p.Played() != 5 {
		t.Errorf("queued %d sounds, expected 5", p.Played())
	}
}

func TestSilentPlayer(t *testing.T) {
	p := Silent(config.DefaultUnicornConfig().Audio)

	if !p.IsSilent() {
		t.Fatal("expected a silent player")
	}
	if p.Play(SoundJump) {
		t.Error("silent player should not queue sounds")
	}
	p.StartMusic()
	p.Update(0)
	p.Update(5 * time.Second)
	p.ToggleMute()
	p.Close()
	if p.Played() != 0 {
		t.Errorf("silent player queued %d streams", p.Played())
	}
}

func TestStartsMutedFromConfig(t *testing.T) {
	cfg := config.DefaultUnicornConfig().Audio
	cfg.Muted = true
	p := newPlayer(cfg, &beep.Mixer{}, &sync.Mutex{})
	if !p.Muted() || p.Play(SoundJump) {
		t.Error("player should start muted")
	}
}
