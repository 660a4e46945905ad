package unicorn

import (
	"math/rand"
	"time"
)

// fade is a linearly decaying value: full strength at start, zero at start+dur.
type fade struct {
	peak    float64
	dur     time.Duration
	start   time.Duration
	current float64
}

func (f *fade) trigger(peak float64, dur, now time.Duration) {
	f.peak = peak
	f.dur = dur
	f.start = now
	f.current = peak
}

func (f *fade) update(now time.Duration) {
	if f.dur <= 0 {
		*f = fade{}
		return
	}
	elapsed := now - f.start
	if elapsed >= f.dur {
		*f = fade{}
		return
	}
	f.current = f.peak * (1 - float64(elapsed)/float64(f.dur))
}

// VisualEffects sequences the renderer's shake and flash parameters.
// It has no effect on gameplay.
type VisualEffects struct {
	shake    fade
	flash    fade
	hitUntil time.Duration
	rng      *rand.Rand
}

// NewVisualEffects creates effects with their own random source for shake jitter.
func NewVisualEffects(seed int64) *VisualEffects {
	return &VisualEffects{rng: rand.New(rand.NewSource(seed))}
}

// Shake starts a screen shake of the given pixel intensity.
func (v *VisualEffects) Shake(intensity float64, dur, now time.Duration) {
	v.shake.trigger(intensity, dur, now)
}

// Flash starts a red flash at the given opacity.
func (v *VisualEffects) Flash(alpha float64, dur, now time.Duration) {
	v.flash.trigger(alpha, dur, now)
}

// HitFlash marks the player as blinking until now+dur.
func (v *VisualEffects) HitFlash(dur, now time.Duration) {
	v.hitUntil = now + dur
}

// Update decays shake and flash toward zero.
func (v *VisualEffects) Update(now time.Duration) {
	v.shake.update(now)
	v.flash.update(now)
}

// ShakeMagnitude returns the current shake amplitude in pixels.
func (v *VisualEffects) ShakeMagnitude() float64 {
	return v.shake.current
}

// ShakeOffset returns a random displacement within the current magnitude.
func (v *VisualEffects) ShakeOffset() (float64, float64) {
	m := v.shake.current
	if m <= 0 {
		return 0, 0
	}
	return (v.rng.Float64()*2 - 1) * m, (v.rng.Float64()*2 - 1) * m
}

// FlashAlpha returns the current red flash opacity.
func (v *VisualEffects) FlashAlpha() float64 {
	return v.flash.current
}

// HitFlashActive reports whether the hit blink is on at now.
func (v *VisualEffects) HitFlashActive(now time.Duration) bool {
	return now < v.hitUntil
}

// Reset clears every effect.
func (v *VisualEffects) Reset() {
	v.shake = fade{}
	v.flash = fade{}
	v.hitUntil = 0
}
