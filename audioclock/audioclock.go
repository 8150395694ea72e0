// Package audioclock implements the monotonic audio clock gameplay.Manager
// ticks against, per spec.md §5's "advances a per-mode state machine in
// lock-step with a monotonic audio clock". Grounded on
// github.com/faiface/mainthread, the teacher's dependency for marshalling
// calls that must run on the OS audio/graphics thread; every mutation
// that reaches the backing audio device is routed through
// mainthread.Call so this package stays safe to drive from the
// Gameplay Manager's own goroutine.
package audioclock

import "github.com/faiface/mainthread"

// AudioError reports a failure from the backing audio device.
type AudioError struct {
	Reason string
}

func (e *AudioError) Error() string {
	return "audioclock: " + e.Reason
}

// Device is the minimal backend an AudioClock drives. A real backend
// wraps whatever decoder/mixer library is linked in; tests use a fake.
type Device interface {
	Position() float64
	Seek(ms float64) error
	Play() error
	Pause() error
	Stop() error
	SetRate(rate float64)
	SetVolume(volume float64)
}

// Clock wraps a Device, routing every mutating call through
// mainthread.Call. Position reads are passed straight through from the
// device: they are neither clamped nor forced to be monotonic.
type Clock struct {
	device Device
	rate   float64
	volume float64
}

// New returns a Clock driving device, starting at normal rate and full
// volume.
func New(device Device) *Clock {
	return &Clock{device: device, rate: 1.0, volume: 1.0}
}

// Position returns the current playback position in milliseconds. Reads
// do not need to be marshalled onto the main thread; only mutating calls
// do, per the teacher's mainthread.Call convention.
func (c *Clock) Position() float64 {
	return c.device.Position()
}

// SetPosition seeks the backing device to ms, used for TimeJump and replay
// seeking (spec.md §4.H TimeJump).
func (c *Clock) SetPosition(ms float64) error {
	var err error
	mainthread.Call(func() {
		err = c.device.Seek(ms)
	})
	if err != nil {
		return &AudioError{Reason: err.Error()}
	}
	return nil
}

// Play starts or resumes playback.
func (c *Clock) Play() error {
	var err error
	mainthread.Call(func() {
		err = c.device.Play()
	})
	if err != nil {
		return &AudioError{Reason: err.Error()}
	}
	return nil
}

// Pause stops advancing the clock without resetting position.
func (c *Clock) Pause() error {
	var err error
	mainthread.Call(func() {
		err = c.device.Pause()
	})
	if err != nil {
		return &AudioError{Reason: err.Error()}
	}
	return nil
}

// Stop halts playback and releases any device-held resources.
func (c *Clock) Stop() error {
	var err error
	mainthread.Call(func() {
		err = c.device.Stop()
	})
	if err != nil {
		return &AudioError{Reason: err.Error()}
	}
	return nil
}

// SetRate applies a mod-set playback-speed factor (difficulty.Set.Speed)
// to the backing device.
func (c *Clock) SetRate(rate float64) {
	c.rate = rate
	mainthread.Call(func() {
		c.device.SetRate(rate)
	})
}

// Rate returns the last rate applied via SetRate.
func (c *Clock) Rate() float64 {
	return c.rate
}

// SetVolume applies the global hitsound/music volume setting.
func (c *Clock) SetVolume(volume float64) {
	c.volume = volume
	mainthread.Call(func() {
		c.device.SetVolume(volume)
	})
}

// Volume returns the last volume applied via SetVolume.
func (c *Clock) Volume() float64 {
	return c.volume
}
