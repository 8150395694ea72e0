// Package input implements the Input Router of spec.md §4.G: it produces
// replay frames from either live host input or a replay cursor, or
// accepts autoplay-generated frames, and wraps each in the
// should-save flag the Gameplay Manager uses to decide whether to persist
// it to the replay stream. Grounded on
// _examples/Blazzycrafter-danser-go/app/dance/schedulers/smooth.go's
// press/release toggling loop (the shape Autoplay's producer follows)
// and on original_source/crates/tataku-engine/.../gameplay_action.rs's
// AddReplayAction{action, should_save} action.
package input

import "github.com/tataku/tataku-core/replay"

// Source identifies which of the three frame producers is active.
type Source int

const (
	Live Source = iota
	Playback
	Autoplay
)

// ReplayAction is the router's output: a single replay action paired with
// whether it should be persisted to the replay stream. Live input and
// Playback frames are always saved; Autoplay frames never are, per
// spec.md §4.G.
type ReplayAction struct {
	Action     replay.Action
	ShouldSave bool
}

// HostEvent is a raw host input event, translated to a replay.Key via a
// KeyMap before it reaches the router's output.
type HostEvent struct {
	RawKey    string
	Pressed   bool
	MouseX    float32
	MouseY    float32
	IsMouse   bool
	ScrollDel float32
	IsScroll  bool
}

// KeyMap translates host-specific raw key identifiers to the stable
// replay.Key enum, per spec.md §4.G's "per-mode key map".
type KeyMap map[string]replay.Key

// AutoplayProducer is implemented by a mode's autoplay helper: given the
// current time, it returns the actions it wants to emit at or before
// that time. Grounded on smooth.go's InitCurve + per-tick button
// toggling.
type AutoplayProducer interface {
	Poll(t float64) []replay.Action
}

// Router is the single entry point the Gameplay Manager polls each tick
// to obtain this tick's input, per spec.md §4.G/§4.H step 3.
type Router struct {
	source Source
	keyMap KeyMap

	pending []HostEvent

	cursor   *replay.Cursor
	autoplay AutoplayProducer
}

// NewLiveRouter returns a Router that converts host events to replay
// actions via keyMap and always marks them for saving.
func NewLiveRouter(keyMap KeyMap) *Router {
	return &Router{source: Live, keyMap: keyMap}
}

// NewPlaybackRouter returns a Router that reads from a replay cursor and
// always marks frames for saving (so re-recording a replay of a replay
// reproduces the same stream).
func NewPlaybackRouter(cursor *replay.Cursor) *Router {
	return &Router{source: Playback, cursor: cursor}
}

// NewAutoplayRouter returns a Router backed by a mode's autoplay
// producer; its output is never saved.
func NewAutoplayRouter(producer AutoplayProducer) *Router {
	return &Router{source: Autoplay, autoplay: producer}
}

// Source reports which producer this router is backed by.
func (r *Router) Source() Source {
	return r.source
}

// PushHostEvent queues a raw host event for the next Poll call. Only
// meaningful for a Live router; it is a no-op otherwise.
func (r *Router) PushHostEvent(ev HostEvent) {
	if r.source != Live {
		return
	}
	r.pending = append(r.pending, ev)
}

// Poll returns this tick's replay actions for time t, per spec.md
// §4.H step 3 ("consume all replay frames with time_ms <= t").
func (r *Router) Poll(t float64) []ReplayAction {
	switch r.source {
	case Live:
		return r.pollLive()
	case Playback:
		return r.pollPlayback(t)
	case Autoplay:
		return r.pollAutoplay(t)
	default:
		return nil
	}
}

func (r *Router) pollLive() []ReplayAction {
	if len(r.pending) == 0 {
		return nil
	}
	out := make([]ReplayAction, 0, len(r.pending))
	for _, ev := range r.pending {
		action, ok := translate(ev, r.keyMap)
		if !ok {
			continue
		}
		out = append(out, ReplayAction{Action: action, ShouldSave: true})
	}
	r.pending = r.pending[:0]
	return out
}

func (r *Router) pollPlayback(t float64) []ReplayAction {
	frames := r.cursor.AdvanceUntil(float32(t))
	if len(frames) == 0 {
		return nil
	}
	out := make([]ReplayAction, len(frames))
	for i, f := range frames {
		out[i] = ReplayAction{Action: f.Action, ShouldSave: true}
	}
	return out
}

func (r *Router) pollAutoplay(t float64) []ReplayAction {
	actions := r.autoplay.Poll(t)
	if len(actions) == 0 {
		return nil
	}
	out := make([]ReplayAction, len(actions))
	for i, a := range actions {
		out[i] = ReplayAction{Action: a, ShouldSave: false}
	}
	return out
}

func translate(ev HostEvent, keyMap KeyMap) (replay.Action, bool) {
	switch {
	case ev.IsMouse:
		return replay.NewMousePos(ev.MouseX, ev.MouseY), true
	case ev.IsScroll:
		return replay.NewMouseScroll(ev.ScrollDel), true
	default:
		key, ok := keyMap[ev.RawKey]
		if !ok {
			return replay.Action{}, false
		}
		if ev.Pressed {
			return replay.NewPress(key), true
		}
		return replay.NewRelease(key), true
	}
}
