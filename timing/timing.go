// Package timing implements the Timing-point Helper of spec.md §4.K: it
// walks a beatmap's timing points against the current time and emits
// KiaiChanged/BeatHappened events for the gameplay manager to forward to
// the active mode. Grounded on the same timing-point walk danser performs
// to drive its kiai-reactive background dim/storyboard triggers (see
// _examples/Blazzycrafter-danser-go/app/beatmap/timing.go's control-point
// index advance), adapted here to a pull-based Update(t) call rather than
// an event-bus subscription.
package timing

import "github.com/tataku/tataku-core/beatmap"

// EventKind discriminates the two event shapes Update can emit.
type EventKind int

const (
	KiaiChanged EventKind = iota
	BeatHappened
)

// Event is a single timing event. Only the field relevant to Kind is
// meaningful.
type Event struct {
	Kind        EventKind
	Kiai        bool    // KiaiChanged
	PulseLength float64 // BeatHappened
}

// Helper maintains a forward-only index into a beatmap's timing points
// plus the running beat pulse, per spec.md §4.K.
type Helper struct {
	points []beatmap.TimingPoint

	idx  int // index of the last point whose time <= current t
	kiai bool

	controlIdx  int // index of the active non-inherited (BPM) point
	nextBeat    float64
	pulseLength float64
}

// New returns a Helper positioned before the first timing point. points
// must be sorted non-decreasing by time and contain at least one
// non-inherited point (beatmap.New already enforces this).
func New(points []beatmap.TimingPoint) *Helper {
	h := &Helper{points: points, idx: -1, controlIdx: -1}
	h.primeControlPoint()
	if h.controlIdx >= 0 {
		cp := points[h.controlIdx]
		h.pulseLength = cp.BeatLength * float64(cp.Meter) / 2
		// The control point's own time is the start of beat zero; the
		// first BeatHappened fires one pulse later, per spec.md §6 S6
		// (beat=500/meter=4 at t=0 yields events at 1000,2000,...).
		h.nextBeat = cp.Time + h.pulseLength
	}
	return h
}

func (h *Helper) primeControlPoint() {
	for i, p := range h.points {
		if !p.IsInherited() {
			h.controlIdx = i
			return
		}
	}
}

// Update advances the helper to time t and returns, in order, every event
// crossed since the last call. t must be non-decreasing across calls
// (the gameplay manager's clock invariant); Update does not itself clamp
// backward time, it simply emits no new events.
func (h *Helper) Update(t float64) []Event {
	var events []Event

	for h.idx+1 < len(h.points) && h.points[h.idx+1].Time <= t {
		h.idx++
		p := h.points[h.idx]

		if !p.IsInherited() {
			h.controlIdx = h.idx
			cp := h.points[h.controlIdx]
			h.pulseLength = cp.BeatLength * float64(cp.Meter) / 2
		}

		if p.Kiai != h.kiai {
			h.kiai = p.Kiai
			events = append(events, Event{Kind: KiaiChanged, Kiai: h.kiai})
		}
	}

	for h.pulseLength > 0 && t >= h.nextBeat {
		events = append(events, Event{Kind: BeatHappened, PulseLength: h.pulseLength})
		h.nextBeat += h.pulseLength
	}

	return events
}

// Kiai reports the current kiai state.
func (h *Helper) Kiai() bool {
	return h.kiai
}

// Reset rewinds the helper to its post-New state.
func (h *Helper) Reset() {
	h.idx = -1
	h.kiai = false
	h.controlIdx = -1
	h.primeControlPoint()
	h.pulseLength = 0
	h.nextBeat = 0
	if h.controlIdx >= 0 {
		cp := h.points[h.controlIdx]
		h.pulseLength = cp.BeatLength * float64(cp.Meter) / 2
		h.nextBeat = cp.Time + h.pulseLength
	}
}
