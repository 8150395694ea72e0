package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tataku/tataku-core/beatmap"
)

func points() []beatmap.TimingPoint {
	return []beatmap.TimingPoint{
		{Time: 0, BeatLength: 500, Meter: 4, Kiai: false},
		{Time: 4000, BeatLength: -100, Kiai: true}, // inherited, SV 1.0x
	}
}

// TestS6TimingPointKiaiAndBeat implements spec.md §8 scenario S6.
func TestS6TimingPointKiaiAndBeat(t *testing.T) {
	h := New(points())

	var kiaiEvents, beatCount int
	var beatTimes []float64

	for ms := 0.0; ms <= 4200; ms += 100 {
		for _, ev := range h.Update(ms) {
			switch ev.Kind {
			case KiaiChanged:
				kiaiEvents++
				assert.True(t, ev.Kiai)
			case BeatHappened:
				beatCount++
				assert.Equal(t, 1000.0, ev.PulseLength)
				beatTimes = append(beatTimes, ms)
			}
		}
	}

	assert.Equal(t, 1, kiaiEvents, "kiai should change exactly once")
	assert.Equal(t, []float64{1000, 2000, 3000, 4000}, beatTimes)
}

func TestResetRestoresPostNewState(t *testing.T) {
	h := New(points())
	h.Update(4500)
	assert.True(t, h.Kiai())

	h.Reset()
	assert.False(t, h.Kiai())

	// replaying should reproduce the same events
	var beatTimes []float64
	for ms := 0.0; ms <= 4200; ms += 100 {
		for _, ev := range h.Update(ms) {
			if ev.Kind == BeatHappened {
				beatTimes = append(beatTimes, ms)
			}
		}
	}
	assert.Equal(t, []float64{1000, 2000, 3000, 4000}, beatTimes)
}
