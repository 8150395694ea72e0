package beatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simplePoints() []TimingPoint {
	return []TimingPoint{
		{Time: 0, BeatLength: 500, Meter: 4, Kiai: false},
		{Time: 4000, BeatLength: -100, Kiai: true}, // inherited, 1.0x SV
	}
}

func TestNewSortsHitObjectsStably(t *testing.T) {
	objs := []HitObjectData{
		{Time: 1000, Type: ObjectNote},
		{Time: 500, Type: ObjectNote},
		{Time: 500, Type: ObjectSlider, EndTime: 700},
	}
	bm, err := New("hash", Metadata{}, Mode("osu"), BaseDifficulty{OD: 5}, "audio.mp3", 0, objs, simplePoints(), 0)
	require.NoError(t, err)
	require.Len(t, bm.HitObjects, 3)
	assert.Equal(t, 500.0, bm.HitObjects[0].Time)
	// equal-time objects keep source order (stable sort).
	assert.Equal(t, ObjectNote, bm.HitObjects[0].Type)
	assert.Equal(t, ObjectSlider, bm.HitObjects[1].Type)
	assert.Equal(t, 1000.0, bm.HitObjects[2].Time)
}

func TestNewRejectsNoNonInheritedPoint(t *testing.T) {
	points := []TimingPoint{{Time: 0, BeatLength: -100}}
	_, err := New("hash", Metadata{}, Mode("osu"), BaseDifficulty{}, "a.mp3", 0, nil, points, 0)
	require.Error(t, err)
}

func TestNewRejectsNoTimingPoints(t *testing.T) {
	_, err := New("hash", Metadata{}, Mode("osu"), BaseDifficulty{}, "a.mp3", 0, nil, nil, 0)
	require.Error(t, err)
}

func TestEndTimeIncludesTail(t *testing.T) {
	objs := []HitObjectData{{Time: 1000, EndTime: 1000, Type: ObjectNote}}
	bm, err := New("hash", Metadata{}, Mode("osu"), BaseDifficulty{}, "a.mp3", 0, objs, simplePoints(), 200)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, bm.EndTime)
}

func TestTimingPointAtRespectsAllowInherited(t *testing.T) {
	bm, err := New("hash", Metadata{}, Mode("osu"), BaseDifficulty{}, "a.mp3", 0, nil, simplePoints(), 0)
	require.NoError(t, err)

	before := bm.TimingPointAt(100, true)
	assert.Equal(t, 0.0, before.Time)

	after := bm.TimingPointAt(5000, true)
	assert.True(t, after.IsInherited())

	// disallowing inherited always resolves to the control point.
	controlOnly := bm.TimingPointAt(5000, false)
	assert.False(t, controlOnly.IsInherited())
	assert.Equal(t, 0.0, controlOnly.Time)
}

func TestEffectiveSVAt(t *testing.T) {
	points := []TimingPoint{
		{Time: 0, BeatLength: 500},
		{Time: 1000, BeatLength: -50}, // 2.0x SV
	}
	bm, err := New("hash", Metadata{}, Mode("osu"), BaseDifficulty{}, "a.mp3", 0, nil, points, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, bm.EffectiveSVAt(500))
	assert.Equal(t, 2.0, bm.EffectiveSVAt(1500))
}

func TestBPMMinMax(t *testing.T) {
	points := []TimingPoint{
		{Time: 0, BeatLength: 500},   // 120 bpm
		{Time: 1000, BeatLength: 250}, // 240 bpm
		{Time: 2000, BeatLength: -50},
	}
	bm, err := New("hash", Metadata{}, Mode("osu"), BaseDifficulty{}, "a.mp3", 0, nil, points, 0)
	require.NoError(t, err)
	assert.Equal(t, 120.0, bm.BPMMin)
	assert.Equal(t, 240.0, bm.BPMMax)
}
