// Package beatmap holds the immutable, parsed representation of a map:
// metadata, base difficulty, ordered hit-objects and timing points. Actual
// beatmap file parsing (osu!/Quaver/Stepmania/TJA/uTyping) lives outside
// this core — only the data model those parsers must produce is specified
// here, per spec.md §1/§3/§4.A.
package beatmap

import (
	"sort"
)

// Mode is the stable playmode tag carried by a beatmap (e.g. "osu",
// "taiko", "mania", "utyping"). Gamemode selection happens by looking this
// tag up in a registry (see package gamemode).
type Mode string

// Metadata carries the display/identity fields of a beatmap.
type Metadata struct {
	Artist  string
	Title   string
	Creator string
	Version string
}

// BaseDifficulty holds the four base difficulty values before mod
// adjustment (see package difficulty).
type BaseDifficulty struct {
	HP float64
	CS float64
	OD float64
	AR float64
}

// ObjectType enumerates the broad hit-object categories shared across
// modes; per-mode packages interpret Extra for anything beyond this.
type ObjectType int

const (
	ObjectNote ObjectType = iota
	ObjectHold
	ObjectSlider
	ObjectSpinner
)

// HitObjectData is the generic, immutable, parsed hit-object the core
// receives from a beatmap parser. Per-mode packages translate these into
// their own mutable play-state structs at construction time (spec.md §3
// "HitObject (per-mode variant)"); this type never mutates after parse.
type HitObjectData struct {
	Time      float64
	EndTime   float64
	Type      ObjectType
	NewCombo  bool
	Column    int // lane/column index, meaningful for mania-style modes
	SampleSet SampleSet
	Additions []SampleSet
	SampleIdx int
	Volume    int
	// X, Y is the playfield position for modes that use one (osu-style).
	X, Y float64
	// Extra carries mode-specific data (e.g. slider curve control points,
	// typed word text) opaque to this package.
	Extra interface{}
}

// Beatmap is the immutable, shared-read-only parsed map owned by a
// GameplayManager for the duration of a play, per spec.md §3 Ownership.
type Beatmap struct {
	Hash           string
	Metadata       Metadata
	Mode           Mode
	BaseDifficulty BaseDifficulty
	AudioFilename  string
	PreviewTime    float64

	HitObjects   []HitObjectData
	TimingPoints []TimingPoint

	EndTime         float64
	BPMMin, BPMMax  float64
	firstControlIdx int
}

// New validates and constructs an immutable Beatmap. Hit-objects are
// sorted by time (stable, so same-time objects keep parser/source order
// per spec.md §4.A); timing points are sorted non-decreasing by time.
func New(hash string, meta Metadata, mode Mode, diff BaseDifficulty, audioFile string, previewTime float64, objects []HitObjectData, timingPoints []TimingPoint, tailMS float64) (*Beatmap, error) {
	if len(timingPoints) == 0 {
		return nil, errf("no timing points")
	}

	tps := make([]TimingPoint, len(timingPoints))
	copy(tps, timingPoints)
	sort.SliceStable(tps, func(i, j int) bool { return tps[i].Time < tps[j].Time })

	firstControl := -1
	bpmMin, bpmMax := 0.0, 0.0
	for i, tp := range tps {
		if tp.IsInherited() {
			continue
		}
		if firstControl == -1 {
			firstControl = i
		}
		bpm := tp.BPM()
		if bpmMin == 0 || bpm < bpmMin {
			bpmMin = bpm
		}
		if bpm > bpmMax {
			bpmMax = bpm
		}
	}
	if firstControl == -1 {
		return nil, errf("timing points contain no non-inherited (BPM) point")
	}

	objs := make([]HitObjectData, len(objects))
	copy(objs, objects)
	sort.SliceStable(objs, func(i, j int) bool { return objs[i].Time < objs[j].Time })

	endTime := 0.0
	for _, o := range objs {
		end := o.EndTime
		if end < o.Time {
			end = o.Time
		}
		if end > endTime {
			endTime = end
		}
	}
	endTime += tailMS

	return &Beatmap{
		Hash:            hash,
		Metadata:        meta,
		Mode:            mode,
		BaseDifficulty:  diff,
		AudioFilename:   audioFile,
		PreviewTime:     previewTime,
		HitObjects:      objs,
		TimingPoints:    tps,
		EndTime:         endTime,
		BPMMin:          bpmMin,
		BPMMax:          bpmMax,
		firstControlIdx: firstControl,
	}, nil
}

// TimingPointAt returns the timing point active at time. When
// allowInherited is false, only non-inherited (BPM) points are considered,
// matching spec.md §4.A.
func (b *Beatmap) TimingPointAt(time float64, allowInherited bool) *TimingPoint {
	tp := &b.TimingPoints[0]
	for i := range b.TimingPoints {
		t := &b.TimingPoints[i]
		if t.IsInherited() && !allowInherited {
			continue
		}
		if t.Time <= time {
			tp = t
		}
	}
	return tp
}

// BPMAt returns the BPM of the non-inherited control point active at time.
func (b *Beatmap) BPMAt(time float64) float64 {
	return b.TimingPointAt(time, false).BPM()
}

// EffectiveSVAt returns the inherited point's SV multiplier at time times
// the active control point's implicit 1.0 base, per spec.md §4.A.
func (b *Beatmap) EffectiveSVAt(time float64) float64 {
	return b.TimingPointAt(time, true).SVMultiplier()
}
