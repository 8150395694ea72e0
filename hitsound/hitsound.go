// Package hitsound implements the Hitsound Dispatcher of spec.md §4.J:
// given the hitsounds attached to a judged note, it resolves sample paths
// from a timing-point sample bank (overridden by per-note sample
// index/volume) and instructs the audio engine to play them,
// fire-and-forget, degrading to the default sample set on a cache miss.
//
// Sample resolution is backed by a SampleBank adapted from the teacher's
// own file-lookup helper, _examples/Blazzycrafter-danser-go/framework/
// files/filemap.go's FileMap: walk a directory once with
// github.com/karrick/godirwalk, build a lower-cased path cache, resolve
// case-insensitively. FileMap answers "find any game asset by relative
// path"; SampleBank narrows that to "find a hitsound sample by
// (sample_set, addition, index)" filename convention.
package hitsound

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"

	"github.com/tataku/tataku-core/beatmap"
)

// Sound is a single hitsound to resolve and play, derived from a
// timing-point's sample bank and any per-note override, per spec.md §4.J.
type Sound struct {
	SampleSet beatmap.SampleSet
	Addition  beatmap.SampleSet // 0 (Auto) means "same as SampleSet"
	Index     int               // 0 is the default (un-numbered) sample
	Volume    int               // 0-100; 0 plays at full volume (timing-point volume is not consulted)
}

func (s Sound) sampleSetName() string {
	set := s.SampleSet
	if s.Addition != beatmap.SampleSetAuto {
		set = s.Addition
	}
	switch set {
	case beatmap.SampleSetNormal:
		return "normal"
	case beatmap.SampleSetSoft:
		return "soft"
	case beatmap.SampleSetDrum:
		return "drum"
	default:
		return "normal"
	}
}

// fileStem is the filename (without extension) a Sound resolves to,
// following the osu!-style "<set>-<hitName><index>" convention (e.g.
// "normal-hitnormal", "soft-hitclap2").
func (s Sound) fileStem(hitName string) string {
	if s.Index > 0 {
		return fmt.Sprintf("%s-%s%d", s.sampleSetName(), hitName, s.Index)
	}
	return fmt.Sprintf("%s-%s", s.sampleSetName(), hitName)
}

// SampleBank indexes a skin/song sample directory once at construction,
// resolving lower-cased relative stems to an actual on-disk path.
type SampleBank struct {
	files map[string]string // lower-cased stem -> real path
}

// NewSampleBank walks dir once (non-recursing into unrelated subtrees is
// left to the caller's directory choice) and indexes every regular file
// by its lower-cased, extension-stripped name.
func NewSampleBank(dir string) (*SampleBank, error) {
	bank := &SampleBank{files: make(map[string]string)}

	err := godirwalk.Walk(dir, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				return nil
			}
			ext := filepath.Ext(path)
			stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), ext))
			bank.files[stem] = path
			return nil
		},
		Unsorted: true,
	})
	if err != nil {
		return nil, fmt.Errorf("hitsound: indexing %s: %w", dir, err)
	}
	return bank, nil
}

// Resolve returns the on-disk path for stem, case-insensitively.
func (b *SampleBank) Resolve(stem string) (string, bool) {
	path, ok := b.files[strings.ToLower(stem)]
	return path, ok
}

// Player is the narrow audio-engine surface the dispatcher instructs;
// playback is fire-and-forget per spec.md §4.J.
type Player interface {
	PlaySample(path string, volume float64)
}

// Dispatcher resolves and plays the hitsounds attached to a judged note,
// per spec.md §4.J.
type Dispatcher struct {
	bank          *SampleBank
	player        Player
	globalVolume  float64 // 0.0-1.0, the hitsound-volume setting
}

// NewDispatcher returns a Dispatcher playing through player, scaling every
// sample's volume by globalVolume.
func NewDispatcher(bank *SampleBank, player Player, globalVolume float64) *Dispatcher {
	return &Dispatcher{bank: bank, player: player, globalVolume: globalVolume}
}

// SetGlobalVolume updates the global hitsound-volume setting applied to
// every subsequent Play call.
func (d *Dispatcher) SetGlobalVolume(v float64) {
	d.globalVolume = v
}

// hitName is the judged-note "kind" a Sound resolves against (e.g.
// "hitnormal", "hitwhistle", "hitfinish", "hitclap" in the osu!
// convention); callers pass the additions their mode supports.
func (d *Dispatcher) Play(hitNames []string, sounds []Sound) {
	for _, s := range sounds {
		for _, name := range hitNames {
			path, ok := d.bank.Resolve(s.fileStem(name))
			if !ok {
				// degrade to the default sample set, per spec.md §4.J
				degraded := s
				degraded.SampleSet = beatmap.SampleSetNormal
				degraded.Addition = beatmap.SampleSetAuto
				path, ok = d.bank.Resolve(degraded.fileStem(name))
				if !ok {
					continue
				}
			}
			vol := float64(s.Volume) / 100.0
			if s.Volume == 0 {
				vol = 1.0
			}
			d.player.PlaySample(path, vol*d.globalVolume)
		}
	}
}
