// Registry implements spec.md §9's "Concrete modes are selected at map
// load by the mode tag; a registry maps tag->constructor." Per-mode
// packages (gamemode/osu, gamemode/taiko, gamemode/mania,
// gamemode/utyping) call Register from their own init(), so importing
// them for side-effect is what makes a tag available — the core package
// itself never references a concrete mode.
package gamemode

import "github.com/tataku/tataku-core/beatmap"

// Constructor builds a Mode for a parsed beatmap. diffCalcOnly flags a
// construction made only to read difficulty values (GetInfo,
// HasDifficultyCalculator) — mirrors danser's ruleset construction used
// purely for star-rating computation. The shipped modes accept the flag
// and build their full state regardless.
type Constructor func(bm *beatmap.Beatmap, diffCalcOnly bool, settings Settings) (Mode, error)

var registry = make(map[beatmap.Mode]Constructor)

// Register adds tag's constructor to the registry. Re-registering the
// same tag overwrites the previous constructor (useful for tests
// supplying a fake mode).
func Register(tag beatmap.Mode, ctor Constructor) {
	registry[tag] = ctor
}

// New looks up tag's constructor and builds a Mode for bm. Returns a
// gamemode.Error{Kind: UnknownGameMode} if no mode is registered for tag.
func New(tag beatmap.Mode, bm *beatmap.Beatmap, diffCalcOnly bool, settings Settings) (Mode, error) {
	ctor, ok := registry[tag]
	if !ok {
		return nil, &Error{Kind: UnknownGameMode, Detail: string(tag)}
	}
	return ctor(bm, diffCalcOnly, settings)
}

// Registered reports whether tag has a constructor registered, without
// constructing anything.
func Registered(tag beatmap.Mode) bool {
	_, ok := registry[tag]
	return ok
}
