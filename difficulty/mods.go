// Package difficulty implements the mod set and difficulty-adjustment
// rules of spec.md §3 ModSet / §4.B. Mod definitions, score multipliers
// and removal (conflict) sets are grounded on
// original_source/crates/tataku-engine/src/game/gameplay/gameplay_mods/gameplay_mod.rs
// and original_source/src/tataku/gameplay/modes/osu/osu_info/osu_mods.rs.
package difficulty

// Mod is a stable mod tag. New tags can be added by any per-mode package;
// the core only knows the shared ones below.
type Mod string

const (
	Autoplay    Mod = "autoplay"
	NoFail      Mod = "no_fail"
	SuddenDeath Mod = "sudden_death"
	Perfect     Mod = "perfect"
	Easy        Mod = "easy"
	HardRock    Mod = "hard_rock"
	Relax       Mod = "relax"
	Hidden      Mod = "hidden"
	Flashlight  Mod = "flashlight"
)

// Definition is the static description of a mod: its display data, score
// multiplier and the set of mods it conflicts with (removes).
type Definition struct {
	Name            Mod
	ShortName       string
	DisplayName     string
	Description     string
	ScoreMultiplier float64
	Removes         []Mod
}

var registry = map[Mod]Definition{
	Autoplay: {
		Name: Autoplay, ShortName: "AT", DisplayName: "Autoplay",
		Description:     "Let the game play for you!",
		ScoreMultiplier: 0.0,
	},
	NoFail: {
		Name: NoFail, ShortName: "NF", DisplayName: "No Fail",
		Description:     "Even if you fail, you don't!",
		ScoreMultiplier: 0.8,
		Removes:         []Mod{SuddenDeath, Perfect},
	},
	SuddenDeath: {
		Name: SuddenDeath, ShortName: "SD", DisplayName: "Sudden Death",
		Description:     "Insta-fail if you miss",
		ScoreMultiplier: 1.0,
		Removes:         []Mod{NoFail, Perfect},
	},
	Perfect: {
		Name: Perfect, ShortName: "PF", DisplayName: "Perfect",
		Description:     "Insta-fail if you do any less than perfect",
		ScoreMultiplier: 1.0,
		Removes:         []Mod{NoFail, SuddenDeath},
	},
	Easy: {
		Name: Easy, ShortName: "EZ", DisplayName: "Easy",
		Description:     "bigger and slower notes c:",
		ScoreMultiplier: 0.6,
		Removes:         []Mod{HardRock},
	},
	HardRock: {
		Name: HardRock, ShortName: "HR", DisplayName: "Hard Rock",
		Description:     "smaller notes, higher approach, what fun!",
		ScoreMultiplier: 1.4,
		Removes:         []Mod{Easy},
	},
	Relax: {
		Name: Relax, ShortName: "RX", DisplayName: "Relax",
		Description:     "You just need to aim!",
		ScoreMultiplier: 0.0,
		Removes:         []Mod{Autoplay},
	},
	Hidden: {
		Name: Hidden, ShortName: "HD", DisplayName: "Hidden",
		Description:     "Play without seeing the notes coming.",
		ScoreMultiplier: 1.06,
	},
	Flashlight: {
		Name: Flashlight, ShortName: "FL", DisplayName: "Flashlight",
		Description:     "Waaa I can't see anything!",
		ScoreMultiplier: 1.12,
	},
}

// RegisterMod lets a per-mode package (e.g. gamemode/taiko) add its own
// mod definitions (FullAlt, NoSV, NoBattery, ...) to the shared registry.
func RegisterMod(def Definition) {
	registry[def.Name] = def
}

// Known reports whether tag has a registered Definition, i.e. whether it
// is a mod this build actually knows the meaning of.
func Known(tag Mod) bool {
	_, ok := registry[tag]
	return ok
}

func lookup(m Mod) Definition {
	if def, ok := registry[m]; ok {
		return def
	}
	return Definition{Name: m, ScoreMultiplier: 1.0}
}

// UnknownModError reports a mod tag with no registered Definition,
// encountered while reconstructing a Set from a loaded replay's mod
// tags.
type UnknownModError struct {
	Tag Mod
}

func (e *UnknownModError) Error() string {
	return "difficulty: unrecognised mod tag " + string(e.Tag)
}

// SetFromTags reconstructs a Set from a replay.Score's flat mod-tag list
// (speed is not carried by that list and defaults to 1.0x; callers that
// persisted a non-default speed separately should call SetSpeed
// afterward). Per spec.md §9's Open Question on replays carrying mod
// tags unknown to the current build, this aborts with *UnknownModError
// rather than silently dropping the tag, so a reconstructed Set is
// always an accurate record of what actually played.
func SetFromTags(tags []string) (*Set, error) {
	s := NewSet()
	for _, t := range tags {
		tag := Mod(t)
		if !Known(tag) {
			return nil, &UnknownModError{Tag: tag}
		}
		s.Apply(tag)
	}
	return s, nil
}

// Set is a mod set plus a playback-speed factor, per spec.md §3 ModSet.
// Speed is stored in centi-units (100 == 1.0x) so equality/hashing never
// depends on float comparison.
type Set struct {
	mods       map[Mod]bool
	speedCenti int
}

// NewSet returns an empty mod set at normal (1.0x) speed.
func NewSet() *Set {
	return &Set{mods: make(map[Mod]bool), speedCenti: 100}
}

// Apply adds tag to the set, removing any mod it conflicts with, and
// returns the tags that were removed as a result. The removal relation is
// treated as symmetric regardless of which side declared it (spec.md
// §4.B invariant), so applying Relax removes Autoplay even though only
// Relax's definition lists the conflict. Re-applying an already active mod
// is a no-op (idempotent), satisfying invariant 8.7.
func (s *Set) Apply(tag Mod) []Mod {
	if s.mods[tag] {
		return nil
	}

	removedSet := make(map[Mod]bool)
	for _, r := range lookup(tag).Removes {
		removedSet[r] = true
	}
	for active := range s.mods {
		for _, r := range lookup(active).Removes {
			if r == tag {
				removedSet[active] = true
			}
		}
	}

	var removed []Mod
	for r := range removedSet {
		if s.mods[r] {
			delete(s.mods, r)
			removed = append(removed, r)
		}
	}
	s.mods[tag] = true
	return removed
}

// Remove removes tag from the set, if present.
func (s *Set) Remove(tag Mod) {
	delete(s.mods, tag)
}

// Has reports whether tag is active.
func (s *Set) Has(tag Mod) bool {
	return s.mods[tag]
}

// Tags returns the active mod tags in no particular order.
func (s *Set) Tags() []Mod {
	out := make([]Mod, 0, len(s.mods))
	for m := range s.mods {
		out = append(out, m)
	}
	return out
}

// Speed returns the playback-speed factor, clamped to [0.5, 2.0] per
// spec.md §4.B.
func (s *Set) Speed() float64 {
	return float64(s.speedCenti) / 100.0
}

// SetSpeed stores a new playback-speed factor, clamping to [0.5, 2.0].
func (s *Set) SetSpeed(speed float64) {
	if speed < 0.5 {
		speed = 0.5
	}
	if speed > 2.0 {
		speed = 2.0
	}
	s.speedCenti = int(speed*100 + 0.5)
}

// ScoreMultiplier is the product of each active mod's multiplier, per
// spec.md §4.B.
func (s *Set) ScoreMultiplier() float64 {
	mult := 1.0
	for m := range s.mods {
		mult *= lookup(m).ScoreMultiplier
	}
	return mult
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	clone := NewSet()
	for m := range s.mods {
		clone.mods[m] = true
	}
	clone.speedCenti = s.speedCenti
	return clone
}
