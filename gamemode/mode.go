// Package gamemode defines the pluggable per-mode contract of spec.md
// §4.I: a mode owns its own hit-object arena, judges input against it,
// advances continuous state, and draws into an opaque render list. Avoid
// inheritance; concrete modes (gamemode/osu, gamemode/taiko,
// gamemode/mania, gamemode/utyping) implement this interface directly and
// share almost no state, per spec.md §9's "tagged-variant + trait-object
// split" guidance. Grounded on the RuleSet interface shape in
// _examples/Blazzycrafter-danser-go/app/rulesets (a per-mode struct
// implementing a small, shared method set, selected by a registry rather
// than a class hierarchy).
package gamemode

import (
	"github.com/tataku/tataku-core/beatmap"
	"github.com/tataku/tataku-core/difficulty"
	"github.com/tataku/tataku-core/render"
	"github.com/tataku/tataku-core/replay"
)

// TextureSource identifies where a ReloadSkin request's textures should
// come from, per spec.md §5's teardown path
// ("reload_skin(TextureSource::Raw)").
type TextureSource int

const (
	TextureSourceSkin TextureSource = iota
	TextureSourceRaw
)

// KeyLabel pairs a replay key with the human-readable label a mode wants
// a settings UI to show for it, per spec.md §4.I's
// "get_possible_keys() -> [(KeyPress, label)]".
type KeyLabel struct {
	Key   replay.Key
	Label string
}

// TimingBarEntry is one entry of a mode's hit-error timing bar, per
// spec.md §4.I's "timing_bar_things() -> [(window_ms, colour)]".
type TimingBarEntry struct {
	WindowMS float64
	Color    render.Color
}

// Info is the static per-mode descriptor a constructed Mode returns from
// GetInfo, per SPEC_FULL.md's §3 GameModeInfo expansion (grounded on
// game_mode_properties.rs / game_mode_info.rs). The registry stores only
// constructors, so reading an Info requires constructing the mode.
type Info struct {
	ID                      beatmap.Mode
	DisplayName             string
	HasDifficultyCalculator bool
	// HealthPolicy names which health.Manager constructor
	// gameplay.Manager should build for this mode ("default" or
	// "taiko_battery"), per spec.md §4.E's "pluggable over {Default,
	// TaikoBattery, ...}".
	HealthPolicy string
}

// Settings is the frozen, caller-constructed snapshot a mode reads at
// construction and whenever ForceUpdateSettings is explicitly invoked,
// per spec.md §5's "Global settings snapshot" rule.
type Settings struct {
	Autoplay         bool
	HitsoundsEnabled bool
	HitsoundVolume   float64
	LeadInMS         float64
	KeyBindings      map[string]replay.Key
}

// Mode is the pluggable per-mode state machine of spec.md §4.I. A
// concrete mode parses a beatmap's hit-objects into its own structures at
// construction, judges replay frames against them, advances continuous
// state each tick, and draws into an opaque render.List.
type Mode interface {
	// HandleReplayFrame applies a single input action: converts it to a
	// judging attempt against the mode's own cursor/hold state and emits
	// the resulting actions through ctx.Emit.
	HandleReplayFrame(ctx *Context, action replay.Action)
	// Update advances continuous state (slider ticks, spinner RPM,
	// expired notes -> miss) against ctx.Time.
	Update(ctx *Context)
	// Draw pushes this tick's visual primitives into list.
	Draw(ctx *Context, list *render.List)

	// SkipIntro reports the recommended jump-to time when time is more
	// than the mode's lead-in before the first note.
	SkipIntro(time float64) (newTime float64, ok bool)
	// Reset restarts the mode against bm without reallocating its arena.
	Reset(bm *beatmap.Beatmap)
	// ApplyMods rebuilds any mod-dependent state (hit windows, scroll
	// speed) from mods.
	ApplyMods(mods *difficulty.Set)
	// ForceUpdateSettings re-reads the frozen settings snapshot.
	ForceUpdateSettings(settings Settings)
	// WindowSizeChanged notifies the mode of a host window resize.
	WindowSizeChanged(w, h float64)
	// FitToArea notifies the mode of the playfield area it should fit
	// itself into.
	FitToArea(w, h float64)
	// ReloadSkin releases and reacquires any skin-sourced textures.
	ReloadSkin(source TextureSource)

	// Playmode is this mode's stable tag.
	Playmode() beatmap.Mode
	// EndTime is this mode's own end-time (may differ from the
	// beatmap's raw EndTime by a mode-specific tail).
	EndTime() float64
	// TimingBarThings lists this mode's hit-error timing bar bands.
	TimingBarThings() []TimingBarEntry
	// GetPossibleKeys lists the keys this mode listens for, for a
	// settings UI's key-binding list.
	GetPossibleKeys() []KeyLabel
	// GetInfo is this mode's static descriptor.
	GetInfo() Info
}

// KiaiAware is an optional interface a mode implements to receive
// timing-point events forwarded by the gameplay manager, per spec.md
// §4.H step 2. Not every mode cares about kiai/beat pulses (e.g.
// uTyping); the manager type-asserts for it rather than forcing every
// mode to implement no-op stubs.
type KiaiAware interface {
	KiaiChanged(kiai bool)
	BeatHappened(pulseLength float64)
}

