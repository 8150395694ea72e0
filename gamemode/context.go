package gamemode

import (
	"github.com/tataku/tataku-core/difficulty"
	"github.com/tataku/tataku-core/hitsound"
	"github.com/tataku/tataku-core/judgment"
)

// Context is the per-tick state a Mode's HandleReplayFrame/Update/Draw
// methods read, and the Emitter they push side-effects through, per
// spec.md §4.H step 5 ("the Mode is permitted to emit: AddJudgment,
// AddTiming, AddIndicator, PlayHitsounds, ComboBreak, FailGame,
// RemoveLastJudgment, MapComplete, ReplaceHealth, ResetHealth").
type Context struct {
	Time     float64
	Mods     *difficulty.Set
	Autoplay bool
	Emit     *Emitter
}

// ActionKind discriminates an emitted Action's payload.
type ActionKind int

const (
	ActAddJudgment ActionKind = iota
	ActAddTiming
	ActAddIndicator
	ActPlayHitsounds
	ActComboBreak
	ActFailGame
	ActRemoveLastJudgment
	ActMapComplete
	ActReplaceHealth
	ActResetHealth
)

// Indicator is an opaque, mode-defined on-screen marker (e.g. a "nice!"
// popup). gameplay.Manager does not forward indicators anywhere; it drops
// ActAddIndicator actions.
type Indicator struct {
	X, Y float64
	Text string
}

// Action is one side-effect a Mode emitted during a tick's
// HandleReplayFrame or Update calls. gameplay.Manager processes a
// Context's accumulated Actions in emission order once that tick's
// Update returns, per
// spec.md §4.H's "Judgments emitted within one update apply in emission
// order".
type Action struct {
	Kind ActionKind

	Judgment *judgment.Judgment // ActAddJudgment
	Delta    float64            // ActAddJudgment: press_time - note_time

	HitNames []string         // ActPlayHitsounds
	Sounds   []hitsound.Sound // ActPlayHitsounds

	Indicator Indicator // ActAddIndicator

	Health float64 // ActReplaceHealth
}

// Emitter accumulates the Actions a Mode produces during one tick.
// gameplay.Manager gives each tick a fresh Emitter, shared through one
// Context by that tick's HandleReplayFrame calls and its Update call, and
// drains it once Update returns.
type Emitter struct {
	actions []Action
}

// NewEmitter returns an empty Emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// AddJudgment records a judgment result for the note hit at the given
// timing delta (press_time - note_time).
func (e *Emitter) AddJudgment(j *judgment.Judgment, delta float64) {
	e.actions = append(e.actions, Action{Kind: ActAddJudgment, Judgment: j, Delta: delta})
}

// AddTiming records a hit-error-bar marker at delta without itself
// constituting a scored judgment (used by, e.g., a mode's "near-miss"
// visual feedback).
func (e *Emitter) AddTiming(delta float64) {
	e.actions = append(e.actions, Action{Kind: ActAddTiming, Delta: delta})
}

// AddIndicator records an on-screen indicator for the host to render.
func (e *Emitter) AddIndicator(ind Indicator) {
	e.actions = append(e.actions, Action{Kind: ActAddIndicator, Indicator: ind})
}

// PlayHitsounds records a hitsound dispatch request.
func (e *Emitter) PlayHitsounds(hitNames []string, sounds []hitsound.Sound) {
	e.actions = append(e.actions, Action{Kind: ActPlayHitsounds, HitNames: hitNames, Sounds: sounds})
}

// ComboBreak records a non-judgment combo break (e.g. dragging off a
// slider body).
func (e *Emitter) ComboBreak() {
	e.actions = append(e.actions, Action{Kind: ActComboBreak})
}

// FailGame requests an immediate fail, independent of health.
func (e *Emitter) FailGame() {
	e.actions = append(e.actions, Action{Kind: ActFailGame})
}

// RemoveLastJudgment records a request to undo the most recently applied
// judgment (for modes that can retroactively upgrade a judgment, e.g.
// slider-end rejudging). gameplay.Manager does not undo anything for it:
// the ledger has no per-judgment rollback, so the manager logs the
// request and drops it.
func (e *Emitter) RemoveLastJudgment() {
	e.actions = append(e.actions, Action{Kind: ActRemoveLastJudgment})
}

// MapComplete signals that this mode has no more pending objects.
func (e *Emitter) MapComplete() {
	e.actions = append(e.actions, Action{Kind: ActMapComplete})
}

// ReplaceHealth overwrites current health to value (clamped by the
// active health.Manager).
func (e *Emitter) ReplaceHealth(value float64) {
	e.actions = append(e.actions, Action{Kind: ActReplaceHealth, Health: value})
}

// ResetHealth restores health to its initial value.
func (e *Emitter) ResetHealth() {
	e.actions = append(e.actions, Action{Kind: ActResetHealth})
}

// Actions returns the accumulated actions in emission order.
func (e *Emitter) Actions() []Action {
	return e.actions
}

// Drain returns the accumulated actions and clears the Emitter for reuse.
func (e *Emitter) Drain() []Action {
	out := e.actions
	e.actions = nil
	return out
}
