// Package ledger implements the score and combo ledger of spec.md §4.D:
// running score, current/max combo, a per-judgment histogram, and the
// hit-timing variance samples used for accuracy display. Grounded on
// OsuRuleSet's subSet bookkeeping in
// _examples/Blazzycrafter-danser-go/app/rulesets/osu/ruleset.go (the
// Score/Combo/MaxCombo/Accuracy fields updated inside SendResult) and on
// original_source/crates/tataku-engine/.../ingame_score.rs's stat grouping.
package ledger

import "github.com/tataku/tataku-core/judgment"

// Ledger accumulates score, combo and per-judgment counts over the course
// of a play. It holds no knowledge of health or failure; gameplay.Manager
// drives both from the same judgment stream.
type Ledger struct {
	score       int64
	combo       int
	maxCombo    int
	counts      map[string]int
	deltas      []float64
	totalNotes  int
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{counts: make(map[string]int)}
}

// comboFactor implements spec.md §4.D's combo scaling:
// max(1, floor(min(combo, 80) / 10)).
func comboFactor(combo int) int64 {
	c := combo
	if c > 80 {
		c = 80
	}
	factor := c / 10
	if factor < 1 {
		factor = 1
	}
	return int64(factor)
}

// Apply records a single judgment result: delta is the signed hit-timing
// offset (press_time - note_time), used only for variance bookkeeping.
// Judgments that Ignore combo (e.g. slider ticks that don't break it but
// also don't count toward the ascending scale) are scored at a flat
// factor of 1.
func (l *Ledger) Apply(j *judgment.Judgment, delta float64) {
	l.totalNotes++
	l.counts[j.ID]++
	l.deltas = append(l.deltas, delta)

	switch j.ComboEffect {
	case judgment.Increment:
		l.score += j.ScoreBase * comboFactor(l.combo)
		l.combo++
		if l.combo > l.maxCombo {
			l.maxCombo = l.combo
		}
	case judgment.Reset:
		l.score += j.ScoreBase
		l.combo = 0
	case judgment.Ignore:
		l.score += j.ScoreBase
	}
}

// BreakCombo resets the running combo to zero without applying a
// judgment (used for non-judgment combo breaks such as dragging off a
// slider body).
func (l *Ledger) BreakCombo() {
	l.combo = 0
}

// Score is the current running score.
func (l *Ledger) Score() int64 {
	return l.score
}

// Combo is the current running combo.
func (l *Ledger) Combo() int {
	return l.combo
}

// MaxCombo is the highest combo reached so far.
func (l *Ledger) MaxCombo() int {
	return l.maxCombo
}

// Count returns how many times judgment id has occurred.
func (l *Ledger) Count(id string) int {
	return l.counts[id]
}

// TotalNotes is the number of judgments applied so far.
func (l *Ledger) TotalNotes() int {
	return l.totalNotes
}

// Deltas returns the recorded hit-timing offsets, in judgment order. The
// slice is owned by the caller; mutating it does not affect the ledger.
func (l *Ledger) Deltas() []float64 {
	out := make([]float64, len(l.deltas))
	copy(out, l.deltas)
	return out
}

// Reset clears all accumulated state, for replaying from the beginning.
func (l *Ledger) Reset() {
	l.score = 0
	l.combo = 0
	l.maxCombo = 0
	l.counts = make(map[string]int)
	l.deltas = nil
	l.totalNotes = 0
}
