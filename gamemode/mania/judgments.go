// Package mania implements the per-column hold-note mania gamemode.
// Judgment set, health deltas, combo effects and the combo-scaled score
// formula are grounded directly on
// original_source/src/tataku/gameplay/modes/mania/mania_info/
// mania_hit_judgments.rs (ManiaHitJudgments); this mode's head/tail
// split exercises spec.md §4.I's "Hold/long-note judging: head and tail
// are judged separately" invariant.
package mania

import "github.com/tataku/tataku-core/judgment"

var (
	JMarvelous = &judgment.Judgment{ID: "xgeki", Label: "Marvelous", TextureName: "mania-hit300g", Health: 3.0, ScoreBase: 330, ComboEffect: judgment.Increment}
	JPerfect   = &judgment.Judgment{ID: "x300", Label: "Perfect", TextureName: "mania-hit300", Health: 2.0, ScoreBase: 300, ComboEffect: judgment.Increment}
	JGreat     = &judgment.Judgment{ID: "xkatu", Label: "Great", TextureName: "mania-hit200", Health: 1.0, ScoreBase: 200, ComboEffect: judgment.Increment, FailsPerfect: true}
	JGood      = &judgment.Judgment{ID: "x100", Label: "Good", TextureName: "mania-hit100", Health: -2.0, ScoreBase: 100, ComboEffect: judgment.Increment, FailsPerfect: true}
	JOkay      = &judgment.Judgment{ID: "x50", Label: "Okay", TextureName: "mania-hit50", Health: -5.0, ScoreBase: 50, ComboEffect: judgment.Increment, FailsPerfect: true}
	JMiss      = &judgment.Judgment{ID: "xmiss", Label: "Miss", TextureName: "mania-hit0", Health: -10.0, ScoreBase: 0, ComboEffect: judgment.Reset, FailsPerfect: true, FailsSuddenDeath: true}
)

// Judgments is the static, ordered judgment enumeration for this mode.
var Judgments = []*judgment.Judgment{JMarvelous, JPerfect, JGreat, JGood, JOkay, JMiss}

// HitWindows builds mania's hit-window table for effective OD, scaled
// from the same OD curve as osu but with five bands instead of three.
func HitWindows(od float64) *judgment.Table {
	wMarv := 32 - od
	wPerf := 64 - 3*od
	wGreat := 97 - 3*od
	wGood := 127 - 3*od
	wOkay := 151 - 3*od
	return judgment.NewTable([]judgment.Window{
		{Judgment: JMarvelous, Lo: -wMarv, Hi: wMarv},
		{Judgment: JPerfect, Lo: -wPerf, Hi: wPerf},
		{Judgment: JGreat, Lo: -wGreat, Hi: wGreat},
		{Judgment: JGood, Lo: -wGood, Hi: wGood},
		{Judgment: JOkay, Lo: -wOkay, Hi: wOkay},
	}, wOkay)
}
