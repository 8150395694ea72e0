// Package osu implements the osu!-style circle/slider/spinner gamemode,
// the richest of the four shipped modes per SPEC_FULL.md §2. Judgment
// set, health deltas and combo effects are grounded directly on
// original_source/src/gameplay/modes/osu/osu_hit_judgments.rs
// (OsuHitJudgments); hit-window derivation from OD follows the
// conventional osu! formula also referenced by
// _examples/Blazzycrafter-danser-go/app/rulesets/osu/ruleset.go's
// difficulty-driven windows.
package osu

import "github.com/tataku/tataku-core/judgment"

var (
	JX300           = &judgment.Judgment{ID: "x300", Label: "300", TextureName: "hit300", Health: 3.0, ScoreBase: 300, ComboEffect: judgment.Increment}
	JX100           = &judgment.Judgment{ID: "x100", Label: "100", TextureName: "hit100", Health: 1.0, ScoreBase: 100, ComboEffect: judgment.Increment, FailsPerfect: true}
	JX50            = &judgment.Judgment{ID: "x50", Label: "50", TextureName: "hit50", Health: -2.0, ScoreBase: 50, ComboEffect: judgment.Increment, FailsPerfect: true}
	JMiss           = &judgment.Judgment{ID: "xmiss", Label: "Miss", TextureName: "hit0", Health: -10.0, ScoreBase: 0, ComboEffect: judgment.Reset, FailsPerfect: true, FailsSuddenDeath: true}
	JSliderDot      = &judgment.Judgment{ID: "slider_dot", Label: "Slider Tick", TextureName: "sliderpoint10", Health: 1.0, ScoreBase: 100, ComboEffect: judgment.Ignore}
	JSliderDotMiss  = &judgment.Judgment{ID: "slider_dot_miss", Label: "Slider Tick Miss", TextureName: "sliderpoint0", Health: -2.0, ScoreBase: 0, ComboEffect: judgment.Reset, FailsPerfect: true, FailsSuddenDeath: true}
	JSliderEnd      = &judgment.Judgment{ID: "slider_end", Label: "Slider End", TextureName: "hit300", Health: 1.0, ScoreBase: 0, ComboEffect: judgment.Increment}
	JSliderEndMiss  = &judgment.Judgment{ID: "slider_end_miss", Label: "Slider End Miss", TextureName: "hit0", Health: -5.0, ScoreBase: 0, ComboEffect: judgment.Reset, FailsPerfect: true, FailsSuddenDeath: true}
)

// Judgments is the static, ordered judgment enumeration for this mode,
// per spec.md §4.C "each mode ships a static enumeration of judgments
// with a fixed order".
var Judgments = []*judgment.Judgment{JX300, JX100, JX50, JMiss, JSliderDot, JSliderDotMiss, JSliderEnd, JSliderEndMiss}

// HitWindows builds the hit-window table for effective OD, per spec.md
// §4.C. Widths follow the classic osu! OD curve; the 50 window also
// serves as the miss window (a note unjudged past it is auto-missed).
func HitWindows(od float64) *judgment.Table {
	w300 := 80 - 6*od
	w100 := 140 - 8*od
	w50 := 200 - 10*od
	return judgment.NewTable([]judgment.Window{
		{Judgment: JX300, Lo: -w300, Hi: w300},
		{Judgment: JX100, Lo: -w100, Hi: w100},
		{Judgment: JX50, Lo: -w50, Hi: w50},
	}, w50)
}
