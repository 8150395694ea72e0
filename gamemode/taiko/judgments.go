// Package taiko implements the don/kat taiko gamemode, paired with the
// TaikoBattery health policy. Judgment set grounded on
// original_source/gamemodes/taiko/src/taiko_info (Good/Ok/Miss, health
// deltas feeding the battery's health_per_300/100/miss constructor
// arguments in taiko_helpers/health_manager.rs); hit windows scaled from
// the same OD curve family as osu but narrower, matching taiko-rs's
// tighter timing.
package taiko

import "github.com/tataku/tataku-core/judgment"

var (
	JGood = &judgment.Judgment{ID: "x300", Label: "Good", TextureName: "taiko-hit300", Health: 3.0, ScoreBase: 300, ComboEffect: judgment.Increment}
	JOk   = &judgment.Judgment{ID: "x100", Label: "Ok", TextureName: "taiko-hit100", Health: 1.0, ScoreBase: 100, ComboEffect: judgment.Increment, FailsPerfect: true}
	JMiss = &judgment.Judgment{ID: "xmiss", Label: "Miss", TextureName: "taiko-hit0", Health: -12.0, ScoreBase: 0, ComboEffect: judgment.Reset, FailsPerfect: true, FailsSuddenDeath: true}

	JRollTick     = &judgment.Judgment{ID: "roll_tick", Label: "Roll Tick", TextureName: "taiko-roll-tick", Health: 0.5, ScoreBase: 30, ComboEffect: judgment.Ignore}
)

// Judgments is the static, ordered judgment enumeration for this mode.
var Judgments = []*judgment.Judgment{JGood, JOk, JMiss, JRollTick}

// HitWindows builds taiko's hit-window table for effective OD. Per
// spec.md §4.C these are narrower than osu!'s circle windows.
func HitWindows(od float64) *judgment.Table {
	wGood := 50 - 3*od
	wOk := 100 - 4*od
	return judgment.NewTable([]judgment.Window{
		{Judgment: JGood, Lo: -wGood, Hi: wGood},
		{Judgment: JOk, Lo: -wOk, Hi: wOk},
	}, wOk)
}
