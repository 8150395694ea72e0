// Package utyping implements the typed-word gamemode: each note carries a
// word that must be typed, letter by letter, before it expires. Judgment
// set and health deltas grounded on
// original_source/src/tataku/gameplay/modes/utyping/utyping_info/
// utyping_hit_judgments.rs (UTypingHitJudgment X300/X100/Miss).
package utyping

import "github.com/tataku/tataku-core/judgment"

var (
	JX300 = &judgment.Judgment{ID: "x300", Label: "Perfect", TextureName: "utyping-hit300", Health: 3.0, ScoreBase: 300, ComboEffect: judgment.Increment}
	JX100 = &judgment.Judgment{ID: "x100", Label: "Good", TextureName: "utyping-hit100", Health: 1.0, ScoreBase: 100, ComboEffect: judgment.Increment, FailsPerfect: true}
	JMiss = &judgment.Judgment{ID: "xmiss", Label: "Miss", TextureName: "utyping-hit0", Health: -10.0, ScoreBase: 0, ComboEffect: judgment.Reset, FailsPerfect: true, FailsSuddenDeath: true}
)

// Judgments is the static, ordered judgment enumeration for this mode.
var Judgments = []*judgment.Judgment{JX300, JX100, JMiss}
