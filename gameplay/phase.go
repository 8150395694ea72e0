// Package gameplay implements the Gameplay Manager of spec.md §4.H: the
// central state machine that owns a beatmap, a mod set, a pluggable
// gamemode.Mode, the score/health ledgers, the replay stream and the
// input router, and advances them all in lock-step with an audio clock
// each tick. Grounded on the per-frame Update()/SendResult() loop in
// _examples/Blazzycrafter-danser-go/app/rulesets/osu/ruleset.go (the
// shape of "feed input, advance mode state, accumulate score/health,
// check fail") and on
// original_source/crates/tataku-engine/src/game/gameplay/gameplay.rs's
// higher-level phase machine and fail/recovery handling.
package gameplay

// Phase is the Gameplay Manager's top-level state, per spec.md §4.H.
type Phase int

const (
	Idle Phase = iota
	InIntro
	Running
	Paused
	Failed
	Completed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case InIntro:
		return "in_intro"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Failed:
		return "failed"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}
