package gameplay

import (
	"github.com/tataku/tataku-core/audioclock"
	"github.com/tataku/tataku-core/beatmap"
	"github.com/tataku/tataku-core/difficulty"
	"github.com/tataku/tataku-core/gamemode"
	"github.com/tataku/tataku-core/health"
	"github.com/tataku/tataku-core/hitsound"
	"github.com/tataku/tataku-core/input"
	"github.com/tataku/tataku-core/internal/gamelog"
	"github.com/tataku/tataku-core/judgment"
	"github.com/tataku/tataku-core/ledger"
	"github.com/tataku/tataku-core/replay"
	"github.com/tataku/tataku-core/timing"
)

// recoveryTopUp is the health restored by a suppressed Easy-mod recovery,
// grounded on ruleset.go's hp.Increase(160, false) call.
const recoveryTopUp = 160.0

// recoveryCount is how many FailGame requests Easy converts into a
// recovery before an Easy-mod play can actually fail.
const recoveryCount = 2

// Manager is the Gameplay Manager of spec.md §4.H: it owns the beatmap,
// mod set, active gamemode.Mode, ledger, health manager, replay stream
// and input router for the duration of one play, and drives them all
// from a single Tick call per spec.md §4.H's ordered per-tick steps.
type Manager struct {
	bm   *beatmap.Beatmap
	mods *difficulty.Set

	mode      gamemode.Mode
	judgments []*judgment.Judgment

	ledger *ledger.Ledger
	health health.Manager

	stream *replay.Stream
	router *input.Router
	clock  *audioclock.Clock

	timingHelper *timing.Helper
	hitsounds    *hitsound.Dispatcher

	settings Settings
	phase    Phase

	recoveriesLeft int
	mapComplete    bool
}

// New constructs a Manager for bm, selecting a gamemode.Mode from the
// registry by bm.Mode and a health.Manager by that mode's GetInfo()
// HealthPolicy, per spec.md §4.E's "pluggable over {Default,
// TaikoBattery, ...}". judgments is the mode package's static judgment
// list (e.g. osu.Judgments), needed for the end-of-play summary and
// FinalizeScore but never referenced by the tick loop itself.
func New(bm *beatmap.Beatmap, mods *difficulty.Set, judgments []*judgment.Judgment, settings Settings, clock *audioclock.Clock, router *input.Router, dispatcher *hitsound.Dispatcher) (*Manager, error) {
	mode, err := gamemode.New(bm.Mode, bm, false, settings.toModeSettings())
	if err != nil {
		return nil, &Error{Reason: "constructing gamemode", Cause: err}
	}
	mode.ApplyMods(mods)

	var hp health.Manager
	switch mode.GetInfo().HealthPolicy {
	case "taiko_battery":
		hp = health.NewTaikoBattery()
	default:
		hp = health.NewDefaultHealth()
	}

	recoveries := 0
	if mods.Has(difficulty.Easy) {
		recoveries = recoveryCount
	}

	return &Manager{
		bm:             bm,
		mods:           mods,
		mode:           mode,
		judgments:      judgments,
		ledger:         ledger.New(),
		health:         hp,
		stream:         replay.NewStream(),
		router:         router,
		clock:          clock,
		timingHelper:   timing.New(bm.TimingPoints),
		hitsounds:      dispatcher,
		settings:       settings,
		phase:          Idle,
		recoveriesLeft: recoveries,
	}, nil
}

// Phase returns the manager's current phase.
func (m *Manager) Phase() Phase { return m.phase }

// Ledger exposes the running score/combo/judgment ledger.
func (m *Manager) Ledger() *ledger.Ledger { return m.ledger }

// Health exposes the active health manager.
func (m *Manager) Health() health.Manager { return m.health }

// Stream exposes the recorded replay stream.
func (m *Manager) Stream() *replay.Stream { return m.stream }

// Start moves the manager out of Idle into InIntro, per spec.md §4.H.
func (m *Manager) Start() {
	if m.phase == Idle {
		m.phase = InIntro
	}
}

// Pause suspends ticking without resetting any state.
func (m *Manager) Pause() {
	if m.phase == Running || m.phase == InIntro {
		m.phase = Paused
	}
}

// Resume leaves Paused and returns to Running.
func (m *Manager) Resume() {
	if m.phase == Paused {
		m.phase = Running
	}
}

// SkipIntro asks the active mode for its recommended skip-to time and, if
// it wants one, seeks the audio clock there, per spec.md §4.H's
// skip_intro wiring.
func (m *Manager) SkipIntro(currentTime float64) error {
	newTime, ok := m.mode.SkipIntro(currentTime)
	if !ok {
		return nil
	}
	return m.clock.SetPosition(newTime)
}

// TimeJump seeks the audio clock to ms and fast-forwards the timing
// helper to match, discarding any kiai/beat events crossed in the jump
// (per spec.md §4.H TimeJump, treated as exclusive of other tick work).
// It does not rewind the active Mode's judged-note cursor: a manager
// that needs to rewind gameplay state entirely should call mode.Reset
// instead.
func (m *Manager) TimeJump(ms float64) error {
	if err := m.clock.SetPosition(ms); err != nil {
		return err
	}
	m.timingHelper.Reset()
	m.timingHelper.Update(ms)
	return nil
}

// Tick advances the manager by one frame at time t, per spec.md §4.H's
// ordered steps: advance the timing helper, consume this tick's replay
// actions (live/playback/autoplay, unified by the input.Router), advance
// the mode's own Update, apply whatever actions the mode emitted, then
// re-evaluate fail/completion conditions.
func (m *Manager) Tick(t float64) {
	if m.phase == Idle || m.phase == Paused || m.phase == Failed || m.phase == Completed {
		return
	}
	if m.phase == InIntro {
		m.phase = Running
	}

	for _, ev := range m.timingHelper.Update(t) {
		ka, ok := m.mode.(gamemode.KiaiAware)
		if !ok {
			continue
		}
		switch ev.Kind {
		case timing.KiaiChanged:
			ka.KiaiChanged(ev.Kiai)
		case timing.BeatHappened:
			ka.BeatHappened(ev.PulseLength)
		}
	}

	ctx := &gamemode.Context{Time: t, Mods: m.mods, Autoplay: m.settings.Autoplay, Emit: gamemode.NewEmitter()}

	for _, ra := range m.router.Poll(t) {
		if ra.ShouldSave {
			m.stream.Push(float32(t), ra.Action)
		}
		m.mode.HandleReplayFrame(ctx, ra.Action)
	}

	m.mode.Update(ctx)

	m.applyActions(ctx.Emit.Drain())

	m.reevaluateFail(t)
}

func (m *Manager) applyActions(actions []gamemode.Action) {
	for _, a := range actions {
		switch a.Kind {
		case gamemode.ActAddJudgment:
			m.ledger.Apply(a.Judgment, a.Delta)
			m.health.Apply(a.Judgment.Health)
			if m.mods.Has(difficulty.Perfect) && a.Judgment.FailsPerfect {
				m.requestFail()
			}
			if m.mods.Has(difficulty.SuddenDeath) && a.Judgment.FailsSuddenDeath {
				m.requestFail()
			}
		case gamemode.ActComboBreak:
			m.ledger.BreakCombo()
		case gamemode.ActPlayHitsounds:
			if m.settings.HitsoundsEnabled && m.hitsounds != nil {
				m.hitsounds.Play(a.HitNames, a.Sounds)
			}
		case gamemode.ActFailGame:
			m.requestFail()
		case gamemode.ActMapComplete:
			m.mapComplete = true
		case gamemode.ActReplaceHealth:
			m.health.Apply(a.Health - m.health.Current())
		case gamemode.ActResetHealth:
			m.health.Reset()
		case gamemode.ActRemoveLastJudgment, gamemode.ActAddTiming, gamemode.ActAddIndicator:
			// Visual-only or currently-unsupported-undo actions: the
			// ledger has no per-judgment rollback, so RemoveLastJudgment
			// is logged and dropped rather than silently misapplied.
			if a.Kind == gamemode.ActRemoveLastJudgment {
				gamelog.Warn("RemoveLastJudgment requested but not supported by ledger; dropping")
			}
		}
	}
}

// requestFail implements the Recoveries supplemented feature: under
// Easy, the first recoveryCount FailGame requests top health back up
// instead of ending the play; NoFail suppresses failure outright.
func (m *Manager) requestFail() {
	if m.phase == Failed || m.phase == Completed {
		return
	}
	if m.mods.Has(difficulty.NoFail) {
		return
	}
	if m.mods.Has(difficulty.Easy) && m.recoveriesLeft > 0 {
		m.recoveriesLeft--
		m.health.Apply(recoveryTopUp)
		return
	}
	m.phase = Failed
	gamelog.Info("play failed at health=%.1f", m.health.Current())
}

func (m *Manager) reevaluateFail(t float64) {
	if m.phase == Failed || m.phase == Completed {
		return
	}

	songOver := m.mapComplete || t >= m.mode.EndTime()
	if m.health.IsDead(songOver) {
		m.requestFail()
	}
	if m.phase == Failed {
		return
	}
	if songOver {
		m.phase = Completed
	}
}
