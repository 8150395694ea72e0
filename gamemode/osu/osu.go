package osu

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/tataku/tataku-core/beatmap"
	"github.com/tataku/tataku-core/difficulty"
	"github.com/tataku/tataku-core/gamemode"
	"github.com/tataku/tataku-core/judgment"
	"github.com/tataku/tataku-core/render"
	"github.com/tataku/tataku-core/replay"
)

// stackOffset is the per-stack-index draw nudge applied to circles sharing
// a position in quick succession, in osu!'s own playfield units.
var stackOffset = mgl32.Vec2{4, -4}

func init() {
	gamemode.Register(beatmap.Mode("osu"), New)
}

// SliderExtra is the HitObjectData.Extra payload a beatmap parser
// attaches to a slider: the number of intermediate ticks, per spec.md
// §4.I "Slider judging (osu-style): head hit, tick hits per slider
// ticks, tail hit".
type SliderExtra struct {
	Ticks int
}

// SpinnerExtra is the HitObjectData.Extra payload for a spinner: how many
// full spins complete it for full credit.
type SpinnerExtra struct {
	RequiredSpins int
}

type noteState struct {
	data beatmap.HitObjectData

	stackIndex int

	headJudged bool
	tailJudged bool

	// slider body
	ticksTotal   int
	ticksDone    int
	tickInterval float64
	nextTickTime float64

	// spinner
	activated     bool
	spins         int
	spinsRequired int
}

// Mode is the osu!-style gamemode: circles, sliders and spinners judged
// against an OD-derived hit-window table.
type Mode struct {
	bm    *beatmap.Beatmap
	mods  *difficulty.Set
	windows *judgment.Table

	notes      []*noteState
	headCursor int
	pending    []int
	keysHeld   map[replay.Key]bool

	mapCompleteEmitted bool
	settings            gamemode.Settings

	autoplayIdx      int
	autoplayReleases []float64
	autoplaySpins    []*autoplaySpinState
}

// autoplaySpinState tracks an in-flight spinner's autoplay spin presses:
// Poll must emit spinsRequired distinct Press actions spread across the
// spinner's duration, not just one, or autoplay never reaches the ratio
// that judges it JX300.
type autoplaySpinState struct {
	endTime      float64
	spinInterval float64
	nextSpin     float64
	spinsLeft    int
}

// New constructs an osu Mode for bm, per gamemode.Constructor.
func New(bm *beatmap.Beatmap, diffCalcOnly bool, settings gamemode.Settings) (gamemode.Mode, error) {
	m := &Mode{settings: settings, mods: difficulty.NewSet()}
	m.Reset(bm)
	return m, nil
}

func (m *Mode) HandleReplayFrame(ctx *gamemode.Context, action replay.Action) {
	switch action.Tag {
	case replay.Press:
		m.keysHeld[action.Key] = true
		m.tryJudgeHead(ctx)
		for _, idx := range m.pending {
			if n := m.notes[idx]; n.data.Type == beatmap.ObjectSpinner {
				n.spins++
			}
		}
	case replay.Release:
		delete(m.keysHeld, action.Key)
	}
}

// tryJudgeHead seals the earliest unjudged circle/slider head if action's
// time falls inside one of its hit windows, per spec.md §4.C/§4.I "a note
// is judged exactly once: the first press within its earliest covering
// window seals it".
func (m *Mode) tryJudgeHead(ctx *gamemode.Context) {
	if m.headCursor >= len(m.notes) {
		return
	}
	n := m.notes[m.headCursor]
	if n.data.Type == beatmap.ObjectSpinner || n.headJudged {
		return
	}
	delta := ctx.Time - n.data.Time
	j := m.windows.Judge(delta)
	if j == nil {
		return
	}
	ctx.Emit.AddJudgment(j, delta)
	n.headJudged = true
	if n.data.Type == beatmap.ObjectSlider {
		m.setupSliderBody(n)
		m.pending = append(m.pending, m.headCursor)
	}
	m.headCursor++
}

func (m *Mode) setupSliderBody(n *noteState) {
	ticks := 0
	if se, ok := n.data.Extra.(SliderExtra); ok {
		ticks = se.Ticks
	}
	n.ticksTotal = ticks
	duration := n.data.EndTime - n.data.Time
	if ticks > 0 {
		n.tickInterval = duration / float64(ticks+1)
	} else {
		n.tickInterval = duration + 1
	}
	n.nextTickTime = n.data.Time + n.tickInterval
}

// computeStacking assigns each note a stack index when it shares a
// position with the immediately preceding note within a short time
// window, mirroring osu!'s stack-leniency grouping (simplified: exact
// position match rather than the original's radius-based clustering).
func computeStacking(notes []*noteState) {
	const stackLeniencyMS = 150.0
	for i := 1; i < len(notes); i++ {
		prev, cur := notes[i-1], notes[i]
		if cur.data.X == prev.data.X && cur.data.Y == prev.data.Y &&
			cur.data.Time-prev.data.Time <= stackLeniencyMS {
			cur.stackIndex = prev.stackIndex + 1
		}
	}
}

// position returns n's draw position with its stack offset applied.
func (n *noteState) position() mgl32.Vec2 {
	base := mgl32.Vec2{float32(n.data.X), float32(n.data.Y)}
	if n.stackIndex == 0 {
		return base
	}
	return base.Add(stackOffset.Mul(float32(n.stackIndex)))
}

func spinnerRequired(data beatmap.HitObjectData) int {
	if se, ok := data.Extra.(SpinnerExtra); ok && se.RequiredSpins > 0 {
		return se.RequiredSpins
	}
	return 10
}

// Update advances auto-miss of expired heads, slider-tick/tail judging
// and spinner resolution, per spec.md §4.I "update(state) - advance any
// continuous state ... against the current clock".
func (m *Mode) Update(ctx *gamemode.Context) {
	for m.headCursor < len(m.notes) {
		n := m.notes[m.headCursor]

		if n.data.Type == beatmap.ObjectSpinner {
			if !n.activated {
				n.activated = true
				n.spinsRequired = spinnerRequired(n.data)
				m.pending = append(m.pending, m.headCursor)
			}
			m.headCursor++
			continue
		}

		if n.headJudged {
			m.headCursor++
			continue
		}

		if m.windows.IsExpired(n.data.Time, ctx.Time) {
			ctx.Emit.AddJudgment(JMiss, m.windows.MissWindow())
			n.headJudged = true
			if n.data.Type == beatmap.ObjectSlider {
				m.setupSliderBody(n)
				m.pending = append(m.pending, m.headCursor)
			}
			m.headCursor++
			continue
		}

		break
	}

	held := len(m.keysHeld) > 0
	still := m.pending[:0]
	for _, idx := range m.pending {
		n := m.notes[idx]
		resolved := false

		switch n.data.Type {
		case beatmap.ObjectSlider:
			for n.nextTickTime <= ctx.Time && n.ticksDone < n.ticksTotal {
				if held {
					ctx.Emit.AddJudgment(JSliderDot, 0)
				} else {
					ctx.Emit.AddJudgment(JSliderDotMiss, 0)
				}
				n.ticksDone++
				n.nextTickTime += n.tickInterval
			}
			if ctx.Time >= n.data.EndTime {
				if held {
					ctx.Emit.AddJudgment(JSliderEnd, 0)
				} else {
					ctx.Emit.AddJudgment(JSliderEndMiss, 0)
				}
				n.tailJudged = true
				resolved = true
			}
		case beatmap.ObjectSpinner:
			if ctx.Time >= n.data.EndTime {
				ratio := 0.0
				if n.spinsRequired > 0 {
					ratio = float64(n.spins) / float64(n.spinsRequired)
				}
				switch {
				case ratio >= 1.0:
					ctx.Emit.AddJudgment(JX300, 0)
				case ratio >= 0.5:
					ctx.Emit.AddJudgment(JX100, 0)
				case ratio > 0:
					ctx.Emit.AddJudgment(JX50, 0)
				default:
					ctx.Emit.AddJudgment(JMiss, 0)
				}
				n.tailJudged = true
				resolved = true
			}
		}

		if !resolved {
			still = append(still, idx)
		}
	}
	m.pending = still

	if !m.mapCompleteEmitted && m.headCursor >= len(m.notes) && len(m.pending) == 0 {
		ctx.Emit.MapComplete()
		m.mapCompleteEmitted = true
	}
}

func (m *Mode) Draw(ctx *gamemode.Context, list *render.List) {
	const lookahead = 600.0
	for _, n := range m.notes {
		if n.headJudged && n.tailJudged {
			continue
		}
		if n.data.Time-ctx.Time > lookahead {
			break
		}
		pos := n.position()
		list.AddCircle(pos[0], pos[1], 32, render.Color{R: 1, G: 1, B: 1, A: 1}, float32(n.data.Time))
	}
}

// SkipIntro reports the recommended jump-to time when time is more than
// the lead-in before the first note, per spec.md §4.I.
func (m *Mode) SkipIntro(time float64) (float64, bool) {
	if len(m.notes) == 0 {
		return 0, false
	}
	leadIn := m.settings.LeadInMS
	if leadIn <= 0 {
		leadIn = 1500
	}
	first := m.notes[0].data.Time
	if time < first-leadIn {
		return first - leadIn, true
	}
	return 0, false
}

// Reset restarts the mode against bm without reallocating the notes
// slice's backing array where the object count is unchanged, per spec.md
// §4.I.
func (m *Mode) Reset(bm *beatmap.Beatmap) {
	m.bm = bm
	od := bm.BaseDifficulty.OD
	if m.mods != nil {
		od = difficulty.AdjustDifficulty(od, difficulty.OD, m.mods)
	}
	m.windows = HitWindows(od)

	if cap(m.notes) >= len(bm.HitObjects) {
		m.notes = m.notes[:len(bm.HitObjects)]
	} else {
		m.notes = make([]*noteState, len(bm.HitObjects))
	}
	for i, o := range bm.HitObjects {
		m.notes[i] = &noteState{data: o}
	}
	computeStacking(m.notes)

	m.headCursor = 0
	m.pending = m.pending[:0]
	m.keysHeld = make(map[replay.Key]bool)
	m.mapCompleteEmitted = false
	m.autoplayIdx = 0
	m.autoplayReleases = nil
	m.autoplaySpins = nil
}

func (m *Mode) ApplyMods(mods *difficulty.Set) {
	m.mods = mods
	if m.bm != nil {
		od := difficulty.AdjustDifficulty(m.bm.BaseDifficulty.OD, difficulty.OD, mods)
		m.windows = HitWindows(od)
	}
}

func (m *Mode) ForceUpdateSettings(settings gamemode.Settings) { m.settings = settings }
func (m *Mode) WindowSizeChanged(w, h float64)                 {}
func (m *Mode) FitToArea(w, h float64)                         {}
func (m *Mode) ReloadSkin(source gamemode.TextureSource)       {}

func (m *Mode) Playmode() beatmap.Mode { return beatmap.Mode("osu") }
func (m *Mode) EndTime() float64 {
	if m.bm == nil {
		return 0
	}
	return m.bm.EndTime
}

func (m *Mode) TimingBarThings() []gamemode.TimingBarEntry {
	return []gamemode.TimingBarEntry{
		{WindowMS: m.windows.WidthOf(JX300), Color: render.Color{R: 0, G: 0.68, B: 1, A: 1}},
		{WindowMS: m.windows.WidthOf(JX100), Color: render.Color{R: 0.34, G: 0.89, B: 0.07, A: 1}},
		{WindowMS: m.windows.WidthOf(JX50), Color: render.Color{R: 0.9, G: 0.6, B: 0, A: 1}},
	}
}

func (m *Mode) GetPossibleKeys() []gamemode.KeyLabel {
	return []gamemode.KeyLabel{
		{Key: replay.KeyK1, Label: "Left"},
		{Key: replay.KeyK2, Label: "Right"},
		{Key: replay.KeyM1, Label: "Left Mouse"},
		{Key: replay.KeyM2, Label: "Right Mouse"},
	}
}

func (m *Mode) GetInfo() gamemode.Info {
	return gamemode.Info{ID: beatmap.Mode("osu"), DisplayName: "osu!", HealthPolicy: "default"}
}

// Poll implements input.AutoplayProducer (structurally): presses every
// circle and slider at its exact note_time with a fixed +0 offset (no
// floating-point wobble to guard against in Go's time representation),
// holding sliders until end_time, and taps spinners with evenly spaced
// press/release pairs (one per required spin) from note_time on, per
// spec.md §9's autoplay-determinism note.
func (m *Mode) Poll(t float64) []replay.Action {
	var out []replay.Action
	for m.autoplayIdx < len(m.notes) && m.notes[m.autoplayIdx].data.Time <= t {
		n := m.notes[m.autoplayIdx]
		switch n.data.Type {
		case beatmap.ObjectNote:
			out = append(out, replay.NewPress(replay.KeyK1), replay.NewRelease(replay.KeyK1))
		case beatmap.ObjectSpinner:
			required := spinnerRequired(n.data)
			interval := (n.data.EndTime - n.data.Time) / float64(required)
			m.autoplaySpins = append(m.autoplaySpins, &autoplaySpinState{
				endTime: n.data.EndTime, spinInterval: interval,
				nextSpin: n.data.Time, spinsLeft: required,
			})
		default:
			out = append(out, replay.NewPress(replay.KeyK1))
			m.autoplayReleases = append(m.autoplayReleases, n.data.EndTime)
		}
		m.autoplayIdx++
	}

	remainingReleases := m.autoplayReleases[:0]
	for _, rt := range m.autoplayReleases {
		if rt <= t {
			out = append(out, replay.NewRelease(replay.KeyK1))
		} else {
			remainingReleases = append(remainingReleases, rt)
		}
	}
	m.autoplayReleases = remainingReleases

	remainingSpins := m.autoplaySpins[:0]
	for _, sp := range m.autoplaySpins {
		for sp.spinsLeft > 0 && sp.nextSpin <= t {
			out = append(out, replay.NewPress(replay.KeyK1), replay.NewRelease(replay.KeyK1))
			sp.spinsLeft--
			sp.nextSpin += sp.spinInterval
		}
		if sp.spinsLeft > 0 && sp.endTime > t {
			remainingSpins = append(remainingSpins, sp)
		}
	}
	m.autoplaySpins = remainingSpins

	return out
}
