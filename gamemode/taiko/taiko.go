package taiko

import (
	"github.com/tataku/tataku-core/beatmap"
	"github.com/tataku/tataku-core/difficulty"
	"github.com/tataku/tataku-core/gamemode"
	"github.com/tataku/tataku-core/judgment"
	"github.com/tataku/tataku-core/render"
	"github.com/tataku/tataku-core/replay"
)

func init() {
	gamemode.Register(beatmap.Mode("taiko"), New)
}

// RollExtra is the HitObjectData.Extra payload for a drumroll: the
// number of ticks it awards over its duration.
type RollExtra struct {
	Ticks int
}

var hitKeys = map[replay.Key]bool{
	replay.KeyK1: true, replay.KeyK2: true,
	replay.KeyK3: true, replay.KeyK4: true,
}

type noteState struct {
	data   beatmap.HitObjectData
	judged bool

	// roll (ObjectHold) state
	ticksTotal   int
	ticksDone    int
	tickInterval float64
	nextTickTime float64
}

// Mode is the taiko gamemode: don/kat hits judged against an OD-derived
// hit-window table, plus drumroll tick scoring, paired with the
// TaikoBattery health policy (§4.E).
type Mode struct {
	bm      *beatmap.Beatmap
	mods    *difficulty.Set
	windows *judgment.Table

	notes      []*noteState
	headCursor int
	pending    []int

	mapCompleteEmitted bool
	settings            gamemode.Settings

	autoplayIdx int
}

// New constructs a taiko Mode for bm, per gamemode.Constructor.
func New(bm *beatmap.Beatmap, diffCalcOnly bool, settings gamemode.Settings) (gamemode.Mode, error) {
	m := &Mode{settings: settings, mods: difficulty.NewSet()}
	m.Reset(bm)
	return m, nil
}

func (m *Mode) HandleReplayFrame(ctx *gamemode.Context, action replay.Action) {
	if action.Tag != replay.Press || !hitKeys[action.Key] {
		return
	}
	if m.headCursor >= len(m.notes) {
		return
	}
	n := m.notes[m.headCursor]
	if n.data.Type == beatmap.ObjectHold {
		// presses on a roll are ignored: its ticks accrue in Update as
		// they come due, independent of input.
		return
	}

	delta := ctx.Time - n.data.Time
	j := m.windows.Judge(delta)
	if j == nil {
		return
	}
	ctx.Emit.AddJudgment(j, delta)
	n.judged = true
	m.headCursor++
}

// Update auto-misses expired don/kat notes and scores each drumroll tick
// as it comes due over the roll's duration, per spec.md §4.I's per-tick
// continuous-state advance. Roll ticks are awarded whether or not any key
// is pressed.
func (m *Mode) Update(ctx *gamemode.Context) {
	for m.headCursor < len(m.notes) {
		n := m.notes[m.headCursor]

		if n.data.Type == beatmap.ObjectHold {
			m.pending = append(m.pending, m.headCursor)
			m.setupRoll(n)
			m.headCursor++
			continue
		}

		if n.judged {
			m.headCursor++
			continue
		}

		if m.windows.IsExpired(n.data.Time, ctx.Time) {
			ctx.Emit.AddJudgment(JMiss, m.windows.MissWindow())
			n.judged = true
			m.headCursor++
			continue
		}

		break
	}

	still := m.pending[:0]
	for _, idx := range m.pending {
		n := m.notes[idx]
		for n.nextTickTime <= ctx.Time && n.ticksDone < n.ticksTotal {
			ctx.Emit.AddJudgment(JRollTick, 0)
			n.ticksDone++
			n.nextTickTime += n.tickInterval
		}
		if ctx.Time < n.data.EndTime {
			still = append(still, idx)
		}
	}
	m.pending = still

	if !m.mapCompleteEmitted && m.headCursor >= len(m.notes) && len(m.pending) == 0 {
		ctx.Emit.MapComplete()
		m.mapCompleteEmitted = true
	}
}

func (m *Mode) setupRoll(n *noteState) {
	ticks := 1
	if re, ok := n.data.Extra.(RollExtra); ok && re.Ticks > 0 {
		ticks = re.Ticks
	}
	n.ticksTotal = ticks
	duration := n.data.EndTime - n.data.Time
	n.tickInterval = duration / float64(ticks)
	if n.tickInterval <= 0 {
		n.tickInterval = 1
	}
	n.nextTickTime = n.data.Time
}

func (m *Mode) Draw(ctx *gamemode.Context, list *render.List) {
	const lookahead = 500.0
	for _, n := range m.notes {
		if n.judged {
			continue
		}
		if n.data.Time-ctx.Time > lookahead {
			break
		}
		list.AddCircle(float32(n.data.Time-ctx.Time), 200, 24, render.Color{R: 1, G: 1, B: 1, A: 1}, float32(n.data.Time))
	}
}

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

	m.headCursor = 0
	m.pending = m.pending[:0]
	m.mapCompleteEmitted = false
	m.autoplayIdx = 0
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

func (m *Mode) Playmode() beatmap.Mode { return beatmap.Mode("taiko") }
func (m *Mode) EndTime() float64 {
	if m.bm == nil {
		return 0
	}
	return m.bm.EndTime
}

func (m *Mode) TimingBarThings() []gamemode.TimingBarEntry {
	return []gamemode.TimingBarEntry{
		{WindowMS: m.windows.WidthOf(JGood), Color: render.Color{R: 1, G: 0.2, B: 0.2, A: 1}},
		{WindowMS: m.windows.WidthOf(JOk), Color: render.Color{R: 0.2, G: 0.4, B: 1, A: 1}},
	}
}

func (m *Mode) GetPossibleKeys() []gamemode.KeyLabel {
	return []gamemode.KeyLabel{
		{Key: replay.KeyK1, Label: "Kat (left)"},
		{Key: replay.KeyK2, Label: "Don (left)"},
		{Key: replay.KeyK3, Label: "Don (right)"},
		{Key: replay.KeyK4, Label: "Kat (right)"},
	}
}

func (m *Mode) GetInfo() gamemode.Info {
	return gamemode.Info{ID: beatmap.Mode("taiko"), DisplayName: "taiko", HealthPolicy: "taiko_battery"}
}

// Poll implements input.AutoplayProducer: presses and immediately
// releases KeyK2 (a don key) for every note, rolls included, at its exact
// note_time.
func (m *Mode) Poll(t float64) []replay.Action {
	var out []replay.Action
	for m.autoplayIdx < len(m.notes) && m.notes[m.autoplayIdx].data.Time <= t {
		out = append(out, replay.NewPress(replay.KeyK2))
		out = append(out, replay.NewRelease(replay.KeyK2))
		m.autoplayIdx++
	}
	return out
}
