package mania

import (
	"github.com/tataku/tataku-core/beatmap"
	"github.com/tataku/tataku-core/difficulty"
	"github.com/tataku/tataku-core/gamemode"
	"github.com/tataku/tataku-core/judgment"
	"github.com/tataku/tataku-core/render"
	"github.com/tataku/tataku-core/replay"
)

func init() {
	gamemode.Register(beatmap.Mode("mania"), New)
}

const numColumns = 4

var columnKeys = [numColumns]replay.Key{replay.KeyK1, replay.KeyK2, replay.KeyK3, replay.KeyK4}

func columnFor(key replay.Key) (int, bool) {
	for i, k := range columnKeys {
		if k == key {
			return i, true
		}
	}
	return 0, false
}

type noteState struct {
	data     beatmap.HitObjectData
	headDone bool // head judged (taps: also fully judged)
	judged   bool // fully resolved (tail for holds, same as headDone for taps)
}

// Mode is the mania gamemode: per-column taps and long notes, with head
// and tail judged separately per spec.md §4.I's hold-note invariant.
type Mode struct {
	bm      *beatmap.Beatmap
	mods    *difficulty.Set
	windows *judgment.Table

	notesByColumn [numColumns][]*noteState
	headIdx       [numColumns]int
	holding       map[int]*noteState

	resolvedCount, totalNotes int
	mapCompleteEmitted        bool
	settings                  gamemode.Settings

	autoplayIdx [numColumns]int
}

// New constructs a mania Mode for bm, per gamemode.Constructor.
func New(bm *beatmap.Beatmap, diffCalcOnly bool, settings gamemode.Settings) (gamemode.Mode, error) {
	m := &Mode{settings: settings, mods: difficulty.NewSet(), holding: make(map[int]*noteState)}
	m.Reset(bm)
	return m, nil
}

func (m *Mode) markJudged(n *noteState) {
	n.judged = true
	m.resolvedCount++
}

func (m *Mode) HandleReplayFrame(ctx *gamemode.Context, action replay.Action) {
	col, ok := columnFor(action.Key)
	if !ok {
		return
	}

	switch action.Tag {
	case replay.Press:
		if m.holding[col] != nil {
			return
		}
		notes := m.notesByColumn[col]
		idx := m.headIdx[col]
		if idx >= len(notes) {
			return
		}
		n := notes[idx]
		if n.headDone {
			return
		}
		delta := ctx.Time - n.data.Time
		j := m.windows.Judge(delta)
		if j == nil {
			return
		}
		ctx.Emit.AddJudgment(j, delta)
		n.headDone = true
		if n.data.Type == beatmap.ObjectHold {
			m.holding[col] = n
		} else {
			m.markJudged(n)
		}

	case replay.Release:
		n := m.holding[col]
		if n == nil {
			return
		}
		delta := ctx.Time - n.data.EndTime
		j := m.windows.Judge(delta)
		if j == nil {
			j = JMiss
		}
		ctx.Emit.AddJudgment(j, delta)
		m.markJudged(n)
		delete(m.holding, col)
	}
}

func (m *Mode) Update(ctx *gamemode.Context) {
	for col := 0; col < numColumns; col++ {
		notes := m.notesByColumn[col]
		for m.headIdx[col] < len(notes) {
			n := notes[m.headIdx[col]]
			if n.headDone {
				m.headIdx[col]++
				continue
			}
			if m.windows.IsExpired(n.data.Time, ctx.Time) {
				ctx.Emit.AddJudgment(JMiss, m.windows.MissWindow())
				n.headDone = true
				if n.data.Type == beatmap.ObjectHold {
					m.holding[col] = n
				} else {
					m.markJudged(n)
				}
				m.headIdx[col]++
				continue
			}
			break
		}

		if n := m.holding[col]; n != nil && ctx.Time >= n.data.EndTime+m.windows.MissWindow() {
			ctx.Emit.AddJudgment(JMiss, m.windows.MissWindow())
			m.markJudged(n)
			delete(m.holding, col)
		}
	}

	if !m.mapCompleteEmitted && m.resolvedCount >= m.totalNotes {
		ctx.Emit.MapComplete()
		m.mapCompleteEmitted = true
	}
}

func (m *Mode) Draw(ctx *gamemode.Context, list *render.List) {
	const lookahead = 800.0
	const laneWidth = 80
	for col := 0; col < numColumns; col++ {
		for _, n := range m.notesByColumn[col] {
			if n.judged {
				continue
			}
			if n.data.Time-ctx.Time > lookahead {
				break
			}
			x := float32(col * laneWidth)
			list.AddCircle(x, float32(n.data.Time-ctx.Time), 20, render.Color{R: 1, G: 1, B: 1, A: 1}, float32(n.data.Time))
		}
	}
}

func (m *Mode) SkipIntro(time float64) (float64, bool) {
	first, any := m.firstNoteTime()
	if !any {
		return 0, false
	}
	leadIn := m.settings.LeadInMS
	if leadIn <= 0 {
		leadIn = 1500
	}
	if time < first-leadIn {
		return first - leadIn, true
	}
	return 0, false
}

func (m *Mode) firstNoteTime() (float64, bool) {
	first := 0.0
	found := false
	for col := 0; col < numColumns; col++ {
		if len(m.notesByColumn[col]) == 0 {
			continue
		}
		t := m.notesByColumn[col][0].data.Time
		if !found || t < first {
			first, found = t, true
		}
	}
	return first, found
}

func (m *Mode) Reset(bm *beatmap.Beatmap) {
	m.bm = bm
	od := bm.BaseDifficulty.OD
	if m.mods != nil {
		od = difficulty.AdjustDifficulty(od, difficulty.OD, m.mods)
	}
	m.windows = HitWindows(od)

	for col := 0; col < numColumns; col++ {
		m.notesByColumn[col] = m.notesByColumn[col][:0]
		m.headIdx[col] = 0
		m.autoplayIdx[col] = 0
	}
	for _, o := range bm.HitObjects {
		col := o.Column
		if col < 0 || col >= numColumns {
			col = 0
		}
		m.notesByColumn[col] = append(m.notesByColumn[col], &noteState{data: o})
	}

	m.holding = make(map[int]*noteState)
	m.resolvedCount = 0
	m.totalNotes = len(bm.HitObjects)
	m.mapCompleteEmitted = false
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

func (m *Mode) Playmode() beatmap.Mode { return beatmap.Mode("mania") }
func (m *Mode) EndTime() float64 {
	if m.bm == nil {
		return 0
	}
	return m.bm.EndTime
}

func (m *Mode) TimingBarThings() []gamemode.TimingBarEntry {
	return []gamemode.TimingBarEntry{
		{WindowMS: m.windows.WidthOf(JMarvelous), Color: render.Color{R: 1, G: 1, B: 0.6, A: 1}},
		{WindowMS: m.windows.WidthOf(JPerfect), Color: render.Color{R: 1, G: 0.9, B: 0.1, A: 1}},
		{WindowMS: m.windows.WidthOf(JGreat), Color: render.Color{R: 0.2, G: 0.8, B: 0.2, A: 1}},
		{WindowMS: m.windows.WidthOf(JGood), Color: render.Color{R: 0.2, G: 0.5, B: 1, A: 1}},
		{WindowMS: m.windows.WidthOf(JOkay), Color: render.Color{R: 0.8, G: 0.3, B: 0.8, A: 1}},
	}
}

func (m *Mode) GetPossibleKeys() []gamemode.KeyLabel {
	return []gamemode.KeyLabel{
		{Key: columnKeys[0], Label: "Column 1"},
		{Key: columnKeys[1], Label: "Column 2"},
		{Key: columnKeys[2], Label: "Column 3"},
		{Key: columnKeys[3], Label: "Column 4"},
	}
}

func (m *Mode) GetInfo() gamemode.Info {
	return gamemode.Info{ID: beatmap.Mode("mania"), DisplayName: "mania", HealthPolicy: "default"}
}

// Poll implements input.AutoplayProducer: presses each column's next note
// at its exact time, releasing taps at once and holds at their end time,
// per spec.md §9.
func (m *Mode) Poll(t float64) []replay.Action {
	var out []replay.Action
	for col := 0; col < numColumns; col++ {
		notes := m.notesByColumn[col]
		if h := m.holding[col]; h != nil && h.data.EndTime <= t {
			out = append(out, replay.NewRelease(columnKeys[col]))
		}
		for m.autoplayIdx[col] < len(notes) && notes[m.autoplayIdx[col]].data.Time <= t {
			key := columnKeys[col]
			n := notes[m.autoplayIdx[col]]
			out = append(out, replay.NewPress(key))
			if n.data.Type != beatmap.ObjectHold || n.data.EndTime <= t {
				out = append(out, replay.NewRelease(key))
			}
			m.autoplayIdx[col]++
		}
	}
	return out
}
