package utyping

import (
	"strings"

	"github.com/tataku/tataku-core/beatmap"
	"github.com/tataku/tataku-core/difficulty"
	"github.com/tataku/tataku-core/gamemode"
	"github.com/tataku/tataku-core/render"
	"github.com/tataku/tataku-core/replay"
)

func init() {
	gamemode.Register(beatmap.Mode("utyping"), New)
}

// WordExtra is the HitObjectData.Extra payload for a typed-word note: the
// word (upper-cased at parse time) the player must type before EndTime.
type WordExtra struct {
	Word string
}

var letterKeys = map[replay.Key]byte{
	replay.KeyLetterA: 'A', replay.KeyLetterB: 'B', replay.KeyLetterC: 'C',
	replay.KeyLetterD: 'D', replay.KeyLetterE: 'E', replay.KeyLetterF: 'F',
	replay.KeyLetterG: 'G', replay.KeyLetterH: 'H', replay.KeyLetterI: 'I',
	replay.KeyLetterJ: 'J', replay.KeyLetterK: 'K', replay.KeyLetterL: 'L',
	replay.KeyLetterM: 'M', replay.KeyLetterN: 'N', replay.KeyLetterO: 'O',
	replay.KeyLetterP: 'P', replay.KeyLetterQ: 'Q', replay.KeyLetterR: 'R',
	replay.KeyLetterS: 'S', replay.KeyLetterT: 'T', replay.KeyLetterU: 'U',
	replay.KeyLetterV: 'V', replay.KeyLetterW: 'W', replay.KeyLetterX: 'X',
	replay.KeyLetterY: 'Y', replay.KeyLetterZ: 'Z',
}

type noteState struct {
	data     beatmap.HitObjectData
	word     string
	typed    int
	mistakes int
	judged   bool
}

// Mode is the uTyping gamemode: words are judged on keystroke-sequence
// correctness against a deadline, not on a single timed press, so it does
// not use package judgment's hit-window table at all.
type Mode struct {
	bm *beatmap.Beatmap

	notes      []*noteState
	headCursor int

	mapCompleteEmitted bool
	settings           gamemode.Settings

	autoplayIdx int
	autoplayPos int
}

// New constructs a uTyping Mode for bm, per gamemode.Constructor.
func New(bm *beatmap.Beatmap, diffCalcOnly bool, settings gamemode.Settings) (gamemode.Mode, error) {
	m := &Mode{settings: settings}
	m.Reset(bm)
	return m, nil
}

func wordOf(o beatmap.HitObjectData) string {
	if we, ok := o.Extra.(WordExtra); ok {
		return strings.ToUpper(we.Word)
	}
	return ""
}

// HandleReplayFrame feeds one keystroke into the active note's typing
// cursor. A correct next letter advances it; a wrong letter counts as a
// mistake but does not reset progress, per spec.md §4.I's generalized
// judging-attempt path.
func (m *Mode) HandleReplayFrame(ctx *gamemode.Context, action replay.Action) {
	if action.Tag != replay.Press {
		return
	}
	letter, ok := letterKeys[action.Key]
	if !ok {
		return
	}
	if m.headCursor >= len(m.notes) {
		return
	}
	n := m.notes[m.headCursor]
	if n.judged || n.typed >= len(n.word) {
		return
	}

	if n.word[n.typed] == letter {
		n.typed++
		if n.typed == len(n.word) {
			m.judgeComplete(ctx, n)
		}
	} else {
		n.mistakes++
	}
}

func (m *Mode) judgeComplete(ctx *gamemode.Context, n *noteState) {
	j := JX300
	if n.mistakes > 0 {
		j = JX100
	}
	ctx.Emit.AddJudgment(j, 0)
	n.judged = true
	m.headCursor++
}

// Update auto-misses any note whose EndTime has passed without being
// fully typed.
func (m *Mode) Update(ctx *gamemode.Context) {
	for m.headCursor < len(m.notes) {
		n := m.notes[m.headCursor]
		if n.judged {
			m.headCursor++
			continue
		}
		if ctx.Time >= n.data.EndTime {
			ctx.Emit.AddJudgment(JMiss, 0)
			n.judged = true
			m.headCursor++
			continue
		}
		break
	}

	if !m.mapCompleteEmitted && m.headCursor >= len(m.notes) {
		ctx.Emit.MapComplete()
		m.mapCompleteEmitted = true
	}
}

func (m *Mode) Draw(ctx *gamemode.Context, list *render.List) {
	const lookahead = 1500.0
	for _, n := range m.notes {
		if n.judged {
			continue
		}
		if n.data.Time-ctx.Time > lookahead {
			break
		}
		remaining := n.word[n.typed:]
		list.AddText(remaining, 0, 0, 16, render.Color{R: 1, G: 1, B: 1, A: 1}, float32(n.data.Time))
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
	if cap(m.notes) >= len(bm.HitObjects) {
		m.notes = m.notes[:len(bm.HitObjects)]
	} else {
		m.notes = make([]*noteState, len(bm.HitObjects))
	}
	for i, o := range bm.HitObjects {
		m.notes[i] = &noteState{data: o, word: wordOf(o)}
	}
	m.headCursor = 0
	m.mapCompleteEmitted = false
	m.autoplayIdx = 0
	m.autoplayPos = 0
}

// ApplyMods is a no-op: uTyping has no mod-dependent hit windows.
func (m *Mode) ApplyMods(mods *difficulty.Set) {}

func (m *Mode) ForceUpdateSettings(settings gamemode.Settings) { m.settings = settings }
func (m *Mode) WindowSizeChanged(w, h float64)                 {}
func (m *Mode) FitToArea(w, h float64)                         {}
func (m *Mode) ReloadSkin(source gamemode.TextureSource)       {}

func (m *Mode) Playmode() beatmap.Mode { return beatmap.Mode("utyping") }
func (m *Mode) EndTime() float64 {
	if m.bm == nil {
		return 0
	}
	return m.bm.EndTime
}

// TimingBarThings returns nil: uTyping has no hit-error timing bar since
// judging is keystroke-based, not press-time-based.
func (m *Mode) TimingBarThings() []gamemode.TimingBarEntry { return nil }

func (m *Mode) GetPossibleKeys() []gamemode.KeyLabel {
	out := make([]gamemode.KeyLabel, 0, len(letterKeys))
	for key, letter := range letterKeys {
		out = append(out, gamemode.KeyLabel{Key: key, Label: string(letter)})
	}
	return out
}

func (m *Mode) GetInfo() gamemode.Info {
	return gamemode.Info{ID: beatmap.Mode("utyping"), DisplayName: "uTyping", HealthPolicy: "default"}
}

// Poll implements input.AutoplayProducer: in the first Poll at or after a
// note's note_time, it types that note's whole word, one Press per letter
// in order, per spec.md §9's autoplay-determinism note.
func (m *Mode) Poll(t float64) []replay.Action {
	var out []replay.Action
	for m.autoplayIdx < len(m.notes) {
		n := m.notes[m.autoplayIdx]
		if n.data.Time > t || len(n.word) == 0 {
			if n.data.Time <= t {
				m.autoplayIdx++
				m.autoplayPos = 0
				continue
			}
			break
		}
		for m.autoplayPos < len(n.word) {
			letter := n.word[m.autoplayPos]
			out = append(out, replay.NewPress(keyForLetter(letter)))
			m.autoplayPos++
		}
		m.autoplayIdx++
		m.autoplayPos = 0
	}
	return out
}

func keyForLetter(letter byte) replay.Key {
	for key, l := range letterKeys {
		if l == letter {
			return key
		}
	}
	return replay.KeySpace
}
