package gameplay

import (
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/tataku/tataku-core/replay"
)

// PrintSummary renders the end-of-play judgment/score table to w, the
// same call shape as ruleset.go's Update()-time results table: a
// tablewriter grid of judgment counts followed by a humanized score
// line.
func (m *Manager) PrintSummary(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Judgment", "Count"})
	for _, j := range m.judgments {
		table.Append([]string{j.Label, strconv.Itoa(m.ledger.Count(j.ID))})
	}
	table.Render()

	io.WriteString(w, "Score: "+humanize.Comma(m.ledger.Score())+
		"  Max Combo: "+strconv.Itoa(m.ledger.MaxCombo())+
		"  Grade: "+string(ComputeGrade(m.ledger, m.mods))+"\n")
}

// accuracy is the perfect-tier hit ratio backing FinalizeScore's
// "accuracy" stat, shared with ComputeGrade's own perfect-tier count.
func (m *Manager) accuracy() float64 {
	total := m.ledger.TotalNotes()
	if total == 0 {
		return 0
	}
	perfect := m.ledger.Count("x300") + m.ledger.Count("xgeki")
	return float64(perfect) / float64(total)
}

// FinalizeScore builds the replay.Score payload of spec.md §6 from the
// manager's accumulated ledger state, for embedding in a .ttkr file
// alongside m.Stream() via replay.WriteFile.
func (m *Manager) FinalizeScore(username string, beatmapHash [16]byte, timestamp uint64) *replay.Score {
	var judgments []replay.JudgmentCount
	for _, j := range m.judgments {
		if count := m.ledger.Count(j.ID); count > 0 {
			judgments = append(judgments, replay.JudgmentCount{Label: j.Label, Count: uint32(count)})
		}
	}

	var modTags []string
	for _, tag := range m.mods.Tags() {
		modTags = append(modTags, string(tag))
	}

	return &replay.Score{
		Username:    username,
		BeatmapHash: beatmapHash,
		Playmode:    string(m.mode.Playmode()),
		ScoreValue:  uint64(m.ledger.Score()),
		MaxCombo:    uint16(m.ledger.MaxCombo()),
		Judgments:   judgments,
		Mods:        modTags,
		Timestamp:   timestamp,
		StatData:    map[string]float64{"accuracy": m.accuracy()},
	}
}
