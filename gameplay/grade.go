package gameplay

import (
	"github.com/tataku/tataku-core/difficulty"
	"github.com/tataku/tataku-core/ledger"
)

// Grade is the end-of-play letter grade, per SPEC_FULL.md's supplemented
// GameModeInfo/grade feature, grounded on
// blobnom-danser-go-rosu/app/rulesets/osu/grade.go's D/C/B/A/S/SH/SS/SSH
// tiering. It is a derived, non-persisted read-out: never stored in
// ledger.Ledger or replay.Score, only computed on demand.
type Grade string

const (
	GradeD   Grade = "D"
	GradeC   Grade = "C"
	GradeB   Grade = "B"
	GradeA   Grade = "A"
	GradeS   Grade = "S"
	GradeSH  Grade = "SH"
	GradeSS  Grade = "SS"
	GradeSSH Grade = "SSH"
)

// ComputeGrade derives a Grade from l's judgment histogram: the ratio of
// perfect-tier judgments ("x300" plus "xgeki") to all applied judgments,
// and whether any "xmiss" occurred. Other judgment IDs count only toward
// the total.
// Hidden/Flashlight upgrade S/SS to their silver (SH/SSH) variants, per
// the grounding source.
func ComputeGrade(l *ledger.Ledger, mods *difficulty.Set) Grade {
	total := l.TotalNotes()
	if total == 0 {
		return GradeD
	}

	perfect := l.Count("x300") + l.Count("xgeki")
	miss := l.Count("xmiss")
	ratio := float64(perfect) / float64(total)

	var grade Grade
	switch {
	case miss == 0 && perfect == total:
		grade = GradeSS
	case miss == 0 && ratio > 0.9:
		grade = GradeS
	case (miss == 0 && ratio > 0.8) || ratio > 0.9:
		grade = GradeA
	case (miss == 0 && ratio > 0.7) || ratio > 0.8:
		grade = GradeB
	case ratio > 0.6:
		grade = GradeC
	default:
		grade = GradeD
	}

	if mods.Has(difficulty.Hidden) || mods.Has(difficulty.Flashlight) {
		switch grade {
		case GradeSS:
			grade = GradeSSH
		case GradeS:
			grade = GradeSH
		}
	}

	return grade
}
