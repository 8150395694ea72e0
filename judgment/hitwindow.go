package judgment

import "sort"

// Window maps a single judgment to the signed time range, in milliseconds
// relative to the note's time, in which a press counts as that judgment.
type Window struct {
	Judgment *Judgment
	Lo, Hi   float64
}

func (w Window) width() float64 {
	return w.Hi - w.Lo
}

func (w Window) covers(delta float64) bool {
	return delta >= w.Lo && delta <= w.Hi
}

// Table is a hit-window table keyed by judgment, derived once from
// effective OD at mode start (spec.md §4.C).
type Table struct {
	windows    []Window
	missWindow float64
}

// NewTable builds a Table from windows (in any order) and a miss window.
// Windows are sorted by ascending absolute width; ties keep their
// original (declaration) order, per spec.md §4.C's tie-break rule.
func NewTable(windows []Window, missWindow float64) *Table {
	sorted := make([]Window, len(windows))
	copy(sorted, windows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].width() < sorted[j].width()
	})
	return &Table{windows: sorted, missWindow: missWindow}
}

// Judge scans the window table in ascending width order and returns the
// first judgment whose range covers delta = pressTime - noteTime. Returns
// nil if no window covers it (caller should treat this as "not yet
// resolved", not necessarily a miss).
func (t *Table) Judge(delta float64) *Judgment {
	for _, w := range t.windows {
		if w.covers(delta) {
			return w.Judgment
		}
	}
	return nil
}

// MissWindow is the time past which an unjudged note is auto-missed.
func (t *Table) MissWindow() float64 {
	return t.missWindow
}

// WidthOf returns the half-width (Hi, since windows are symmetric around
// 0) of j's window, or 0 if j has no window in this table. Used by modes
// to build their TimingBarThings() display bands.
func (t *Table) WidthOf(j *Judgment) float64 {
	for _, w := range t.windows {
		if w.Judgment == j {
			return w.Hi
		}
	}
	return 0
}

// IsExpired reports whether a note placed at noteTime should be
// auto-missed by the given currentTime, per spec.md §4.C step 3.
func (t *Table) IsExpired(noteTime, currentTime float64) bool {
	return currentTime >= noteTime+t.missWindow
}
