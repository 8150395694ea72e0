package replay

// Score is the network & disk score payload of spec.md §6. It is the
// record persisted alongside (or ahead of) a replay's frame stream, and
// is itself length-prefixed when embedded in a .ttkr file.
type Score struct {
	Username     string
	BeatmapHash  [16]byte
	Playmode     string
	ScoreValue   uint64
	MaxCombo     uint16
	Judgments    []JudgmentCount
	Mods         []string
	Timestamp    uint64
	StatData     map[string]float64
}

// JudgmentCount is one entry of Score's judgment histogram: a judgment
// label paired with how many times it occurred.
type JudgmentCount struct {
	Label string
	Count uint32
}
