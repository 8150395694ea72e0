// Package replay implements the append-only replay frame stream and its
// binary (.ttkr) serialization, per spec.md §3 ReplayFrame and §6's wire
// format. Grounded on the teacher's binary-serialization conventions
// (fixed-width, big-endian length prefixes, as used by
// _examples/Blazzycrafter-danser-go/framework/util in related encoders)
// and on original_source/crates/tataku-engine/.../tataku_replay.rs for
// the high-level "a score is a length-prefixed blob" shape.
package replay

// Key is a stable mapping to a single byte, per spec.md §6's "adding a
// key appends to the mapping, never renumbers" rule. Existing values must
// never change meaning or be reused; new keys are always added at the
// end of this block, regardless of which mode introduces them.
type Key uint8

const (
	KeyM1 Key = iota
	KeyM2
	KeyK1
	KeyK2
	KeyK3
	KeyK4
	KeySmoke
	KeyLetterA
	KeyLetterB
	KeyLetterC
	KeyLetterD
	KeyLetterE
	KeyLetterF
	KeyLetterG
	KeyLetterH
	KeyLetterI
	KeyLetterJ
	KeyLetterK
	KeyLetterL
	KeyLetterM
	KeyLetterN
	KeyLetterO
	KeyLetterP
	KeyLetterQ
	KeyLetterR
	KeyLetterS
	KeyLetterT
	KeyLetterU
	KeyLetterV
	KeyLetterW
	KeyLetterX
	KeyLetterY
	KeyLetterZ
	KeySpace
	KeyBackspace
	KeyEnter
)
