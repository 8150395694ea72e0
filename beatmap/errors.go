package beatmap

import "fmt"

// Error is the BeatmapError taxonomy from the spec: malformed or
// inconsistent input, surfaced to the caller of New and fatal for the
// instance being constructed.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("beatmap: %s", e.Reason)
}

func errf(format string, args ...interface{}) error {
	return &Error{Reason: fmt.Sprintf(format, args...)}
}
