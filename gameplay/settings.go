package gameplay

import (
	"github.com/tataku/tataku-core/gamemode"
	"github.com/tataku/tataku-core/replay"
)

// Settings is the frozen, caller-constructed snapshot of spec.md §5's
// "Global settings snapshot" rule: read once at New and updated only via
// ForceUpdateSettings, never polled piecemeal mid-tick.
type Settings struct {
	Autoplay         bool
	HitsoundsEnabled bool
	HitsoundVolume   float64
	LeadInMS         float64
	KeyBindings      map[string]replay.Key
}

func (s Settings) toModeSettings() gamemode.Settings {
	return gamemode.Settings(s)
}
