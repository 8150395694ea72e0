// Package health implements the pluggable health-manager policies of
// spec.md §4.E. Default is grounded on the MaxHp/subSet.hp convention in
// _examples/Blazzycrafter-danser-go/app/rulesets/osu/ruleset.go (health
// clamped to [0, MaxHp], increased/decreased per judgment) and the 200.0
// ceiling used consistently by
// original_source/gamemodes/taiko/src/taiko_helpers/health_manager.rs's
// TaikoBatteryHealthManager (MAX_HEALTH = 200.0); Default uses 200.0
// rather than the 80.0 used by one of the original engine's generic
// health_manager.rs variants.
package health

// Manager is the pluggable health policy contract of spec.md §4.E. A mode
// (or mod) may swap in an alternate Manager at construction time; the
// gameplay manager only ever talks to this interface.
type Manager interface {
	// Apply adjusts health by the judgment's signed Health delta and
	// returns the new current value.
	Apply(delta float64) float64
	// Current returns the current health value.
	Current() float64
	// Max returns the ceiling health value can reach.
	Max() float64
	// IsDead reports whether the play should fail given songOver (true
	// once the last note/endTime has passed).
	IsDead(songOver bool) bool
	// Reset restores health to its initial value.
	Reset()
}

// Default is the standard clamped-health manager used by osu!-style and
// mania-style modes: health increases/decreases per judgment and is
// clamped to [0, Max]; death occurs as soon as health reaches 0,
// regardless of whether the song is over.
type Default struct {
	initial float64
	max     float64
	current float64
}

// NewDefault returns a Default health manager starting at initial,
// clamped to [0, max].
func NewDefault(initial, max float64) *Default {
	return &Default{initial: initial, max: max, current: initial}
}

// NewDefaultHealth returns the conventional Default manager: initial and
// max both at 200.0, as in SPEC_FULL.md §4.E.
func NewDefaultHealth() *Default {
	return NewDefault(200.0, 200.0)
}

func (d *Default) Apply(delta float64) float64 {
	d.current += delta
	if d.current > d.max {
		d.current = d.max
	}
	if d.current < 0 {
		d.current = 0
	}
	return d.current
}

func (d *Default) Current() float64 { return d.current }
func (d *Default) Max() float64     { return d.max }

// IsDead is true as soon as current health reaches zero; songOver is
// irrelevant for the Default policy.
func (d *Default) IsDead(songOver bool) bool {
	return d.current <= 0
}

func (d *Default) Reset() {
	d.current = d.initial
}

// TaikoBattery implements the taiko "battery" health policy: health
// starts empty, climbs toward Max as the player hits notes, and the play
// only fails if health is still below the pass threshold once the song
// ends. Grounded on
// original_source/gamemodes/taiko/src/taiko_helpers/health_manager.rs.
type TaikoBattery struct {
	max     float64
	pass    float64
	current float64
}

// NewTaikoBattery returns a TaikoBattery manager starting at 0, with the
// conventional MAX_HEALTH = 200.0 and PASS_HEALTH = MAX_HEALTH / 2.
func NewTaikoBattery() *TaikoBattery {
	const max = 200.0
	return &TaikoBattery{max: max, pass: max / 2, current: 0}
}

func (b *TaikoBattery) Apply(delta float64) float64 {
	b.current += delta
	if b.current > b.max {
		b.current = b.max
	}
	if b.current < 0 {
		b.current = 0
	}
	return b.current
}

func (b *TaikoBattery) Current() float64 { return b.current }
func (b *TaikoBattery) Max() float64     { return b.max }

// IsDead is only meaningful once the song is over: the play fails if the
// battery never reached the pass threshold. Mid-song, a low battery never
// fails the play outright.
func (b *TaikoBattery) IsDead(songOver bool) bool {
	return songOver && b.current < b.pass
}

func (b *TaikoBattery) Reset() {
	b.current = 0
}
