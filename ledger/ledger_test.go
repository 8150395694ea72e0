package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tataku/tataku-core/judgment"
)

func TestComboFactorScalesThenCaps(t *testing.T) {
	assert.Equal(t, int64(1), comboFactor(0))
	assert.Equal(t, int64(1), comboFactor(9))
	assert.Equal(t, int64(1), comboFactor(10))
	assert.Equal(t, int64(1), comboFactor(11))
	assert.Equal(t, int64(8), comboFactor(80))
	assert.Equal(t, int64(8), comboFactor(200))
}

func TestApplyIncrementsScoreAndCombo(t *testing.T) {
	l := New()
	perfect := &judgment.Judgment{ID: "x300", ScoreBase: 300, ComboEffect: judgment.Increment}

	for i := 0; i < 11; i++ {
		l.Apply(perfect, 0)
	}

	assert.Equal(t, 11, l.Combo())
	assert.Equal(t, 11, l.MaxCombo())
	assert.Equal(t, 11, l.Count("x300"))
	// every one of the 11 hits scores at combo factor 1: comboFactor uses
	// the pre-increment combo (0..10), and floor(min(c,80)/10) is 0
	// (clamped to 1) for c < 10 and 1 at c = 10; it first reaches 2 at
	// c = 20.
	assert.Equal(t, int64(300*11), l.Score())
}

func TestApplyResetBreaksComboButKeepsMax(t *testing.T) {
	l := New()
	perfect := &judgment.Judgment{ID: "x300", ScoreBase: 300, ComboEffect: judgment.Increment}
	miss := &judgment.Judgment{ID: "xmiss", ScoreBase: 0, ComboEffect: judgment.Reset}

	l.Apply(perfect, 0)
	l.Apply(perfect, 0)
	l.Apply(miss, 0)

	assert.Equal(t, 0, l.Combo())
	assert.Equal(t, 2, l.MaxCombo())
}

func TestApplyIgnoreDoesNotTouchCombo(t *testing.T) {
	l := New()
	perfect := &judgment.Judgment{ID: "x300", ScoreBase: 300, ComboEffect: judgment.Increment}
	tick := &judgment.Judgment{ID: "slider_tick", ScoreBase: 10, ComboEffect: judgment.Ignore}

	l.Apply(perfect, 0)
	l.Apply(tick, 0)

	assert.Equal(t, 1, l.Combo())
	assert.Equal(t, int64(300+10), l.Score())
}

func TestDeltasRecordedInOrder(t *testing.T) {
	l := New()
	j := &judgment.Judgment{ID: "x300", ScoreBase: 300, ComboEffect: judgment.Increment}
	l.Apply(j, 5.5)
	l.Apply(j, -3.2)
	assert.Equal(t, []float64{5.5, -3.2}, l.Deltas())
}

func TestResetClearsEverything(t *testing.T) {
	l := New()
	j := &judgment.Judgment{ID: "x300", ScoreBase: 300, ComboEffect: judgment.Increment}
	l.Apply(j, 1)
	l.Reset()

	assert.Equal(t, int64(0), l.Score())
	assert.Equal(t, 0, l.Combo())
	assert.Equal(t, 0, l.MaxCombo())
	assert.Equal(t, 0, l.TotalNotes())
	assert.Empty(t, l.Deltas())
}
