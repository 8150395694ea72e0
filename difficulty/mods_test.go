package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRemovesConflicts(t *testing.T) {
	s := NewSet()
	s.Apply(NoFail)
	removed := s.Apply(SuddenDeath)
	assert.ElementsMatch(t, []Mod{NoFail}, removed)
	assert.False(t, s.Has(NoFail))
	assert.True(t, s.Has(SuddenDeath))
}

func TestApplyIsSymmetricEvenWhenOnlyOneSideDeclaresIt(t *testing.T) {
	s := NewSet()
	s.Apply(Autoplay)
	// Autoplay's own Removes list is empty; Relax declares the conflict.
	removed := s.Apply(Relax)
	assert.ElementsMatch(t, []Mod{Autoplay}, removed)
	assert.False(t, s.Has(Autoplay))
	assert.True(t, s.Has(Relax))
}

func TestApplyIsIdempotent(t *testing.T) {
	s := NewSet()
	s.Apply(HardRock)
	removed := s.Apply(HardRock)
	assert.Nil(t, removed)
	assert.True(t, s.Has(HardRock))
}

func TestSpeedClampsToRange(t *testing.T) {
	s := NewSet()
	s.SetSpeed(3.0)
	assert.Equal(t, 2.0, s.Speed())
	s.SetSpeed(0.1)
	assert.Equal(t, 0.5, s.Speed())
	s.SetSpeed(1.5)
	assert.Equal(t, 1.5, s.Speed())
}

func TestScoreMultiplier(t *testing.T) {
	s := NewSet()
	s.Apply(NoFail)
	s.Apply(HardRock)
	assert.InDelta(t, 0.8*1.4, s.ScoreMultiplier(), 1e-9)
}

func TestAdjustDifficultyHardRockCapped(t *testing.T) {
	s := NewSet()
	s.Apply(HardRock)
	assert.Equal(t, 10.0, AdjustDifficulty(9, OD, s))
	assert.InDelta(t, 7.0*1.4, AdjustDifficulty(7, OD, s), 1e-9)
}

func TestAdjustDifficultyEasy(t *testing.T) {
	s := NewSet()
	s.Apply(Easy)
	assert.Equal(t, 2.5, AdjustDifficulty(5, AR, s))
}

func TestSetFromTagsReconstructsKnownMods(t *testing.T) {
	s, err := SetFromTags([]string{"hard_rock", "hidden"})
	require.NoError(t, err)
	assert.True(t, s.Has(HardRock))
	assert.True(t, s.Has(Hidden))
}

func TestSetFromTagsRejectsUnknownTag(t *testing.T) {
	_, err := SetFromTags([]string{"hard_rock", "made_up_mod"})
	require.Error(t, err)
	var unknownErr *UnknownModError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, Mod("made_up_mod"), unknownErr.Tag)
}
