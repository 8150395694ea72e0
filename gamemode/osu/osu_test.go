package osu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tataku/tataku-core/beatmap"
	"github.com/tataku/tataku-core/difficulty"
	"github.com/tataku/tataku-core/gamemode"
	"github.com/tataku/tataku-core/replay"
)

func newBeatmap(t *testing.T, objects []beatmap.HitObjectData) *beatmap.Beatmap {
	t.Helper()
	bm, err := beatmap.New(
		"hash", beatmap.Metadata{}, beatmap.Mode("osu"),
		beatmap.BaseDifficulty{OD: 5}, "", 0, objects,
		[]beatmap.TimingPoint{{Time: 0, BeatLength: 500, Meter: 4}}, 0,
	)
	require.NoError(t, err)
	return bm
}

func newCtx(t float64) *gamemode.Context {
	return &gamemode.Context{Time: t, Mods: difficulty.NewSet(), Emit: gamemode.NewEmitter()}
}

func TestCirclePressedAtNoteTimeIsX300(t *testing.T) {
	bm := newBeatmap(t, []beatmap.HitObjectData{{Time: 1000, EndTime: 1000, Type: beatmap.ObjectNote}})
	mode, err := New(bm, false, gamemode.Settings{})
	require.NoError(t, err)

	ctx := newCtx(1000)
	mode.HandleReplayFrame(ctx, replay.NewPress(replay.KeyK1))

	actions := ctx.Emit.Drain()
	require.Len(t, actions, 1)
	assert.Equal(t, JX300, actions[0].Judgment)
}

func TestCircleUnpressedPastMissWindowAutoMisses(t *testing.T) {
	bm := newBeatmap(t, []beatmap.HitObjectData{{Time: 1000, EndTime: 1000, Type: beatmap.ObjectNote}})
	mode, err := New(bm, false, gamemode.Settings{})
	require.NoError(t, err)

	ctx := newCtx(1200) // w50 for OD 5 is 150ms
	mode.Update(ctx)

	actions := ctx.Emit.Drain()
	require.Len(t, actions, 2)
	assert.Equal(t, JMiss, actions[0].Judgment)
	assert.Equal(t, gamemode.ActMapComplete, actions[1].Kind)
}

func TestSliderTicksAndTailJudgeAgainstHeldKeys(t *testing.T) {
	bm := newBeatmap(t, []beatmap.HitObjectData{
		{Time: 1000, EndTime: 2000, Type: beatmap.ObjectSlider, Extra: SliderExtra{Ticks: 1}},
	})
	mode, err := New(bm, false, gamemode.Settings{})
	require.NoError(t, err)

	ctx := newCtx(1000)
	mode.HandleReplayFrame(ctx, replay.NewPress(replay.KeyK1)) // seals the head, holds the key
	ctx.Emit.Drain()

	ctx = newCtx(1500) // tick interval = 1000/(1+1) = 500, so the tick lands at 1500
	mode.Update(ctx)
	tickActions := ctx.Emit.Drain()
	require.Len(t, tickActions, 1)
	assert.Equal(t, JSliderDot, tickActions[0].Judgment)

	ctx = newCtx(2000)
	mode.Update(ctx)
	tailActions := ctx.Emit.Drain()
	require.Len(t, tailActions, 2)
	assert.Equal(t, JSliderEnd, tailActions[0].Judgment)
	assert.Equal(t, gamemode.ActMapComplete, tailActions[1].Kind)
}

func TestSpinnerRatioTiersMapToJudgments(t *testing.T) {
	bm := newBeatmap(t, []beatmap.HitObjectData{
		{Time: 1000, EndTime: 2000, Type: beatmap.ObjectSpinner, Extra: SpinnerExtra{RequiredSpins: 4}},
	})
	mode, err := New(bm, false, gamemode.Settings{})
	require.NoError(t, err)

	ctx := newCtx(1000)
	mode.Update(ctx) // activates the spinner
	ctx.Emit.Drain()

	for i := 0; i < 4; i++ {
		ctx = newCtx(1000 + float64(i)*100)
		mode.HandleReplayFrame(ctx, replay.NewPress(replay.KeyK1))
		ctx.Emit.Drain()
	}

	ctx = newCtx(2000)
	mode.Update(ctx)
	actions := ctx.Emit.Drain()
	require.Len(t, actions, 2)
	assert.Equal(t, JX300, actions[0].Judgment)
	assert.Equal(t, gamemode.ActMapComplete, actions[1].Kind)
}

func TestPollAutoplayPressesAtExactNoteTime(t *testing.T) {
	bm := newBeatmap(t, []beatmap.HitObjectData{{Time: 1000, EndTime: 1000, Type: beatmap.ObjectNote}})
	mode, err := New(bm, false, gamemode.Settings{})
	require.NoError(t, err)
	m := mode.(*Mode)

	assert.Empty(t, m.Poll(999))
	actions := m.Poll(1000)
	require.Len(t, actions, 2)
	assert.Equal(t, replay.Press, actions[0].Tag)
	assert.Equal(t, replay.Release, actions[1].Tag)
}

// Autoplay must spread enough distinct spin presses across a spinner's
// duration to reach full (JX300) credit, not just touch it once.
func TestPollAutoplaySpinsSpinnerToFullCredit(t *testing.T) {
	bm := newBeatmap(t, []beatmap.HitObjectData{
		{Time: 1000, EndTime: 2000, Type: beatmap.ObjectSpinner, Extra: SpinnerExtra{RequiredSpins: 4}},
	})
	mode, err := New(bm, false, gamemode.Settings{})
	require.NoError(t, err)
	m := mode.(*Mode)

	// An earlier tick activates the spinner into pending state before its
	// own start time, matching how gameplay.Manager ticks from lead-in.
	mode.Update(newCtx(0))

	for tm := 1000.0; tm <= 2000.0; tm += 100.0 {
		ctx := newCtx(tm)
		for _, a := range m.Poll(tm) {
			m.HandleReplayFrame(ctx, a)
		}
		mode.Update(ctx)
		actions := ctx.Emit.Drain()
		if tm == 2000.0 {
			require.Len(t, actions, 2)
			assert.Equal(t, JX300, actions[0].Judgment)
			assert.Equal(t, gamemode.ActMapComplete, actions[1].Kind)
		}
	}
}
