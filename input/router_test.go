package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tataku/tataku-core/replay"
)

func TestLiveRouterTranslatesAndMarksSaved(t *testing.T) {
	km := KeyMap{"Z": replay.KeyK1, "X": replay.KeyK2}
	r := NewLiveRouter(km)

	r.PushHostEvent(HostEvent{RawKey: "Z", Pressed: true})
	r.PushHostEvent(HostEvent{RawKey: "unmapped", Pressed: true})
	r.PushHostEvent(HostEvent{IsMouse: true, MouseX: 1, MouseY: 2})

	actions := r.Poll(0)
	require.Len(t, actions, 2)
	assert.True(t, actions[0].ShouldSave)
	assert.Equal(t, replay.Press, actions[0].Action.Tag)
	assert.Equal(t, replay.KeyK1, actions[0].Action.Key)
	assert.Equal(t, replay.MousePos, actions[1].Action.Tag)

	assert.Empty(t, r.Poll(1))
}

func TestPlaybackRouterDrainsCursorAndMarksSaved(t *testing.T) {
	stream := replay.NewStream()
	stream.Push(0, replay.NewPress(replay.KeyK1))
	stream.Push(10, replay.NewRelease(replay.KeyK1))

	r := NewPlaybackRouter(replay.NewCursor(stream))

	first := r.Poll(5)
	require.Len(t, first, 1)
	assert.True(t, first[0].ShouldSave)

	second := r.Poll(10)
	require.Len(t, second, 1)
	assert.Equal(t, replay.Release, second[0].Action.Tag)
}

type fakeAutoplay struct {
	actions map[float64][]replay.Action
}

func (f *fakeAutoplay) Poll(t float64) []replay.Action {
	return f.actions[t]
}

func TestAutoplayRouterNeverMarksSaved(t *testing.T) {
	producer := &fakeAutoplay{actions: map[float64][]replay.Action{
		100: {replay.NewPress(replay.KeyK1)},
	}}
	r := NewAutoplayRouter(producer)

	actions := r.Poll(100)
	require.Len(t, actions, 1)
	assert.False(t, actions[0].ShouldSave)

	assert.Empty(t, r.Poll(200))
}
