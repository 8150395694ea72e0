package gamemode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tataku/tataku-core/beatmap"
	"github.com/tataku/tataku-core/difficulty"
	"github.com/tataku/tataku-core/render"
	"github.com/tataku/tataku-core/replay"
)

type fakeMode struct{ tag beatmap.Mode }

func (f *fakeMode) HandleReplayFrame(ctx *Context, action replay.Action) {}
func (f *fakeMode) Update(ctx *Context)                                  {}
func (f *fakeMode) Draw(ctx *Context, list *render.List)                 {}
func (f *fakeMode) SkipIntro(time float64) (float64, bool)               { return 0, false }
func (f *fakeMode) Reset(bm *beatmap.Beatmap)                            {}
func (f *fakeMode) ApplyMods(mods *difficulty.Set)                       {}
func (f *fakeMode) ForceUpdateSettings(settings Settings)                {}
func (f *fakeMode) WindowSizeChanged(w, h float64)                       {}
func (f *fakeMode) FitToArea(w, h float64)                               {}
func (f *fakeMode) ReloadSkin(source TextureSource)                      {}
func (f *fakeMode) Playmode() beatmap.Mode                               { return f.tag }
func (f *fakeMode) EndTime() float64                                     { return 0 }
func (f *fakeMode) TimingBarThings() []TimingBarEntry                    { return nil }
func (f *fakeMode) GetPossibleKeys() []KeyLabel                          { return nil }
func (f *fakeMode) GetInfo() Info                                        { return Info{ID: f.tag} }

func TestNewReturnsUnknownGameModeError(t *testing.T) {
	_, err := New("not_a_real_mode", nil, false, Settings{})
	require.Error(t, err)
	var gmErr *Error
	require.ErrorAs(t, err, &gmErr)
	assert.Equal(t, UnknownGameMode, gmErr.Kind)
}

func TestRegisterThenNewConstructs(t *testing.T) {
	Register("fake_test_mode", func(bm *beatmap.Beatmap, diffCalcOnly bool, settings Settings) (Mode, error) {
		return &fakeMode{tag: "fake_test_mode"}, nil
	})
	assert.True(t, Registered("fake_test_mode"))

	m, err := New("fake_test_mode", nil, false, Settings{})
	require.NoError(t, err)
	assert.Equal(t, beatmap.Mode("fake_test_mode"), m.Playmode())
}
