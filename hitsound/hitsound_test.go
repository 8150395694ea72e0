package hitsound

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tataku/tataku-core/beatmap"
)

type fakePlayer struct {
	played []string
	volume []float64
}

func (p *fakePlayer) PlaySample(path string, volume float64) {
	p.played = append(p.played, path)
	p.volume = append(p.volume, volume)
}

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Normal-Hitnormal.wav")

	bank, err := NewSampleBank(dir)
	require.NoError(t, err)

	path, ok := bank.Resolve("normal-hitnormal")
	assert.True(t, ok)
	assert.Contains(t, path, "Normal-Hitnormal.wav")
}

func TestPlayDegradesToDefaultSampleSetOnMiss(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "normal-hitnormal.wav")

	bank, err := NewSampleBank(dir)
	require.NoError(t, err)

	player := &fakePlayer{}
	d := NewDispatcher(bank, player, 1.0)

	// SampleSetDrum has no drum-hitnormal file on disk; expect fallback.
	d.Play([]string{"hitnormal"}, []Sound{{SampleSet: beatmap.SampleSetDrum}})

	require.Len(t, player.played, 1)
	assert.Contains(t, player.played[0], "normal-hitnormal.wav")
}

func TestPlayScalesVolumeByNoteAndGlobal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "normal-hitnormal.wav")

	bank, err := NewSampleBank(dir)
	require.NoError(t, err)

	player := &fakePlayer{}
	d := NewDispatcher(bank, player, 0.5)

	d.Play([]string{"hitnormal"}, []Sound{{SampleSet: beatmap.SampleSetNormal, Volume: 50}})

	require.Len(t, player.volume, 1)
	assert.InDelta(t, 0.25, player.volume[0], 1e-9)
}

func TestPlaySkipsUnresolvableSound(t *testing.T) {
	dir := t.TempDir()
	bank, err := NewSampleBank(dir)
	require.NoError(t, err)

	player := &fakePlayer{}
	d := NewDispatcher(bank, player, 1.0)
	d.Play([]string{"hitnormal"}, []Sound{{SampleSet: beatmap.SampleSetNormal}})

	assert.Empty(t, player.played)
}
