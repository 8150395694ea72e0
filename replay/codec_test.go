package replay

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleScore() *Score {
	return &Score{
		Username:    "player1",
		BeatmapHash: [16]byte{1, 2, 3, 4},
		Playmode:    "osu",
		ScoreValue:  1234567,
		MaxCombo:    321,
		Judgments: []JudgmentCount{
			{Label: "x300", Count: 100},
			{Label: "xmiss", Count: 2},
		},
		Mods:      []string{"hidden", "hard_rock"},
		Timestamp: 1700000000,
		StatData:  map[string]float64{"unstable_rate": 55.4, "average_delta": -1.2},
	}
}

func sampleStream() *Stream {
	s := NewStream()
	s.Push(0, NewPress(KeyK1))
	s.Push(0, NewPress(KeyK2))
	s.Push(15, NewRelease(KeyK1))
	s.Push(30, NewMousePos(100.5, 200.25))
	s.Push(45, NewMouseScroll(-1.0))
	return s
}

func TestWriteReadRoundTripIsByteIdentical(t *testing.T) {
	score := sampleScore()
	stream := sampleStream()

	var buf bytes.Buffer
	require.NoError(t, WriteFile(&buf, score, stream))
	firstEncoding := append([]byte(nil), buf.Bytes()...)

	gotScore, gotStream, err := ReadFile(bytes.NewReader(firstEncoding))
	require.NoError(t, err)
	assert.Equal(t, score, gotScore)
	assert.Equal(t, stream.Frames(), gotStream.Frames())

	var buf2 bytes.Buffer
	require.NoError(t, WriteFile(&buf2, gotScore, gotStream))
	assert.Equal(t, firstEncoding, buf2.Bytes())
}

func TestFrameOrderingPreservesSeqOnSharedTime(t *testing.T) {
	stream := sampleStream()
	frames := stream.Frames()
	assert.Equal(t, frames[0].Time, frames[1].Time)
	assert.Less(t, frames[0].Seq, frames[1].Seq)
}

func TestReadFileRejectsBadMagic(t *testing.T) {
	buf := bytes.NewReader([]byte("XXXX"))
	_, _, err := ReadFile(buf)
	require.Error(t, err)
}

func TestReadFileRejectsUnsupportedVersion(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(Magic[:])
	buf.WriteByte(99)
	_, _, err := ReadFile(&buf)
	require.Error(t, err)
}

func TestCursorAdvanceUntilIsMonotoneAndOrdered(t *testing.T) {
	stream := sampleStream()
	cur := NewCursor(stream)

	first := cur.AdvanceUntil(15)
	require.Len(t, first, 3)
	assert.Equal(t, Press, first[0].Action.Tag)
	assert.Equal(t, Press, first[1].Action.Tag)
	assert.Equal(t, Release, first[2].Action.Tag)

	second := cur.AdvanceUntil(45)
	require.Len(t, second, 2)
	assert.True(t, cur.Done())
	assert.Empty(t, cur.AdvanceUntil(45))
}
