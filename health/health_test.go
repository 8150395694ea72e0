package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultClampsToRange(t *testing.T) {
	h := NewDefault(100, 200)
	assert.Equal(t, 200.0, h.Apply(200))
	assert.Equal(t, 200.0, h.Current())

	assert.Equal(t, 0.0, h.Apply(-500))
	assert.Equal(t, 0.0, h.Current())
}

func TestDefaultIsDeadAtZeroRegardlessOfSongOver(t *testing.T) {
	h := NewDefault(50, 200)
	h.Apply(-50)
	assert.True(t, h.IsDead(false))
	assert.True(t, h.IsDead(true))
}

func TestDefaultNotDeadAboveZero(t *testing.T) {
	h := NewDefaultHealth()
	assert.Equal(t, 200.0, h.Current())
	assert.Equal(t, 200.0, h.Max())
	assert.False(t, h.IsDead(true))
}

func TestDefaultReset(t *testing.T) {
	h := NewDefault(200, 200)
	h.Apply(-200)
	h.Reset()
	assert.Equal(t, 200.0, h.Current())
}

func TestTaikoBatteryOnlyDiesWhenSongOverAndBelowPass(t *testing.T) {
	b := NewTaikoBattery()
	assert.Equal(t, 0.0, b.Current())
	assert.Equal(t, 200.0, b.Max())

	assert.False(t, b.IsDead(false))
	assert.True(t, b.IsDead(true))

	b.Apply(100)
	assert.False(t, b.IsDead(true))
}

func TestTaikoBatteryClampsAtMax(t *testing.T) {
	b := NewTaikoBattery()
	b.Apply(1000)
	assert.Equal(t, 200.0, b.Current())
}

func TestTaikoBatteryReset(t *testing.T) {
	b := NewTaikoBattery()
	b.Apply(150)
	b.Reset()
	assert.Equal(t, 0.0, b.Current())
}
