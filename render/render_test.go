package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListAccumulatesInOrder(t *testing.T) {
	l := NewList()
	l.AddCircle(1, 2, 3, Color{1, 0, 0, 1}, 0.5)
	l.AddText("combo", 4, 5, 12, Color{}, 0.1)

	cmds := l.Commands()
	assert.Len(t, cmds, 2)
	assert.Equal(t, Circle, cmds[0].Kind)
	assert.Equal(t, Text, cmds[1].Kind)
	assert.Equal(t, "combo", cmds[1].Text)
}

func TestResetClearsCommands(t *testing.T) {
	l := NewList()
	l.AddLine(0, 0, 1, 1, 2, Color{}, 0)
	l.Reset()
	assert.Empty(t, l.Commands())
}
