package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"termfolio/internal/completion"
)

func TestRecall(t *testing.T) {
	log := []string{"ls", "cd blog", "pwd"}
	strip := completion.EmptyStrip()
	nav := New()

	input, _ := nav.Up(strip, log, "")
	assert.Equal(t, "pwd", input)
	input, _ = nav.Up(strip, log, input)
	assert.Equal(t, "cd blog", input)
	input, _ = nav.Up(strip, log, input)
	assert.Equal(t, "ls", input)

	input, _ = nav.Up(strip, log, input)
	assert.Equal(t, "ls", input, "clamped at the oldest entry")
	assert.Equal(t, 0, nav.Cursor())

	input, _ = nav.Down(strip, log, input)
	assert.Equal(t, "cd blog", input)
	input, _ = nav.Down(strip, log, input)
	assert.Equal(t, "pwd", input)

	input, _ = nav.Down(strip, log, input)
	assert.Equal(t, "", input, "past the newest clears the input")
	assert.Equal(t, -1, nav.Cursor())

	input, _ = nav.Down(strip, log, "typed")
	assert.Equal(t, "typed", input)
}

func TestUpOnEmptyLog(t *testing.T) {
	nav := New()
	input, _ := nav.Up(completion.EmptyStrip(), nil, "half")
	assert.Equal(t, "half", input)
	assert.Equal(t, -1, nav.Cursor())
}

func TestStripTakesPrecedence(t *testing.T) {
	log := []string{"ls"}
	strip := completion.Strip{Candidates: []string{"cat", "cd", "clear"}, Selected: 0}
	nav := New()

	input, strip := nav.Up(strip, log, "c")
	assert.Equal(t, "c", input)
	assert.Equal(t, 0, strip.Selected)

	_, strip = nav.Down(strip, log, "c")
	_, strip = nav.Down(strip, log, "c")
	_, strip = nav.Down(strip, log, "c")
	assert.Equal(t, 2, strip.Selected)

	_, strip = nav.Up(strip, log, "c")
	assert.Equal(t, 1, strip.Selected)
	assert.Equal(t, -1, nav.Cursor(), "history untouched while the strip is visible")
}

func TestReset(t *testing.T) {
	log := []string{"a", "b"}
	nav := New()
	nav.Up(completion.EmptyStrip(), log, "")
	nav.Up(completion.EmptyStrip(), log, "")
	nav.Reset()

	input, _ := nav.Up(completion.EmptyStrip(), log, "")
	assert.Equal(t, "b", input)
}
