package main

import (
	"strings"
	"testing"

	"github.com/marisvali/tetris1/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordedGame(t *testing.T, seed int64, nFrames int) []byte {
	p := world.NewPlaythrough(1, seed, world.DefaultLevel())
	for i := range nFrames {
		input := world.PlayerInput{Events: []world.Event{world.TimerTick()}}
		if i%7 == 0 {
			input.Events = append(input.Events, world.KeyDown(world.KeyLeft))
		}
		p.History = append(p.History, input)
	}
	data, err := p.Serialize()
	require.NoError(t, err)
	return data
}

func TestRegressionId(t *testing.T) {
	data := recordedGame(t, 3, 300)
	id1, err := regressionId(data)
	require.NoError(t, err)
	id2, err := regressionId(data)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	other, err := regressionId(recordedGame(t, 4, 300))
	require.NoError(t, err)
	assert.NotEqual(t, id1, other)

	_, err = regressionId([]byte("not a playthrough"))
	assert.Error(t, err)
}

func TestReadRegressionIds(t *testing.T) {
	ids, err := readRegressionIds(strings.NewReader("abc a/1.tetris1-1-1\n\ndef b/2.tetris1-1-1\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"a/1.tetris1-1-1": "abc",
		"b/2.tetris1-1-1": "def",
	}, ids)

	_, err = readRegressionIds(strings.NewReader("missing-file-name\n"))
	assert.Error(t, err)
}
