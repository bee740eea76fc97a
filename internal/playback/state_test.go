// internal/playback/state_test.go
package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepeatMode_String(t *testing.T) {
	assert.Equal(t, "None", RepeatNone.String())
	assert.Equal(t, "All", RepeatAll.String())
	assert.Equal(t, "One", RepeatOne.String())
	assert.Equal(t, "Unknown", RepeatMode(9).String())
}

func TestRepeatMode_NextIsThreeCycle(t *testing.T) {
	assert.Equal(t, RepeatAll, RepeatNone.Next())
	assert.Equal(t, RepeatOne, RepeatAll.Next())
	assert.Equal(t, RepeatNone, RepeatOne.Next())
}

func TestParseRepeatMode(t *testing.T) {
	tests := map[string]RepeatMode{
		"all":   RepeatAll,
		" One ": RepeatOne,
		"none":  RepeatNone,
		"":      RepeatNone,
		"radio": RepeatNone,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseRepeatMode(in), "%q", in)
	}
}
