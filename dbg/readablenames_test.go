package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pair struct{ x, y float64 }

func TestName(t *testing.T) {
	a := Name(pair{1, 2})
	assert.NotEmpty(t, a)
	assert.Equal(t, a, Name(pair{1, 2}), "the same value keeps its name")
	assert.NotEqual(t, a, Name(pair{2, 1}))

	first, second := &pair{}, &pair{}
	assert.NotEqual(t, Name(first), Name(second), "distinct pointers get distinct names")
}

func TestName_Nil(t *testing.T) {
	var p *pair
	var s []int
	assert.Equal(t, "Ø", Name(nil))
	assert.Equal(t, "Ø", Name(p))
	assert.Equal(t, "Ø", Name(s))
}

func TestName_Uncomparable(t *testing.T) {
	assert.Equal(t, "[1 2]", Name([]int{1, 2}))
}

func TestNames_AreUnique(t *testing.T) {
	seen := make(map[string]int)
	for i := 0; i < 500; i++ {
		name := Name(i)
		previous, ok := seen[name]
		assert.False(t, ok, "%d and %d share the name %q", previous, i, name)
		seen[name] = i
	}
}

func TestColorize(t *testing.T) {
	assert.Equal(t, "plain", Colorize("plain", Broken, false))
	assert.Equal(t, "plain", Heading("plain", false))

	green := Colorize("ok", OK, true)
	red := Colorize("ok", Broken, true)
	yellow := Colorize("ok", Suspect, true)
	assert.Contains(t, green, "ok")
	assert.NotEqual(t, "ok", green)
	assert.NotEqual(t, green, red)
	assert.NotEqual(t, green, yellow)
	assert.Contains(t, Heading("title", true), "\x1b[")
}
