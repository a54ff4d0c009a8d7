package fuzzy

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankerScoresSubsequenceMatches(t *testing.T) {
	r := NewRanker()

	score, ok := r.Score("turn on lights", "turn on lights")
	require.True(t, ok)
	assert.Positive(t, score)

	score, ok = r.Score("turn on the kitchen lights", "lights")
	require.True(t, ok)
	assert.Positive(t, score)
}

func TestRankerShortQueryInLongCandidateIsPositive(t *testing.T) {
	r := NewRanker()

	cases := []struct {
		candidate string
		query     string
	}{
		{"set the bedroom thermostat to 21 degrees", "therm"},
		{"what is the temperature in the living room", "temp"},
		{"turn off all lights in the house", "off"},
		{"turn on the kitchen lights", "lights"},
	}
	for _, tc := range cases {
		score, ok := r.Score(tc.candidate, tc.query)
		require.True(t, ok, "Score(%q, %q)", tc.candidate, tc.query)
		assert.Positive(t, score, "Score(%q, %q)", tc.candidate, tc.query)
	}
}

func TestRankerNoMatch(t *testing.T) {
	r := NewRanker()

	cases := []struct {
		candidate string
		query     string
	}{
		{"turn on lights", "xyz"},
		{"lights", "lights on"},
		{"", "lights"},
		{"lights", ""},
		{"on", "no"},
	}
	for _, tc := range cases {
		_, ok := r.Score(tc.candidate, tc.query)
		assert.False(t, ok, "Score(%q, %q)", tc.candidate, tc.query)
	}
}

func TestRankerSmartCase(t *testing.T) {
	r := NewRanker()

	_, ok := r.Score("Turn On Lights", "turn")
	assert.True(t, ok, "lowercase query matches either case")

	_, ok = r.Score("Turn On Lights", "Turn")
	assert.True(t, ok, "uppercase query matches same case")

	_, ok = r.Score("turn on lights", "Turn")
	assert.False(t, ok, "uppercase query requires uppercase candidate rune")

	_, ok = r.Score("Turn on lights", "TuLi")
	assert.False(t, ok, "L must match exactly")

	_, ok = r.Score("Turn on Lights", "TuLi")
	assert.True(t, ok)
}

func TestRankerIsDeterministic(t *testing.T) {
	r := NewRanker()
	first, ok := r.Score("set thermostat to 21", "therm 21")
	require.True(t, ok)
	for i := 0; i < 50; i++ {
		again, ok := r.Score("set thermostat to 21", "therm 21")
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestRankerPrefersCloserCandidates(t *testing.T) {
	r := NewRanker()
	candidates := []string{"turn on the kitchen lights", "turn on lights"}
	sort.SliceStable(candidates, func(i, j int) bool {
		si, _ := r.Score(candidates[i], "turn on lights")
		sj, _ := r.Score(candidates[j], "turn on lights")
		return si > sj
	})
	assert.Equal(t, "turn on lights", candidates[0])
}
