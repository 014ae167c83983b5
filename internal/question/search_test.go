package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	cases := []struct {
		text, term string
		want       bool
	}{
		{"Title", "title", true},
		{"Title", "TITLE", true},
		{"What is the capital of Peru?", "capital", true},
		{"What is the capital of Peru?", "CAPITAL OF", true},
		{"What is the capital of Peru?", "xyz", false},
		{"anything", "", true},
		{"", "", true},
		{"", "a", false},
		{"100% cotton", "0%", true},
		{"a_b", "a.b", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Matches(tc.text, tc.term), "Matches(%q, %q)", tc.text, tc.term)
	}
}

func TestMatcherReusesFoldedTerm(t *testing.T) {
	m := NewMatcher("PeRu")
	assert.True(t, m.Match("What is the capital of Peru?"))
	assert.True(t, m.Match("PERUVIAN food"))
	assert.False(t, m.Match("Bolivia"))

	empty := NewMatcher("")
	assert.True(t, empty.Match(""))
	assert.True(t, empty.Match("anything"))
}
