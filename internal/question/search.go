package question

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matcher tests texts against one search term, ignoring case. The term is
// folded once up front. A Matcher is not safe for concurrent use.
type Matcher struct {
	fold cases.Caser
	term string
}

// NewMatcher builds a Matcher for a literal term.
func NewMatcher(term string) *Matcher {
	fold := cases.Fold()
	return &Matcher{fold: fold, term: fold.String(term)}
}

// Match reports whether the term occurs in text. An empty term matches
// everything.
func (m *Matcher) Match(text string) bool {
	if m.term == "" {
		return true
	}
	return strings.Contains(m.fold.String(text), m.term)
}

// Matches reports whether term occurs in text, ignoring case.
func Matches(text, term string) bool {
	return NewMatcher(term).Match(text)
}
