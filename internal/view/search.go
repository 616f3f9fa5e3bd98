package view

import (
	"strings"

	"golang.org/x/text/cases"
)

// Query narrows what a snapshot renders. It never triggers a fetch.
type Query struct {
	Search   string
	Category string
}

// matcher does case-insensitive substring matching with full Unicode case
// folding. A Caser is stateful, so each query gets its own.
type matcher struct {
	fold cases.Caser
	term string
}

func newMatcher(term string) *matcher {
	fold := cases.Fold()
	return &matcher{fold: fold, term: fold.String(term)}
}

// any reports whether one of fields contains the term. An empty term
// matches everything.
func (m *matcher) any(fields []string) bool {
	if m.term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(m.fold.String(f), m.term) {
			return true
		}
	}
	return false
}
