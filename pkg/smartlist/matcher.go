package smartlist

import (
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// Match is one smartlist hit: token bytes found at [Start, End) in the
// password being decomposed.
type Match struct {
	Start, End int
	Token      Token
}

// Matcher finds every (including overlapping) occurrence of any
// smartlist token in a password, built once per Set and reused across
// every search node the entropy decomposer visits.
type Matcher struct {
	ac     ahocorasick.AhoCorasick
	tokens []Token
}

// Matcher builds the set's multi-pattern automaton. StandardMatch
// reports every match rather than only the longest or first-started
// one at a position, since the decomposer's search needs every possible
// edge out of a state, not a single greedy pick.
func (s *Set) Matcher() *Matcher {
	patterns := make([]string, len(s.tokens))
	for i, t := range s.tokens {
		patterns[i] = string(t.Bytes)
	}
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: false,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.StandardMatch,
		DFA:                  true,
	})
	return &Matcher{ac: builder.Build(patterns), tokens: s.tokens}
}

// Len reports the merged smartlist vocabulary size backing this
// matcher: the weight of every smartlist hit is log2 of this value,
// per spec.md §4.5's "preferring smartlist tokens over class runs at
// equal weight" cost model.
func (m *Matcher) Len() int {
	return len(m.tokens)
}

// FindAll returns every smartlist occurrence in password, overlapping
// matches included, grounded on password_entropy.rs's
// find_overlapping_iter.
func (m *Matcher) FindAll(password string) []Match {
	raw := m.ac.FindAll(password)
	out := make([]Match, len(raw))
	for i, r := range raw {
		out[i] = Match{Start: r.Start(), End: r.End(), Token: m.tokens[r.Pattern()]}
	}
	return out
}
