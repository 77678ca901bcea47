// Package location resolves free-text location mentions to canonical
// neighbourhood names using a fixed alias table.
package location

import (
	"sort"
	"strings"
	"unicode"
)

// Matcher holds the read-only alias table. It is built once at startup and
// safe for unlimited concurrent readers.
type Matcher struct {
	// byAlias maps normalized alias -> canonical name.
	byAlias map[string]string
	// ordered holds normalized aliases sorted longest first, then
	// lexicographically, so containment matching is deterministic.
	ordered []string
}

// NewMatcher builds a matcher from an alias -> canonical mapping, such as the
// one produced by config.AliasTable.
func NewMatcher(aliases map[string]string) *Matcher {
	m := &Matcher{
		byAlias: make(map[string]string, len(aliases)),
		ordered: make([]string, 0, len(aliases)),
	}

	for alias, canonical := range aliases {
		norm := Normalize(alias)
		if norm == "" {
			continue
		}

		m.byAlias[norm] = canonical
		m.ordered = append(m.ordered, norm)
	}

	sort.Slice(m.ordered, func(i, j int) bool {
		if len(m.ordered[i]) != len(m.ordered[j]) {
			return len(m.ordered[i]) > len(m.ordered[j])
		}

		return m.ordered[i] < m.ordered[j]
	})

	return m
}

// Normalize lowercases text and collapses punctuation and whitespace runs to
// single spaces, so "Airport-Residential,  Accra" and "airport residential
// accra" compare equal.
func Normalize(text string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Match resolves text to a canonical location. Exact normalized match wins;
// otherwise two-way containment against every alias, preferring the longest
// (most specific) alias. A miss returns ("", false), an expected outcome
// rather than an error.
func (m *Matcher) Match(text string) (string, bool) {
	norm := Normalize(text)
	if norm == "" {
		return "", false
	}

	if canonical, ok := m.byAlias[norm]; ok {
		return canonical, true
	}

	for _, alias := range m.ordered {
		if strings.Contains(norm, alias) || strings.Contains(alias, norm) {
			return m.byAlias[alias], true
		}
	}

	return "", false
}

// BestWithin finds the longest canonical location mentioned anywhere inside
// a free-text utterance. Unlike Match it only looks for aliases contained in
// the text, never the reverse, so short utterance fragments cannot match a
// longer alias by accident.
func (m *Matcher) BestWithin(utterance string) (string, bool) {
	norm := " " + Normalize(utterance) + " "
	if strings.TrimSpace(norm) == "" {
		return "", false
	}

	for _, alias := range m.ordered {
		if strings.Contains(norm, " "+alias+" ") {
			return m.byAlias[alias], true
		}
	}

	return "", false
}
