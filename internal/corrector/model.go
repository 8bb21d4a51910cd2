package corrector

import (
	"regexp"
	"strings"
)

var tokenRe = regexp.MustCompile(`[a-z]+`)

func tokenize(text string) []string { return tokenRe.FindAllString(strings.ToLower(text), -1) }

// Model counts how often every learned word was seen.
// It is not safe for concurrent mutation; see Merge for combining models built in parallel.
type Model struct {
	counts map[string]uint64
}

func NewModel() *Model {
	return &Model{counts: make(map[string]uint64)}
}

// Learn lowercases text and counts every maximal run of a-z letters in it.
func (m *Model) Learn(text string) {
	for _, w := range tokenize(text) {
		m.counts[w]++
	}
}

// Add counts n more occurrences of word, which is stored as given.
func (m *Model) Add(word string, n uint64) {
	if word == "" || n == 0 {
		return
	}
	m.counts[word] += n
}

// Merge sums the counts of other into m.
func (m *Model) Merge(other *Model) {
	if other == nil || other == m {
		return
	}
	for w, n := range other.counts {
		m.counts[w] += n
	}
}

func (m *Model) Count(word string) uint64 { return m.counts[word] }

func (m *Model) Contains(word string) bool {
	_, ok := m.counts[word]
	return ok
}

func (m *Model) Len() int { return len(m.counts) }

// Counts returns a copy of the word counts.
func (m *Model) Counts() map[string]uint64 {
	out := make(map[string]uint64, len(m.counts))
	for w, n := range m.counts {
		out[w] = n
	}
	return out
}
