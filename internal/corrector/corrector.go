package corrector

import (
	"stava/pkg/options"
)

type SpellCorrector struct {
	options options.CorrectorOptions
	model   *Model
}

func NewSpellCorrector(opts ...options.Options) *SpellCorrector {
	return &SpellCorrector{options: options.Build(opts...), model: NewModel()}
}

// Model exposes the frequency model the corrector reads from.
func (sc *SpellCorrector) Model() *Model { return sc.model }

func (sc *SpellCorrector) Learn(text string) { sc.model.Learn(text) }

// Correct returns the most frequent known word within the configured number of edits of word,
// and whether a correction was made. The word is looked up as given, without lowercasing.
func (sc *SpellCorrector) Correct(word string) (string, bool) {
	res := sc.Lookup(word)
	return res.Corrected, res.WasCorrected
}

func (sc *SpellCorrector) Lookup(word string) CorrectionResult {
	res := CorrectionResult{Original: word, Corrected: word}
	if sc.model.Contains(word) || !isASCII(word) {
		return res
	}

	// Every frontier string is expanded, matched or not: distance-2 neighbours are only
	// reachable through distance-1 strings that are not words themselves.
	frontier := map[string]struct{}{word: {}}
	for d := 1; d <= sc.options.MaxEditDistance; d++ {
		frontier = expand(frontier)
		if best, ok := sc.best(frontier); ok {
			res.Corrected = best
			res.WasCorrected = true
			res.Distance = d
			return res
		}
	}
	return res
}

// best picks the known candidate with the highest count. Candidates sharing a count overwrite
// each other in map iteration order, so ties are arbitrary unless DeterministicTies is set.
func (sc *SpellCorrector) best(candidates map[string]struct{}) (string, bool) {
	ranked := make(map[uint64]string)
	for c := range candidates {
		n := sc.model.Count(c)
		if n == 0 {
			continue
		}
		if prev, ok := ranked[n]; ok && sc.options.DeterministicTies && prev < c {
			continue
		}
		ranked[n] = c
	}

	var top uint64
	for n := range ranked {
		if n > top {
			top = n
		}
	}
	if top == 0 {
		return "", false
	}
	return ranked[top], true
}
