package analytics

import "math"

// termStats holds the output of the first scoring pass: per-sentence term
// counts plus the number of sentences each term appears in. No state
// survives between calls; every invocation rebuilds the model from scratch.
type termStats struct {
	counts    []map[string]int // term counts per sentence
	sentences map[string]int   // number of sentences containing each term
	total     int              // sentence count
}

// buildTermStats runs the counting pass over tokenized sentences.
func buildTermStats(sentenceTokens [][]string) termStats {
	stats := termStats{
		counts:    make([]map[string]int, len(sentenceTokens)),
		sentences: make(map[string]int),
		total:     len(sentenceTokens),
	}

	for i, tokens := range sentenceTokens {
		counts := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			counts[tok]++
		}
		stats.counts[i] = counts

		for tok := range counts {
			stats.sentences[tok]++
		}
	}

	return stats
}

// inverseFrequency returns the discount for a term appearing in df of n
// sentences. Terms confined to few sentences score above terms spread
// across many; the +1 keeps ubiquitous terms from zeroing out entirely.
func (s termStats) inverseFrequency(term string) float64 {
	df := s.sentences[term]
	return math.Log(float64(s.total)/float64(1+df)) + 1
}

// SentenceScores runs the scoring pass: each sentence is scored by the sum
// of its terms' frequency-weighted inverse sentence frequencies. Input and
// output are index-aligned.
func SentenceScores(sentenceTokens [][]string) []float64 {
	stats := buildTermStats(sentenceTokens)

	scores := make([]float64, len(sentenceTokens))
	for i, counts := range stats.counts {
		var score float64
		for term, tf := range counts {
			score += float64(tf) * stats.inverseFrequency(term)
		}
		scores[i] = score
	}

	return scores
}

// TermWeights scores every term across the whole document: total frequency
// discounted by how many sentences the term occurs in. Terms rejected by
// keep are skipped entirely. Sentences act as the corpus units, so a term
// concentrated in one section outranks one diluted across the document.
func TermWeights(sentenceTokens [][]string, keep func(string) bool) map[string]float64 {
	stats := buildTermStats(sentenceTokens)

	totals := make(map[string]int)
	for _, counts := range stats.counts {
		for term, tf := range counts {
			totals[term] += tf
		}
	}

	weights := make(map[string]float64, len(totals))
	for term, tf := range totals {
		if keep != nil && !keep(term) {
			continue
		}
		weights[term] = float64(tf) * stats.inverseFrequency(term)
	}

	return weights
}
