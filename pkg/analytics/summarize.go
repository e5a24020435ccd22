package analytics

import (
	"errors"
	"sort"
	"strings"
)

// ErrEmptyContent is returned when the input text contains nothing to
// analyze. Callers treat it as a per-file failure, not a fatal one.
var ErrEmptyContent = errors.New("empty content")

// Summarize returns an extractive summary: the maxSentences highest-scoring
// sentences of the text, verbatim, re-joined in their original order.
// Texts with at most maxSentences sentences are returned whole.
func Summarize(text string, maxSentences int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyContent
	}

	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return "", ErrEmptyContent
	}
	if len(sentences) <= maxSentences {
		return strings.Join(sentences, " "), nil
	}

	sentenceTokens := make([][]string, len(sentences))
	for i, s := range sentences {
		sentenceTokens[i] = Tokenize(s)
	}
	scores := SentenceScores(sentenceTokens)

	// Rank by score; equal scores keep the earlier sentence.
	ranked := make([]int, len(sentences))
	for i := range ranked {
		ranked[i] = i
	}
	sort.Slice(ranked, func(a, b int) bool {
		if scores[ranked[a]] != scores[ranked[b]] {
			return scores[ranked[a]] > scores[ranked[b]]
		}
		return ranked[a] < ranked[b]
	})

	selected := ranked[:maxSentences]
	sort.Ints(selected)

	picked := make([]string, len(selected))
	for i, idx := range selected {
		picked[i] = sentences[idx]
	}
	return strings.Join(picked, " "), nil
}

// Keywords returns up to maxKeywords distinct terms ranked by descending
// term weight. Only alphabetic, non-stopword tokens qualify. Equal weights
// are broken lexicographically so output is deterministic.
func Keywords(text string, maxKeywords int) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyContent
	}

	sentences := SplitSentences(text)
	sentenceTokens := make([][]string, len(sentences))
	for i, s := range sentences {
		sentenceTokens[i] = Tokenize(s)
	}

	weights := TermWeights(sentenceTokens, func(term string) bool {
		return isAlphabetic(term) && !IsStopword(term)
	})
	if len(weights) == 0 {
		return nil, ErrEmptyContent
	}

	type kv struct {
		term   string
		weight float64
	}
	ranked := make([]kv, 0, len(weights))
	for term, w := range weights {
		ranked = append(ranked, kv{term, w})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].weight != ranked[j].weight {
			return ranked[i].weight > ranked[j].weight
		}
		return ranked[i].term < ranked[j].term
	})

	limit := maxKeywords
	if len(ranked) < limit {
		limit = len(ranked)
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = ranked[i].term
	}
	return keywords, nil
}
