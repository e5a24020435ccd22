// Package analytics scores and ranks text extracted from PDF documents.
// It provides sentence-level extractive summaries and keyword lists driven
// by an explicit two-pass term-weighting computation.
package analytics

import (
	"strings"
	"unicode"
)

// Tokenize splits text into lowercase tokens, stripping surrounding
// punctuation. Tokens that are empty after cleaning are dropped.
func Tokenize(text string) []string {
	words := strings.Fields(strings.ToLower(text)) // strings.Fields handles multiple spaces and newlines
	tokens := make([]string, 0, len(words))

	for _, word := range words {
		word = strings.TrimFunc(word, func(r rune) bool {
			// Keep only lowercase letters and numbers at the edges
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})
		if word == "" {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// isAlphabetic reports whether the token consists only of letters.
// Keyword extraction discards numeric and mixed tokens.
func isAlphabetic(token string) bool {
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(token) > 0
}

// sentenceTerminators end a sentence when followed by whitespace or EOF.
const sentenceTerminators = ".!?"

// SplitSentences splits text into sentences on terminal punctuation.
// Sentences are returned verbatim with surrounding whitespace trimmed;
// empty fragments are dropped.
func SplitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		if !strings.ContainsRune(sentenceTerminators, runes[i]) {
			continue
		}
		// Consume a run of terminators ("...", "?!") as one boundary.
		end := i
		for end+1 < len(runes) && strings.ContainsRune(sentenceTerminators, runes[end+1]) {
			end++
		}
		// A terminator mid-token (e.g. "3.14", "v1.2") is not a boundary.
		if end+1 < len(runes) && !unicode.IsSpace(runes[end+1]) {
			i = end
			continue
		}

		sentence := strings.TrimSpace(string(runes[start : end+1]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = end + 1
		i = end
	}

	// Trailing text without terminal punctuation still counts as a sentence.
	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}

	return sentences
}
