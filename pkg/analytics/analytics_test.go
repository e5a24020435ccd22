package analytics

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and strips punctuation",
			text: "Hello, World!",
			want: []string{"hello", "world"},
		},
		{
			name: "handles newlines and multiple spaces",
			text: "alpha   beta\ngamma",
			want: []string{"alpha", "beta", "gamma"},
		},
		{
			name: "keeps digits",
			text: "chapter 7 covers tcp",
			want: []string{"chapter", "7", "covers", "tcp"},
		},
		{
			name: "drops tokens that are pure punctuation",
			text: "one -- two",
			want: []string{"one", "two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "three simple sentences",
			text: "First one. Second one! Third one?",
			want: []string{"First one.", "Second one!", "Third one?"},
		},
		{
			name: "trailing text without punctuation",
			text: "Complete sentence. trailing fragment",
			want: []string{"Complete sentence.", "trailing fragment"},
		},
		{
			name: "decimal numbers do not split",
			text: "Pi is roughly 3.14 in value. Next sentence.",
			want: []string{"Pi is roughly 3.14 in value.", "Next sentence."},
		},
		{
			name: "ellipsis is one boundary",
			text: "Wait... Go on.",
			want: []string{"Wait...", "Go on."},
		},
		{
			name: "whitespace only",
			text: "   \n\t ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSentences(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsStopword(t *testing.T) {
	for _, word := range []string{"the", "The", "and", "is", "WOULD"} {
		if !IsStopword(word) {
			t.Errorf("IsStopword(%q) = false, want true", word)
		}
	}
	for _, word := range []string{"network", "pdf", "summary"} {
		if IsStopword(word) {
			t.Errorf("IsStopword(%q) = true, want false", word)
		}
	}
}

func TestSentenceScores_RareTermsScoreHigher(t *testing.T) {
	// "ubiquitous" appears in every sentence, "quantum" in only one.
	// The sentence holding the rare term must outscore a same-length
	// sentence made of common terms.
	sentences := [][]string{
		{"ubiquitous", "filler"},
		{"ubiquitous", "quantum"},
		{"ubiquitous", "filler"},
	}

	scores := SentenceScores(sentences)
	if len(scores) != 3 {
		t.Fatalf("SentenceScores() returned %d scores, want 3", len(scores))
	}
	if scores[1] <= scores[0] {
		t.Errorf("sentence with rare term scored %f, common sentence %f; want higher", scores[1], scores[0])
	}
	if scores[0] != scores[2] {
		t.Errorf("identical sentences scored differently: %f vs %f", scores[0], scores[2])
	}
}

func TestTermWeights_FilterAndConcentration(t *testing.T) {
	sentences := [][]string{
		{"spread", "alpha"},
		{"spread", "beta"},
		{"dense", "dense", "gamma"},
	}

	weights := TermWeights(sentences, func(term string) bool {
		return term != "gamma"
	})

	if _, ok := weights["gamma"]; ok {
		t.Error("TermWeights() kept a filtered term")
	}

	// "dense" and "spread" both occur twice overall, but "dense" is
	// confined to one sentence and must weigh more.
	if weights["dense"] <= weights["spread"] {
		t.Errorf("dense = %f, spread = %f; concentrated term should weigh more", weights["dense"], weights["spread"])
	}
}
