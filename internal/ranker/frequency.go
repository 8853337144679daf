package ranker

import (
	"math"
	"regexp"
	"strings"

	"docsum/internal/chunker"
	"docsum/internal/domain"
	"docsum/internal/stopwords"
)

// FrequencyRanker ranks sentences by the document frequency of their words
// (stop words filtered), normalized by the most frequent word and damped by
// the square root of the sentence length.
type FrequencyRanker struct {
	tokenPattern *regexp.Regexp
	stop         *stopwords.Filter
}

// NewFrequencyRanker creates a frequency-based sentence ranker.
func NewFrequencyRanker(stop *stopwords.Filter) *FrequencyRanker {
	if stop == nil {
		stop = stopwords.Default()
	}
	return &FrequencyRanker{
		tokenPattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
		stop:         stop,
	}
}

// Rank returns the frequency score of every sentence keyed by its canonical
// key. When two sentences share a key the later one wins.
func (r *FrequencyRanker) Rank(sentences []string) domain.RankMap {
	tokens := make([][]string, len(sentences))
	freq := map[string]float64{}
	for i, sent := range sentences {
		tokens[i] = r.tokens(sent)
		for _, tok := range tokens[i] {
			if r.stop.Contains(tok) {
				continue
			}
			freq[tok]++
		}
	}
	// Normalize frequencies
	maxF := 0.0
	for _, v := range freq {
		if v > maxF {
			maxF = v
		}
	}
	if maxF > 0 {
		for k, v := range freq {
			freq[k] = v / maxF
		}
	}
	ranks := make(domain.RankMap, len(sentences))
	for i, sent := range sentences {
		score := 0.0
		for _, tok := range tokens[i] {
			score += freq[tok]
		}
		// Normalize by sentence length to avoid bias
		if l := float64(len(tokens[i])); l > 0 {
			score /= math.Sqrt(l)
		}
		ranks[chunker.CanonicalKey(sent)] = score
	}
	return ranks
}

func (r *FrequencyRanker) tokens(text string) []string {
	return r.tokenPattern.FindAllString(strings.ToLower(text), -1)
}
