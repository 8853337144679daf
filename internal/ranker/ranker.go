package ranker

import (
	"docsum/internal/chunker"
	"docsum/internal/domain"
)

// GraphRanker ranks sentences by their degree in the weighted similarity graph:
// the rank of a sentence is the sum of its similarities to every other sentence.
type GraphRanker struct {
	scorer domain.Scorer
}

func NewGraphRanker(scorer domain.Scorer) *GraphRanker {
	return &GraphRanker{scorer: scorer}
}

// Matrix computes the full N×N similarity graph, diagonal included.
func (r *GraphRanker) Matrix(sentences []string) [][]float64 {
	n := len(sentences)
	graph := make([][]float64, n)
	for i := range graph {
		graph[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		graph[i][i] = r.scorer.Similarity(sentences[i], sentences[i])
		for j := i + 1; j < n; j++ {
			s := r.scorer.Similarity(sentences[i], sentences[j])
			graph[i][j], graph[j][i] = s, s
		}
	}
	return graph
}

// Rank returns the rank of every sentence keyed by its canonical key. A
// sentence never contributes to its own rank. When two sentences share a key
// the later one wins.
func (r *GraphRanker) Rank(sentences []string) domain.RankMap {
	graph := r.Matrix(sentences)
	ranks := make(domain.RankMap, len(sentences))
	for i, row := range graph {
		score := 0.0
		for j, v := range row {
			if i == j {
				continue
			}
			score += v
		}
		ranks[chunker.CanonicalKey(sentences[i])] = score
	}
	return ranks
}
