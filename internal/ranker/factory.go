package ranker

import (
	"fmt"

	"docsum/internal/domain"
	"docsum/internal/stopwords"
)

const (
	TypeGraph     = "graph"
	TypeFrequency = "frequency"
)

// New returns the ranker registered under name. The scorer is only used by
// the graph ranker.
func New(name string, scorer domain.Scorer, stop *stopwords.Filter) (domain.Ranker, error) {
	switch name {
	case TypeGraph, "":
		return NewGraphRanker(scorer), nil
	case TypeFrequency:
		return NewFrequencyRanker(stop), nil
	default:
		return nil, fmt.Errorf("unknown ranker: %s", name)
	}
}
