package similarity

import (
	"fmt"
	"math"
	"strings"

	"docsum/internal/domain"
	"docsum/internal/stopwords"
)

const (
	TypeAverage = "average"
	TypeOchiai  = "ochiai"
)

// AverageOverlap scores two sentences by their shared words normalized with
// the average sentence size:
//
//	sim(a, b) = |A ∩ B| / ((|A| + |B|) / 2)
//
// where A and B are the sets of whitespace-separated words left after stop-word
// removal. Two empty sets score 0.
type AverageOverlap struct {
	stop *stopwords.Filter
}

func NewAverageOverlap(stop *stopwords.Filter) *AverageOverlap {
	if stop == nil {
		stop = stopwords.Default()
	}
	return &AverageOverlap{stop: stop}
}

func (s *AverageOverlap) Name() string { return TypeAverage }

func (s *AverageOverlap) Similarity(a, b string) float64 {
	sa, sb := tokenSet(s.stop, a), tokenSet(s.stop, b)
	total := len(sa) + len(sb)
	if total == 0 {
		return 0
	}
	return float64(intersection(sa, sb)) / (float64(total) / 2)
}

// Ochiai scores two sentences with the Ochiai coefficient |A ∩ B| / sqrt(|A||B|)
// over the same filtered word sets. It is 0 when either set is empty.
type Ochiai struct {
	stop *stopwords.Filter
}

func NewOchiai(stop *stopwords.Filter) *Ochiai {
	if stop == nil {
		stop = stopwords.Default()
	}
	return &Ochiai{stop: stop}
}

func (s *Ochiai) Name() string { return TypeOchiai }

func (s *Ochiai) Similarity(a, b string) float64 {
	sa, sb := tokenSet(s.stop, a), tokenSet(s.stop, b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}
	return float64(intersection(sa, sb)) / math.Sqrt(float64(len(sa))*float64(len(sb)))
}

// New returns the scorer registered under name.
func New(name string, stop *stopwords.Filter) (domain.Scorer, error) {
	switch name {
	case TypeAverage, "":
		return NewAverageOverlap(stop), nil
	case TypeOchiai:
		return NewOchiai(stop), nil
	default:
		return nil, fmt.Errorf("unknown similarity: %s", name)
	}
}

func tokenSet(stop *stopwords.Filter, sentence string) map[string]struct{} {
	words := stop.Filter(strings.Fields(sentence))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func intersection(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return n
}
