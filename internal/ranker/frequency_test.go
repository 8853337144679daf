package ranker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsum/internal/chunker"
	"docsum/internal/similarity"
	"docsum/internal/stopwords"
)

func TestFrequencyRanker_Scores(t *testing.T) {
	sentences := []string{"Pizza is hot.", "Pizza pizza crust.", "Cold beer."}

	ranks := NewFrequencyRanker(nil).Rank(sentences)

	// pizza appears 3 times and normalizes to 1, every other word to 1/3;
	// the stop word "is" counts toward length only
	require.Len(t, ranks, 3)
	assert.InDelta(t, (1+1.0/3)/math.Sqrt(3), ranks["Pizzaishot"], 1e-12)
	assert.InDelta(t, (1+1+1.0/3)/math.Sqrt(3), ranks["Pizzapizzacrust"], 1e-12)
	assert.InDelta(t, (2.0/3)/math.Sqrt(2), ranks["Coldbeer"], 1e-12)
}

func TestFrequencyRanker_UsesInjectedStopWords(t *testing.T) {
	sentences := []string{"Pizza is hot.", "Pizza pizza crust."}

	ranks := NewFrequencyRanker(stopwords.New("pizza")).Rank(sentences)

	assert.InDelta(t, 2/math.Sqrt(3), ranks["Pizzaishot"], 1e-12)
	assert.InDelta(t, 1/math.Sqrt(3), ranks["Pizzapizzacrust"], 1e-12)
}

func TestFrequencyRanker_EmptyAndStopOnly(t *testing.T) {
	r := NewFrequencyRanker(nil)

	ranks := r.Rank(chunker.NewSentenceChunker().Sentences(""))
	score, ok := ranks.Lookup("")
	assert.True(t, ok)
	assert.Zero(t, score)

	ranks = r.Rank([]string{"The and of.", "It is."})
	assert.Zero(t, ranks["Theandof"])
	assert.Zero(t, ranks["Itis"])
}

func TestFrequencyRanker_DuplicateKeyLastWins(t *testing.T) {
	// both share the key "Itshot", but "its" is a stop word while "it's" is not
	ranks := NewFrequencyRanker(nil).Rank([]string{"It's hot.", "Its hot."})

	require.Len(t, ranks, 1)
	assert.InDelta(t, 1/math.Sqrt(2), ranks["Itshot"], 1e-12)
}

func TestNew(t *testing.T) {
	scorer := similarity.NewAverageOverlap(nil)

	r, err := New("", scorer, nil)
	require.NoError(t, err)
	assert.IsType(t, &GraphRanker{}, r)

	r, err = New(TypeFrequency, scorer, nil)
	require.NoError(t, err)
	assert.IsType(t, &FrequencyRanker{}, r)

	_, err = New("eigenvector", scorer, nil)
	assert.Error(t, err)
}
