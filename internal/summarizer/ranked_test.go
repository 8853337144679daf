package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docsum/internal/chunker"
	"docsum/internal/domain"
	"docsum/internal/ranker"
	"docsum/internal/similarity"
)

func newSummarizer(perParagraph int) *RankSummarizer {
	return NewRankSummarizer(chunker.NewSentenceChunker(), nil, perParagraph)
}

func TestSelectTop_ForeignRanks(t *testing.T) {
	paragraph := "Deep dish pizza is great. Deep dish pizza is great."

	got := newSummarizer(1).SelectTop(paragraph, domain.RankMap{}, 1)

	assert.Empty(t, got)
}

func TestSelectTop_ShortParagraphSkipped(t *testing.T) {
	ranks := domain.RankMap{"Irecommendthedeepdishpizza": 10}

	got := newSummarizer(1).SelectTop("I recommend the deep dish pizza.", ranks, 1)

	assert.Empty(t, got)
}

func TestSelectTop_OrdersByRank(t *testing.T) {
	paragraph := "First low. Second high. Third mid. Fourth unknown."
	ranks := domain.RankMap{"Firstlow": 0.1, "Secondhigh": 0.9, "Thirdmid": 0.5}
	s := newSummarizer(1)

	assert.Equal(t, []string{"Second high."}, s.SelectTop(paragraph, ranks, 1))
	assert.Equal(t, []string{"Second high.", "Third mid.", "First low."}, s.SelectTop(paragraph, ranks, 10))
	assert.Empty(t, s.SelectTop(paragraph, ranks, 0))
}

func TestSelectTop_TiesKeepDocumentOrder(t *testing.T) {
	paragraph := "Alpha one. Beta two. Gamma three."
	ranks := domain.RankMap{"Alphaone": 1, "Betatwo": 2, "Gammathree": 2}

	got := newSummarizer(1).SelectTop(paragraph, ranks, 2)

	assert.Equal(t, []string{"Beta two.", "Gamma three."}, got)
}

func TestSelectTop_DuplicateSentencesCollapse(t *testing.T) {
	paragraph := "Same text. Same text. Other."
	ranks := domain.RankMap{"Sametext": 2, "Other": 1}

	got := newSummarizer(1).SelectTop(paragraph, ranks, 3)

	assert.Equal(t, []string{"Same text.", "Other."}, got)
}

func TestSummarize_QueryMatchesFirst(t *testing.T) {
	doc := "The service was slow. Ok.\n\nGreat pizza here. Meh."
	ranks := domain.RankMap{"Theservicewasslow": 2.0, "Ok": 0, "Greatpizzahere": 0.5, "Meh": 0.1}

	got := newSummarizer(1).Summarize(doc, "deep dish pizza", ranks)

	assert.Equal(t, "Great pizza here.The service was slow.", got)
}

func TestSummarize_WholeQueryMatch(t *testing.T) {
	doc := "Nothing here. Filler.\n\nTry the deep dish pizza. Filler again."
	ranks := domain.RankMap{"Nothinghere": 1, "Filler": 0, "Trythedeepdishpizza": 1, "Filleragain": 0}

	got := newSummarizer(1).Summarize(doc, "deep dish pizza", ranks)

	assert.Equal(t, "Try the deep dish pizza.Nothing here.", got)
}

func TestSummarize_TermMatchIsWordBased(t *testing.T) {
	// "pizza." carries its period, so it does not equal the term "pizza"
	doc := "A hot pizza. Filler.\n\nBeer is cold. Filler again."
	ranks := domain.RankMap{"Ahotpizza": 1, "Filler": 0, "Beeriscold": 1, "Filleragain": 0}

	got := newSummarizer(1).Summarize(doc, "deep dish pizza", ranks)

	assert.Equal(t, "A hot pizza.Beer is cold.", got)

	got = newSummarizer(1).Summarize("Beer is cold. Filler.\n\nA hot pizza. Filler again.", "deep dish pizza",
		domain.RankMap{"Ahotpizza": 1, "Filler": 0, "Beeriscold": 1, "Filleragain": 0})
	assert.Equal(t, "Beer is cold.A hot pizza.", got)
}

func TestSummarize_Deduplicates(t *testing.T) {
	doc := "Great pizza crust. Filler.\n\nGreat pizza crust. Filler again."
	ranks := domain.RankMap{"Greatpizzacrust": 1, "Filler": 0, "Filleragain": 0}

	got := newSummarizer(1).Summarize(doc, "pizza", ranks)

	assert.Equal(t, "Great pizza crust.", got)
}

func TestSummarize_EmptyDocument(t *testing.T) {
	s := newSummarizer(1)
	r := ranker.NewGraphRanker(similarity.NewAverageOverlap(nil))
	ranks := r.Rank(chunker.NewSentenceChunker().Sentences(""))

	assert.Empty(t, s.Summarize("", "deep dish pizza", ranks))
}

func TestSummarize_SentencesPerParagraph(t *testing.T) {
	doc := "One a. Two b. Three c."
	ranks := domain.RankMap{"Onea": 3, "Twob": 2, "Threec": 1}

	assert.Equal(t, "One a.", newSummarizer(1).Summarize(doc, "zzz", ranks))
	assert.Equal(t, "One a.Two b.", newSummarizer(2).Summarize(doc, "zzz", ranks))
}
