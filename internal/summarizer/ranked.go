package summarizer

import (
	"sort"
	"strings"

	"docsum/internal/chunker"
	"docsum/internal/domain"
	"docsum/internal/stopwords"
)

// RankSummarizer builds a summary from the best ranked sentences of every
// paragraph, placing the sentences that match the query first.
type RankSummarizer struct {
	segmenter    domain.Segmenter
	stop         *stopwords.Filter
	perParagraph int
}

// NewRankSummarizer creates a summarizer picking perParagraph sentences from
// each paragraph.
func NewRankSummarizer(segmenter domain.Segmenter, stop *stopwords.Filter, perParagraph int) *RankSummarizer {
	if segmenter == nil {
		segmenter = chunker.NewSentenceChunker()
	}
	if stop == nil {
		stop = stopwords.Default()
	}
	if perParagraph <= 0 {
		perParagraph = 1
	}
	return &RankSummarizer{segmenter: segmenter, stop: stop, perParagraph: perParagraph}
}

// SelectTop returns up to count sentences of paragraph ordered by rank,
// highest first. Paragraphs with fewer than two sentences are skipped, and
// sentences whose key is missing from ranks are dropped. Equal ranks keep
// their order of appearance.
func (s *RankSummarizer) SelectTop(paragraph string, ranks domain.RankMap, count int) []string {
	sentences := s.segmenter.Sentences(paragraph)
	if len(sentences) < 2 || count <= 0 {
		return nil
	}
	type ranked struct {
		text string
		rank float64
	}
	var candidates []ranked
	seen := make(map[string]struct{}, len(sentences))
	for _, sent := range sentences {
		rank, ok := ranks.Lookup(chunker.CanonicalKey(sent))
		if !ok {
			continue
		}
		if _, dup := seen[sent]; dup {
			continue
		}
		seen[sent] = struct{}{}
		candidates = append(candidates, ranked{sent, rank})
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].rank > candidates[j].rank })
	if count > len(candidates) {
		count = len(candidates)
	}
	out := make([]string, count)
	for i := range out {
		out[i] = candidates[i].text
	}
	return out
}

// Summarize selects the best sentences of every paragraph of document and
// concatenates them. Sentences containing the whole query or one of its
// non-stop-word terms come first; each group keeps document order and a
// sentence appears at most once.
func (s *RankSummarizer) Summarize(document, query string, ranks domain.RankMap) string {
	terms := make(map[string]struct{})
	for _, t := range s.stop.Filter(strings.Fields(query)) {
		terms[t] = struct{}{}
	}
	var matching, rest []string
	for _, p := range s.segmenter.Paragraphs(document) {
		for _, sent := range s.SelectTop(p, ranks, s.perParagraph) {
			if sent == "" {
				continue
			}
			if matchesQuery(sent, query, terms) {
				matching = append(matching, sent)
			} else {
				rest = append(rest, sent)
			}
		}
	}
	var b strings.Builder
	seen := make(map[string]struct{}, len(matching)+len(rest))
	for _, sent := range append(matching, rest...) {
		if _, dup := seen[sent]; dup {
			continue
		}
		seen[sent] = struct{}{}
		b.WriteString(sent)
	}
	return b.String()
}

func matchesQuery(sentence, query string, terms map[string]struct{}) bool {
	if strings.Contains(sentence, query) {
		return true
	}
	for _, w := range strings.Fields(sentence) {
		if _, ok := terms[w]; ok {
			return true
		}
	}
	return false
}
