package domain

// Document represents a single text file loaded into the system.
type Document struct {
	ID      string
	Path    string
	Content string
}

// RankMap maps a sentence's canonical key to its cumulative similarity
// against every other sentence of the same document. It is built once per
// document and only read afterwards.
type RankMap map[string]float64

// Lookup returns the rank stored for key and whether it was present. A
// missing key yields 0 and false.
func (m RankMap) Lookup(key string) (float64, bool) {
	r, ok := m[key]
	return r, ok
}

// Segmenter splits raw text into paragraphs and sentences.
type Segmenter interface {
	Sentences(text string) []string
	Paragraphs(text string) []string
}

// Scorer computes a symmetric lexical similarity in [0, 1] between two sentences.
type Scorer interface {
	Name() string
	Similarity(a, b string) float64
}

// Ranker derives a rank per sentence from the pairwise similarity graph.
type Ranker interface {
	Rank(sentences []string) RankMap
}

// Summarizer assembles a query-aware summary of a document from its ranks.
type Summarizer interface {
	Summarize(document, query string, ranks RankMap) string
}

// Highlighter marks the query terms inside a summary.
type Highlighter interface {
	Highlight(summary, query string) string
}

// Result is the highlighted summary produced for one document.
type Result struct {
	Document Document
	Query    string
	Summary  string
}
