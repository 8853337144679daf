package stopwords

import "strings"

// Filter removes function words from token sequences. Comparison is on the
// lowercase form of each token; the tokens themselves are returned untouched.
type Filter struct {
	words map[string]struct{}
}

// New creates a filter over the given words.
func New(words ...string) *Filter {
	f := &Filter{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		f.add(w)
	}
	return f
}

// Default returns a filter over the built-in English list.
func Default() *Filter {
	return New(defaultWords...)
}

// With returns a copy of f extended with extra words.
func (f *Filter) With(extra ...string) *Filter {
	out := &Filter{words: make(map[string]struct{}, len(f.words)+len(extra))}
	for w := range f.words {
		out.words[w] = struct{}{}
	}
	for _, w := range extra {
		out.add(w)
	}
	return out
}

// Contains reports whether token is a stop word.
func (f *Filter) Contains(token string) bool {
	_, ok := f.words[strings.ToLower(token)]
	return ok
}

// Filter returns the tokens that are not stop words, in their original order.
func (f *Filter) Filter(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if f.Contains(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (f *Filter) add(w string) {
	w = strings.ToLower(strings.TrimSpace(w))
	if w != "" {
		f.words[w] = struct{}{}
	}
}

var defaultWords = []string{
	"a", "able", "about", "across", "after", "all", "almost", "also", "am", "among",
	"an", "and", "any", "are", "as", "at", "be", "because", "been", "but",
	"by", "can", "cannot", "could", "dear", "did", "do", "does", "either", "else",
	"ever", "every", "for", "from", "get", "got", "had", "has", "have", "he",
	"her", "hers", "him", "his", "how", "however", "i", "if", "in", "into",
	"is", "it", "its", "just", "least", "let", "like", "likely", "may", "me",
	"might", "most", "must", "my", "neither", "no", "nor", "not", "of", "off",
	"often", "on", "only", "or", "other", "our", "own", "rather", "said", "say",
	"says", "she", "should", "since", "so", "some", "than", "that", "the", "their",
	"them", "then", "there", "these", "they", "this", "tis", "to", "too", "twas",
	"us", "wants", "was", "we", "were", "what", "when", "where", "which", "while",
	"who", "whom", "why", "will", "with", "would", "yet", "you", "your",
}
