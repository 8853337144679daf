package highlight

import (
	"strings"

	"docsum/internal/stopwords"
)

const (
	DefaultStartTag = "[[HIGHLIGHT]]"
	DefaultEndTag   = "[[ENDHIGHLIGHT]]"
)

// TagHighlighter wraps every occurrence of the query terms in a tag pair.
// Matching is plain substring replacement, so a term also matches inside a
// longer word. Spans of consecutive highlighted words separated by a single
// space are merged into one span.
type TagHighlighter struct {
	StartTag string
	EndTag   string
	stop     *stopwords.Filter
}

// New creates a highlighter. Empty tags fall back to the defaults.
func New(startTag, endTag string, stop *stopwords.Filter) *TagHighlighter {
	if startTag == "" {
		startTag = DefaultStartTag
	}
	if endTag == "" {
		endTag = DefaultEndTag
	}
	if stop == nil {
		stop = stopwords.Default()
	}
	return &TagHighlighter{StartTag: startTag, EndTag: endTag, stop: stop}
}

// Highlight wraps the non-stop-word query terms found in summary. A term
// repeated in the query is applied once, so its matches are never wrapped in
// nested tag pairs.
func (h *TagHighlighter) Highlight(summary, query string) string {
	seen := make(map[string]struct{})
	for _, term := range h.stop.Filter(strings.Fields(query)) {
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		summary = strings.ReplaceAll(summary, term, h.StartTag+term+h.EndTag)
	}
	return strings.ReplaceAll(summary, h.EndTag+" "+h.StartTag, " ")
}

// Span is a piece of highlighted text; Marked reports whether it was inside a tag pair.
type Span struct {
	Text   string
	Marked bool
}

// Spans splits a highlighted string back into plain and marked pieces, so
// callers can render the marks in their own markup.
func (h *TagHighlighter) Spans(highlighted string) []Span {
	var spans []Span
	for highlighted != "" {
		i := strings.Index(highlighted, h.StartTag)
		if i < 0 {
			spans = append(spans, Span{Text: highlighted})
			break
		}
		if i > 0 {
			spans = append(spans, Span{Text: highlighted[:i]})
		}
		highlighted = highlighted[i+len(h.StartTag):]
		j := strings.Index(highlighted, h.EndTag)
		if j < 0 {
			spans = append(spans, Span{Text: highlighted, Marked: true})
			break
		}
		spans = append(spans, Span{Text: highlighted[:j], Marked: true})
		highlighted = highlighted[j+len(h.EndTag):]
	}
	return spans
}
