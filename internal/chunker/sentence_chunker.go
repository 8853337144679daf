package chunker

import (
	"strings"
	"unicode"
)

// DefaultAbbreviations are the titles after which a period does not end a sentence.
var DefaultAbbreviations = []string{"Mr.", "Mrs.", "Jr.", "Dr.", "Prof.", "Sr."}

// ParagraphSeparator delimits paragraphs in a document.
const ParagraphSeparator = "\n\n"

// SentenceChunker splits text into paragraphs and sentences.
//
// A sentence boundary is a run of whitespace preceded by '.', '!' or '?',
// optionally followed by a closing quote, unless the text before the run ends
// with one of the abbreviations (compared case-insensitively). Punctuation
// stays attached to the preceding sentence and the whitespace run is dropped.
type SentenceChunker struct {
	abbreviations []string
}

func NewSentenceChunker(abbreviations ...string) *SentenceChunker {
	if len(abbreviations) == 0 {
		abbreviations = DefaultAbbreviations
	}
	abbrs := make([]string, 0, len(abbreviations))
	for _, a := range abbreviations {
		if a = strings.TrimSpace(a); a != "" {
			abbrs = append(abbrs, a)
		}
	}
	return &SentenceChunker{abbreviations: abbrs}
}

// Sentences splits text into sentences. Empty text yields a single empty
// sentence, and trailing whitespace after the last sentence yields a final
// empty one.
func (c *SentenceChunker) Sentences(text string) []string {
	sentences, _ := c.split(text)
	return sentences
}

// Paragraphs splits text on every literal blank-line separator. Consecutive
// separators produce empty paragraphs; nothing is trimmed.
func (c *SentenceChunker) Paragraphs(text string) []string {
	return strings.Split(text, ParagraphSeparator)
}

// split returns the sentences together with the whitespace runs removed
// between them, so that interleaving the two reconstructs text.
func (c *SentenceChunker) split(text string) (sentences, separators []string) {
	start := 0
	for i := 0; i < len(text); {
		if !isSpace(text[i]) || !c.boundaryBefore(text, i) {
			i++
			continue
		}
		j := i
		for j < len(text) && isSpace(text[j]) {
			j++
		}
		sentences = append(sentences, text[start:i])
		separators = append(separators, text[i:j])
		start, i = j, j
	}
	sentences = append(sentences, text[start:])
	return sentences, separators
}

func (c *SentenceChunker) boundaryBefore(text string, i int) bool {
	switch {
	case i >= 1 && isTerminal(text[i-1]):
	case i >= 2 && isQuote(text[i-1]) && isTerminal(text[i-2]):
	default:
		return false
	}
	for _, abbr := range c.abbreviations {
		if i >= len(abbr) && strings.EqualFold(text[i-len(abbr):i], abbr) {
			return false
		}
	}
	return true
}

// CanonicalKey strips every character that is not a letter or digit. It is
// the identity of a sentence in a rank map, so sentences with the same
// alphanumeric content share one key.
func CanonicalKey(sentence string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, sentence)
}

func isTerminal(b byte) bool { return b == '.' || b == '!' || b == '?' }

func isQuote(b byte) bool { return b == '"' || b == '\'' }

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
