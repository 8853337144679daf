package service

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"docsum/internal/domain"
)

// ErrNoDocuments is returned when none of the given paths names a .txt file.
var ErrNoDocuments = errors.New("no .txt documents found")

type indexedDocument struct {
	doc   domain.Document
	ranks domain.RankMap
}

// SummaryService reads documents and produces query-highlighted summaries.
// Ranks depend only on the document, so they are computed once at ingest and
// reused for every query against that document.
type SummaryService struct {
	segmenter   domain.Segmenter
	ranker      domain.Ranker
	summarizer  domain.Summarizer
	highlighter domain.Highlighter
	logger      *zap.Logger
	documents   []indexedDocument
}

func NewSummaryService(segmenter domain.Segmenter, ranker domain.Ranker, summarizer domain.Summarizer, highlighter domain.Highlighter, logger *zap.Logger) *SummaryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SummaryService{segmenter: segmenter, ranker: ranker, summarizer: summarizer, highlighter: highlighter, logger: logger}
}

// LoadDocuments reads every .txt file named by paths. Each path may be a glob.
func (s *SummaryService) LoadDocuments(paths []string) ([]domain.Document, error) {
	var documents []domain.Document
	for _, p := range paths {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", p, err)
		}
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			if !strings.HasSuffix(strings.ToLower(m), ".txt") {
				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", m, err)
			}
			documents = append(documents, domain.Document{ID: hashString(m), Path: m, Content: string(data)})
		}
	}
	if len(documents) == 0 {
		return nil, ErrNoDocuments
	}
	return documents, nil
}

// Rank builds the rank map over the complete sentence set of content.
func (s *SummaryService) Rank(content string) domain.RankMap {
	start := time.Now()
	sentences := s.segmenter.Sentences(content)
	ranks := s.ranker.Rank(sentences)
	s.logger.Debug("ranked document",
		zap.Int("sentences", len(sentences)),
		zap.Int("keys", len(ranks)),
		zap.Duration("elapsed", time.Since(start)))
	return ranks
}

// Highlight summarizes content for query and marks the query terms.
func (s *SummaryService) Highlight(content, query string) string {
	return s.highlight(content, query, s.Rank(content))
}

func (s *SummaryService) highlight(content, query string, ranks domain.RankMap) string {
	summary := s.summarizer.Summarize(content, query, ranks)
	s.logger.Debug("summarized document",
		zap.String("query", query),
		zap.Int("paragraphs", len(s.segmenter.Paragraphs(content))),
		zap.Int("summary_bytes", len(summary)))
	return s.highlighter.Highlight(summary, query)
}

// HighlightFiles loads the documents named by paths and returns one result per document.
func (s *SummaryService) HighlightFiles(paths []string, query string) ([]domain.Result, error) {
	documents, err := s.LoadDocuments(paths)
	if err != nil {
		return nil, err
	}
	results := make([]domain.Result, 0, len(documents))
	for _, d := range documents {
		results = append(results, domain.Result{Document: d, Query: query, Summary: s.Highlight(d.Content, query)})
	}
	return results, nil
}

// IngestDocuments loads and ranks the documents for later queries, replacing
// anything ingested before. It returns the number of documents kept.
func (s *SummaryService) IngestDocuments(paths []string) (int, error) {
	documents, err := s.LoadDocuments(paths)
	if err != nil {
		return 0, err
	}
	indexed := make([]indexedDocument, 0, len(documents))
	for _, d := range documents {
		indexed = append(indexed, indexedDocument{doc: d, ranks: s.Rank(d.Content)})
	}
	s.documents = indexed
	s.logger.Info("documents ingested", zap.Int("count", len(indexed)))
	return len(indexed), nil
}

// Query returns the highlighted summary of every ingested document for query.
func (s *SummaryService) Query(query string) ([]domain.Result, error) {
	if len(s.documents) == 0 {
		return nil, ErrNoDocuments
	}
	results := make([]domain.Result, 0, len(s.documents))
	for _, d := range s.documents {
		results = append(results, domain.Result{Document: d.doc, Query: query, Summary: s.highlight(d.doc.Content, query, d.ranks)})
	}
	return results, nil
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
