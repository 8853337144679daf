package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"docsum/internal/chunker"
	"docsum/internal/config"
	"docsum/internal/highlight"
	"docsum/internal/logging"
	"docsum/internal/ranker"
	"docsum/internal/service"
	"docsum/internal/similarity"
	"docsum/internal/stopwords"
	"docsum/internal/summarizer"
	"docsum/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath     string
		query       string
		interactive bool
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/docsum/config.yaml if not provided)")
	flag.StringVar(&query, "query", "", "Query whose terms are highlighted in the summary")
	flag.BoolVar(&interactive, "tui", false, "Open an interactive session to try queries")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 || (query == "" && !interactive) {
		fmt.Println("Usage: docsum [--config=config.yaml] (--query=\"deep dish pizza\" | --tui) file1.txt [file2.txt ...]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Assemble components
	stop := stopwords.Default()
	if cfg.StopWords.Replace {
		stop = stopwords.New(cfg.StopWords.Extra...)
	} else if len(cfg.StopWords.Extra) > 0 {
		stop = stop.With(cfg.StopWords.Extra...)
	}
	seg := chunker.NewSentenceChunker(cfg.Segmenter.Abbreviations...)
	scorer, err := similarity.New(cfg.Summarizer.Similarity, stop)
	if err != nil {
		logger.Fatal("invalid similarity", zap.Error(err))
	}
	rk, err := ranker.New(cfg.Summarizer.Ranker, scorer, stop)
	if err != nil {
		logger.Fatal("invalid ranker", zap.Error(err))
	}
	hl := highlight.New(cfg.Highlight.StartTag, cfg.Highlight.EndTag, stop)
	svc := service.NewSummaryService(
		seg,
		rk,
		summarizer.NewRankSummarizer(seg, stop, cfg.Summarizer.SentencesPerParagraph),
		hl,
		logger,
	)

	if interactive {
		n, err := svc.IngestDocuments(inputs)
		if err != nil {
			logger.Fatal("ingest failed", zap.Error(err))
		}
		if _, err := tea.NewProgram(tui.New(svc, hl, n)).Run(); err != nil {
			logger.Fatal("tui failed", zap.Error(err))
		}
		return
	}

	results, err := svc.HighlightFiles(inputs, query)
	if err != nil {
		logger.Fatal("summarize failed", zap.Error(err))
	}
	for _, r := range results {
		if len(results) > 1 {
			fmt.Printf("== %s\n", r.Document.Path)
		}
		fmt.Println(r.Summary)
	}
}
