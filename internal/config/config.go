package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"docsum/internal/chunker"
	"docsum/internal/highlight"
	"docsum/internal/ranker"
	"docsum/internal/similarity"
)

// LogLevelEnv overrides logging.level when set.
const LogLevelEnv = "DOCSUM_LOG_LEVEL"

// SegmenterConfig configures sentence splitting.
type SegmenterConfig struct {
	Abbreviations []string `yaml:"abbreviations"`
}

// StopWordsConfig extends or replaces the built-in stop-word list.
type StopWordsConfig struct {
	Extra   []string `yaml:"extra,omitempty"`
	Replace bool     `yaml:"replace,omitempty"`
}

// SummarizerConfig configures ranking and per-paragraph selection.
type SummarizerConfig struct {
	SentencesPerParagraph int    `yaml:"sentences_per_paragraph"`
	Similarity            string `yaml:"similarity"`
	Ranker                string `yaml:"ranker"`
}

// HighlightConfig holds the tag pair wrapped around query terms.
type HighlightConfig struct {
	StartTag string `yaml:"start_tag"`
	EndTag   string `yaml:"end_tag"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Segmenter  SegmenterConfig  `yaml:"segmenter"`
	StopWords  StopWordsConfig  `yaml:"stop_words"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Highlight  HighlightConfig  `yaml:"highlight"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML config data, fills defaults and validates the result.
func Parse(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyConfigDefaults(&cfg)
	applyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/docsum/config.yaml.
// If neither exists, it writes defaults to ~/.config/docsum/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnvOverrides(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports settings no component can run with.
func (c *AppConfig) Validate() error {
	switch c.Summarizer.Similarity {
	case similarity.TypeAverage, similarity.TypeOchiai:
	default:
		return fmt.Errorf("unknown similarity: %s", c.Summarizer.Similarity)
	}
	switch c.Summarizer.Ranker {
	case ranker.TypeGraph, ranker.TypeFrequency:
	default:
		return fmt.Errorf("unknown ranker: %s", c.Summarizer.Ranker)
	}
	if c.Summarizer.SentencesPerParagraph <= 0 {
		return fmt.Errorf("sentences_per_paragraph must be positive, got %d", c.Summarizer.SentencesPerParagraph)
	}
	if c.Highlight.StartTag == c.Highlight.EndTag {
		return errors.New("highlight start_tag and end_tag must differ")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format: %s", c.Logging.Format)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "docsum", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Segmenter:  SegmenterConfig{Abbreviations: append([]string(nil), chunker.DefaultAbbreviations...)},
		Summarizer: SummarizerConfig{SentencesPerParagraph: 1, Similarity: similarity.TypeAverage, Ranker: ranker.TypeGraph},
		Highlight:  HighlightConfig{StartTag: highlight.DefaultStartTag, EndTag: highlight.DefaultEndTag},
		Logging:    LoggingConfig{Level: "info", Format: "console"},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if len(cfg.Segmenter.Abbreviations) == 0 {
		cfg.Segmenter.Abbreviations = def.Segmenter.Abbreviations
	}
	if cfg.Summarizer.SentencesPerParagraph == 0 {
		cfg.Summarizer.SentencesPerParagraph = def.Summarizer.SentencesPerParagraph
	}
	if cfg.Summarizer.Similarity == "" {
		cfg.Summarizer.Similarity = def.Summarizer.Similarity
	}
	cfg.Summarizer.Similarity = strings.ToLower(cfg.Summarizer.Similarity)
	if cfg.Summarizer.Ranker == "" {
		cfg.Summarizer.Ranker = def.Summarizer.Ranker
	}
	cfg.Summarizer.Ranker = strings.ToLower(cfg.Summarizer.Ranker)
	if cfg.Highlight.StartTag == "" {
		cfg.Highlight.StartTag = def.Highlight.StartTag
	}
	if cfg.Highlight.EndTag == "" {
		cfg.Highlight.EndTag = def.Highlight.EndTag
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = def.Logging.Format
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if lvl := os.Getenv(LogLevelEnv); lvl != "" {
		cfg.Logging.Level = lvl
	}
}
