package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override values read from the config file.
const (
	EnvFormat   = "COUNTVEC_FORMAT"
	EnvLogLevel = "COUNTVEC_LOG_LEVEL"
)

// SplitterConfig configures how input files are divided into documents.
type SplitterConfig struct {
	Type              string `yaml:"type"`
	SentencesPerChunk int    `yaml:"sentences_per_chunk"`
	OverlapSentences  int    `yaml:"overlap_sentences"`
}

// OutputConfig selects how the count matrix is written.
type OutputConfig struct {
	Format string `yaml:"format"`
	TUI    bool   `yaml:"tui"`
}

// SummaryConfig configures the corpus term report.
type SummaryConfig struct {
	TopTerms int `yaml:"top_terms"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Splitter SplitterConfig `yaml:"splitter"`
	Output   OutputConfig   `yaml:"output"`
	Summary  SummaryConfig  `yaml:"summary"`
	LogLevel string         `yaml:"log_level"`
}

var (
	validSplitters = []string{"file", "line", "sentence"}
	validFormats   = []string{"table", "csv", "json", "yaml"}
)

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDefault tries ./countvec.yaml first, then ~/.config/countvec/config.yaml.
// If neither exists, defaults are returned without touching the filesystem.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "countvec.yaml"
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
	applyEnv(cfg)
	return cfg, "", nil
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

// Validate rejects unknown splitter types and output formats.
func (c *AppConfig) Validate() error {
	if !contains(validSplitters, c.Splitter.Type) {
		return fmt.Errorf("unknown splitter %q (want one of %s)", c.Splitter.Type, strings.Join(validSplitters, ", "))
	}
	if !contains(validFormats, c.Output.Format) {
		return fmt.Errorf("unknown output format %q (want one of %s)", c.Output.Format, strings.Join(validFormats, ", "))
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "countvec", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Splitter: SplitterConfig{Type: "file", SentencesPerChunk: 5, OverlapSentences: 0},
		Output:   OutputConfig{Format: "table"},
		Summary:  SummaryConfig{TopTerms: 10},
		LogLevel: "info",
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Splitter.Type == "" {
		cfg.Splitter.Type = "file"
	}
	if cfg.Splitter.SentencesPerChunk == 0 {
		cfg.Splitter.SentencesPerChunk = 5
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "table"
	}
	if cfg.Summary.TopTerms == 0 {
		cfg.Summary.TopTerms = 10
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Output.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
