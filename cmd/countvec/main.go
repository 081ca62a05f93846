package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"countvec/internal/chunker"
	"countvec/internal/config"
	"countvec/internal/logging"
	"countvec/internal/render"
	"countvec/internal/selftest"
	"countvec/internal/service"
	"countvec/internal/summarizer"
	"countvec/internal/tui"
	"countvec/internal/vectorizer"
	"countvec/internal/vectorstore/memory"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath  string
		format   string
		split    string
		logLevel string
		useTUI   bool
		selfTest bool
		verbose  bool
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ./countvec.yaml or ~/.config/countvec/config.yaml if present)")
	flag.StringVar(&format, "format", "", "Output format: table, csv, json or yaml")
	flag.StringVar(&split, "split", "", "How text files become documents: file, line or sentence")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.BoolVar(&useTUI, "tui", false, "Browse the result interactively")
	flag.BoolVar(&selfTest, "selftest", false, "Run the documented examples and exit")
	flag.BoolVar(&verbose, "v", false, "Verbose self-test output")
	flag.Parse()

	if selfTest {
		if _, err := selftest.Run(os.Stdout, verbose); err != nil {
			os.Exit(1)
		}
		return
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: countvec [--config=countvec.yaml] [--format=table] [--split=file] [--tui] file1.txt [corpus.json ...]")
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
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if format != "" {
		cfg.Output.Format = format
	}
	if split != "" {
		cfg.Splitter.Type = split
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if useTUI {
		cfg.Output.TUI = true
	}

	log := logging.New(cfg.LogLevel, os.Stderr)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Assemble components
	sp, ok := chunker.New(cfg.Splitter.Type, cfg.Splitter.SentencesPerChunk, cfg.Splitter.OverlapSentences)
	if !ok {
		log.Fatal().Str("splitter", cfg.Splitter.Type).Msg("unknown splitter")
	}
	svc := service.NewVectorizeService(sp, vectorizer.New(), memory.NewStorage(), summarizer.NewFrequencySummarizer(), cfg.Summary.TopTerms, log)

	stats, err := svc.Vectorize(inputs)
	if err != nil {
		log.Fatal().Err(err).Msg("vectorize failed")
	}

	if cfg.Output.TUI {
		m := tui.New(svc, stats)
		if _, err := tea.NewProgram(m).Run(); err != nil {
			log.Fatal().Err(err).Msg("tui failed")
		}
		return
	}

	report := render.NewReport(svc.FeatureNames(), svc.Matrix(), svc.Documents())
	if err := render.Write(os.Stdout, cfg.Output.Format, report); err != nil {
		log.Fatal().Err(err).Msg("write output failed")
	}
}
