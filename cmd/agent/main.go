// Package main provides the unified agent command: fetch listings, normalize
// them into the session store, and answer a rent question.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"rentscout/internal/agent"
	"rentscout/internal/config"
	"rentscout/internal/engine"
	"rentscout/internal/location"
	"rentscout/internal/logger"
	"rentscout/internal/models"
	"rentscout/internal/normalizer"
	"rentscout/internal/query"
	"rentscout/internal/scraper"
	"rentscout/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (defaults used when empty)")
	question := flag.String("q", "", "Rent question to answer")
	sourceURL := flag.String("url", "", "Search-results URL to scrape (derived from the question when empty)")
	inputFile := flag.String("input", "", "Local HTML file to parse instead of fetching")
	archiveDir := flag.String("archive", "", "Directory for raw/processed JSON snapshots (disabled when empty)")
	flag.Parse()

	// .env overlay is optional; a missing file is not an error.
	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	if *question == "" {
		log.Error("please provide a question with the -q flag")
		flag.PrintDefaults()
		os.Exit(1)
	}

	matcher := location.NewMatcher(cfg.AliasTable())
	interpreter := query.NewInterpreter(matcher)
	norm := normalizer.New(matcher)
	store := engine.NewStore()
	eng := engine.New(store, cfg.Agent.ExchangeRate, cfg.Agent.TargetCurrency, cfg.Agent.ResultCap)
	ag := agent.New(interpreter, eng, cfg.Agent.TargetCurrency, cfg.Agent.ExchangeRate, log)
	client := scraper.NewClient(cfg.Scraper)

	startTime := time.Now()

	log.Info("phase 1: ingestion")

	records, err := ingest(client, interpreter, cfg, *question, *sourceURL, *inputFile)
	if err != nil {
		log.Error("ingestion failed", "error", err)
		os.Exit(1)
	}

	log.Info("scrape complete", "records", len(records), "elapsed", time.Since(startTime))

	log.Info("phase 2: normalization")

	listings, rejections := norm.NormalizeBatch(records)
	store.AddBatch(listings)

	log.Info("normalization complete", "stored", len(listings), "rejected", len(rejections))

	for _, r := range rejections {
		log.Debug("record rejected", "reason", r.Reason, "error", r.Err, "title", r.Record.Title)
	}

	if *archiveDir != "" {
		arch := storage.NewArchiver(*archiveDir)

		if path, err := arch.SaveRaw(records); err != nil {
			log.Warn("raw snapshot failed", "error", err)
		} else {
			log.Info("raw snapshot written", "path", path)
		}

		if path, err := arch.SaveProcessed(listings, rejections); err != nil {
			log.Warn("processed snapshot failed", "error", err)
		} else {
			log.Info("processed snapshot written", "path", path)
		}
	}

	log.Info("phase 3: answering")

	answer, err := ag.Answer(*question)
	if err != nil {
		log.Error("query failed", "error", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(answer)
}

func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()

	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// ingest picks the listing source: an explicit local file, an explicit URL,
// or a search URL derived from the question entities.
func ingest(client *scraper.Client, interpreter *query.Interpreter, cfg *config.Config, question, sourceURL, inputFile string) ([]models.RawRecord, error) {
	if inputFile != "" {
		return client.FetchFile(inputFile)
	}

	if sourceURL == "" {
		q := interpreter.Interpret(question)
		sourceURL = scraper.BuildSearchURL(cfg.Scraper.BaseURL, q)
	}

	return client.Fetch(sourceURL)
}
