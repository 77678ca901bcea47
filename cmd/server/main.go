// Package main provides the HTTP server command: scrape the configured
// portal once at startup, then serve the answer API.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

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
	"rentscout/internal/server"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (defaults used when empty)")
	sourceURL := flag.String("url", "", "Search-results URL fetched at startup and on /api/refresh")
	inputFile := flag.String("input", "", "Local HTML file parsed at startup instead of fetching")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config error: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	matcher := location.NewMatcher(cfg.AliasTable())
	interpreter := query.NewInterpreter(matcher)
	norm := normalizer.New(matcher)
	store := engine.NewStore()
	eng := engine.New(store, cfg.Agent.ExchangeRate, cfg.Agent.TargetCurrency, cfg.Agent.ResultCap)
	ag := agent.New(interpreter, eng, cfg.Agent.TargetCurrency, cfg.Agent.ExchangeRate, log)
	client := scraper.NewClient(cfg.Scraper)

	refreshURL := *sourceURL
	if refreshURL == "" && *inputFile == "" {
		refreshURL = scraper.BuildSearchURL(cfg.Scraper.BaseURL, models.Query{Bedrooms: models.AnyBedrooms})
	}

	// Populate the store before serving any query.
	var (
		records []models.RawRecord
		err     error
	)

	if *inputFile != "" {
		records, err = client.FetchFile(*inputFile)
	} else {
		records, err = client.Fetch(refreshURL)
	}

	if err != nil {
		log.Warn("initial scrape failed, starting with empty store", "error", err)
	} else {
		listings, rejections := norm.NormalizeBatch(records)
		store.AddBatch(listings)
		log.Info("store populated", "stored", len(listings), "rejected", len(rejections))
	}

	srv := server.New(ag, store, norm, client, refreshURL, log)

	log.Info("server listening", "addr", cfg.Server.Addr)

	if err := http.ListenAndServe(cfg.Server.Addr, srv.Router()); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
