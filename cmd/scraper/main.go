// Package main provides the standalone scraper command: fetch one search
// page and emit the raw records as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"rentscout/internal/config"
	"rentscout/internal/logger"
	"rentscout/internal/models"
	"rentscout/internal/scraper"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (defaults used when empty)")
	sourceURL := flag.String("url", "", "Search-results URL to scrape")
	inputFile := flag.String("input", "", "Local HTML file to parse instead of fetching")
	outputPath := flag.String("o", "", "Output JSON file (stdout when empty)")
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

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	if *sourceURL == "" && *inputFile == "" {
		log.Error("please provide -url or -input")
		flag.PrintDefaults()
		os.Exit(1)
	}

	client := scraper.NewClient(cfg.Scraper)

	var (
		records []models.RawRecord
		err     error
	)

	if *inputFile != "" {
		records, err = client.FetchFile(*inputFile)
	} else {
		records, err = client.Fetch(*sourceURL)
	}

	if err != nil {
		log.Error("scrape failed", "error", err)
		os.Exit(1)
	}

	log.Info("scrape complete", "records", len(records))

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		log.Error("marshaling records", "error", err)
		os.Exit(1)
	}

	if *outputPath == "" {
		fmt.Println(string(data))

		return
	}

	if err := os.WriteFile(*outputPath, data, 0644); err != nil {
		log.Error("writing output", "path", *outputPath, "error", err)
		os.Exit(1)
	}

	log.Info("raw records written", "path", *outputPath)
}
