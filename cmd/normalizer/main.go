// Package main provides the normalizer command: read raw scraped records
// from JSON and emit normalized listings plus a rejection report.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"rentscout/internal/config"
	"rentscout/internal/location"
	"rentscout/internal/logger"
	"rentscout/internal/models"
	"rentscout/internal/normalizer"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (defaults used when empty)")
	inputPath := flag.String("i", "", "Raw-records JSON file (stdin when empty)")
	outputPath := flag.String("o", "", "Output JSON file (stdout when empty)")
	flag.Parse()

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

	records, err := readRecords(*inputPath)
	if err != nil {
		log.Error("reading raw records", "error", err)
		os.Exit(1)
	}

	matcher := location.NewMatcher(cfg.AliasTable())
	norm := normalizer.New(matcher)

	listings, rejections := norm.NormalizeBatch(records)

	log.Info("normalization complete",
		"input", len(records),
		"stored", len(listings),
		"rejected", len(rejections),
	)

	for _, r := range rejections {
		log.Warn("record rejected", "reason", r.Reason, "error", r.Err)
	}

	report := map[string]interface{}{
		"listings":       listings,
		"rejectionCount": len(rejections),
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Error("marshaling listings", "error", err)
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

	log.Info("listings written", "path", *outputPath)
}

func readRecords(path string) ([]models.RawRecord, error) {
	var data []byte

	var err error

	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	var records []models.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing raw records: %w", err)
	}

	return records, nil
}
