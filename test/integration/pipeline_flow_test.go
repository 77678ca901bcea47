package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rentscout/internal/agent"
	"rentscout/internal/config"
	"rentscout/internal/engine"
	"rentscout/internal/location"
	"rentscout/internal/logger"
	"rentscout/internal/models"
	"rentscout/internal/normalizer"
	"rentscout/internal/query"
	"rentscout/internal/scraper"
)

// buildAgent wires the full pipeline against the default configuration and
// returns the agent plus the store it answers from.
func buildAgent(t *testing.T) (*agent.Agent, *engine.Store, *normalizer.Normalizer) {
	t.Helper()

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	matcher := location.NewMatcher(cfg.AliasTable())
	store := engine.NewStore()
	eng := engine.New(store, cfg.Agent.ExchangeRate, cfg.Agent.TargetCurrency, cfg.Agent.ResultCap)
	log := logger.New("error", "text")
	ag := agent.New(query.NewInterpreter(matcher), eng, cfg.Agent.TargetCurrency, cfg.Agent.ExchangeRate, log)

	return ag, store, normalizer.New(matcher)
}

func loadFixtureRecords(t *testing.T) []models.RawRecord {
	t.Helper()

	fixturePath := filepath.Join("..", "fixtures", "search_results.html")

	content, err := os.ReadFile(fixturePath)
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}

	records, err := scraper.NewParser().ParseListings(string(content), "https://www.meqasa.com/properties-for-rent-in-ghana")
	if err != nil {
		t.Fatalf("ParseListings failed: %v", err)
	}

	return records
}

func TestPipelineFlow_ScrapeNormalizeAnswer(t *testing.T) {
	ag, store, norm := buildAgent(t)

	// 1. Ingestion: parse the saved search-results page.
	records := loadFixtureRecords(t)
	if len(records) != 4 {
		t.Fatalf("parsed records = %d, want 4", len(records))
	}

	// 2. Normalization: the unpriced office card is rejected.
	listings, rejections := norm.NormalizeBatch(records)
	if len(listings) != 3 {
		t.Fatalf("normalized listings = %d, want 3", len(listings))
	}
	if len(rejections) != 1 {
		t.Fatalf("rejections = %d, want 1", len(rejections))
	}
	if rejections[0].Reason != models.ReasonBadPrice {
		t.Errorf("rejection reason = %s, want %s", rejections[0].Reason, models.ReasonBadPrice)
	}

	store.AddBatch(listings)

	// 3. Answering: lookup with location and bedroom filters.
	answer, err := ag.Answer("2 bedroom apartments in Osu")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if !strings.Contains(answer, "Found 1 listings") {
		t.Errorf("answer = %q, want a single match", answer)
	}
	if !strings.Contains(answer, "Osu") || !strings.Contains(answer, "GH₵2200.00") {
		t.Errorf("answer = %q, want the Osu apartment at GH₵2200.00", answer)
	}
}

func TestPipelineFlow_AverageConvertsDollarListings(t *testing.T) {
	ag, store, norm := buildAgent(t)

	listings, _ := norm.NormalizeBatch(loadFixtureRecords(t))
	store.AddBatch(listings)

	// The Labone apartment is listed at $300; at 14.5 GHS/USD it converts
	// to 4350, so the apartment average is (2200 + 4350) / 2.
	answer, err := ag.Answer("what is the average price of apartments")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if !strings.Contains(answer, "GH₵3275.00") {
		t.Errorf("answer = %q, want average GH₵3275.00", answer)
	}
	if !strings.Contains(answer, "based on 2 of 2 listings") {
		t.Errorf("answer = %q, want both apartments counted", answer)
	}
}

func TestPipelineFlow_CheapestAndPriciest(t *testing.T) {
	ag, store, norm := buildAgent(t)

	listings, _ := norm.NormalizeBatch(loadFixtureRecords(t))
	store.AddBatch(listings)

	cheapest, err := ag.Answer("cheapest place to rent")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if !strings.Contains(cheapest, "Cheapest match") || !strings.Contains(cheapest, "Osu") {
		t.Errorf("cheapest answer = %q, want the Osu apartment", cheapest)
	}

	priciest, err := ag.Answer("most expensive house for rent")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if !strings.Contains(priciest, "Most expensive match") || !strings.Contains(priciest, "East Legon") {
		t.Errorf("priciest answer = %q, want the East Legon house", priciest)
	}
}

func TestPipelineFlow_NoMatches(t *testing.T) {
	ag, store, norm := buildAgent(t)

	listings, _ := norm.NormalizeBatch(loadFixtureRecords(t))
	store.AddBatch(listings)

	answer, err := ag.Answer("5 bedroom houses in Tema")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if !strings.Contains(answer, "no listings found for") {
		t.Errorf("answer = %q, want the no-listings message", answer)
	}
	if !strings.Contains(answer, "location=Tema") {
		t.Errorf("answer = %q, want the extracted location Tema", answer)
	}
}
