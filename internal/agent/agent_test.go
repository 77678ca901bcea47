package agent

import (
	"strings"
	"testing"

	"rentscout/internal/engine"
	"rentscout/internal/location"
	"rentscout/internal/logger"
	"rentscout/internal/models"
	"rentscout/internal/query"
)

func testAgent(t *testing.T, listings []models.Listing) *Agent {
	t.Helper()

	matcher := location.NewMatcher(map[string]string{
		"East Legon":               "East Legon",
		"east legon":               "East Legon",
		"Osu":                      "Osu",
		"Airport Residential Area": "Airport Residential Area",
		"airport residential":      "Airport Residential Area",
	})

	store := engine.NewStore()
	store.AddBatch(listings)

	eng := engine.New(store, 14.5, models.CurrencyGHS, 10)
	interpreter := query.NewInterpreter(matcher)
	log := logger.New("error", "text")

	return New(interpreter, eng, models.CurrencyGHS, 14.5, log)
}

func sampleListings() []models.Listing {
	return []models.Listing{
		{
			ID: "l1", Title: "East Legon apartment",
			PriceAmount: 4500, PriceCurrency: models.CurrencyGHS, Period: models.PeriodMonthly,
			Location: "East Legon", LocationConfidence: models.ConfidenceHigh,
			Bedrooms: 4, Bathrooms: models.CountUnknown, PropertyType: models.PropertyApartment,
		},
		{
			ID: "l2", Title: "Osu apartment",
			PriceAmount: 2200, PriceCurrency: models.CurrencyGHS, Period: models.PeriodMonthly,
			Location: "Osu", LocationConfidence: models.ConfidenceHigh,
			Bedrooms: 2, Bathrooms: models.CountUnknown, PropertyType: models.PropertyApartment,
		},
	}
}

func TestAnswer_Lookup(t *testing.T) {
	a := testAgent(t, sampleListings())

	answer, err := a.Answer("4 bedroom apartment in East Legon price")
	if err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}

	if !strings.Contains(answer, "Found 1 listings") {
		t.Errorf("answer missing count: %q", answer)
	}

	if !strings.Contains(answer, "GH₵4500.00") {
		t.Errorf("answer missing converted price: %q", answer)
	}

	if !strings.Contains(answer, "East Legon apartment") {
		t.Errorf("answer missing listing table row: %q", answer)
	}
}

func TestAnswer_NoMatches(t *testing.T) {
	a := testAgent(t, sampleListings())

	answer, err := a.Answer("average rent for 1 bedroom in Airport Residential")
	if err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}

	want := "no listings found for bedrooms=1, location=Airport Residential Area"
	if answer != want {
		t.Errorf("answer = %q, want %q", answer, want)
	}
}

func TestAnswer_Average(t *testing.T) {
	a := testAgent(t, sampleListings())

	answer, err := a.Answer("average rent for apartments")
	if err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}

	// (4500 + 2200) / 2 = 3350
	if !strings.Contains(answer, "GH₵3350.00") {
		t.Errorf("answer missing average: %q", answer)
	}
}

func TestAnswer_Minimum(t *testing.T) {
	a := testAgent(t, sampleListings())

	answer, err := a.Answer("cheapest apartment")
	if err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}

	if !strings.Contains(answer, "Osu apartment") || !strings.Contains(answer, "GH₵2200.00") {
		t.Errorf("answer missing cheapest listing: %q", answer)
	}
}

func TestAnswer_Maximum(t *testing.T) {
	a := testAgent(t, sampleListings())

	answer, err := a.Answer("most expensive apartment")
	if err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}

	if !strings.Contains(answer, "East Legon apartment") || !strings.Contains(answer, "GH₵4500.00") {
		t.Errorf("answer missing priciest listing: %q", answer)
	}
}

func TestAnswer_EmptyStore(t *testing.T) {
	a := testAgent(t, nil)

	answer, err := a.Answer("anything at all")
	if err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}

	if answer != "no listings found for all listings" {
		t.Errorf("answer = %q", answer)
	}
}

func TestDescribeCriteria(t *testing.T) {
	q := models.Query{
		Location:     "Airport Residential Area",
		Bedrooms:     1,
		PropertyType: "",
		Intent:       models.IntentAverage,
	}

	got := describeCriteria(q)
	if got != "bedrooms=1, location=Airport Residential Area" {
		t.Errorf("describeCriteria = %q", got)
	}
}
