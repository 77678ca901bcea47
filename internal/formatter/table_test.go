package formatter

import (
	"strings"
	"testing"

	"rentscout/internal/models"
)

func TestSymbol(t *testing.T) {
	if got := Symbol(models.CurrencyGHS); got != "GH₵" {
		t.Errorf("Symbol(GHS) = %q", got)
	}

	if got := Symbol(models.CurrencyUSD); got != "$" {
		t.Errorf("Symbol(USD) = %q", got)
	}
}

func TestAmount(t *testing.T) {
	if got := Amount(4350, models.CurrencyGHS); got != "GH₵4350.00" {
		t.Errorf("Amount = %q", got)
	}
}

func TestBedrooms(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "1 bedroom"},
		{4, "4 bedrooms"},
		{0, "0 bedrooms"},
		{models.CountUnknown, "-"},
	}

	for _, tt := range tests {
		if got := Bedrooms(tt.n); got != tt.want {
			t.Errorf("Bedrooms(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestListingTable(t *testing.T) {
	listings := []models.Listing{
		{
			Title: "Short", Location: "Osu", Bedrooms: 2,
			PropertyType: models.PropertyApartment, Period: models.PeriodMonthly,
		},
		{
			Title: "A much longer listing title here", Location: "East Legon", Bedrooms: models.CountUnknown,
			PropertyType: models.PropertyHouse, Period: models.PeriodMonthly,
		},
	}

	out := ListingTable(listings, models.CurrencyGHS, []float64{2200, 4500})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), out)
	}

	if !strings.HasPrefix(lines[0], "Title") {
		t.Errorf("header missing: %q", lines[0])
	}

	if !strings.Contains(lines[1], "GH₵2200.00") {
		t.Errorf("row missing price: %q", lines[1])
	}

	// Bedroom counts are pluralized in the table cell.
	if !strings.Contains(lines[1], "2 bedrooms") {
		t.Errorf("bedroom count not pluralized: %q", lines[1])
	}

	// Unknown bedroom count renders as a dash.
	if !strings.Contains(lines[2], "-") {
		t.Errorf("unknown bedrooms not dashed: %q", lines[2])
	}
}

func TestListingTable_NonMonthlyAnnotated(t *testing.T) {
	listings := []models.Listing{
		{Title: "Yearly", Location: "Osu", Bedrooms: 2, PropertyType: models.PropertyApartment, Period: models.PeriodNonMonthly},
	}

	out := ListingTable(listings, models.CurrencyGHS, []float64{24000})
	if !strings.Contains(out, "(non-monthly)") {
		t.Errorf("non-monthly annotation missing:\n%s", out)
	}
}
