package scraper

import (
	"testing"
)

const sampleCardHTML = `
<html><body>
<article class="mqs-prop-card">
  <a class="mqs-prop-dt-wrapper" href="/listing-123" title="Newly built 4 bedroom apartment">
    <h3>Newly built 4 bedroom apartment</h3>
  </a>
  <span class="h3">GH₵ 4,500 /month</span>
  <address>East Legon, Accra</address>
  <div class="prop-type-card">Apartment</div>
  <div class="fur-are">
    <span title="Bedroom">4</span>
    <span title="Bathroom">3</span>
  </div>
</article>
<article class="mqs-prop-card">
  <span class="h3">$350</span>
  <address>Osu</address>
  <div class="fur-are">
    <span title="Bedroom">2 Beds</span>
  </div>
</article>
<article class="mqs-prop-card">
  <!-- no price, no title: skipped -->
  <address>Nowhere</address>
</article>
</body></html>`

func TestParseListings(t *testing.T) {
	p := NewParser()

	records, err := p.ParseListings(sampleCardHTML, "https://www.meqasa.com/apartments-for-rent-in-east-legon")
	if err != nil {
		t.Fatalf("ParseListings returned error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (empty card skipped)", len(records))
	}

	first := records[0]

	if first.Title != "Newly built 4 bedroom apartment" {
		t.Errorf("Title = %q", first.Title)
	}

	if first.PriceText != "GH₵ 4,500 /month" {
		t.Errorf("PriceText = %q", first.PriceText)
	}

	if first.LocationText != "East Legon, Accra" {
		t.Errorf("LocationText = %q", first.LocationText)
	}

	if first.TypeText != "Apartment" {
		t.Errorf("TypeText = %q", first.TypeText)
	}

	if first.BedBathText != "4 bed 3 bath" {
		t.Errorf("BedBathText = %q", first.BedBathText)
	}

	if first.ListingURL != "https://www.meqasa.com/listing-123" {
		t.Errorf("ListingURL = %q", first.ListingURL)
	}

	if first.ID == "" {
		t.Error("record ID not assigned")
	}

	second := records[1]

	if second.PriceText != "$350" {
		t.Errorf("second PriceText = %q", second.PriceText)
	}

	// Unit word already present in the span text is kept as is.
	if second.BedBathText != "2 Beds" {
		t.Errorf("second BedBathText = %q", second.BedBathText)
	}
}

func TestParseListings_Empty(t *testing.T) {
	p := NewParser()

	records, err := p.ParseListings("<html><body><p>no cards</p></body></html>", "https://example.com")
	if err != nil {
		t.Fatalf("ParseListings returned error: %v", err)
	}

	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		base string
		href string
		want string
	}{
		{"https://www.meqasa.com/search", "/listing-1", "https://www.meqasa.com/listing-1"},
		{"https://www.meqasa.com", "listing-2", "https://www.meqasa.com/listing-2"},
		{"https://www.meqasa.com", "https://other.com/x", "https://other.com/x"},
		{"https://www.meqasa.com", "", ""},
	}

	for _, tt := range tests {
		if got := absoluteURL(tt.base, tt.href); got != tt.want {
			t.Errorf("absoluteURL(%q, %q) = %q, want %q", tt.base, tt.href, got, tt.want)
		}
	}
}
