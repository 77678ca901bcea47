// Package normalizer turns raw scraped listing records into structured
// Listings, tolerating missing or malformed fields.
package normalizer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"rentscout/internal/location"
	"rentscout/internal/models"
	"rentscout/internal/price"
)

// Normalizer maps raw records to Listings. Each Normalize call is a pure
// function of its input plus the read-only alias and keyword tables, so a
// batch may be normalized concurrently.
type Normalizer struct {
	matcher     *location.Matcher
	bedPattern  *regexp.Regexp
	bathPattern *regexp.Regexp
}

// New creates a normalizer bound to the given location matcher.
func New(matcher *location.Matcher) *Normalizer {
	return &Normalizer{
		matcher:     matcher,
		bedPattern:  regexp.MustCompile(`(?i)(\d+)\s*-?\s*(?:bed(?:room)?s?|br)\b`),
		bathPattern: regexp.MustCompile(`(?i)(\d+)\s*-?\s*(?:bath(?:room)?s?|ba)\b`),
	}
}

// Normalize converts one raw record into a Listing. The only unrecoverable
// failure is an unparseable price; every other uncertainty is represented on
// the Listing rather than discarded. Step order is fixed for determinism:
// price, location, bed/bath counts, property type.
func (n *Normalizer) Normalize(rec models.RawRecord) (models.Listing, error) {
	p, err := price.Parse(rec.PriceText)
	if err != nil {
		return models.Listing{}, fmt.Errorf("price %q: %w", rec.PriceText, err)
	}

	listing := models.Listing{
		ID:            rec.ID,
		Title:         strings.TrimSpace(rec.Title),
		PriceAmount:   p.Amount,
		PriceCurrency: p.Currency,
		Period:        p.Period,
		ListingURL:    rec.ListingURL,
		Raw:           rec,
	}

	if canonical, ok := n.matcher.Match(rec.LocationText); ok {
		listing.Location = canonical
		listing.LocationConfidence = models.ConfidenceHigh
	} else {
		// Keep the raw text so queries can still attempt substring matching.
		listing.Location = strings.TrimSpace(rec.LocationText)
		listing.LocationConfidence = models.ConfidenceLow
	}

	listing.Bedrooms = extractCount(n.bedPattern, rec.BedBathText)
	listing.Bathrooms = extractCount(n.bathPattern, rec.BedBathText)
	listing.PropertyType = ClassifyPropertyType(rec.TypeText + " " + rec.Title)

	return listing, nil
}

// NormalizeBatch normalizes every record, collecting rejections instead of
// aborting the batch. Listings keep the input order.
func (n *Normalizer) NormalizeBatch(recs []models.RawRecord) ([]models.Listing, []models.Rejection) {
	listings := make([]models.Listing, 0, len(recs))

	var rejections []models.Rejection

	for _, rec := range recs {
		listing, err := n.Normalize(rec)
		if err != nil {
			rejections = append(rejections, models.Rejection{
				Record: rec,
				Reason: models.ReasonBadPrice,
				Err:    err,
			})

			continue
		}

		listings = append(listings, listing)
	}

	return listings, rejections
}

// extractCount pulls a numeric-prefix count ("4 bed", "4br", "4-bedroom")
// out of the text. An unmatched field is unknown, never zero.
func extractCount(pattern *regexp.Regexp, text string) int {
	match := pattern.FindStringSubmatch(text)
	if len(match) < 2 {
		return models.CountUnknown
	}

	val, err := strconv.Atoi(match[1])
	if err != nil || val < 0 {
		return models.CountUnknown
	}

	return val
}
