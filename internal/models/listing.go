// Package models defines the data structures shared across the scraping,
// normalization and query pipeline.
package models

import "time"

// Currency identifies the currency a price is quoted in.
type Currency string

// Supported currencies. Listings on Ghanaian portals are quoted in cedis
// unless the text says otherwise.
const (
	CurrencyGHS Currency = "GHS"
	CurrencyUSD Currency = "USD"
)

// Period identifies the rental period a price refers to.
type Period string

// Rental periods. Monthly is the comparison baseline; anything explicitly
// quoted per year, per week or per night is flagged non-monthly and kept out
// of monthly-rent aggregates.
const (
	PeriodMonthly    Period = "monthly"
	PeriodNonMonthly Period = "non-monthly"
)

// PropertyType is the closed set of property classifications.
type PropertyType string

// Property types recognised by the keyword classifier.
const (
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyTownhouse PropertyType = "townhouse"
	PropertyUnknown   PropertyType = "unknown"
)

// LocationConfidence records whether a listing's location resolved to a
// canonical name or was kept as raw scraped text.
type LocationConfidence string

// Location confidence levels.
const (
	ConfidenceHigh LocationConfidence = "high"
	ConfidenceLow  LocationConfidence = "low"
)

// CountUnknown marks a bedroom or bathroom count that could not be extracted.
// It is distinct from zero: a studio genuinely has zero bedrooms, a listing
// that never mentions bedrooms has an unknown count.
const CountUnknown = -1

// RawRecord is one scraped listing exactly as it came off the page. All
// fields are optional; missing data is an empty string, never an error.
type RawRecord struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	PriceText    string    `json:"priceText"`
	LocationText string    `json:"locationText"`
	BedBathText  string    `json:"bedBathText"`
	TypeText     string    `json:"typeText"`
	ListingURL   string    `json:"listingUrl,omitempty"`
	SourceURL    string    `json:"sourceUrl,omitempty"`
	ScrapedAt    time.Time `json:"scrapedAt,omitempty"`
}

// Listing is a normalized rental listing. Treated as immutable once the
// normalizer has produced it.
type Listing struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	PriceAmount        float64            `json:"priceAmount"`
	PriceCurrency      Currency           `json:"priceCurrency"`
	Period             Period             `json:"period"`
	Location           string             `json:"location"`
	LocationConfidence LocationConfidence `json:"locationConfidence"`
	Bedrooms           int                `json:"bedrooms"`
	Bathrooms          int                `json:"bathrooms"`
	PropertyType       PropertyType       `json:"propertyType"`
	ListingURL         string             `json:"listingUrl,omitempty"`
	Raw                RawRecord          `json:"raw"`
}

// RejectReason names why a raw record was excluded from the store.
type RejectReason string

// Reject reasons. Only an unparseable price fully rejects a record; every
// other uncertainty is represented on the Listing instead.
const ReasonBadPrice RejectReason = "bad_price"

// Rejection pairs a rejected raw record with the reason and underlying error.
type Rejection struct {
	Record RawRecord    `json:"record"`
	Reason RejectReason `json:"reason"`
	Err    error        `json:"-"`
}
