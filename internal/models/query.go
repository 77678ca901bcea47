package models

// Intent is the kind of answer a query asks for.
type Intent string

// Query intents. Lookup is the default: list matches with summary stats.
const (
	IntentLookup  Intent = "lookup"
	IntentAverage Intent = "average"
	IntentMinimum Intent = "minimum"
	IntentMaximum Intent = "maximum"
)

// AnyBedrooms means the query does not constrain the bedroom count.
const AnyBedrooms = -1

// Query is the structured form of one user utterance. A zero-value-ish Query
// (everything "any", intent lookup) matches the whole store.
type Query struct {
	Location     string       `json:"location,omitempty"`     // canonical name, "" = any
	Bedrooms     int          `json:"bedrooms"`               // AnyBedrooms = any
	PropertyType PropertyType `json:"propertyType,omitempty"` // "" = any
	Intent       Intent       `json:"intent"`
	Utterance    string       `json:"utterance,omitempty"`
}

// MatchAll reports whether the query constrains nothing.
func (q Query) MatchAll() bool {
	return q.Location == "" && q.Bedrooms == AnyBedrooms && q.PropertyType == ""
}

// Stats holds aggregate price statistics over a result set. Min, Max and
// Mean are only meaningful when PricedCount > 0; they are computed over the
// monthly-priced matches converted to Currency.
type Stats struct {
	Count       int      `json:"count"`
	PricedCount int      `json:"pricedCount"`
	Min         float64  `json:"min,omitempty"`
	Max         float64  `json:"max,omitempty"`
	Mean        float64  `json:"mean,omitempty"`
	Currency    Currency `json:"currency"`
}
