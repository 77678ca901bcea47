package engine

import (
	"fmt"
	"sort"
	"strings"

	"rentscout/internal/models"
	"rentscout/internal/price"
)

// Engine filters the store by a structured query and computes aggregate
// price statistics over the matches.
type Engine struct {
	store          *Store
	rate           float64
	targetCurrency models.Currency
	resultCap      int
}

// Result is the outcome of one query execution. Matches are sorted by
// ascending converted price (insertion order breaks ties) and capped;
// Stats.Count still reflects every match. Cheapest and Priciest are the
// first-seen extreme monthly-priced matches, set for every query so callers
// can answer minimum/maximum intents without a second pass.
type Result struct {
	Matches  []models.Listing `json:"matches"`
	Stats    models.Stats     `json:"stats"`
	Cheapest *models.Listing  `json:"cheapest,omitempty"`
	Priciest *models.Listing  `json:"priciest,omitempty"`
}

// New creates an engine over the given store. The rate and result cap come
// from validated configuration; rate is GHS per USD.
func New(store *Store, rate float64, target models.Currency, resultCap int) *Engine {
	return &Engine{
		store:          store,
		rate:           rate,
		targetCurrency: target,
		resultCap:      resultCap,
	}
}

// Execute runs one structured query against the current store snapshot.
func (e *Engine) Execute(q models.Query) (Result, error) {
	result := Result{Stats: models.Stats{Currency: e.targetCurrency}}

	type priced struct {
		listing   models.Listing
		converted float64
		monthly   bool
	}

	var matches []priced

	for _, l := range e.store.All() {
		if !listingMatches(q, l) {
			continue
		}

		converted, err := price.Convert(l.PriceAmount, l.PriceCurrency, e.targetCurrency, e.rate)
		if err != nil {
			return Result{}, fmt.Errorf("converting price of listing %s: %w", l.ID, err)
		}

		matches = append(matches, priced{
			listing:   l,
			converted: converted,
			monthly:   l.Period == models.PeriodMonthly,
		})
	}

	result.Stats.Count = len(matches)

	var sum, cheapestVal, priciestVal float64

	for _, m := range matches {
		if !m.monthly {
			continue
		}

		result.Stats.PricedCount++
		sum += m.converted

		// Strict comparisons keep the first-seen listing on ties.
		if result.Cheapest == nil || m.converted < cheapestVal {
			l := m.listing
			result.Cheapest = &l
			cheapestVal = m.converted
		}

		if result.Priciest == nil || m.converted > priciestVal {
			l := m.listing
			result.Priciest = &l
			priciestVal = m.converted
		}

		if result.Stats.PricedCount == 1 {
			result.Stats.Min = m.converted
			result.Stats.Max = m.converted
		} else {
			if m.converted < result.Stats.Min {
				result.Stats.Min = m.converted
			}

			if m.converted > result.Stats.Max {
				result.Stats.Max = m.converted
			}
		}
	}

	if result.Stats.PricedCount > 0 {
		result.Stats.Mean = sum / float64(result.Stats.PricedCount)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].converted < matches[j].converted
	})

	capped := matches
	if e.resultCap > 0 && len(capped) > e.resultCap {
		capped = capped[:e.resultCap]
	}

	result.Matches = make([]models.Listing, len(capped))
	for i, m := range capped {
		result.Matches[i] = m.listing
	}

	return result, nil
}

// listingMatches applies the conjunctive filter: every non-any query field
// must agree with the listing. Unknown listing bedrooms never exclude on
// that axis, and low-confidence listing locations fall back to substring
// matching against the queried canonical name.
func listingMatches(q models.Query, l models.Listing) bool {
	if q.Location != "" {
		switch l.LocationConfidence {
		case models.ConfidenceLow:
			loc := strings.ToLower(l.Location)
			want := strings.ToLower(q.Location)

			if loc == "" {
				return false
			}

			if !strings.Contains(loc, want) && !strings.Contains(want, loc) {
				return false
			}
		default:
			if l.Location != q.Location {
				return false
			}
		}
	}

	if q.Bedrooms != models.AnyBedrooms && l.Bedrooms != models.CountUnknown && l.Bedrooms != q.Bedrooms {
		return false
	}

	if q.PropertyType != "" && q.PropertyType != models.PropertyUnknown && l.PropertyType != q.PropertyType {
		return false
	}

	return true
}
