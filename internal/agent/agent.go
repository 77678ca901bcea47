// Package agent composes the query interpreter, query engine and formatter
// into the user-facing answer surface.
package agent

import (
	"fmt"
	"strings"

	"rentscout/internal/engine"
	"rentscout/internal/formatter"
	"rentscout/internal/logger"
	"rentscout/internal/models"
	"rentscout/internal/price"
	"rentscout/internal/query"
)

// Agent answers natural-language rent questions against the session store.
type Agent struct {
	interpreter    *query.Interpreter
	engine         *engine.Engine
	targetCurrency models.Currency
	rate           float64
	log            *logger.Logger
}

// New creates an agent. rate is GHS per USD and is assumed validated.
func New(interpreter *query.Interpreter, eng *engine.Engine, target models.Currency, rate float64, log *logger.Logger) *Agent {
	return &Agent{
		interpreter:    interpreter,
		engine:         eng,
		targetCurrency: target,
		rate:           rate,
		log:            log,
	}
}

// Answer interprets the utterance, executes it and formats the result. It
// returns user-facing text; internal failures surface as an error.
func (a *Agent) Answer(utterance string) (string, error) {
	q := a.interpreter.Interpret(utterance)
	a.log.Debug("interpreted query",
		"location", q.Location,
		"bedrooms", q.Bedrooms,
		"propertyType", q.PropertyType,
		"intent", q.Intent,
	)

	result, err := a.engine.Execute(q)
	if err != nil {
		return "", fmt.Errorf("executing query: %w", err)
	}

	if result.Stats.Count == 0 {
		return "no listings found for " + describeCriteria(q), nil
	}

	return a.render(q, result), nil
}

// render builds the answer text for a non-empty result.
func (a *Agent) render(q models.Query, result engine.Result) string {
	var sb strings.Builder

	stats := result.Stats

	switch q.Intent {
	case models.IntentAverage:
		if stats.PricedCount == 0 {
			fmt.Fprintf(&sb, "Found %d listings for %s, but none had a monthly price to average.\n",
				stats.Count, describeCriteria(q))

			return sb.String()
		}

		fmt.Fprintf(&sb, "Average monthly rent for %s: %s (based on %d of %d listings).\n",
			describeCriteria(q),
			formatter.Amount(stats.Mean, a.targetCurrency),
			stats.PricedCount,
			stats.Count,
		)
	case models.IntentMinimum:
		if result.Cheapest == nil {
			fmt.Fprintf(&sb, "Found %d listings for %s, but none had a monthly price.\n",
				stats.Count, describeCriteria(q))

			return sb.String()
		}

		fmt.Fprintf(&sb, "Cheapest match for %s: %q in %s at %s/month.\n",
			describeCriteria(q),
			result.Cheapest.Title,
			result.Cheapest.Location,
			a.amountOf(*result.Cheapest),
		)
	case models.IntentMaximum:
		if result.Priciest == nil {
			fmt.Fprintf(&sb, "Found %d listings for %s, but none had a monthly price.\n",
				stats.Count, describeCriteria(q))

			return sb.String()
		}

		fmt.Fprintf(&sb, "Most expensive match for %s: %q in %s at %s/month.\n",
			describeCriteria(q),
			result.Priciest.Title,
			result.Priciest.Location,
			a.amountOf(*result.Priciest),
		)
	default:
		fmt.Fprintf(&sb, "Found %d listings for %s.\n", stats.Count, describeCriteria(q))

		if stats.PricedCount > 0 {
			fmt.Fprintf(&sb, "Monthly rent range: %s - %s, average %s (%d priced listings).\n",
				formatter.Amount(stats.Min, a.targetCurrency),
				formatter.Amount(stats.Max, a.targetCurrency),
				formatter.Amount(stats.Mean, a.targetCurrency),
				stats.PricedCount,
			)
		}
	}

	if len(result.Matches) > 0 {
		converted := make([]float64, len(result.Matches))
		for i, l := range result.Matches {
			v, err := price.Convert(l.PriceAmount, l.PriceCurrency, a.targetCurrency, a.rate)
			if err == nil {
				converted[i] = v
			}
		}

		sb.WriteString("\n")
		sb.WriteString(formatter.ListingTable(result.Matches, a.targetCurrency, converted))
	}

	return sb.String()
}

func (a *Agent) amountOf(l models.Listing) string {
	v, _ := price.Convert(l.PriceAmount, l.PriceCurrency, a.targetCurrency, a.rate)

	return formatter.Amount(v, a.targetCurrency)
}

// describeCriteria renders the non-any query fields, e.g.
// "bedrooms=1, location=Airport Residential Area". An unconstrained query
// describes itself as "all listings".
func describeCriteria(q models.Query) string {
	var parts []string

	if q.Bedrooms != models.AnyBedrooms {
		parts = append(parts, fmt.Sprintf("bedrooms=%d", q.Bedrooms))
	}

	if q.Location != "" {
		parts = append(parts, "location="+q.Location)
	}

	if q.PropertyType != "" {
		parts = append(parts, "type="+string(q.PropertyType))
	}

	if len(parts) == 0 {
		return "all listings"
	}

	return strings.Join(parts, ", ")
}
