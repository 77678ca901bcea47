// Package query parses natural-language rent questions into structured
// queries. Interpretation never fails: an utterance matching nothing yields
// the maximally permissive lookup query.
package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/clipperhouse/uax29/v2/words"

	"rentscout/internal/location"
	"rentscout/internal/models"
)

// intentKeywords maps single tokens to intents. Two-word phrases such as
// "most expensive" are handled by the bigram pass in detectIntent.
var intentKeywords = map[string]models.Intent{
	"average":   models.IntentAverage,
	"avg":       models.IntentAverage,
	"mean":      models.IntentAverage,
	"cheapest":  models.IntentMinimum,
	"lowest":    models.IntentMinimum,
	"minimum":   models.IntentMinimum,
	"highest":   models.IntentMaximum,
	"maximum":   models.IntentMaximum,
	"priciest":  models.IntentMaximum,
	"expensive": models.IntentLookup, // only "most expensive" is a maximum
}

var intentBigrams = map[string]models.Intent{
	"most expensive":  models.IntentMaximum,
	"least expensive": models.IntentMinimum,
}

var bedroomPattern = regexp.MustCompile(`(?i)(\d+)\s*-?\s*(?:bed(?:room)?s?|br)\b`)

// Interpreter turns utterances into Queries using the shared location
// matcher and the keyword tables above.
type Interpreter struct {
	matcher *location.Matcher
}

// NewInterpreter creates an interpreter bound to the given matcher.
func NewInterpreter(matcher *location.Matcher) *Interpreter {
	return &Interpreter{matcher: matcher}
}

// Interpret extracts bedrooms, location, property type and intent from one
// user utterance.
func (i *Interpreter) Interpret(utterance string) models.Query {
	q := models.Query{
		Bedrooms:  models.AnyBedrooms,
		Intent:    models.IntentLookup,
		Utterance: utterance,
	}

	if m := bedroomPattern.FindStringSubmatch(utterance); len(m) >= 2 {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 0 {
			q.Bedrooms = n
		}
	}

	if canonical, ok := i.matcher.BestWithin(utterance); ok {
		q.Location = canonical
	}

	if pt := classifyProperty(utterance); pt != models.PropertyUnknown {
		q.PropertyType = pt
	}

	q.Intent = detectIntent(utterance)

	return q
}

// classifyProperty mirrors the listing normalizer's keyword table but leaves
// the query field "any" when nothing matches.
func classifyProperty(utterance string) models.PropertyType {
	lowered := strings.ToLower(utterance)

	switch {
	case strings.Contains(lowered, "townhouse"), strings.Contains(lowered, "town house"):
		return models.PropertyTownhouse
	case strings.Contains(lowered, "apartment"), strings.Contains(lowered, "flat"):
		return models.PropertyApartment
	case strings.Contains(lowered, "house"), strings.Contains(lowered, "bungalow"), strings.Contains(lowered, "villa"):
		return models.PropertyHouse
	default:
		return models.PropertyUnknown
	}
}

// detectIntent segments the utterance into words and scans tokens and
// consecutive-token bigrams against the intent tables.
func detectIntent(utterance string) models.Intent {
	tokens := tokenize(utterance)

	for idx, tok := range tokens {
		if idx+1 < len(tokens) {
			if intent, ok := intentBigrams[tok+" "+tokens[idx+1]]; ok {
				return intent
			}
		}

		if intent, ok := intentKeywords[tok]; ok && intent != models.IntentLookup {
			return intent
		}
	}

	return models.IntentLookup
}

// tokenize splits an utterance into lowercase word tokens, dropping
// whitespace and punctuation segments.
func tokenize(utterance string) []string {
	var tokens []string

	segs := words.FromString(strings.ToLower(utterance))
	for segs.Next() {
		tok := strings.TrimSpace(segs.Value())
		if tok == "" {
			continue
		}

		if !hasLetterOrDigit(tok) {
			continue
		}

		tokens = append(tokens, tok)
	}

	return tokens
}

func hasLetterOrDigit(s string) bool {
	for _, r := range s {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			return true
		}
	}

	return false
}
