// Package price parses raw listing price text into structured amounts and
// converts between the supported currencies.
package price

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"rentscout/internal/models"
)

// Parsing and conversion errors.
var (
	ErrUnparseablePrice = errors.New("unparseable price")
	ErrInvalidRate      = errors.New("exchange rate must be positive")
)

// Price is the structured form of one raw price string.
type Price struct {
	Amount   float64
	Currency models.Currency
	Period   models.Period
}

// currencyToken maps one symbol or word found in price text to a currency.
// Longer tokens are listed first so "GH₵" wins over "₵" and "US$" over "$".
type currencyToken struct {
	token    string
	currency models.Currency
}

var currencyTokens = []currencyToken{
	{"gh₵", models.CurrencyGHS},
	{"ghs", models.CurrencyGHS},
	{"ghc", models.CurrencyGHS},
	{"cedis", models.CurrencyGHS},
	{"cedi", models.CurrencyGHS},
	{"₵", models.CurrencyGHS},
	{"us$", models.CurrencyUSD},
	{"usd", models.CurrencyUSD},
	{"dollars", models.CurrencyUSD},
	{"dollar", models.CurrencyUSD},
	{"$", models.CurrencyUSD},
}

// nonMonthlyMarkers are period suffixes that mean the quoted price is not a
// monthly rent. They are stripped, never converted.
var nonMonthlyMarkers = []string{
	"per annum", "per year", "/year", "/yr", " pa",
	"per week", "/week", "weekly",
	"per night", "/night", "nightly",
	"per day", "/day", "daily",
}

var monthlyMarkers = []string{"per month", "/month", "/mo", " pm", "monthly"}

var numberPattern = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// Parse extracts (amount, currency, period) from raw price text such as
// "GH₵ 3,500/month", "$350" or "3500 cedis". Text with no currency token
// defaults to GHS, the dominant local listing convention. The period is
// assumed monthly unless the text states otherwise.
func Parse(text string) (Price, error) {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return Price{}, ErrUnparseablePrice
	}

	p := Price{Currency: models.CurrencyGHS, Period: models.PeriodMonthly}

	for _, ct := range currencyTokens {
		if strings.Contains(lowered, ct.token) {
			p.Currency = ct.currency
			lowered = strings.ReplaceAll(lowered, ct.token, " ")

			break
		}
	}

	for _, m := range nonMonthlyMarkers {
		if strings.Contains(lowered, m) {
			p.Period = models.PeriodNonMonthly
			lowered = strings.ReplaceAll(lowered, m, " ")

			break
		}
	}

	for _, m := range monthlyMarkers {
		lowered = strings.ReplaceAll(lowered, m, " ")
	}

	match := numberPattern.FindString(lowered)
	if match == "" {
		return Price{}, ErrUnparseablePrice
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil || amount <= 0 {
		return Price{}, ErrUnparseablePrice
	}

	p.Amount = amount

	return p, nil
}

// Convert converts an amount between GHS and USD. rate is GHS per USD and
// must be positive; conversion is the identity when from equals to. The rate
// is always injected, never read from global state.
func Convert(amount float64, from, to models.Currency, rate float64) (float64, error) {
	if rate <= 0 {
		return 0, ErrInvalidRate
	}

	if from == to {
		return amount, nil
	}

	if from == models.CurrencyUSD && to == models.CurrencyGHS {
		return amount * rate, nil
	}

	return amount / rate, nil
}
