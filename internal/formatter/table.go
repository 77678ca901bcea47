// Package formatter renders query results as aligned plain-text output.
package formatter

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"rentscout/internal/models"
)

// Symbol returns the display symbol for a currency.
func Symbol(c models.Currency) string {
	if c == models.CurrencyUSD {
		return "$"
	}

	return "GH₵"
}

// Amount renders a converted price with its currency symbol.
func Amount(v float64, c models.Currency) string {
	return fmt.Sprintf("%s%.2f", Symbol(c), v)
}

// Bedrooms renders a bedroom count with pluralization; unknown counts render
// as a dash.
func Bedrooms(n int) string {
	switch {
	case n == models.CountUnknown:
		return "-"
	case n == 1:
		return "1 bedroom"
	default:
		return fmt.Sprintf("%d bedrooms", n)
	}
}

// ListingTable renders listings as a pipe-delimited table with columns
// padded by display width, so multi-byte currency symbols still line up.
func ListingTable(listings []models.Listing, target models.Currency, converted []float64) string {
	headers := []string{"Title", "Location", "Bedrooms", "Type", "Price"}
	rows := make([][]string, 0, len(listings)+1)
	rows = append(rows, headers)

	for i, l := range listings {
		priceCell := Amount(converted[i], target)
		if l.Period == models.PeriodNonMonthly {
			priceCell += " (non-monthly)"
		}

		rows = append(rows, []string{
			truncate(l.Title, 40),
			l.Location,
			Bedrooms(l.Bedrooms),
			string(l.PropertyType),
			priceCell,
		})
	}

	return renderRows(rows)
}

// renderRows pads every column to the widest cell, measured in display
// width rather than bytes.
func renderRows(rows [][]string) string {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	widths := make([]int, colCount)

	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder

	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			sb.WriteString(cell)

			if i < colCount-1 {
				padding := widths[i] - runewidth.StringWidth(cell)
				sb.WriteString(strings.Repeat(" ", padding+2))
			}
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

func truncate(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	return runewidth.Truncate(s, maxWidth, "...")
}
