package scraper

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"rentscout/internal/models"
)

// Parser extracts raw listing records from portal search-results HTML. The
// selectors follow the meqasa card markup: an article per listing, price in
// span.h3, location in the address element, bed/bath counts in titled spans
// inside div.fur-are.
type Parser struct{}

// NewParser creates a parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ParseListings extracts one RawRecord per listing card. Cards with neither
// a price nor a title are skipped; missing fields stay empty strings for the
// normalizer to handle.
func (p *Parser) ParseListings(html, sourceURL string) ([]models.RawRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("building document: %w", err)
	}

	var records []models.RawRecord

	now := time.Now().UTC()

	cards := doc.Find("article.mqs-prop-card")
	if cards.Length() == 0 {
		cards = doc.Find("div.mqs-featured-prop-inner-wrap, div.mqs-prop-card-premium")
	}

	cards.Each(func(_ int, card *goquery.Selection) {
		rec := models.RawRecord{
			ID:        uuid.NewString(),
			SourceURL: sourceURL,
			ScrapedAt: now,
		}

		rec.PriceText = strings.TrimSpace(card.Find("span.h3").First().Text())
		rec.LocationText = strings.TrimSpace(card.Find("address").First().Text())
		rec.TypeText = strings.TrimSpace(card.Find("div.prop-type-card").First().Text())
		rec.BedBathText = extractBedBath(card)

		titleLink := card.Find("a.mqs-prop-dt-wrapper, a.prop-title-link").First()
		if titleLink.Length() > 0 {
			if title, ok := titleLink.Attr("title"); ok && title != "" {
				rec.Title = strings.TrimSpace(title)
			} else {
				rec.Title = strings.TrimSpace(titleLink.Text())
			}

			if href, ok := titleLink.Attr("href"); ok {
				rec.ListingURL = absoluteURL(sourceURL, href)
			}
		}

		if rec.Title == "" {
			header := card.Find("h2, h3, h4").First()
			rec.Title = strings.TrimSpace(header.Text())
		}

		if rec.PriceText == "" && rec.Title == "" {
			return
		}

		records = append(records, rec)
	})

	return records, nil
}

// extractBedBath joins the titled bedroom/bathroom spans into one field,
// e.g. "3 bed 2 bath". The card text is often just the bare count with the
// unit carried in the span title, so the unit word is re-attached here and
// count extraction is left to the normalizer.
func extractBedBath(card *goquery.Selection) string {
	var parts []string

	card.Find("div.fur-are span").Each(func(_ int, span *goquery.Selection) {
		title, _ := span.Attr("title")
		lowered := strings.ToLower(title)

		text := strings.TrimSpace(span.Text())
		if text == "" {
			return
		}

		switch {
		case strings.Contains(lowered, "bedroom"):
			if !strings.Contains(strings.ToLower(text), "bed") {
				text += " bed"
			}

			parts = append(parts, text)
		case strings.Contains(lowered, "bathroom"):
			if !strings.Contains(strings.ToLower(text), "bath") {
				text += " bath"
			}

			parts = append(parts, text)
		}
	})

	return strings.Join(parts, " ")
}

func absoluteURL(base, href string) string {
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}

	base = strings.TrimSuffix(base, "/")
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}

	// Keep only the scheme and host of the base.
	if idx := strings.Index(base, "://"); idx != -1 {
		if slash := strings.Index(base[idx+3:], "/"); slash != -1 {
			base = base[:idx+3+slash]
		}
	}

	return base + href
}
