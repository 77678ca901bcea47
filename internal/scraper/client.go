// Package scraper fetches listing-portal search pages and extracts raw
// listing records from them. It is the I/O edge of the pipeline: everything
// downstream of the RawRecord boundary is pure.
package scraper

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"

	"rentscout/internal/config"
	"rentscout/internal/models"
)

// ErrUnexpectedStatusCode indicates an HTTP response with unexpected status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// Client fetches and parses listing pages with config-driven retries.
type Client struct {
	http   *resty.Client
	parser *Parser
}

// NewClient creates a client honouring the scraper retry policy.
func NewClient(cfg config.ScraperConfig) *Client {
	http := resty.New().
		SetTimeout(cfg.Retry.GetTimeout()).
		SetRetryCount(cfg.Retry.MaxAttempts - 1).
		SetRetryWaitTime(cfg.Retry.GetInitialDelay()).
		SetRetryMaxWaitTime(cfg.Retry.GetMaxDelay()).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	return &Client{
		http:   http,
		parser: NewParser(),
	}
}

// Fetch retrieves one search-results page and extracts its raw records.
func (c *Client) Fetch(url string) ([]models.RawRecord, error) {
	resp, err := c.http.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: %d for %s", ErrUnexpectedStatusCode, resp.StatusCode(), url)
	}

	records, err := c.parser.ParseListings(resp.String(), url)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}

	return records, nil
}

// FetchFile extracts raw records from a local HTML file, for fixtures and
// offline runs.
func (c *Client) FetchFile(path string) ([]models.RawRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading local file %s: %w", path, err)
	}

	records, err := c.parser.ParseListings(string(content), "file://"+path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return records, nil
}
