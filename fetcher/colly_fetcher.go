package fetcher

import (
	"fmt"
	"log"
	"time"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher implements the Fetcher interface using colly
type CollyFetcher struct {
	userAgent string
	timeout   time.Duration
}

// NewCollyFetcher creates a new CollyFetcher instance
func NewCollyFetcher(userAgent string, timeout time.Duration) *CollyFetcher {
	return &CollyFetcher{
		userAgent: userAgent,
		timeout:   timeout,
	}
}

// newCollector returns a collector with no callbacks and no visit history,
// so the same page can be fetched again on the next call
func (cf *CollyFetcher) newCollector() *colly.Collector {
	c := colly.NewCollector(
		colly.UserAgent(cf.userAgent),
	)
	c.SetRequestTimeout(cf.timeout)

	// Deliver error responses to OnResponse so the status can be reported
	c.ParseHTTPErrorResponse = true

	return c
}

// Fetch implements the Fetcher interface
func (cf *CollyFetcher) Fetch(url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("failed to fetch: empty URL")
	}

	c := cf.newCollector()

	var (
		body   []byte
		status int
	)
	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = r.Body
	})

	if err := c.Visit(url); err != nil {
		return nil, fmt.Errorf("failed to visit URL %s: %w", url, err)
	}

	if status < 200 || status > 299 {
		return nil, &StatusError{URL: url, StatusCode: status}
	}

	log.Printf("Fetched %s (%d bytes)\n", url, len(body))
	return body, nil
}
