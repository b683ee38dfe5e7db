package aggregator

import (
	"fmt"
	"log"
	"time"

	"aland-offers/fallback"
	"aland-offers/fetcher"
	"aland-offers/models"
	"aland-offers/parser"
	"aland-offers/sources"
)

// DefaultThreshold is the minimum number of scraped offers kept as-is
const DefaultThreshold = 3

// SourceReport records what one source contributed to a run
type SourceReport struct {
	ID     string
	Name   string
	Offers int
	Err    error
}

// Result is the outcome of one Collect call
type Result struct {
	Offers       []models.Offer
	RealCount    int  // Offers scraped before any fallback decision
	UsedFallback bool // Offers is the fallback list
	Sources      []SourceReport
	CollectedAt  time.Time
}

// Aggregator runs every source and decides between scraped and fallback offers
type Aggregator struct {
	fetcher   fetcher.Fetcher
	parser    *parser.Parser
	sources   []sources.Source
	threshold int
	now       func() time.Time
	fallback  func(time.Time) []models.Offer
}

// Option configures an Aggregator
type Option func(*Aggregator)

// WithThreshold sets the minimum number of scraped offers
func WithThreshold(n int) Option {
	return func(a *Aggregator) {
		a.threshold = n
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

// WithFallback replaces the built-in fallback list
func WithFallback(fn func(time.Time) []models.Offer) Option {
	return func(a *Aggregator) {
		a.fallback = fn
	}
}

// New creates a new Aggregator
func New(f fetcher.Fetcher, p *parser.Parser, srcs []sources.Source, opts ...Option) *Aggregator {
	a := &Aggregator{
		fetcher:   f,
		parser:    p,
		sources:   srcs,
		threshold: DefaultThreshold,
		now:       time.Now,
		fallback:  fallback.Offers,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Collect scrapes the sources one after another. A failing source adds no
// offers and never stops the run. When fewer than the threshold were found,
// all of them are replaced by the fallback list.
func (a *Aggregator) Collect() Result {
	now := a.now()
	result := Result{CollectedAt: now}

	var all []models.Offer
	for _, src := range a.sources {
		fmt.Printf("Scraping %s...\n", src.Name)

		offers, err := a.scrapeSource(src, now)
		if err != nil {
			log.Printf("Warning: %s contributed no offers: %v\n", src.Name, err)
		}
		result.Sources = append(result.Sources, SourceReport{
			ID:     src.ID,
			Name:   src.Name,
			Offers: len(offers),
			Err:    err,
		})
		all = append(all, offers...)
	}

	result.RealCount = len(all)
	if len(all) < a.threshold {
		fmt.Printf("Found %d offers (minimum %d), using example offers...\n", len(all), a.threshold)
		result.Offers = a.fallback(now)
		result.UsedFallback = true
		return result
	}

	result.Offers = all
	return result
}

// scrapeSource fetches and parses one source
func (a *Aggregator) scrapeSource(src sources.Source, now time.Time) ([]models.Offer, error) {
	body, err := a.fetcher.Fetch(src.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}

	offers, err := a.parser.ParseOffers(body, src.URL, src.Rule, now)
	if err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}

	return offers, nil
}
