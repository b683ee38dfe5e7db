package parser

import (
	"bytes"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"aland-offers/models"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultMaxItems caps how many matched containers are inspected per page
	DefaultMaxItems = 5

	// PricePlaceholder is used when a container has no price node
	PricePlaceholder = "Se butiken"
)

// Rule describes how offers are picked out of one store's page.
// Rules are plain values so a store's heuristics can be swapped without
// touching the pipeline.
type Rule struct {
	Store    string
	Category string
	Icon     string

	// ContainerTags and ClassPattern select offer containers: tag name in
	// ContainerTags and class attribute matching ClassPattern
	ContainerTags []string
	ClassPattern  *regexp.Regexp

	// TitleTags are tried first for the product name. DescriptionTags are
	// used when no title is found, cut to DescriptionLimit runes.
	TitleTags        []string
	DescriptionTags  []string
	DescriptionLimit int

	// PricePattern matches the class attribute of the price node inside a
	// container. Ignored when FixedPrice is set.
	PricePattern *regexp.Regexp
	FixedPrice   string

	// FixedValid replaces the default "Giltigt v.<week>" text
	FixedValid string

	// MaxItems caps inspected containers; zero means DefaultMaxItems
	MaxItems int
}

// Parser extracts offer data from HTML
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseOffers extracts offers from htmlContent according to rule.
// url is stored on every offer, now decides the week number in the
// default validity text.
func (p *Parser) ParseOffers(htmlContent []byte, url string, rule Rule, now time.Time) ([]models.Offer, error) {
	if rule.ClassPattern == nil || len(rule.ContainerTags) == 0 {
		return nil, fmt.Errorf("rule for %s has no container selector", rule.Store)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	maxItems := rule.MaxItems
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}

	containers := doc.Find(strings.Join(rule.ContainerTags, ", ")).FilterFunction(func(i int, s *goquery.Selection) bool {
		class, ok := s.Attr("class")
		return ok && rule.ClassPattern.MatchString(class)
	})

	return p.collectOffers(containers, maxItems, url, rule, now), nil
}

// collectOffers extracts an offer from each of the first maxItems containers
func (p *Parser) collectOffers(containers *goquery.Selection, maxItems int, url string, rule Rule, now time.Time) []models.Offer {
	var offers []models.Offer
	containers.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= maxItems {
			return false
		}
		if offer, ok := p.extractOffer(s, url, rule, now); ok {
			offers = append(offers, offer)
		}
		return true
	})
	return offers
}

// extractOffer builds one offer from a container. Items without a usable
// title are skipped, and a panic while reading one item only loses that item.
func (p *Parser) extractOffer(s *goquery.Selection, url string, rule Rule, now time.Time) (offer models.Offer, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: skipping %s item after panic: %v\n", rule.Store, r)
			ok = false
		}
	}()

	product := firstText(s, rule.TitleTags)
	if product == "" {
		product = truncateRunes(firstText(s, rule.DescriptionTags), rule.DescriptionLimit)
	}
	if product == "" {
		return models.Offer{}, false
	}

	price := rule.FixedPrice
	if price == "" {
		price = p.extractPrice(s, rule.PricePattern)
	}

	valid := rule.FixedValid
	if valid == "" {
		valid = fmt.Sprintf("Giltigt v.%d", models.ISOWeek(now))
	}

	return models.Offer{
		Store:    rule.Store,
		Category: rule.Category,
		Icon:     rule.Icon,
		Product:  product,
		Price:    price,
		Valid:    valid,
		URL:      url,
	}, true
}

// extractPrice returns the text of the first descendant whose class matches pattern
func (p *Parser) extractPrice(s *goquery.Selection, pattern *regexp.Regexp) string {
	if pattern == nil {
		return PricePlaceholder
	}

	price := ""
	s.Find("[class]").EachWithBreak(func(i int, el *goquery.Selection) bool {
		if !pattern.MatchString(el.AttrOr("class", "")) {
			return true
		}
		price = cleanText(el.Text())
		return false
	})

	if price == "" {
		return PricePlaceholder
	}
	return price
}

// firstText returns the cleaned text of the first descendant with one of the given tags
func firstText(s *goquery.Selection, tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return cleanText(s.Find(strings.Join(tags, ", ")).First().Text())
}

// cleanText normalizes whitespace and composes characters such as å and ö
func cleanText(text string) string {
	return norm.NFC.String(normalizeWhitespace(text))
}

// normalizeWhitespace collapses runs of whitespace into single spaces
func normalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func truncateRunes(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimSpace(string(runes[:limit]))
}
