package parser

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Thursday of ISO week 40
var testNow = time.Date(2025, time.October, 2, 9, 30, 0, 0, time.UTC)

func offerRule() Rule {
	return Rule{
		Store:         "K-Supermarket Kantarellen",
		Category:      "Matvaror",
		Icon:          "🏪",
		ContainerTags: []string{"div", "article"},
		ClassPattern:  regexp.MustCompile(`(?i)offer|product|campaign`),
		TitleTags:     []string{"h2", "h3", "h4", "strong"},
		PricePattern:  regexp.MustCompile(`(?i)price|pris`),
	}
}

func campaignRule() Rule {
	return Rule{
		Store:            "Varuboden (S-market)",
		Category:         "Matvaror",
		Icon:             "🛒",
		ContainerTags:    []string{"div", "article"},
		ClassPattern:     regexp.MustCompile(`(?i)campaign|kampanj`),
		TitleTags:        []string{"h2", "h3", "h4"},
		DescriptionTags:  []string{"p", "span"},
		DescriptionLimit: 50,
		FixedPrice:       "Ägarkund-bonus upp till 5%",
		FixedValid:       "Löpande",
	}
}

func TestParseOffers_TitleAndPrice(t *testing.T) {
	html := `<html><body>
	<div class="Offer-Card"><h3>Kaffe 500 g</h3><span class="product-price">3,99 €</span></div>
	<article class="campaign"><strong>Bananer</strong></article>
	<div class="header"><h2>Not an offer</h2></div>
	</body></html>`

	offers, err := NewParser().ParseOffers([]byte(html), "https://www.kantarellen.ax/erbjudanden", offerRule(), testNow)
	if err != nil {
		t.Fatalf("ParseOffers() error = %v", err)
	}
	if len(offers) != 2 {
		t.Fatalf("ParseOffers() returned %d offers, want 2", len(offers))
	}

	tests := []struct {
		name    string
		index   int
		product string
		price   string
	}{
		{"price node found", 0, "Kaffe 500 g", "3,99 €"},
		{"missing price uses placeholder", 1, "Bananer", PricePlaceholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := offers[tt.index]
			if got.Product != tt.product {
				t.Errorf("Product = %q, want %q", got.Product, tt.product)
			}
			if got.Price != tt.price {
				t.Errorf("Price = %q, want %q", got.Price, tt.price)
			}
			if got.Valid != "Giltigt v.40" {
				t.Errorf("Valid = %q, want %q", got.Valid, "Giltigt v.40")
			}
			if got.Store != "K-Supermarket Kantarellen" || got.Category != "Matvaror" || got.Icon != "🏪" {
				t.Errorf("fixed fields = %q/%q/%q", got.Store, got.Category, got.Icon)
			}
			if got.URL != "https://www.kantarellen.ax/erbjudanden" {
				t.Errorf("URL = %q", got.URL)
			}
		})
	}
}

func TestParseOffers_CapAppliesToContainers(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	// The first container has no title but still uses one of the five slots
	b.WriteString(`<div class="offer"><p>no heading</p></div>`)
	for i := 0; i < 6; i++ {
		b.WriteString(`<div class="offer"><h2>Vara</h2></div>`)
	}
	b.WriteString("</body></html>")

	offers, err := NewParser().ParseOffers([]byte(b.String()), "u", offerRule(), testNow)
	if err != nil {
		t.Fatalf("ParseOffers() error = %v", err)
	}
	if len(offers) != 4 {
		t.Errorf("ParseOffers() returned %d offers, want 4", len(offers))
	}
}

func TestParseOffers_MaxItemsOverride(t *testing.T) {
	html := `<div class="offer"><h2>A</h2></div><div class="offer"><h2>B</h2></div><div class="offer"><h2>C</h2></div>`
	rule := offerRule()
	rule.MaxItems = 2

	offers, err := NewParser().ParseOffers([]byte(html), "u", rule, testNow)
	if err != nil {
		t.Fatalf("ParseOffers() error = %v", err)
	}
	if len(offers) != 2 || offers[0].Product != "A" || offers[1].Product != "B" {
		t.Errorf("ParseOffers() = %+v, want A and B", offers)
	}
}

func TestParseOffers_DescriptionFallback(t *testing.T) {
	long := strings.Repeat("å", 60)
	html := `<html><body>
	<div class="kampanj-lift"><h3>Ägarens Lönedag</h3></div>
	<div class="Campaign"><p>` + long + `</p></div>
	<div class="campaign"><img src="x.png"></div>
	</body></html>`

	offers, err := NewParser().ParseOffers([]byte(html), "https://varuboden.ax/kampanjer/", campaignRule(), testNow)
	if err != nil {
		t.Fatalf("ParseOffers() error = %v", err)
	}
	if len(offers) != 2 {
		t.Fatalf("ParseOffers() returned %d offers, want 2", len(offers))
	}
	if offers[0].Product != "Ägarens Lönedag" {
		t.Errorf("Product = %q", offers[0].Product)
	}
	if offers[1].Product != strings.Repeat("å", 50) {
		t.Errorf("description not cut to 50 runes: %q", offers[1].Product)
	}
	for _, o := range offers {
		if o.Price != "Ägarkund-bonus upp till 5%" || o.Valid != "Löpande" {
			t.Errorf("fixed price/valid = %q/%q", o.Price, o.Valid)
		}
	}
}

func TestParseOffers_NoMatches(t *testing.T) {
	offers, err := NewParser().ParseOffers([]byte(`<html><body><p>Inga erbjudanden</p></body></html>`), "u", offerRule(), testNow)
	if err != nil {
		t.Fatalf("ParseOffers() error = %v", err)
	}
	if len(offers) != 0 {
		t.Errorf("ParseOffers() returned %d offers, want 0", len(offers))
	}
}

func TestParseOffers_InvalidRule(t *testing.T) {
	if _, err := NewParser().ParseOffers([]byte("<html></html>"), "u", Rule{Store: "x"}, testNow); err == nil {
		t.Error("ParseOffers() error = nil for rule without containers")
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"collapses whitespace", "  Kaffe\n\t 500 g  ", "Kaffe 500 g"},
		{"composes decomposed characters", "A\u030aland", "\u00c5land"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanText(tt.input); got != tt.expected {
				t.Errorf("cleanText() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{"under limit", "Bröd", 10, "Bröd"},
		{"cut multibyte", "Röda Lappar", 3, "Röd"},
		{"trailing space trimmed", "ab cd", 3, "ab"},
		{"no limit", "Bröd", 0, "Bröd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateRunes(tt.input, tt.limit); got != tt.expected {
				t.Errorf("truncateRunes() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCollectOffers_PanickingItemIsSkipped(t *testing.T) {
	html := `<div class="offer"><h3>Kaffe</h3></div><div class="offer"><h3>Mjölk</h3></div>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("NewDocumentFromReader() error = %v", err)
	}
	good := doc.Find("div.offer")

	// A nil node makes every lookup inside that container panic
	containers := &goquery.Selection{Nodes: append(good.Nodes[:1:1], nil, good.Nodes[1])}

	offers := NewParser().collectOffers(containers, DefaultMaxItems, "https://www.kantarellen.ax/erbjudanden", offerRule(), testNow)
	if len(offers) != 2 {
		t.Fatalf("collectOffers() returned %d offers, want 2", len(offers))
	}
	if offers[0].Product != "Kaffe" || offers[1].Product != "Mjölk" {
		t.Errorf("collectOffers() products = %q, %q", offers[0].Product, offers[1].Product)
	}
}
