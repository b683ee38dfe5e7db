package sources

import (
	"log"
	"regexp"

	"aland-offers/config"
	"aland-offers/parser"
)

// Source ids
const (
	Kantarellen = "kantarellen"
	Varuboden   = "varuboden"
)

// Source is one store page that is fetched and parsed
type Source struct {
	ID   string
	Name string // Used in progress output
	URL  string
	Rule parser.Rule
}

var rules = map[string]parser.Rule{
	Kantarellen: {
		Store:         "K-Supermarket Kantarellen",
		Category:      "Matvaror",
		Icon:          "🏪",
		ContainerTags: []string{"div", "article"},
		ClassPattern:  regexp.MustCompile(`(?i)offer|product|campaign`),
		TitleTags:     []string{"h2", "h3", "h4", "strong"},
		PricePattern:  regexp.MustCompile(`(?i)price|pris`),
	},
	Varuboden: {
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
	},
}

// Default returns the scraped sources in invocation order
func Default() []Source {
	return []Source{
		{ID: Kantarellen, Name: "Kantarellen", URL: "https://www.kantarellen.ax/erbjudanden", Rule: rules[Kantarellen]},
		{ID: Varuboden, Name: "Varuboden", URL: "https://varuboden.ax/kampanjer/", Rule: rules[Varuboden]},
	}
}

// ByID returns the default source with the given id
func ByID(id string) (Source, bool) {
	for _, src := range Default() {
		if src.ID == id {
			return src, true
		}
	}
	return Source{}, false
}

// FromConfig returns the enabled sources with URL overrides and the item cap applied.
// Unknown ids in the config are logged and ignored.
func FromConfig(cfg *config.Config) []Source {
	for _, id := range cfg.Sources.Enabled {
		if _, ok := ByID(id); !ok {
			log.Printf("Warning: Unknown source %q in sources.enabled\n", id)
		}
	}
	for id := range cfg.Sources.URLs {
		if _, ok := ByID(id); !ok {
			log.Printf("Warning: Unknown source %q in sources.urls\n", id)
		}
	}

	var selected []Source
	for _, src := range Default() {
		if !cfg.SourceEnabled(src.ID) {
			continue
		}
		if override := cfg.Sources.URLs[src.ID]; override != "" {
			src.URL = override
		}
		src.Rule.MaxItems = cfg.Scraper.MaxItems
		selected = append(selected, src)
	}
	return selected
}
