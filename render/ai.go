package render

import (
	"fmt"
	"html"
	"strings"
	"time"

	"aland-offers/models"
)

// ExtraSource is a discount source listed on the AI page but never scraped
type ExtraSource struct {
	Name        string
	Description string
	URL         string
}

// ExtraSources are appended to every AI page
var ExtraSources = []ExtraSource{
	{"ÅlandsRabatten", "~350 kuponger för olika butiker (mat, kläder, restauranger).", "https://www.eckerolinjen.ax/alandsrabatten"},
	{"Kupongfesten (Ålandskortet)", "Lokala kuponger och deals.", "https://alandskortet.alandstidningen.ax/kupongfesten"},
	{"Maxinge Center", "Specialerbjudanden från olika butiker.", "https://www.maxinge.ax"},
	{"Loppisar På Åland (Facebook)", "Second-hand försäljning.", "https://www.facebook.com/groups/1159640120797248"},
}

// AIHTML renders the plain page meant for the chatbot: offers listed per store
func AIHTML(offers []models.Offer, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<!DOCTYPE html>
<html lang="sv">
<head>
<meta charset="UTF-8">
<title>Rabatter och Erbjudanden - Åland</title>
</head>
<body>

<h1>Aktuella Rabatter och Erbjudanden på Åland</h1>
<p>Senast uppdaterad: %s</p>

`, generatedAt.Format(TimestampLayout))

	for _, group := range GroupByStore(offers) {
		fmt.Fprintf(&b, "\n<h2>%s</h2>\n<ul>\n", html.EscapeString(group.Key))
		for _, offer := range group.Offers {
			url := html.EscapeString(offer.URL)
			fmt.Fprintf(&b, `  <li>
    <strong>%s</strong>
    <br>Pris: %s
    <br>Giltigt: %s
    <br>Kategori: %s
    <br>Länk: <a href="%s">%s</a>
  </li>
`,
				html.EscapeString(offer.Product),
				html.EscapeString(offer.Price),
				html.EscapeString(offer.Valid),
				html.EscapeString(offer.Category),
				url, url,
			)
		}
		b.WriteString("</ul>\n\n")
	}

	b.WriteString("\n<h2>Övriga Rabattkällor</h2>\n<ul>\n")
	for _, src := range ExtraSources {
		fmt.Fprintf(&b, "  <li><strong>%s</strong> - %s <a href=\"%s\">%s</a></li>\n",
			html.EscapeString(src.Name), html.EscapeString(src.Description), src.URL, src.URL)
	}
	b.WriteString("</ul>\n\n</body>\n</html>\n")

	return b.String()
}

// WriteAI renders the AI page and replaces the file at path
func WriteAI(path string, offers []models.Offer, generatedAt time.Time) error {
	return writeFile(path, AIHTML(offers, generatedAt))
}
