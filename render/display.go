package render

import (
	"fmt"
	"html"
	"strings"
	"time"

	"aland-offers/models"
)

const displayHead = `<!DOCTYPE html>
<html lang="sv">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Aktuella Rabatter & Erbjudanden - Chatbot.ax</title>
<style>
  * {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
  }

  body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    color: #fff;
    line-height: 1.6;
    background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    min-height: 100vh;
  }

  .container {
    max-width: 1400px;
    margin: 0 auto;
    padding: 40px 5%;
  }

  .header {
    text-align: center;
    margin-bottom: 50px;
  }

  .badge {
    display: inline-flex;
    align-items: center;
    gap: 8px;
    background: rgba(255, 255, 255, 0.1);
    padding: 10px 20px;
    border-radius: 999px;
    border: 1px solid rgba(255, 255, 255, 0.2);
    margin-bottom: 1em;
    font-size: 0.9em;
    font-weight: 600;
  }

  h1 {
    font-size: clamp(2rem, 5vw, 3.5rem);
    font-weight: 800;
    margin-bottom: 0.5em;
  }

  .gradient-text {
    background: linear-gradient(135deg, #60a5fa 0%, #a78bfa 50%, #f472b6 100%);
    -webkit-background-clip: text;
    -webkit-text-fill-color: transparent;
    background-clip: text;
  }

  .subtitle {
    font-size: 1.1rem;
    color: rgba(255, 255, 255, 0.8);
    margin-bottom: 1em;
  }

  .update-time {
    font-size: 0.9rem;
    color: rgba(255, 255, 255, 0.6);
  }

  .category-section {
    margin-bottom: 50px;
  }

  .category-title {
    font-size: 1.8rem;
    font-weight: 700;
    margin-bottom: 1.5em;
    padding-bottom: 0.5em;
    border-bottom: 2px solid rgba(255, 255, 255, 0.1);
  }

  .offers-grid {
    display: grid;
    grid-template-columns: repeat(auto-fill, minmax(350px, 1fr));
    gap: 25px;
  }

  .offer-card {
    background: rgba(255, 255, 255, 0.05);
    border: 1px solid rgba(255, 255, 255, 0.1);
    border-radius: 16px;
    padding: 25px;
    transition: all 0.3s ease;
    text-decoration: none;
    color: #fff;
    display: block;
  }

  .offer-card:hover {
    background: rgba(255, 255, 255, 0.08);
    border-color: rgba(255, 255, 255, 0.2);
    transform: translateY(-5px);
    box-shadow: 0 10px 30px rgba(0, 0, 0, 0.3);
  }

  .offer-header {
    display: flex;
    align-items: flex-start;
    gap: 15px;
    margin-bottom: 15px;
  }

  .offer-icon {
    font-size: 2.5em;
    flex-shrink: 0;
  }

  .offer-info {
    flex: 1;
  }

  .offer-store {
    font-size: 1.3rem;
    font-weight: 700;
    margin-bottom: 0.5em;
  }

  .offer-product {
    font-size: 1.1rem;
    color: rgba(255, 255, 255, 0.9);
    margin-bottom: 0.8em;
  }

  .offer-details {
    display: flex;
    flex-direction: column;
    gap: 8px;
    margin-bottom: 1em;
  }

  .offer-price {
    font-size: 1.5rem;
    font-weight: 700;
    color: #10b981;
  }

  .offer-valid {
    font-size: 0.9rem;
    color: rgba(255, 255, 255, 0.6);
  }

  .offer-link {
    display: inline-flex;
    align-items: center;
    gap: 8px;
    color: #60a5fa;
    font-size: 0.9em;
    font-weight: 600;
    text-decoration: none;
  }

  .footer {
    text-align: center;
    margin-top: 60px;
    padding: 30px;
    background: rgba(255, 255, 255, 0.05);
    border-radius: 16px;
    border: 1px solid rgba(255, 255, 255, 0.1);
  }

  @media (max-width: 768px) {
    .offers-grid {
      grid-template-columns: 1fr;
    }
  }
</style>
</head>
<body>

<div class="container">
`

const displayFooter = `
  <div class="footer">
    <p>
      💡 <strong>Tips:</strong> Fråga vår AI-guide om specifika rabatter eller erbjudanden!
    </p>
    <p style="margin-top: 1em; font-size: 0.9em; color: rgba(255, 255, 255, 0.6);">
      Chatbot.ax - Din guide till Åland
    </p>
  </div>

</div>

</body>
</html>
`

// DisplayHTML renders the visitor page: one section per category, one card per offer
func DisplayHTML(offers []models.Offer, generatedAt time.Time) string {
	var b strings.Builder
	b.WriteString(displayHead)

	fmt.Fprintf(&b, `
  <div class="header">
    <div class="badge">
      💰 Uppdateras automatiskt
    </div>
    <h1>
      Aktuella Rabatter & <span class="gradient-text">Erbjudanden</span>
    </h1>
    <p class="subtitle">
      De bästa erbjudandena från lokala butiker på Åland
    </p>
    <p class="update-time">
      Senast uppdaterad: %s
    </p>
  </div>
`, generatedAt.Format(TimestampLayout))

	for _, group := range GroupByCategory(offers) {
		fmt.Fprintf(&b, `
  <div class="category-section">
    <h2 class="category-title">%s</h2>
    <div class="offers-grid">
`, html.EscapeString(group.Key))

		for _, offer := range group.Offers {
			writeCard(&b, offer)
		}

		b.WriteString(`
    </div>
  </div>
`)
	}

	b.WriteString(displayFooter)
	return b.String()
}

func writeCard(b *strings.Builder, offer models.Offer) {
	fmt.Fprintf(b, `
      <a href="%s" target="_blank" class="offer-card">
        <div class="offer-header">
          <div class="offer-icon">%s</div>
          <div class="offer-info">
            <h3 class="offer-store">%s</h3>
          </div>
        </div>
        <p class="offer-product">%s</p>
        <div class="offer-details">
          <div class="offer-price">%s</div>
          <div class="offer-valid">⏰ %s</div>
        </div>
        <span class="offer-link">
          Se mer →
        </span>
      </a>
`,
		html.EscapeString(offer.URL),
		html.EscapeString(offer.Icon),
		html.EscapeString(offer.Store),
		html.EscapeString(offer.Product),
		html.EscapeString(offer.Price),
		html.EscapeString(offer.Valid),
	)
}

// WriteDisplay renders the visitor page and replaces the file at path
func WriteDisplay(path string, offers []models.Offer, generatedAt time.Time) error {
	return writeFile(path, DisplayHTML(offers, generatedAt))
}
