package fallback

import (
	"fmt"
	"time"

	"aland-offers/models"
)

// Offers returns the hand-written example offers shown when scraping finds
// too little. The list is rebuilt on every call; only the week number in the
// second offer depends on now.
func Offers(now time.Time) []models.Offer {
	return []models.Offer{
		{
			Store:    "K-Supermarket Kantarellen",
			Category: "Matvaror",
			Icon:     "🏪",
			Product:  "Plussakort - Spara upp till 5%",
			Price:    "Gratis kort",
			Valid:    "Löpande",
			URL:      "https://www.kantarellen.ax/erbjudanden",
		},
		{
			Store:    "K-Supermarket Kantarellen",
			Category: "Matvaror",
			Icon:     "🏪",
			Product:  "Veckans erbjudanden",
			Price:    "Se aktuella priser i butik",
			Valid:    fmt.Sprintf("Vecka %d", models.ISOWeek(now)),
			URL:      "https://www.kantarellen.ax/erbjudanden",
		},
		{
			Store:    "Varuboden (S-market)",
			Category: "Matvaror",
			Icon:     "🛒",
			Product:  "S-Förmånskort Bonus",
			Price:    "Upp till 5% bonus på inköp",
			Valid:    "Löpande",
			URL:      "https://varuboden.ax/kampanjer/",
		},
		{
			Store:    "Varuboden (S-market)",
			Category: "Matvaror",
			Icon:     "🛒",
			Product:  "Ägarens Lönedag",
			Price:    "Extra erbjudanden",
			Valid:    "Den 10:e varje månad",
			URL:      "https://varuboden.ax/kampanjer/",
		},
		{
			Store:    "Varuboden (S-market)",
			Category: "Matvaror",
			Icon:     "🛒",
			Product:  "Röda Lappar - Dubbelrabatt",
			Price:    "Dubbel rabatt under sista öppethålningstiden",
			Valid:    "Dagligen",
			URL:      "https://varuboden.ax/kampanjer/",
		},
		{
			Store:    "ÅlandsRabatten",
			Category: "Blandat",
			Icon:     "🎟️",
			Product:  "~350 kuponger",
			Price:    "Mat, kläder, restauranger m.m.",
			Valid:    "Årskupongbok",
			URL:      "https://www.eckerolinjen.ax/alandsrabatten",
		},
		{
			Store:    "Kupongfesten (Ålandskortet)",
			Category: "Blandat",
			Icon:     "🎉",
			Product:  "Bio Savoy",
			Price:    "2 för 1 biobiljetter",
			Valid:    "Se aktuella kuponger",
			URL:      "https://alandskortet.alandstidningen.ax/kupongfesten",
		},
		{
			Store:    "Maxinge Center",
			Category: "Köpcentrum",
			Icon:     "🏬",
			Product:  "Se Maxingebladet",
			Price:    "Specialerbjudanden från olika butiker",
			Valid:    "Enligt Maxingebladet",
			URL:      "https://www.maxinge.ax",
		},
	}
}
