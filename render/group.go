package render

import "aland-offers/models"

// DefaultCategory labels offers that carry no category
const DefaultCategory = "Övrigt"

// Group is a run of offers sharing one key, in first-seen order
type Group struct {
	Key    string
	Offers []models.Offer
}

// GroupByCategory groups offers by category. Groups appear in the order their
// category was first seen and keep the offers' original order.
func GroupByCategory(offers []models.Offer) []Group {
	return groupBy(offers, func(o models.Offer) string {
		if o.Category == "" {
			return DefaultCategory
		}
		return o.Category
	})
}

// GroupByStore groups offers by store, preserving first-seen order
func GroupByStore(offers []models.Offer) []Group {
	return groupBy(offers, func(o models.Offer) string {
		return o.Store
	})
}

func groupBy(offers []models.Offer, key func(models.Offer) string) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, offer := range offers {
		k := key(offer)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Offers = append(groups[i].Offers, offer)
	}
	return groups
}
