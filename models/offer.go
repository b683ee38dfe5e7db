package models

import "time"

// Offer represents one promotional offer from a store
type Offer struct {
	Store    string // Display name of the store
	Category string // Grouping label, e.g. "Matvaror"
	Icon     string // Decorative glyph shown on the card
	Product  string
	Price    string // Free text, may be a bonus description
	Valid    string // Human readable validity window
	URL      string
}

// ISOWeek returns the ISO 8601 week number of t
func ISOWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}
