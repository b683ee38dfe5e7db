package models

import (
	"testing"
	"time"
)

func TestISOWeek(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected int
	}{
		{"thursday of week 40", time.Date(2025, time.October, 2, 12, 0, 0, 0, time.UTC), 40},
		{"new year belongs to previous year week 1", time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC), 1},
		{"late december week 53", time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC), 53},
		{"early january week 53 of previous year", time.Date(2021, time.January, 3, 0, 0, 0, 0, time.UTC), 53},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ISOWeek(tt.date); got != tt.expected {
				t.Errorf("ISOWeek() = %d, want %d", got, tt.expected)
			}
		})
	}
}
