package models

import "time"

// Score is the immutable record of one completed quiz run.
type Score struct {
	ID         string    `json:"id"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Percentage int       `json:"percentage"`
	Category   string    `json:"category"`
	Difficulty string    `json:"difficulty"`
	Date       time.Time `json:"date"`
}
