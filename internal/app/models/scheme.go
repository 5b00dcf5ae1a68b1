package models

import "time"

// Scheme represents a scholarship offering applicants can apply to.
// A scheme is open while the current date is on or before LastDate.
type Scheme struct {
	ID            int64     `json:"id"`
	SchemeName    string    `json:"schemeName"`
	SchemeType    string    `json:"schemeType"`
	Grade         string    `json:"grade"`
	Year          string    `json:"year"`
	Category      string    `json:"category"`
	Criteria      string    `json:"criteria"`
	DocsRequired  string    `json:"docsRequired"`
	Amount        float64   `json:"amount"`
	LastDate      time.Time `json:"lastDate"`
	PublishedDate time.Time `json:"publishedDate"`
}

// IsOpen reports whether applications are still accepted at the given time.
func (s *Scheme) IsOpen(now time.Time) bool {
	deadline := s.LastDate.Truncate(24 * time.Hour)
	today := now.Truncate(24 * time.Hour)
	return !deadline.Before(today)
}
