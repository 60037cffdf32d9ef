package database

import (
	"time"
)

// Station is a broadcaster row. The database UUID is internal; callers
// address stations by StationID from the feed.
type Station struct {
	ID             string // Database UUID
	StationID      string // Feed station identifier
	Name           string
	AreaID         string
	LastIngestedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Program is one committed timeline record. Ft and To are fixed-width
// yyyyMMddHHmmss stamps, so lexicographic comparison is chronological.
// Rows are never updated in place; corrections delete and reinsert.
type Program struct {
	ID        string // Database UUID
	StationID string
	ProgramID string // Deterministic identifier, unique across the table
	Ft        string
	To        string
	Title     string
	Info      string
	Pfm       string
	Img       string
	CreatedAt time.Time
}
