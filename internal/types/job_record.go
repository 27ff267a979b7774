// Package types provides type definitions for structured data used throughout the pitch-migrator system.
package types

import "time"

// JobRecord is a read-only snapshot of one row from the source jobs store.
type JobRecord struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	PostedDate     string    `json:"posted_date"`
	SourceURL      string    `json:"source_url"`
	RawDescription string    `json:"raw_description"`
	HasPitchScript bool      `json:"has_pitch_script"`
	LoadedAt       time.Time `json:"loaded_at"`
}
