// Package source reads eligible job records from the local SQLite jobs store.
package source

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/nexus/pitch-migrator/internal/types"
)

// minDescriptionLength is the eligibility cutoff: rows with shorter
// descriptions carry too little text for structured extraction.
const minDescriptionLength = 100

// Store wraps the read-only connection to the source jobs database.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at dbPath and verifies the connection.
// A failure here is fatal to the whole run, not a per-record failure.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening jobs db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging jobs db: %w", err)
	}

	return &Store{db: db}, nil
}

// ListEligible returns all rows matching the eligibility predicate
// (pitch script present, description longer than 100 characters),
// ordered by id. Read-only; no side effects.
func (s *Store) ListEligible(ctx context.Context) ([]types.JobRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, company, location, posted_date, source_url, description, loaded_at
		FROM jobs
		WHERE pitch_script IS NOT NULL AND length(description) > ?
		ORDER BY id`,
		minDescriptionLength,
	)
	if err != nil {
		return nil, fmt.Errorf("querying eligible jobs: %w", err)
	}
	defer rows.Close()

	var records []types.JobRecord
	for rows.Next() {
		var r types.JobRecord
		var title, company, location, postedDate, srcURL sql.NullString
		var loadedAt sql.NullTime
		if err := rows.Scan(&r.ID, &title, &company, &location, &postedDate, &srcURL, &r.RawDescription, &loadedAt); err != nil {
			return nil, fmt.Errorf("scanning job row: %w", err)
		}
		r.Title = title.String
		r.Company = company.String
		r.Location = location.String
		r.PostedDate = postedDate.String
		r.SourceURL = srcURL.String
		r.LoadedAt = loadedAt.Time
		// Rows only pass the predicate with a non-null pitch script.
		r.HasPitchScript = true
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating job rows: %w", err)
	}

	return records, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
