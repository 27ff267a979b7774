// Package docstore persists enriched documents to the target PostgreSQL
// store.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nexus/pitch-migrator/internal/types"
)

// Store wraps the target-store connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the target store and verifies
// it. A failure here is fatal to the run.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to target store: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping target store: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InsertDocument writes one enriched document. This is a plain insert with
// no existence check: reprocessing the same source id produces a second
// independent document.
func (s *Store) InsertDocument(ctx context.Context, doc types.EnrichedDocument) error {
	descJSON, err := json.Marshal(doc.JobDescription)
	if err != nil {
		return fmt.Errorf("failed to marshal job description: %w", err)
	}
	transcriptJSON, err := json.Marshal(doc.Transcript)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO job_videos
		   (id, source_job_id, owner_id, title, video_url, thumbnail_url,
		    description, tags, transcript, source_video_filename,
		    views, likes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		doc.ID, doc.SourceJobID, doc.OwnerID, doc.Title, doc.VideoURL, doc.ThumbnailURL,
		descJSON, doc.Tags, transcriptJSON, doc.SourceVideoFilename,
		doc.Views, doc.Likes, doc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert document for job %d: %w", doc.SourceJobID, err)
	}

	return nil
}
