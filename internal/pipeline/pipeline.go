// Package pipeline drives each eligible job record through the enrichment
// stages, isolating per-record failures and accounting for the run.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/nexus/pitch-migrator/internal/assemble"
	"github.com/nexus/pitch-migrator/internal/logger"
	"github.com/nexus/pitch-migrator/internal/media"
	"github.com/nexus/pitch-migrator/internal/transcribe"
	"github.com/nexus/pitch-migrator/internal/types"
)

// State names the position of a record in the stage chain. Records advance
// strictly in order; Skipped is reachable from any non-terminal state.
type State string

// Record states, in stage order.
const (
	StatePending       State = "pending"
	StateLocated       State = "located"
	StateMediaUploaded State = "media_uploaded"
	StateTranscribed   State = "transcribed"
	StateParsed        State = "parsed"
	StateAssembled     State = "assembled"
	StateWritten       State = "written"
	StateSkipped       State = "skipped"
)

// SourceReader yields the eligible records for the run.
type SourceReader interface {
	ListEligible(ctx context.Context) ([]types.JobRecord, error)
}

// Uploader pushes media bytes to blob storage and returns durable read URLs.
type Uploader interface {
	UploadVideo(ctx context.Context, ownerID, filename string, content []byte, contentType string) (string, error)
	UploadThumbnail(ctx context.Context, ownerID string, recordID int64, content []byte) (string, error)
}

// Transcriber obtains a time-aligned transcript for extracted audio.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (*transcribe.Result, error)
}

// DescriptionParser turns raw description text into structured fields.
type DescriptionParser interface {
	Parse(ctx context.Context, rawText string) (*types.ParsedDescription, error)
}

// DocumentWriter persists one assembled document.
type DocumentWriter interface {
	InsertDocument(ctx context.Context, doc types.EnrichedDocument) error
}

// Orchestrator holds the stage collaborators, constructed once at process
// start so tests can substitute fakes without touching process-wide state.
type Orchestrator struct {
	Source SourceReader
	Blob   Uploader
	Speech Transcriber
	Parser DescriptionParser
	Docs   DocumentWriter
	Log    *logger.Logger

	// Media hooks default to the ffmpeg-backed implementations.
	LocateVideo      func(dir string, recordID int64) (*media.VideoAsset, error)
	ExtractThumbnail func(ctx context.Context, videoPath string) ([]byte, error)
	ExtractAudio     func(ctx context.Context, videoPath string) ([]byte, error)

	OwnerID  string
	VideoDir string
}

// Summary is the run accounting for one pipeline invocation.
type Summary struct {
	Processed int
	Skipped   int
	Total     int
}

// stageError tags a failure with the stage it happened in. Per-record
// failures never propagate past the record boundary.
type stageError struct {
	stage State
	err   error
}

func (e *stageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.stage, e.err)
}

func (e *stageError) Unwrap() error {
	return e.err
}

func failAt(stage State, err error) *stageError {
	return &stageError{stage: stage, err: err}
}

// Run drives every eligible record through the stage chain sequentially.
// A stage failure skips only that record; the run continues. Only the
// source query itself is fatal.
func (o *Orchestrator) Run(ctx context.Context) (Summary, error) {
	o.applyDefaults()

	records, err := o.Source.ListEligible(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("listing eligible records: %w", err)
	}

	summary := Summary{Total: len(records)}
	fmt.Printf("Found %d eligible records for owner %s\n\n", len(records), o.OwnerID)

	for _, record := range records {
		start := time.Now()
		log := o.Log.WithRecord(record.ID)

		if serr := o.processRecord(ctx, record); serr != nil {
			summary.Skipped++
			log.WithFields(map[string]any{
				"stage": string(serr.stage),
				"error": serr.err.Error(),
			}).Warn("record skipped")
			continue
		}

		summary.Processed++
		log.WithField("elapsed", time.Since(start).Round(time.Millisecond).String()).
			Info("record processed")
	}

	printSummary(summary)
	return summary, nil
}

// processRecord runs one record through the chain. The returned stageError
// names the stage that failed; nil means the record reached StateWritten.
func (o *Orchestrator) processRecord(ctx context.Context, record types.JobRecord) *stageError {
	// Pending -> Located
	asset, err := o.LocateVideo(o.VideoDir, record.ID)
	if err != nil {
		return failAt(StateLocated, err)
	}

	// Located -> MediaUploaded
	thumbnail, err := o.ExtractThumbnail(ctx, asset.Path)
	if err != nil {
		return failAt(StateMediaUploaded, err)
	}
	videoURL, err := o.Blob.UploadVideo(ctx, o.OwnerID, asset.Filename, asset.Content, asset.MimeType)
	if err != nil {
		return failAt(StateMediaUploaded, err)
	}
	thumbnailURL, err := o.Blob.UploadThumbnail(ctx, o.OwnerID, record.ID, thumbnail)
	if err != nil {
		// The video upload succeeded, but no document is assembled with a
		// lone URL; the record fails as a unit.
		return failAt(StateMediaUploaded, err)
	}

	// MediaUploaded -> Transcribed
	audio, err := o.ExtractAudio(ctx, asset.Path)
	if err != nil {
		return failAt(StateTranscribed, err)
	}
	transcript, err := o.Speech.Transcribe(ctx, audio, asset.Filename)
	if err != nil {
		return failAt(StateTranscribed, err)
	}

	// Transcribed -> Parsed
	parsed, err := o.Parser.Parse(ctx, record.RawDescription)
	if err != nil {
		return failAt(StateParsed, err)
	}

	// Parsed -> Assembled
	doc := assemble.Assemble(assemble.Input{
		Record:       record,
		Parsed:       *parsed,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		Transcript:   transcript.Segments,
		OwnerID:      o.OwnerID,
		Filename:     asset.Filename,
	})

	// Assembled -> Written
	if err := o.Docs.InsertDocument(ctx, doc); err != nil {
		return failAt(StateWritten, err)
	}

	o.Log.WithRecord(record.ID).WithField("document_id", doc.ID.String()).
		Info("stored enriched document")
	return nil
}

func printSummary(s Summary) {
	fmt.Println()
	fmt.Println("=== Migration Summary ===")
	fmt.Printf("  Processed: %d\n", s.Processed)
	fmt.Printf("  Skipped:   %d\n", s.Skipped)
	fmt.Printf("  Total:     %d\n", s.Total)
}

func (o *Orchestrator) applyDefaults() {
	if o.LocateVideo == nil {
		o.LocateVideo = media.LocateVideo
	}
	if o.ExtractThumbnail == nil {
		o.ExtractThumbnail = media.ExtractThumbnail
	}
	if o.ExtractAudio == nil {
		o.ExtractAudio = media.ExtractAudio
	}
	if o.Log == nil {
		o.Log = logger.New()
	}
}
