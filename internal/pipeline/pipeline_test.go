package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus/pitch-migrator/internal/media"
	"github.com/nexus/pitch-migrator/internal/transcribe"
	"github.com/nexus/pitch-migrator/internal/types"
)

type fakeSource struct {
	records []types.JobRecord
	err     error
}

func (f *fakeSource) ListEligible(context.Context) ([]types.JobRecord, error) {
	return f.records, f.err
}

type fakeBlob struct {
	videoErr     error
	thumbnailErr error
	videoCalls   int
}

func (f *fakeBlob) UploadVideo(_ context.Context, ownerID, filename string, _ []byte, _ string) (string, error) {
	f.videoCalls++
	if f.videoErr != nil {
		return "", f.videoErr
	}
	return fmt.Sprintf("https://blob/videos/%s/%s", ownerID, filename), nil
}

func (f *fakeBlob) UploadThumbnail(_ context.Context, ownerID string, recordID int64, _ []byte) (string, error) {
	if f.thumbnailErr != nil {
		return "", f.thumbnailErr
	}
	return fmt.Sprintf("https://blob/thumbnails/%s/%d/thumbnail.jpg", ownerID, recordID), nil
}

type fakeSpeech struct {
	err error
}

func (f *fakeSpeech) Transcribe(context.Context, []byte, string) (*transcribe.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &transcribe.Result{
		Text: "hello world",
		Segments: []types.TranscriptSegment{
			{Index: 3, StartSeconds: 0, EndSeconds: 2, Text: "hello world"},
		},
	}, nil
}

type fakeParser struct {
	err error
}

func (f *fakeParser) Parse(context.Context, string) (*types.ParsedDescription, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &types.ParsedDescription{Title: "Engineer"}, nil
}

type fakeDocs struct {
	err  error
	docs []types.EnrichedDocument
}

func (f *fakeDocs) InsertDocument(_ context.Context, doc types.EnrichedDocument) error {
	if f.err != nil {
		return f.err
	}
	f.docs = append(f.docs, doc)
	return nil
}

// withVideos returns a LocateVideo hook that knows the given record ids.
func withVideos(ids ...int64) func(string, int64) (*media.VideoAsset, error) {
	known := make(map[int64]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	return func(dir string, recordID int64) (*media.VideoAsset, error) {
		if !known[recordID] {
			return nil, fmt.Errorf("record %d: %w", recordID, media.ErrNoVideo)
		}
		name := fmt.Sprintf("%d.mp4", recordID)
		return &media.VideoAsset{
			Path:     dir + "/" + name,
			Filename: name,
			Content:  []byte("video"),
			MimeType: "video/mp4",
		}, nil
	}
}

func records(ids ...int64) []types.JobRecord {
	out := make([]types.JobRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, types.JobRecord{
			ID:             id,
			Title:          fmt.Sprintf("Job %d", id),
			RawDescription: "long description text",
		})
	}
	return out
}

func newTestOrchestrator(src *fakeSource, docs *fakeDocs) *Orchestrator {
	return &Orchestrator{
		Source:           src,
		Blob:             &fakeBlob{},
		Speech:           &fakeSpeech{},
		Parser:           &fakeParser{},
		Docs:             docs,
		OwnerID:          "owner-1",
		VideoDir:         "/videos",
		LocateVideo:      withVideos(),
		ExtractThumbnail: func(context.Context, string) ([]byte, error) { return []byte("jpeg"), nil },
		ExtractAudio:     func(context.Context, string) ([]byte, error) { return []byte("mp3"), nil },
	}
}

func TestRun_AllRecordsSucceed(t *testing.T) {
	docs := &fakeDocs{}
	o := newTestOrchestrator(&fakeSource{records: records(1, 2, 3)}, docs)
	o.LocateVideo = withVideos(1, 2, 3)

	summary, err := o.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Summary{Processed: 3, Skipped: 0, Total: 3}, summary)
	require.Len(t, docs.docs, 3)
}

func TestRun_MissingVideoSkipsRecord(t *testing.T) {
	docs := &fakeDocs{}
	o := newTestOrchestrator(&fakeSource{records: records(1, 2, 3)}, docs)
	o.LocateVideo = withVideos(1, 3)

	summary, err := o.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Summary{Processed: 2, Skipped: 1, Total: 3}, summary)
	require.Len(t, docs.docs, 2)
	assert.Equal(t, int64(1), docs.docs[0].SourceJobID)
	assert.Equal(t, int64(3), docs.docs[1].SourceJobID)
}

func TestRun_StageFailureDoesNotStopLaterRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Orchestrator)
	}{
		{"thumbnail extraction fails", func(o *Orchestrator) {
			o.ExtractThumbnail = func(context.Context, string) ([]byte, error) {
				return nil, errors.New("ffmpeg exited 1")
			}
		}},
		{"video upload fails", func(o *Orchestrator) {
			o.Blob = &fakeBlob{videoErr: errors.New("connection refused")}
		}},
		{"thumbnail upload fails", func(o *Orchestrator) {
			o.Blob = &fakeBlob{thumbnailErr: errors.New("connection refused")}
		}},
		{"audio extraction fails", func(o *Orchestrator) {
			o.ExtractAudio = func(context.Context, string) ([]byte, error) {
				return nil, errors.New("ffmpeg exited 1")
			}
		}},
		{"transcription fails", func(o *Orchestrator) {
			o.Speech = &fakeSpeech{err: errors.New("deadline exceeded")}
		}},
		{"parsing fails", func(o *Orchestrator) {
			o.Parser = &fakeParser{err: errors.New("all passes exhausted")}
		}},
		{"insert fails", func(o *Orchestrator) {
			o.Docs = &fakeDocs{err: errors.New("connection reset")}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOrchestrator(&fakeSource{records: records(1, 2)}, &fakeDocs{})
			o.LocateVideo = withVideos(1, 2)
			tt.mutate(o)

			summary, err := o.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, Summary{Processed: 0, Skipped: 2, Total: 2}, summary)
		})
	}
}

func TestRun_SourceErrorIsFatal(t *testing.T) {
	o := newTestOrchestrator(&fakeSource{err: errors.New("database is locked")}, &fakeDocs{})

	_, err := o.Run(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "database is locked")
}

func TestRun_NoEligibleRecords(t *testing.T) {
	docs := &fakeDocs{}
	o := newTestOrchestrator(&fakeSource{}, docs)

	summary, err := o.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
	assert.Empty(t, docs.docs)
}

func TestRun_DocumentCarriesStageOutputs(t *testing.T) {
	docs := &fakeDocs{}
	o := newTestOrchestrator(&fakeSource{records: records(42)}, docs)
	o.LocateVideo = withVideos(42)

	_, err := o.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, docs.docs, 1)

	doc := docs.docs[0]
	assert.Equal(t, "https://blob/videos/owner-1/42.mp4", doc.VideoURL)
	assert.Equal(t, "https://blob/thumbnails/owner-1/42/thumbnail.jpg", doc.ThumbnailURL)
	assert.Equal(t, "Job 42", doc.Title)
	assert.Equal(t, "owner-1", doc.OwnerID)
	assert.Equal(t, "42.mp4", doc.SourceVideoFilename)
	require.Len(t, doc.Transcript, 1)
	assert.Equal(t, 0, doc.Transcript[0].Index)
}
