package types

import (
	"time"

	"github.com/google/uuid"
)

// TranscriptSegment is one time-aligned span of transcribed speech.
// Index values are reassigned to a contiguous 0..n-1 sequence during
// assembly; provider-supplied ids are not trusted.
type TranscriptSegment struct {
	Index        int     `json:"index"`
	StartSeconds float64 `json:"startSeconds"`
	EndSeconds   float64 `json:"endSeconds"`
	Text         string  `json:"text"`
}

// EnrichedDocument is the write-once output of one fully processed record.
type EnrichedDocument struct {
	ID                  uuid.UUID           `json:"id"`
	SourceJobID         int64               `json:"sourceJobId"`
	Title               string              `json:"title"`
	VideoURL            string              `json:"videoUrl"`
	ThumbnailURL        string              `json:"thumbnailUrl"`
	JobDescription      ParsedDescription   `json:"jobDescription"`
	Tags                []string            `json:"tags"`
	OwnerID             string              `json:"ownerId"`
	CreatedAt           time.Time           `json:"createdAt"`
	Views               int                 `json:"views"`
	Likes               int                 `json:"likes"`
	Transcript          []TranscriptSegment `json:"transcript"`
	SourceVideoFilename string              `json:"sourceVideoFilename"`
}
