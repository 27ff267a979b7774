package assemble

import (
	"time"

	"github.com/google/uuid"

	"github.com/nexus/pitch-migrator/internal/types"
)

// Input carries everything the earlier stages produced for one record.
// Assemble is only called once every prior stage has succeeded.
type Input struct {
	Record       types.JobRecord
	Parsed       types.ParsedDescription
	VideoURL     string
	ThumbnailURL string
	Transcript   []types.TranscriptSegment
	OwnerID      string
	Filename     string
}

// Assemble merges the ground-truth record fields with the parsed
// description, renumbers the transcript, and produces the final document.
func Assemble(in Input) types.EnrichedDocument {
	desc := applyOverrides(in.Record, in.Parsed)

	return types.EnrichedDocument{
		ID:                  uuid.New(),
		SourceJobID:         in.Record.ID,
		Title:               desc.Title,
		VideoURL:            in.VideoURL,
		ThumbnailURL:        in.ThumbnailURL,
		JobDescription:      desc,
		Tags:                SynthesizeTags(in.Record, in.Parsed),
		OwnerID:             in.OwnerID,
		CreatedAt:           time.Now().UTC(),
		Views:               0,
		Likes:               0,
		Transcript:          RenumberSegments(in.Transcript),
		SourceVideoFilename: in.Filename,
	}
}

// applyOverrides copies the parsed description and replaces title, company,
// and location with the source record's values wherever the record has
// them. The source record is authoritative for these three fields; all
// other parsed fields pass through unchanged, with nil slices defaulted to
// empty ones.
func applyOverrides(record types.JobRecord, parsed types.ParsedDescription) types.ParsedDescription {
	desc := parsed

	if record.Title != "" {
		desc.Title = record.Title
	}
	if record.Company != "" {
		desc.Company = record.Company
	}
	if record.Location != "" {
		desc.Location = record.Location
	}

	desc.Responsibilities = emptyIfNil(desc.Responsibilities)
	desc.Requirements = emptyIfNil(desc.Requirements)
	desc.Skills = emptyIfNil(desc.Skills)
	desc.Benefits = emptyIfNil(desc.Benefits)

	return desc
}

// RenumberSegments reassigns contiguous zero-based indices in provider
// order. Provider-supplied ids are discarded.
func RenumberSegments(segments []types.TranscriptSegment) []types.TranscriptSegment {
	renumbered := make([]types.TranscriptSegment, len(segments))
	for i, seg := range segments {
		seg.Index = i
		renumbered[i] = seg
	}
	return renumbered
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
