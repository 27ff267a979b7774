// Package media locates source videos and derives thumbnail and audio
// assets from them using ffmpeg.
package media

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// ErrNoVideo is returned when no video file in the directory matches the
// record id. Callers treat it as a per-record skip, not a run failure.
var ErrNoVideo = errors.New("no matching video file")

// videoNamePattern matches files named by the numeric-id convention,
// e.g. 42.mp4, 7.mov.
var videoNamePattern = regexp.MustCompile(`^(\d+)\.(mp4|mov|avi)$`)

// mimeTypes maps the accepted extensions to their content types.
var mimeTypes = map[string]string{
	"mp4": "video/mp4",
	"mov": "video/quicktime",
	"avi": "video/x-msvideo",
}

// VideoAsset is a located source video, read once per record and discarded
// after upload.
type VideoAsset struct {
	Path     string
	Filename string
	Content  []byte
	MimeType string
}

// LocateVideo scans dir for a file whose numeric name equals recordID.
// Directory entries are name-sorted, so the first match is deterministic
// within a run. Returns ErrNoVideo when nothing matches.
func LocateVideo(dir string, recordID int64) (*VideoAsset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading video directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := videoNamePattern.FindStringSubmatch(entry.Name())
		if m == nil || m[1] != strconv.FormatInt(recordID, 10) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading video %s: %w", path, err)
		}

		return &VideoAsset{
			Path:     path,
			Filename: entry.Name(),
			Content:  content,
			MimeType: mimeTypes[m[2]],
		}, nil
	}

	return nil, fmt.Errorf("record %d in %s: %w", recordID, dir, ErrNoVideo)
}
