package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// thumbnailOffsetSeconds is where the representative frame is grabbed.
// One second in skips lead-in black frames on most pitch videos.
const thumbnailOffsetSeconds = "1"

// ExtractThumbnail decodes the video at path and returns a single JPEG
// frame taken one second in. A decode failure is a stage failure for the
// record being processed.
func ExtractThumbnail(ctx context.Context, videoPath string) ([]byte, error) {
	tmp, err := tempPath("thumb-*.jpg")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp)

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-ss", thumbnailOffsetSeconds,
		"-i", videoPath,
		"-frames:v", "1",
		"-f", "image2",
		"-c:v", "mjpeg",
		"-y", tmp,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg thumbnail extraction failed: %w, stderr: %s", err, stderr.String())
	}

	frame, err := os.ReadFile(tmp)
	if err != nil {
		return nil, fmt.Errorf("reading extracted frame: %w", err)
	}
	if len(frame) == 0 {
		return nil, fmt.Errorf("ffmpeg produced an empty frame for %s", videoPath)
	}

	return frame, nil
}

// ExtractAudio converts the video's audio track to mono 16kHz MP3, the
// format the transcription provider expects, and returns the bytes.
func ExtractAudio(ctx context.Context, videoPath string) ([]byte, error) {
	tmp, err := tempPath("audio-*.mp3")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp)

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-i", videoPath,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-f", "mp3",
		"-y", tmp,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg audio extraction failed: %w, stderr: %s", err, stderr.String())
	}

	audio, err := os.ReadFile(tmp)
	if err != nil {
		return nil, fmt.Errorf("reading extracted audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("ffmpeg produced an empty audio track for %s", videoPath)
	}

	return audio, nil
}

// tempPath reserves a unique temp file path and closes the handle; ffmpeg
// opens the path itself with -y.
func tempPath(pattern string) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	return filepath.Clean(name), nil
}
