// Package transcribe obtains time-aligned transcripts from the
// speech-to-text provider.
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/nexus/pitch-migrator/internal/types"
)

// callTimeout bounds one transcription call end to end. The pipeline does
// not retry a timed-out transcription; the record is skipped.
const callTimeout = 30 * time.Second

// Client talks to a Whisper-compatible transcription endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// Result is a completed transcription: the full text plus the provider's
// segments in provider time order. Segment indices are provider-supplied
// and reassigned during assembly.
type Result struct {
	Text     string
	Segments []types.TranscriptSegment
}

// apiResponse mirrors the verbose_json response shape.
type apiResponse struct {
	Text     string `json:"text"`
	Segments []struct {
		ID    int     `json:"id"`
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// NewClient creates a transcription client for the given endpoint.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: callTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      "whisper-1",
	}
}

// Transcribe uploads the audio bytes and returns the transcript with
// time-aligned segments. The whole call, including transport retries on
// transient server errors, is bounded by a 30 second deadline.
func (c *Client) Transcribe(ctx context.Context, audio []byte, filename string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("building transcription request: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, fmt.Errorf("building transcription request: %w", err)
	}
	_ = w.WriteField("model", c.model)
	_ = w.WriteField("response_format", "verbose_json")
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("building transcription request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/transcriptions", &body)
	if err != nil {
		return nil, fmt.Errorf("building transcription request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	var resp apiResponse
	if err := c.doJSON(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("transcription call failed: %w", err)
	}

	result := &Result{Text: resp.Text}
	for _, s := range resp.Segments {
		result.Segments = append(result.Segments, types.TranscriptSegment{
			Index:        s.ID,
			StartSeconds: s.Start,
			EndSeconds:   s.End,
			Text:         strings.TrimSpace(s.Text),
		})
	}

	return result, nil
}

// doJSON performs the request with bounded retries on transient server
// errors. Retries stop at the context deadline, so the 30 second cap holds.
func (c *Client) doJSON(ctx context.Context, req *http.Request, target any) error {
	// The multipart body can only be read once, so buffer it for replays.
	var payload []byte
	if req.Body != nil {
		var err error
		payload, err = io.ReadAll(req.Body)
		if err != nil {
			return fmt.Errorf("buffering request body: %w", err)
		}
	}

	bo := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)

	var lastErr error
	op := func() error {
		attempt := req.Clone(ctx)
		attempt.Body = io.NopCloser(bytes.NewReader(payload))

		resp, err := c.httpClient.Do(attempt)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error: status=%d body=%s", resp.StatusCode, string(body))
			return lastErr
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("provider error: status=%d body=%s", resp.StatusCode, string(body))
			return backoff.Permanent(lastErr)
		}
		if err := json.Unmarshal(body, target); err != nil {
			lastErr = fmt.Errorf("decoding response: %w", err)
			return backoff.Permanent(lastErr)
		}
		return nil
	}

	if err := backoff.Retry(op, bo); err != nil {
		if lastErr != nil {
			return lastErr
		}
		return err
	}
	return nil
}
