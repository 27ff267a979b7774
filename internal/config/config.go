// Package config provides environment configuration loading and validation
// for the migration CLI.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Extraction backend names selectable from the CLI.
const (
	BackendGemini = "gemini"
	BackendOpenAI = "openai"
)

// Config holds everything the pipeline needs from the environment. Credential
// fields are validated at startup; a missing credential aborts the run before
// any record is processed.
type Config struct {
	// Target document store
	TargetDBURL string `validate:"required"`

	// Blob store
	BlobEndpoint  string `validate:"required"`
	BlobAccessKey string `validate:"required"`
	BlobSecretKey string `validate:"required"`
	BlobBucket    string `validate:"required"`
	BlobUseSSL    bool

	// Speech-to-text provider
	TranscribeAPIURL string `validate:"required,url"`
	TranscribeAPIKey string `validate:"required"`

	// Structured-extraction provider. Backend decides which key is required.
	Backend      string `validate:"required,oneof=gemini openai"`
	GeminiAPIKey string
	OpenAIAPIKey string

	// Local inputs
	JobsDBPath string `validate:"required"`
	VideoDir   string `validate:"required"`
}

// Defaults for optional environment variables.
const (
	defaultBucket        = "pitch-media"
	defaultTranscribeURL = "https://api.openai.com/v1"
	defaultJobsDBPath    = "./jobs.db"
	defaultVideoDir      = "./videos"
)

// Load reads the configuration from the environment. It does not validate;
// call Validate after applying CLI flag overrides.
func Load() *Config {
	cfg := &Config{
		TargetDBURL:      os.Getenv("TARGET_DB_URL"),
		BlobEndpoint:     os.Getenv("BLOB_ENDPOINT"),
		BlobAccessKey:    os.Getenv("BLOB_ACCESS_KEY"),
		BlobSecretKey:    os.Getenv("BLOB_SECRET_KEY"),
		BlobBucket:       getenvDefault("BLOB_BUCKET", defaultBucket),
		TranscribeAPIURL: getenvDefault("TRANSCRIBE_API_URL", defaultTranscribeURL),
		TranscribeAPIKey: os.Getenv("TRANSCRIBE_API_KEY"),
		Backend:          BackendGemini,
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		JobsDBPath:       getenvDefault("JOBS_DB_PATH", defaultJobsDBPath),
		VideoDir:         getenvDefault("VIDEO_DIR", defaultVideoDir),
	}

	if v, err := strconv.ParseBool(os.Getenv("BLOB_USE_SSL")); err == nil {
		cfg.BlobUseSSL = v
	}

	return cfg
}

// Validate checks that every credential the selected backends need is
// present. This is the single fatal-configuration gate for the run.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	switch c.Backend {
	case BackendGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("config validation failed: GEMINI_API_KEY is required for the gemini backend")
		}
	case BackendOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("config validation failed: OPENAI_API_KEY is required for the openai backend")
		}
	}

	return nil
}

// ExtractionAPIKey returns the API key for the selected extraction backend.
func (c *Config) ExtractionAPIKey() string {
	if c.Backend == BackendOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
