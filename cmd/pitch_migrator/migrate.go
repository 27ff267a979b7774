package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexus/pitch-migrator/internal/blob"
	"github.com/nexus/pitch-migrator/internal/config"
	"github.com/nexus/pitch-migrator/internal/docstore"
	"github.com/nexus/pitch-migrator/internal/llm"
	"github.com/nexus/pitch-migrator/internal/logger"
	"github.com/nexus/pitch-migrator/internal/parsing"
	"github.com/nexus/pitch-migrator/internal/pipeline"
	"github.com/nexus/pitch-migrator/internal/source"
	"github.com/nexus/pitch-migrator/internal/transcribe"
)

var (
	useOpenAI bool
	videoDir  string
	jobsDB    string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <ownerID>",
	Short: "Run the enrichment pipeline for one owner",
	Long: "migrate reads every eligible job record, enriches it with video, thumbnail,\n" +
		"transcript, and a structured description, and writes one document per record\n" +
		"to the target store under the given owner.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd.Context(), args[0])
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&useOpenAI, "use-openai", false, "Use the OpenAI extraction backend instead of Gemini")
	migrateCmd.Flags().StringVar(&videoDir, "video-dir", "", "Directory holding the source pitch videos (overrides VIDEO_DIR)")
	migrateCmd.Flags().StringVar(&jobsDB, "jobs-db", "", "Path to the local jobs database (overrides JOBS_DB_PATH)")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(ctx context.Context, ownerID string) error {
	cfg := config.Load()
	if useOpenAI {
		cfg.Backend = config.BackendOpenAI
	}
	if videoDir != "" {
		cfg.VideoDir = videoDir
	}
	if jobsDB != "" {
		cfg.JobsDBPath = jobsDB
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New()
	log.WithField("backend", cfg.Backend).Info("starting migration")

	src, err := source.Open(cfg.JobsDBPath)
	if err != nil {
		return fmt.Errorf("opening jobs database: %w", err)
	}
	defer src.Close()

	docs, err := docstore.Connect(ctx, cfg.TargetDBURL)
	if err != nil {
		return fmt.Errorf("connecting to document store: %w", err)
	}
	defer docs.Close()

	store, err := blob.New(ctx, &blob.Config{
		Endpoint:  cfg.BlobEndpoint,
		AccessKey: cfg.BlobAccessKey,
		SecretKey: cfg.BlobSecretKey,
		Bucket:    cfg.BlobBucket,
		UseSSL:    cfg.BlobUseSSL,
	})
	if err != nil {
		return fmt.Errorf("connecting to blob store: %w", err)
	}

	llmCfg := llm.DefaultConfig()
	if cfg.Backend == config.BackendOpenAI {
		llmCfg = llm.OpenAIConfig()
	}
	client, err := llm.NewClient(ctx, llmCfg, cfg.ExtractionAPIKey())
	if err != nil {
		return fmt.Errorf("creating extraction client: %w", err)
	}
	defer client.Close()

	orch := &pipeline.Orchestrator{
		Source:   src,
		Blob:     store,
		Speech:   transcribe.NewClient(cfg.TranscribeAPIURL, cfg.TranscribeAPIKey),
		Parser:   &parsing.Parser{Client: client},
		Docs:     docs,
		Log:      log,
		OwnerID:  ownerID,
		VideoDir: cfg.VideoDir,
	}

	if _, err := orch.Run(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
