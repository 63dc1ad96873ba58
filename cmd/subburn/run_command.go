package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"subburn/internal/deps"
	"subburn/internal/logging"
	"subburn/internal/pipeline"
	"subburn/internal/runlock"
	"subburn/internal/services/ffmpeg"
	"subburn/internal/services/whisper"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Subtitle every video in the work directory",
		Long: "Transcribes each video in the work directory with Whisper, burns the\n" +
			"subtitles in with FFmpeg, and removes transcription artifacts for every\n" +
			"video that embeds successfully. Failed videos keep their artifacts on\n" +
			"disk for inspection and never interrupt the rest of the batch.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.Paths.WorkDir == "" {
				dir, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("resolve work directory: %w", err)
				}
				cfg.Paths.WorkDir = dir
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			if err := deps.Verify(cfg); err != nil {
				return err
			}

			lock, err := runlock.Acquire(cfg.Paths.WorkDir)
			if err != nil {
				return err
			}
			defer func() {
				if err := lock.Release(); err != nil {
					logger.Warn("failed to release run lock", logging.Error(err))
				}
			}()

			transcriber := whisper.NewService(whisper.Config{
				Binary:   cfg.WhisperBinary(),
				Model:    cfg.Transcription.Model,
				Language: cfg.Transcription.Language,
			})
			embedder := ffmpeg.NewService(ffmpeg.Config{
				Binary: cfg.FFmpegBinary(),
			})

			runner := pipeline.NewRunner(cfg, logger, transcriber, embedder)
			results, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s files found in %s.\n", pipeline.InputExtension, cfg.Paths.WorkDir)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderResults(results))
			return nil
		},
	}
}
