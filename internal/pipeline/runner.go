package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"subburn/internal/config"
	"subburn/internal/fileutil"
	"subburn/internal/logging"
)

// Transcriber produces a subtitle file for a video. Implementations run the
// speech-to-text model in an isolated OS process.
type Transcriber interface {
	Transcribe(ctx context.Context, videoPath string) (string, error)
}

// Embedder burns a subtitle file into its video and returns the output path.
type Embedder interface {
	Embed(ctx context.Context, videoPath, srtPath string) (string, error)
}

// Result is the per-file outcome of a batch run.
type Result struct {
	Path      string
	Succeeded bool
}

// Runner coordinates the batch: discovery, the concurrency gate, the
// transcription worker pool, per-file stage sequencing, failure isolation,
// and conditional cleanup.
type Runner struct {
	cfg         *config.Config
	logger      *slog.Logger
	transcriber Transcriber
	embedder    Embedder
	runID       string
	capacity    int
}

// NewRunner constructs a runner. A MaxConcurrent of zero in the config
// selects min(logical CPUs, 6).
func NewRunner(cfg *config.Config, logger *slog.Logger, transcriber Transcriber, embedder Embedder) *Runner {
	capacity := cfg.Workflow.MaxConcurrent
	if capacity <= 0 {
		capacity = DefaultCapacity()
	}
	runID := uuid.NewString()
	return &Runner{
		cfg: cfg,
		logger: logging.NewComponentLogger(logger, "pipeline").
			With(logging.String(logging.FieldRunID, runID)),
		transcriber: transcriber,
		embedder:    embedder,
		runID:       runID,
		capacity:    capacity,
	}
}

// RunID identifies this batch in log output.
func (r *Runner) RunID() string { return r.runID }

// Capacity returns the effective concurrency bound.
func (r *Runner) Capacity() int { return r.capacity }

// Run processes every input video in the work directory and returns one
// outcome per input. An empty directory is not an error: it returns an empty
// result after a user-visible notice. Per-file failures never abort sibling
// units; the only errors returned here are discovery failures.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	dir := r.cfg.Paths.WorkDir
	if dir == "" {
		dir = "."
	}
	inputs, err := Discover(dir)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		r.logger.Info("no input videos found",
			logging.String(logging.FieldEventType, "run_empty"),
			logging.String("dir", dir),
			logging.String("extension", InputExtension),
		)
		return nil, nil
	}

	r.logger.Info("starting batch",
		logging.String(logging.FieldEventType, "run_start"),
		logging.Int("videos", len(inputs)),
		logging.Int("max_concurrent", r.capacity),
	)

	// Two parallelism domains with one shared size: the gate bounds how many
	// videos are in flight end to end, the pool bounds how many transcription
	// worker processes run at once. Sizing them apart would either idle
	// workers or oversubscribe the CPU.
	gate := NewGate(r.capacity)
	pool := NewGate(r.capacity)

	results := make([]Result, len(inputs))
	var wg sync.WaitGroup
	for i, input := range inputs {
		wg.Add(1)
		go func(i int, source string) {
			defer wg.Done()
			results[i] = Result{Path: source, Succeeded: r.processVideo(ctx, gate, pool, source)}
		}(i, input)
	}
	wg.Wait()

	succeeded := 0
	for _, res := range results {
		if res.Succeeded {
			succeeded++
		}
	}
	r.logger.Info("batch finished",
		logging.String(logging.FieldEventType, "run_complete"),
		logging.Int("videos", len(inputs)),
		logging.Int("succeeded", succeeded),
		logging.Int("failed", len(inputs)-succeeded),
	)
	return results, nil
}

// processVideo drives one task through Transcribe -> Embed -> Cleanup. Every
// fault, including panics from a stage implementation, is converted to a
// false outcome here so it can never reach the WaitGroup join.
func (r *Runner) processVideo(ctx context.Context, gate, pool *Gate, source string) (ok bool) {
	logger := r.logger.With(logging.String(logging.FieldSource, source))
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("panic while processing video",
				logging.String(logging.FieldEventType, "unit_panic"),
				logging.Any("panic", rec),
			)
			ok = false
		}
	}()

	if err := gate.Acquire(ctx); err != nil {
		logger.Error("abandoned before start", logging.Error(err))
		return false
	}
	defer gate.Release()

	task := newTask(source)
	logger.Info("processing video", logging.String(logging.FieldEventType, "unit_start"))

	task.Status = StatusTranscribing
	srtPath, err := r.transcribe(ctx, pool, source)
	if err == nil && !fileutil.Exists(srtPath) {
		err = errNoSubtitleFile(srtPath)
	}
	if err != nil {
		task.setFailed(err)
		logger.Error("transcription failed",
			logging.String(logging.FieldEventType, "transcription_failed"),
			logging.Error(err),
		)
		return false
	}
	task.SubtitlePath = srtPath
	task.Status = StatusTranscribed
	logger.Info("subtitle file generated",
		logging.String(logging.FieldEventType, "subtitle_generated"),
		logging.String("subtitle", srtPath),
	)

	task.Status = StatusEmbedding
	outputPath, err := r.embedder.Embed(ctx, source, srtPath)
	if err != nil {
		task.setFailed(err)
		logger.Error("embedding failed; intermediates retained for inspection",
			logging.String(logging.FieldEventType, "embedding_failed"),
			logging.Error(err),
		)
		return false
	}
	task.OutputPath = outputPath
	task.Status = StatusEmbedded

	Cleanup(logger, source)
	logger.Info("subtitled video saved",
		logging.String(logging.FieldEventType, "unit_complete"),
		logging.String("output", outputPath),
	)
	return true
}

// transcribe runs the transcription stage under the worker pool bound.
func (r *Runner) transcribe(ctx context.Context, pool *Gate, source string) (string, error) {
	if err := pool.Acquire(ctx); err != nil {
		return "", err
	}
	defer pool.Release()
	return r.transcriber.Transcribe(ctx, source)
}
