package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"subburn/internal/fileutil"
	"subburn/internal/logging"
	"subburn/internal/services/ffmpeg"
	"subburn/internal/testsupport"
)

type transcribeFunc func(ctx context.Context, videoPath string) (string, error)

func (f transcribeFunc) Transcribe(ctx context.Context, videoPath string) (string, error) {
	return f(ctx, videoPath)
}

type embedFunc func(ctx context.Context, videoPath, srtPath string) (string, error)

func (f embedFunc) Embed(ctx context.Context, videoPath, srtPath string) (string, error) {
	return f(ctx, videoPath, srtPath)
}

// writeSubtitle simulates a transcription worker writing <base>.srt plus the
// sidecar artifacts the model leaves behind.
func writeSubtitle(t *testing.T, videoPath string) string {
	t.Helper()
	base := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
	for _, ext := range IntermediateExtensions {
		testsupport.WriteFile(t, base+ext, "artifact")
	}
	return base + ".srt"
}

// writeOutput simulates ffmpeg producing the subtitled video.
func writeOutput(t *testing.T, videoPath string) string {
	t.Helper()
	out := ffmpeg.OutputPath(videoPath)
	testsupport.WriteFile(t, out, "encoded")
	return out
}

func resultsByPath(results []Result) map[string]bool {
	out := make(map[string]bool, len(results))
	for _, res := range results {
		out[res.Path] = res.Succeeded
	}
	return out
}

func TestRunProcessesAllVideosAndCleansUp(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMaxConcurrent(2))
	videoA := filepath.Join(cfg.Paths.WorkDir, "first.mp4")
	videoB := filepath.Join(cfg.Paths.WorkDir, "second.mp4")
	testsupport.WriteFile(t, videoA, "video")
	testsupport.WriteFile(t, videoB, "video")

	runner := NewRunner(cfg, logging.NewNop(),
		transcribeFunc(func(ctx context.Context, videoPath string) (string, error) {
			return writeSubtitle(t, videoPath), nil
		}),
		embedFunc(func(ctx context.Context, videoPath, srtPath string) (string, error) {
			return writeOutput(t, videoPath), nil
		}),
	)

	results, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for path, ok := range resultsByPath(results) {
		if !ok {
			t.Errorf("expected success for %s", path)
		}
	}
	for _, video := range []string{videoA, videoB} {
		if !fileutil.Exists(ffmpeg.OutputPath(video)) {
			t.Errorf("missing output for %s", video)
		}
		base := strings.TrimSuffix(video, filepath.Ext(video))
		for _, ext := range IntermediateExtensions {
			if fileutil.Exists(base + ext) {
				t.Errorf("intermediate %s should be gone after success", base+ext)
			}
		}
	}
}

func TestRunEmptyDirectoryIsNotAnError(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	runner := NewRunner(cfg, logging.NewNop(),
		transcribeFunc(func(ctx context.Context, videoPath string) (string, error) {
			t.Fatal("transcriber must not run for an empty directory")
			return "", nil
		}),
		embedFunc(func(ctx context.Context, videoPath, srtPath string) (string, error) {
			t.Fatal("embedder must not run for an empty directory")
			return "", nil
		}),
	)

	results, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %v", results)
	}
}

func TestRunIsolatesTranscriptionFailure(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMaxConcurrent(2))
	videoA := filepath.Join(cfg.Paths.WorkDir, "bad.mp4")
	videoB := filepath.Join(cfg.Paths.WorkDir, "good.mp4")
	testsupport.WriteFile(t, videoA, "video")
	testsupport.WriteFile(t, videoB, "video")

	runner := NewRunner(cfg, logging.NewNop(),
		transcribeFunc(func(ctx context.Context, videoPath string) (string, error) {
			if videoPath == videoA {
				return "", errors.New("model error")
			}
			return writeSubtitle(t, videoPath), nil
		}),
		embedFunc(func(ctx context.Context, videoPath, srtPath string) (string, error) {
			return writeOutput(t, videoPath), nil
		}),
	)

	results, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	byPath := resultsByPath(results)
	if byPath[videoA] {
		t.Fatal("expected failure for bad.mp4")
	}
	if !byPath[videoB] {
		t.Fatal("failure of one unit must not affect siblings")
	}
	if fileutil.Exists(ffmpeg.OutputPath(videoA)) {
		t.Fatal("no output expected for failed transcription")
	}
	if !fileutil.Exists(ffmpeg.OutputPath(videoB)) {
		t.Fatal("expected output for good.mp4")
	}
	baseB := strings.TrimSuffix(videoB, filepath.Ext(videoB))
	if fileutil.Exists(baseB + ".srt") {
		t.Fatal("good.mp4 intermediates should be cleaned up")
	}
}

func TestRunRetainsIntermediatesOnEmbedFailure(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMaxConcurrent(1))
	video := filepath.Join(cfg.Paths.WorkDir, "movie.mp4")
	testsupport.WriteFile(t, video, "video")

	runner := NewRunner(cfg, logging.NewNop(),
		transcribeFunc(func(ctx context.Context, videoPath string) (string, error) {
			return writeSubtitle(t, videoPath), nil
		}),
		embedFunc(func(ctx context.Context, videoPath, srtPath string) (string, error) {
			return "", errors.New("encoder produced no output")
		}),
	)

	results, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if results[0].Succeeded {
		t.Fatal("expected failure")
	}
	base := strings.TrimSuffix(video, filepath.Ext(video))
	if !fileutil.Exists(base + ".srt") {
		t.Fatal("subtitle intermediate must be retained on embed failure")
	}
	if fileutil.Exists(ffmpeg.OutputPath(video)) {
		t.Fatal("no output video expected")
	}
}

func TestRunFailsWhenTranscriberReturnsMissingPath(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	video := filepath.Join(cfg.Paths.WorkDir, "movie.mp4")
	testsupport.WriteFile(t, video, "video")

	runner := NewRunner(cfg, logging.NewNop(),
		transcribeFunc(func(ctx context.Context, videoPath string) (string, error) {
			return filepath.Join(cfg.Paths.WorkDir, "never-written.srt"), nil
		}),
		embedFunc(func(ctx context.Context, videoPath, srtPath string) (string, error) {
			t.Fatal("embedder must not run when the subtitle file is missing")
			return "", nil
		}),
	)

	results, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if results[0].Succeeded {
		t.Fatal("expected failure for phantom subtitle path")
	}
}

func TestRunConvertsPanicsToFailedOutcomes(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMaxConcurrent(2))
	videoA := filepath.Join(cfg.Paths.WorkDir, "panics.mp4")
	videoB := filepath.Join(cfg.Paths.WorkDir, "fine.mp4")
	testsupport.WriteFile(t, videoA, "video")
	testsupport.WriteFile(t, videoB, "video")

	runner := NewRunner(cfg, logging.NewNop(),
		transcribeFunc(func(ctx context.Context, videoPath string) (string, error) {
			if videoPath == videoA {
				panic("model blew up")
			}
			return writeSubtitle(t, videoPath), nil
		}),
		embedFunc(func(ctx context.Context, videoPath, srtPath string) (string, error) {
			return writeOutput(t, videoPath), nil
		}),
	)

	results, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	byPath := resultsByPath(results)
	if byPath[videoA] {
		t.Fatal("panicking unit must report failure")
	}
	if !byPath[videoB] {
		t.Fatal("sibling unit must complete despite the panic")
	}
}

func TestRunRespectsConcurrencyBound(t *testing.T) {
	const capacity = 2
	cfg := testsupport.NewConfig(t, testsupport.WithMaxConcurrent(capacity))
	for _, name := range []string{"a.mp4", "b.mp4", "c.mp4", "d.mp4", "e.mp4"} {
		testsupport.WriteFile(t, filepath.Join(cfg.Paths.WorkDir, name), "video")
	}

	var current, peak atomic.Int64
	runner := NewRunner(cfg, logging.NewNop(),
		transcribeFunc(func(ctx context.Context, videoPath string) (string, error) {
			now := current.Add(1)
			defer current.Add(-1)
			for {
				prev := peak.Load()
				if now <= prev || peak.CompareAndSwap(prev, now) {
					break
				}
			}
			return writeSubtitle(t, videoPath), nil
		}),
		embedFunc(func(ctx context.Context, videoPath, srtPath string) (string, error) {
			return writeOutput(t, videoPath), nil
		}),
	)

	if runner.Capacity() != capacity {
		t.Fatalf("Capacity = %d, want %d", runner.Capacity(), capacity)
	}
	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := peak.Load(); got > capacity {
		t.Fatalf("observed %d concurrent transcriptions, bound is %d", got, capacity)
	}
}
