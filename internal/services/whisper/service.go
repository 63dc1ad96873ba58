package whisper

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	langpkg "subburn/internal/language"
	"subburn/internal/services"
	"subburn/internal/subtitles"
)

// Config controls how the Whisper CLI is invoked.
type Config struct {
	// Binary is the whisper executable name. Empty means "whisper".
	Binary string
	// Model is the Whisper model size (tiny, base, small, medium, large).
	Model string
	// Language is the language hint, as an ISO code or English name.
	Language string
}

// Service runs Whisper transcription in an isolated OS process. The model is
// CPU and memory heavy; a crash inside it must not take down the
// orchestrating process, so it never runs in-process.
type Service struct {
	cfg           Config
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewService creates a Whisper service with the given configuration.
func NewService(cfg Config) *Service {
	if cfg.Binary == "" {
		cfg.Binary = DefaultBinary
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &Service{cfg: cfg}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	s.commandRunner = runner
}

// Model returns the configured model name for logging.
func (s *Service) Model() string {
	return s.cfg.Model
}

// Transcribe turns one video file into an SRT subtitle file. It invokes the
// Whisper CLI in translate mode with JSON output, reads back the segment
// list, and writes <base>.srt next to the source through the SRT encoder.
// Returns the subtitle path.
func (s *Service) Transcribe(ctx context.Context, source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", services.Wrap(services.ErrConfiguration, "transcribe", "", "source path required", nil)
	}

	outputDir := filepath.Dir(source)
	if err := s.run(ctx, s.cfg.Binary, s.buildArgs(source, outputDir)...); err != nil {
		return "", services.Wrap(services.ErrExternalTool, "transcribe", "run whisper", "", err)
	}

	base := strings.TrimSuffix(source, filepath.Ext(source))
	segments, err := LoadSegments(base + ".json")
	if err != nil {
		return "", services.Wrap(services.ErrExternalTool, "transcribe", "read whisper output", "", err)
	}

	srtPath := base + ".srt"
	if err := subtitles.WriteFile(srtPath, segments); err != nil {
		return "", services.Wrap(services.ErrExternalTool, "transcribe", "write subtitle file", "", err)
	}
	return srtPath, nil
}

// buildArgs constructs the Whisper CLI arguments. Task mode is always
// "translate": output text is English regardless of the source audio.
func (s *Service) buildArgs(source, outputDir string) []string {
	args := []string{
		source,
		"--model", s.cfg.Model,
		"--task", TaskTranslate,
		"--output_format", OutputFormat,
		"--output_dir", outputDir,
	}
	if lang := langpkg.DisplayName(s.cfg.Language); lang != "" {
		args = append(args, "--language", lang)
	}
	return args
}

func (s *Service) run(ctx context.Context, name string, args ...string) error {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}
