package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"subburn/internal/fileutil"
	"subburn/internal/services"
	"subburn/internal/textutil"
)

const (
	// DefaultBinary is the video encoder executable name.
	DefaultBinary = "ffmpeg"
	// OutputSuffix is appended to the slugged base name of every subtitled
	// output video.
	OutputSuffix = "_subtitled_en_us"
	// OutputExtension is the container format of the subtitled output.
	OutputExtension = ".mp4"
)

// Config controls how ffmpeg is invoked.
type Config struct {
	Binary string
}

// Service burns a subtitle file into its source video via an ffmpeg
// subprocess.
type Service struct {
	cfg           Config
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewService creates an embedding service with the given configuration.
func NewService(cfg Config) *Service {
	if cfg.Binary == "" {
		cfg.Binary = DefaultBinary
	}
	return &Service{cfg: cfg}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	s.commandRunner = runner
}

// OutputPath computes the subtitled output path for a video. It is a pure
// function of the input filename: slug of the base name plus the fixed
// suffix, in the video's directory.
func OutputPath(videoPath string) string {
	name := textutil.Slug(filepath.Base(videoPath)) + OutputSuffix + OutputExtension
	if dir := filepath.Dir(videoPath); dir != "." {
		return filepath.Join(dir, name)
	}
	return name
}

// Embed burns srtPath into videoPath, producing the renamed output video.
// Existing outputs are overwritten. Success is judged solely by whether the
// output file exists afterwards; ffmpeg's exit status is folded into the
// failure record only when the file is absent.
func (s *Service) Embed(ctx context.Context, videoPath, srtPath string) (string, error) {
	if strings.TrimSpace(videoPath) == "" || strings.TrimSpace(srtPath) == "" {
		return "", services.Wrap(services.ErrConfiguration, "embed", "", "video and subtitle paths required", nil)
	}

	outputPath := OutputPath(videoPath)
	args := []string{
		"-y",
		"-i", videoPath,
		"-vf", "subtitles=" + srtPath,
		"-c:a", "copy",
		outputPath,
	}

	runErr := s.run(ctx, s.cfg.Binary, args...)
	if fileutil.Exists(outputPath) {
		return outputPath, nil
	}
	if runErr != nil {
		return "", services.Wrap(services.ErrExternalTool, "embed", "run ffmpeg", "", runErr)
	}
	return "", services.Wrap(services.ErrNotFound, "embed", "", fmt.Sprintf("encoder produced no output at %s", outputPath), nil)
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
