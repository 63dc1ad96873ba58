package pipeline

import (
	"log/slog"
	"path/filepath"
	"strings"

	"subburn/internal/fileutil"
	"subburn/internal/logging"
)

// IntermediateExtensions lists the transcription artifacts that share the
// input's base name and are removed after a successful embed.
var IntermediateExtensions = []string{".srt", ".tsv", ".txt", ".vtt", ".json"}

// Cleanup removes transcription artifacts for the video's base name. Best
// effort: missing members are no-ops and deletion errors are logged, never
// propagated. Callers invoke this only after a confirmed successful embed;
// on failure the artifacts stay on disk for inspection.
func Cleanup(logger *slog.Logger, videoPath string) {
	base := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
	for _, ext := range IntermediateExtensions {
		path := base + ext
		removed, err := fileutil.RemoveIfExists(path)
		if err != nil {
			logger.Warn("failed to remove intermediate file",
				logging.String("path", path),
				logging.Error(err),
			)
			continue
		}
		if removed {
			logger.Info("removed intermediate file",
				logging.String(logging.FieldEventType, "intermediate_removed"),
				logging.String("path", path),
			)
		}
	}
}
