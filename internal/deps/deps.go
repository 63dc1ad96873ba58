package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"subburn/internal/config"
)

// Requirement defines an external executable subburn relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Required returns the executables a batch run cannot proceed without.
func Required(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "FFmpeg",
			Command:     cfg.FFmpegBinary(),
			Description: "burns subtitles into the output video",
		},
		{
			Name:        "Whisper",
			Command:     cfg.WhisperBinary(),
			Description: "transcribes speech to timed text",
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// Verify checks every required executable and returns an error naming the
// missing ones. The error aborts the run before any file is processed.
func Verify(cfg *config.Config) error {
	var missing []string
	for _, status := range CheckBinaries(Required(cfg)) {
		if !status.Available {
			missing = append(missing, status.Command)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required executables: %s", strings.Join(missing, ", "))
	}
	return nil
}
