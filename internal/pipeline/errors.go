package pipeline

import (
	"fmt"

	"subburn/internal/services"
)

func errNoSubtitleFile(path string) error {
	return services.Wrap(services.ErrNotFound, "transcribe", "",
		fmt.Sprintf("no subtitle file at %s", path), nil)
}
