package whisper

import (
	"encoding/json"
	"fmt"
	"os"

	"subburn/internal/subtitles"
)

// whisperPayload is the JSON structure the Whisper CLI writes.
type whisperPayload struct {
	Segments []subtitles.Segment `json:"segments"`
}

// LoadSegments loads timed segments from a Whisper JSON output file.
func LoadSegments(jsonPath string) ([]subtitles.Segment, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, err
	}
	var payload whisperPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse whisper json: %w", err)
	}
	return payload.Segments, nil
}
