package subtitles

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"
)

// Segment is a timed span of recognized speech.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// FormatTimestamp renders seconds as an SRT timestamp (HH:MM:SS,mmm).
// The value is reduced to milliseconds first, then split by successive
// division by 3600 and 60.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	millis := int64(math.Round(seconds * 1000))
	hours := millis / 3_600_000
	millis -= hours * 3_600_000
	minutes := millis / 60_000
	millis -= minutes * 60_000
	secs := millis / 1000
	millis -= secs * 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// Encode renders segments as an SRT document. Cue indexes are 1-based and
// follow input order; cue text is trimmed of surrounding whitespace.
func Encode(segments []Segment) []byte {
	var buf bytes.Buffer
	for i, seg := range segments {
		fmt.Fprintf(&buf, "%d\n%s --> %s\n%s\n\n",
			i+1,
			FormatTimestamp(seg.Start),
			FormatTimestamp(seg.End),
			strings.TrimSpace(seg.Text),
		)
	}
	return buf.Bytes()
}

// WriteFile encodes segments and writes them to path.
func WriteFile(path string, segments []Segment) error {
	if err := os.WriteFile(path, Encode(segments), 0o644); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}
