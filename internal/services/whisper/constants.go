package whisper

const (
	// DefaultBinary is the whisper executable name.
	DefaultBinary = "whisper"
	// DefaultModel balances speed and quality for batch runs.
	DefaultModel = "base"
	// TaskTranslate fixes the output language to English.
	TaskTranslate = "translate"
	// OutputFormat selects JSON so segment timings can be re-encoded as SRT.
	OutputFormat = "json"
)
