package config

const (
	defaultLogDir        = "~/.local/share/subburn/logs"
	defaultModel         = "base"
	defaultLanguage      = "English"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultMaxConcurrent = 0

	// DefaultConcurrencyCeiling caps automatic concurrency sizing no matter
	// how many CPUs the host reports.
	DefaultConcurrencyCeiling = 6
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Transcription: Transcription{
			Model:    defaultModel,
			Language: defaultLanguage,
		},
		Workflow: Workflow{
			MaxConcurrent: defaultMaxConcurrent,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
