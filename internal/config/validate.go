package config

import (
	"fmt"

	"subburn/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTranscription(); err != nil {
		return err
	}
	if err := c.validateWorkflow(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTranscription() error {
	if c.Transcription.Model == "" {
		return fmt.Errorf("transcription.model must be set")
	}
	if !language.Recognized(c.Transcription.Language) && language.ToISO2(c.Transcription.Language) == "" {
		return fmt.Errorf("transcription.language %q is not a recognized language code or name", c.Transcription.Language)
	}
	return nil
}

func (c *Config) validateWorkflow() error {
	if c.Workflow.MaxConcurrent < 0 {
		return fmt.Errorf("workflow.max_concurrent must be zero or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
