package config

import (
	"github.com/sdejongh/resultdiff/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Dirs     DirsConfig    `yaml:"dirs"`
	Suffixes SuffixConfig  `yaml:"suffixes"`
	Compare  CompareConfig `yaml:"compare"`
	Output   OutputConfig  `yaml:"output"`
	Logging  LoggingConfig `yaml:"logging"`
	Exclude  []string      `yaml:"exclude"`
}

// DirsConfig holds the default directories to compare
type DirsConfig struct {
	Expected string `yaml:"expected"` // Directory holding expected *.out files
	Actual   string `yaml:"actual"`   // Directory holding produced *.result files
}

// SuffixConfig holds the suffixes used to pair files
type SuffixConfig struct {
	Expected string `yaml:"expected"`
	Actual   string `yaml:"actual"`
}

// CompareConfig holds comparison settings
type CompareConfig struct {
	Method       models.ComparisonMethod `yaml:"method"`
	BufferSize   int                     `yaml:"buffer_size"`
	ReportLength bool                    `yaml:"report_length"` // Report line count mismatches
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show a progress bar on stderr
	Quiet    bool   `yaml:"quiet"`    // Suppress diff output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // "json" or "text"
	Level   string `yaml:"level"`  // "debug", "info", "warn", "error"
	File    string `yaml:"file"`   // Log file path (empty = stderr)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Suffixes: SuffixConfig{
			Expected: models.DefaultExpectedSuffix,
			Actual:   models.DefaultActualSuffix,
		},
		Compare: CompareConfig{
			Method:       models.CompareText,
			BufferSize:   65536,
			ReportLength: false,
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: false,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Format:  "text",
			Level:   "info",
			File:    "",
		},
		Exclude: []string{},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := models.ValidateSuffix("suffixes.expected", c.Suffixes.Expected); err != nil {
		return err
	}
	if err := models.ValidateSuffix("suffixes.actual", c.Suffixes.Actual); err != nil {
		return err
	}
	if c.Suffixes.Expected == c.Suffixes.Actual {
		return &models.ValidationError{
			Field:   "suffixes.actual",
			Message: "must differ from suffixes.expected",
		}
	}

	validMethods := map[models.ComparisonMethod]bool{models.CompareText: true, models.CompareBinary: true}
	if !validMethods[c.Compare.Method] {
		return &models.ValidationError{
			Field:   "compare.method",
			Message: "must be 'text' or 'binary'",
		}
	}

	if c.Compare.BufferSize < 1024 {
		return &models.ValidationError{
			Field:   "compare.buffer_size",
			Message: "must be at least 1024 bytes",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
