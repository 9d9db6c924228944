package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sdejongh/resultdiff/internal/platform"
	"github.com/sdejongh/resultdiff/pkg/config"
	"github.com/sdejongh/resultdiff/pkg/models"
)

// validateDirs checks that both directories were given and exist. The same
// directory may be used for both sides since the suffixes tell files apart.
func validateDirs(expected, actual string) error {
	if expected == "" || actual == "" {
		return fmt.Errorf("both an expected and an actual directory are required (see 'resultdiff compare --help')")
	}

	for _, dir := range []struct {
		role string
		path string
	}{
		{"expected", expected},
		{"actual", actual},
	} {
		if err := platform.ValidatePath(dir.path); err != nil {
			return err
		}
		info, err := os.Stat(dir.path)
		if os.IsNotExist(err) {
			return fmt.Errorf("%s directory does not exist: %s", dir.role, dir.path)
		} else if err != nil {
			return fmt.Errorf("failed to access %s directory: %w", dir.role, err)
		} else if !info.IsDir() {
			return fmt.Errorf("%s path is not a directory: %s", dir.role, dir.path)
		}
	}

	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with arguments and flags
func applyFlagsToConfig(cfg *config.Config, args []string) {
	var argExpected, argActual string
	if len(args) > 0 {
		argExpected = args[0]
	}
	if len(args) > 1 {
		argActual = args[1]
	}
	cfg.Dirs.Expected = platform.NormalizePath(resolveDir(argExpected, compareFlags.Expected, EnvExpectedDir, cfg.Dirs.Expected))
	cfg.Dirs.Actual = platform.NormalizePath(resolveDir(argActual, compareFlags.Actual, EnvActualDir, cfg.Dirs.Actual))

	// Suffixes
	if compareFlags.ExpectedSuffix != "" {
		cfg.Suffixes.Expected = compareFlags.ExpectedSuffix
	}
	if compareFlags.ActualSuffix != "" {
		cfg.Suffixes.Actual = compareFlags.ActualSuffix
	}

	// Comparison method
	if compareFlags.Comparison != "" {
		cfg.Compare.Method = models.ComparisonMethod(compareFlags.Comparison)
	}
	if compareFlags.ReportLength {
		cfg.Compare.ReportLength = true
	}

	// Exclude patterns
	if len(compareFlags.Exclude) > 0 {
		cfg.Exclude = compareFlags.Exclude
	}

	// Output
	if compareFlags.Output != "" {
		cfg.Output.Format = compareFlags.Output
	}
	if compareFlags.Progress {
		cfg.Output.Progress = true
	}
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}

	// Logging
	if compareFlags.LogFile != "" {
		cfg.Logging.Enabled = true
		cfg.Logging.File = compareFlags.LogFile
	}
	if compareFlags.LogFormat != "" {
		cfg.Logging.Format = compareFlags.LogFormat
	}
	if compareFlags.LogLevel != "" {
		cfg.Logging.Level = compareFlags.LogLevel
	}
	if globalFlags.Verbose {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
	}
}

// createCompareOperation creates a compare operation from configuration
func createCompareOperation(cfg *config.Config) (*models.CompareOperation, error) {
	operation := &models.CompareOperation{
		ID:               uuid.New().String(),
		ExpectedDir:      cfg.Dirs.Expected,
		ActualDir:        cfg.Dirs.Actual,
		ExpectedSuffix:   cfg.Suffixes.Expected,
		ActualSuffix:     cfg.Suffixes.Actual,
		ComparisonMethod: cfg.Compare.Method,
		ExcludePatterns:  cfg.Exclude,
		ReportLength:     cfg.Compare.ReportLength,
		BufferSize:       cfg.Compare.BufferSize,
		CreatedAt:        time.Now(),
	}

	if err := operation.Validate(); err != nil {
		return nil, err
	}

	return operation, nil
}
