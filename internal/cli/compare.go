package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sdejongh/resultdiff/pkg/compare"
	"github.com/sdejongh/resultdiff/pkg/config"
	"github.com/sdejongh/resultdiff/pkg/engine"
	"github.com/sdejongh/resultdiff/pkg/logging"
	"github.com/sdejongh/resultdiff/pkg/output"
	"github.com/sdejongh/resultdiff/pkg/storage"
	"github.com/spf13/cobra"
)

// Environment variables naming the directories when no argument or flag does
const (
	EnvExpectedDir = "RESULTDIFF_EXPECTED_DIR"
	EnvActualDir   = "RESULTDIFF_ACTUAL_DIR"
)

// CompareFlags holds compare command flag values
type CompareFlags struct {
	Expected       string
	Actual         string
	ExpectedSuffix string
	ActualSuffix   string
	Comparison     string
	Exclude        []string
	Output         string
	ReportLength   bool
	DiffReport     string
	DiffFormat     string
	FailOnDiff     bool
	Progress       bool
	LogFile        string
	LogFormat      string
	LogLevel       string
}

var compareFlags CompareFlags

// NewCompareCommand creates the compare command
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [EXPECTED_DIR [ACTUAL_DIR]]",
		Short: "Compare expected outputs with produced results",
		Long: `Pair every *.out file of EXPECTED_DIR with the *.result file of the same
base name in ACTUAL_DIR and print, for every pair whose contents differ, the
lines that differ.

Directories are taken from the arguments, then --expected/--actual, then
$RESULTDIFF_EXPECTED_DIR/$RESULTDIFF_ACTUAL_DIR, then the config file.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runCompare,
	}

	cmd.Flags().StringVarP(&compareFlags.Expected, "expected", "e", "", "directory holding the expected files")
	cmd.Flags().StringVarP(&compareFlags.Actual, "actual", "a", "", "directory holding the produced results")
	cmd.Flags().StringVar(&compareFlags.ExpectedSuffix, "expected-suffix", "", "suffix of expected files (default .out)")
	cmd.Flags().StringVar(&compareFlags.ActualSuffix, "actual-suffix", "", "suffix of result files (default .result)")
	cmd.Flags().StringVar(&compareFlags.Comparison, "comparison", "", "comparison method: text, binary (default text)")
	cmd.Flags().StringSliceVar(&compareFlags.Exclude, "exclude", []string{}, "glob patterns of file names to skip")
	cmd.Flags().StringVarP(&compareFlags.Output, "output", "o", "", "output format: human, json (default human)")
	cmd.Flags().BoolVar(&compareFlags.ReportLength, "report-length", false, "report pairs whose line counts differ")
	cmd.Flags().StringVar(&compareFlags.DiffReport, "diff-report", "", "write differences report to file")
	cmd.Flags().StringVar(&compareFlags.DiffFormat, "diff-format", "human", "differences report format: human, json")
	cmd.Flags().BoolVar(&compareFlags.FailOnDiff, "fail-on-diff", false, "exit 1 when files differ, 2 when files cannot be read")
	cmd.Flags().BoolVar(&compareFlags.Progress, "progress", false, "show a progress bar on stderr")
	cmd.Flags().StringVar(&compareFlags.LogFile, "log-file", "", "write logs to file")
	cmd.Flags().StringVar(&compareFlags.LogFormat, "log-format", "", "log format: text, json")
	cmd.Flags().StringVar(&compareFlags.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	applyFlagsToConfig(cfg, args)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := validateDirs(cfg.Dirs.Expected, cfg.Dirs.Actual); err != nil {
		return err
	}

	operation, err := createCompareOperation(cfg)
	if err != nil {
		return fmt.Errorf("failed to create compare operation: %w", err)
	}

	logger, err := createLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Close()

	// Create storage backends
	expected, err := storage.NewLocal(operation.ExpectedDir)
	if err != nil {
		return fmt.Errorf("failed to open expected directory: %w", err)
	}
	defer expected.Close()

	actual, err := storage.NewLocal(operation.ActualDir)
	if err != nil {
		return fmt.Errorf("failed to open actual directory: %w", err)
	}
	defer actual.Close()

	comparator, err := compare.New(operation.ComparisonMethod, operation.BufferSize)
	if err != nil {
		return err
	}

	formatter, err := output.New(cfg.Output.Format, operation.ReportLength)
	if err != nil {
		return err
	}
	if cfg.Output.Progress {
		formatter = output.NewProgressFormatter(formatter, cmd.ErrOrStderr())
	}

	eng := engine.NewEngine(expected, actual, comparator, formatter, logger, operation)
	if cfg.Output.Quiet {
		eng.SetWriter(io.Discard)
	} else {
		eng.SetWriter(cmd.OutOrStdout())
	}

	report, err := eng.Run(ctx)
	if err != nil {
		if report != nil {
			return fmt.Errorf("comparison interrupted after %d pairs: %w", report.Stats.Paired, err)
		}
		return fmt.Errorf("comparison failed: %w", err)
	}

	// Write differences report if requested
	if compareFlags.DiffReport != "" {
		if err := output.WriteDifferencesReport(report, compareFlags.DiffReport, compareFlags.DiffFormat); err != nil {
			return fmt.Errorf("failed to write differences report: %w", err)
		}
	}

	if compareFlags.FailOnDiff {
		if code := report.Status.ExitCode(); code != 0 {
			return &ExitError{Code: code}
		}
	}
	return nil
}

// resolveDir picks a directory from, in order, the positional argument, the
// flag, the environment and the config file
func resolveDir(arg, flag, env, fromConfig string) string {
	for _, candidate := range []string{arg, flag, os.Getenv(env), fromConfig} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// createLogger builds the logger selected by flags and config. Logging stays
// off unless a log file, verbose mode or logging.enabled asks for it.
func createLogger(cfg *config.Config, stderr io.Writer) (logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NewNullLogger(), nil
	}

	logCfg := logging.Config{
		Path:   cfg.Logging.File,
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.ParseLevel(cfg.Logging.Level),
	}
	if logCfg.Path == "" {
		return logging.NewStreamLogger(stderr, logCfg), nil
	}

	logger, err := logging.NewFileLogger(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}
