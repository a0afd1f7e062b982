package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/handiism/tracker-convert/internal/config"
	"github.com/handiism/tracker-convert/internal/convert"
)

// options holds the command line flags.
type options struct {
	input     string
	output    string
	config    string
	indent    int
	asciiOnly bool
	dryRun    bool
	verbose   bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the tracker-convert command.
func newRootCmd() *cobra.Command {
	opts := &options{}
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   "tracker-convert [input] [output]",
		Short: "Convert a vinyl/CD tracker export into a music tracker import file",
		Long: `Reads the JSON export of the vinyl/CD tracker and writes a JSON file the
music tracker can import.

Every item keeps its position (customOrder), its wishlist/collection status
and its formats. The input and output paths default to
vinyl-cd-tracker-data.json and converted_data.json, and can be set by
arguments, flags, a config file or the TRACKER_CONVERT_INPUT and
TRACKER_CONVERT_OUTPUT environment variables.

Example:
  tracker-convert export.json tracker.json
  tracker-convert --config convert.yaml --dry-run`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if opts.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, opts, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "Path to the vinyl/CD tracker export")
	flags.StringVarP(&opts.output, "output", "o", "", "Path of the file to write")
	flags.StringVar(&opts.config, "config", "", "Path to a JSON or YAML config file")
	flags.IntVar(&opts.indent, "indent", 2, "Spaces per indentation level (0 for compact output)")
	flags.BoolVar(&opts.asciiOnly, "ascii-only", true, "Escape non-ASCII characters in the output")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Convert without writing the output file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Show verbose output")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, opts *options, logger *zap.Logger) error {
	settings, err := loadSettings(cmd, args, opts)
	if err != nil {
		return err
	}

	logger.Debug("Starting conversion",
		zap.String("input", settings.InputPath),
		zap.String("output", settings.OutputPath),
		zap.Bool("dry_run", settings.DryRun))

	manager := convert.NewManager(settings, logger, printProgress(cmd.OutOrStdout(), opts.verbose))

	if _, err := manager.Run(cmd.Context()); err != nil {
		if errors.Is(err, convert.ErrInputNotFound) {
			// Already reported; nothing to convert is not a failure
			return nil
		}
		return err
	}
	return nil
}

// loadSettings layers defaults, config file, environment, arguments and flags.
func loadSettings(cmd *cobra.Command, args []string, opts *options) (*config.Settings, error) {
	settings := config.DefaultSettings()
	if opts.config != "" {
		var err error
		settings, err = config.Load(opts.config)
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	}

	if err := settings.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if len(args) > 0 {
		settings.InputPath = args[0]
	}
	if len(args) > 1 {
		settings.OutputPath = args[1]
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		settings.InputPath = opts.input
	}
	if flags.Changed("output") {
		settings.OutputPath = opts.output
	}
	if flags.Changed("indent") {
		if opts.indent < 0 {
			return nil, fmt.Errorf("invalid --indent %d: must not be negative", opts.indent)
		}
		settings.Indent = strings.Repeat(" ", opts.indent)
	}
	if flags.Changed("ascii-only") {
		settings.ASCIIOnly = opts.asciiOnly
	}
	if flags.Changed("dry-run") {
		settings.DryRun = opts.dryRun
	}

	return settings, nil
}

// printProgress writes progress messages to w, one per line.
func printProgress(w io.Writer, verbose bool) func(convert.ProgressEvent) {
	return func(event convert.ProgressEvent) {
		if event.Level == convert.LevelVerbose && !verbose {
			return
		}
		fmt.Fprintln(w, event.Message)
	}
}
