package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"shipvqa/internal/config"
	"shipvqa/internal/question"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

const (
	programName = "shipvqa"
	summary     = "Generate a VQA question CSV for ship images."
)

// flagValues holds everything bound to the flag set.
type flagValues struct {
	opts       config.Options
	configPath string
	verbose    bool
}

// UserError carries a user-facing message and the exit code it maps to.
type UserError struct {
	Code    int
	Message string
	Err     error
}

// Error returns the user-facing message.
func (e *UserError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause.
func (e *UserError) Unwrap() error {
	return e.Err
}

func failf(code int, cause error, format string, args ...any) *UserError {
	return &UserError{Code: code, Message: fmt.Sprintf(format, args...), Err: cause}
}

// Run executes the generator with the given arguments and returns the
// process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	flags, values := newFlagSet()
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(stdout, flags)
			return ExitOK
		}
		printError(stderr, fmt.Sprintf("invalid arguments: %v", err))
		fmt.Fprintln(stderr)
		printUsage(stderr, flags)
		return ExitUsage
	}
	if flags.NArg() > 0 {
		printError(stderr, fmt.Sprintf("unexpected arguments: %s", strings.Join(flags.Args(), " ")))
		fmt.Fprintln(stderr)
		printUsage(stderr, flags)
		return ExitUsage
	}
	if strings.TrimSpace(values.opts.InputDir) == "" {
		printError(stderr, "--input_dir is required")
		fmt.Fprintln(stderr)
		printUsage(stderr, flags)
		return ExitUsage
	}

	logger := newLogger(values.verbose, stderr)
	defer func() { _ = logger.Sync() }()

	result, err := execute(context.Background(), flags, values, logger)
	if err != nil {
		var exitErr *UserError
		if errors.As(err, &exitErr) {
			printError(stderr, exitErr.Message)
			return exitErr.Code
		}
		printError(stderr, err.Error())
		return ExitError
	}

	printSummary(stdout, result)
	return ExitOK
}

// execute resolves the run configuration and generates the dataset.
func execute(ctx context.Context, flags *pflag.FlagSet, values *flagValues, logger *zap.Logger) (Result, error) {
	opts, err := resolveOptions(flags, values)
	if err != nil {
		return Result{}, err
	}

	if err := config.CheckInputDir(opts.InputDir); err != nil {
		switch {
		case errors.Is(err, config.ErrInputNotFound):
			return Result{}, failf(ExitError, err, "Input directory not found: %s", opts.InputDir)
		case errors.Is(err, config.ErrInputNotDirectory):
			return Result{}, failf(ExitError, err, "Input path is not a directory: %s", opts.InputDir)
		default:
			return Result{}, failf(ExitError, err, "Input directory unreadable: %v", err)
		}
	}

	run, err := config.Resolve(opts)
	if err != nil {
		var templateErr *question.TemplateError
		switch {
		case errors.Is(err, config.ErrNoValidExtensions):
			return Result{}, failf(ExitError, err, "No valid file extensions provided.")
		case errors.As(err, &templateErr):
			return Result{}, failf(ExitError, err, "Invalid question templates:\n%v", err)
		default:
			return Result{}, failf(ExitError, err, "Invalid options:\n%v", err)
		}
	}

	return Generate(ctx, run, logger)
}

// resolveOptions layers the config file and explicitly set flags over the
// built-in defaults.
func resolveOptions(flags *pflag.FlagSet, values *flagValues) (config.Options, error) {
	opts := config.DefaultOptions()
	if path := strings.TrimSpace(values.configPath); path != "" {
		file, err := config.LoadFile(path)
		if err != nil {
			return config.Options{}, failf(ExitError, err, "Failed to load config %s:\n%v", path, err)
		}
		opts = file.Apply(opts)
	}

	flags.Visit(func(flag *pflag.Flag) {
		switch flag.Name {
		case "input_dir":
			opts.InputDir = values.opts.InputDir
		case "output_csv":
			opts.OutputCSV = values.opts.OutputCSV
		case "extensions":
			opts.Extensions = values.opts.Extensions
		case "countries":
			opts.Countries = values.opts.Countries
		case "recursive":
			opts.Recursive = values.opts.Recursive
		case "author":
			opts.Author = values.opts.Author
		case "course":
			opts.Course = values.opts.Course
		case "semester":
			opts.Semester = values.opts.Semester
		case "duckdb":
			opts.DuckDB = values.opts.DuckDB
		}
	})
	return opts, nil
}

func newFlagSet() (*pflag.FlagSet, *flagValues) {
	values := &flagValues{opts: config.DefaultOptions()}
	flags := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.SortFlags = false

	opts := &values.opts
	flags.StringVar(&opts.InputDir, "input_dir", "", "Path to folder containing images (required)")
	flags.StringVar(&opts.OutputCSV, "output_csv", opts.OutputCSV, "Output CSV file name")
	flags.StringVar(&opts.Extensions, "extensions", opts.Extensions, "Comma-separated image extensions to include")
	flags.StringVar(&opts.Countries, "countries", opts.Countries, "Comma-separated list of countries (repeated names are asked once)")
	flags.BoolVar(&opts.Recursive, "recursive", false, "Search subfolders for images")
	flags.StringVar(&opts.Author, "author", opts.Author, "Author copied onto every row")
	flags.StringVar(&opts.Course, "course", opts.Course, "Course name or code copied onto every row")
	flags.StringVar(&opts.Semester, "semester", opts.Semester, "Semester or term copied onto every row")
	flags.StringVar(&values.configPath, "config", "", "YAML or JSON file with option defaults and question templates")
	flags.StringVar(&opts.DuckDB, "duckdb", "", "Also snapshot the dataset into this DuckDB file")
	flags.BoolVarP(&values.verbose, "verbose", "v", false, "Write debug logs to stderr")
	return flags, values
}

func printUsage(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s --input_dir <path> [options]\n", programName)
	fmt.Fprintf(w, "\n%s\n", summary)
	fmt.Fprintln(w, "\nOptions:")
	fmt.Fprint(w, flags.FlagUsages())
}
