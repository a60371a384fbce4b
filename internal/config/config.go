// Package config handles command-line and environment configuration for
// fixcalc. Values resolve with the priority CLI flags > FIXCALC_ environment
// variables > defaults, and are validated before use.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"time"

	apperrors "github.com/agbru/fixcalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "FIXCALC_"

// Commands accepted as the first positional argument.
const (
	CmdEval       = "eval"
	CmdInverse    = "inverse"
	CmdRandom     = "random"
	CmdBench      = "bench"
	CmdREPL       = "repl"
	CmdVersion    = "version"
	CmdCompletion = "completion"
)

// Commands lists every accepted command in help order.
var Commands = []string{CmdEval, CmdInverse, CmdRandom, CmdBench, CmdREPL, CmdVersion, CmdCompletion}

// SupportedWordBits lists the word sizes an engine can be built from.
var SupportedWordBits = []int{8, 16, 32, 64}

// Defaults.
const (
	DefaultWordBits   = 64
	DefaultWords      = 4
	DefaultIterations = 1000
	DefaultTimeout    = time.Minute
	DefaultLogLevel   = "warn"
	// MaxWords bounds the word count so a typo cannot allocate gigabytes.
	MaxWords = 1 << 16
)

// AppConfig is the fully resolved configuration of one run.
type AppConfig struct {
	// Command is the subcommand to run; CmdREPL when none was given.
	Command string
	// Args are the positional arguments following the command.
	Args []string

	WordBits   int
	Words      int
	Iterations int
	// Workers is the number of checks run concurrently by bench; 0 selects
	// a value from the CPU count.
	Workers int
	Timeout time.Duration
	// Seed selects a deterministic random source when non-zero.
	Seed uint64

	Verbose  bool
	Quiet    bool
	NoColor  bool
	Metrics  bool
	// TUI runs bench inside the interactive dashboard.
	TUI      bool
	LogLevel string
}

// Bits returns the total width N of the configured scalars.
func (c AppConfig) Bits() int { return c.WordBits * c.Words }

// ParseConfig parses args (without the program name) into an AppConfig,
// applies environment overrides and validates the result. Usage and parse
// errors are written to errWriter; -h yields flag.ErrHelp.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	config := AppConfig{}
	fs.IntVar(&config.WordBits, "word", DefaultWordBits, "Word size in bits (8, 16, 32 or 64).")
	fs.IntVar(&config.Words, "words", DefaultWords, "Number of words per scalar.")
	fs.IntVar(&config.Iterations, "iterations", DefaultIterations, "Trials per check for the bench command.")
	fs.IntVar(&config.Workers, "workers", 0, "Concurrent checks for bench (0 = from CPU count).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum run time (e.g. 30s, 5m).")
	fs.Uint64Var(&config.Seed, "seed", 0, "Seed for reproducible random values (0 = secure source).")
	fs.BoolVar(&config.Verbose, "v", false, "Verbose output (shorthand).")
	fs.BoolVar(&config.Verbose, "verbose", false, "Verbose output.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode: print results only.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.Metrics, "metrics", false, "Print Prometheus metrics after bench.")
	fs.BoolVar(&config.TUI, "tui", false, "Run bench in the interactive dashboard.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level (debug, info, warn, error).")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] [command] [args]\n\nCommands:\n", programName)
		fmt.Fprintf(errWriter, "  eval EXPR          evaluate A OP B, OP A, or a fused form (fma, fms, fms3)\n")
		fmt.Fprintf(errWriter, "  inverse A          multiplicative inverse of A modulo 2^N\n")
		fmt.Fprintf(errWriter, "  random             print a random scalar\n")
		fmt.Fprintf(errWriter, "  bench              check fused routines against their reference forms\n")
		fmt.Fprintf(errWriter, "  repl               interactive calculator (default)\n")
		fmt.Fprintf(errWriter, "  version            print version information\n")
		fmt.Fprintf(errWriter, "  completion SHELL   print a bash, zsh or fish completion script\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	config.Command = CmdREPL
	if rest := fs.Args(); len(rest) > 0 {
		config.Command = rest[0]
		config.Args = rest[1:]
	}

	if err := config.Validate(); err != nil {
		fs.Usage()
		return AppConfig{}, err
	}
	return ApplyAdaptiveWorkers(config), nil
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate() error {
	if !slices.Contains(Commands, c.Command) {
		return apperrors.NewConfigError("unknown command %q (expected one of %v)", c.Command, Commands)
	}
	if !slices.Contains(SupportedWordBits, c.WordBits) {
		return apperrors.ValidationError{Field: "word", Message: fmt.Sprintf("unsupported word size %d (expected 8, 16, 32 or 64)", c.WordBits)}
	}
	if c.Words <= 0 || c.Words > MaxWords {
		return apperrors.ValidationError{Field: "words", Message: fmt.Sprintf("must be between 1 and %d, got %d", MaxWords, c.Words)}
	}
	if c.Iterations <= 0 {
		return apperrors.ValidationError{Field: "iterations", Message: "must be greater than zero"}
	}
	if c.Workers < 0 {
		return apperrors.ValidationError{Field: "workers", Message: "must not be negative"}
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("-quiet and -verbose are mutually exclusive")
	}
	if c.TUI && c.Quiet {
		return apperrors.NewConfigError("-tui and -quiet are mutually exclusive")
	}
	return nil
}
