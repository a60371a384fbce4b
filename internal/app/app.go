// Package app wires configuration, the engine and the terminal front end into
// the fixcalc command.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/fixcalc/internal/calc"
	"github.com/agbru/fixcalc/internal/cli"
	"github.com/agbru/fixcalc/internal/config"
	apperrors "github.com/agbru/fixcalc/internal/errors"
	"github.com/agbru/fixcalc/internal/logging"
	"github.com/agbru/fixcalc/internal/scalar"
	"github.com/agbru/fixcalc/internal/ui"
)

// Application represents the fixcalc application instance.
type Application struct {
	Config    config.AppConfig
	Engine    calc.Engine
	Source    scalar.Source
	Logger    logging.Logger
	ErrWriter io.Writer
	In        io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithSource sets the random source used by the random and repl commands.
func WithSource(src scalar.Source) AppOption {
	return func(a *Application) { a.Source = src }
}

// WithInput sets the reader the REPL reads commands from.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// WithLogger replaces the default console logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application by parsing command-line arguments. args[0]
// is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}

	programName := "fixcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return nil, apperrors.NewConfigError("invalid log level %q: %v", cfg.LogLevel, err)
	}

	engine, err := calc.New(cfg.WordBits, cfg.Words)
	if err != nil {
		return nil, err
	}

	if app.Source == nil {
		app.Source = scalar.DefaultSource()
		if cfg.Seed != 0 {
			app.Source = scalar.NewSeededSource(cfg.Seed)
		}
	}
	if app.Logger == nil {
		app.Logger = logging.NewConsoleLogger(errWriter, "app", cfg.NoColor)
	}

	app.Config = cfg
	app.Engine = engine
	app.Logger.Debug("configuration resolved",
		logging.String("command", cfg.Command),
		logging.String("width", engine.Describe().String()),
		logging.Int("iterations", cfg.Iterations),
		logging.Int("workers", cfg.Workers),
	)
	return app, nil
}

// Run executes the configured command and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	a.Logger.Debug("running command", logging.String("command", a.Config.Command))

	switch a.Config.Command {
	case config.CmdVersion:
		PrintVersion(out)
		return apperrors.ExitSuccess
	case config.CmdCompletion:
		return a.runCompletion(out)
	case config.CmdREPL:
		return a.runREPL(out)
	}

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	switch a.Config.Command {
	case config.CmdEval:
		return a.runEval(out)
	case config.CmdInverse:
		return a.runInverse(out)
	case config.CmdRandom:
		return a.runRandom(out)
	default:
		return a.runBench(ctx, out)
	}
}

func (a *Application) runCompletion(out io.Writer) int {
	if len(a.Config.Args) != 1 {
		return a.handleError(apperrors.NewConfigError("completion takes one shell name"), out)
	}
	if err := cli.GenerateCompletion(out, a.Config.Args[0]); err != nil {
		return a.handleError(apperrors.ConfigError{Message: err.Error()}, out)
	}
	return apperrors.ExitSuccess
}

func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(a.Engine, cli.REPLConfig{Source: a.Source, Logger: a.Logger})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

func (a *Application) handleError(err error, out io.Writer) int {
	a.Logger.Debug("command failed", logging.Err(err))
	return apperrors.HandleError(err, 0, out, ui.ColorProvider{})
}

// IsHelpError checks if the error is a help flag error (-h was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
