// Package cmd provides the root command and CLI setup for envboot.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/envboot/internal/adapter"
	"github.com/mouse-blink/envboot/internal/config"
	"github.com/mouse-blink/envboot/internal/controller"
	"github.com/mouse-blink/envboot/internal/domain"
	m "github.com/mouse-blink/envboot/internal/model"
)

var fsAdapter adapter.ProjectFS
var loadEnvironment domain.EnvironmentLoader

// newProvisioner builds the provisioner for one command invocation. Child
// process output is copied to stream when it is not nil.
var newProvisioner func(ui controller.UI, opts domain.Options, stream io.Writer) domain.Provisioner

func init() {
	fsAdapter = adapter.NewLocalProjectFS()
	loadEnvironment = adapter.LoadOSEnvironment
	newProvisioner = func(ui controller.UI, opts domain.Options, stream io.Writer) domain.Provisioner {
		runner := adapter.NewLocalCommandRunner(opts.Log, stream)
		return domain.NewProvisioner(fsAdapter, runner, loadEnvironment, ui, opts)
	}
}

var version = "dev"

var rootFlag string
var strategyFlag string
var runtimeDirFlag string
var minVersionFlag string
var verboseFlag bool
var plainFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envboot",
		Short: "Bootstrap the development environment of a Python project",
		Long: `Envboot prepares a Python project checkout for development. It finds a
suitable interpreter, creates or repairs the project's virtual environment,
installs every declared dependency and registers the repository's commit hooks.

When the CI variable is set the runtime and hooks are left to the caller and
only dependencies are installed into the pre-provisioned interpreter.

Exit codes:
  0  environment ready
  1  a required step failed
  2  dependencies installed, but hook registration failed`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui := newConsole(cmd)
			if err := ui.Start(); err != nil {
				return err
			}
			defer ui.Close()

			provisioner, err := buildProvisioner(cmd, ui)
			if err != nil {
				return err
			}

			result := provisioner.Provision(cmd.Context())
			if result.ExitCode != m.ExitOK {
				return &exitError{code: result.ExitCode, err: result.Err}
			}

			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&rootFlag, "root", "r", "", "project root (default: detected from the working directory)")
	flags.StringVar(&strategyFlag, "strategy", "", "dependency strategy: auto, sync or pip (default from "+config.FileName+", else auto)")
	flags.StringVar(&runtimeDirFlag, "runtime-dir", "", "runtime directory relative to the project root (default .venv)")
	flags.StringVar(&minVersionFlag, "min-version", "", "minimum interpreter version (default 3.11)")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "log every decision and stream child process output to stderr")
	flags.BoolVar(&plainFlag, "plain", false, "plain text output even on a terminal")

	return cmd
}

// exitError carries a non-zero exit code whose cause was already reported.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d: %v", e.code, e.err)
}

func (e *exitError) Unwrap() error { return e.err }

func newConsole(cmd *cobra.Command) controller.UI {
	return controller.NewUI(cmd, !plainFlag && !verboseFlag && controller.IsTTY(cmd.OutOrStdout()))
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !controller.IsTTY(w),
	}))
}

func buildProvisioner(cmd *cobra.Command, ui controller.UI) (domain.Provisioner, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	log := newLogger(cmd.ErrOrStderr(), verboseFlag)

	var stream io.Writer
	if verboseFlag {
		stream = cmd.ErrOrStderr()
	}

	return newProvisioner(ui, domain.Options{
		InvocationDir: m.Path(wd),
		ExplicitRoot:  m.Path(rootFlag),
		Overrides: config.Overrides{
			RuntimeDir: runtimeDirFlag,
			MinVersion: minVersionFlag,
			Strategy:   strategyFlag,
		},
		Log: log,
	}, stream), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()
	os.Exit(exitCode(rootCmd.ErrOrStderr(), err))
}

// exitCode maps err to the process exit code. Errors that were not already
// reported by a run summary are printed to w.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return m.ExitOK
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	_, _ = fmt.Fprintf(w, "Error: %v\n", err)

	return m.ExitFatal
}
