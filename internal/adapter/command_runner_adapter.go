package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	m "github.com/mouse-blink/envboot/internal/model"
)

// Command describes a child process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory of the child process.
	Dir m.Path
	// Env is the complete child environment as KEY=value pairs. A nil Env
	// inherits the current process environment.
	Env []string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// CommandResult holds the outcome of a finished child process.
type CommandResult struct {
	ExitCode int
	// Output is the combined stdout and stderr of the process.
	Output   string
	Duration time.Duration
}

// CommandError is returned when a child process could not be started or
// exited with a non-zero status.
type CommandError struct {
	Command  Command
	ExitCode int
	Output   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Command, e.Err)

	if out := lastLines(e.Output, 5); out != "" {
		msg += "\n" + out
	}

	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// CommandRunner runs child processes to completion. Every call blocks until
// the process exits.
type CommandRunner interface {
	// LookPath searches for an executable in the directories named by PATH.
	LookPath(name string) (m.Path, error)

	// Run executes cmd and waits for it. A non-zero exit status is reported
	// as a *CommandError alongside the result.
	Run(ctx context.Context, cmd Command) (CommandResult, error)
}

// LocalCommandRunner runs commands through os/exec.
type LocalCommandRunner struct {
	log    *slog.Logger
	stream io.Writer
}

// NewLocalCommandRunner constructs a LocalCommandRunner. When stream is not
// nil, child output is copied to it as it is produced.
func NewLocalCommandRunner(log *slog.Logger, stream io.Writer) *LocalCommandRunner {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &LocalCommandRunner{log: log, stream: stream}
}

// LookPath resolves name against PATH.
func (r *LocalCommandRunner) LookPath(name string) (m.Path, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", err
	}

	return m.Path(path), nil
}

// Run executes the command and captures its combined output.
func (r *LocalCommandRunner) Run(ctx context.Context, cmd Command) (CommandResult, error) {
	// #nosec G204 - commands are built by the provisioner, not from user input
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = string(cmd.Dir)
	c.Env = cmd.Env

	var buf bytes.Buffer

	var out io.Writer = &buf
	if r.stream != nil {
		out = io.MultiWriter(&buf, r.stream)
	}

	c.Stdout = out
	c.Stderr = out

	r.log.Debug("running command", slog.String("cmd", cmd.String()), slog.String("dir", string(cmd.Dir)))

	start := time.Now()
	err := c.Run()
	result := CommandResult{
		ExitCode: c.ProcessState.ExitCode(),
		Output:   buf.String(),
		Duration: time.Since(start),
	}

	r.log.Debug("command finished",
		slog.String("cmd", cmd.String()),
		slog.Int("exit_code", result.ExitCode),
		slog.Duration("duration", result.Duration))

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			result.ExitCode = -1
		}

		return result, &CommandError{
			Command:  cmd,
			ExitCode: result.ExitCode,
			Output:   result.Output,
			Err:      err,
		}
	}

	return result, nil
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
