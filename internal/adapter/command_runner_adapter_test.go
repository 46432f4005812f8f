package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/envboot/internal/model"
)

// TestHelperProcess is not a real test. It is re-executed by the runner tests
// as a stand-in child process.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("ENVBOOT_HELPER_PROCESS") != "1" {
		return
	}

	switch os.Getenv("ENVBOOT_HELPER_MODE") {
	case "ok":
		wd, _ := os.Getwd()
		fmt.Fprintf(os.Stdout, "stdout line\n")
		fmt.Fprintf(os.Stderr, "stderr line\n")
		fmt.Fprintf(os.Stdout, "wd=%s\n", wd)
		os.Exit(0)
	case "fail":
		fmt.Fprintf(os.Stderr, "ERROR: could not find a version that satisfies the requirement\n")
		os.Exit(3)
	}

	os.Exit(0)
}

func helperCommand(mode string, dir string) Command {
	return Command{
		Name: os.Args[0],
		Args: []string{"-test.run=TestHelperProcess"},
		Dir:  m.Path(dir),
		Env:  []string{"ENVBOOT_HELPER_PROCESS=1", "ENVBOOT_HELPER_MODE=" + mode},
	}
}

func TestLocalCommandRunner_Run(t *testing.T) {
	t.Run("captures combined output and runs in dir", func(t *testing.T) {
		var stream bytes.Buffer
		runner := NewLocalCommandRunner(nil, &stream)
		dir := t.TempDir()

		result, err := runner.Run(context.Background(), helperCommand("ok", dir))
		require.NoError(t, err)

		assert.Equal(t, 0, result.ExitCode)
		assert.Contains(t, result.Output, "stdout line")
		assert.Contains(t, result.Output, "stderr line")
		assert.Contains(t, result.Output, "wd=")
		assert.Equal(t, result.Output, stream.String(), "output is streamed as well as captured")
	})

	t.Run("non-zero exit is a CommandError", func(t *testing.T) {
		runner := NewLocalCommandRunner(nil, nil)

		result, err := runner.Run(context.Background(), helperCommand("fail", t.TempDir()))
		require.Error(t, err)

		var cmdErr *CommandError
		require.True(t, errors.As(err, &cmdErr))
		assert.Equal(t, 3, cmdErr.ExitCode)
		assert.Equal(t, 3, result.ExitCode)
		assert.Contains(t, err.Error(), "could not find a version")
	})

	t.Run("missing binary", func(t *testing.T) {
		runner := NewLocalCommandRunner(nil, nil)

		result, err := runner.Run(context.Background(), Command{Name: "envboot-definitely-missing-binary"})
		require.Error(t, err)
		assert.Equal(t, -1, result.ExitCode)
	})

	t.Run("cancelled context", func(t *testing.T) {
		runner := NewLocalCommandRunner(nil, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := runner.Run(ctx, helperCommand("ok", t.TempDir()))
		assert.Error(t, err)
	})
}

func TestLocalCommandRunner_LookPath(t *testing.T) {
	runner := NewLocalCommandRunner(nil, nil)

	_, err := runner.LookPath("envboot-definitely-missing-binary")
	assert.Error(t, err)
}

func TestCommand_String(t *testing.T) {
	cmd := Command{Name: "python3", Args: []string{"-m", "venv", ".venv"}}
	assert.Equal(t, "python3 -m venv .venv", cmd.String())
}

func TestCommandError_Error(t *testing.T) {
	err := &CommandError{
		Command: Command{Name: "pip", Args: []string{"install"}},
		Output:  "1\n2\n3\n4\n5\n6\n7\n",
		Err:     errors.New("exit status 1"),
	}

	assert.Equal(t, "pip install: exit status 1\n3\n4\n5\n6\n7", err.Error())
}
