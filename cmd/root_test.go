package cmd

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/envboot/internal/controller"
	"github.com/mouse-blink/envboot/internal/domain"
	domainmocks "github.com/mouse-blink/envboot/internal/domain/mocks"
	m "github.com/mouse-blink/envboot/internal/model"
)

// useProvisioner makes commands use p and returns the options they built it
// with.
func useProvisioner(t *testing.T, p domain.Provisioner) *domain.Options {
	t.Helper()

	var captured domain.Options

	original := newProvisioner
	newProvisioner = func(_ controller.UI, opts domain.Options, _ io.Writer) domain.Provisioner {
		captured = opts
		return p
	}

	t.Cleanup(func() { newProvisioner = original })

	return &captured
}

func executeCommand(cmd *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func newTestRootCmd() *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(newPlanCmd(), newManifestsCmd())

	return cmd
}

func TestRootCmd_ProvisionSuccess(t *testing.T) {
	provisioner := domainmocks.NewMockProvisioner(t)
	opts := useProvisioner(t, provisioner)

	provisioner.EXPECT().Provision(mock.Anything).Return(m.ProvisionResult{Success: true, ExitCode: m.ExitOK})

	_, _, err := executeCommand(newTestRootCmd(),
		"--root", "/work/project",
		"--strategy", "pip",
		"--runtime-dir", "env",
		"--min-version", "3.12",
		"--plain",
	)
	require.NoError(t, err)

	assert.Equal(t, m.Path("/work/project"), opts.ExplicitRoot)
	assert.Equal(t, "pip", opts.Overrides.Strategy)
	assert.Equal(t, "env", opts.Overrides.RuntimeDir)
	assert.Equal(t, "3.12", opts.Overrides.MinVersion)
	assert.NotEmpty(t, opts.InvocationDir)
	assert.NotNil(t, opts.Log)
}

func TestRootCmd_DefaultsLeaveConfigUntouched(t *testing.T) {
	provisioner := domainmocks.NewMockProvisioner(t)
	opts := useProvisioner(t, provisioner)

	provisioner.EXPECT().Provision(mock.Anything).Return(m.ProvisionResult{Success: true})

	_, _, err := executeCommand(newTestRootCmd())
	require.NoError(t, err)

	assert.Empty(t, opts.ExplicitRoot)
	assert.Empty(t, opts.Overrides.Strategy)
	assert.Empty(t, opts.Overrides.RuntimeDir)
	assert.Empty(t, opts.Overrides.MinVersion)
}

func TestRootCmd_ExitCodes(t *testing.T) {
	tests := []struct {
		name   string
		result m.ProvisionResult
		want   int
	}{
		{name: "fatal", result: m.ProvisionResult{ExitCode: m.ExitFatal, Err: errors.New("no interpreter")}, want: m.ExitFatal},
		{name: "hooks", result: m.ProvisionResult{ExitCode: m.ExitHookFailure, Err: errors.New("pre_commit install")}, want: m.ExitHookFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provisioner := domainmocks.NewMockProvisioner(t)
			useProvisioner(t, provisioner)

			provisioner.EXPECT().Provision(mock.Anything).Return(tt.result)

			_, stderr, err := executeCommand(newTestRootCmd(), "--plain")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.result.Err)
			assert.Empty(t, stderr, "errors are reported by the run summary")

			var buf bytes.Buffer
			assert.Equal(t, tt.want, exitCode(&buf, err))
			assert.Empty(t, buf.String())
		})
	}
}

func TestExitCode(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, m.ExitOK, exitCode(&buf, nil))
	assert.Empty(t, buf.String())

	assert.Equal(t, m.ExitFatal, exitCode(&buf, errors.New(`unknown flag: --bogus`)))
	assert.Equal(t, "Error: unknown flag: --bogus\n", buf.String())
}

func TestRootCmd_UnknownFlag(t *testing.T) {
	useProvisioner(t, domainmocks.NewMockProvisioner(t))

	_, _, err := executeCommand(newTestRootCmd(), "--bogus")
	require.Error(t, err)
	assert.Equal(t, m.ExitFatal, exitCode(io.Discard, err))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	newLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, true).Debug("runtime decision", "action", "reuse")
	assert.Contains(t, buf.String(), "runtime decision")
	assert.Contains(t, buf.String(), "action=reuse")
}

func TestRootCmd_EndToEndMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	stdout, _, err := executeCommand(newTestRootCmd(), "--plain", "--root", missing)
	require.Error(t, err)

	var exitErr *exitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, m.ExitFatal, exitErr.code)

	var pathErr *domain.PathResolutionError
	require.ErrorAs(t, err, &pathErr)
	assert.Contains(t, stdout, "[root] failed")
	assert.Contains(t, stdout, "bootstrap failed (exit 1)")
}
