package domain

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/envboot/internal/adapter"
	m "github.com/mouse-blink/envboot/internal/model"
)

// fakeRunner simulates the interpreter, the installer and the hook framework
// against a real temporary project tree.
type fakeRunner struct {
	// paths maps binary names to the path LookPath returns.
	paths map[string]m.Path
	// versions maps interpreter paths to their --version output.
	versions map[m.Path]string
	// venvVersion is written into pyvenv.cfg by "-m venv".
	venvVersion string
	// failOn makes any command whose string contains the key fail.
	failOn map[string]error
	calls  []adapter.Command
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		paths:       map[string]m.Path{},
		versions:    map[m.Path]string{},
		venvVersion: "3.11.4",
		failOn:      map[string]error{},
	}
}

func (f *fakeRunner) withInterpreter(name string, path m.Path, version string) *fakeRunner {
	f.paths[name] = path
	f.versions[path] = "Python " + version

	return f
}

func (f *fakeRunner) LookPath(name string) (m.Path, error) {
	if path, ok := f.paths[name]; ok {
		return path, nil
	}

	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

func (f *fakeRunner) Run(_ context.Context, cmd adapter.Command) (adapter.CommandResult, error) {
	f.calls = append(f.calls, cmd)

	for sub, err := range f.failOn {
		if strings.Contains(cmd.String(), sub) {
			return adapter.CommandResult{ExitCode: 1}, &adapter.CommandError{Command: cmd, ExitCode: 1, Err: err}
		}
	}

	switch {
	case len(cmd.Args) == 1 && cmd.Args[0] == "--version":
		return adapter.CommandResult{Output: f.versions[m.Path(cmd.Name)]}, nil
	case len(cmd.Args) == 3 && cmd.Args[0] == "-m" && cmd.Args[1] == "venv":
		if err := writeVenv(cmd.Args[2], f.venvVersion); err != nil {
			return adapter.CommandResult{ExitCode: 1}, err
		}
	}

	return adapter.CommandResult{}, nil
}

// commands returns the calls as strings.
func (f *fakeRunner) commands() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.String())
	}

	return out
}

// count returns how many calls contain sub.
func (f *fakeRunner) count(sub string) int {
	n := 0

	for _, c := range f.commands() {
		if strings.Contains(c, sub) {
			n++
		}
	}

	return n
}

func writeVenv(dir, version string) error {
	if err := os.MkdirAll(filepath.Join(dir, "bin"), 0o755); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(dir, "bin", "python"), []byte("#!/bin/sh\n"), 0o755); err != nil { //nolint:gosec // test fixture
		return err
	}

	cfg := "home = /usr/bin\ninclude-system-site-packages = false\nversion = " + version + "\n"

	return os.WriteFile(filepath.Join(dir, PyvenvConfig), []byte(cfg), 0o600)
}

// writeCompleteVenv writes a runtime as left behind by a finished run.
func writeCompleteVenv(dir, version string) error {
	if err := writeVenv(dir, version); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, CompletionMarker), []byte(version+"\n"), 0o600)
}

func writeTestFile(t *testing.T, root, rel, content string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// projectRoot returns a symlink-free temp directory marked as a repository.
func projectRoot(t *testing.T) string {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))

	return root
}

func staticEnv(env adapter.MapEnvironment) EnvironmentLoader {
	return func(m.Path) (adapter.Environment, error) {
		return env, nil
	}
}

func envValue(env []string, key string) (string, bool) {
	for _, kv := range env {
		if k, v, ok := strings.Cut(kv, "="); ok && k == key {
			return v, true
		}
	}

	return "", false
}

var errExit1 = errors.New("exit status 1")

// recordingUI captures what the provisioner reports.
type recordingUI struct {
	begun     []m.StepName
	steps     []m.StepRecord
	summaries []m.ProvisionResult
}

func (r *recordingUI) Start() error                  { return nil }
func (r *recordingUI) Close()                        {}
func (r *recordingUI) Begin(step m.StepName)         { r.begun = append(r.begun, step) }
func (r *recordingUI) Step(rec m.StepRecord)         { r.steps = append(r.steps, rec) }
func (r *recordingUI) Summary(res m.ProvisionResult) { r.summaries = append(r.summaries, res) }
func (r *recordingUI) DisplayPlan(m.Plan) error      { return nil }

func (r *recordingUI) DisplayManifests(m.Path, []m.Manifest) error { return nil }

// fileInfo is a minimal fs.FileInfo for mocked Stat calls.
type fileInfo struct {
	dir bool
}

func (f fileInfo) Name() string       { return "" }
func (f fileInfo) Size() int64        { return 0 }
func (f fileInfo) Mode() fs.FileMode  { return 0 }
func (f fileInfo) ModTime() time.Time { return time.Time{} }
func (f fileInfo) IsDir() bool        { return f.dir }
func (f fileInfo) Sys() any           { return nil }
