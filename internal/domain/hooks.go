package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/envboot/internal/adapter"
	m "github.com/mouse-blink/envboot/internal/model"
)

// hookFrameworkModule is the module the hook framework is run as.
const hookFrameworkModule = "pre_commit"

// HookInstaller registers commit-time quality hooks in the repository.
type HookInstaller interface {
	// Inspect reads the hook configuration without installing anything.
	Inspect(root m.Path) (m.HookConfig, error)

	// Install registers the hooks and refreshes their pinned versions. It is
	// safe to repeat: the framework overwrites its own hook scripts.
	Install(ctx context.Context, bctx m.BootstrapContext, python m.Path) (m.HookConfig, error)
}

type hookInstaller struct {
	fsys       adapter.ProjectFS
	runner     adapter.CommandRunner
	configName string
}

// NewHookInstaller constructs a HookInstaller for the hook config file
// configName, relative to the project root.
func NewHookInstaller(fsys adapter.ProjectFS, runner adapter.CommandRunner, configName string) HookInstaller {
	return &hookInstaller{fsys: fsys, runner: runner, configName: configName}
}

type hookConfigFile struct {
	Repos []struct {
		Repo  string `yaml:"repo"`
		Rev   string `yaml:"rev"`
		Hooks []struct {
			ID string `yaml:"id"`
		} `yaml:"hooks"`
	} `yaml:"repos"`
}

func (h *hookInstaller) Inspect(root m.Path) (m.HookConfig, error) {
	cfg := m.HookConfig{Path: m.Path(filepath.Join(string(root), h.configName))}

	data, err := h.fsys.ReadFile(cfg.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return cfg, &HookInstallError{Op: "read " + h.configName, Err: err}
	}

	cfg.Present = true

	var file hookConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, &HookInstallError{Op: "parse " + h.configName, Err: err}
	}

	cfg.Repos = len(file.Repos)
	for _, repo := range file.Repos {
		cfg.Hooks += len(repo.Hooks)
	}

	return cfg, nil
}

func (h *hookInstaller) Install(ctx context.Context, bctx m.BootstrapContext, python m.Path) (m.HookConfig, error) {
	cfg, err := h.Inspect(bctx.ProjectRoot)
	if err != nil || !cfg.Present {
		return cfg, err
	}

	for _, op := range [][]string{
		{"install", "--config", h.configName},
		{"autoupdate", "--config", h.configName},
	} {
		_, err := h.runner.Run(ctx, adapter.Command{
			Name: string(python),
			Args: append([]string{"-m", hookFrameworkModule}, op...),
			Dir:  bctx.ProjectRoot,
			Env:  bctx.Env,
		})
		if err != nil {
			return cfg, &HookInstallError{Op: fmt.Sprintf("%s %s", hookFrameworkModule, op[0]), Err: err}
		}
	}

	return cfg, nil
}
