package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/mouse-blink/envboot/internal/adapter"
	"github.com/mouse-blink/envboot/internal/config"
	m "github.com/mouse-blink/envboot/internal/model"
)

// Files that make the declarative sync strategy eligible.
const (
	LockFileName      = "uv.lock"
	ProjectFileName   = "pyproject.toml"
	declarativeBinary = "uv"
)

// SyncRequest carries what a dependency strategy needs for one run.
type SyncRequest struct {
	Context m.BootstrapContext
	// Python is the path-qualified interpreter packages are installed with.
	Python m.Path
	// Report receives one record per installation decision.
	Report func(m.StepRecord)
}

func (r SyncRequest) report(status m.StepStatus, format string, args ...any) {
	if r.Report != nil {
		r.Report(m.StepRecord{Step: m.StepDependencies, Status: status, Message: fmt.Sprintf(format, args...)})
	}
}

// DependencyStrategy installs the project's dependencies into the runtime.
type DependencyStrategy interface {
	Name() string
	Sync(ctx context.Context, req SyncRequest) error
}

// SelectStrategy resolves the configured strategy once per run. "auto" picks
// the declarative sync when its tool is on PATH and the project declares a
// lockfile or project file, and the manifest-based pip path otherwise.
func SelectStrategy(name string, root m.Path, fsys adapter.ProjectFS, runner adapter.CommandRunner, discoverer ManifestDiscoverer, log *slog.Logger) (DependencyStrategy, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	pip := &pipStrategy{runner: runner, discoverer: discoverer, log: log}

	if name == config.StrategyPip {
		return pip, nil
	}

	uvPath, lookErr := runner.LookPath(declarativeBinary)

	locked := fileExists(fsys, m.Path(filepath.Join(string(root), LockFileName)))
	declared := locked || fileExists(fsys, m.Path(filepath.Join(string(root), ProjectFileName)))

	switch name {
	case config.StrategySync:
		if lookErr != nil {
			return nil, fmt.Errorf("strategy %q requires %s on PATH: %w", name, declarativeBinary, lookErr)
		}

		if !declared {
			return nil, fmt.Errorf("strategy %q requires %s or %s at the project root", name, LockFileName, ProjectFileName)
		}
	case config.StrategyAuto:
		if lookErr != nil || !declared {
			log.Debug("declarative sync unavailable, using pip",
				slog.Bool("tool_found", lookErr == nil),
				slog.Bool("project_declared", declared))

			return pip, nil
		}
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}

	return &syncStrategy{runner: runner, tool: uvPath, locked: locked, log: log}, nil
}

func fileExists(fsys adapter.ProjectFS, path m.Path) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}

// syncStrategy resolves and installs the whole dependency graph, dev
// dependencies included, with one declarative tool invocation.
type syncStrategy struct {
	runner adapter.CommandRunner
	tool   m.Path
	locked bool
	log    *slog.Logger
}

func (s *syncStrategy) Name() string { return config.StrategySync }

func (s *syncStrategy) Sync(ctx context.Context, req SyncRequest) error {
	bctx := req.Context

	args := []string{"sync", "--all-extras", "--dev"}
	if s.locked {
		args = append(args, "--locked")
	}

	env := adapter.EnvironmentFromPairs(bctx.Env)
	if !bctx.Mode.IsCI() {
		env = env.With(map[string]string{"UV_PROJECT_ENVIRONMENT": string(bctx.RuntimeDir)})
	}

	_, err := s.runner.Run(ctx, adapter.Command{
		Name: string(s.tool),
		Args: args,
		Dir:  bctx.ProjectRoot,
		Env:  env.Environ(),
	})
	if err != nil {
		source := ProjectFileName
		if s.locked {
			source = LockFileName
		}

		return &ManifestInstallError{Path: m.Path(filepath.Join(string(bctx.ProjectRoot), source)), Err: err}
	}

	req.report(m.StatusDone, "synchronized dependency graph with %s sync", declarativeBinary)

	return nil
}

// pipStrategy discovers every manifest and installs them one by one after
// upgrading the installer. The first failure aborts the sequence.
type pipStrategy struct {
	runner     adapter.CommandRunner
	discoverer ManifestDiscoverer
	log        *slog.Logger
}

func (p *pipStrategy) Name() string { return config.StrategyPip }

func (p *pipStrategy) Sync(ctx context.Context, req SyncRequest) error {
	bctx := req.Context

	manifests, err := p.discoverer.Discover(bctx.ProjectRoot)
	if err != nil {
		return err
	}

	if err := p.pip(ctx, req, "install", "--upgrade", "pip"); err != nil {
		return &ManifestInstallError{Err: err}
	}

	req.report(m.StatusDone, "upgraded pip")

	if len(manifests) == 0 {
		req.report(m.StatusWarning, "no %s or %s found", m.PrimaryManifestName, m.DevManifestName)
		return nil
	}

	for _, manifest := range manifests {
		if err := p.pip(ctx, req, "install", "-r", string(manifest.Path)); err != nil {
			return &ManifestInstallError{Path: manifest.Path, Err: err}
		}

		req.report(m.StatusDone, "installed %s (%s)", manifest.Rel, manifest.Kind)
	}

	return nil
}

func (p *pipStrategy) pip(ctx context.Context, req SyncRequest, args ...string) error {
	if req.Python == "" {
		return errors.New("no interpreter to run pip with")
	}

	_, err := p.runner.Run(ctx, adapter.Command{
		Name: string(req.Python),
		Args: append([]string{"-m", "pip"}, args...),
		Dir:  req.Context.ProjectRoot,
		Env:  req.Context.Env,
	})

	return err
}
