// Package domain implements the bootstrap procedure: the provisioner state
// machine and the steps it drives.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/mouse-blink/envboot/internal/adapter"
	"github.com/mouse-blink/envboot/internal/config"
	"github.com/mouse-blink/envboot/internal/controller"
	m "github.com/mouse-blink/envboot/internal/model"
)

// EnvironmentLoader returns the environment a run sees, given the project
// root (where a .env file may live).
type EnvironmentLoader func(root m.Path) (adapter.Environment, error)

// Options configures a Provisioner.
type Options struct {
	// InvocationDir is the directory the tool was started from.
	InvocationDir m.Path
	// ExplicitRoot, when set, is used as the project root.
	ExplicitRoot m.Path
	Overrides    config.Overrides
	// GOOS selects the runtime layout. Defaults to runtime.GOOS.
	GOOS string
	Log  *slog.Logger
}

// Provisioner bootstraps the development environment of a project.
type Provisioner interface {
	// Provision runs every step and returns the terminal status. It never
	// panics on step failures; they are reflected in the result.
	Provision(ctx context.Context) m.ProvisionResult

	// Plan reports what Provision would do without changing anything.
	Plan(ctx context.Context) (m.Plan, error)

	// Manifests returns the project root and the manifests the pip strategy
	// would install, in install order.
	Manifests(ctx context.Context) (m.Path, []m.Manifest, error)
}

type provisioner struct {
	fsys    adapter.ProjectFS
	runner  adapter.CommandRunner
	loadEnv EnvironmentLoader
	ui      controller.UI
	opts    Options
	log     *slog.Logger
}

// NewProvisioner creates a Provisioner with the provided adapters.
func NewProvisioner(fsys adapter.ProjectFS, runner adapter.CommandRunner, loadEnv EnvironmentLoader, ui controller.UI, opts Options) Provisioner {
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}

	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &provisioner{
		fsys:    fsys,
		runner:  runner,
		loadEnv: loadEnv,
		ui:      ui,
		opts:    opts,
		log:     log,
	}
}

// session is the state shared by the steps of one run, built by resolve.
type session struct {
	root   m.Path
	cfg    config.Config
	env    adapter.MapEnvironment
	mode   m.Mode
	layout RuntimeLayout
}

// resolve performs steps 1 and 2: project root, configuration, environment
// and execution mode.
func (p *provisioner) resolve(rec *recorder) (*session, error) {
	rec.begin(m.StepRoot)

	root, err := ResolveProjectRoot(p.fsys, p.opts.InvocationDir, p.opts.ExplicitRoot)
	if err != nil {
		return nil, rec.fail(m.StepRoot, err)
	}

	cfg, err := p.loadConfig(root)
	if err != nil {
		return nil, rec.fail(m.StepRoot, err)
	}

	loaded, err := p.loadEnv(root)
	if err != nil {
		return nil, rec.fail(m.StepRoot, fmt.Errorf("load environment: %w", err))
	}

	rec.add(m.StepRoot, m.StatusDone, "project root %s", root)

	env := adapter.EnvironmentFromPairs(loaded.Environ())
	mode := DetectMode(env, cfg.CIVariable)

	if mode.IsCI() {
		rec.add(m.StepMode, m.StatusDone, "CI mode (%s=%s)", cfg.CIVariable, env.Getenv(cfg.CIVariable))
	} else {
		rec.add(m.StepMode, m.StatusDone, "local mode")
	}

	p.log.Debug("run resolved", slog.String("root", string(root)), slog.String("mode", string(mode)))

	return &session{
		root:   root,
		cfg:    cfg,
		env:    env,
		mode:   mode,
		layout: NewRuntimeLayout(root, filepath.Clean(cfg.RuntimeDir), p.opts.GOOS),
	}, nil
}

func (p *provisioner) loadConfig(root m.Path) (config.Config, error) {
	data, err := p.fsys.ReadFile(m.Path(filepath.Join(string(root), config.FileName)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config.Config{}, fmt.Errorf("read %s: %w", config.FileName, err)
	}

	return config.Parse(data, p.opts.Overrides)
}

// bootstrap performs steps 1 to 3 and returns the immutable context of the
// run.
func (p *provisioner) bootstrap(ctx context.Context, rec *recorder) (*session, m.BootstrapContext, error) {
	s, err := p.resolve(rec)
	if err != nil {
		return nil, m.BootstrapContext{}, err
	}

	rec.begin(m.StepInterpreter)

	locator := NewInterpreterLocator(p.runner, s.env, s.cfg.InterpreterVariable, s.cfg.MinimumVersion(), p.log)

	interpreter, version, err := locator.Locate(ctx, s.mode)
	if err != nil {
		return nil, m.BootstrapContext{}, rec.fail(m.StepInterpreter, err)
	}

	if s.mode.IsCI() {
		rec.add(m.StepInterpreter, m.StatusDone, "using pre-provisioned %s", interpreter)
	} else {
		rec.add(m.StepInterpreter, m.StatusDone, "using %s (Python %s)", interpreter, version)
	}

	return s, m.BootstrapContext{
		ProjectRoot:        s.root,
		Mode:               s.mode,
		InterpreterPath:    interpreter,
		InterpreterVersion: version,
		RuntimeDir:         s.layout.Dir,
		Env:                s.env.Environ(),
	}, nil
}

func (p *provisioner) discoverer(s *session) ManifestDiscoverer {
	ignore := append([]string{filepath.ToSlash(filepath.Clean(s.cfg.RuntimeDir))}, s.cfg.Ignore...)
	return NewManifestDiscoverer(p.fsys, ignore...)
}

func (p *provisioner) Provision(ctx context.Context) m.ProvisionResult {
	rec := newRecorder(p.ui)

	s, bctx, err := p.bootstrap(ctx, rec)
	if err != nil {
		return rec.fatal(err)
	}

	// The interpreter packages and hooks are installed with, and the
	// environment they run in.
	python := bctx.InterpreterPath
	install := bctx

	rec.begin(m.StepRuntime)

	if s.mode.IsCI() {
		rec.add(m.StepRuntime, m.StatusSkipped, "CI mode: runtime provided by the caller")
	} else {
		manager := NewRuntimeManager(p.fsys, p.runner, s.cfg.MinimumVersion(), p.log)

		action, state, err := manager.Ensure(ctx, bctx, s.layout)
		if err != nil {
			return rec.fatal(rec.fail(m.StepRuntime, err))
		}

		rec.add(m.StepRuntime, m.StatusDone, "%s", runtimeMessage(action, state, s.cfg.RuntimeDir))

		python = s.layout.Python()
		install = bctx.WithEnv(s.layout.ActivatedEnv(s.env).Environ())
	}

	rec.begin(m.StepDependencies)

	strategy, err := SelectStrategy(s.cfg.Strategy, s.root, p.fsys, p.runner, p.discoverer(s), p.log)
	if err != nil {
		return rec.fatal(rec.fail(m.StepDependencies, err))
	}

	rec.add(m.StepDependencies, m.StatusDone, "using %s strategy", strategy.Name())

	if err := strategy.Sync(ctx, SyncRequest{Context: install, Python: python, Report: rec.record}); err != nil {
		return rec.fatal(rec.fail(m.StepDependencies, err))
	}

	rec.begin(m.StepActivate)

	if s.mode.IsCI() {
		rec.add(m.StepActivate, m.StatusSkipped, "CI mode")
	} else {
		rec.add(m.StepActivate, m.StatusDone, "activate the runtime with: %s", s.layout.ActivateCommand())
	}

	rec.begin(m.StepHooks)

	if s.mode.IsCI() {
		rec.add(m.StepHooks, m.StatusSkipped, "CI mode")
		return rec.finish(nil)
	}

	hooks, err := NewHookInstaller(p.fsys, p.runner, s.cfg.HookConfig).Install(ctx, install, python)

	switch {
	case err != nil:
		rec.add(m.StepHooks, m.StatusFailed, "%v", err)
		return rec.finish(err)
	case !hooks.Present:
		rec.add(m.StepHooks, m.StatusSkipped, "no %s, hooks not installed", s.cfg.HookConfig)
	default:
		rec.add(m.StepHooks, m.StatusDone, "installed %d hooks from %d repositories and refreshed their versions", hooks.Hooks, hooks.Repos)
	}

	return rec.finish(nil)
}

func runtimeMessage(action m.RuntimeAction, state RuntimeState, dir string) string {
	switch action {
	case m.RuntimeReuse:
		return fmt.Sprintf("reused %s (Python %s)", dir, state.Version)
	case m.RuntimeRecreate:
		return fmt.Sprintf("recreated %s with Python %s", dir, state.Version)
	default:
		return fmt.Sprintf("created %s with Python %s", dir, state.Version)
	}
}

func (p *provisioner) Plan(ctx context.Context) (m.Plan, error) {
	rec := newRecorder(nil)

	s, bctx, err := p.bootstrap(ctx, rec)
	if err != nil {
		return m.Plan{}, err
	}

	plan := m.Plan{Context: bctx}

	if s.mode.IsCI() {
		plan.RuntimeAction = m.RuntimeSkip
		plan.RuntimeReason = "CI mode"
	} else {
		state, err := NewRuntimeManager(p.fsys, p.runner, s.cfg.MinimumVersion(), p.log).Inspect(s.layout)
		if err != nil {
			return m.Plan{}, &RuntimeCreationError{Dir: s.layout.Dir, Op: "inspect", Err: err}
		}

		plan.RuntimeAction = DecideRuntime(state)
		plan.RuntimeVersion = state.Version
		plan.RuntimeReason = state.Reason
	}

	discoverer := p.discoverer(s)

	strategy, err := SelectStrategy(s.cfg.Strategy, s.root, p.fsys, p.runner, discoverer, p.log)
	if err != nil {
		return m.Plan{}, err
	}

	plan.Strategy = strategy.Name()

	if plan.Strategy == config.StrategyPip {
		if plan.Manifests, err = discoverer.Discover(s.root); err != nil {
			return m.Plan{}, err
		}
	}

	if !s.mode.IsCI() {
		if plan.HookConfig, err = NewHookInstaller(p.fsys, p.runner, s.cfg.HookConfig).Inspect(s.root); err != nil {
			return m.Plan{}, err
		}
	}

	return plan, nil
}

func (p *provisioner) Manifests(_ context.Context) (m.Path, []m.Manifest, error) {
	s, err := p.resolve(newRecorder(nil))
	if err != nil {
		return "", nil, err
	}

	manifests, err := p.discoverer(s).Discover(s.root)
	if err != nil {
		return "", nil, err
	}

	return s.root, manifests, nil
}
