package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/go-ini/ini"

	"github.com/mouse-blink/envboot/internal/adapter"
	m "github.com/mouse-blink/envboot/internal/model"
)

// RuntimeState is what an inspection found in the runtime directory.
type RuntimeState struct {
	Exists  bool
	Version m.Version
	// Valid is true when the runtime can be reused as is.
	Valid bool
	// Reason explains why an existing runtime is not valid.
	Reason string
}

// DecideRuntime applies the runtime decision table: absent runtimes are
// created, valid ones reused and anything else deleted and recreated.
func DecideRuntime(state RuntimeState) m.RuntimeAction {
	switch {
	case !state.Exists:
		return m.RuntimeCreate
	case state.Valid:
		return m.RuntimeReuse
	default:
		return m.RuntimeRecreate
	}
}

// RuntimeManager keeps the runtime environment at a version meeting the
// minimum. Runtimes are never upgraded in place.
type RuntimeManager interface {
	// Inspect reports the state of the runtime without changing it.
	Inspect(layout RuntimeLayout) (RuntimeState, error)

	// Ensure applies the decision table and returns the action taken and
	// the final state. Failures are *RuntimeCreationError and never leave a
	// half-created runtime behind.
	Ensure(ctx context.Context, bctx m.BootstrapContext, layout RuntimeLayout) (m.RuntimeAction, RuntimeState, error)
}

type runtimeManager struct {
	fsys    adapter.ProjectFS
	runner  adapter.CommandRunner
	minimum m.Version
	log     *slog.Logger
}

// NewRuntimeManager constructs a RuntimeManager backed by the provided
// filesystem and command runner adapters.
func NewRuntimeManager(fsys adapter.ProjectFS, runner adapter.CommandRunner, minimum m.Version, log *slog.Logger) RuntimeManager {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &runtimeManager{fsys: fsys, runner: runner, minimum: minimum, log: log}
}

func (rm *runtimeManager) Inspect(layout RuntimeLayout) (RuntimeState, error) {
	return rm.inspect(layout, true)
}

// inspect examines the runtime. The completion marker is only required when
// requireMarker is set; a runtime that was just created has none yet.
func (rm *runtimeManager) inspect(layout RuntimeLayout, requireMarker bool) (RuntimeState, error) {
	info, err := rm.fsys.Stat(layout.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return RuntimeState{Reason: "absent"}, nil
	}

	if err != nil {
		return RuntimeState{}, err
	}

	state := RuntimeState{Exists: true}

	if !info.IsDir() {
		state.Reason = "not a directory"
		return state, nil
	}

	data, err := rm.fsys.ReadFile(layout.ConfigFile())
	if err != nil {
		state.Reason = PyvenvConfig + " missing"
		return state, nil //nolint:nilerr // an unreadable config means a broken runtime
	}

	version, err := parsePyvenvConfig(data)
	if err != nil {
		state.Reason = err.Error()
		return state, nil //nolint:nilerr // an unparsable config means a broken runtime
	}

	state.Version = version

	if _, err := rm.fsys.Stat(layout.Python()); err != nil {
		state.Reason = "interpreter binary missing"
		return state, nil //nolint:nilerr // partially created runtime
	}

	if !version.AtLeast(rm.minimum) {
		state.Reason = fmt.Sprintf("version %s below minimum %s", version, rm.minimum)
		return state, nil
	}

	if requireMarker {
		if _, err := rm.fsys.Stat(layout.Marker()); err != nil {
			state.Reason = "creation never completed"
			return state, nil //nolint:nilerr // interrupted creation
		}
	}

	state.Valid = true

	return state, nil
}

func (rm *runtimeManager) Ensure(ctx context.Context, bctx m.BootstrapContext, layout RuntimeLayout) (m.RuntimeAction, RuntimeState, error) {
	state, err := rm.Inspect(layout)
	if err != nil {
		return "", state, &RuntimeCreationError{Dir: layout.Dir, Op: "inspect", Err: err}
	}

	action := DecideRuntime(state)
	rm.log.Debug("runtime decision",
		slog.String("action", string(action)),
		slog.String("reason", state.Reason),
		slog.String("dir", string(layout.Dir)))

	switch action {
	case m.RuntimeReuse:
		return action, state, nil
	case m.RuntimeRecreate:
		if err := rm.fsys.RemoveAll(layout.Dir); err != nil {
			return action, state, &RuntimeCreationError{Dir: layout.Dir, Op: "remove stale runtime", Err: err}
		}
	}

	_, err = rm.runner.Run(ctx, adapter.Command{
		Name: string(bctx.InterpreterPath),
		Args: []string{"-m", "venv", string(layout.Dir)},
		Dir:  bctx.ProjectRoot,
		Env:  bctx.Env,
	})
	if err != nil {
		return action, state, rm.cleanup(layout, "create", err)
	}

	created, err := rm.inspect(layout, false)
	if err != nil {
		return action, created, rm.cleanup(layout, "validate", err)
	}

	if !created.Valid {
		return action, created, rm.cleanup(layout, "validate", errors.New(created.Reason))
	}

	if err := rm.fsys.WriteFile(layout.Marker(), []byte(created.Version.String()+"\n")); err != nil {
		created.Valid = false
		return action, created, rm.cleanup(layout, "mark complete", err)
	}

	return action, created, nil
}

// cleanup removes a half-created runtime so the next run sees it as absent.
func (rm *runtimeManager) cleanup(layout RuntimeLayout, op string, cause error) error {
	if err := rm.fsys.RemoveAll(layout.Dir); err != nil {
		cause = errors.Join(cause, fmt.Errorf("cleanup: %w", err))
	}

	return &RuntimeCreationError{Dir: layout.Dir, Op: op, Err: cause}
}

func parsePyvenvConfig(data []byte) (m.Version, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return m.Version{}, fmt.Errorf("parse %s: %w", PyvenvConfig, err)
	}

	section := cfg.Section(ini.DefaultSection)

	for _, key := range []string{"version", "version_info"} {
		if !section.HasKey(key) {
			continue
		}

		return m.ParseVersion(section.Key(key).String())
	}

	return m.Version{}, fmt.Errorf("%s has no version", PyvenvConfig)
}
