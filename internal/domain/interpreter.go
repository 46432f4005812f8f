package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mouse-blink/envboot/internal/adapter"
	m "github.com/mouse-blink/envboot/internal/model"
)

const probeCacheSize = 32

// InterpreterLocator finds the interpreter used to build the runtime
// environment.
type InterpreterLocator interface {
	// Candidates lists the binary names probed, in order.
	Candidates() []string

	// Locate returns the interpreter to use. In LOCAL mode the first
	// candidate meeting the minimum version wins and failure is an
	// *InterpreterNotFoundError. In CI mode the first candidate on PATH is
	// returned without a version check.
	Locate(ctx context.Context, mode m.Mode) (m.Path, m.Version, error)

	// Probe asks the interpreter at path for its version.
	Probe(ctx context.Context, path m.Path) (m.Version, error)
}

type interpreterLocator struct {
	runner   adapter.CommandRunner
	env      adapter.Environment
	variable string
	minimum  m.Version
	log      *slog.Logger
	probes   *lru.Cache[m.Path, m.Version]
}

// NewInterpreterLocator constructs an InterpreterLocator. variable names the
// override environment variable.
func NewInterpreterLocator(runner adapter.CommandRunner, env adapter.Environment, variable string, minimum m.Version, log *slog.Logger) InterpreterLocator {
	probes, err := lru.New[m.Path, m.Version](probeCacheSize)
	if err != nil {
		// Only reachable with a non-positive size.
		panic(err)
	}

	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &interpreterLocator{
		runner:   runner,
		env:      env,
		variable: variable,
		minimum:  minimum,
		log:      log,
		probes:   probes,
	}
}

// Candidates returns the override (when set), the versioned binary name, the
// major-versioned name and the generic name.
func (l *interpreterLocator) Candidates() []string {
	var candidates []string

	if override := strings.TrimSpace(l.env.Getenv(l.variable)); override != "" {
		candidates = append(candidates, override)
	}

	return append(candidates,
		fmt.Sprintf("python%d.%d", l.minimum.Major, l.minimum.Minor),
		fmt.Sprintf("python%d", l.minimum.Major),
		"python",
	)
}

func (l *interpreterLocator) Locate(ctx context.Context, mode m.Mode) (m.Path, m.Version, error) {
	if mode.IsCI() {
		return l.locateCI()
	}

	var tried []string

	for _, name := range l.Candidates() {
		path, err := l.runner.LookPath(name)
		if err != nil {
			tried = append(tried, name+": not found")
			continue
		}

		version, err := l.Probe(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return "", m.Version{}, ctx.Err()
			}

			tried = append(tried, fmt.Sprintf("%s: %v", name, err))

			continue
		}

		if !version.AtLeast(l.minimum) {
			tried = append(tried, fmt.Sprintf("%s: %s is too old", name, version))
			continue
		}

		l.log.Debug("interpreter selected", slog.String("path", string(path)), slog.String("version", version.String()))

		return path, version, nil
	}

	return "", m.Version{}, &InterpreterNotFoundError{
		Minimum:  l.minimum,
		Variable: l.variable,
		Tried:    tried,
	}
}

func (l *interpreterLocator) locateCI() (m.Path, m.Version, error) {
	candidates := l.Candidates()

	for _, name := range candidates {
		if path, err := l.runner.LookPath(name); err == nil {
			return path, m.Version{}, nil
		}
	}

	// Left to the caller's PATH; a missing interpreter surfaces when
	// dependencies are installed.
	return m.Path(candidates[len(candidates)-1]), m.Version{}, nil
}

func (l *interpreterLocator) Probe(ctx context.Context, path m.Path) (m.Version, error) {
	if v, ok := l.probes.Get(path); ok {
		return v, nil
	}

	result, err := l.runner.Run(ctx, adapter.Command{
		Name: string(path),
		Args: []string{"--version"},
		Env:  l.env.Environ(),
	})
	if err != nil {
		return m.Version{}, err
	}

	version, err := m.ParseVersion(result.Output)
	if err != nil {
		return m.Version{}, err
	}

	l.probes.Add(path, version)

	return version, nil
}
