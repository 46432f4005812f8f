package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/envboot/internal/model"
)

// PathResolutionError means the project root could not be determined.
type PathResolutionError struct {
	Start m.Path
	Err   error
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve project root from %s: %v (run from inside the project or pass --root)", e.Start, e.Err)
}

func (e *PathResolutionError) Unwrap() error { return e.Err }

// InterpreterNotFoundError means no interpreter satisfying the minimum version
// was found.
type InterpreterNotFoundError struct {
	Minimum  m.Version
	Variable string
	// Tried lists every probed candidate with the reason it was rejected.
	Tried []string
}

func (e *InterpreterNotFoundError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "no Python >= %d.%d found", e.Minimum.Major, e.Minimum.Minor)

	if len(e.Tried) > 0 {
		fmt.Fprintf(&b, " (tried: %s)", strings.Join(e.Tried, "; "))
	}

	fmt.Fprintf(&b, "; install Python %d.%d or newer, or set %s to the interpreter to use",
		e.Minimum.Major, e.Minimum.Minor, e.Variable)

	return b.String()
}

// RuntimeCreationError means the runtime environment could not be removed,
// created or validated.
type RuntimeCreationError struct {
	Dir m.Path
	Op  string
	Err error
}

func (e *RuntimeCreationError) Error() string {
	return fmt.Sprintf("runtime %s: %s failed: %v", e.Dir, e.Op, e.Err)
}

func (e *RuntimeCreationError) Unwrap() error { return e.Err }

// ManifestDiscoveryError means the project tree could not be enumerated.
type ManifestDiscoveryError struct {
	Root m.Path
	Err  error
}

func (e *ManifestDiscoveryError) Error() string {
	return fmt.Sprintf("discovering manifests under %s: %v", e.Root, e.Err)
}

func (e *ManifestDiscoveryError) Unwrap() error { return e.Err }

// ManifestInstallError means installing dependencies failed. Path is the
// offending manifest, or empty when upgrading the installer itself failed.
type ManifestInstallError struct {
	Path m.Path
	Err  error
}

func (e *ManifestInstallError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("upgrading the package installer failed: %v", e.Err)
	}

	return fmt.Sprintf("installing %s failed: %v", e.Path, e.Err)
}

func (e *ManifestInstallError) Unwrap() error { return e.Err }

// HookInstallError means the commit hooks could not be installed or
// refreshed. Dependencies are already in place when it occurs.
type HookInstallError struct {
	Op  string
	Err error
}

func (e *HookInstallError) Error() string {
	return fmt.Sprintf("hooks: %s failed: %v", e.Op, e.Err)
}

func (e *HookInstallError) Unwrap() error { return e.Err }
