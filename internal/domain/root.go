package domain

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mouse-blink/envboot/internal/adapter"
	m "github.com/mouse-blink/envboot/internal/model"
)

// ScriptsDirName is the directory whose parent is the project root when the
// tool is invoked from inside it.
const ScriptsDirName = "scripts"

// projectMarkers identify a project root while walking up the tree.
var projectMarkers = []string{".git", "pyproject.toml", "requirements.txt", ".pre-commit-config.yaml"}

var errNoProjectMarker = errors.New("no project marker found in any parent directory")

// ResolveProjectRoot determines the project root. An explicit root wins; an
// invocation from the scripts directory resolves to its parent; otherwise the
// nearest ancestor of invocationDir holding a project marker is used.
func ResolveProjectRoot(fsys adapter.ProjectFS, invocationDir, explicit m.Path) (m.Path, error) {
	if explicit != "" {
		root, err := existingDir(fsys, explicit)
		if err != nil {
			return "", &PathResolutionError{Start: explicit, Err: err}
		}

		return root, nil
	}

	start, err := existingDir(fsys, invocationDir)
	if err != nil {
		return "", &PathResolutionError{Start: invocationDir, Err: err}
	}

	if filepath.Base(string(start)) == ScriptsDirName {
		parent := m.Path(filepath.Dir(string(start)))
		if parent == start {
			return "", &PathResolutionError{Start: start, Err: errors.New("scripts directory has no parent")}
		}

		return parent, nil
	}

	dir := start

	for {
		if hasProjectMarker(fsys, dir) {
			return dir, nil
		}

		parent := m.Path(filepath.Dir(string(dir)))
		if parent == dir {
			return "", &PathResolutionError{Start: start, Err: errNoProjectMarker}
		}

		dir = parent
	}
}

func existingDir(fsys adapter.ProjectFS, path m.Path) (m.Path, error) {
	abs, err := fsys.Abs(path)
	if err != nil {
		return "", err
	}

	info, err := fsys.Stat(abs)
	if err != nil {
		return "", err
	}

	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}

	return abs, nil
}

func hasProjectMarker(fsys adapter.ProjectFS, dir m.Path) bool {
	for _, marker := range projectMarkers {
		if _, err := fsys.Stat(m.Path(filepath.Join(string(dir), marker))); err == nil {
			return true
		}
	}

	return false
}
