package domain

import (
	"path/filepath"
	"strings"

	"github.com/mouse-blink/envboot/internal/adapter"
	m "github.com/mouse-blink/envboot/internal/model"
)

// PyvenvConfig is the marker file every runtime environment carries.
const PyvenvConfig = "pyvenv.cfg"

// CompletionMarker is written into a runtime once its creation has been
// validated. Runtimes without it are treated as partially created.
const CompletionMarker = ".envboot-complete"

// RuntimeLayout describes where a runtime environment keeps its files. The
// POSIX and Windows layouts differ only in naming; both feed the same
// decision table.
type RuntimeLayout struct {
	// Dir is the absolute runtime directory.
	Dir     m.Path
	rel     string
	windows bool
}

// NewRuntimeLayout returns the layout of the runtime at rel below root for
// the given GOOS.
func NewRuntimeLayout(root m.Path, rel, goos string) RuntimeLayout {
	return RuntimeLayout{
		Dir:     m.Path(filepath.Join(string(root), rel)),
		rel:     rel,
		windows: goos == "windows",
	}
}

// BinDir is the directory holding the runtime's executables.
func (l RuntimeLayout) BinDir() m.Path {
	if l.windows {
		return l.join("Scripts")
	}

	return l.join("bin")
}

// Python is the runtime's interpreter binary.
func (l RuntimeLayout) Python() m.Path {
	if l.windows {
		return l.join("Scripts", "python.exe")
	}

	return l.join("bin", "python")
}

// ConfigFile is the runtime's pyvenv.cfg.
func (l RuntimeLayout) ConfigFile() m.Path {
	return l.join(PyvenvConfig)
}

// Marker is the runtime's completion marker.
func (l RuntimeLayout) Marker() m.Path {
	return l.join(CompletionMarker)
}

// ActivateCommand is what the operator types to activate the runtime in an
// interactive shell.
func (l RuntimeLayout) ActivateCommand() string {
	if l.windows {
		return strings.ReplaceAll(l.rel, "/", `\`) + `\Scripts\activate`
	}

	return "source " + filepath.ToSlash(l.rel) + "/bin/activate"
}

// ActivatedEnv returns env as it looks after activation: VIRTUAL_ENV set,
// the runtime's bin directory first on PATH and PYTHONHOME cleared.
func (l RuntimeLayout) ActivatedEnv(env adapter.MapEnvironment) adapter.MapEnvironment {
	pathKey := "PATH"

	for k := range env {
		if strings.EqualFold(k, "PATH") {
			pathKey = k
			break
		}
	}

	sep := ":"
	if l.windows {
		sep = ";"
	}

	path := string(l.BinDir())
	if current := env[pathKey]; current != "" {
		path += sep + current
	}

	activated := env.With(map[string]string{
		"VIRTUAL_ENV": string(l.Dir),
		pathKey:       path,
	})
	delete(activated, "PYTHONHOME")

	return activated
}

func (l RuntimeLayout) join(elem ...string) m.Path {
	return m.Path(filepath.Join(append([]string{string(l.Dir)}, elem...)...))
}
