// Package adapter contains the infrastructure adapters the bootstrap domain
// relies on: filesystem access, child-process execution and the environment.
package adapter

import (
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/envboot/internal/model"
)

// ProjectFS abstracts the filesystem operations the provisioner performs on
// the project tree, so the decision logic can be tested without touching the
// disk.
type ProjectFS interface {
	// Stat returns metadata for path, following symlinks.
	Stat(path m.Path) (os.FileInfo, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes data to path, creating or truncating it.
	WriteFile(path m.Path, data []byte) error

	// RemoveAll removes a directory and all its contents. Removing a missing
	// path is not an error.
	RemoveAll(path m.Path) error

	// WalkDir traverses the tree rooted at root in lexical order.
	WalkDir(root m.Path, fn fs.WalkDirFunc) error

	// Abs returns an absolute, symlink-free form of path.
	Abs(path m.Path) (m.Path, error)
}

// LocalProjectFS is the os-backed ProjectFS.
type LocalProjectFS struct{}

// NewLocalProjectFS constructs a LocalProjectFS instance ready to be wired
// into the provisioner.
func NewLocalProjectFS() *LocalProjectFS {
	return &LocalProjectFS{}
}

// Stat returns os.FileInfo metadata for the given path.
func (a *LocalProjectFS) Stat(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalProjectFS) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - paths are derived from the project root
	return os.ReadFile(string(path))
}

// WriteFile writes data to path with owner read-write permissions.
func (a *LocalProjectFS) WriteFile(path m.Path, data []byte) error {
	return os.WriteFile(string(path), data, 0o600)
}

// RemoveAll removes a directory and all its contents.
func (a *LocalProjectFS) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// WalkDir iterates over the tree rooted at root.
func (a *LocalProjectFS) WalkDir(root m.Path, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(string(root), fn)
}

// Abs resolves path to an absolute path with symlinks evaluated.
func (a *LocalProjectFS) Abs(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}

	return m.Path(resolved), nil
}
