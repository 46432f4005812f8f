package domain

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar"

	"github.com/mouse-blink/envboot/internal/adapter"
	m "github.com/mouse-blink/envboot/internal/model"
)

// ManifestDiscoverer enumerates dependency manifests under a project root.
type ManifestDiscoverer interface {
	// Discover returns primary manifests followed by dev manifests, each
	// group in lexicographic order of the slash-separated relative path.
	Discover(root m.Path) ([]m.Manifest, error)
}

type manifestDiscoverer struct {
	fsys   adapter.ProjectFS
	ignore []string
}

// NewManifestDiscoverer constructs a ManifestDiscoverer. Directories whose
// relative path matches one of the doublestar globs in ignore are pruned;
// .git directories are always pruned, at any depth.
func NewManifestDiscoverer(fsys adapter.ProjectFS, ignore ...string) ManifestDiscoverer {
	return &manifestDiscoverer{
		fsys:   fsys,
		ignore: append([]string{".git", "**/.git"}, ignore...),
	}
}

func (d *manifestDiscoverer) Discover(root m.Path) ([]m.Manifest, error) {
	var primary, dev []m.Manifest

	err := d.fsys.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(string(root), path)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)

		if entry.IsDir() {
			if rel != "." && d.ignored(rel) {
				return filepath.SkipDir
			}

			return nil
		}

		manifest := m.Manifest{Path: m.Path(path), Rel: rel}

		switch entry.Name() {
		case m.PrimaryManifestName:
			manifest.Kind = m.ManifestPrimary
			primary = append(primary, manifest)
		case m.DevManifestName:
			manifest.Kind = m.ManifestDev
			dev = append(dev, manifest)
		}

		return nil
	})
	if err != nil {
		return nil, &ManifestDiscoveryError{Root: root, Err: err}
	}

	sortManifests(primary)
	sortManifests(dev)

	return append(primary, dev...), nil
}

func (d *manifestDiscoverer) ignored(rel string) bool {
	for _, pattern := range d.ignore {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}

	return false
}

func sortManifests(manifests []m.Manifest) {
	sort.Slice(manifests, func(i, j int) bool {
		return manifests[i].Rel < manifests[j].Rel
	})
}
